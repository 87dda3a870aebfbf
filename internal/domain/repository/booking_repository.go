package repository

import (
	"context"

	"github.com/oksasatya/go-car-rental/internal/domain/entity"
)

type BookingRepository interface {
	Create(ctx context.Context, b *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]entity.BookingWithCar, error)
	UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error
}
