package repository

import (
	"context"

	"github.com/oksasatya/go-car-rental/internal/domain/entity"
)

type CarRepository interface {
	List(ctx context.Context, f entity.CarFilter) ([]entity.Car, error)
	GetByID(ctx context.Context, id string) (*entity.Car, error)
	Create(ctx context.Context, c *entity.Car) error
	UpdateImage(ctx context.Context, id, imageURL string) error
	Count(ctx context.Context) (int, error)
}
