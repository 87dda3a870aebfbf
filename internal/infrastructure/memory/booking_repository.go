package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-car-rental/internal/domain/entity"
	"github.com/oksasatya/go-car-rental/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepository)(nil)

type BookingRepository struct {
	cars     *CarRepository
	bookings map[string]entity.Booking
	order    []string
	lock     sync.RWMutex
}

// NewBookingRepository joins bookings against cars for ListByUser.
func NewBookingRepository(cars *CarRepository) *BookingRepository {
	return &BookingRepository{cars: cars, bookings: make(map[string]entity.Booking)}
}

func (r *BookingRepository) Create(_ context.Context, b *entity.Booking) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	b.CreatedAt, b.UpdatedAt = now, now
	r.bookings[b.ID] = *b
	r.order = append(r.order, b.ID)
	return nil
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (*entity.Booking, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]entity.BookingWithCar, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	out := make([]entity.BookingWithCar, 0)
	// newest first
	for i := len(r.order) - 1; i >= 0; i-- {
		b := r.bookings[r.order[i]]
		if b.UserID != userID {
			continue
		}
		item := entity.BookingWithCar{Booking: b}
		if r.cars != nil {
			if c, err := r.cars.GetByID(ctx, b.CarID); err == nil {
				item.Car = c
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(_ context.Context, id string, status entity.BookingStatus) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	r.bookings[id] = b
	return nil
}
