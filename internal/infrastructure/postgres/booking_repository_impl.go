package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-car-rental/internal/domain/entity"
	"github.com/oksasatya/go-car-rental/internal/domain/repository"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const bookingColumns = `b.id, b.user_id, b.car_id, b.start_date, b.end_date, b.total_price::text, b.status,
	COALESCE(b.pickup_location, ''), COALESCE(b.dropoff_location, ''), b.created_at, b.updated_at`

func (r *BookingRepository) Create(ctx context.Context, b *entity.Booking) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO bookings (user_id, car_id, start_date, end_date, total_price, status, pickup_location, dropoff_location)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, NULLIF($7, ''), NULLIF($8, ''))
		RETURNING id, total_price::text, created_at, updated_at
	`, b.UserID, b.CarID, b.StartDate, b.EndDate, b.TotalPrice, string(b.Status), b.PickupLocation, b.DropoffLocation)
	return row.Scan(&b.ID, &b.TotalPrice, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	b := &entity.Booking{}
	var status string
	err := r.pool.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings b WHERE b.id = $1`, id).
		Scan(&b.ID, &b.UserID, &b.CarID, &b.StartDate, &b.EndDate, &b.TotalPrice, &status,
			&b.PickupLocation, &b.DropoffLocation, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	b.Status = entity.BookingStatus(status)
	return b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]entity.BookingWithCar, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookingColumns+`,
			c.id, c.make, c.model, c.year, c.type, c.transmission, c.fuel_type, c.seats,
			c.price_per_day::text, COALESCE(c.image_url, ''), COALESCE(c.description, ''),
			c.available, c.featured, c.created_at, c.updated_at
		FROM bookings b
		LEFT JOIN cars c ON c.id = b.car_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.BookingWithCar, 0)
	for rows.Next() {
		var (
			b      entity.Booking
			status string
			carID  *string
			c      carNullable
		)
		if err := rows.Scan(&b.ID, &b.UserID, &b.CarID, &b.StartDate, &b.EndDate, &b.TotalPrice, &status,
			&b.PickupLocation, &b.DropoffLocation, &b.CreatedAt, &b.UpdatedAt,
			&carID, &c.Make, &c.Model, &c.Year, &c.Type, &c.Transmission, &c.FuelType, &c.Seats,
			&c.PricePerDay, &c.ImageURL, &c.Description, &c.Available, &c.Featured, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		b.Status = entity.BookingStatus(status)
		item := entity.BookingWithCar{Booking: b}
		if carID != nil {
			item.Car = c.toCar(*carID)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error {
	res, err := r.pool.Exec(ctx, `UPDATE bookings SET status = $1, updated_at = now() WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// carNullable receives the LEFT JOIN side, where every column may be NULL.
type carNullable struct {
	Make, Model, Type, Transmission, FuelType *string
	Year, Seats                               *int
	PricePerDay, ImageURL, Description        *string
	Available, Featured                       *bool
	CreatedAt, UpdatedAt                      pgtype.Timestamptz
}

func (c carNullable) toCar(id string) *entity.Car {
	return &entity.Car{
		ID:           id,
		Make:         deref(c.Make),
		Model:        deref(c.Model),
		Year:         deref(c.Year),
		Type:         deref(c.Type),
		Transmission: deref(c.Transmission),
		FuelType:     deref(c.FuelType),
		Seats:        deref(c.Seats),
		PricePerDay:  deref(c.PricePerDay),
		ImageURL:     deref(c.ImageURL),
		Description:  deref(c.Description),
		Available:    deref(c.Available),
		Featured:     deref(c.Featured),
		CreatedAt:    c.CreatedAt.Time,
		UpdatedAt:    c.UpdatedAt.Time,
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

var _ repository.BookingRepository = (*BookingRepository)(nil)
