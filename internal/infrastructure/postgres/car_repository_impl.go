package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-car-rental/internal/domain/entity"
	"github.com/oksasatya/go-car-rental/internal/domain/repository"
)

type CarRepository struct {
	pool *pgxpool.Pool
}

func NewCarRepository(pool *pgxpool.Pool) *CarRepository {
	return &CarRepository{pool: pool}
}

const carColumns = `id, make, model, year, type, transmission, fuel_type, seats,
	price_per_day::text, COALESCE(image_url, ''), COALESCE(description, ''),
	available, featured, created_at, updated_at`

func scanCar(row pgx.Row) (*entity.Car, error) {
	c := &entity.Car{}
	err := row.Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.Type, &c.Transmission, &c.FuelType, &c.Seats,
		&c.PricePerDay, &c.ImageURL, &c.Description, &c.Available, &c.Featured, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CarRepository) List(ctx context.Context, f entity.CarFilter) ([]entity.Car, error) {
	var (
		where []string
		args  []any
	)
	if f.Type != "" {
		args = append(args, f.Type)
		where = append(where, "type = $"+strconv.Itoa(len(args)))
	}
	if f.AvailableOnly {
		where = append(where, "available = true")
	}
	q := `SELECT ` + carColumns + ` FROM cars`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY featured DESC, created_at ASC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Car, 0)
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *CarRepository) GetByID(ctx context.Context, id string) (*entity.Car, error) {
	c, err := scanCar(r.pool.QueryRow(ctx, `SELECT `+carColumns+` FROM cars WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return c, err
}

func (r *CarRepository) Create(ctx context.Context, c *entity.Car) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO cars (make, model, year, type, transmission, fuel_type, seats, price_per_day,
			image_url, description, available, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, NULLIF($9, ''), NULLIF($10, ''), $11, $12)
		RETURNING id, price_per_day::text, created_at, updated_at
	`, c.Make, c.Model, c.Year, c.Type, c.Transmission, c.FuelType, c.Seats, c.PricePerDay,
		c.ImageURL, c.Description, c.Available, c.Featured)
	return row.Scan(&c.ID, &c.PricePerDay, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CarRepository) UpdateImage(ctx context.Context, id, imageURL string) error {
	res, err := r.pool.Exec(ctx, `UPDATE cars SET image_url = $1, updated_at = now() WHERE id = $2`, imageURL, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CarRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM cars`).Scan(&n)
	return n, err
}

var _ repository.CarRepository = (*CarRepository)(nil)
