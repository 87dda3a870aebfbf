package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-car-rental/internal/domain/entity"
	repo "github.com/oksasatya/go-car-rental/internal/domain/repository"
	"github.com/oksasatya/go-car-rental/pkg/helpers"
)

const carsCachePrefix = "cars:list:"

type CarService struct {
	Repo      repo.CarRepository
	Redis     *redis.Client
	CacheTTL  time.Duration
	ES        *elasticsearch.Client
	ESIndex   string
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewCarService(repo repo.CarRepository, rdb *redis.Client, cacheTTL time.Duration, es *elasticsearch.Client, esIndex string, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *CarService {
	return &CarService{
		Repo:      repo,
		Redis:     rdb,
		CacheTTL:  cacheTTL,
		ES:        es,
		ESIndex:   esIndex,
		GCS:       gcs,
		GCSBucket: gcsBucket,
		Logger:    logger,
	}
}

type CreateCarInput struct {
	Make         string
	Model        string
	Year         int
	Type         string
	Transmission string
	FuelType     string
	Seats        int
	PricePerDay  string
	ImageURL     string
	Description  string
	Featured     bool
}

func carsCacheKey(f entity.CarFilter) string {
	return carsCachePrefix + f.Type + ":" + strconv.FormatBool(f.AvailableOnly)
}

// List returns cars matching f, served from Redis when cached.
func (s *CarService) List(ctx context.Context, f entity.CarFilter) ([]entity.Car, error) {
	key := carsCacheKey(f)
	if s.Redis != nil {
		var cached []entity.Car
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, key, &cached); err == nil && ok {
			Stats.Add(statCarsCacheHits, 1)
			return cached, nil
		} else if err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("cars cache read failed")
		}
		Stats.Add(statCarsCacheMisses, 1)
	}

	cars, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil && s.CacheTTL > 0 {
		if err := helpers.RedisSetJSON(ctx, s.Redis, key, cars, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("cars cache write failed")
		}
	}
	return cars, nil
}

func (s *CarService) Get(ctx context.Context, id string) (*entity.Car, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CarService) Create(ctx context.Context, in CreateCarInput) (*entity.Car, error) {
	cents, err := helpers.ParseCents(in.PricePerDay)
	if err != nil || cents <= 0 {
		return nil, ErrInvalidPrice
	}
	c := &entity.Car{
		Make:         strings.TrimSpace(in.Make),
		Model:        strings.TrimSpace(in.Model),
		Year:         in.Year,
		Type:         strings.TrimSpace(in.Type),
		Transmission: strings.TrimSpace(in.Transmission),
		FuelType:     strings.TrimSpace(in.FuelType),
		Seats:        in.Seats,
		PricePerDay:  helpers.FormatCents(cents),
		ImageURL:     in.ImageURL,
		Description:  in.Description,
		Available:    true,
		Featured:     in.Featured,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}
	s.invalidate(ctx)
	_ = s.indexCar(ctx, c)
	return c, nil
}

// Seed inserts the demo fleet when no cars exist yet. It returns the inserted
// cars and the number of cars found beforehand.
func (s *CarService) Seed(ctx context.Context) ([]entity.Car, int, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	if n > 0 {
		return nil, n, nil
	}
	out := make([]entity.Car, 0, len(SeedCars))
	for _, in := range SeedCars {
		c, err := s.Create(ctx, in)
		if err != nil {
			return out, 0, err
		}
		out = append(out, *c)
	}
	if s.Logger != nil {
		s.Logger.WithField("count", len(out)).Info("seeded cars")
	}
	return out, 0, nil
}

// UploadImage stores an image in GCS and points the car at it.
func (s *CarService) UploadImage(ctx context.Context, carID string, r io.Reader, contentType string) (*entity.Car, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, ErrStorageNotConfigured
	}
	ext, ok := helpers.ImageExtension(contentType)
	if !ok {
		return nil, ErrUnsupportedImage
	}
	if _, err := s.Get(ctx, carID); err != nil {
		return nil, err
	}
	objectPath := path.Join("cars", carID, uuid.NewString()+ext)
	url, err := helpers.UploadImageToGCS(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	if err := s.Repo.UpdateImage(ctx, carID, url); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	c, err := s.Get(ctx, carID)
	if err != nil {
		return nil, err
	}
	_ = s.indexCar(ctx, c)
	return c, nil
}

// invalidate drops every cached listing.
func (s *CarService) invalidate(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if _, err := helpers.RedisDelPattern(ctx, s.Redis, carsCachePrefix+"*"); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("cars cache invalidation failed")
	}
}

// SeedCars is the demo fleet used by the seed endpoint and cmd/seed.
var SeedCars = []CreateCarInput{
	{Make: "Audi", Model: "A4", Year: 2024, Type: "Sedan", Transmission: "Automatic", FuelType: "Petrol", Seats: 5, PricePerDay: "89.00", ImageURL: "/cars/hero-car.png", Description: "Luxury sedan with premium features", Featured: true},
	{Make: "BMW", Model: "X5", Year: 2024, Type: "SUV", Transmission: "Automatic", FuelType: "Diesel", Seats: 7, PricePerDay: "129.00", ImageURL: "/cars/hero-car.png", Description: "Spacious luxury SUV", Featured: true},
	{Make: "Mercedes", Model: "C-Class", Year: 2024, Type: "Sedan", Transmission: "Automatic", FuelType: "Hybrid", Seats: 5, PricePerDay: "99.00", ImageURL: "/cars/hero-car.png", Description: "Elegant and fuel-efficient"},
	{Make: "Porsche", Model: "911", Year: 2024, Type: "Sports", Transmission: "Manual", FuelType: "Petrol", Seats: 2, PricePerDay: "249.00", ImageURL: "/cars/hero-car.png", Description: "Ultimate driving experience", Featured: true},
	{Make: "Tesla", Model: "Model 3", Year: 2024, Type: "Sedan", Transmission: "Automatic", FuelType: "Electric", Seats: 5, PricePerDay: "109.00", ImageURL: "/cars/hero-car.png", Description: "Zero emissions, maximum performance"},
	{Make: "Range Rover", Model: "Sport", Year: 2024, Type: "SUV", Transmission: "Automatic", FuelType: "Diesel", Seats: 5, PricePerDay: "179.00", ImageURL: "/cars/hero-car.png", Description: "Luxury meets adventure", Featured: true},
}
