package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-car-rental/internal/domain/entity"
	repo "github.com/oksasatya/go-car-rental/internal/domain/repository"
	"github.com/oksasatya/go-car-rental/pkg/helpers"
)

const dateLayout = "2006-01-02"

type BookingService struct {
	Bookings repo.BookingRepository
	Cars     repo.CarRepository
	Users    repo.UserRepository
	Notifier *Notifier
	Logger   *logrus.Logger
}

func NewBookingService(bookings repo.BookingRepository, cars repo.CarRepository, users repo.UserRepository, notifier *Notifier, logger *logrus.Logger) *BookingService {
	return &BookingService{Bookings: bookings, Cars: cars, Users: users, Notifier: notifier, Logger: logger}
}

type CreateBookingInput struct {
	CarID           string
	StartDate       string
	EndDate         string
	PickupLocation  string
	DropoffLocation string
}

// ParseBookingDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns
// the UTC calendar day at midnight. Bookings are stored as DATE, so the time
// of day never reaches the day count or the database.
func ParseBookingDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidBookingDates
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// RentalDays rounds the span between start and end up to whole days.
func RentalDays(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	day := 24 * time.Hour
	return int((d + day - 1) / day)
}

// QuoteTotal multiplies a decimal daily price by days without floating point.
func QuoteTotal(pricePerDay string, days int) (string, error) {
	cents, err := helpers.ParseCents(pricePerDay)
	if err != nil {
		return "", fmt.Errorf("price per day %q: %w", pricePerDay, err)
	}
	return helpers.FormatCents(cents * int64(days)), nil
}

// Create books an available car for the user with status pending.
func (s *BookingService) Create(ctx context.Context, userID string, in CreateBookingInput) (*entity.Booking, error) {
	start, err := ParseBookingDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseBookingDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	days := RentalDays(start, end)
	if days < 1 {
		return nil, ErrInvalidBookingDates
	}

	car, err := s.Cars.GetByID(ctx, in.CarID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCarUnavailable
		}
		return nil, fmt.Errorf("lookup car: %w", err)
	}
	if !car.Available {
		return nil, ErrCarUnavailable
	}

	total, err := QuoteTotal(car.PricePerDay, days)
	if err != nil {
		return nil, err
	}
	b := &entity.Booking{
		UserID:          userID,
		CarID:           car.ID,
		StartDate:       start,
		EndDate:         end,
		TotalPrice:      total,
		Status:          entity.BookingPending,
		PickupLocation:  strings.TrimSpace(in.PickupLocation),
		DropoffLocation: strings.TrimSpace(in.DropoffLocation),
	}
	if err := s.Bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	Stats.Add(statBookingsCreated, 1)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"booking_id": b.ID, "car_id": car.ID, "user_id": userID, "days": days}).Info("booking created")
	}
	if s.Users != nil {
		if u, err := s.Users.GetByID(ctx, userID); err == nil {
			s.Notifier.BookingCreated(ctx, u, b, car, days)
		}
	}
	return b, nil
}

func (s *BookingService) List(ctx context.Context, userID string) ([]entity.BookingWithCar, error) {
	out, err := s.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if out == nil {
		out = []entity.BookingWithCar{}
	}
	return out, nil
}

// Cancel cancels a pending or confirmed booking owned by userID. Bookings of
// other users are reported as not found.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID string) (*entity.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("lookup booking: %w", err)
	}
	if b.UserID != userID {
		return nil, ErrBookingNotFound
	}
	if !b.Status.Cancellable() {
		return nil, ErrBookingNotCancellable
	}
	if err := s.Bookings.UpdateStatus(ctx, b.ID, entity.BookingCancelled); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	b.Status = entity.BookingCancelled
	Stats.Add(statBookingsCanceled, 1)
	return b, nil
}
