package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-car-rental/config"
	"github.com/oksasatya/go-car-rental/internal/domain/entity"
	"github.com/oksasatya/go-car-rental/internal/infrastructure/memory"
	"github.com/oksasatya/go-car-rental/pkg/helpers"
	"github.com/oksasatya/go-car-rental/pkg/mailer"
)

type recordingPublisher struct {
	mu   sync.Mutex
	jobs []mailer.EmailJob
}

func (p *recordingPublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs = append(p.jobs, body.(mailer.EmailJob))
	return nil
}

type bookingFixture struct {
	svc   *BookingService
	cars  *memory.CarRepository
	users *memory.UserRepository
	pub   *recordingPublisher
	car   *entity.Car
	user  *entity.User
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	ctx := context.Background()
	cars := memory.NewCarRepository()
	users := memory.NewUserRepository()
	bookings := memory.NewBookingRepository(cars)
	pub := &recordingPublisher{}
	notifier := NewNotifier(pub, &config.Config{MailSendEnabled: true, CompanyName: "DriveLux"}, helpers.NewDiscardLogger())

	car := &entity.Car{Make: "Audi", Model: "A4", Type: "Sedan", PricePerDay: "89.00", Available: true}
	require.NoError(t, cars.Create(ctx, car))
	user := &entity.User{Email: "erin@example.com", Password: "x", Name: "Erin"}
	require.NoError(t, users.Create(ctx, user))

	return &bookingFixture{
		svc:   NewBookingService(bookings, cars, users, notifier, helpers.NewDiscardLogger()),
		cars:  cars,
		users: users,
		pub:   pub,
		car:   car,
		user:  user,
	}
}

func TestRentalDays(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, RentalDays(start, start))
	assert.Equal(t, 0, RentalDays(start, start.Add(-time.Hour)))
	assert.Equal(t, 1, RentalDays(start, start.Add(time.Hour)))
	assert.Equal(t, 1, RentalDays(start, start.Add(24*time.Hour)))
	assert.Equal(t, 2, RentalDays(start, start.Add(25*time.Hour)))
	assert.Equal(t, 3, RentalDays(start, start.AddDate(0, 0, 3)))
}

func TestQuoteTotal(t *testing.T) {
	got, err := QuoteTotal("89.00", 3)
	require.NoError(t, err)
	assert.Equal(t, "267.00", got)

	got, err = QuoteTotal("0.10", 3)
	require.NoError(t, err)
	assert.Equal(t, "0.30", got)

	_, err = QuoteTotal("abc", 1)
	assert.Error(t, err)
}

func TestParseBookingDate(t *testing.T) {
	d, err := ParseBookingDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseBookingDate("2025-03-01T10:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), d)

	// the UTC day decides, not the local one
	d, err = ParseBookingDate("2025-03-01T01:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseBookingDate("01/03/2025")
	assert.ErrorIs(t, err, ErrInvalidBookingDates)
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	b, err := f.svc.Create(ctx, f.user.ID, CreateBookingInput{
		CarID:          f.car.ID,
		StartDate:      "2025-03-01",
		EndDate:        "2025-03-04",
		PickupLocation: " Airport ",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingPending, b.Status)
	assert.Equal(t, "267.00", b.TotalPrice)
	assert.Equal(t, "Airport", b.PickupLocation)
	assert.Equal(t, f.user.ID, b.UserID)

	require.Len(t, f.pub.jobs, 1)
	assert.Equal(t, "erin@example.com", f.pub.jobs[0].To)

	list, err := f.svc.List(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].Booking.ID)
	require.NotNil(t, list[0].Car)
	assert.Equal(t, "Audi", list[0].Car.Make)
}

func TestBookingService_CreateWithTimestampsUsesCalendarDays(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)
	created := statCount(statBookingsCreated)

	b, err := f.svc.Create(ctx, f.user.ID, CreateBookingInput{
		CarID:     f.car.ID,
		StartDate: "2025-03-01T20:00:00Z",
		EndDate:   "2025-03-03T08:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), b.StartDate)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), b.EndDate)
	assert.True(t, b.EndDate.After(b.StartDate))
	assert.Equal(t, "178.00", b.TotalPrice)
	assert.Equal(t, created+1, statCount(statBookingsCreated))
}

func TestBookingService_CreateRejects(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	_, err := f.svc.Create(ctx, f.user.ID, CreateBookingInput{CarID: f.car.ID, StartDate: "2025-03-04", EndDate: "2025-03-04"})
	assert.ErrorIs(t, err, ErrInvalidBookingDates)

	_, err = f.svc.Create(ctx, f.user.ID, CreateBookingInput{CarID: f.car.ID, StartDate: "2025-03-05", EndDate: "2025-03-04"})
	assert.ErrorIs(t, err, ErrInvalidBookingDates)

	// same calendar day with different times is not a rental day
	_, err = f.svc.Create(ctx, f.user.ID, CreateBookingInput{CarID: f.car.ID, StartDate: "2025-01-01T08:00:00Z", EndDate: "2025-01-01T20:00:00Z"})
	assert.ErrorIs(t, err, ErrInvalidBookingDates)

	_, err = f.svc.Create(ctx, f.user.ID, CreateBookingInput{CarID: f.car.ID, StartDate: "soon", EndDate: "2025-03-04"})
	assert.ErrorIs(t, err, ErrInvalidBookingDates)

	_, err = f.svc.Create(ctx, f.user.ID, CreateBookingInput{CarID: "missing", StartDate: "2025-03-01", EndDate: "2025-03-04"})
	assert.ErrorIs(t, err, ErrCarUnavailable)

	parked := &entity.Car{Make: "Fiat", Model: "500", PricePerDay: "40.00", Available: false}
	require.NoError(t, f.cars.Create(ctx, parked))
	_, err = f.svc.Create(ctx, f.user.ID, CreateBookingInput{CarID: parked.ID, StartDate: "2025-03-01", EndDate: "2025-03-04"})
	assert.ErrorIs(t, err, ErrCarUnavailable)

	assert.Empty(t, f.pub.jobs)
}

func TestBookingService_Cancel(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)
	b, err := f.svc.Create(ctx, f.user.ID, CreateBookingInput{CarID: f.car.ID, StartDate: "2025-03-01", EndDate: "2025-03-02"})
	require.NoError(t, err)

	_, err = f.svc.Cancel(ctx, "someone-else", b.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.svc.Cancel(ctx, f.user.ID, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	cancelled, err := f.svc.Cancel(ctx, f.user.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingCancelled, cancelled.Status)

	_, err = f.svc.Cancel(ctx, f.user.ID, b.ID)
	assert.ErrorIs(t, err, ErrBookingNotCancellable)
}

func TestBookingService_ListEmpty(t *testing.T) {
	f := newBookingFixture(t)
	list, err := f.svc.List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
