package templates

import (
	"time"

	"github.com/oksasatya/go-car-rental/config"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

// BookingInfo carries the booking fields shown in a confirmation email.
type BookingInfo struct {
	ID              string
	CarName         string
	StartDate       time.Time
	EndDate         time.Time
	Days            int
	TotalPrice      string
	PickupLocation  string
	DropoffLocation string
}

func WithBooking(b BookingInfo) Option {
	return func(d *EmailData) {
		d.BookingID = b.ID
		d.CarName = b.CarName
		d.StartDate = b.StartDate.Format("02 Jan 2006")
		d.EndDate = b.EndDate.Format("02 Jan 2006")
		d.Days = b.Days
		d.TotalPrice = b.TotalPrice
		d.PickupLocation = b.PickupLocation
		d.DropoffLocation = b.DropoffLocation
	}
}

// NewBaseEmailData fills the common fields from config, then applies opts.
func NewBaseEmailData(cfg *config.Config, typ string, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:  name,
		Email: email,
		Type:  typ,
	}
	if cfg != nil {
		d.CompanyName = cfg.CompanyName
		d.AppName = cfg.AppName
		d.SupportURL = cfg.SupportURL
		d.DashboardURL = cfg.DashboardURL
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(cfg *config.Config, name, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, Welcome, name, email, opts...))
}

func NewBookingConfirmationData(cfg *config.Config, name, email string, b BookingInfo, opts ...Option) map[string]any {
	opts = append([]Option{WithBooking(b)}, opts...)
	return ToMap(NewBaseEmailData(cfg, BookingConfirmation, name, email, opts...))
}
