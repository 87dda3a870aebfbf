package entity

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Cancellable reports whether a booking in this status may still be cancelled.
func (s BookingStatus) Cancellable() bool {
	return s == BookingPending || s == BookingConfirmed
}

// Booking reserves a car for a user over [StartDate, EndDate).
type Booking struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	CarID           string        `json:"carId"`
	StartDate       time.Time     `json:"startDate"`
	EndDate         time.Time     `json:"endDate"`
	TotalPrice      string        `json:"totalPrice"`
	Status          BookingStatus `json:"status"`
	PickupLocation  string        `json:"pickupLocation,omitempty"`
	DropoffLocation string        `json:"dropoffLocation,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// BookingWithCar is a booking joined with its car; Car is nil if the car row is gone.
type BookingWithCar struct {
	Booking Booking `json:"booking"`
	Car     *Car    `json:"car"`
}
