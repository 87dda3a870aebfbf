package entity

import "time"

// Car is a rentable vehicle. PricePerDay is a decimal string with two
// fraction digits, mirroring the numeric(10,2) column.
type Car struct {
	ID           string    `json:"id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Type         string    `json:"type"`
	Transmission string    `json:"transmission"`
	FuelType     string    `json:"fuelType"`
	Seats        int       `json:"seats"`
	PricePerDay  string    `json:"pricePerDay"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Description  string    `json:"description,omitempty"`
	Available    bool      `json:"available"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CarFilter narrows a car listing. Zero values mean "any".
type CarFilter struct {
	Type          string
	AvailableOnly bool
}
