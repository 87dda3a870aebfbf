package validation

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type carInput struct {
	Make  string `json:"make" validate:"required"`
	Type  string `json:"type" validate:"required,cartype"`
	Year  int    `json:"year" validate:"modelyear"`
	Price string `json:"pricePerDay" validate:"required,price"`
	Seats int    `json:"seats" validate:"min=1,max=9"`
}

type bookingInput struct {
	Start string `json:"startDate" validate:"required,bookingdate"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	Register(v)
	return v
}

func TestCustomTags(t *testing.T) {
	v := newValidator()

	ok := carInput{Make: "Audi", Type: "Sedan", Year: 2024, Price: "89.00", Seats: 5}
	assert.NoError(t, v.Struct(ok))

	bad := carInput{Type: "Spaceship", Year: 1800, Price: "12.345", Seats: 0}
	details := ToDetails(v.Struct(bad))
	assert.Equal(t, "is required", details["make"])
	assert.Equal(t, "must be a known car type", details["type"])
	assert.Equal(t, "must be a plausible model year", details["year"])
	assert.Equal(t, "must be a positive amount with at most two decimals", details["pricePerDay"])
	assert.Equal(t, "must be at least 1", details["seats"])
}

func TestBookingDateTag(t *testing.T) {
	v := newValidator()
	assert.NoError(t, v.Struct(bookingInput{Start: "2025-03-01"}))
	assert.NoError(t, v.Struct(bookingInput{Start: "2025-03-01T10:00:00Z"}))
	details := ToDetails(v.Struct(bookingInput{Start: "tomorrow"}))
	assert.Equal(t, "must be a date in YYYY-MM-DD format", details["startDate"])
}

func TestToDetailsPayloadErrors(t *testing.T) {
	assert.Nil(t, ToDetails(nil))

	var dst map[string]any
	err := json.Unmarshal([]byte("{bad"), &dst)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))

	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(assert.AnError))
}
