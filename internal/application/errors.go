package application

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField       = errors.New("email and password are required")
	ErrWeakPassword       = errors.New("weak password")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthenticated covers absent, forged and expired tokens and tokens
	// of users that no longer exist.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrCarNotFound           = errors.New("car not found")
	ErrCarUnavailable        = errors.New("car not available")
	ErrInvalidPrice          = errors.New("price must be a positive amount with at most two decimals")
	ErrInvalidBookingDates   = errors.New("end date must be at least one day after start date")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrBookingNotCancellable = errors.New("booking can no longer be cancelled")
	ErrStorageNotConfigured  = errors.New("image storage not configured")
	ErrUnsupportedImage      = errors.New("image must be jpeg, png or webp")
)

// All wrap ErrWeakPassword; handlers pick the specific message.
var (
	ErrPasswordTooShort  = fmt.Errorf("%w: password must be at least 8 characters", ErrWeakPassword)
	ErrPasswordTooSimple = fmt.Errorf("%w: password must contain uppercase, lowercase, and a number", ErrWeakPassword)
	ErrPasswordTooLong   = fmt.Errorf("%w: password must be at most 72 bytes", ErrWeakPassword)
)
