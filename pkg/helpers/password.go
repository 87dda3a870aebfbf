package helpers

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordCost is the bcrypt work factor for stored credentials.
const DefaultPasswordCost = 12

// ErrInvalidCredentialFormat means a stored hash is not a usable bcrypt hash.
var ErrInvalidCredentialFormat = errors.New("invalid credential format")

// BcryptHasher hashes and verifies passwords with bcrypt at a fixed cost.
type BcryptHasher struct {
	Cost int
}

// NewPasswordHasher returns a hasher using DefaultPasswordCost.
func NewPasswordHasher() *BcryptHasher {
	return &BcryptHasher{Cost: DefaultPasswordCost}
}

// Hash hashes the plain text password using bcrypt
func (h *BcryptHasher) Hash(plain string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = DefaultPasswordCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compares a bcrypt hash with a plain password. A wrong password is
// (false, nil); only a malformed hash yields ErrInvalidCredentialFormat.
func (h *BcryptHasher) Verify(plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, ErrInvalidCredentialFormat
	}
}
