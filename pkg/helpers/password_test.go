package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func fastHasher() *BcryptHasher { return &BcryptHasher{Cost: bcrypt.MinCost} }

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := fastHasher()
	for _, pwd := range []string{"GoodPass1", "Another-Secret9", "ñandú Üñí 42A"} {
		hash, err := h.Hash(pwd)
		require.NoError(t, err)
		assert.NotEqual(t, pwd, hash)

		ok, err := h.Verify(pwd, hash)
		require.NoError(t, err)
		assert.True(t, ok, pwd)
	}
}

func TestBcryptHasher_WrongPassword(t *testing.T) {
	h := fastHasher()
	hash, err := h.Hash("GoodPass1")
	require.NoError(t, err)

	ok, err := h.Verify("GoodPass2", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	h := fastHasher()
	a, err := h.Hash("GoodPass1")
	require.NoError(t, err)
	b, err := h.Hash("GoodPass1")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := fastHasher()
	for _, stored := range []string{"", "plaintext", "$2a$10$short"} {
		ok, err := h.Verify("GoodPass1", stored)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrInvalidCredentialFormat, stored)
	}
}

func TestNewPasswordHasher_UsesDefaultCost(t *testing.T) {
	h := NewPasswordHasher()
	assert.Equal(t, DefaultPasswordCost, h.Cost)
}
