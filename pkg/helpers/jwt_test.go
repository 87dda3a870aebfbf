package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestManager(clock *fakeClock) *JWTManager {
	return NewJWTManager("unit-test-secret").WithClock(clock.Now)
}

func TestJWTManager_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := newTestManager(clock)

	tok, exp, err := m.Issue("user-123")
	require.NoError(t, err)
	assert.Equal(t, clock.t.Add(7*24*time.Hour), exp)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, clock.t.Unix(), claims.IssuedAt.Unix())
}

func TestJWTManager_ValidUntilExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := newTestManager(clock)

	tok, exp, err := m.Issue("u1")
	require.NoError(t, err)

	clock.t = exp.Add(-time.Second)
	_, err = m.Verify(tok)
	require.NoError(t, err)

	clock.t = exp.Add(time.Second)
	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_TamperedToken(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	m := newTestManager(clock)

	tok, _, err := m.Issue("u1")
	require.NoError(t, err)

	for i := 0; i < len(tok); i++ {
		if tok[i] == '.' {
			continue
		}
		b := []byte(tok)
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		_, err := m.Verify(string(b))
		assert.ErrorIs(t, err, ErrInvalidToken, "byte %d", i)
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	tok, _, err := NewJWTManager("right-secret").WithClock(clock.Now).Issue("u2")
	require.NoError(t, err)

	_, err = NewJWTManager("wrong-secret").WithClock(clock.Now).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_RejectsOtherAlgorithms(t *testing.T) {
	m := NewJWTManager("secret")

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: "u3",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Verify(s)
	assert.ErrorIs(t, err, ErrInvalidToken)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		UserID: "u3",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err = hs512.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = m.Verify(s)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_RequiresExpiryAndUser(t *testing.T) {
	m := NewJWTManager("secret")

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: "u4"})
	s, err := noExp.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = m.Verify(s)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noUser := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	s, err = noUser.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = m.Verify(s)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_Malformed(t *testing.T) {
	m := NewJWTManager("k")
	for _, s := range []string{"", "not.a.jwt", "abc"} {
		_, err := m.Verify(s)
		assert.ErrorIs(t, err, ErrInvalidToken, s)
	}
}
