package helpers

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCookieCtx(req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == SessionCookieName {
			return ck
		}
	}
	t.Fatalf("cookie %s not set", SessionCookieName)
	return nil
}

func TestManager_SetAttributes(t *testing.T) {
	c, w := newCookieCtx(httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	NewSessionCookie("", false).Set(c, "tok")

	ck := findCookie(t, w)
	assert.Equal(t, "tok", ck.Value)
	assert.True(t, ck.HttpOnly)
	assert.False(t, ck.Secure)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, 604800, ck.MaxAge)
	assert.Equal(t, int(SessionTTL/time.Second), ck.MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
}

func TestManager_SecureWhenConfiguredOrTLS(t *testing.T) {
	c, w := newCookieCtx(httptest.NewRequest(http.MethodPost, "/", nil))
	NewSessionCookie("", true).Set(c, "tok")
	assert.True(t, findCookie(t, w).Secure)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.TLS = &tls.ConnectionState{}
	c, w = newCookieCtx(req)
	NewSessionCookie("", false).Set(c, "tok")
	assert.True(t, findCookie(t, w).Secure)
}

func TestManager_Get(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "abc"})
	c, _ := newCookieCtx(req)
	tok, ok := NewSessionCookie("", false).Get(c)
	require.True(t, ok)
	assert.Equal(t, "abc", tok)

	c, _ = newCookieCtx(httptest.NewRequest(http.MethodGet, "/", nil))
	_, ok = NewSessionCookie("", false).Get(c)
	assert.False(t, ok)
}

func TestManager_ClearIsIdempotent(t *testing.T) {
	m := NewSessionCookie("", false)
	for i := 0; i < 2; i++ {
		c, w := newCookieCtx(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
		m.Clear(c)
		ck := findCookie(t, w)
		assert.Empty(t, ck.Value)
		assert.Less(t, ck.MaxAge, 0)
	}
}
