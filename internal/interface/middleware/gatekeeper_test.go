package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-car-rental/pkg/helpers"
)

const testSecret = "gatekeeper-test-secret-0123456789"

func init() { gin.SetMode(gin.TestMode) }

func newGatedRouter(jwt *helpers.JWTManager) *gin.Engine {
	r := gin.New()
	r.Use(Gatekeeper(jwt, helpers.NewSessionCookie("", false), helpers.NewDiscardLogger()))
	echo := func(c *gin.Context) { c.String(http.StatusOK, "user=%s", UserID(c)) }
	r.GET("/", echo)
	r.GET("/cars", echo)
	r.GET("/dashboard", echo)
	r.GET("/api/bookings", echo)
	r.POST("/api/cars", RequireSession(), echo)
	return r
}

func do(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func clearedCookie(w *httptest.ResponseRecorder) bool {
	for _, c := range w.Result().Cookies() {
		if c.Name == helpers.SessionCookieName && c.MaxAge < 0 {
			return true
		}
	}
	return false
}

func TestGatekeeper(t *testing.T) {
	jwt := helpers.NewJWTManager(testSecret)
	r := newGatedRouter(jwt)

	valid, _, err := jwt.Issue("user-1")
	require.NoError(t, err)

	expiredMgr := helpers.NewJWTManager(testSecret).WithClock(func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) })
	expired, _, err := expiredMgr.Issue("user-1")
	require.NoError(t, err)

	forged, _, err := helpers.NewJWTManager("another-secret-another-secret-00").Issue("user-1")
	require.NoError(t, err)

	t.Run("public page without cookie", func(t *testing.T) {
		w := do(r, http.MethodGet, "/cars", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user=", w.Body.String())
	})

	t.Run("public page resolves a valid session", func(t *testing.T) {
		w := do(r, http.MethodGet, "/", valid)
		assert.Equal(t, "user=user-1", w.Body.String())
	})

	t.Run("protected page without cookie redirects", func(t *testing.T) {
		w := do(r, http.MethodGet, "/dashboard", "")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.False(t, clearedCookie(w))
	})

	t.Run("protected page with expired token redirects and clears cookie", func(t *testing.T) {
		w := do(r, http.MethodGet, "/dashboard", expired)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.True(t, clearedCookie(w))
	})

	t.Run("protected page with forged token redirects and clears cookie", func(t *testing.T) {
		w := do(r, http.MethodGet, "/dashboard", forged)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.True(t, clearedCookie(w))
	})

	t.Run("protected api without cookie is 401", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/bookings", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Header().Get("Location"))
		assert.Contains(t, w.Body.String(), `"error":"Unauthorized"`)
	})

	t.Run("protected api with invalid token is 401", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/bookings", "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, clearedCookie(w))
	})

	t.Run("valid token passes and exposes user id", func(t *testing.T) {
		w := do(r, http.MethodGet, "/dashboard", valid)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user=user-1", w.Body.String())

		w = do(r, http.MethodGet, "/api/bookings", valid)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("session-only action under public prefix", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/cars", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = do(r, http.MethodPost, "/api/cars", valid)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
