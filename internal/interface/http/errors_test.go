package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	app "github.com/oksasatya/go-car-rental/internal/application"
	"github.com/oksasatya/go-car-rental/pkg/helpers"
)

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		err    error
		status int
		body   string
	}{
		{app.ErrMissingField, http.StatusBadRequest, "Email and password are required"},
		{app.ErrPasswordTooShort, http.StatusBadRequest, "Password must be at least 8 characters"},
		{app.ErrPasswordTooSimple, http.StatusBadRequest, "Password must contain uppercase, lowercase, and a number"},
		{app.ErrPasswordTooLong, http.StatusBadRequest, "Password must be at most 72 bytes"},
		{app.ErrDuplicateEmail, http.StatusBadRequest, "Email already registered"},
		{app.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{fmt.Errorf("wrapped: %w", app.ErrBookingNotFound), http.StatusNotFound, "Booking not found"},
		{app.ErrBookingNotCancellable, http.StatusConflict, "Booking can no longer be cancelled"},
		{app.ErrCarUnavailable, http.StatusBadRequest, "Car not available"},
		{errors.New("pq: connection refused on 10.0.0.5"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			writeError(c, helpers.NewDiscardLogger(), tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
			assert.NotContains(t, w.Body.String(), "10.0.0.5")
		})
	}
}
