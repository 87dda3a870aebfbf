package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/go-car-rental/internal/application"
	"github.com/oksasatya/go-car-rental/pkg/response"
)

type errorMapping struct {
	err     error
	status  int
	message string
}

// Checked in order; the specific password errors come before ErrWeakPassword.
var errorMappings = []errorMapping{
	{app.ErrMissingField, http.StatusBadRequest, "Email and password are required"},
	{app.ErrPasswordTooShort, http.StatusBadRequest, "Password must be at least 8 characters"},
	{app.ErrPasswordTooSimple, http.StatusBadRequest, "Password must contain uppercase, lowercase, and a number"},
	{app.ErrPasswordTooLong, http.StatusBadRequest, "Password must be at most 72 bytes"},
	{app.ErrWeakPassword, http.StatusBadRequest, "Password is too weak"},
	{app.ErrDuplicateEmail, http.StatusBadRequest, "Email already registered"},
	{app.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{app.ErrUnauthenticated, http.StatusUnauthorized, "Unauthorized"},
	{app.ErrCarNotFound, http.StatusNotFound, "Car not found"},
	{app.ErrCarUnavailable, http.StatusBadRequest, "Car not available"},
	{app.ErrInvalidPrice, http.StatusBadRequest, "Price must be a positive amount with at most two decimals"},
	{app.ErrInvalidBookingDates, http.StatusBadRequest, "End date must be after start date"},
	{app.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{app.ErrBookingNotCancellable, http.StatusConflict, "Booking can no longer be cancelled"},
	{app.ErrStorageNotConfigured, http.StatusServiceUnavailable, "Image storage is not configured"},
	{app.ErrUnsupportedImage, http.StatusBadRequest, "Image must be jpeg, png or webp"},
}

// writeError answers with the status and message mapped for err. Unknown
// errors are logged and answered with a generic 500.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			response.Error[any](c, m.status, m.message, m.message)
			return
		}
	}
	if logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"path":       c.FullPath(),
			"request_id": c.GetString("request_id"),
		}).Error("request failed")
	}
	response.Internal(c)
}
