package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/go-car-rental/internal/application"
	"github.com/oksasatya/go-car-rental/internal/domain/entity"
	"github.com/oksasatya/go-car-rental/internal/interface/middleware"
	"github.com/oksasatya/go-car-rental/pkg/response"
	"github.com/oksasatya/go-car-rental/pkg/validation"
)

type BookingHandler struct {
	Svc    *app.BookingService
	Logger *logrus.Logger
}

func NewBookingHandler(svc *app.BookingService, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

type createBookingRequest struct {
	CarID           string `json:"carId" binding:"required"`
	StartDate       string `json:"startDate" binding:"required,bookingdate"`
	EndDate         string `json:"endDate" binding:"required,bookingdate"`
	PickupLocation  string `json:"pickupLocation" binding:"max=200"`
	DropoffLocation string `json:"dropoffLocation" binding:"max=200"`
}

type bookingPayload struct {
	Booking *entity.Booking `json:"booking"`
}

type bookingsPayload struct {
	Bookings []entity.BookingWithCar `json:"bookings"`
}

// List GET /api/bookings
func (h *BookingHandler) List(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, bookingsPayload{Bookings: list}, "bookings", map[string]any{"count": len(list)})
}

// Create POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Missing required fields", validation.ToDetails(err))
		return
	}
	b, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), app.CreateBookingInput{
		CarID:           req.CarID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, bookingPayload{Booking: b}, "Booking created", nil)
}

// Cancel POST /api/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	b, err := h.Svc.Cancel(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, bookingPayload{Booking: b}, "Booking cancelled", nil)
}
