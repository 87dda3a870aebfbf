package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/go-car-rental/internal/application"
	"github.com/oksasatya/go-car-rental/internal/domain/entity"
	"github.com/oksasatya/go-car-rental/pkg/helpers"
	"github.com/oksasatya/go-car-rental/pkg/response"
	"github.com/oksasatya/go-car-rental/pkg/validation"
)

type CarHandler struct {
	Svc    *app.CarService
	Logger *logrus.Logger
}

func NewCarHandler(svc *app.CarService, logger *logrus.Logger) *CarHandler {
	return &CarHandler{Svc: svc, Logger: logger}
}

type createCarRequest struct {
	Make         string `json:"make" binding:"required,max=50"`
	Model        string `json:"model" binding:"required,max=50"`
	Year         int    `json:"year" binding:"required,modelyear"`
	Type         string `json:"type" binding:"required,cartype"`
	Transmission string `json:"transmission" binding:"required,oneof=Automatic Manual"`
	FuelType     string `json:"fuelType" binding:"required,oneof=Petrol Diesel Hybrid Electric"`
	Seats        int    `json:"seats" binding:"required,min=1,max=9"`
	PricePerDay  string `json:"pricePerDay" binding:"required,price"`
	ImageURL     string `json:"imageUrl" binding:"omitempty,max=500"`
	Description  string `json:"description" binding:"max=1000"`
	Featured     bool   `json:"featured"`
}

type carsPayload struct {
	Cars []entity.Car `json:"cars"`
}

type carPayload struct {
	Car *entity.Car `json:"car"`
}

// List GET /api/cars?type=SUV&available=true
func (h *CarHandler) List(c *gin.Context) {
	f := entity.CarFilter{
		Type:          c.Query("type"),
		AvailableOnly: c.Query("available") == "true",
	}
	cars, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, carsPayload{Cars: cars}, "cars", map[string]any{"count": len(cars)})
}

// Get GET /api/cars/:id
func (h *CarHandler) Get(c *gin.Context) {
	car, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, carPayload{Car: car}, "car", nil)
}

// Create POST /api/cars (session required)
func (h *CarHandler) Create(c *gin.Context) {
	var req createCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Missing required fields", validation.ToDetails(err))
		return
	}
	car, err := h.Svc.Create(c.Request.Context(), app.CreateCarInput{
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Type:         req.Type,
		Transmission: req.Transmission,
		FuelType:     req.FuelType,
		Seats:        req.Seats,
		PricePerDay:  req.PricePerDay,
		ImageURL:     req.ImageURL,
		Description:  req.Description,
		Featured:     req.Featured,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, carPayload{Car: car}, "Car created successfully", nil)
}

// Search GET /api/cars/search?q=suv&size=10
func (h *CarHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	cars, err := h.Svc.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, carsPayload{Cars: cars}, "search results", map[string]any{"count": len(cars)})
}

// UploadImage POST /api/cars/:id/image, multipart field "image" (session required)
func (h *CarHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, helpers.MaxImageSize+1<<20)
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "image file is required", map[string]string{"image": "is required"})
		return
	}
	if fh.Size > helpers.MaxImageSize {
		response.Error[any](c, http.StatusRequestEntityTooLarge, "image too large", map[string]string{"image": "must be at most 5MB"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	car, err := h.Svc.UploadImage(c.Request.Context(), c.Param("id"), f, fh.Header.Get("Content-Type"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, carPayload{Car: car}, "image uploaded", nil)
}

// Seed POST /api/seed. Inserts the demo fleet into an empty catalogue.
func (h *CarHandler) Seed(c *gin.Context) {
	inserted, existing, err := h.Svc.Seed(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if existing > 0 {
		response.Success[any](c, http.StatusOK, gin.H{"count": existing}, "Cars already exist in database", nil)
		return
	}
	response.Success(c, http.StatusCreated, carsPayload{Cars: inserted}, "Cars seeded successfully", map[string]any{"count": len(inserted)})
}
