package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/go-car-rental/internal/application"
	"github.com/oksasatya/go-car-rental/internal/domain/entity"
	"github.com/oksasatya/go-car-rental/internal/interface/middleware"
)

// PageHandler renders the server-side pages. Templates are installed on the
// engine with SetHTMLTemplate.
type PageHandler struct {
	Auth     *app.AuthService
	CarSvc   *app.CarService
	Bookings *app.BookingService
	Company  string
	Logger   *logrus.Logger
}

func NewPageHandler(auth *app.AuthService, cars *app.CarService, bookings *app.BookingService, company string, logger *logrus.Logger) *PageHandler {
	return &PageHandler{Auth: auth, CarSvc: cars, Bookings: bookings, Company: company, Logger: logger}
}

type pageData struct {
	Title         string
	Company       string
	User          *entity.SessionUser
	Cars          []entity.Car
	Type          string
	AvailableOnly bool
	Bookings      []entity.BookingWithCar
}

func (h *PageHandler) base(c *gin.Context, title string) pageData {
	d := pageData{Title: title, Company: h.Company}
	if uid := middleware.UserID(c); uid != "" {
		if u, err := h.Auth.GetUser(c.Request.Context(), uid); err == nil {
			d.User = u.ToSession()
		}
	}
	return d
}

func (h *PageHandler) fail(c *gin.Context, err error) {
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("path", c.Request.URL.Path).Error("render page failed")
	}
	c.String(http.StatusInternalServerError, "Something went wrong")
}

// Home GET /
func (h *PageHandler) Home(c *gin.Context) {
	d := h.base(c, "Home")
	cars, err := h.CarSvc.List(c.Request.Context(), entity.CarFilter{AvailableOnly: true})
	if err != nil {
		h.fail(c, err)
		return
	}
	d.Cars = cars
	c.HTML(http.StatusOK, "home", d)
}

// Cars GET /cars?type=&available=true
func (h *PageHandler) Cars(c *gin.Context) {
	d := h.base(c, "Cars")
	d.Type = c.Query("type")
	d.AvailableOnly = c.Query("available") == "true"
	cars, err := h.CarSvc.List(c.Request.Context(), entity.CarFilter{Type: d.Type, AvailableOnly: d.AvailableOnly})
	if err != nil {
		h.fail(c, err)
		return
	}
	d.Cars = cars
	c.HTML(http.StatusOK, "cars", d)
}

// Dashboard GET /dashboard (protected by the gatekeeper)
func (h *PageHandler) Dashboard(c *gin.Context) {
	d := h.base(c, "Dashboard")
	if d.User == nil {
		// valid token for a deleted account
		c.Redirect(http.StatusFound, "/")
		return
	}
	list, err := h.Bookings.List(c.Request.Context(), d.User.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	d.Bookings = list
	c.HTML(http.StatusOK, "dashboard", d)
}
