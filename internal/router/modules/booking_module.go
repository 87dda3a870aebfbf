package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-car-rental/internal/container"
	handlers "github.com/oksasatya/go-car-rental/internal/interface/http"
	"github.com/oksasatya/go-car-rental/internal/interface/middleware"
)

type BookingModule struct {
	Handler *handlers.BookingHandler
}

func NewBookingModule(h *handlers.BookingHandler) *BookingModule {
	return &BookingModule{Handler: h}
}

func (m *BookingModule) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByUserID(), rateAllow())

	b := rg.Group("/bookings", middleware.RequireSession())
	{
		b.GET("", m.Handler.List)
		b.POST("", createLimiter, m.Handler.Create)
		b.POST("/:id/cancel", m.Handler.Cancel)
	}
}
