package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-car-rental/internal/interface/http"
	"github.com/oksasatya/go-car-rental/internal/interface/middleware"
)

// CarModule: reads are public, writes need a session. /api/seed sits outside
// the public prefixes so the gatekeeper already guards it.
type CarModule struct {
	Handler *handlers.CarHandler
}

func NewCarModule(h *handlers.CarHandler) *CarModule {
	return &CarModule{Handler: h}
}

func (m *CarModule) Register(rg *gin.RouterGroup) {
	cars := rg.Group("/cars")
	{
		cars.GET("", m.Handler.List)
		cars.GET("/search", m.Handler.Search)
		cars.GET("/:id", m.Handler.Get)
		cars.POST("", middleware.RequireSession(), m.Handler.Create)
		cars.POST("/:id/image", middleware.RequireSession(), m.Handler.UploadImage)
	}
	rg.POST("/seed", middleware.RequireSession(), m.Handler.Seed)
}
