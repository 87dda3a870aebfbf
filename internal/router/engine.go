package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-car-rental/internal/container"
	"github.com/oksasatya/go-car-rental/internal/interface/middleware"
	"github.com/oksasatya/go-car-rental/pkg/validation"
	"github.com/oksasatya/go-car-rental/web"
)

// NewEngine builds the gin engine with the global middleware chain, the page
// templates and every module registered. The container must be populated.
func NewEngine() (*gin.Engine, error) {
	cfg := container.GetConfig()
	validation.Init()

	engine := gin.New()
	if err := middleware.ConfigureClientIP(engine, cfg.TrustedProxyList(), cfg.TrustedPlatform); err != nil {
		return nil, err
	}
	engine.Use(gin.Recovery())
	if cfg.HTTPLogEnabled {
		engine.Use(gin.Logger())
	}
	engine.Use(middleware.RequestIDMiddleware(), middleware.RealIP())

	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		engine.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	engine.Use(middleware.Gatekeeper(container.GetJWT(), container.GetCookies(), container.GetLogger()))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(tmpl)
	engine.StaticFS("/static", http.FS(web.Static()))

	reg := NewRegistry(engine)
	InitModules(reg)
	reg.RegisterAll()
	return engine, nil
}
