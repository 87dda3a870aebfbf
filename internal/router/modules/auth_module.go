package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-car-rental/internal/container"
	handlers "github.com/oksasatya/go-car-rental/internal/interface/http"
	"github.com/oksasatya/go-car-rental/internal/interface/middleware"
)

// rateAllow bypasses limits for private networks outside production.
func rateAllow() middleware.AllowFunc {
	if cfg := container.GetConfig(); cfg != nil && !cfg.IsProduction() {
		return middleware.AllowPrivateIP()
	}
	return middleware.AllowNone()
}

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), rateAllow())
	signupLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), rateAllow())

	auth := rg.Group("/auth")
	{
		auth.POST("/login", loginLimiter, m.Handler.Login)
		auth.POST("/signup", signupLimiter, m.Handler.Signup)
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/me", m.Handler.Me)
	}
}
