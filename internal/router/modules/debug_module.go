package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-car-rental/internal/container"
	"github.com/oksasatya/go-car-rental/internal/interface/middleware"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

// Register exposes expvar at /api/debug/vars: runtime memstats plus the
// car_rental counters (signups, logins, bookings, cache hits). The path is not
// public, so the gatekeeper requires a session.
func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil)
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
