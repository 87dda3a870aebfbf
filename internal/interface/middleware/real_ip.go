package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// forwardedHeaders are honoured only when the direct peer is a trusted proxy.
var forwardedHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// ConfigureClientIP sets which peers may report the client address through
// forwarding headers. With no proxies, c.ClientIP() is the socket address.
// platform "cloudflare" trusts CF-Connecting-IP and must only be set when the
// app is reachable solely through Cloudflare.
func ConfigureClientIP(engine *gin.Engine, proxies []string, platform string) error {
	if err := engine.SetTrustedProxies(proxies); err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}
	engine.RemoteIPHeaders = forwardedHeaders
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case "":
	case "cloudflare":
		engine.TrustedPlatform = gin.PlatformCloudflare
	case "appengine":
		engine.TrustedPlatform = gin.PlatformGoogleAppEngine
	default:
		return fmt.Errorf("unknown trusted platform %q", platform)
	}
	return nil
}

// RealIP stores the resolved client IP in the Gin context (key: "real_ip")
// for the rate limiter and logs.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("real_ip", c.ClientIP())
		c.Next()
	}
}
