package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func realIPEngine(t *testing.T, proxies []string, platform string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, ConfigureClientIP(r, proxies, platform))
	r.Use(RealIP())
	r.GET("/ip", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("real_ip")) })
	return r
}

func clientIP(r *gin.Engine, remote string, headers map[string]string) string {
	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.RemoteAddr = remote
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Body.String()
}

func TestRealIP_IgnoresForwardedHeadersFromUntrustedPeers(t *testing.T) {
	r := realIPEngine(t, nil, "")
	for _, h := range []map[string]string{
		{"X-Forwarded-For": "1.1.1.1"},
		{"X-Forwarded-For": "10.0.0.1"},
		{"X-Real-IP": "2.2.2.2"},
		{"CF-Connecting-IP": "3.3.3.3"},
	} {
		assert.Equal(t, "203.0.113.50", clientIP(r, "203.0.113.50:4711", h), h)
	}
}

func TestRealIP_TrustedProxy(t *testing.T) {
	r := realIPEngine(t, []string{"10.0.0.0/8"}, "")

	assert.Equal(t, "198.51.100.1", clientIP(r, "10.1.2.3:80", map[string]string{"X-Forwarded-For": "198.51.100.1"}))
	// hops added by trusted proxies are skipped from the right
	assert.Equal(t, "198.51.100.1", clientIP(r, "10.1.2.3:80", map[string]string{"X-Forwarded-For": "198.51.100.1, 10.9.9.9"}))
	// a spoofed entry left of the real client is ignored
	assert.Equal(t, "198.51.100.1", clientIP(r, "10.1.2.3:80", map[string]string{"X-Forwarded-For": "6.6.6.6, 198.51.100.1"}))
	assert.Equal(t, "203.0.113.50", clientIP(r, "203.0.113.50:80", map[string]string{"X-Forwarded-For": "198.51.100.1"}))
}

func TestRealIP_CloudflarePlatform(t *testing.T) {
	r := realIPEngine(t, nil, "cloudflare")
	assert.Equal(t, "203.0.113.7", clientIP(r, "172.64.0.1:443", map[string]string{"CF-Connecting-IP": "203.0.113.7"}))
}

func TestConfigureClientIP_Errors(t *testing.T) {
	assert.Error(t, ConfigureClientIP(gin.New(), []string{"not-an-ip"}, ""))
	assert.Error(t, ConfigureClientIP(gin.New(), nil, "fastly"))
}
