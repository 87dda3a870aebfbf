package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "auth_token"

// SessionCookieMaxAge matches SessionTTL in seconds.
const SessionCookieMaxAge = int(SessionTTL / time.Second)

type SessionCookie struct {
	Domain string
	Secure bool
}

func NewSessionCookie(domain string, secure bool) *SessionCookie {
	return &SessionCookie{Domain: domain, Secure: secure}
}

// Set writes the session cookie: HttpOnly, SameSite=Lax, site-wide, 7 days.
func (m *SessionCookie) Set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, SessionCookieMaxAge, "/", m.Domain, m.secure(c), true)
}

// Get returns the session token if the cookie is present and non-empty.
func (m *SessionCookie) Get(c *gin.Context) (string, bool) {
	v, err := c.Cookie(SessionCookieName)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

// Clear expires the session cookie. Safe to call when no cookie was sent.
func (m *SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", m.Domain, m.secure(c), true)
}

func (m *SessionCookie) secure(c *gin.Context) bool {
	return m.Secure || c.Request.TLS != nil
}
