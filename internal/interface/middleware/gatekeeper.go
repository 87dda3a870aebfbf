package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-car-rental/pkg/helpers"
	"github.com/oksasatya/go-car-rental/pkg/response"
)

const CtxUserIDKey = "userID"

// Gatekeeper runs ahead of every route. Public paths pass through. Protected
// pages without a valid token are redirected to "/" (dropping a stale cookie);
// protected API calls get a 401. A valid token puts its user id in the context.
func Gatekeeper(jwt *helpers.JWTManager, cookies *helpers.SessionCookie, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if IsPublicRoute(path) {
			// Handlers under public prefixes may still read the session.
			if token, ok := cookies.Get(c); ok {
				if claims, err := jwt.Verify(token); err == nil {
					c.Set(CtxUserIDKey, claims.UserID)
				}
			}
			c.Next()
			return
		}

		token, ok := cookies.Get(c)
		if !ok {
			reject(c, path)
			return
		}
		claims, err := jwt.Verify(token)
		if err != nil {
			if logger != nil {
				logger.WithField("path", path).Debug("rejected invalid session token")
			}
			if !IsAPIRoute(path) {
				cookies.Clear(c)
			}
			reject(c, path)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

func reject(c *gin.Context, path string) {
	if IsAPIRoute(path) {
		response.Unauthorized(c)
		return
	}
	c.Redirect(http.StatusFound, "/")
	c.Abort()
}

// RequireSession guards a single route whose path is public by prefix but
// whose action needs a user, such as POST /api/cars. It relies on Gatekeeper
// having resolved the cookie.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == "" {
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id, or "" when there is none.
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserIDKey)
}
