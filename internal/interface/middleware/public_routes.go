package middleware

import "strings"

// publicRoutes are reachable without a session. Each entry except "/" also
// covers its sub-paths ("/cars" covers "/cars/abc" but not "/carsxyz").
var publicRoutes = []string{
	"/",
	"/cars",
	"/health",
	"/api/auth/login",
	"/api/auth/signup",
	"/api/auth/logout",
	"/api/auth/me",
	"/api/cars",
}

var staticPrefixes = []string{"/static", "/assets", "/favicon"}

// IsPublicRoute reports whether path can be served without a session.
// Any path containing a dot is treated as a static asset.
func IsPublicRoute(path string) bool {
	if strings.Contains(path, ".") {
		return true
	}
	for _, p := range staticPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	for _, r := range publicRoutes {
		if path == r || (r != "/" && strings.HasPrefix(path, r+"/")) {
			return true
		}
	}
	return false
}

// IsAPIRoute reports whether path belongs to the JSON API rather than a page.
func IsAPIRoute(path string) bool {
	return strings.HasPrefix(path, "/api/")
}
