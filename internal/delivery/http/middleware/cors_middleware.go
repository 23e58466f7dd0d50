package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers for the SPA frontend.
//
// Allowed origins are strict: the configured frontend URL, localhost in
// development, and swipehire-* Vercel preview deployments. Anything else
// gets no CORS headers and the browser blocks the request.
func CORSMiddleware(frontendURL string) gin.HandlerFunc {
	isProduction := os.Getenv("GIN_MODE") == "release"

	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
		"http://localhost:5173": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		var isAllowed bool

		if frontendURL != "" && origin == frontendURL {
			isAllowed = true
		}

		if !isProduction && devOrigins[origin] {
			isAllowed = true
		}

		// Vercel preview deployments, swipehire-* subdomains only. The
		// prefix check blocks lookalike subdomains on other accounts.
		if !isAllowed && strings.HasSuffix(origin, ".vercel.app") {
			subdomain := strings.TrimPrefix(origin, "https://")
			subdomain = strings.TrimSuffix(subdomain, ".vercel.app")
			if strings.HasPrefix(subdomain, "swipehire") ||
				strings.Contains(subdomain, "-swipehire-") {
				isAllowed = true
			}
		}

		// Empty origin (same-origin requests) - allow
		if origin == "" {
			isAllowed = true
		}

		if isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
