package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls which cross-origin requests the API accepts.
type CORSConfig struct {
	// AllowedOrigins lists exact origins, "*" for any, or "*.domain"
	// wildcards that match any subdomain.
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
	// AllowCredentials permits cookies and authorization headers on
	// cross-origin requests.
	AllowCredentials bool
	// MaxAge is how long, in seconds, browsers may cache a preflight answer.
	MaxAge int
}

// DefaultCORSConfig allows any origin with the headers the API reads, which
// suits a dashboard served from another host.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{
			"Origin",
			"Content-Type",
			"Content-Length",
			"Accept",
			"Accept-Encoding",
			"Authorization",
			"X-Requested-With",
			"X-CSRF-Token",
			"X-User-ID",
		},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         86400,
	}
}

// CORS answers preflight requests and stamps CORS headers on everything else.
func CORS(config CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); originAllowed(origin, config.AllowedOrigins) {
			c.Header("Access-Control-Allow-Origin", origin)
		} else if allowsAnyOrigin(config.AllowedOrigins) {
			c.Header("Access-Control-Allow-Origin", "*")
		}

		if len(config.ExposedHeaders) > 0 {
			c.Header("Access-Control-Expose-Headers", strings.Join(config.ExposedHeaders, ", "))
		}
		if config.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method == http.MethodOptions {
			if len(config.AllowedMethods) > 0 {
				c.Header("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
			}
			if len(config.AllowedHeaders) > 0 {
				c.Header("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
			}
			if config.MaxAge > 0 {
				c.Header("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
			}

			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(origin string, allowed []string) bool {
	if origin == "" {
		return false
	}

	for _, candidate := range allowed {
		switch {
		case candidate == "*" || candidate == origin:
			return true
		case strings.HasPrefix(candidate, "*."):
			if strings.HasSuffix(origin, strings.TrimPrefix(candidate, "*")) {
				return true
			}
		}
	}

	return false
}

func allowsAnyOrigin(allowed []string) bool {
	return len(allowed) > 0 && allowed[0] == "*"
}
