package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"insights-srv/internal/model"
	"insights-srv/pkg/response"
)

// ScopeKey is the gin context key under which the caller scope is stored.
const ScopeKey = "scope"

// Scope returns a middleware that builds the caller scope from the X-User-ID
// header and stores it in the gin context. There is no authentication layer;
// the header is the identity. Requests without it are rejected.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if userID == "" {
			m.l.Warnf(c.Request.Context(), "internal.middleware.Scope: missing X-User-ID header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ScopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// GetScope reads the caller scope a Scope middleware stored earlier. The
// boolean is false on routes that did not pass through it.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(ScopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok && sc.IsValid()
}
