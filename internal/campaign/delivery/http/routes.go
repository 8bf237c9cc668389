package http

import (
	"insights-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the campaign routes. Every route is scoped: the
// caller identity comes from the X-User-ID header.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	campaigns := r.Group("/campaigns")
	campaigns.Use(mw.Scope())
	{
		campaigns.POST("", h.Create)
		campaigns.GET("", h.List)
		campaigns.GET("/:id", h.Detail)
	}
}
