package http

import (
	"insights-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the alert and evaluation routes. Every route is
// scoped: the caller identity comes from the X-User-ID header.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	alerts := r.Group("/alerts")
	alerts.Use(mw.Scope())
	{
		alerts.GET("", h.List)
		alerts.POST("/:id/read", h.MarkRead)
	}

	r.POST("/evaluate", mw.Scope(), h.Evaluate)
}
