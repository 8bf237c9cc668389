package httpserver

import (
	"insights-srv/pkg/errors"
	"insights-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the insights service is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} response.Resp "Redis connection failed"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	redisState := "disabled"
	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			response.HttpError(c, errors.NewHTTPError(503, "Redis connection failed"))
			return
		}
		redisState = "connected"
	}

	stats := srv.hub.Stats()

	response.OK(c, gin.H{
		"status":             "healthy",
		"message":            "From Insights Service With Love",
		"version":            "1.0.0",
		"service":            "insights-srv",
		"active_connections": stats.ActiveConnections,
		"unique_users":       stats.UniqueUsers,
		"redis":              redisState,
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the insights service is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			response.HttpError(c, errors.NewHTTPError(503, "Redis connection not available"))
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": "From Insights Service With Love",
		"version": "1.0.0",
		"service": "insights-srv",
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the insights service is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": "From Insights Service With Love",
		"version": "1.0.0",
		"service": "insights-srv",
	})
}
