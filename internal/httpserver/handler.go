package httpserver

import (
	alertingHTTP "insights-srv/internal/alerting/delivery/http"
	campaignHTTP "insights-srv/internal/campaign/delivery/http"
	"insights-srv/internal/middleware"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.logger)

	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))

	corsConfig := middleware.DefaultCORSConfig()
	if len(srv.corsOrigins) > 0 {
		corsConfig.AllowedOrigins = srv.corsOrigins
	}
	srv.gin.Use(middleware.CORS(corsConfig))

	if srv.metrics != nil {
		srv.gin.Use(srv.metrics.MetricsMiddleware())
		srv.gin.GET("/metrics", srv.metrics.Handler())
	}

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Live alert feed. Identity is resolved inside the handler because the
	// browser WebSocket API cannot set custom headers.
	srv.gin.GET("/ws", srv.wsHandler.HandleWebSocket)
	srv.gin.GET("/ws/stats", srv.wsHandler.Stats)

	api := srv.gin.Group(Api)
	campaignHTTP.New(srv.logger, srv.campaignUC).RegisterRoutes(api, mw)
	alertingHTTP.New(srv.logger, srv.alertingUC, srv.campaignUC, srv.analysisUC, srv.collectors).RegisterRoutes(api, mw)

	return nil
}
