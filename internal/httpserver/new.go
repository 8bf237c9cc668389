package httpserver

import (
	"errors"
	"net/http"
	"time"

	"insights-srv/internal/alerting"
	"insights-srv/internal/analysis"
	"insights-srv/internal/campaign"
	"insights-srv/internal/collector"
	"insights-srv/internal/websocket"
	"insights-srv/pkg/discord"
	"insights-srv/pkg/log"
	"insights-srv/pkg/monitoring"
	pkgRedis "insights-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

// HTTPServer wires the HTTP surface of the service. New() only wires and
// validates dependencies; Run() (in httpserver.go) starts serving.
type HTTPServer struct {
	gin         *gin.Engine
	logger      log.Logger
	host        string
	port        int
	mode        string
	corsOrigins []string

	readTimeout  time.Duration
	writeTimeout time.Duration
	idleTimeout  time.Duration

	// Core services
	campaignUC campaign.UseCase
	analysisUC analysis.UseCase
	alertingUC alerting.UseCase

	// Live content acquisition. Optional.
	collectors *collector.Manager

	// WebSocket feed
	hub       *websocket.Hub
	wsHandler *websocket.Handler

	// External services. All optional.
	metrics *monitoring.MetricsCollector
	redis   pkgRedis.IRedis
	discord discord.IDiscord

	server *http.Server
}

// Config is the constructor input for HTTPServer. Keep this minimal: only
// fields really needed by HTTPServer.
type Config struct {
	Host string
	Port int
	// Mode selects the gin mode: debug, release or test.
	Mode string
	// CORSOrigins overrides the default allow-all CORS policy.
	CORSOrigins []string

	// Timeouts fall back to the package defaults when zero.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	CampaignUC campaign.UseCase
	AnalysisUC analysis.UseCase
	AlertingUC alerting.UseCase

	Collectors *collector.Manager

	Hub       *websocket.Hub
	WSHandler *websocket.Handler

	Metrics *monitoring.MetricsCollector
	Redis   pkgRedis.IRedis
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// This does not start any goroutines; use Run() to start serving.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	mode := cfg.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	srv := &HTTPServer{
		gin:         gin.New(),
		logger:      logger,
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        mode,
		corsOrigins: cfg.CORSOrigins,

		readTimeout:  defaultDuration(cfg.ReadTimeout, defaultReadTimeout),
		writeTimeout: defaultDuration(cfg.WriteTimeout, defaultWriteTimeout),
		idleTimeout:  defaultDuration(cfg.IdleTimeout, defaultIdleTimeout),

		campaignUC: cfg.CampaignUC,
		analysisUC: cfg.AnalysisUC,
		alertingUC: cfg.AlertingUC,

		collectors: cfg.Collectors,

		hub:       cfg.Hub,
		wsHandler: cfg.WSHandler,

		metrics: cfg.Metrics,
		redis:   cfg.Redis,
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func defaultDuration(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.campaignUC == nil {
		return errors.New("campaign usecase is required")
	}
	if srv.analysisUC == nil {
		return errors.New("analysis usecase is required")
	}
	if srv.alertingUC == nil {
		return errors.New("alerting usecase is required")
	}
	if srv.hub == nil || srv.wsHandler == nil {
		return errors.New("websocket hub and handler are required")
	}

	return nil
}
