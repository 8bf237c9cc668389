package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"insights-srv/config"
	configRedis "insights-srv/config/redis"
	"insights-srv/internal/alerting"
	alertingMemory "insights-srv/internal/alerting/repository/memory"
	alertingUsecase "insights-srv/internal/alerting/usecase"
	analysisUsecase "insights-srv/internal/analysis/usecase"
	campaignMemory "insights-srv/internal/campaign/repository/memory"
	campaignUsecase "insights-srv/internal/campaign/usecase"
	"insights-srv/internal/collector"
	"insights-srv/internal/httpserver"
	notifyUsecase "insights-srv/internal/notify/usecase"
	"insights-srv/internal/websocket"
	"insights-srv/pkg/discord"
	"insights-srv/pkg/log"
	"insights-srv/pkg/monitoring"
	pkgRedis "insights-srv/pkg/redis"

	"github.com/joho/godotenv"
)

const serviceName = "insights-srv"

// @Name Insights API
// @description Campaign monitoring and alerting for social platforms.
// @version 1
// @host localhost:8080
// @schemes http ws
func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Insights Service...")

	rootCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Discord webhook (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.Enabled {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
		if err != nil {
			logger.Warnf(ctx, "Failed to initialize Discord webhook: %v", err)
			discordClient = nil
		} else {
			defer discordClient.Close()
			logger.Info(ctx, "Discord webhook initialized")
		}
	}

	// Initialize Redis (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = configRedis.Connect(cfg.Redis)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
			return
		}
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected successfully to %s", cfg.Redis.Host)
	}

	// Initialize Prometheus metrics
	metrics := monitoring.NewMetricsCollector(serviceName)

	// Initialize WebSocket hub
	hub := websocket.NewHub(logger, metrics, cfg.WebSocket.MaxConnections)
	go hub.Run()
	logger.Info(ctx, "WebSocket hub started")

	wsHandler := websocket.NewHandler(hub, logger, websocket.Config{
		PingInterval:   cfg.WebSocket.PingInterval,
		PongWait:       cfg.WebSocket.PongWait,
		WriteWait:      cfg.WebSocket.WriteWait,
		MaxMessageSize: cfg.WebSocket.MaxMessageSize,
		SendBuffer:     cfg.WebSocket.SendBuffer,
		MaxConnections: cfg.WebSocket.MaxConnections,
		AllowedOrigins: cfg.WebSocket.AllowedOrigins,
		Environment:    cfg.Environment.Name,
	})

	// Initialize core services
	campaignUC := campaignUsecase.New(logger, campaignMemory.New(logger))
	analysisUC := analysisUsecase.New(logger)
	notifier := notifyUsecase.New(logger, discordClient, redisClient, hub)
	alertingUC := alertingUsecase.New(logger, alertingMemory.New(logger), analysisUC, notifier, metrics, alerting.Thresholds{
		TrendVolume:        cfg.Thresholds.TrendVolume,
		TrendVelocity:      cfg.Thresholds.TrendVelocity,
		EngagementSpikePct: cfg.Thresholds.EngagementSpikePct,
		EngagementDropPct:  cfg.Thresholds.EngagementDropPct,
		NegativeRatio:      cfg.Thresholds.NegativeRatio,
		MinSentimentSample: cfg.Thresholds.MinSentimentSample,
	})

	// Initialize platform collectors for the platforms with credentials
	var collectors []collector.Collector
	if cfg.Collector.Twitter.BearerToken != "" {
		tw, err := collector.NewTwitter(logger, collector.TwitterConfig{
			BearerToken: cfg.Collector.Twitter.BearerToken,
		})
		if err != nil {
			logger.Warnf(ctx, "Failed to initialize Twitter collector: %v", err)
		} else {
			collectors = append(collectors, tw)
		}
	}
	if cfg.Collector.Instagram.AccessToken != "" {
		ig, err := collector.NewInstagram(logger, collector.InstagramConfig{
			AccessToken:       cfg.Collector.Instagram.AccessToken,
			BusinessAccountID: cfg.Collector.Instagram.BusinessAccountID,
		})
		if err != nil {
			logger.Warnf(ctx, "Failed to initialize Instagram collector: %v", err)
		} else {
			collectors = append(collectors, ig)
		}
	}
	var manager *collector.Manager
	if len(collectors) > 0 {
		manager = collector.NewManager(logger, collectors...)
		logger.Infof(ctx, "Collectors registered: %v", manager.Platforms())
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.Server.Host,
		Port:        cfg.Server.Port,
		Mode:        cfg.Server.Mode,
		CORSOrigins: cfg.Server.CORSOrigins,

		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,

		CampaignUC: campaignUC,
		AnalysisUC: analysisUC,
		AlertingUC: alertingUC,

		Collectors: manager,

		Hub:       hub,
		WSHandler: wsHandler,

		Metrics: metrics,
		Redis:   redisClient,
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	go func() {
		if err := httpServer.Run(); err != nil {
			logger.Errorf(ctx, "HTTP server error: %v", err)
			stop()
		}
	}()

	// Wait for interrupt signal
	<-rootCtx.Done()
	logger.Info(ctx, "Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown components in order
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "Error shutting down HTTP server: %v", err)
	}
	if err := hub.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "Error shutting down hub: %v", err)
	}

	logger.Info(ctx, "Server shutdown complete")
}
