package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full service configuration, loaded once at startup.
type Config struct {
	Environment EnvironmentConfig

	Server ServerConfig
	HTTP   HTTPConfig
	Logger LoggerConfig

	Redis RedisConfig

	WebSocket WebSocketConfig

	// Thresholds tunes the alert signals.
	Thresholds ThresholdsConfig

	// Collector carries the platform API credentials.
	Collector CollectorConfig

	Discord DiscordConfig
}

// EnvironmentConfig names the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// ServerConfig selects the listen address and gin mode.
type ServerConfig struct {
	Host        string
	Port        int
	Mode        string
	CORSOrigins []string
}

// HTTPConfig tunes the HTTP server timeouts.
type HTTPConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// RedisConfig describes the optional Redis connection.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	UseTLS   bool

	// Pool settings. Zero values use the go-redis defaults.
	MaxRetries      int
	MinIdleConns    int
	PoolSize        int
	PoolTimeout     time.Duration
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

// WebSocketConfig tunes the live alert stream.
type WebSocketConfig struct {
	PingInterval   time.Duration
	PongWait       time.Duration
	WriteWait      time.Duration
	MaxMessageSize int64
	SendBuffer     int
	MaxConnections int
	AllowedOrigins []string
}

// ThresholdsConfig tunes the alert signals. Zero values fall back to the
// package defaults.
type ThresholdsConfig struct {
	TrendVolume        int
	TrendVelocity      int
	EngagementSpikePct float64
	EngagementDropPct  float64
	NegativeRatio      float64
	MinSentimentSample int
}

// CollectorConfig carries the platform API credentials. A platform with no
// credentials is simply not registered.
type CollectorConfig struct {
	Twitter   TwitterConfig
	Instagram InstagramConfig
}

// TwitterConfig is the Twitter API v2 credential set.
type TwitterConfig struct {
	BearerToken string
}

// InstagramConfig is the Instagram Graph API credential set.
type InstagramConfig struct {
	AccessToken       string
	BusinessAccountID string
}

// LoggerConfig feeds pkg/log.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DiscordConfig describes the optional alert webhook.
type DiscordConfig struct {
	Enabled      bool
	WebhookID    string
	WebhookToken string
}

// Load reads insights-config.yaml, falling back to environment variables
// when no file is present. Dots in config keys map to underscores in the
// environment (server.port -> SERVER_PORT).
func Load() (*Config, error) {
	viper.SetConfigName("insights-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/insights/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
	}

	cfg := &Config{
		Environment: EnvironmentConfig{
			Name: viper.GetString("environment.name"),
		},
		Server: ServerConfig{
			Host:        viper.GetString("server.host"),
			Port:        viper.GetInt("server.port"),
			Mode:        viper.GetString("server.mode"),
			CORSOrigins: viper.GetStringSlice("server.cors_origins"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:  viper.GetDuration("http.read_timeout"),
			WriteTimeout: viper.GetDuration("http.write_timeout"),
			IdleTimeout:  viper.GetDuration("http.idle_timeout"),
		},
		Logger: LoggerConfig{
			Level:        viper.GetString("logger.level"),
			Mode:         viper.GetString("logger.mode"),
			Encoding:     viper.GetString("logger.encoding"),
			ColorEnabled: viper.GetBool("logger.color_enabled"),
		},
		Redis: RedisConfig{
			Enabled:         viper.GetBool("redis.enabled"),
			Host:            viper.GetString("redis.host"),
			Port:            viper.GetInt("redis.port"),
			Password:        viper.GetString("redis.password"),
			DB:              viper.GetInt("redis.db"),
			UseTLS:          viper.GetBool("redis.use_tls"),
			MaxRetries:      viper.GetInt("redis.max_retries"),
			MinIdleConns:    viper.GetInt("redis.min_idle_conns"),
			PoolSize:        viper.GetInt("redis.pool_size"),
			PoolTimeout:     viper.GetDuration("redis.pool_timeout"),
			ConnMaxIdleTime: viper.GetDuration("redis.conn_max_idle_time"),
			ConnMaxLifetime: viper.GetDuration("redis.conn_max_lifetime"),
		},
		WebSocket: WebSocketConfig{
			PingInterval:   viper.GetDuration("websocket.ping_interval"),
			PongWait:       viper.GetDuration("websocket.pong_wait"),
			WriteWait:      viper.GetDuration("websocket.write_wait"),
			MaxMessageSize: viper.GetInt64("websocket.max_message_size"),
			SendBuffer:     viper.GetInt("websocket.send_buffer"),
			MaxConnections: viper.GetInt("websocket.max_connections"),
			AllowedOrigins: viper.GetStringSlice("websocket.allowed_origins"),
		},
		Thresholds: ThresholdsConfig{
			TrendVolume:        viper.GetInt("thresholds.trend_volume"),
			TrendVelocity:      viper.GetInt("thresholds.trend_velocity"),
			EngagementSpikePct: viper.GetFloat64("thresholds.engagement_spike_pct"),
			EngagementDropPct:  viper.GetFloat64("thresholds.engagement_drop_pct"),
			NegativeRatio:      viper.GetFloat64("thresholds.negative_ratio"),
			MinSentimentSample: viper.GetInt("thresholds.min_sentiment_sample"),
		},
		Collector: CollectorConfig{
			Twitter: TwitterConfig{
				BearerToken: viper.GetString("collector.twitter.bearer_token"),
			},
			Instagram: InstagramConfig{
				AccessToken:       viper.GetString("collector.instagram.access_token"),
				BusinessAccountID: viper.GetString("collector.instagram.business_account_id"),
			},
		},
		Discord: DiscordConfig{
			Enabled:      viper.GetBool("discord.enabled"),
			WebhookID:    viper.GetString("discord.webhook_id"),
			WebhookToken: viper.GetString("discord.webhook_token"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "production")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")

	viper.SetDefault("http.read_timeout", 15*time.Second)
	viper.SetDefault("http.write_timeout", 15*time.Second)
	viper.SetDefault("http.idle_timeout", 60*time.Second)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.use_tls", false)
	viper.SetDefault("redis.max_retries", 3)
	viper.SetDefault("redis.min_idle_conns", 10)
	viper.SetDefault("redis.pool_size", 100)
	viper.SetDefault("redis.pool_timeout", 4*time.Second)
	viper.SetDefault("redis.conn_max_idle_time", 5*time.Minute)
	viper.SetDefault("redis.conn_max_lifetime", 30*time.Minute)

	viper.SetDefault("websocket.ping_interval", 30*time.Second)
	viper.SetDefault("websocket.pong_wait", 60*time.Second)
	viper.SetDefault("websocket.write_wait", 10*time.Second)
	viper.SetDefault("websocket.max_message_size", 512)
	viper.SetDefault("websocket.send_buffer", 256)
	viper.SetDefault("websocket.max_connections", 10000)

	viper.SetDefault("thresholds.trend_volume", 100)
	viper.SetDefault("thresholds.trend_velocity", 50)
	viper.SetDefault("thresholds.engagement_spike_pct", 30.0)
	viper.SetDefault("thresholds.engagement_drop_pct", -20.0)
	viper.SetDefault("thresholds.negative_ratio", 0.6)
	viper.SetDefault("thresholds.min_sentiment_sample", 10)
}

func validate(cfg *Config) error {
	if cfg.Server.Port == 0 {
		return fmt.Errorf("config: server.port is required")
	}

	if cfg.Redis.Enabled && (cfg.Redis.Host == "" || cfg.Redis.Port == 0) {
		return fmt.Errorf("config: redis.host and redis.port are required when redis is enabled")
	}

	if cfg.Discord.Enabled && (cfg.Discord.WebhookID == "" || cfg.Discord.WebhookToken == "") {
		return fmt.Errorf("config: discord.webhook_id and discord.webhook_token are required when discord is enabled")
	}

	return nil
}
