package websocket

import "time"

const (
	defaultPingInterval   = 30 * time.Second
	defaultPongWait       = 60 * time.Second
	defaultWriteWait      = 10 * time.Second
	defaultMaxMessageSize = 512
	defaultSendBuffer     = 256
	defaultMaxConnections = 10000
)

// Config tunes the live alert feed connections.
type Config struct {
	PingInterval   time.Duration
	PongWait       time.Duration
	WriteWait      time.Duration
	MaxMessageSize int64
	SendBuffer     int
	MaxConnections int

	// AllowedOrigins is the browser origin allowlist for the upgrade
	// handshake. Requests without an Origin header (CLI clients, tests)
	// are always accepted; localhost is additionally accepted outside
	// production.
	AllowedOrigins []string
	Environment    string
}

// Adjust fills unset fields with defaults. Pings must fire before the pong
// deadline or healthy connections get reaped.
func (c *Config) Adjust() {
	if c.PongWait <= 0 {
		c.PongWait = defaultPongWait
	}
	if c.PingInterval <= 0 {
		c.PingInterval = defaultPingInterval
	}
	if c.PingInterval >= c.PongWait {
		c.PingInterval = c.PongWait * 9 / 10
	}
	if c.WriteWait <= 0 {
		c.WriteWait = defaultWriteWait
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = defaultMaxMessageSize
	}
	if c.SendBuffer <= 0 {
		c.SendBuffer = defaultSendBuffer
	}
	if c.MaxConnections <= 0 {
		c.MaxConnections = defaultMaxConnections
	}
}

// HubStats reports hub counters for the stats endpoint and tests.
type HubStats struct {
	ActiveConnections int   `json:"active_connections"`
	UniqueUsers       int   `json:"unique_users"`
	MessagesSent      int64 `json:"messages_sent"`
	MessagesDropped   int64 `json:"messages_dropped"`
}
