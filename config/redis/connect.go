package redis

import (
	"fmt"

	"insights-srv/config"
	pkgRedis "insights-srv/pkg/redis"
)

// client holds the process-wide connection so Disconnect can reach it from
// shutdown paths that never saw the Connect result.
var client pkgRedis.IRedis

// Connect dials Redis using the service configuration.
func Connect(cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	conn, err := pkgRedis.New(pkgRedis.RedisConfig{
		Host:            cfg.Host,
		Port:            cfg.Port,
		Password:        cfg.Password,
		DB:              cfg.DB,
		UseTLS:          cfg.UseTLS,
		MaxRetries:      cfg.MaxRetries,
		MinIdleConns:    cfg.MinIdleConns,
		PoolSize:        cfg.PoolSize,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("config: redis: %w", err)
	}

	client = conn
	return conn, nil
}

// Disconnect closes the shared connection if one was established.
func Disconnect() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
