package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 15 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	maxHeaderBytes      = 1 << 20 // 1 MB
)

// Run maps the handlers and serves until Shutdown or a listener error.
// Signal handling belongs to the caller.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.Run.mapHandlers: %v", err)
		return err
	}

	srv.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler:        srv.gin,
		ReadTimeout:    srv.readTimeout,
		WriteTimeout:   srv.writeTimeout,
		IdleTimeout:    srv.idleTimeout,
		MaxHeaderBytes: maxHeaderBytes,
	}

	srv.logger.Infof(ctx, "internal.httpserver.Run: serving on %s", srv.server.Addr)
	if err := srv.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		srv.logger.Errorf(ctx, "internal.httpserver.Run: %v", err)
		return err
	}

	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (srv *HTTPServer) Shutdown(ctx context.Context) error {
	if srv.server == nil {
		return nil
	}
	srv.logger.Info(ctx, "internal.httpserver.Shutdown: stopping HTTP server")
	return srv.server.Shutdown(ctx)
}
