package websocket

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"insights-srv/pkg/log"
)

// Handler upgrades HTTP requests into live alert feed connections.
type Handler struct {
	hub      *Hub
	logger   log.Logger
	cfg      Config
	upgrader websocket.Upgrader
}

// NewHandler creates the upgrade handler.
func NewHandler(hub *Hub, logger log.Logger, cfg Config) *Handler {
	cfg.Adjust()

	return &Handler{
		hub:      hub,
		logger:   logger,
		cfg:      cfg,
		upgrader: newUpgrader(cfg),
	}
}

func newUpgrader(cfg Config) websocket.Upgrader {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = true
	}
	production := cfg.Environment == "production"

	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				// Non-browser clients send no Origin.
				return true
			}
			if allowed[origin] {
				return true
			}
			return !production && isLocalhostOrigin(origin)
		},
	}
}

func isLocalhostOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	hostname := u.Hostname()
	return hostname == "localhost" || hostname == "127.0.0.1"
}

// HandleWebSocket upgrades the request and registers the connection with the
// hub. Identity comes from the X-User-ID header, falling back to the user_id
// query parameter for browser clients that cannot set headers on upgrade.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
	if userID == "" {
		userID = strings.TrimSpace(c.Query("user_id"))
	}
	if userID == "" {
		h.logger.Warn(context.Background(), "internal.websocket.Handler.HandleWebSocket: upgrade rejected, no user identity")
		c.JSON(http.StatusUnauthorized, gin.H{"error": ErrMissingUser.Error()})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorf(context.Background(), "internal.websocket.Handler.HandleWebSocket: upgrade failed: %v", err)
		return
	}

	connection := NewConnection(h.hub, conn, userID, h.cfg, h.logger)
	h.hub.register <- connection
	connection.Start()

	h.logger.Infof(context.Background(), "internal.websocket.Handler.HandleWebSocket: live feed connected for user %s", userID)
}

// Stats returns current hub counters.
func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.hub.Stats())
}
