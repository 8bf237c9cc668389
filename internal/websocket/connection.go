package websocket

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"insights-srv/pkg/log"
)

// Connection is one WebSocket connection of a user. The feed is push only:
// the read pump exists to service pong frames and detect disconnects, and
// inbound frames are discarded.
type Connection struct {
	hub  *Hub
	conn *websocket.Conn

	userID string

	// Buffered channel of outbound payloads. Closed by the hub on
	// unregister.
	send chan []byte

	pingInterval   time.Duration
	pongWait       time.Duration
	writeWait      time.Duration
	maxMessageSize int64

	logger log.Logger

	done chan struct{}
}

// NewConnection creates a connection for a user. cfg must be adjusted.
func NewConnection(hub *Hub, conn *websocket.Conn, userID string, cfg Config, logger log.Logger) *Connection {
	return &Connection{
		hub:            hub,
		conn:           conn,
		userID:         userID,
		send:           make(chan []byte, cfg.SendBuffer),
		pingInterval:   cfg.PingInterval,
		pongWait:       cfg.PongWait,
		writeWait:      cfg.WriteWait,
		maxMessageSize: cfg.MaxMessageSize,
		logger:         logger,
		done:           make(chan struct{}),
	}
}

// readPump pumps control frames from the peer. At most one reader runs per
// connection.
func (c *Connection) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(c.maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Errorf(context.Background(), "internal.websocket.Connection.readPump: user %s: %v", c.userID, err)
			}
			break
		}
		c.logger.Debugf(context.Background(), "internal.websocket.Connection.readPump: ignoring inbound frame from user %s: %s", c.userID, message)
	}
}

// writePump pumps payloads from the hub to the peer. At most one writer runs
// per connection.
func (c *Connection) writePump() {
	ticker := time.NewTicker(c.pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Flush queued payloads into the same frame.
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			return
		}
	}
}

// Start launches the connection's read and write pumps.
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close stops the pumps and closes the underlying connection. Safe to call
// more than once.
func (c *Connection) Close() {
	select {
	case <-c.done:
		return
	default:
		close(c.done)
		if c.conn != nil {
			c.conn.Close()
		}
	}
}
