package websocket

import (
	"context"
	"sync"
	"sync/atomic"

	"insights-srv/pkg/log"
	"insights-srv/pkg/monitoring"
)

// Hub maintains the set of active connections and routes alert payloads to
// them. Registration goes through buffered channels serviced by the run loop;
// map access is guarded by mu so SendToUser can run from any goroutine.
type Hub struct {
	// userID -> connections, one per open tab
	connections map[string][]*Connection
	mu          sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan []byte

	messagesSent    atomic.Int64
	messagesDropped atomic.Int64

	maxConnections int

	logger  log.Logger
	metrics *monitoring.MetricsCollector

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewHub creates a hub. metrics may be nil.
func NewHub(logger log.Logger, metrics *monitoring.MetricsCollector, maxConnections int) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		connections:    make(map[string][]*Connection),
		register:       make(chan *Connection, 100),
		unregister:     make(chan *Connection, 100),
		broadcast:      make(chan []byte, 1000),
		maxConnections: maxConnections,
		logger:         logger,
		metrics:        metrics,
		ctx:            ctx,
		cancel:         cancel,
		done:           make(chan struct{}),
	}
}

// Run starts the hub's main loop. It returns after Shutdown.
func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.ctx.Done():
			h.logger.Info(context.Background(), "internal.websocket.Hub: shutting down")
			h.closeAllConnections()
			return

		case conn := <-h.register:
			h.registerConnection(conn)

		case conn := <-h.unregister:
			h.unregisterConnection(conn)

		case message := <-h.broadcast:
			h.broadcastAll(message)
		}
	}
}

func (h *Hub) registerConnection(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.maxConnections > 0 && h.totalLocked() >= h.maxConnections {
		h.logger.Warnf(context.Background(), "internal.websocket.Hub: max connections reached, rejecting user %s", conn.userID)
		go conn.Close()
		return
	}

	h.connections[conn.userID] = append(h.connections[conn.userID], conn)
	h.metrics.WSConnectionOpened()
	h.logger.Infof(context.Background(), "internal.websocket.Hub: user %s connected (total: %d, user tabs: %d)",
		conn.userID, h.totalLocked(), len(h.connections[conn.userID]))
}

func (h *Hub) unregisterConnection(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.connections[conn.userID]
	if !ok {
		return
	}

	for i, c := range conns {
		if c == conn {
			h.connections[conn.userID] = append(conns[:i], conns[i+1:]...)
			close(conn.send)
			h.metrics.WSConnectionClosed()

			if len(h.connections[conn.userID]) == 0 {
				delete(h.connections, conn.userID)
				h.logger.Infof(context.Background(), "internal.websocket.Hub: user %s disconnected", conn.userID)
			}
			break
		}
	}
}

// SendToUser queues a payload for every open connection of one user. A user
// with no connections is skipped silently; a full send buffer drops the
// payload for that connection rather than blocking the caller.
func (h *Hub) SendToUser(userID string, message []byte) {
	h.mu.RLock()
	conns := h.connections[userID]
	h.mu.RUnlock()

	for _, conn := range conns {
		select {
		case conn.send <- message:
			h.messagesSent.Add(1)
		default:
			h.messagesDropped.Add(1)
			h.logger.Warnf(context.Background(), "internal.websocket.Hub: send buffer full for user %s, dropping payload", userID)
		}
	}
}

// Broadcast queues a payload for every connected user.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		h.messagesDropped.Add(1)
	}
}

func (h *Hub) broadcastAll(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conns := range h.connections {
		for _, conn := range conns {
			select {
			case conn.send <- message:
				h.messagesSent.Add(1)
			default:
				h.messagesDropped.Add(1)
			}
		}
	}
}

func (h *Hub) closeAllConnections() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, conns := range h.connections {
		for _, conn := range conns {
			conn.Close()
			h.metrics.WSConnectionClosed()
		}
	}
	h.connections = make(map[string][]*Connection)
}

// Stats reports current hub counters.
func (h *Hub) Stats() HubStats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return HubStats{
		ActiveConnections: h.totalLocked(),
		UniqueUsers:       len(h.connections),
		MessagesSent:      h.messagesSent.Load(),
		MessagesDropped:   h.messagesDropped.Load(),
	}
}

// totalLocked must be called with mu held.
func (h *Hub) totalLocked() int {
	total := 0
	for _, conns := range h.connections {
		total += len(conns)
	}
	return total
}

// Shutdown stops the run loop and closes every connection.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.cancel()

	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
