package websocket

import (
	"context"
	"testing"
	"time"
)

// testLogger implements log.Logger for testing
type testLogger struct{}

func (m *testLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *testLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *testLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *testLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *testLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *testLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func testConnection(hub *Hub, userID string) *Connection {
	return &Connection{
		hub:    hub,
		userID: userID,
		send:   make(chan []byte, 16),
		done:   make(chan struct{}),
		logger: &testLogger{},
	}
}

func TestHubSendToUser(t *testing.T) {
	hub := NewHub(&testLogger{}, nil, 100)
	go hub.Run()
	defer hub.Shutdown(context.Background())

	// Two tabs for one user, one for another.
	conn1 := testConnection(hub, "u1")
	conn2 := testConnection(hub, "u1")
	conn3 := testConnection(hub, "u2")

	hub.register <- conn1
	hub.register <- conn2
	hub.register <- conn3
	time.Sleep(50 * time.Millisecond)

	hub.SendToUser("u1", []byte(`{"kind":"new_trend"}`))

	for i, conn := range []*Connection{conn1, conn2} {
		select {
		case got := <-conn.send:
			if string(got) != `{"kind":"new_trend"}` {
				t.Errorf("conn%d payload = %s", i+1, got)
			}
		default:
			t.Errorf("conn%d should have received the payload", i+1)
		}
	}

	select {
	case <-conn3.send:
		t.Error("conn3 belongs to another user and should receive nothing")
	default:
	}
}

func TestHubSendToUserNoConnections(t *testing.T) {
	hub := NewHub(&testLogger{}, nil, 100)
	go hub.Run()
	defer hub.Shutdown(context.Background())

	// Must not panic or block.
	hub.SendToUser("nobody", []byte("x"))
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(&testLogger{}, nil, 100)
	go hub.Run()
	defer hub.Shutdown(context.Background())

	conn1 := testConnection(hub, "u1")
	conn2 := testConnection(hub, "u2")

	hub.register <- conn1
	hub.register <- conn2
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast([]byte("maintenance"))
	time.Sleep(50 * time.Millisecond)

	for i, conn := range []*Connection{conn1, conn2} {
		select {
		case <-conn.send:
		default:
			t.Errorf("conn%d should have received the broadcast", i+1)
		}
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub(&testLogger{}, nil, 100)
	go hub.Run()
	defer hub.Shutdown(context.Background())

	conn := testConnection(hub, "u1")
	hub.register <- conn
	time.Sleep(50 * time.Millisecond)

	stats := hub.Stats()
	if stats.ActiveConnections != 1 || stats.UniqueUsers != 1 {
		t.Fatalf("stats after register = %+v", stats)
	}

	hub.unregister <- conn
	time.Sleep(50 * time.Millisecond)

	stats = hub.Stats()
	if stats.ActiveConnections != 0 || stats.UniqueUsers != 0 {
		t.Errorf("stats after unregister = %+v", stats)
	}

	// The hub closes the send channel on unregister.
	select {
	case _, ok := <-conn.send:
		if ok {
			t.Error("send channel should be closed, got payload")
		}
	default:
		t.Error("send channel should be closed")
	}

	// Unregistering twice is harmless.
	hub.unregister <- conn
	time.Sleep(50 * time.Millisecond)
}

func TestHubMaxConnections(t *testing.T) {
	hub := NewHub(&testLogger{}, nil, 1)
	go hub.Run()
	defer hub.Shutdown(context.Background())

	hub.register <- testConnection(hub, "u1")
	hub.register <- testConnection(hub, "u2")
	time.Sleep(50 * time.Millisecond)

	stats := hub.Stats()
	if stats.ActiveConnections != 1 {
		t.Errorf("ActiveConnections = %d, want 1 (second connection rejected)", stats.ActiveConnections)
	}
}

func TestHubSlowConsumerDropsPayload(t *testing.T) {
	hub := NewHub(&testLogger{}, nil, 100)
	go hub.Run()
	defer hub.Shutdown(context.Background())

	conn := testConnection(hub, "u1")
	hub.register <- conn
	time.Sleep(50 * time.Millisecond)

	// Fill the buffer; the next send must drop instead of blocking.
	for i := 0; i < cap(conn.send); i++ {
		hub.SendToUser("u1", []byte("fill"))
	}
	hub.SendToUser("u1", []byte("overflow"))

	stats := hub.Stats()
	if stats.MessagesSent != int64(cap(conn.send)) {
		t.Errorf("MessagesSent = %d, want %d", stats.MessagesSent, cap(conn.send))
	}
	if stats.MessagesDropped != 1 {
		t.Errorf("MessagesDropped = %d, want 1", stats.MessagesDropped)
	}
}

func TestHubShutdownClosesConnections(t *testing.T) {
	hub := NewHub(&testLogger{}, nil, 100)
	go hub.Run()

	conn := testConnection(hub, "u1")
	hub.register <- conn
	time.Sleep(50 * time.Millisecond)

	if err := hub.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	select {
	case <-conn.done:
	default:
		t.Error("connection should be closed after shutdown")
	}
	if stats := hub.Stats(); stats.ActiveConnections != 0 {
		t.Errorf("ActiveConnections after shutdown = %d, want 0", stats.ActiveConnections)
	}
}

func TestConfigAdjust(t *testing.T) {
	var cfg Config
	cfg.Adjust()

	if cfg.PongWait != defaultPongWait || cfg.PingInterval != defaultPingInterval {
		t.Errorf("defaults = ping %v / pong %v", cfg.PingInterval, cfg.PongWait)
	}
	if cfg.SendBuffer != defaultSendBuffer || cfg.MaxConnections != defaultMaxConnections {
		t.Errorf("defaults = buffer %d / max %d", cfg.SendBuffer, cfg.MaxConnections)
	}

	// A ping interval at or above the pong deadline would reap healthy
	// connections; Adjust pulls it back under.
	cfg = Config{PingInterval: 90 * time.Second, PongWait: 60 * time.Second}
	cfg.Adjust()
	if cfg.PingInterval >= cfg.PongWait {
		t.Errorf("PingInterval = %v, want < %v", cfg.PingInterval, cfg.PongWait)
	}
}
