package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

func newTestHub(t *testing.T) (*Hub, *httptest.Server, context.CancelFunc) {
	t.Helper()

	hub := NewHub(zerolog.Nop(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := int64(1)
		if r.URL.Query().Get("user_id") == "2" {
			userID = 2
		}
		hub.HandleWebSocket(w, r, userID)
	}))

	t.Cleanup(server.Close)
	t.Cleanup(cancel)

	return hub, server, cancel
}

func dial(t *testing.T, server *httptest.Server, userID string) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + server.URL[4:] + "?user_id=" + userID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestHubRegistersAndUnregisters(t *testing.T) {
	hub, server, _ := newTestHub(t)

	conn := dial(t, server, "1")
	time.Sleep(100 * time.Millisecond)

	hub.mu.RLock()
	count := len(hub.connections[1])
	hub.mu.RUnlock()
	if count != 1 {
		t.Fatalf("expected 1 registered connection, got %d", count)
	}

	conn.Close()
	time.Sleep(100 * time.Millisecond)

	hub.mu.RLock()
	_, exists := hub.connections[1]
	hub.mu.RUnlock()
	if exists {
		t.Fatal("expected connection to be unregistered")
	}
}

func TestHubNotifyReachesOnlyTargetUser(t *testing.T) {
	hub, server, _ := newTestHub(t)

	conn1 := dial(t, server, "1")
	conn2 := dial(t, server, "2")
	time.Sleep(100 * time.Millisecond)

	hub.Notify(1, map[string]any{"export_id": "exports:01J", "progress": 50.0})

	conn1.SetReadDeadline(time.Now().Add(time.Second))
	var received Message
	if err := conn1.ReadJSON(&received); err != nil {
		t.Fatalf("user 1 failed to read event: %v", err)
	}
	if received.Type != "export_progress" || received.UserID != 1 {
		t.Fatalf("unexpected message: %+v", received)
	}

	conn2.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	if err := conn2.ReadJSON(&received); err == nil {
		t.Fatal("user 2 should not receive user 1 events")
	}
}

func TestHubNotifyDropsWhenSaturated(t *testing.T) {
	hub := NewHub(zerolog.Nop(), nil)
	hub.broadcast = make(chan *Message, 1)

	hub.Notify(1, "first")
	hub.Notify(1, "dropped")

	if got := len(hub.broadcast); got != 1 {
		t.Fatalf("expected saturated channel to hold 1 message, got %d", got)
	}
}

func TestHubShutdownClosesConnections(t *testing.T) {
	hub, server, cancel := newTestHub(t)
	_ = hub

	conn := dial(t, server, "1")
	time.Sleep(50 * time.Millisecond)

	cancel()
	time.Sleep(100 * time.Millisecond)

	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("expected connection to be closed after hub shutdown")
	}
}

func TestOriginChecker(t *testing.T) {
	newRequest := func(origin string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "http://api.example.com/ws", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		return r
	}

	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{name: "no origin header passes", allowed: []string{"https://app.example.com"}, origin: "", want: true},
		{name: "allow-listed origin passes", allowed: []string{"https://app.example.com"}, origin: "https://app.example.com", want: true},
		{name: "unlisted origin rejected", allowed: []string{"https://app.example.com"}, origin: "https://evil.example.com", want: false},
		{name: "empty list allows same host", allowed: nil, origin: "http://api.example.com", want: true},
		{name: "empty list rejects cross host", allowed: nil, origin: "https://evil.example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := originChecker(tt.allowed)
			if got := check(newRequest(tt.origin)); got != tt.want {
				t.Errorf("origin %q with allowed %v = %v, want %v", tt.origin, tt.allowed, got, tt.want)
			}
		})
	}
}

func TestHubRejectsDisallowedOrigin(t *testing.T) {
	hub := NewHub(zerolog.Nop(), []string{"https://app.example.com"})
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.HandleWebSocket(w, r, 1)
	}))
	t.Cleanup(server.Close)

	wsURL := "ws" + server.URL[4:]
	header := http.Header{"Origin": []string{"https://evil.example.com"}}
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err == nil {
		conn.Close()
		t.Fatal("expected handshake to fail for disallowed origin")
	}
	if resp != nil && resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusForbidden)
	}
}
