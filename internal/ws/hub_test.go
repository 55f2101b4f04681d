package ws

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func newTestHub(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(http.HandlerFunc(hub.Serve))
	t.Cleanup(srv.Close)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("clients = %d, want %d", hub.ClientCount(), want)
}

func TestBroadcastReachesEveryClient(t *testing.T) {
	hub, url := newTestHub(t)
	a := dial(t, url)
	b := dial(t, url)
	waitForClients(t, hub, 2)

	hub.Broadcast("energy_consumed", map[string]any{"current_energy": 9})

	for _, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("read: %v", err)
		}
		if ev.Type != "energy_consumed" {
			t.Errorf("event type = %q, want energy_consumed", ev.Type)
		}
	}
}

func TestDeadClientDoesNotBlockBroadcast(t *testing.T) {
	hub, url := newTestHub(t)
	gone := dial(t, url)
	alive := dial(t, url)
	waitForClients(t, hub, 2)

	gone.Close()

	// Broadcasts must keep flowing to the surviving client while the hub
	// notices the dead one; the first write after close may still land in
	// the kernel buffer, so allow a few rounds.
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != 1 && time.Now().Before(deadline) {
		hub.Broadcast("update", nil)
		time.Sleep(10 * time.Millisecond)
	}
	if got := hub.ClientCount(); got != 1 {
		t.Fatalf("clients = %d, want 1 after disconnect", got)
	}

	hub.Broadcast("file_changed", nil)
	alive.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		var ev Event
		if err := alive.ReadJSON(&ev); err != nil {
			t.Fatalf("read: %v", err)
		}
		if ev.Type == "file_changed" {
			return
		}
	}
}
