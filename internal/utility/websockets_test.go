package utility

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hubServer upgrades every request and registers it under the "user" query
// parameter until the client hangs up.
func hubServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		userID := r.URL.Query().Get("user")
		hub.RegisterClient(userID, conn)
		defer hub.UnregisterClient(userID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server, userID string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/?user="+userID, nil)
	require.NoError(t, err)
	return conn
}

func TestHubNotify(t *testing.T) {
	hub := NewHub()
	ts := hubServer(t, hub)

	conn := dial(t, ts, "u1")
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Connected("u1") }, 2*time.Second, 10*time.Millisecond)

	hub.Notify("u1", map[string]string{"type": "day_ready", "day_label": "Thứ 2"})
	hub.Notify("nobody", map[string]string{"type": "ignored"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got map[string]string
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, map[string]string{"type": "day_ready", "day_label": "Thứ 2"}, got)
}

func TestHubUnregisterOnDisconnect(t *testing.T) {
	hub := NewHub()
	ts := hubServer(t, hub)

	conn := dial(t, ts, "u1")
	require.Eventually(t, func() bool { return hub.Connected("u1") }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return !hub.Connected("u1") }, 2*time.Second, 10*time.Millisecond)
}

func TestHubNewConnectionReplacesOld(t *testing.T) {
	hub := NewHub()
	ts := hubServer(t, hub)

	first := dial(t, ts, "u1")
	defer first.Close()
	require.Eventually(t, func() bool { return hub.Connected("u1") }, 2*time.Second, 10*time.Millisecond)

	second := dial(t, ts, "u1")
	defer second.Close()

	// The replaced connection is closed by the hub.
	require.NoError(t, first.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := first.ReadMessage()
	assert.Error(t, err)

	// The first handler's unregister must not drop the second connection.
	require.Eventually(t, func() bool { return hub.Connected("u1") }, 2*time.Second, 10*time.Millisecond)
	hub.Notify("u1", map[string]int{"n": 2})
	require.NoError(t, second.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got map[string]int
	require.NoError(t, second.ReadJSON(&got))
	assert.Equal(t, 2, got["n"])
}

func TestHubNotifyPastDeadlineDropsClient(t *testing.T) {
	hub := NewHub()
	hub.writeTimeout = -time.Second
	ts := hubServer(t, hub)

	conn := dial(t, ts, "u1")
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Connected("u1") }, 2*time.Second, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		hub.Notify("u1", map[string]string{"type": "day_ready"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Notify blocked on a write past its deadline")
	}
	assert.False(t, hub.Connected("u1"))
}
