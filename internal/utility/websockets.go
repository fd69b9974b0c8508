package utility

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow CORS for development
	CheckOrigin: func(r *http.Request) bool { return true },
}

const notifyWriteTimeout = 5 * time.Second

// Hub holds the active progress connection of each user. A newer
// connection from the same user replaces the older one.
type Hub struct {
	mu           sync.Mutex
	clients      map[string]*websocket.Conn
	writeTimeout time.Duration
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*websocket.Conn), writeTimeout: notifyWriteTimeout}
}

// RegisterClient records conn as the connection of userID.
func (h *Hub) RegisterClient(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.clients[userID]; ok && old != conn {
		old.Close()
	}
	h.clients[userID] = conn
	log.Info().Str("user_id", userID).Msg("WebSocket Client Connected")
}

// UnregisterClient drops conn if it is still the user's current connection.
func (h *Hub) UnregisterClient(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cur, ok := h.clients[userID]; ok && cur == conn {
		delete(h.clients, userID)
		log.Info().Str("user_id", userID).Msg("WebSocket Client Disconnected")
	}
}

// Notify sends v as JSON to userID, if connected. A failed or stalled
// write removes the client.
func (h *Hub) Notify(userID string, v any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn, ok := h.clients[userID]
	if !ok {
		return
	}
	conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
	if err := conn.WriteJSON(v); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to send WS message, removing client")
		conn.Close()
		delete(h.clients, userID)
	}
}

// Connected reports whether userID has a live connection.
func (h *Hub) Connected(userID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.clients[userID]
	return ok
}
