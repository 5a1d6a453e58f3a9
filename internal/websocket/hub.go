package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"arena-backend/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub broadcasts progress events to every connected observer. There is no
// per-request subscription filtering: every connection sees every event.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]bool),
	}
}

func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	// Greet before registering so the write cannot race a broadcast.
	greeting := models.WSMessage{
		Type:    "status",
		Payload: models.StatusEvent{Message: "Connected to AI Chatbot Server"},
	}
	if data, err := json.Marshal(greeting); err == nil {
		conn.WriteMessage(websocket.TextMessage, data)
	}

	h.register(conn)

	// Keep connection alive and handle disconnect
	go func() {
		defer h.unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns[conn] = true
	log.Printf("WebSocket connected (total: %d)", len(h.conns))
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn.Close()
	delete(h.conns, conn)
	log.Printf("WebSocket disconnected (total: %d)", len(h.conns))
}

// Broadcast sends a message to all connected observers. Connections whose
// writes fail are dropped.
func (h *Hub) Broadcast(msg interface{}) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Failed to marshal broadcast message: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// ConnectionCount reports the number of connected observers.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
