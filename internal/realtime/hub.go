// Package realtime pushes store and alert changes to connected browser sessions.
package realtime

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rookgm/salesadmin/internal/logger"
	"go.uber.org/zap"
)

const (
	// EventStoreChanged carries the name of a collection that was modified
	EventStoreChanged = "store.changed"
	// EventAlert carries the current alert, or its dismissal
	EventAlert = "alert"
)

// Message is the frame written to every session
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub keeps the open websocket sessions
type Hub struct {
	mu    sync.RWMutex
	conns map[string]*wsConn
}

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// NewHub creates new empty Hub
func NewHub() *Hub {
	return &Hub{conns: make(map[string]*wsConn)}
}

// Register adds conn and returns its session id
func (h *Hub) Register(conn *websocket.Conn) string {
	id := uuid.NewString()

	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[id] = &wsConn{conn: conn}
	return id
}

// Unregister closes and forgets the session id
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.conns[id]; ok {
		c.conn.Close()
		delete(h.conns, id)
	}
}

// Len returns the number of open sessions
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Broadcast sends a typed event payload to every session. Sessions whose write fails are dropped.
func (h *Hub) Broadcast(event string, payload any) {
	h.mu.RLock()
	targets := make(map[string]*wsConn, len(h.conns))
	for id, c := range h.conns {
		targets[id] = c
	}
	h.mu.RUnlock()

	msg := Message{Event: event, Data: payload}
	for id, wc := range targets {
		wc.mu.Lock()
		err := wc.conn.WriteJSON(msg)
		wc.mu.Unlock()
		if err != nil {
			logger.Log.Warn("ws write failed",
				zap.String("session", id),
				zap.String("event", event),
				zap.Error(err))
			h.Unregister(id)
		}
	}
}
