package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rookgm/salesadmin/internal/logger"
	"github.com/rookgm/salesadmin/internal/realtime"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// WSHandler represents HTTP handler upgrading browser sessions to websocket
type WSHandler struct {
	hub *realtime.Hub
}

// NewWSHandler creates new WSHandler instance
func NewWSHandler(hub *realtime.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Socket upgrades to WS and registers the session until the client goes away
func (h *WSHandler) Socket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Log.Debug("ws upgrade failed", zap.Error(err))
			return
		}
		id := h.hub.Register(conn)

		// no inbound events are expected; read until the connection closes
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.Unregister(id)
				return
			}
		}
	}
}
