package handlers

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/festivalops/report-api/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // the API is served cross-origin from the festival site
	},
}

// LiveHub tracks websocket subscribers to the live report feed
type LiveHub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

// NewLiveHub returns an empty hub
func NewLiveHub() *LiveHub {
	return &LiveHub{clients: make(map[*websocket.Conn]struct{})}
}

// LiveHandler upgrades the connection and keeps it registered until the
// client goes away
func (h *LiveHub) LiveHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorw("websocket upgrade failed", "error", err)
		return
	}

	h.mutex.Lock()
	h.clients[conn] = struct{}{}
	clientCount := len(h.clients)
	h.mutex.Unlock()
	zap.S().Debugw("live feed client connected", "clients", clientCount)

	conn.SetCloseHandler(func(code int, text string) error {
		h.mutex.Lock()
		delete(h.clients, conn)
		h.mutex.Unlock()
		zap.S().Debug("live feed client disconnected")
		return nil
	})

	// drain reads to keep the connection alive
	for {
		if _, _, err := conn.NextReader(); err != nil {
			h.mutex.Lock()
			delete(h.clients, conn)
			h.mutex.Unlock()
			conn.Close()
			break
		}
	}
}

// BroadcastReportCreated pushes a freshly created report to every subscriber
func (h *LiveHub) BroadcastReportCreated(report models.Report) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.clients {
		err := conn.WriteJSON(map[string]interface{}{
			"event": "report_created",
			"data":  report,
		})
		if err != nil {
			zap.S().Warnw("failed to push report to live feed client", "error", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
