package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/BraidFI-AI/sanctions-engine/internal/trace"
)

var traceUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // operations console may be served from any origin
	},
}

// TraceHub maintains the set of connected operations-console clients
// and broadcasts ScoringEvents for in-flight traced searches, adapted
// from the teacher's alert-broadcast WebSocket hub.
type TraceHub struct {
	clients   map[*websocket.Conn]bool
	broadcast chan []byte
	mutex     sync.Mutex
}

// NewTraceHub returns an unstarted TraceHub; call Run in its own
// goroutine before serving /api/v1/trace/stream.
func NewTraceHub() *TraceHub {
	return &TraceHub{
		broadcast: make(chan []byte, 256),
		clients:   make(map[*websocket.Conn]bool),
	}
}

// Run drains the broadcast channel and fans each message out to every
// connected client, dropping and disconnecting any client whose write
// deadline lapses rather than blocking the hub on a slow reader.
func (h *TraceHub) Run() {
	for message := range h.broadcast {
		h.mutex.Lock()
		for client := range h.clients {
			_ = client.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("trace hub write error: %v", err)
				client.Close()
				delete(h.clients, client)
			}
		}
		h.mutex.Unlock()
	}
}

// Subscribe upgrades the request to a WebSocket and registers the
// connection as a trace event listener.
func (h *TraceHub) Subscribe(c *gin.Context) {
	conn, err := traceUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("trace hub upgrade failed: %v", err)
		return
	}

	h.mutex.Lock()
	h.clients[conn] = true
	h.mutex.Unlock()

	go func() {
		defer func() {
			h.mutex.Lock()
			delete(h.clients, conn)
			h.mutex.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}

// BroadcastEvents marshals and publishes a completed trace's events to
// every subscriber. A nil/unreachable hub (no subscribers yet) simply
// drops the message — tracing correctness never depends on the hub.
func (h *TraceHub) BroadcastEvents(requestID string, events []trace.Event) {
	payload, err := json.Marshal(map[string]any{
		"requestId": requestID,
		"events":    events,
	})
	if err != nil {
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		log.Printf("trace hub broadcast buffer full, dropping event batch for %s", requestID)
	}
}
