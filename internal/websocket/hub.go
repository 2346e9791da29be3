package websocket

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"viralengine-backend/internal/logstream"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub bridges the log broadcaster to WebSocket clients. Every connection
// gets its own subscription, so a slow client never stalls the others.
type Hub struct {
	broadcaster *logstream.Broadcaster
}

func NewHub(broadcaster *logstream.Broadcaster) *Hub {
	return &Hub{broadcaster: broadcaster}
}

func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	sub := h.broadcaster.Subscribe()
	done := make(chan struct{})

	go func() {
		defer conn.Close()
		for {
			select {
			case <-done:
				return
			case event, ok := <-sub:
				if !ok {
					return
				}
				if err := conn.WriteJSON(event); err != nil {
					return
				}
			}
		}
	}()

	// Keep connection alive and detect disconnect
	go func() {
		defer func() {
			h.broadcaster.Unsubscribe(sub)
			close(done)
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}
