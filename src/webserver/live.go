package webserver

import (
	"log"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/truthlens/truthlens-client/src/factcheck"
)

// Hub pushes community vote updates to every connected page, so a vote cast
// in one tab moves the agreement meter in all of them.
type Hub struct {
	mu       sync.Mutex
	conns    map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Serve upgrades the request and keeps the connection registered until the
// peer goes away. Clients only listen; anything they send is discarded.
func (h *Hub) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("live upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
}

type voteEvent struct {
	Type     string `json:"type"`
	Agree    int    `json:"agree"`
	Disagree int    `json:"disagree"`
}

// BroadcastVote fans the updated split out to all subscribers. A connection
// that fails to take the write is dropped on the spot.
func (h *Hub) BroadcastVote(v factcheck.VoteResult) {
	event := voteEvent{Type: "vote", Agree: v.Agree, Disagree: v.Disagree}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(event); err != nil {
			delete(h.conns, conn)
			conn.Close()
		}
	}
}
