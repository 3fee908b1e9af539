package api

import (
	"net/http"
	"sync"

	"github.com/TOPG-DEV/burntheworld/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

type Message struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}

// client wraps a connection with its own write lock; gorilla/websocket
// allows at most one concurrent writer per connection.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

// Hub broadcasts refresh notifications to connected leaderboard clients.
type Hub struct {
	mu       sync.Mutex
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Hub) Handle(c *gin.Context) {
	log := logger.Logger()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("failed to upgrade websocket connection", zap.Error(err))
		return
	}

	cl := &client{conn: conn}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()

	// drain until the client disconnects; inbound messages are ignored
	go func() {
		defer h.remove(cl)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) remove(cl *client) {
	h.mu.Lock()
	delete(h.clients, cl)
	h.mu.Unlock()
	_ = cl.conn.Close()
}

// LeaderboardChanged pushes a refresh event to every connected client.
// Broadcasts from concurrent requests serialize per connection on the
// client's write lock.
func (h *Hub) LeaderboardChanged() {
	payload, err := json.Marshal(Message{Type: "leaderboard_refresh"})
	if err != nil {
		logger.Logger().Error("failed to marshal refresh message", zap.Error(err))
		return
	}

	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for cl := range h.clients {
		clients = append(clients, cl)
	}
	h.mu.Unlock()

	for _, cl := range clients {
		if err := cl.write(payload); err != nil {
			h.remove(cl)
		}
	}
}
