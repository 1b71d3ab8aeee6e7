package notification

import (
	"sync"

	"github.com/gorilla/websocket"
)

// client wraps a websocket connection with a write lock. gorilla/websocket
// allows at most one concurrent writer per connection, and Broadcast can be
// reached from any number of request goroutines at once.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *client) close() {
	_ = c.conn.Close()
}

// Hub keeps one live websocket connection per admin user.
type Hub struct {
	connections map[int64]*client
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*client),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.connections[userID]; exists && old != nil {
		old.close()
	}

	h.connections[userID] = &client{conn: conn}
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if c, exists := h.connections[userID]; exists && c != nil {
		c.close()
		delete(h.connections, userID)
	}
}

// Broadcast fans an event out to every connected dashboard. Writes are
// serialized per connection; connections that fail to write are dropped.
func (h *Hub) Broadcast(ev Event) {
	h.mutex.RLock()
	targets := make(map[int64]*client, len(h.connections))
	for id, c := range h.connections {
		targets[id] = c
	}
	h.mutex.RUnlock()

	for id, c := range targets {
		if c == nil {
			continue
		}
		if err := c.writeJSON(ev); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) ConnectedCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, c := range h.connections {
		if c != nil {
			c.close()
		}
		delete(h.connections, userID)
	}
}
