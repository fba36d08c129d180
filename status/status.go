package status

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	INFO = iota
	ERROR
)

type Status struct {
	Message string
	Time    time.Time
	Type    int
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func (c *client) writePump() {
	ticker := time.NewTicker(time.Second * 30)
	defer func() {
		ticker.Stop()
		c.hub.unregister(c)
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(40 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Printf("[status] ws write msg error: %v", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(40 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[status] ws write ping error: %v", err)
				return
			}
		}
	}
}

// Hub keeps last status line and sends every new one to connected clients.
// Slow clients drop messages instead of blocking publisher.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]bool
	last    []byte
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*client]bool)}
}

// Attach starts sending status to conn, beginning with the last message
func (h *Hub) Attach(conn *websocket.Conn) {
	c := &client{hub: h, conn: conn, send: make(chan []byte, 32)}

	h.mu.Lock()
	h.clients[c] = true
	if h.last != nil {
		c.send <- h.last
	}
	h.mu.Unlock()

	go c.writePump()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c] {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) Last() (Status, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var s Status
	if h.last == nil {
		return s, false
	}
	if err := json.Unmarshal(h.last, &s); err != nil {
		return s, false
	}
	return s, true
}

func (h *Hub) publish(msg string, _type int) {
	data, err := json.Marshal(&Status{Message: msg, Time: time.Now(), Type: _type})
	if err != nil {
		panic(err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}

func (h *Hub) Info(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	log.Printf("[status] %s", msg)
	h.publish(msg, INFO)
}

func (h *Hub) Error(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	log.Printf("[status] ERROR: %s", msg)
	h.publish(msg, ERROR)
}
