// Package api pkg/api/ws.go
package api

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/VedantChandore/crcms/pkg/models"
)

const (
	wsSendQueueSize = 8
	wsWriteTimeout  = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dashboards connect from other origins; auth is out of scope here.
	CheckOrigin: func(*http.Request) bool { return true },
}

// wsClient is one connected dashboard. Writes go through a buffered
// queue drained by its own goroutine, so a stalled connection never
// blocks the broadcaster.
type wsClient struct {
	conn *websocket.Conn
	send chan models.ScheduleSummary
}

// wsHub fans the latest schedule summary out to connected dashboard
// clients. Broadcast is called from the fleet's snapshot-swap callback
// while the fleet holds its write lock, so it must never block: a client
// whose queue is full is dropped instead.
type wsHub struct {
	mu      sync.Mutex
	clients map[*wsClient]struct{}
}

func newWSHub() *wsHub {
	return &wsHub{clients: make(map[*wsClient]struct{})}
}

func (h *wsHub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("api: websocket upgrade failed: %v", err)
		return
	}

	client := &wsClient{
		conn: conn,
		send: make(chan models.ScheduleSummary, wsSendQueueSize),
	}

	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()

	go client.writeLoop()

	// Clients only receive; the read loop exists to notice the close.
	go func() {
		defer h.drop(client)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast queues the summary for every connected client without ever
// blocking. A client that cannot keep up is dropped.
func (h *wsHub) Broadcast(summary models.ScheduleSummary) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- summary:
		default:
			log.Printf("api: dropping backlogged websocket client")
			delete(h.clients, client)
			close(client.send)
		}
	}
}

// drop removes the client and closes its queue exactly once; the
// map-presence check is the guard.
func (h *wsHub) drop(client *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

func (h *wsHub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// writeLoop drains the send queue onto the wire. The deadline bounds a
// write to a wedged-but-open connection; either way the loop exits when
// the hub closes the queue.
func (c *wsClient) writeLoop() {
	defer func() {
		_ = c.conn.Close()
	}()

	for summary := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))

		if err := c.conn.WriteJSON(summary); err != nil {
			log.Printf("api: websocket write failed: %v", err)
			return
		}
	}
}
