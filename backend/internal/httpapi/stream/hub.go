// Package stream broadcasts newly-flushed model.LogEntry batches to
// connected companion clients as each tick runs. Grounded on the
// teacher's internal/websocket.Hub (register/unregister/broadcast
// channels, per-room client sets), narrowed from the teacher's chat/
// combat-notification rooms to one room per simulation run id and one
// message shape (a log-entry batch) instead of an open-ended Message
// envelope.
package stream

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/pkg/logger"
)

// Batch is what the hub broadcasts: every log.Entry produced by a single
// advance() call, tagged with the run id.
type Batch struct {
	RunID     string           `json:"runId"`
	WorldTime int64            `json:"worldTime"`
	Entries   []model.LogEntry `json:"entries"`
}

type client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	runID  string
}

// Hub tracks connected clients per run id and fans out Batch broadcasts.
type Hub struct {
	clients    map[*client]bool
	rooms      map[string]map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan Batch
	shutdown   chan struct{}
	log        *logger.LoggerV2
}

// NewHub builds an unstarted Hub; call Run in a goroutine to begin serving.
func NewHub(log *logger.LoggerV2) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		rooms:      make(map[string]map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan Batch, 16),
		shutdown:   make(chan struct{}),
		log:        log,
	}
}

// Run processes register/unregister/broadcast events until Shutdown is
// called. Intended to run in its own goroutine for the server's lifetime.
func (h *Hub) Run() {
	for {
		select {
		case <-h.shutdown:
			for c := range h.clients {
				close(c.send)
				_ = c.conn.Close()
			}
			return

		case c := <-h.register:
			h.clients[c] = true
			if h.rooms[c.runID] == nil {
				h.rooms[c.runID] = make(map[*client]bool)
			}
			h.rooms[c.runID][c] = true

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				delete(h.rooms[c.runID], c)
				close(c.send)
			}

		case batch := <-h.broadcast:
			data, err := json.Marshal(batch)
			if err != nil {
				if h.log != nil {
					h.log.Error().Err(err).Msg("stream: marshal batch failed")
				}
				continue
			}
			for c := range h.rooms[batch.RunID] {
				select {
				case c.send <- data:
				default:
					close(c.send)
					delete(h.clients, c)
					delete(h.rooms[batch.RunID], c)
				}
			}
		}
	}
}

// Broadcast publishes batch to every client subscribed to batch.RunID.
func (h *Hub) Broadcast(batch Batch) {
	h.broadcast <- batch
}

// Shutdown stops Run and closes every connected client.
func (h *Hub) Shutdown(_ context.Context) error {
	close(h.shutdown)
	return nil
}

// Join upgrades conn into a tracked client for runID and starts its
// read/write pumps. Blocks until the connection closes.
func (h *Hub) Join(conn *websocket.Conn, runID string) {
	c := &client{hub: h, conn: conn, send: make(chan []byte, 8), runID: runID}
	h.register <- c

	done := make(chan struct{})
	go c.writePump(done)
	c.readPump()
	<-done
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump(done chan struct{}) {
	defer close(done)
	defer func() { _ = c.conn.Close() }()
	const pingPeriod = 30 * time.Second
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
