package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cutgrade/cutgrade/pkg/catalog"
	"github.com/cutgrade/cutgrade/pkg/compute"
	"github.com/cutgrade/cutgrade/pkg/types"
	"github.com/cutgrade/cutgrade/server/internal/api"
	"github.com/cutgrade/cutgrade/server/internal/store"
)

const (
	// writeTimeout is the deadline for a single write to a client.
	writeTimeout = 10 * time.Second

	// pongWait is how long to wait for a pong response before treating the
	// connection as dead.
	pongWait = 60 * time.Second

	// pingPeriod controls how often the server sends WebSocket ping frames.
	// Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// sendBufSize is the per-client outgoing message buffer depth.
	sendBufSize = 16

	// maxInbound caps one client message. A measure message is a few
	// hundred bytes.
	maxInbound = 4096
)

// Event names on the stream.
const (
	EventSnapshot   = "snapshot"
	EventMeasure    = "measure"
	EventEvaluation = "evaluation"
	EventError      = "error"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Allow all origins. Callers should apply CORS at the reverse-proxy level.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Message is the JSON envelope sent to clients.
type Message struct {
	Event string `json:"event"`
	// ID echoes the cut ID of the measure message an evaluation answers.
	ID   string `json:"id,omitempty"`
	Data any    `json:"data"`
}

// Inbound is a message sent by a client. The only accepted event is
// "measure": Data is graded and answered with an "evaluation" message.
// When ID is set the result is also stored under that ID and shows up in
// the next snapshot.
type Inbound struct {
	Event string             `json:"event"`
	ID    string             `json:"id,omitempty"`
	Label string             `json:"label,omitempty"`
	Data  types.Measurements `json:"data"`
}

// Hub manages WebSocket client connections, broadcasts the current cut
// snapshot to all connected clients every interval, and grades measurements
// clients send in.
type Hub struct {
	store    *store.Store
	catalog  *catalog.Catalog
	obs      api.Observer
	interval time.Duration

	mu      sync.RWMutex
	clients map[*client]struct{}
}

// client represents one connected WebSocket client.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// New creates a Hub that reads from st, grades against cat and broadcasts
// every interval. obs may be nil.
func New(st *store.Store, cat *catalog.Catalog, obs api.Observer, interval time.Duration) *Hub {
	return &Hub{
		store:    st,
		catalog:  cat,
		obs:      obs,
		interval: interval,
		clients:  make(map[*client]struct{}),
	}
}

// Run starts the broadcast ticker loop. It sends the current snapshot to all
// connected clients every interval. Run blocks until ctx is cancelled, then
// closes all active connections.
func (h *Hub) Run(ctx context.Context) {
	t := time.NewTicker(h.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case <-t.C:
			h.broadcast()
		}
	}
}

// ServeHTTP upgrades the HTTP connection to WebSocket and serves the client.
// It sends the current snapshot immediately on connect, then continues to
// receive broadcasts from the ticker loop. Blocks until the connection closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader has already written the error response.
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, sendBufSize),
	}
	h.register(c)
	defer h.unregister(c)
	slog.Debug("ws: client connected", "remote", r.RemoteAddr)

	// Send the current snapshot immediately so the client has data right away.
	if data, err := h.snapshotMessage(); err == nil {
		h.deliver(c, data)
	}

	go c.writePump()
	h.readPump(c) // blocks until connection closes
}

// Count returns the number of currently connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// --- internal ---------------------------------------------------------------

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// deliver queues data for c without blocking. It reports false when c is
// gone or its buffer is full. Holding the read lock keeps c.send open.
func (h *Hub) deliver(c *client, data []byte) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.clients[c]; !ok {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (h *Hub) broadcast() {
	data, err := h.snapshotMessage()
	if err != nil {
		slog.Error("ws: build snapshot", "err", err)
		return
	}

	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if !h.deliver(c, data) {
			// Client's outgoing buffer is full; disconnect it.
			h.unregister(c)
		}
	}
}

func (h *Hub) snapshotMessage() ([]byte, error) {
	return json.Marshal(Message{
		Event: EventSnapshot,
		Data:  api.BuildSnapshot(h.store, h.catalog),
	})
}

// handle answers one client message.
func (h *Hub) handle(raw []byte) Message {
	var in Inbound
	if err := json.Unmarshal(raw, &in); err != nil {
		return errorMessage("", "invalid message: "+err.Error())
	}
	if in.Event != EventMeasure {
		return errorMessage(in.ID, "unknown event "+`"`+in.Event+`"`)
	}

	ev := compute.Evaluate(h.catalog, in.Data)
	if h.obs != nil {
		h.obs.Observe(ev)
	}
	if in.ID != "" {
		h.store.Put(in.ID, in.Label, ev)
	}
	return Message{
		Event: EventEvaluation,
		ID:    in.ID,
		Data: api.EvaluationResponse{
			Evaluation: ev,
			Hints:      compute.Hints(h.catalog, ev),
		},
	}
}

func errorMessage(id, msg string) Message {
	return Message{Event: EventError, ID: id, Data: map[string]string{"error": msg}}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}

// writePump drains the client's send channel and forwards messages to the
// WebSocket connection. It also sends periodic ping frames. Runs in its own
// goroutine per client.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				// Channel was closed (hub is shutting down or client removed).
				c.conn.WriteMessage(websocket.CloseMessage, []byte{}) //nolint:errcheck
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump reads client messages, answers measure events and processes
// control frames (pong, close). Blocks until the connection closes.
func (h *Hub) readPump(c *client) {
	defer c.conn.Close()
	c.conn.SetReadLimit(maxInbound)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			break
		}
		c.conn.SetReadDeadline(time.Now().Add(pongWait))

		data, err := json.Marshal(h.handle(raw))
		if err != nil {
			slog.Error("ws: encode reply", "err", err)
			continue
		}
		if !h.deliver(c, data) {
			slog.Warn("ws: reply dropped, client too slow")
		}
	}
}
