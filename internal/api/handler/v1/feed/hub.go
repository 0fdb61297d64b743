// Package feed pushes newly recorded purchase intents to connected
// websocket clients.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kravdojo/gym-api/internal/domain"
)

const (
	EventIntentCreated = "purchase_intent.created"

	sendBufferSize = 256
	writeWait      = 10 * time.Second
)

var ErrHubClosed = errors.New("feed hub is closed")

// Event is the JSON frame written to subscribers.
type Event struct {
	Type   string                `json:"type"`
	Intent domain.PurchaseIntent `json:"intent"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans broadcasts out to every registered client. Only Run touches the
// client set.
type Hub struct {
	upgrader   websocket.Upgrader
	logger     *zap.Logger
	clients    map[*client]struct{}
	count      atomic.Int64
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origins are enforced by the CORS middleware and the JWT check.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:     logger,
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, sendBufferSize),
		done:       make(chan struct{}),
	}
}

// Run serves the hub until ctx is cancelled, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.count.Add(1)
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
			}
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					h.logger.Warn("dropping slow feed client")
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
	h.count.Add(-1)
}

// Clients reports how many subscribers are connected.
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// Publish queues intent for every subscriber. It never blocks; when the
// queue is full the event is dropped.
func (h *Hub) Publish(intent domain.PurchaseIntent) {
	message, err := json.Marshal(Event{Type: EventIntentCreated, Intent: intent})
	if err != nil {
		h.logger.Error("failed to encode feed event", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("feed queue full, dropping event", zap.String("intentID", intent.ID))
	}
}

// ServeWS upgrades the request and subscribes the connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return ErrHubClosed
	}

	go c.writePump()
	go c.readPump(h)

	return nil
}

func (c *client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump discards inbound frames; it exists to notice disconnects.
func (c *client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("feed client disconnected", zap.Error(err))
			}
			return
		}
	}
}
