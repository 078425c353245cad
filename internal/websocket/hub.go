package websocket

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mgfilms/site-service/internal/types"
)

// Hub maintains the set of connected admin dashboards and broadcasts events
// to them.
type Hub struct {
	// Registered clients mapped by admin ID
	clients map[int64]*Client

	register   chan *Client
	unregister chan *Client

	// Mutex to protect clients map
	mu sync.RWMutex

	broadcast chan *BroadcastMessage

	// Closed when Run returns
	done chan struct{}
}

// BroadcastMessage is an event addressed to some admins, or to all of them
// when AdminIDs is nil.
type BroadcastMessage struct {
	AdminIDs []int64      `json:"admin_ids"`
	Event    *types.Event `json:"event"`
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[int64]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *BroadcastMessage, 64),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's main loop. It returns when ctx is done, closing every
// connection. Register and unregister calls made after that return at once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for id, c := range h.clients {
				close(c.send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			// One connection per admin; the newer one wins.
			if existing, ok := h.clients[client.adminID]; ok {
				close(existing.send)
				slog.Info("Replaced existing WebSocket connection", slog.Int64("admin_id", client.adminID))
			}
			h.clients[client.adminID] = client
			h.mu.Unlock()
			slog.Info("WebSocket client connected", slog.Int64("admin_id", client.adminID))

		case client := <-h.unregister:
			h.mu.Lock()
			if current, ok := h.clients[client.adminID]; ok && current == client {
				delete(h.clients, client.adminID)
				close(client.send)
				slog.Info("WebSocket client disconnected", slog.Int64("admin_id", client.adminID))
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.deliver(message)
		}
	}
}

// RegisterClient registers a new client. If the hub has stopped the client's
// send channel is closed so its write pump shuts the connection.
func (h *Hub) RegisterClient(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

// UnregisterClient unregisters a client
func (h *Hub) UnregisterClient(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) enqueue(message *BroadcastMessage) {
	select {
	case h.broadcast <- message:
	default:
		slog.Warn("Broadcast channel is full, dropping message", slog.String("type", string(message.Event.Type)))
	}
}

// BroadcastAll sends an event to every connected admin
func (h *Hub) BroadcastAll(event *types.Event) {
	h.enqueue(&BroadcastMessage{Event: event})
}

// BroadcastToAdmins sends an event to specific admins
func (h *Hub) BroadcastToAdmins(adminIDs []int64, event *types.Event) {
	h.enqueue(&BroadcastMessage{AdminIDs: adminIDs, Event: event})
}

func (h *Hub) deliver(message *BroadcastMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	targets := make([]*Client, 0, len(h.clients))
	if message.AdminIDs == nil {
		for _, c := range h.clients {
			targets = append(targets, c)
		}
	} else {
		for _, id := range message.AdminIDs {
			if c, ok := h.clients[id]; ok {
				targets = append(targets, c)
			}
		}
	}

	for _, client := range targets {
		if err := client.SendEvent(message.Event); err != nil {
			slog.Error("Failed to send event to client",
				slog.Int64("admin_id", client.adminID),
				slog.String("error", err.Error()))
			// Remove the client if sending fails
			go h.UnregisterClient(client)
		}
	}
}

// ConnectedAdmins returns the ids of currently connected admins
func (h *Hub) ConnectedAdmins() []int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]int64, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	return ids
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}
