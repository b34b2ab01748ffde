package realtime

import (
	"encoding/json"
	"log"
	"sync"
)

// EventType names a change to the cache contents.
type EventType string

const (
	EventPut    EventType = "put"
	EventRemove EventType = "remove"
	EventEvict  EventType = "evict"
	EventClear  EventType = "clear"
)

// Event is the JSON message streamed to subscribers.
type Event struct {
	Type    EventType `json:"type"`
	Key     string    `json:"key,omitempty"`
	Version int       `json:"version"`
}

// Client represents a single subscriber connection.
// The actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Hub maintains subscribed clients and broadcasts cache events to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[Client]struct{}
}

var hubInstance *Hub
var once sync.Once

// GetHub returns the process-wide hub.
func GetHub() *Hub {
	once.Do(func() {
		hubInstance = NewHub()
	})
	return hubInstance
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[Client]struct{})}
}

// Register adds a client.
func (h *Hub) Register(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Unregister removes a client.
func (h *Hub) Unregister(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// Len returns the number of registered clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a raw message to every client.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		// a failed client is unregistered by its handler once the read loop exits
		c.Send(message)
	}
}

// Publish encodes evt and broadcasts it.
func (h *Hub) Publish(evt Event) {
	if evt.Version == 0 {
		evt.Version = 1
	}
	bytes, err := json.Marshal(evt)
	if err != nil {
		log.Printf("realtime: encode %s event: %v", evt.Type, err)
		return
	}
	h.Broadcast(bytes)
}
