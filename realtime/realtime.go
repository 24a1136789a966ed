package realtime

import (
	"sync"
	"time"

	"pokedex/metrics"
	"pokedex/models"

	"github.com/sirupsen/logrus"
)

const (
	sendBufferSize = 16
	writeTimeout   = 10 * time.Second
)

// Event types sent to subscribers
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
	EventSeeded  = "seeded"
)

// CatalogEvent represents a change to the catalog
type CatalogEvent struct {
	Type     string           `json:"type"`
	Pokemon  *models.Pokemon  `json:"pokemon,omitempty"`
	Pokemons []models.Pokemon `json:"pokemons,omitempty"`
	ID       string           `json:"id,omitempty"`
}

// Client is the subset of *websocket.Conn the hub needs
type Client interface {
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Publisher receives catalog change events
type Publisher interface {
	Publish(event CatalogEvent)
}

type subscriber struct {
	client Client
	send   chan CatalogEvent
}

// Hub fans catalog events out to every registered client.
// Each client has its own writer goroutine so Publish never waits on a socket.
type Hub struct {
	mu      sync.Mutex
	clients map[Client]*subscriber
	log     logrus.FieldLogger
}

func NewHub(log logrus.FieldLogger) *Hub {
	return &Hub{
		clients: make(map[Client]*subscriber),
		log:     log,
	}
}

// Register adds a client to the hub and starts its writer
func (h *Hub) Register(client Client) {
	sub := &subscriber{client: client, send: make(chan CatalogEvent, sendBufferSize)}

	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		h.mu.Unlock()
		return
	}
	h.clients[client] = sub
	metrics.RealtimeClients.Set(float64(len(h.clients)))
	h.mu.Unlock()

	go h.writeLoop(sub)
}

// Unregister removes a client from the hub and stops its writer
func (h *Hub) Unregister(client Client) {
	h.mu.Lock()
	h.remove(client)
	h.mu.Unlock()
}

// Count returns the number of registered clients
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish queues event for every client. A client whose queue is full is
// dropped and closed.
func (h *Hub) Publish(event CatalogEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client, sub := range h.clients {
		select {
		case sub.send <- event:
		default:
			h.log.Warn("websocket client too slow, dropping it")
			h.remove(client)
			go client.Close()
		}
	}
}

// remove must be called with h.mu held
func (h *Hub) remove(client Client) {
	sub, ok := h.clients[client]
	if !ok {
		return
	}
	delete(h.clients, client)
	close(sub.send)
	metrics.RealtimeClients.Set(float64(len(h.clients)))
}

func (h *Hub) writeLoop(sub *subscriber) {
	for event := range sub.send {
		sub.client.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := sub.client.WriteJSON(event); err != nil {
			h.log.WithError(err).Warn("websocket write error")
			h.Unregister(sub.client)
			sub.client.Close()
			// Unregister closed the channel, drain what was already queued
			for range sub.send {
			}
			return
		}
	}
}
