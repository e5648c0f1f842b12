package services

import (
	"sync"

	"github.com/teamswap/teamswap/internal/models"
)

// NotificationEvent is the payload pushed over a user's event stream.
type NotificationEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	RelatedID string `json:"related_id,omitempty"`
	ActionURL string `json:"action_url,omitempty"`
	CreatedAt string `json:"created_at"`
}

// EventHub manages per-user SSE subscriptions. Unlike a broadcast hub,
// events are routed to the recipient only.
type EventHub struct {
	clients map[string]map[string]chan NotificationEvent
	mu      sync.RWMutex
}

func NewEventHub() *EventHub {
	return &EventHub{
		clients: make(map[string]map[string]chan NotificationEvent),
	}
}

// Subscribe registers a connection for userID and returns its channel.
// A user may hold several connections (multiple tabs), each keyed by
// connID.
func (h *EventHub) Subscribe(userID, connID string) <-chan NotificationEvent {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Buffered so a slow consumer never blocks the publisher
	ch := make(chan NotificationEvent, 100)
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[string]chan NotificationEvent)
	}
	h.clients[userID][connID] = ch
	return ch
}

// Unsubscribe removes a connection and closes its channel.
func (h *EventHub) Unsubscribe(userID, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.clients[userID]
	if !ok {
		return
	}
	if ch, ok := conns[connID]; ok {
		close(ch)
		delete(conns, connID)
	}
	if len(conns) == 0 {
		delete(h.clients, userID)
	}
}

// Publish delivers an event to every connection the recipient holds.
func (h *EventHub) Publish(userID string, event NotificationEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.clients[userID] {
		// Non-blocking send, drop the event if the client buffer is full
		select {
		case ch <- event:
		default:
		}
	}
}

// ClientCount returns the number of open connections across all users.
func (h *EventHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, conns := range h.clients {
		n += len(conns)
	}
	return n
}

// Global event hub instance
var globalEventHub *EventHub
var eventHubOnce sync.Once

// GetEventHub returns the global event hub singleton
func GetEventHub() *EventHub {
	eventHubOnce.Do(func() {
		globalEventHub = NewEventHub()
	})
	return globalEventHub
}

// PublishNotification pushes a stored notification to its recipient's
// open streams.
func PublishNotification(n *models.Notification) {
	GetEventHub().Publish(n.UserID, NotificationEvent{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		RelatedID: n.RelatedID,
		ActionURL: n.ActionURL,
		CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}
