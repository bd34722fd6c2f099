// Package notify fans out list-change events to connected websocket
// clients. Events are scoped to the owning user: a subscriber only ever
// sees changes to its own lists.
package notify

import (
	"encoding/json"
	"log/slog"
	"sync"
)

const sendBufferSize = 16

// Event types published by the services.
const (
	EventListCreated = "list_created"
	EventListUpdated = "list_updated"
	EventListDeleted = "list_deleted"
	EventItemAdded   = "item_added"
	EventItemUpdated = "item_updated"
	EventItemDeleted = "item_deleted"
	EventItemToggled = "item_toggled"
)

// Event is a change notification delivered to a list owner.
type Event struct {
	Type   string `json:"event"`
	ListID int64  `json:"list_id"`
	ItemID int64  `json:"item_id,omitempty"`
}

// Hub maintains the per-user sets of subscriber channels.
type Hub struct {
	mu   sync.RWMutex
	subs map[int64]map[chan []byte]struct{}
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int64]map[chan []byte]struct{})}
}

// Subscribe registers a subscriber for the given user and returns its
// receive channel plus a cancel function. Cancel closes the channel.
func (h *Hub) Subscribe(userID int64) (<-chan []byte, func()) {
	ch := make(chan []byte, sendBufferSize)

	h.mu.Lock()
	set, ok := h.subs[userID]
	if !ok {
		set = make(map[chan []byte]struct{})
		h.subs[userID] = set
	}
	set[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[userID]; ok {
			if _, live := set[ch]; live {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(h.subs, userID)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber of the given user. A
// subscriber with a full buffer drops the message rather than blocking
// the publishing request.
func (h *Hub) Publish(userID int64, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		slog.Error("failed to marshal event", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[userID] {
		select {
		case ch <- data:
		default:
		}
	}
}

// SubscriberCount returns the number of subscribers for a user.
func (h *Hub) SubscriberCount(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[userID])
}
