package relay

import (
	"sync"

	"github.com/google/uuid"
)

// Event kinds mirror the row-change feed the frontend reconciles against.
const (
	KindInsert = "insert"
	KindUpdate = "update"
)

// Table selectors for subscriptions.
const (
	TableProfiles = "profiles"
	TableMatches  = "matches"
	TableMessages = "messages"
)

// Event is one row change. Payload is the affected record (domain struct);
// handlers must treat it as a replacement snapshot, not a delta, and may
// receive events concurrently with their own in-flight operations.
type Event struct {
	Table   string      `json:"table"`
	Kind    string      `json:"kind"`
	Payload interface{} `json:"payload"`
}

// Handler receives events for one subscription. It runs on the
// publisher's goroutine and must not block.
type Handler func(Event)

// Subscription is the cancellation handle returned by Subscribe. Cancel
// is idempotent and must be called on view teardown so disposed views
// stop receiving state.
type Subscription struct {
	hub   *Hub
	table string
	id    string
}

// Cancel removes the subscription from the hub.
func (s *Subscription) Cancel() {
	if s == nil || s.hub == nil {
		return
	}
	s.hub.remove(s.table, s.id)
}

// Hub is the in-process change feed: repositories publish row changes
// after successful writes, subscribers (websocket sessions, caches) react.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[string]Handler // table -> sub id -> handler
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[string]Handler)}
}

// Subscribe registers fn for all events on table.
func (h *Hub) Subscribe(table string, fn Handler) *Subscription {
	id := uuid.NewString()
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[table]; !ok {
		h.subs[table] = make(map[string]Handler)
	}
	h.subs[table][id] = fn
	return &Subscription{hub: h, table: table, id: id}
}

// Publish fans an event out to every subscriber of its table. Publishing
// with no subscribers is a no-op.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	handlers := make([]Handler, 0, len(h.subs[event.Table]))
	for _, fn := range h.subs[event.Table] {
		handlers = append(handlers, fn)
	}
	h.mu.RUnlock()

	for _, fn := range handlers {
		fn(event)
	}
}

func (h *Hub) remove(table, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if handlers, ok := h.subs[table]; ok {
		delete(handlers, id)
		if len(handlers) == 0 {
			delete(h.subs, table)
		}
	}
}

// SubscriberCount reports active subscriptions for a table.
func (h *Hub) SubscriberCount(table string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[table])
}
