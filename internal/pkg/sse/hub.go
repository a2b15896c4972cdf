package sse

import (
	"sync"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
)

// subscriberBuffer is how many events a slow subscriber may lag behind before
// further events are dropped for it.
const subscriberBuffer = 16

// Event represents an SSE event to be sent to subscribers
type Event struct {
	Event string
	Data  interface{}
}

// Hub manages SSE subscribers and event broadcasting. Subscribers are keyed by
// the admin employee id that opened the stream.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber and returns the event channel and cleanup function
func (h *Hub) Subscribe(subscriberID string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)

	if h.subscribers[subscriberID] == nil {
		h.subscribers[subscriberID] = make(map[chan Event]struct{})
	}
	h.subscribers[subscriberID][ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers[subscriberID], ch)
			close(ch)
			if len(h.subscribers[subscriberID]) == 0 {
				delete(h.subscribers, subscriberID)
			}
		})
	}

	return ch, cleanup
}

// Publish sends an event to all streams of one subscriber
func (h *Hub) Publish(subscriberID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	send(h.subscribers[subscriberID], event)
}

// Broadcast sends an event to every open stream
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, subs := range h.subscribers {
		send(subs, event)
	}
}

func send(subs map[chan Event]struct{}, event Event) {
	for ch := range subs {
		select {
		case ch <- event:
		default:
			// Skip if channel is full (non-blocking to prevent deadlock)
		}
	}
}

// PublishClockEvent implements attendance.EventPublisher.
func (h *Hub) PublishClockEvent(event attendance.ClockEvent) {
	h.Broadcast(Event{Event: event.Type, Data: event})
}

// SubscriberCount returns the number of active streams for a subscriber
func (h *Hub) SubscriberCount(subscriberID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[subscriberID])
}

// TotalSubscribers returns the total number of active streams
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}
