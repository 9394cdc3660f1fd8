package events

import (
	"sync"
)

// Topic names published by the services.
const (
	TopicTicketCompleted = "ticket.completed"
	TopicRequestResolved = "request.resolved"
)

// Event is an in-process notification published by one service and consumed
// by another (e.g. a ticket moving to done appends to the owner's daily log).
type Event struct {
	Topic string
	OrgID string
	Data  interface{}
}

// Handler consumes events for a topic. Handlers run synchronously on the
// publisher's goroutine; keep them short.
type Handler func(event Event)

// Bus is a minimal in-process publish/subscribe hub.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
	}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], handler)
}

// Publish delivers the event to every handler subscribed to its topic.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := b.handlers[event.Topic]
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
