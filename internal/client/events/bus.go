// Package events implements the typed publish/subscribe registry used to
// notify external collaborators about sync completion and conflicts.
package events

import (
	"slices"
	"sync"
)

// Event names published by the sync coordinator.
const (
	// SyncComplete fires once per reconciliation attempt that ran to the end.
	// Payload: *sync.SyncResult.
	SyncComplete = "sync-complete"
	// Conflict fires for every conflict routed to manual resolution.
	// Payload: api.Conflict.
	Conflict = "conflict"
)

// Handler receives the payload of a published event.
type Handler func(payload any)

// Subscription identifies one registered handler so it can be removed later.
type Subscription struct {
	event string
	id    int
}

type subscriber struct {
	fn Handler
	id int
}

// Bus is a small observer registry: event name to an ordered list of
// subscribers. Handlers run synchronously in registration order.
type Bus struct {
	handlers map[string][]subscriber
	nextID   int
	mu       sync.Mutex
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]subscriber),
	}
}

// On registers a handler for an event. Handlers are invoked in the order
// they were registered.
func (b *Bus) On(event string, fn Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[event] = append(b.handlers[event], subscriber{fn: fn, id: b.nextID})

	return Subscription{event: event, id: b.nextID}
}

// Off removes a previously registered handler. Safe to call from inside a
// handler during dispatch.
func (b *Bus) Off(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[sub.event]
	b.handlers[sub.event] = slices.DeleteFunc(slices.Clone(subs), func(s subscriber) bool {
		return s.id == sub.id
	})
}

// Publish delivers the payload to every handler registered for the event.
// The handler list is copied before invoking so that Off during dispatch
// cannot disturb the iteration.
func (b *Bus) Publish(event string, payload any) {
	b.mu.Lock()
	subs := slices.Clone(b.handlers[event])
	b.mu.Unlock()

	for _, sub := range subs {
		sub.fn(payload)
	}
}
