// Package events implements the in-process publish-subscribe bus that
// decouples the core services from their consumers. Dispatch is
// synchronous: Emit runs every handler before returning.
package events

import "sync"

// Handler receives an event. Handlers must not assume they run on any
// particular goroutine beyond the one calling Emit.
type Handler func(Event)

// Subscription identifies a registered handler and is used to remove it.
type Subscription struct {
	bus       *Bus
	eventType EventType
	id        int
}

// Cancel removes the handler from the bus. Cancelling twice is a no-op.
func (s *Subscription) Cancel() {
	if s.bus != nil {
		s.bus.off(s.eventType, s.id)
		s.bus = nil
	}
}

type registration struct {
	id      int
	handler Handler
}

// Bus is a synchronous event bus. Handlers for an event type run in
// registration order. Emit dispatches against a snapshot of the handler
// list taken when it starts: handlers registered during a dispatch do
// not receive that same dispatch, and handlers cancelled during a
// dispatch may still receive it. A panicking handler propagates to the
// Emit caller; the bus swallows nothing.
type Bus struct {
	mu       sync.Mutex
	handlers map[EventType][]registration
	nextID   int
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[EventType][]registration)}
}

// On registers handler for eventType and returns the subscription used
// to remove it.
func (b *Bus) On(eventType EventType, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{
		id:      b.nextID,
		handler: handler,
	})
	return &Subscription{bus: b, eventType: eventType, id: b.nextID}
}

func (b *Bus) off(eventType EventType, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, reg := range regs {
		if reg.id == id {
			b.handlers[eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Emit synchronously invokes all handlers currently registered for the
// event's type, in registration order.
func (b *Bus) Emit(event Event) {
	b.mu.Lock()
	regs := b.handlers[event.Type]
	snapshot := make([]registration, len(regs))
	copy(snapshot, regs)
	b.mu.Unlock()

	for _, reg := range snapshot {
		reg.handler(event)
	}
}

// ListenerCount returns the number of handlers registered for eventType.
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers[eventType])
}
