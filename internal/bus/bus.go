// Package bus is the in-process publish/subscribe registry that decouples
// store mutations from view refresh and presence bookkeeping. Delivery is
// synchronous, on the publisher's goroutine, in registration order.
package bus

import (
	"sync"

	"go.uber.org/zap"
)

// Handler receives the payload published under an event name.
type Handler func(payload any)

type subscriber struct {
	id      string
	handler Handler
}

type Bus struct {
	mu        sync.Mutex
	listeners map[string][]subscriber
	logger    *zap.SugaredLogger
}

func New(logger *zap.SugaredLogger) *Bus {
	return &Bus{
		listeners: make(map[string][]subscriber),
		logger:    logger,
	}
}

// Subscribe registers handler under event, keyed by id. Subscribing the
// same id twice replaces the handler but keeps its original position, so
// the call is idempotent with respect to delivery order.
func (b *Bus) Subscribe(event, id string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.listeners[event]
	for i, sub := range subs {
		if sub.id == id {
			subs[i].handler = handler
			return
		}
	}
	b.listeners[event] = append(subs, subscriber{id: id, handler: handler})
}

// Unsubscribe removes the handler registered under id. No-op if absent.
func (b *Bus) Unsubscribe(event, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.listeners[event]
	for i, sub := range subs {
		if sub.id == id {
			b.listeners[event] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish invokes every handler currently subscribed to event, in
// registration order, on the caller's goroutine. The subscriber set is
// snapshotted up front: handlers added during the publish are not invoked
// within it. A panicking handler is recovered and logged so the remaining
// handlers still run. Handlers must not synchronously republish the event
// they are handling.
func (b *Bus) Publish(event string, payload any) {
	b.mu.Lock()
	subs := make([]subscriber, len(b.listeners[event]))
	copy(subs, b.listeners[event])
	b.mu.Unlock()

	for _, sub := range subs {
		b.invoke(event, sub, payload)
	}
}

func (b *Bus) invoke(event string, sub subscriber, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Errorw("event handler panicked", "event", event, "subscriber", sub.id, "panic", r)
		}
	}()
	sub.handler(payload)
}
