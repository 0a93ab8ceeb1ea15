package service

import (
	"sync"

	"github.com/MKhiriev/go-notebook/models"
)

// Handler receives change events. It is called synchronously after the
// change is persisted and must not block.
type Handler func(models.Event)

// Broker fans change events out to subscribers.
type Broker struct {
	mu       sync.RWMutex
	handlers map[uint64]Handler
	nextID   uint64
}

func NewBroker() *Broker {
	return &Broker{handlers: make(map[uint64]Handler)}
}

// Subscribe registers h and returns a function that removes it. The returned
// function is safe to call more than once.
func (b *Broker) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.handlers, id)
		b.mu.Unlock()
	}
}

// Publish calls every current subscriber with ev, in no particular order.
func (b *Broker) Publish(ev models.Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ev)
	}
}
