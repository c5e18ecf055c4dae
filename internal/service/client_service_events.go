package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/models"
)

// DefaultEventBuffer is the channel capacity of one subscription.
const DefaultEventBuffer = 64

// EventBus fans state changes out to subscribers. Publish never blocks: a
// subscriber whose buffer is full misses the event.
type EventBus struct {
	mu     sync.RWMutex
	subs   map[int]chan models.Event
	nextID int
	buffer int

	logger *logger.Logger
}

// NewEventBus creates a bus whose subscriptions buffer up to buffer events.
// A non-positive buffer falls back to [DefaultEventBuffer].
func NewEventBus(buffer int, logger *logger.Logger) *EventBus {
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}
	return &EventBus{
		subs:   make(map[int]chan models.Event),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe returns a channel of future events and a func that ends the
// subscription and closes the channel. cancel may be called more than once.
func (b *EventBus) Subscribe() (<-chan models.Event, func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	ch := make(chan models.Event, b.buffer)
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			close(ch)
			b.mu.Unlock()
		})
	}
	return ch, cancel
}

// Publish delivers event to every subscriber that has room for it.
func (b *EventBus) Publish(event models.Event) {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.logger.Warn().
				Int("subscriber", id).
				Int("kind", int(event.Kind)).
				Str("account_id", event.AccountID).
				Str("uid", event.UID).
				Msg("event dropped, subscriber is not keeping up")
		}
	}
}
