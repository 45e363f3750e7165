package progress

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/packarr/packarr/pkg/logger"
)

const subscriberBuffer = 64

type subscriber struct {
	id     string
	events chan Event
}

// Hub fans events out to subscribers per recipient.
// Publishing happens under one lock so each subscriber observes events
// in emission order.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string][]*subscriber
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string][]*subscriber),
	}
}

// Subscribe registers a listener for one recipient's events.
// The returned cancel func must be called to release the subscription.
func (h *Hub) Subscribe(recipient string) (<-chan Event, func()) {
	sub := &subscriber{
		id:     uuid.New().String(),
		events: make(chan Event, subscriberBuffer),
	}

	h.mu.Lock()
	h.subscribers[recipient] = append(h.subscribers[recipient], sub)
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		subs := h.subscribers[recipient]
		for i, s := range subs {
			if s.id == sub.id {
				h.subscribers[recipient] = append(subs[:i], subs[i+1:]...)
				close(s.events)
				break
			}
		}

		if len(h.subscribers[recipient]) == 0 {
			delete(h.subscribers, recipient)
		}
	}

	return sub.events, cancel
}

// Publish delivers the event to every subscriber of its recipient.
// A subscriber that cannot keep up has the event dropped rather than
// blocking the publisher.
func (h *Hub) Publish(ctx context.Context, event Event) {
	log := logger.FromCtx(ctx)

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subscribers[event.Recipient] {
		select {
		case sub.events <- event:
		default:
			log.Warnw("dropping progress event for slow subscriber", "recipient", event.Recipient, "subscriber", sub.id, "stage", event.Stage)
		}
	}
}
