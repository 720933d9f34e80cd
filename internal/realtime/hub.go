// Package realtime fans domain events out to connected clients. Delivery
// is best effort: a mutation never waits on, or fails because of, a
// subscriber.
package realtime

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

const sendBuffer = 64

// Event is the wire form pushed to subscribers.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Subscriber is one connected client. Events arrive on C; the hub closes
// C when the subscriber is removed.
type Subscriber struct {
	UserID int
	C      chan []byte
}

// Hub tracks connected subscribers and broadcasts events to them.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscriber]struct{}
	log  *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		subs: make(map[*Subscriber]struct{}),
		log:  log,
	}
}

// Subscribe registers a client for the given user.
func (h *Hub) Subscribe(userID int) *Subscriber {
	sub := &Subscriber{
		UserID: userID,
		C:      make(chan []byte, sendBuffer),
	}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

// Unsubscribe removes the client and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[sub]; !ok {
		return
	}
	delete(h.subs, sub)
	close(sub.C)
}

// Broadcast pushes the event to every subscriber except those belonging
// to excludeUserID. Subscribers with a full buffer miss the event.
func (h *Hub) Broadcast(event string, payload any, excludeUserID int) {
	msg, err := json.Marshal(Event{Event: event, Data: payload})
	if err != nil {
		h.log.Warn("dropping unmarshalable event", zap.String("event", event), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		if sub.UserID == excludeUserID {
			continue
		}
		select {
		case sub.C <- msg:
		default:
			h.log.Debug("slow subscriber, dropping event",
				zap.String("event", event), zap.Int("user_id", sub.UserID))
		}
	}
}
