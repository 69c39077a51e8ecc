package hub

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vk/campaignflow/internal/campaign"
)

// subscriberBuffer is the per-subscription channel depth. A handful of frames
// absorbs transport hiccups; beyond that, dropping is the right policy for
// whole-state updates.
const subscriberBuffer = 16

// Hub is an in-memory broadcast hub for accepted campaign state.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]*Subscription
	closed bool
}

// Subscription is one subscriber's feed of accepted campaigns. C is closed
// by Unsubscribe and by Hub.Close.
type Subscription struct {
	id  string
	hub *Hub

	// C delivers every accepted campaign, newest last. Slow consumers miss
	// frames instead of stalling the publisher.
	C chan campaign.Campaign
}

// New creates an empty hub.
func New() *Hub {
	return &Hub{subs: make(map[string]*Subscription)}
}

// Subscribe registers a new subscriber and returns its feed. A closed hub
// returns an already-closed subscription.
func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{
		id:  uuid.NewString(),
		hub: h,
		C:   make(chan campaign.Campaign, subscriberBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(sub.C)
		return sub
	}
	h.subs[sub.id] = sub
	return sub
}

// Unsubscribe removes the subscription and closes its channel. Safe to call
// more than once.
func (s *Subscription) Unsubscribe() {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()
	if _, ok := s.hub.subs[s.id]; !ok {
		return
	}
	delete(s.hub.subs, s.id)
	close(s.C)
}

// Publish delivers c to every current subscriber without blocking and
// returns the number of subscribers that received it.
func (h *Hub) Publish(c campaign.Campaign) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return 0
	}

	delivered := 0
	for _, sub := range h.subs {
		select {
		case sub.C <- c:
			delivered++
		default:
			// Buffer full: drop. The next accepted mutation replaces
			// this frame entirely.
		}
	}
	return delivered
}

// Len returns the number of active subscriptions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close removes all subscriptions and closes their channels. Publishing or
// subscribing afterwards is a no-op.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, sub := range h.subs {
		delete(h.subs, id)
		close(sub.C)
	}
}
