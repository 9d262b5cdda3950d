package notify

import (
	"context"

	"docgrid/internal/catalog"
)

const (
	defaultSendBuffer = 16
	publishBuffer     = 64
)

// Hub routes events to the WebSocket subscribers of each session. Register,
// unregister and publish all funnel through the Run loop, so the subscriber
// table needs no lock.
type Hub struct {
	register   chan *subscriber
	unregister chan *subscriber
	events     chan sessionEvent
	sessions   map[string]map[*subscriber]bool
	sendBuffer int
	done       chan struct{}
}

type sessionEvent struct {
	sessionID string
	event     catalog.Event
}

type subscriber struct {
	sessionID string
	send      chan catalog.Event
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithSendBuffer sets the per-subscriber channel depth. A subscriber that
// falls this far behind is dropped.
func WithSendBuffer(n int) HubOption {
	return func(h *Hub) {
		if n > 0 {
			h.sendBuffer = n
		}
	}
}

// NewHub builds a hub. Run must be started before subscribers attach.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		register:   make(chan *subscriber),
		unregister: make(chan *subscriber),
		events:     make(chan sessionEvent, publishBuffer),
		sessions:   make(map[string]map[*subscriber]bool),
		sendBuffer: defaultSendBuffer,
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run owns the subscriber table until ctx is cancelled. Meant to run as a
// goroutine from main.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for _, subs := range h.sessions {
				for sub := range subs {
					close(sub.send)
				}
			}
			h.sessions = make(map[string]map[*subscriber]bool)
			return

		case sub := <-h.register:
			subs, ok := h.sessions[sub.sessionID]
			if !ok {
				subs = make(map[*subscriber]bool)
				h.sessions[sub.sessionID] = subs
			}
			subs[sub] = true

		case sub := <-h.unregister:
			h.drop(sub)

		case se := <-h.events:
			for sub := range h.sessions[se.sessionID] {
				select {
				case sub.send <- se.event:
				default:
					// Subscriber too far behind; cut it loose.
					h.drop(sub)
				}
			}
		}
	}
}

// drop removes a subscriber and closes its feed. Only the Run loop calls
// this.
func (h *Hub) drop(sub *subscriber) {
	subs, ok := h.sessions[sub.sessionID]
	if !ok || !subs[sub] {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.sessions, sub.sessionID)
	}
	close(sub.send)
}

// Publish hands an event to the session's subscribers. Never blocks; under
// pressure the event is shed.
func (h *Hub) Publish(sessionID string, ev catalog.Event) {
	select {
	case h.events <- sessionEvent{sessionID: sessionID, event: ev}:
	case <-h.done:
	default:
	}
}

// Subscription is one view's event feed. The channel is closed when the
// subscription ends, by Close or by the hub shedding a slow reader.
type Subscription struct {
	hub *Hub
	sub *subscriber
}

// Subscribe attaches a new event feed for the session.
func (h *Hub) Subscribe(sessionID string) *Subscription {
	sub := &subscriber{
		sessionID: sessionID,
		send:      make(chan catalog.Event, h.sendBuffer),
	}
	select {
	case h.register <- sub:
	case <-h.done:
		close(sub.send)
	}
	return &Subscription{hub: h, sub: sub}
}

// C is the event feed.
func (s *Subscription) C() <-chan catalog.Event {
	return s.sub.send
}

// Close detaches the feed. Safe to call after the hub already dropped it.
func (s *Subscription) Close() {
	select {
	case s.hub.unregister <- s.sub:
	case <-s.hub.done:
	}
}
