// Package notify fans catalog announcements out to the views of each
// session. Delivery is fire-and-forget: a view that is not listening simply
// misses the toast, and nothing upstream waits on it.
package notify

import "docgrid/internal/catalog"

// Publisher receives catalog announcements addressed to one session.
// Implementations must not block the caller.
type Publisher interface {
	Publish(sessionID string, ev catalog.Event)
}

// Discard is a Publisher that drops every event. Used when notifications
// are disabled.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(string, catalog.Event) {}
