package catalog

import "time"

// EventKind discriminates catalog announcements.
type EventKind string

const (
	// EventIngested announces an admitted upload batch.
	EventIngested EventKind = "ingested"
	// EventRemoved announces a removal.
	EventRemoved EventKind = "removed"
)

// Event is the human-readable announcement a state change produces. Views
// surface Message as a toast; it carries no structured error state.
type Event struct {
	Kind    EventKind `json:"type"`
	Message string    `json:"message"`
	Count   int       `json:"count"`
	At      time.Time `json:"ts"`
}
