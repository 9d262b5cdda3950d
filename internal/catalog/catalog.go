// Package catalog implements the in-memory document collection behind the
// grid UI: batch ingestion, removal, live search filtering, and the derived
// display attributes the view renders. A Catalog belongs to exactly one UI
// session and is never persisted.
package catalog

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Catalog holds one session's documents and its active search text. All
// methods are safe for concurrent use and each runs as one atomic step, so
// callers observe a serial order of complete operations.
type Catalog struct {
	mu    sync.RWMutex
	docs  []Document
	query string

	now   func() time.Time
	newID func() string
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithClock overrides the upload timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

// WithIDFunc overrides the document id generator.
func WithIDFunc(gen func() string) Option {
	return func(c *Catalog) { c.newID = gen }
}

// New returns an empty catalog. Ids default to UUIDs and timestamps to
// time.Now.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ingest admits a batch of descriptors, one document per entry. The batch
// lands ahead of everything already cataloged, keeping its own order, and is
// admitted whole in a single step. An empty batch changes nothing and
// produces no event.
func (c *Catalog) Ingest(batch []Descriptor) ([]Document, Event, bool) {
	if len(batch) == 0 {
		return nil, Event{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	at := c.now()
	docs := make([]Document, len(batch))
	for i, d := range batch {
		docs[i] = Document{
			ID:         c.newID(),
			Name:       d.Name,
			Size:       d.Size,
			Type:       d.Type,
			UploadedAt: at,
		}
	}

	next := make([]Document, 0, len(docs)+len(c.docs))
	next = append(next, docs...)
	next = append(next, c.docs...)
	c.docs = next

	ev := Event{
		Kind:    EventIngested,
		Message: fmt.Sprintf("%d files uploaded", len(docs)),
		Count:   len(docs),
		At:      at,
	}
	return docs, ev, true
}

// Remove deletes the document with the given id, keeping the rest in order.
// Unknown ids leave the catalog untouched. The removal announcement is
// produced either way; the returned bool reports whether a document actually
// went away.
func (c *Catalog) Remove(id string) (Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := false
	for i := range c.docs {
		if c.docs[i].ID == id {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			removed = true
			break
		}
	}

	count := 0
	if removed {
		count = 1
	}
	ev := Event{
		Kind:    EventRemoved,
		Message: "file removed",
		Count:   count,
		At:      c.now(),
	}
	return ev, removed
}

// SetQuery replaces the active search text. Filtering happens on read.
func (c *Catalog) SetQuery(text string) {
	c.mu.Lock()
	c.query = text
	c.mu.Unlock()
}

// Query returns the active search text.
func (c *Catalog) Query() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.query
}

// Visible returns the documents whose names contain the active search text,
// case-insensitively, in catalog order. An empty query matches everything.
// The slice is computed fresh on every call and is the caller's to keep.
func (c *Catalog) Visible() []Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.query == "" {
		out := make([]Document, len(c.docs))
		copy(out, c.docs)
		return out
	}

	q := strings.ToLower(c.query)
	out := make([]Document, 0, len(c.docs))
	for _, d := range c.docs {
		if strings.Contains(strings.ToLower(d.Name), q) {
			out = append(out, d)
		}
	}
	return out
}

// Stats reports the document count and summed byte size of the whole
// catalog, ignoring the active search text.
func (c *Catalog) Stats() (count int, totalBytes int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, d := range c.docs {
		totalBytes += d.Size
	}
	return len(c.docs), totalBytes
}
