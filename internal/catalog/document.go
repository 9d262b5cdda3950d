package catalog

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Descriptor is the raw file metadata an upload surface hands over: display
// name, byte size, and the browser-reported MIME type. Values are carried
// as-is; the catalog never trims, validates, or dedupes them.
type Descriptor struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// Document is one cataloged file. This is a pure domain model with metadata
// only; the file content itself is never held.
// ID is the sole key for removal and rendering. The remaining fields are
// kept exactly as supplied at ingestion and never change afterwards.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// dateLayout is the absolute upload date shown on a card.
const dateLayout = "Jan 2, 2006"

// Card is a Document annotated with the attributes the grid renders:
// humanized size, icon class, and upload date labels.
type Card struct {
	Document
	SizeLabel     string `json:"size_label"`
	Icon          Icon   `json:"icon"`
	UploadedLabel string `json:"uploaded_label"`
	UploadedAgo   string `json:"uploaded_ago"`
}

// NewCard derives a document's display attributes.
func NewCard(d Document) Card {
	return Card{
		Document:      d,
		SizeLabel:     FormatSize(d.Size),
		Icon:          ClassifyIcon(d.Type),
		UploadedLabel: d.UploadedAt.Format(dateLayout),
		UploadedAgo:   humanize.Time(d.UploadedAt),
	}
}

// NewCards annotates a slice of documents, keeping order.
func NewCards(docs []Document) []Card {
	cards := make([]Card, len(docs))
	for i, d := range docs {
		cards[i] = NewCard(d)
	}
	return cards
}
