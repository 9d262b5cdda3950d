package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 Bytes"},
		{"negative collapses to zero", -5, "0 Bytes"},
		{"single byte", 1, "1 Bytes"},
		{"below first step", 1023, "1023 Bytes"},
		{"exact kilobyte", 1024, "1 KB"},
		{"half step", 1536, "1.5 KB"},
		{"rounds just above a step", 1025, "1 KB"},
		{"exact megabyte", 1048576, "1 MB"},
		{"two decimals, zeros dropped", 1234567, "1.18 MB"},
		{"exact gigabyte", 1073741824, "1 GB"},
		{"scale clamps at GB", 1099511627776, "1024 GB"},
		{"large clamped value", 5629499534213120, "5242880 GB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.bytes))
		})
	}
}

func TestClassifyIcon(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		want     Icon
	}{
		{"image", "image/png", IconImage},
		{"pdf", "application/pdf", IconDocument},
		{"video", "video/mp4", IconVideo},
		{"audio", "audio/mpeg", IconMusic},
		{"zip", "application/zip", IconArchive},
		{"rar", "application/x-rar-compressed", IconArchive},
		{"plain text falls through", "text/plain", IconFile},
		{"octet stream falls through", "application/octet-stream", IconFile},
		{"empty type", "", IconFile},
		{"matching is case-sensitive", "IMAGE/PNG", IconFile},
		{"first match wins", "image/pdf", IconImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIcon(tt.mimeType))
		})
	}
}

func TestNewCard(t *testing.T) {
	uploaded := time.Date(2026, 2, 9, 15, 4, 5, 0, time.UTC)
	card := NewCard(Document{
		ID:         "doc-1",
		Name:       "slides.pdf",
		Size:       1536,
		Type:       "application/pdf",
		UploadedAt: uploaded,
	})

	assert.Equal(t, "doc-1", card.ID)
	assert.Equal(t, "1.5 KB", card.SizeLabel)
	assert.Equal(t, IconDocument, card.Icon)
	assert.Equal(t, "Feb 9, 2026", card.UploadedLabel)
	assert.NotEmpty(t, card.UploadedAgo)
}

func TestNewCardsKeepsOrder(t *testing.T) {
	cards := NewCards([]Document{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}})
	require.Len(t, cards, 2)
	assert.Equal(t, "a", cards[0].Name)
	assert.Equal(t, "b", cards[1].Name)
}
