package catalog

import (
	"math"
	"strconv"
	"strings"
)

// Icon is the glyph class the grid shows for a document type.
type Icon string

const (
	IconImage    Icon = "image"
	IconDocument Icon = "document-text"
	IconVideo    Icon = "video"
	IconMusic    Icon = "music"
	IconArchive  Icon = "archive"
	IconFile     Icon = "file"
)

// sizeUnits is the display scale. Counts past the last unit stay in it, so
// very large sizes read as big GB values instead of running off the scale.
var sizeUnits = [...]string{"Bytes", "KB", "MB", "GB"}

// FormatSize renders a byte count for the grid: the largest unit reached by
// 1024 steps, at most two decimals, trailing zeros dropped. Zero and
// negative counts collapse to "0 Bytes".
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	value = math.Round(value*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[unit]
}

// ClassifyIcon maps a MIME type string to its icon class. Matches are
// ordered substring checks on the raw value: the first hit wins and casing
// matters, so "IMAGE/PNG" falls through to the generic file icon.
func ClassifyIcon(mimeType string) Icon {
	switch {
	case strings.Contains(mimeType, "image"):
		return IconImage
	case strings.Contains(mimeType, "pdf"):
		return IconDocument
	case strings.Contains(mimeType, "video"):
		return IconVideo
	case strings.Contains(mimeType, "audio"):
		return IconMusic
	case strings.Contains(mimeType, "zip"), strings.Contains(mimeType, "rar"):
		return IconArchive
	default:
		return IconFile
	}
}
