package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxSenderRunes caps sender names so a corrupted export line cannot blow up
// downstream participant tables.
const maxSenderRunes = 120

// Message is a single canonical chat message, independent of the export
// format it was decoded from.
type Message struct {
	// ID is an opaque identifier unique within one parse.
	ID string `json:"id"`

	// Timestamp is nil when the source format carried no usable instant.
	// When non-nil it is always a fully parsed time, never a partial date.
	Timestamp *time.Time `json:"timestamp,omitempty"`

	// Sender is the trimmed display name of the author.
	Sender string `json:"sender"`

	// Text is the message body, possibly multi-line.
	Text string `json:"text"`

	// SourceOrdinal preserves original file order and is strictly
	// increasing across the returned slice.
	SourceOrdinal int `json:"source_ordinal"`
}

// NewMessage builds a canonical message, trimming and bounding the sender.
func NewMessage(ts *time.Time, sender, text string, ordinal int) Message {
	sender = strings.TrimSpace(sender)

	if runes := []rune(sender); len(runes) > maxSenderRunes {
		sender = string(runes[:maxSenderRunes])
	}

	return Message{
		ID:            uuid.NewString(),
		Timestamp:     ts,
		Sender:        sender,
		Text:          text,
		SourceOrdinal: ordinal,
	}
}
