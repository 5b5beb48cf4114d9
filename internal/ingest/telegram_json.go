package ingest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chatlens-app/chatlens/internal/core/domain"
)

// telegramDateLayout is the local-time layout Telegram writes in JSON exports.
const telegramDateLayout = "2006-01-02T15:04:05"

type telegramExport struct {
	Messages []telegramMessage `json:"messages"`
}

type telegramMessage struct {
	Type         string   `json:"type"`
	From         string   `json:"from"`
	Date         string   `json:"date"`
	DateUnixtime string   `json:"date_unixtime"`
	Text         richText `json:"text"`
}

// richText absorbs Telegram's two text encodings: a plain string, or an array
// mixing plain strings with {type, text} markup fragments. Fragments are
// concatenated in order; the markup itself is dropped.
type richText string

func (r *richText) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*r = richText(plain)

		return nil
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("text is neither string nor array: %w", err)
	}

	var b strings.Builder

	for _, part := range parts {
		var s string
		if err := json.Unmarshal(part, &s); err == nil {
			b.WriteString(s)
			continue
		}

		var frag struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(part, &frag); err == nil {
			b.WriteString(frag.Text)
		}
	}

	*r = richText(b.String())

	return nil
}

func decodeTelegramJSON(data []byte) (decodeResult, error) {
	var export telegramExport
	if err := json.Unmarshal(data, &export); err != nil {
		return decodeResult{}, fmt.Errorf("decoding telegram export: %w", err)
	}

	var res decodeResult

	ordinal := 0

	for _, m := range export.Messages {
		text := string(m.Text)
		if m.From == "" || text == "" {
			// Service entries and media-only stubs carry no analyzable text.
			res.ignored++
			continue
		}

		res.messages = append(res.messages, domain.NewMessage(telegramTimestamp(m), m.From, text, ordinal))
		ordinal++
	}

	return res, nil
}

func telegramTimestamp(m telegramMessage) *time.Time {
	if m.Date != "" {
		if ts, err := time.Parse(telegramDateLayout, m.Date); err == nil {
			return &ts
		}
	}

	if m.DateUnixtime != "" {
		if secs, err := strconv.ParseInt(m.DateUnixtime, 10, 64); err == nil {
			ts := time.Unix(secs, 0).UTC()

			return &ts
		}
	}

	return nil
}
