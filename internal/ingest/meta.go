package ingest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/chatlens-app/chatlens/internal/core/domain"
)

// mediaPlaceholder stands in for attachment-only Meta messages so that they
// still count toward participant activity.
const mediaPlaceholder = "[Media attachment]"

type metaExport struct {
	Messages []metaMessage `json:"messages"`
}

type metaMessage struct {
	SenderName  string            `json:"sender_name"`
	TimestampMS int64             `json:"timestamp_ms"`
	Content     string            `json:"content"`
	Photos      []json.RawMessage `json:"photos"`
	Videos      []json.RawMessage `json:"videos"`
	AudioFiles  []json.RawMessage `json:"audio_files"`
	Sticker     json.RawMessage   `json:"sticker"`
	GIFs        []json.RawMessage `json:"gifs"`
}

// decodeMeta handles the message_<n>.json shape shared by Messenger and
// Instagram data downloads.
func decodeMeta(data []byte) (decodeResult, error) {
	var export metaExport
	if err := json.Unmarshal(data, &export); err != nil {
		return decodeResult{}, fmt.Errorf("decoding meta export: %w", err)
	}

	var res decodeResult

	ordinal := 0

	for _, m := range export.Messages {
		if m.SenderName == "" {
			res.ignored++
			continue
		}

		text := m.Content
		if text == "" {
			if !m.hasAttachment() {
				res.ignored++
				continue
			}

			text = mediaPlaceholder
		}

		var ts *time.Time
		if m.TimestampMS > 0 {
			t := time.UnixMilli(m.TimestampMS).UTC()
			ts = &t
		}

		res.messages = append(res.messages, domain.NewMessage(ts, m.SenderName, text, ordinal))
		ordinal++
	}

	return res, nil
}

func (m metaMessage) hasAttachment() bool {
	return len(m.Photos) > 0 || len(m.Videos) > 0 || len(m.AudioFiles) > 0 || len(m.GIFs) > 0 || len(m.Sticker) > 0
}
