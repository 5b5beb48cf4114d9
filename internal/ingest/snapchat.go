package ingest

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/araddon/dateparse"

	"github.com/chatlens-app/chatlens/internal/core/domain"
)

// Snapchat exports are only informally specified and field names drift
// between app versions. Resolution is an ordered list of accessors tried in
// sequence until one yields a value, never ad hoc probing at use sites.
var (
	snapSenderFields = []string{"sender", "from"}
	snapTextFields   = []string{"content", "chat_message", "message"}
)

// decodeSnapchat accepts either a top-level entry array or an object holding
// one or more entry arrays (e.g. received/sent chat history). Object keys are
// visited in sorted order to keep output deterministic.
func decodeSnapchat(data []byte) (decodeResult, error) {
	entries, err := snapchatEntries(data)
	if err != nil {
		return decodeResult{}, err
	}

	var res decodeResult

	ordinal := 0

	for _, entry := range entries {
		sender := resolveString(entry, snapSenderFields)
		text := resolveString(entry, snapTextFields)

		if sender == "" || text == "" {
			res.ignored++
			continue
		}

		res.messages = append(res.messages, domain.NewMessage(resolveSnapTimestamp(entry), sender, text, ordinal))
		ordinal++
	}

	return res, nil
}

func snapchatEntries(data []byte) ([]map[string]any, error) {
	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err == nil {
		return entries, nil
	}

	var groups map[string][]map[string]any
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("decoding snapchat export: %w", err)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var all []map[string]any
	for _, k := range keys {
		all = append(all, groups[k]...)
	}

	return all, nil
}

// resolveString returns the first non-empty string among the named fields.
func resolveString(entry map[string]any, fields []string) string {
	for _, f := range fields {
		if s, ok := entry[f].(string); ok && s != "" {
			return s
		}
	}

	return ""
}

// resolveSnapTimestamp tries the known timestamp fields in order, each
// interpreted per its own unit: "timestamp" in seconds, "timestamp_ms" in
// milliseconds, "created_at" as a free-form date string.
func resolveSnapTimestamp(entry map[string]any) *time.Time {
	if secs, ok := numericField(entry, "timestamp"); ok {
		ts := time.Unix(secs, 0).UTC()

		return &ts
	}

	if ms, ok := numericField(entry, "timestamp_ms"); ok {
		ts := time.UnixMilli(ms).UTC()

		return &ts
	}

	if s, ok := entry["created_at"].(string); ok && s != "" {
		if ts, err := dateparse.ParseAny(s); err == nil {
			ts = ts.UTC()

			return &ts
		}
	}

	return nil
}

// numericField reads an integer field that may arrive as a JSON number or a
// numeric string.
func numericField(entry map[string]any, field string) (int64, bool) {
	switch v := entry[field].(type) {
	case float64:
		if v > 0 {
			return int64(v), true
		}
	case string:
		var n int64
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && n > 0 {
			return n, true
		}
	}

	return 0, false
}
