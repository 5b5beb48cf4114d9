package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/chatlens-app/chatlens/internal/core/domain"
	cerrors "github.com/chatlens-app/chatlens/internal/core/errors"
)

// Header synonyms accepted for iMessage CSV exports. Third-party export tools
// disagree on column naming, so each logical column matches a small synonym
// set.
var (
	csvDatetimeHeaders = []string{"datetime", "date", "time", "timestamp", "date_time", "message_date"}
	csvContactHeaders  = []string{"contact", "sender", "from", "name", "handle", "phone"}
	csvBodyHeaders     = []string{"body", "text", "message", "content"}
)

// decodeIMessageCSV auto-detects the header row and yields one message per
// data row in file order. Rows whose body cell is empty are counted as
// ignored; a datetime cell that fails to parse leaves the message undated
// rather than dropping it.
func decodeIMessageCSV(data []byte) (decodeResult, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return decodeResult{}, fmt.Errorf("reading csv: %w", err)
	}

	if len(rows) == 0 {
		return decodeResult{}, cerrors.ErrNoHeader
	}

	dtCol := findColumn(rows[0], csvDatetimeHeaders)
	contactCol := findColumn(rows[0], csvContactHeaders)
	bodyCol := findColumn(rows[0], csvBodyHeaders)

	if bodyCol < 0 || contactCol < 0 {
		return decodeResult{}, fmt.Errorf("%w: got %v", cerrors.ErrNoHeader, rows[0])
	}

	var res decodeResult

	ordinal := 0

	for _, row := range rows[1:] {
		body := cell(row, bodyCol)
		if body == "" {
			res.ignored++
			continue
		}

		var ts *time.Time
		if raw := cell(row, dtCol); raw != "" {
			if parsed, err := dateparse.ParseAny(raw); err == nil {
				parsed = parsed.UTC()
				ts = &parsed
			}
		}

		res.messages = append(res.messages, domain.NewMessage(ts, cell(row, contactCol), body, ordinal))
		ordinal++
	}

	return res, nil
}

// findColumn returns the index of the first header cell matching any synonym,
// or -1.
func findColumn(header []string, synonyms []string) int {
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))

		for _, syn := range synonyms {
			if name == syn {
				return i
			}
		}
	}

	return -1
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[col])
}
