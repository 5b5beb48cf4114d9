package ingest

import (
	"bufio"
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chatlens-app/chatlens/internal/core/domain"
)

// lineClass is the outcome of classifying one physical transcript line.
type lineClass int

const (
	lineMessageStart lineClass = iota
	lineContinuation
	lineSystem
	lineBlank
)

// startFields carries the parsed header of a MessageStart line.
type startFields struct {
	ts     *time.Time
	sender string
	text   string
}

// startPattern matches both export styles WhatsApp has shipped over the
// years: "[25/12/21, 10:30:15 PM] John: hi" and "25.12.21, 22:30 - John: hi".
// The closing bracket may be directly followed by the sender with no space,
// seconds are optional, and both 12h and 24h clocks appear in the wild.
var startPattern = regexp.MustCompile(
	`^\[?(\d{1,2})[./-](\d{1,2})[./-](\d{2,4}),?\s+(\d{1,2}):(\d{2})(?::(\d{2}))?\s*([AaPp][Mm])?\]?\s*(?:[-\x{2013}]\s*)?([^:]+?):\s?(.*)$`,
)

// systemPhrases flags WhatsApp housekeeping lines that never belong to a
// participant.
var systemPhrases = []string{
	"end-to-end encrypted",
	"created this group",
	"created group",
	"changed the subject",
	"changed this group's icon",
	"security code changed",
	"joined using this group's invite link",
	"you were added",
}

// classifyLine implements the line state machine for whatsapp_txt. The caller
// owns the accumulator that folds continuations into the open message.
func classifyLine(line string) (lineClass, *startFields) {
	if strings.TrimSpace(line) == "" {
		return lineBlank, nil
	}

	lower := strings.ToLower(line)
	for _, phrase := range systemPhrases {
		if strings.Contains(lower, phrase) {
			return lineSystem, nil
		}
	}

	m := startPattern.FindStringSubmatch(line)
	if m == nil {
		return lineContinuation, nil
	}

	ts := parseWhatsAppTimestamp(m[1], m[2], m[3], m[4], m[5], m[6], m[7])
	if ts == nil {
		// Pattern matched but the numbers cannot form a date; treat the
		// line as body text rather than inventing an instant.
		return lineContinuation, nil
	}

	return lineMessageStart, &startFields{ts: ts, sender: m[8], text: m[9]}
}

// parseWhatsAppTimestamp resolves the day/month ambiguity with a single rule:
// if the first numeric group exceeds 12 it must be a day, otherwise the
// export is assumed month-first. Two-digit years are promoted by adding 2000.
func parseWhatsAppTimestamp(first, second, year, hour, minute, second2, meridiem string) *time.Time {
	a, _ := strconv.Atoi(first)
	b, _ := strconv.Atoi(second)
	y, _ := strconv.Atoi(year)
	h, _ := strconv.Atoi(hour)
	min, _ := strconv.Atoi(minute)

	sec := 0
	if second2 != "" {
		sec, _ = strconv.Atoi(second2)
	}

	day, month := b, a
	if a > 12 {
		day, month = a, b
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}

	if y < 100 {
		y += 2000
	}

	switch strings.ToLower(meridiem) {
	case "pm":
		if h < 12 {
			h += 12
		}
	case "am":
		if h == 12 {
			h = 0
		}
	}

	if h > 23 || min > 59 || sec > 59 {
		return nil
	}

	ts := time.Date(y, time.Month(month), day, h, min, sec, 0, time.UTC)

	return &ts
}

// decodeWhatsApp folds classified lines into messages. Continuations are
// appended newline-joined to the most recently opened message; continuations
// arriving before any message are dropped and counted as ignored.
func decodeWhatsApp(data []byte) (decodeResult, error) {
	var res decodeResult

	var (
		open    *startFields
		body    strings.Builder
		ordinal int
	)

	flush := func() {
		if open == nil {
			return
		}

		res.messages = append(res.messages, domain.NewMessage(open.ts, open.sender, body.String(), ordinal))
		ordinal++
		open = nil
		body.Reset()
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		class, fields := classifyLine(line)
		switch class {
		case lineMessageStart:
			flush()

			open = fields

			body.WriteString(fields.text)
		case lineContinuation:
			if open == nil {
				res.ignored++
				continue
			}

			body.WriteString("\n")
			body.WriteString(line)
		case lineSystem:
			res.ignored++
		case lineBlank:
		}
	}

	flush()

	if err := scanner.Err(); err != nil {
		return decodeResult{}, err
	}

	return res, nil
}
