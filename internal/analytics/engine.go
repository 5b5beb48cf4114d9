// Package analytics derives conversational metrics from a canonical message
// list. The engine depends only on the canonical message shape, never on the
// export dialect that produced it, and has no error states: degenerate input
// yields a well-formed, zeroed payload.
package analytics

import (
	"strings"

	"github.com/chatlens-app/chatlens/internal/core/domain"
)

// DateRange is a manual hint from the user-paste path, used only when message
// timestamps are absent or sparse.
type DateRange struct {
	Start  string
	End    string
	Preset string
}

// Options carries the optional manual hints accepted by Analyze.
type Options struct {
	// Participants, when non-empty, overrides sender inference. Messages
	// without a resolvable sender are assigned round-robin.
	Participants []string

	// DateRange feeds the duration estimate when timestamps are missing.
	DateRange *DateRange
}

// colorPalette provides stable display-color hints, assigned by participant
// order.
var colorPalette = []string{
	"#6C5CE7", "#00B894", "#E17055", "#0984E3",
	"#FDCB6E", "#D63031", "#00CEC9", "#E84393",
}

// fallbackSender labels messages whose sender could not be resolved and no
// manual participant list was supplied. Without it the participant counts
// would not sum to the message total.
const fallbackSender = "Unknown"

// Analyze computes the full metrics payload. It never fails; empty input
// yields an all-empty payload.
func Analyze(messages []domain.Message, opts Options) Payload {
	senders := resolveSenders(messages, opts.Participants)
	participants := buildParticipants(senders, opts.Participants)

	engagement, sentiment := bucketize(messages, senders)

	payload := Payload{
		TotalMessages:          len(messages),
		Participants:           participants,
		EngagementOverTime:     engagement,
		SentimentOverTime:      sentiment,
		WeeklyHeatmap:          buildHeatmap(messages),
		TopWordsPerParticipant: topWords(messages, senders),
		NotableSpikes:          spikeCandidates(sentiment),
		ConversationDuration:   durationDays(messages, opts.DateRange),
		DetectedLanguages:      detectLanguages(messages),
	}

	return payload
}

// resolveSenders maps each message index to its participant name. With a
// manual list, unresolvable senders rotate through the list round-robin;
// otherwise senders are taken as observed, with a fixed fallback for blanks.
func resolveSenders(messages []domain.Message, manual []string) []string {
	senders := make([]string, len(messages))

	next := 0

	for i, m := range messages {
		sender := strings.TrimSpace(m.Sender)

		switch {
		case len(manual) > 0 && sender == "":
			senders[i] = manual[next%len(manual)]
			next++
		case sender == "":
			senders[i] = fallbackSender
		default:
			senders[i] = sender
		}
	}

	return senders
}

// buildParticipants produces the participant table in manual-list order, or
// first-seen order when inferred, with palette colors assigned by position.
func buildParticipants(senders, manual []string) []Participant {
	counts := make(map[string]int, len(manual))

	var order []string

	for _, name := range manual {
		if _, ok := counts[name]; ok {
			continue
		}

		counts[name] = 0
		order = append(order, name)
	}

	for _, name := range senders {
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}

		counts[name]++
	}

	participants := make([]Participant, 0, len(order))
	for i, name := range order {
		participants = append(participants, Participant{
			Name:         name,
			MessageCount: counts[name],
			Color:        colorPalette[i%len(colorPalette)],
		})
	}

	return participants
}
