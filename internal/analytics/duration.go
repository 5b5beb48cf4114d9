package analytics

import (
	"math"
	"time"

	"github.com/araddon/dateparse"

	"github.com/chatlens-app/chatlens/internal/core/domain"
)

// presetDays maps the coarse duration presets offered by the paste flow to
// fixed day counts.
var presetDays = map[string]int{
	"1-3 days":  3,
	"1-3 weeks": 21,
	"1 month":   30,
}

// durationDays estimates how long the conversation spanned, in days.
//
// Resolution order: real timestamps when at least two messages carry them,
// then an explicit manual start/end pair, then a coarse preset. An explicit
// range wins over a preset when both are supplied. With no signal at all the
// estimate is absent, never a synthetic zero.
func durationDays(messages []domain.Message, dr *DateRange) *int {
	if days, ok := spanFromTimestamps(messages); ok {
		return &days
	}

	if dr == nil {
		return nil
	}

	if dr.Start != "" && dr.End != "" {
		start, errStart := dateparse.ParseAny(dr.Start)
		end, errEnd := dateparse.ParseAny(dr.End)

		if errStart == nil && errEnd == nil && !end.Before(start) {
			days := ceilDays(end.Sub(start))

			return &days
		}
	}

	if days, ok := presetDays[dr.Preset]; ok {
		return &days
	}

	return nil
}

func spanFromTimestamps(messages []domain.Message) (int, bool) {
	var earliest, latest *time.Time

	count := 0

	for _, m := range messages {
		if m.Timestamp == nil {
			continue
		}

		count++

		if earliest == nil || m.Timestamp.Before(*earliest) {
			earliest = m.Timestamp
		}

		if latest == nil || m.Timestamp.After(*latest) {
			latest = m.Timestamp
		}
	}

	if count < 2 {
		return 0, false
	}

	return ceilDays(latest.Sub(*earliest)), true
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}
