package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/chatlens-app/chatlens/internal/core/domain"
)

// syntheticBucketWidth is how many undated messages share one synthetic
// bucket. The fallback keeps timelines renderable for transcripts that carry
// no timestamps at all.
const syntheticBucketWidth = 40

// weekKey buckets an instant by ISO-8601 week (Monday-start, first-Thursday
// year assignment, as implemented by time.ISOWeek).
func weekKey(t time.Time) string {
	year, week := t.ISOWeek()

	return fmt.Sprintf("%d-W%02d", year, week)
}

// syntheticKey buckets the n-th undated message by fixed-width index.
func syntheticKey(undatedIndex int) string {
	return fmt.Sprintf("bucket-%03d", undatedIndex/syntheticBucketWidth)
}

type weekAccumulator struct {
	counts       map[string]int
	total        int
	sentimentSum float64
}

// bucketize groups messages into weekly engagement and sentiment buckets,
// emitted in ascending key order. Timestamped messages use ISO week keys;
// undated messages fall back to synthetic sequential buckets.
func bucketize(messages []domain.Message, senders []string) ([]WeekBucket, []SentimentBucket) {
	if len(messages) == 0 {
		return nil, nil
	}

	buckets := make(map[string]*weekAccumulator)

	undated := 0

	for i, m := range messages {
		var key string
		if m.Timestamp != nil {
			key = weekKey(*m.Timestamp)
		} else {
			key = syntheticKey(undated)
			undated++
		}

		acc, ok := buckets[key]
		if !ok {
			acc = &weekAccumulator{counts: make(map[string]int)}
			buckets[key] = acc
		}

		acc.counts[senders[i]]++
		acc.total++
		acc.sentimentSum += float64(sentimentScore(m.Text))
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	engagement := make([]WeekBucket, 0, len(keys))
	sentiment := make([]SentimentBucket, 0, len(keys))

	for _, k := range keys {
		acc := buckets[k]

		engagement = append(engagement, WeekBucket{Key: k, Counts: acc.counts, Total: acc.total})
		sentiment = append(sentiment, SentimentBucket{
			Key:    k,
			Mean:   acc.sentimentSum / float64(acc.total),
			Volume: acc.total,
		})
	}

	return engagement, sentiment
}

// maxSpikeCandidates bounds the notable-spikes list.
const maxSpikeCandidates = 5

// spikeCandidates ranks weeks by sentiment volatility against the preceding
// week. The first week has no predecessor and is excluded from ranking
// entirely rather than defaulting to a comparable delta.
func spikeCandidates(sentiment []SentimentBucket) []SpikeCandidate {
	if len(sentiment) < 2 {
		return nil
	}

	candidates := make([]SpikeCandidate, 0, len(sentiment)-1)

	for i := 1; i < len(sentiment); i++ {
		delta := sentiment[i].Mean - sentiment[i-1].Mean
		if delta < 0 {
			delta = -delta
		}

		candidates = append(candidates, SpikeCandidate{
			Key:   sentiment[i].Key,
			Delta: delta,
			Total: sentiment[i].Volume,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Delta != candidates[j].Delta {
			return candidates[i].Delta > candidates[j].Delta
		}

		return candidates[i].Total > candidates[j].Total
	})

	if len(candidates) > maxSpikeCandidates {
		candidates = candidates[:maxSpikeCandidates]
	}

	return candidates
}
