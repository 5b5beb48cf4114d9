package analytics

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chatlens-app/chatlens/internal/core/domain"
)

func TestWeekKey(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "mid-year", t: time.Date(2021, 3, 1, 10, 0, 0, 0, time.UTC), want: "2021-W09"},
		{name: "january 1st belongs to previous iso year", t: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), want: "2020-W53"},
		{name: "first monday of iso year", t: time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC), want: "2021-W01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := weekKey(tt.t)
			if got != tt.want {
				t.Errorf("weekKey(%v) = %q, want %q", tt.t, got, tt.want)
			}
		})
	}
}

// Undated messages fall back to synthetic 40-message buckets so that a
// timeline still renders for transcripts without timestamps.
func TestBucketizeSyntheticFallback(t *testing.T) {
	messages := make([]domain.Message, 85)
	senders := make([]string, 85)

	for i := range messages {
		messages[i] = domain.NewMessage(nil, "Asha", fmt.Sprintf("msg %d", i), i)
		senders[i] = "Asha"
	}

	engagement, sentiment := bucketize(messages, senders)

	require.Len(t, engagement, 3) // 40 + 40 + 5
	require.Len(t, sentiment, 3)

	require.Equal(t, "bucket-000", engagement[0].Key)
	require.Equal(t, 40, engagement[0].Total)
	require.Equal(t, "bucket-002", engagement[2].Key)
	require.Equal(t, 5, engagement[2].Total)
}

func TestBucketizeAscendingKeyOrder(t *testing.T) {
	base := time.Date(2021, 3, 1, 10, 0, 0, 0, time.UTC)

	// Deliberately out of chronological order.
	messages := []domain.Message{
		msgAt(base.Add(21*24*time.Hour), "Asha", "late", 0),
		msgAt(base, "Asha", "early", 1),
		msgAt(base.Add(7*24*time.Hour), "Asha", "middle", 2),
	}
	senders := []string{"Asha", "Asha", "Asha"}

	engagement, _ := bucketize(messages, senders)

	keys := make([]string, 0, len(engagement))
	for _, b := range engagement {
		keys = append(keys, b.Key)
	}

	require.True(t, sort.StringsAreSorted(keys), "bucket keys not ascending: %v", keys)
}

func TestSpikeCandidates(t *testing.T) {
	sentiment := []SentimentBucket{
		{Key: "2021-W01", Mean: 0, Volume: 10},
		{Key: "2021-W02", Mean: 2, Volume: 8},
		{Key: "2021-W03", Mean: 1, Volume: 12},
		{Key: "2021-W04", Mean: 5, Volume: 3},
	}

	spikes := spikeCandidates(sentiment)

	require.Len(t, spikes, 3)
	require.Equal(t, "2021-W04", spikes[0].Key) // delta 4
	require.Equal(t, "2021-W02", spikes[1].Key) // delta 2
	require.Equal(t, "2021-W03", spikes[2].Key) // delta 1

	// The first week has no predecessor and never ranks.
	for _, s := range spikes {
		require.NotEqual(t, "2021-W01", s.Key)
	}
}

func TestSpikeCandidatesTieBreaksByVolume(t *testing.T) {
	sentiment := []SentimentBucket{
		{Key: "w1", Mean: 0, Volume: 1},
		{Key: "w2", Mean: 1, Volume: 2}, // delta 1, volume 2
		{Key: "w3", Mean: 0, Volume: 9}, // delta 1, volume 9
	}

	spikes := spikeCandidates(sentiment)

	require.Equal(t, "w3", spikes[0].Key)
	require.Equal(t, "w2", spikes[1].Key)
}

func TestSpikeCandidatesSingleWeek(t *testing.T) {
	require.Empty(t, spikeCandidates([]SentimentBucket{{Key: "w1", Mean: 3, Volume: 5}}))
}

func TestSpikeCandidatesCapAtFive(t *testing.T) {
	var sentiment []SentimentBucket
	for i := 0; i < 10; i++ {
		sentiment = append(sentiment, SentimentBucket{Key: fmt.Sprintf("w%d", i), Mean: float64(i * i), Volume: i})
	}

	require.Len(t, spikeCandidates(sentiment), maxSpikeCandidates)
}
