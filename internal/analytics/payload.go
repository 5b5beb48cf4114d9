package analytics

// Participant is one conversation member with a stable display-color hint.
type Participant struct {
	Name         string `json:"name"`
	MessageCount int    `json:"message_count"`
	Color        string `json:"color"`
}

// WeekBucket is one engagement bucket: an ISO week (or a synthetic index
// bucket for undated transcripts) with per-participant counts.
type WeekBucket struct {
	Key    string         `json:"key"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// SentimentBucket carries the mean heuristic sentiment of one week.
type SentimentBucket struct {
	Key    string  `json:"key"`
	Mean   float64 `json:"mean"`
	Volume int     `json:"volume"`
}

// Heatmap is the fixed day-of-week by time-block activity grid. Rows run
// Monday through Sunday; columns are the six four-hour blocks of a day.
type Heatmap [7][6]int

// TimeBlockLabels names the heatmap columns in order.
var TimeBlockLabels = [6]string{"late_night", "early_morning", "morning", "afternoon", "evening", "night"}

// WordCount is one word-cloud entry.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// SpikeCandidate is a week whose sentiment swung hard against its
// predecessor.
type SpikeCandidate struct {
	Key   string  `json:"key"`
	Delta float64 `json:"delta"`
	Total int     `json:"total"`
}

// Payload is the full derived-metrics value object. Every field is recomputed
// on each Analyze call; nothing here has identity or persistence.
type Payload struct {
	TotalMessages          int                    `json:"total_messages"`
	Participants           []Participant          `json:"participants"`
	EngagementOverTime     []WeekBucket           `json:"engagement_over_time"`
	SentimentOverTime      []SentimentBucket      `json:"sentiment_over_time"`
	WeeklyHeatmap          Heatmap                `json:"weekly_heatmap"`
	TopWordsPerParticipant map[string][]WordCount `json:"top_words_per_participant"`
	NotableSpikes          []SpikeCandidate       `json:"notable_spikes"`
	ConversationDuration   *int                   `json:"conversation_duration_days,omitempty"`
	DetectedLanguages      []string               `json:"detected_languages"`
}
