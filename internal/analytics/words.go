package analytics

import (
	"sort"

	"github.com/chatlens-app/chatlens/internal/core/domain"
	"github.com/chatlens-app/chatlens/internal/platform/textutil"
)

// topWordsLimit caps each participant's word-cloud table.
const topWordsLimit = 40

// minTokenRunes drops tokens too short to mean anything in a word cloud.
const minTokenRunes = 3

// stopWords removes filler from word clouds. English and Hinglish filler both
// appear because the target transcripts freely code-switch.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "you": {}, "for": {}, "that": {}, "this": {},
	"with": {}, "have": {}, "but": {}, "not": {}, "are": {}, "was": {},
	"what": {}, "your": {}, "just": {}, "like": {}, "will": {}, "can": {},
	"its": {}, "got": {}, "get": {}, "she": {}, "him": {}, "her": {},
	"they": {}, "them": {}, "then": {}, "than": {}, "when": {}, "how": {},
	"all": {}, "out": {}, "about": {}, "there": {}, "here": {}, "now": {},
	"hai": {}, "kya": {}, "aur": {}, "bhi": {}, "toh": {}, "mein": {},
	"nahi": {}, "haan": {}, "tum": {}, "abhi": {}, "kuch": {},
}

type wordTally struct {
	counts    map[string]int
	firstSeen map[string]int
	order     int
}

// topWords builds the per-participant word-frequency tables: tokenize, drop
// short tokens and stop-words, keep the top 40 by count with first-seen
// tie-break.
func topWords(messages []domain.Message, senders []string) map[string][]WordCount {
	tallies := make(map[string]*wordTally)

	for i, m := range messages {
		tally, ok := tallies[senders[i]]
		if !ok {
			tally = &wordTally{counts: make(map[string]int), firstSeen: make(map[string]int)}
			tallies[senders[i]] = tally
		}

		for _, token := range textutil.Tokenize(m.Text) {
			if len([]rune(token)) < minTokenRunes {
				continue
			}

			if _, stopped := stopWords[token]; stopped {
				continue
			}

			if _, seen := tally.firstSeen[token]; !seen {
				tally.firstSeen[token] = tally.order
				tally.order++
			}

			tally.counts[token]++
		}
	}

	result := make(map[string][]WordCount, len(tallies))
	for name, tally := range tallies {
		result[name] = tally.top(topWordsLimit)
	}

	return result
}

func (t *wordTally) top(limit int) []WordCount {
	words := make([]WordCount, 0, len(t.counts))
	for word, count := range t.counts {
		words = append(words, WordCount{Word: word, Count: count})
	}

	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}

		return t.firstSeen[words[i].Word] < t.firstSeen[words[j].Word]
	})

	if len(words) > limit {
		words = words[:limit]
	}

	return words
}
