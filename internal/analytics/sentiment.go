package analytics

import "strings"

// Fixed keyword lexicons for the sentiment heuristic. This is deliberately
// not a trained model: no weighting, no negation handling, just substring
// hits. The lists mix English and romanized-Hindi terms because that is what
// the target transcripts contain.
var positiveWords = []string{
	"love", "great", "happy", "awesome", "amazing", "good", "nice",
	"haha", "lol", "thanks", "thank you", "beautiful", "best", "fun",
	"miss you", "cute", "sweet", "yay", "excited", "perfect",
	"wonderful", "congrats", "glad", "pyaar", "acha", "mast",
}

var negativeWords = []string{
	"hate", "sad", "angry", "terrible", "awful", "bad", "sorry",
	"worst", "annoying", "cry", "upset", "hurt", "fight", "stupid",
	"ugh", "wtf", "disappointed", "lonely", "stressed", "bura",
	"gussa", "pagal",
}

// sentimentScore counts case-insensitive substring hits: positive occurrences
// minus negative occurrences.
func sentimentScore(text string) int {
	lower := strings.ToLower(text)

	score := 0

	for _, w := range positiveWords {
		score += strings.Count(lower, w)
	}

	for _, w := range negativeWords {
		score -= strings.Count(lower, w)
	}

	return score
}
