package analytics

import (
	"unicode"

	"github.com/chatlens-app/chatlens/internal/core/domain"
	"github.com/chatlens-app/chatlens/internal/platform/textutil"
)

// Language hint tags.
const (
	langEnglish  = "english"
	langHindi    = "hindi"
	langHinglish = "hinglish"
	langUnknown  = "unknown"
)

// Detection thresholds over all message text combined.
const (
	latinThreshold      = 0.5  // share of letters that are Latin
	devanagariThreshold = 0.15 // share of letters that are Devanagari
	romanizedHitsMin    = 3    // whole-token hits against the romanized list
)

// romanizedHindiWords are informal romanized-Hindi tokens common in Hinglish
// chats. Whole-token hits here signal Hindi even when the script is Latin.
var romanizedHindiWords = map[string]struct{}{
	"hai": {}, "kya": {}, "nahi": {}, "yaar": {}, "acha": {}, "accha": {},
	"bhai": {}, "haan": {}, "kyun": {}, "matlab": {}, "bas": {}, "abhi": {},
	"kuch": {}, "mera": {}, "teri": {}, "pyaar": {}, "bohot": {},
	"bahut": {}, "theek": {}, "arre": {}, "chalo": {}, "kaise": {},
}

// detectLanguages produces the ordered language-hint list: a mixed tag first
// when both the Latin and Hindi signals clear their thresholds, the single
// tag when only one clears, and "unknown" otherwise.
func detectLanguages(messages []domain.Message) []string {
	if len(messages) == 0 {
		return []string{langUnknown}
	}

	var latin, devanagari, total int

	romanizedHits := 0

	for _, m := range messages {
		l, d, t := countScripts(m.Text)
		latin += l
		devanagari += d
		total += t

		for _, token := range textutil.Tokenize(m.Text) {
			if _, ok := romanizedHindiWords[token]; ok {
				romanizedHits++
			}
		}
	}

	if total == 0 {
		return []string{langUnknown}
	}

	english := float64(latin)/float64(total) >= latinThreshold
	hindi := float64(devanagari)/float64(total) >= devanagariThreshold || romanizedHits >= romanizedHitsMin

	switch {
	case english && hindi:
		return []string{langHinglish, langHindi, langEnglish}
	case hindi:
		return []string{langHindi}
	case english:
		return []string{langEnglish}
	default:
		return []string{langUnknown}
	}
}

func countScripts(text string) (latin, devanagari, total int) {
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}

		total++

		switch {
		case isLatin(r):
			latin++
		case isDevanagari(r):
			devanagari++
		}
	}

	return
}

func isLatin(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') ||
		(r >= 0x00C0 && r <= 0x00FF) || // Latin-1 Supplement
		(r >= 0x0100 && r <= 0x017F) // Latin Extended-A
}

func isDevanagari(r rune) bool {
	return (r >= 0x0900 && r <= 0x097F) || // Devanagari
		(r >= 0xA8E0 && r <= 0xA8FF) // Devanagari Extended
}
