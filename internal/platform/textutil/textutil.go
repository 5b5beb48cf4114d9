// Package textutil provides text processing helpers shared by the ingest
// normalizer and the analytics engine.
//
// The package handles:
//   - Tokenization for word-frequency and language detection
//   - HTML tag stripping for exports that embed markup
//   - Redaction of message previews for display surfaces
package textutil

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowercaser = cases.Lower(language.Und)

var tagRegex = regexp.MustCompile(`<(/?)([a-zA-Z0-9-]+)([^>]*)>`)

// Tokenize lowercases text, strips punctuation and splits on anything that is
// not a letter or digit. Latin and Devanagari letters both survive intact, so
// romanized and native-script Hindi tokens are counted the same way.
func Tokenize(text string) []string {
	folded := lowercaser.String(text)

	return strings.FieldsFunc(folded, func(r rune) bool {
		return !isTokenRune(r)
	})
}

func isTokenRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}

	// Combining marks carry vowel signs in Devanagari; dropping them would
	// mangle the token.
	return unicode.Is(unicode.Mn, r)
}

// StripTags removes all HTML tags from text, keeping only the content.
func StripTags(text string) string {
	result := tagRegex.ReplaceAllString(text, "")
	result = html.UnescapeString(result)

	return strings.TrimSpace(result)
}

// Redact masks every word of a preview down to its first rune. It exists for
// display surfaces only and plays no role in metric computation.
func Redact(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		runes := []rune(w)
		if len(runes) <= 1 {
			continue
		}

		words[i] = string(runes[0]) + strings.Repeat("*", len(runes)-1)
	}

	return strings.Join(words, " ")
}

// CollapseSpaces normalizes runs of whitespace to single spaces.
func CollapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
