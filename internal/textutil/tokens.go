package textutil

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// asciiPunctuation mirrors the printable ASCII punctuation set.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize reduces text to lower-cased word tokens separated by single
// spaces, in their original order.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 0x80 && r <= 0xFF:
			continue
		case isWordRune(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	// Casers keep internal state; build one per call so keys can be computed
	// from several goroutines.
	lowered := cases.Lower(language.Und).String(b.String())
	return strings.Join(strings.Fields(lowered), " ")
}

// SortKey normalizes text and sorts its tokens so that word order no longer
// affects comparisons.
func SortKey(text string) string {
	tokens := strings.Fields(Normalize(text))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// Lower lower-cases text with Unicode-aware rules.
func Lower(text string) string {
	return cases.Lower(language.Und).String(text)
}

// IsPunctuation reports whether every rune of text is ASCII punctuation.
// The empty string reports true.
func IsPunctuation(text string) bool {
	for _, r := range text {
		if r > unicode.MaxASCII || !strings.ContainsRune(asciiPunctuation, r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
