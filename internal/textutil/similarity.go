package textutil

import (
	"math"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// TokenSortRatio scores two strings in [0,100] after reducing both to sort
// keys. Equal keys score 100, including two empty keys; a single empty key
// scores 0.
func TokenSortRatio(a, b string) int {
	return KeyRatio(SortKey(a), SortKey(b))
}

// KeyRatio scores two precomputed sort keys. It is the hot path of a scan:
// callers comparing many pairs should compute each key once with SortKey.
func KeyRatio(a, b string) int {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	distance := edlib.LCSEditDistance(a, b)
	ratio := float64(total-distance) / float64(total)
	return int(math.RoundToEven(100 * ratio))
}
