package dedupe

import (
	"errors"
	"fmt"

	"purifier/internal/playlist"
)

const (
	// DefaultConfirmedThreshold is accepted for compatibility; confirmation
	// currently depends on recording codes alone.
	DefaultConfirmedThreshold = 85
	// DefaultSuspectedThreshold gates the title similarity.
	DefaultSuspectedThreshold = 90
	// ArtistThreshold gates the artist similarity. It is not configurable.
	ArtistThreshold = 85
	// DefaultChunkSize is the number of candidate pairs per batch.
	DefaultChunkSize = 1000
	// MinTitleLength is the shortest trimmed title, in runes, that is scored
	// against a different title.
	MinTitleLength = 3
)

// Thresholds holds the similarity cut-offs used by Classify.
type Thresholds struct {
	// Confirmed is reserved and has no effect on classification.
	Confirmed int
	Suspected int
}

// DefaultThresholds returns the stock cut-offs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Confirmed: DefaultConfirmedThreshold,
		Suspected: DefaultSuspectedThreshold,
	}
}

// Validate ensures both thresholds are percentages.
func (t Thresholds) Validate() error {
	if t.Confirmed < 0 || t.Confirmed > 100 {
		return errors.New("confirmed threshold must be between 0 and 100")
	}
	if t.Suspected < 0 || t.Suspected > 100 {
		return errors.New("suspected threshold must be between 0 and 100")
	}
	return nil
}

// Kind is the outcome of classifying one pair.
type Kind int

const (
	Rejected Kind = iota
	Confirmed
	Suspected
)

func (k Kind) String() string {
	switch k {
	case Confirmed:
		return "confirmed"
	case Suspected:
		return "suspected"
	default:
		return "rejected"
	}
}

// Verdict is the classification of one pair. ISRC is set for Confirmed
// verdicts and the similarity scores for Suspected ones.
type Verdict struct {
	Kind             Kind
	ISRC             string
	NameSimilarity   int
	ArtistSimilarity int
	AlbumSimilarity  int
}

func (v Verdict) String() string {
	switch v.Kind {
	case Confirmed:
		return fmt.Sprintf("confirmed(isrc=%s)", v.ISRC)
	case Suspected:
		return fmt.Sprintf("suspected(name=%d artist=%d album=%d)", v.NameSimilarity, v.ArtistSimilarity, v.AlbumSimilarity)
	default:
		return "rejected"
	}
}

// Pair is two distinct tracks, A preceding B in playlist order.
type Pair struct {
	A playlist.Track `json:"a"`
	B playlist.Track `json:"b"`
}

// SuspectedEntry is a pair flagged by fuzzy similarity.
type SuspectedEntry struct {
	Pair             Pair `json:"pair"`
	NameSimilarity   int  `json:"name_similarity"`
	ArtistSimilarity int  `json:"artist_similarity"`
	AlbumSimilarity  int  `json:"album_similarity"`
}

// Result holds the two duplicate collections of a run.
//
// Confirmed maps a recording code to every pair sharing it. ConfirmedOrder
// lists the codes in the order they were first seen so reports can iterate
// the map deterministically.
type Result struct {
	Tracks         int               `json:"tracks"`
	Confirmed      map[string][]Pair `json:"confirmed"`
	ConfirmedOrder []string          `json:"confirmed_order"`
	Suspected      []SuspectedEntry  `json:"suspected"`
}

func newResult(tracks int) *Result {
	return &Result{
		Tracks:         tracks,
		Confirmed:      make(map[string][]Pair),
		ConfirmedOrder: []string{},
		Suspected:      []SuspectedEntry{},
	}
}

// ConfirmedCount returns the number of confirmed pairs across all codes.
func (r *Result) ConfirmedCount() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, pairs := range r.Confirmed {
		total += len(pairs)
	}
	return total
}

// SuspectedCount returns the number of suspected pairs.
func (r *Result) SuspectedCount() int {
	if r == nil {
		return 0
	}
	return len(r.Suspected)
}
