package dedupe

import (
	"testing"

	"purifier/internal/playlist"
)

func track(name, artist, album, isrc string) playlist.Track {
	return playlist.Track{Name: name, Artist: artist, AlbumName: album, ISRC: isrc}
}

func TestClassifyScenarios(t *testing.T) {
	tests := []struct {
		name string
		a    playlist.Track
		b    playlist.Track
		want Verdict
	}{
		{
			name: "shared isrc confirms despite different titles",
			a:    track("Song A", "Bob", "X", "US123"),
			b:    track("Song A (Remix)", "Bob", "X", "US123"),
			want: Verdict{Kind: Confirmed, ISRC: "US123"},
		},
		{
			name: "shared isrc confirms unrelated metadata",
			a:    track("!!", "Nobody", "", "GB0001"),
			b:    track("Completely Different", "Someone Else", "Other", "GB0001"),
			want: Verdict{Kind: Confirmed, ISRC: "GB0001"},
		},
		{
			name: "near identical titles are suspected",
			a:    track("Hello World", "Jane Doe", "LP", ""),
			b:    track("Hello World!", "Jane Doe", "LP", ""),
			want: Verdict{Kind: Suspected, NameSimilarity: 100, ArtistSimilarity: 100, AlbumSimilarity: 100},
		},
		{
			name: "unequal punctuation titles are rejected",
			a:    track("!!", "X", "Y", ""),
			b:    track("??", "X", "Y", ""),
			want: Verdict{Kind: Rejected},
		},
		{
			name: "equal degenerate titles are scored",
			a:    track("A", "X", "Y", ""),
			b:    track("A", "X", "Y", ""),
			want: Verdict{Kind: Suspected, NameSimilarity: 100, ArtistSimilarity: 100, AlbumSimilarity: 100},
		},
		{
			name: "short title rejected even when fuzzy score is perfect",
			a:    track("AB", "X", "Y", ""),
			b:    track("AB!", "X", "Y", ""),
			want: Verdict{Kind: Rejected},
		},
		{
			name: "surrounding whitespace does not make titles unequal",
			a:    track("  !! ", "X", "Y", ""),
			b:    track("!!", "X", "Y", ""),
			want: Verdict{Kind: Suspected, NameSimilarity: 100, ArtistSimilarity: 100, AlbumSimilarity: 100},
		},
		{
			name: "different artists are rejected",
			a:    track("Hello World", "Jane Doe", "LP", ""),
			b:    track("Hello World", "John Smith", "LP", ""),
			want: Verdict{Kind: Rejected},
		},
		{
			name: "artist compared case-insensitively and order-insensitively",
			a:    track("Hello World", "Jane Doe", "LP", ""),
			b:    track("Hello World", "  DOE JANE ", "LP", ""),
			want: Verdict{Kind: Suspected, NameSimilarity: 100, ArtistSimilarity: 100, AlbumSimilarity: 100},
		},
		{
			name: "album score is reported but never gates",
			a:    track("Hello World", "Jane Doe", "abc", ""),
			b:    track("Hello World", "Jane Doe", "xyz", ""),
			want: Verdict{Kind: Suspected, NameSimilarity: 100, ArtistSimilarity: 100, AlbumSimilarity: 0},
		},
		{
			name: "isrc comparison is case sensitive",
			a:    track("Alpha", "X", "Y", "us123"),
			b:    track("Omega", "X", "Y", "US123"),
			want: Verdict{Kind: Rejected},
		},
		{
			name: "one missing isrc falls through to similarity",
			a:    track("Hello World", "Jane Doe", "LP", "US123"),
			b:    track("Hello World", "Jane Doe", "LP", ""),
			want: Verdict{Kind: Suspected, NameSimilarity: 100, ArtistSimilarity: 100, AlbumSimilarity: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.a, tt.b, DefaultThresholds())
			if got != tt.want {
				t.Fatalf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifySuspectedThreshold(t *testing.T) {
	a := track("Hello World", "Jane Doe", "LP", "")
	b := track("Hello Worlds", "Jane Doe", "LP", "")

	got := Classify(a, b, DefaultThresholds())
	if got.Kind != Suspected || got.NameSimilarity != 96 {
		t.Fatalf("expected suspected with name similarity 96, got %v", got)
	}

	strict := DefaultThresholds()
	strict.Suspected = 97
	if got := Classify(a, b, strict); got.Kind != Rejected {
		t.Fatalf("expected rejection at threshold 97, got %v", got)
	}

	strict.Suspected = 96
	if got := Classify(a, b, strict); got.Kind != Suspected {
		t.Fatalf("expected score equal to threshold to pass, got %v", got)
	}
}

func TestClassifyIgnoresConfirmedThreshold(t *testing.T) {
	pairs := [][2]playlist.Track{
		{track("Hello World", "Jane Doe", "LP", ""), track("Hello World!", "Jane Doe", "LP", "")},
		{track("Song A", "Bob", "X", "US123"), track("Song B", "Bob", "X", "US123")},
		{track("Alpha", "X", "Y", ""), track("Omega", "X", "Y", "")},
	}
	for _, p := range pairs {
		base := Classify(p[0], p[1], DefaultThresholds())
		for _, confirmed := range []int{0, 50, 100} {
			th := DefaultThresholds()
			th.Confirmed = confirmed
			if got := Classify(p[0], p[1], th); got != base {
				t.Fatalf("confirmed threshold %d changed verdict: %v vs %v", confirmed, got, base)
			}
		}
	}
}

func TestClassifySymmetric(t *testing.T) {
	tracks := []playlist.Track{
		track("Hello World", "Jane Doe", "LP", ""),
		track("World Hello", "Doe Jane", "LP (Deluxe)", ""),
		track("Hello World!", "jane doe", "", ""),
		track("!!", "X", "Y", ""),
		track("??", "X", "Y", ""),
		track("AB", "X", "Y", ""),
		track("Song A", "Bob", "X", "US123"),
		track("Song A (Remix)", "Bob", "X", "US123"),
	}
	for i := range tracks {
		for j := range tracks {
			ab := Classify(tracks[i], tracks[j], DefaultThresholds())
			ba := Classify(tracks[j], tracks[i], DefaultThresholds())
			if ab != ba {
				t.Fatalf("Classify not symmetric for %d/%d: %v vs %v", i, j, ab, ba)
			}
		}
	}
}

func TestThresholdsValidate(t *testing.T) {
	if err := DefaultThresholds().Validate(); err != nil {
		t.Fatalf("default thresholds invalid: %v", err)
	}
	for _, th := range []Thresholds{{Confirmed: -1, Suspected: 90}, {Confirmed: 85, Suspected: 101}} {
		if err := th.Validate(); err == nil {
			t.Fatalf("expected error for %+v", th)
		}
	}
}

func TestKindString(t *testing.T) {
	if Rejected.String() != "rejected" || Confirmed.String() != "confirmed" || Suspected.String() != "suspected" {
		t.Fatal("unexpected kind labels")
	}
}
