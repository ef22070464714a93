package dedupe

import (
	"strings"
	"unicode/utf8"

	"purifier/internal/playlist"
	"purifier/internal/textutil"
)

// preparedTrack caches everything Classify derives from a single track so a
// scan computes it once per track instead of once per pair.
type preparedTrack struct {
	isrc       string
	title      string
	degenerate bool
	titleKey   string
	artistKey  string
	albumKey   string
}

func prepare(t playlist.Track) preparedTrack {
	title := strings.TrimSpace(t.Name)
	return preparedTrack{
		isrc:       t.ISRC,
		title:      title,
		degenerate: utf8.RuneCountInString(title) < MinTitleLength || textutil.IsPunctuation(title),
		titleKey:   textutil.SortKey(title),
		artistKey:  textutil.SortKey(textutil.Lower(strings.TrimSpace(t.Artist))),
		albumKey:   textutil.SortKey(t.AlbumName),
	}
}

func prepareAll(tracks []playlist.Track) []preparedTrack {
	prepared := make([]preparedTrack, len(tracks))
	for i, t := range tracks {
		prepared[i] = prepare(t)
	}
	return prepared
}

// Classify decides whether a and b are duplicates. Rules apply in order and
// the first match wins:
//
//  1. equal, non-empty recording codes confirm the pair;
//  2. a title shorter than MinTitleLength runes or made only of ASCII
//     punctuation rejects the pair unless both trimmed titles are equal;
//  3. a title score below th.Suspected rejects the pair;
//  4. an artist score (trimmed, lower-cased) below ArtistThreshold rejects it;
//  5. otherwise the pair is suspected, with the album score attached.
//
// th.Confirmed is not consulted.
func Classify(a, b playlist.Track, th Thresholds) Verdict {
	pa, pb := prepare(a), prepare(b)
	return classifyPrepared(&pa, &pb, th)
}

func classifyPrepared(a, b *preparedTrack, th Thresholds) Verdict {
	if a.isrc != "" && a.isrc == b.isrc {
		return Verdict{Kind: Confirmed, ISRC: a.isrc}
	}

	if (a.degenerate || b.degenerate) && a.title != b.title {
		return Verdict{Kind: Rejected}
	}

	name := textutil.KeyRatio(a.titleKey, b.titleKey)
	if name < th.Suspected {
		return Verdict{Kind: Rejected}
	}

	artist := textutil.KeyRatio(a.artistKey, b.artistKey)
	if artist < ArtistThreshold {
		return Verdict{Kind: Rejected}
	}

	return Verdict{
		Kind:             Suspected,
		NameSimilarity:   name,
		ArtistSimilarity: artist,
		AlbumSimilarity:  textutil.KeyRatio(a.albumKey, b.albumKey),
	}
}
