package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	msgTitle              = "=== Duplicate Detection Results ==="
	msgConfirmedHeading   = "ISRC Confirmed Doubles:"
	msgConfirmedWarning   = "!!! Although the titles are different, both tracks share the same ISRC number."
	msgConfirmedNote      = "! The ISRC (International Standard Recording Code) is a unique identifier for each audio recording. It helps to spot and eliminate exact duplicates in playlists, as each official version of a song has a distinct code"
	msgSuspectedHeading   = "Potential Duplicates:"
	msgSuspectedWarning   = "!!! Please note: These potential duplicates may not actually be duplicates. To be 100%% sure, we recommend manually checking each pair of potential duplicates."
	msgFirstTrack         = "Title 1: %s | Artist 1: %s | Album 1: %s"
	msgSecondTrack        = "Title 2: %s | Artist 2: %s | Album 2: %s"
	msgSimilarity         = "(Similarity: %d%%, Artist Similarity: %d%%, Album Similarity: %d%%)"
	msgTableConfirmed     = "Confirmed by ISRC"
	msgTableSuspected     = "Potential duplicates"
	msgColumnTitle1       = "Title 1"
	msgColumnArtist1      = "Artist 1"
	msgColumnTitle2       = "Title 2"
	msgColumnArtist2      = "Artist 2"
	msgColumnTitleScore   = "Title sim."
	msgColumnArtistScore  = "Artist sim."
	msgColumnAlbumScore   = "Album sim."
	msgColumnRecordingKey = "ISRC"
)

var french = map[string]string{
	msgTitle:              "=== Résultats de la Détection des Doublons ===",
	msgConfirmedHeading:   "Doublons Confirmés par ISRC:",
	msgConfirmedWarning:   "!!! Bien que les titres soient différents, les deux morceaux partagent le même numéro ISRC.",
	msgConfirmedNote:      "! L'ISRC (International Standard Recording Code) est un identifiant unique pour chaque enregistrement audio. Il aide à repérer et éliminer les doublons exacts dans les playlists, car chaque version officielle d'une chanson possède un code distinct.",
	msgSuspectedHeading:   "Potentiels Doublons:",
	msgSuspectedWarning:   "!!! Attention : Il est possible que ces doublons potentiels ne soient pas réellement des doublons. Pour être sûr à 100%%, il est recommandé de vérifier manuellement chaque paire de doublons potentiels.",
	msgFirstTrack:         "Titre 1: %s | Artiste 1: %s | Album 1: %s",
	msgSecondTrack:        "Titre 2: %s | Artiste 2: %s | Album 2: %s",
	msgSimilarity:         "(Similitude: %d%%, Artiste Similarité: %d%%, Album Similarité: %d%%)",
	msgTableConfirmed:     "Confirmés par ISRC",
	msgTableSuspected:     "Doublons potentiels",
	msgColumnTitle1:       "Titre 1",
	msgColumnArtist1:      "Artiste 1",
	msgColumnTitle2:       "Titre 2",
	msgColumnArtist2:      "Artiste 2",
	msgColumnTitleScore:   "Sim. titre",
	msgColumnArtistScore:  "Sim. artiste",
	msgColumnAlbumScore:   "Sim. album",
	msgColumnRecordingKey: "ISRC",
}

var (
	supportedLocales = []language.Tag{language.English, language.French}
	localeMatcher    = language.NewMatcher(supportedLocales)
	messages         = buildCatalog()
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, translated := range french {
		if err := b.SetString(language.English, key, key); err != nil {
			panic(err)
		}
		if err := b.SetString(language.French, key, translated); err != nil {
			panic(err)
		}
	}
	return b
}

// MatchLocale maps a user supplied locale ("fr", "fr-CA", "en_GB") to the
// closest supported report language. Unknown or malformed values fall back
// to English.
func MatchLocale(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, index, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return language.English
	}
	return supportedLocales[index]
}

func newPrinter(locale string) *message.Printer {
	return message.NewPrinter(MatchLocale(locale), message.Catalog(messages))
}
