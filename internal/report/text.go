package report

import (
	"bufio"
	"io"

	"golang.org/x/text/message"

	"purifier/internal/dedupe"
	"purifier/internal/playlist"
)

// WriteText renders the classic report in the requested locale. Confirmed
// pairs are grouped by recording code in first-seen order, suspected pairs
// follow in playlist order.
func WriteText(w io.Writer, result *dedupe.Result, locale string) error {
	p := newPrinter(locale)
	bw := bufio.NewWriter(w)

	line := func(key string, args ...any) {
		p.Fprintf(bw, key, args...)
		bw.WriteByte('\n')
	}

	line(msgTitle)
	bw.WriteByte('\n')

	line(msgConfirmedHeading)
	line(msgConfirmedWarning)
	line(msgConfirmedNote)
	bw.WriteByte('\n')
	for _, isrc := range result.ConfirmedOrder {
		for _, pair := range result.Confirmed[isrc] {
			writeFirst(p, bw, pair.A)
			writeSecond(p, bw, pair.B)
			bw.WriteString("\n\n")
		}
	}

	line(msgSuspectedHeading)
	bw.WriteByte('\n')
	line(msgSuspectedWarning)
	bw.WriteByte('\n')
	for _, entry := range result.Suspected {
		writeFirst(p, bw, entry.Pair.A)
		writeSecond(p, bw, entry.Pair.B)
		bw.WriteByte(' ')
		p.Fprintf(bw, msgSimilarity, entry.NameSimilarity, entry.ArtistSimilarity, entry.AlbumSimilarity)
		bw.WriteString("\n\n")
	}

	return bw.Flush()
}

func writeFirst(p *message.Printer, w io.Writer, t playlist.Track) {
	p.Fprintf(w, msgFirstTrack, t.Name, t.Artist, t.AlbumName)
	io.WriteString(w, "\n")
}

func writeSecond(p *message.Printer, w io.Writer, t playlist.Track) {
	p.Fprintf(w, msgSecondTrack, t.Name, t.Artist, t.AlbumName)
}
