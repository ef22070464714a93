package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/message"

	"purifier/internal/dedupe"
)

// WriteTable renders confirmed and suspected pairs as two bordered tables.
func WriteTable(w io.Writer, result *dedupe.Result, locale string) error {
	p := newPrinter(locale)

	confirmed := newTable(p, msgTableConfirmed, msgColumnRecordingKey, msgColumnTitle1, msgColumnArtist1, msgColumnTitle2, msgColumnArtist2)
	for _, isrc := range result.ConfirmedOrder {
		for _, pair := range result.Confirmed[isrc] {
			confirmed.AppendRow(table.Row{isrc, pair.A.Name, pair.A.Artist, pair.B.Name, pair.B.Artist})
		}
	}

	suspected := newTable(p, msgTableSuspected, msgColumnTitle1, msgColumnArtist1, msgColumnTitle2, msgColumnArtist2, msgColumnTitleScore, msgColumnArtistScore, msgColumnAlbumScore)
	suspected.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	for _, entry := range result.Suspected {
		suspected.AppendRow(table.Row{
			entry.Pair.A.Name, entry.Pair.A.Artist,
			entry.Pair.B.Name, entry.Pair.B.Artist,
			percent(entry.NameSimilarity), percent(entry.ArtistSimilarity), percent(entry.AlbumSimilarity),
		})
	}

	_, err := fmt.Fprintf(w, "%s\n\n%s\n", confirmed.Render(), suspected.Render())
	return err
}

func newTable(p *message.Printer, title string, columns ...string) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(p.Sprintf(title))
	header := make(table.Row, len(columns))
	for i, column := range columns {
		header[i] = p.Sprintf(column)
	}
	tw.AppendHeader(header)
	return tw
}

func percent(score int) string {
	return strconv.Itoa(score) + "%"
}
