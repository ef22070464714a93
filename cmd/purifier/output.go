package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printScanSummary renders the run counters as a two-column table followed
// by the report location.
func printScanSummary(cmd *cobra.Command, s scanSummary, elapsed time.Duration) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"Tracks", humanize.Comma(int64(s.Tracks))},
		{"Pairs compared", humanize.Comma(int64(s.Pairs))},
		{"Confirmed duplicates", humanize.Comma(int64(s.ConfirmedPairs))},
		{"Suspected duplicates", humanize.Comma(int64(s.SuspectedPairs))},
		{"Elapsed", elapsed.Round(time.Millisecond).String()},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tw.Render())
	_, err := fmt.Fprintf(out, "Report written to %s (%s)\n", s.Output, s.Format)
	return err
}
