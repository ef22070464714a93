package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"purifier/internal/config"
	"purifier/internal/dedupe"
	"purifier/internal/logging"
	"purifier/internal/playlist"
	"purifier/internal/report"
)

// dedupeRun is swapped in tests.
var dedupeRun = dedupe.Run

type scanFlags struct {
	output             string
	format             string
	locale             string
	chunkSize          int
	workers            int
	suspectedThreshold int
	confirmedThreshold int
	noProgress         bool
	jsonOutput         bool
}

type scanSummary struct {
	RunID          string `json:"run_id"`
	Playlist       string `json:"playlist"`
	Output         string `json:"output"`
	Format         string `json:"format"`
	Locale         string `json:"locale"`
	Tracks         int    `json:"tracks"`
	Pairs          int    `json:"pairs"`
	ConfirmedPairs int    `json:"confirmed_pairs"`
	SuspectedPairs int    `json:"suspected_pairs"`
	DurationMillis int64  `json:"duration_ms"`
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var flags scanFlags

	cmd := &cobra.Command{
		Use:   "scan <playlist.json>",
		Short: "Scan a playlist export for duplicate tracks and write a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			settings, err := applyScanFlags(cmd, *cfg, flags)
			if err != nil {
				return err
			}
			return runScan(cmd, ctx, settings, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Report path (overrides report.output)")
	cmd.Flags().StringVar(&flags.format, "format", "", "Report format: text, json, table, or sqlite")
	cmd.Flags().StringVar(&flags.locale, "locale", "", "Report language: en or fr")
	cmd.Flags().IntVar(&flags.chunkSize, "chunk-size", 0, "Candidate pairs per batch")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "Worker count (0 uses every CPU)")
	cmd.Flags().IntVar(&flags.suspectedThreshold, "suspected-threshold", 0, "Minimum title similarity for a suspected duplicate (0-100)")
	cmd.Flags().IntVar(&flags.confirmedThreshold, "confirmed-threshold", 0, "Reserved; accepted and reported but not used for classification")
	cmd.Flags().BoolVar(&flags.noProgress, "no-progress", false, "Disable the progress bar")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Print the run summary as JSON")
	return cmd
}

// applyScanFlags overlays explicitly set flags on a copy of the loaded
// configuration and validates the result.
func applyScanFlags(cmd *cobra.Command, cfg config.Config, flags scanFlags) (config.Config, error) {
	changed := cmd.Flags().Changed
	if changed("output") {
		expanded, err := config.ExpandPath(strings.TrimSpace(flags.output))
		if err != nil {
			return cfg, fmt.Errorf("resolve output path: %w", err)
		}
		cfg.Report.Output = expanded
	}
	if changed("format") {
		cfg.Report.Format = strings.ToLower(strings.TrimSpace(flags.format))
	}
	if changed("locale") {
		cfg.Report.Locale = strings.ToLower(strings.TrimSpace(flags.locale))
	}
	if changed("chunk-size") {
		cfg.Scan.ChunkSize = flags.chunkSize
	}
	if changed("workers") {
		cfg.Scan.Workers = flags.workers
	}
	if changed("suspected-threshold") {
		cfg.Scan.SuspectedThreshold = flags.suspectedThreshold
	}
	if changed("confirmed-threshold") {
		cfg.Scan.ConfirmedThreshold = flags.confirmedThreshold
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runScan(cmd *cobra.Command, ctx *commandContext, cfg config.Config, playlistPath string, flags scanFlags) error {
	signalCtx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runID := logging.NewRunID()
	runCtx := logging.WithRunID(signalCtx, runID)

	stderr := cmd.ErrOrStderr()
	baseLogger, err := ctx.newLogger(&cfg, stderr)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger := logging.NewComponentLogger(logging.WithContext(runCtx, baseLogger), "cli")

	tracks, err := playlist.Load(playlistPath)
	if err != nil {
		logging.ErrorWithContext(logger, "playlist rejected", "playlist_invalid",
			logging.String("playlist", playlistPath),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "fix the reported record or re-export the playlist"),
		)
		return err
	}
	logger.Info("playlist loaded",
		logging.String(logging.FieldEventType, "playlist_loaded"),
		logging.String("playlist", playlistPath),
		logging.Int("tracks", len(tracks)),
	)

	thresholds := dedupe.Thresholds{
		Confirmed: cfg.Scan.ConfirmedThreshold,
		Suspected: cfg.Scan.SuspectedThreshold,
	}
	progress := newScanProgress(stderr, !flags.noProgress, dedupe.BatchCount(len(tracks), cfg.Scan.ChunkSize))

	started := time.Now()
	result, err := dedupeRun(runCtx, tracks, dedupe.Options{
		Thresholds: thresholds,
		ChunkSize:  cfg.Scan.ChunkSize,
		Workers:    cfg.Scan.Workers,
		Progress:   progress.update,
		Logger:     baseLogger,
	})
	progress.finish(stderr, err)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logging.WarnWithContext(logger, "duplicate scan interrupted", "scan_interrupted",
				logging.String(logging.FieldErrorHint, "rerun the scan to produce a report"),
				logging.String(logging.FieldImpact, "no report was written"),
			)
			return err
		}
		logging.ErrorWithContext(logger, "duplicate scan failed", "scan_failed", logging.Error(err))
		return fmt.Errorf("scan playlist: %w", err)
	}
	elapsed := time.Since(started)

	if err := report.Write(runCtx, cfg.Report.Output, result, report.Options{
		Format: cfg.Report.Format,
		Locale: cfg.Report.Locale,
		Meta: report.Meta{
			RunID:       runID,
			Source:      playlistPath,
			GeneratedAt: time.Now(),
			Thresholds:  thresholds,
		},
	}); err != nil {
		if errors.Is(err, context.Canceled) {
			logging.WarnWithContext(logger, "report write interrupted", "scan_interrupted",
				logging.String(logging.FieldImpact, "no report was written"),
			)
			return err
		}
		logging.ErrorWithContext(logger, "report write failed", "report_failed",
			logging.String("output", cfg.Report.Output),
			logging.Error(err),
		)
		return fmt.Errorf("write report: %w", err)
	}
	logger.Info("report written",
		logging.String(logging.FieldEventType, "report_written"),
		logging.String("output", cfg.Report.Output),
		logging.String("format", cfg.Report.Format),
	)

	summary := scanSummary{
		RunID:          runID,
		Playlist:       playlistPath,
		Output:         cfg.Report.Output,
		Format:         cfg.Report.Format,
		Locale:         cfg.Report.Locale,
		Tracks:         len(tracks),
		Pairs:          dedupe.PairCount(len(tracks)),
		ConfirmedPairs: result.ConfirmedCount(),
		SuspectedPairs: result.SuspectedCount(),
		DurationMillis: elapsed.Milliseconds(),
	}
	if flags.jsonOutput {
		return writeJSON(cmd, summary)
	}
	return printScanSummary(cmd, summary, elapsed)
}
