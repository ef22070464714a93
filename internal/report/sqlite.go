package report

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// WriteSQLite stores the document in a new SQLite database at path. The file
// must not already hold a report schema.
func WriteSQLite(ctx context.Context, path string, doc Document) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	runID := doc.RunID
	if runID == "" {
		runID = "local"
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, source, generated_at, tracks, suspected_threshold, confirmed_threshold)
         VALUES (?, ?, ?, ?, ?, ?)`,
		runID, doc.Source, doc.GeneratedAt.UTC().Format(time.RFC3339Nano),
		doc.Stats.Tracks, doc.SuspectedThreshold, doc.ConfirmedThreshold,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	confirmedStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO confirmed_pairs (
            run_id, isrc,
            a_index, a_name, a_artist, a_album,
            b_index, b_name, b_artist, b_album
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare confirmed insert: %w", err)
	}
	defer confirmedStmt.Close()
	for _, group := range doc.Confirmed {
		for _, pair := range group.Pairs {
			if _, err := confirmedStmt.ExecContext(ctx,
				runID, group.ISRC,
				pair.A.Index, pair.A.Name, pair.A.Artist, pair.A.AlbumName,
				pair.B.Index, pair.B.Name, pair.B.Artist, pair.B.AlbumName,
			); err != nil {
				return fmt.Errorf("insert confirmed pair: %w", err)
			}
		}
	}

	suspectedStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO suspected_pairs (
            run_id,
            a_index, a_name, a_artist, a_album,
            b_index, b_name, b_artist, b_album,
            name_similarity, artist_similarity, album_similarity
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare suspected insert: %w", err)
	}
	defer suspectedStmt.Close()
	for _, entry := range doc.Suspected {
		a, b := entry.Pair.A, entry.Pair.B
		if _, err := suspectedStmt.ExecContext(ctx,
			runID,
			a.Index, a.Name, a.Artist, a.AlbumName,
			b.Index, b.Name, b.Artist, b.AlbumName,
			entry.NameSimilarity, entry.ArtistSimilarity, entry.AlbumSimilarity,
		); err != nil {
			return fmt.Errorf("insert suspected pair: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}
