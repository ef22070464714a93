package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"purifier/internal/dedupe"
	"purifier/internal/fileutil"
)

var (
	// ErrOutputLocked indicates another process is writing the same report.
	ErrOutputLocked = errors.New("report output is locked by another process")
	// ErrUnknownFormat indicates an unsupported report format.
	ErrUnknownFormat = errors.New("unknown report format")
)

// Supported formats.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatTable  = "table"
	FormatSQLite = "sqlite"
)

// Options controls how Write renders a result.
type Options struct {
	Format string
	Locale string
	Meta   Meta
}

// LockPath returns the advisory lock file guarding path.
func LockPath(path string) string {
	return path + ".lock"
}

// Write renders result to path in the requested format. The previous file,
// if any, is replaced only once the new report is complete.
func Write(ctx context.Context, path string, result *dedupe.Result, opts Options) error {
	if result == nil {
		return errors.New("report: nil result")
	}
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = FormatText
	}
	switch format {
	case FormatText, FormatJSON, FormatTable, FormatSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure report directory: %w", err)
	}

	lock := flock.New(LockPath(path))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire report lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutputLocked, path)
	}
	defer func() { _ = lock.Unlock() }()

	if err := ctx.Err(); err != nil {
		return err
	}

	if format == FormatSQLite {
		return writeSQLiteFile(ctx, path, NewDocument(result, opts.Meta))
	}

	var buf bytes.Buffer
	switch format {
	case FormatText:
		err = WriteText(&buf, result, opts.Locale)
	case FormatJSON:
		err = WriteJSON(&buf, NewDocument(result, opts.Meta))
	case FormatTable:
		err = WriteTable(&buf, result, opts.Locale)
	}
	if err != nil {
		return fmt.Errorf("render %s report: %w", format, err)
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeSQLiteFile(ctx context.Context, path string, doc Document) error {
	return fileutil.ReplaceFile(path, 0o644, func(tmpPath string) error {
		return WriteSQLite(ctx, tmpPath, doc)
	})
}
