package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// scanProgress draws a batch counter on an interactive stderr. A nil
// *scanProgress is a valid no-op.
type scanProgress struct {
	bar *progressbar.ProgressBar
}

func newScanProgress(w io.Writer, enabled bool, total int) *scanProgress {
	if !enabled || total <= 0 || !isTerminal(w) {
		return nil
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Comparing tracks"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	return &scanProgress{bar: bar}
}

// update matches dedupe.Options.Progress.
func (p *scanProgress) update(done, _ int) {
	if p == nil {
		return
	}
	_ = p.bar.Set(done)
}

// finish clears the bar after a complete scan and leaves it in place, on its
// own line, after an aborted one.
func (p *scanProgress) finish(w io.Writer, err error) {
	if p == nil {
		return
	}
	if err == nil {
		_ = p.bar.Finish()
		return
	}
	_ = p.bar.Exit()
	_, _ = io.WriteString(w, "\n")
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
