package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

const (
	FieldComponent = "component"
	// FieldEventType names the event a line records, e.g. scan_started.
	FieldEventType = "event_type"
	// FieldRunID correlates every line of one scan.
	FieldRunID     = "run_id"
	FieldErrorHint = "error_hint"
	FieldImpact    = "impact"
)

type runIDKey struct{}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID annotates ctx with a run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// WithContext tags logger with the run id carried by ctx, if any.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	id, ok := RunIDFromContext(ctx)
	if !ok {
		return logger
	}
	return logger.With(String(FieldRunID, id))
}
