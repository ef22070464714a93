// Package logging assembles the structured slog loggers used by purifier.
//
// It owns the console and JSON handlers, level parsing, and the optional
// JSON log file that mirrors console output. Context helpers attach the run
// identifier to every line emitted during a scan so concurrent runs can be
// told apart in a shared log file. A no-op logger is provided for tests and
// library callers that do not care about logs.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit data with the same field names as the rest of the system.
package logging
