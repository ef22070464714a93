// Package main hosts the purifier CLI entrypoint and command graph.
//
// The Cobra-based command tree loads a playlist export, runs the duplicate
// scan, and writes the report. It centralizes configuration resolution and
// logger setup so subcommands only translate flags into scan settings.
//
// Keep this package lean: the classification and reporting logic lives in
// the internal packages and is surfaced here through flags.
package main
