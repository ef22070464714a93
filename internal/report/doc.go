// Package report renders a duplicate scan result to disk.
//
// The text format reproduces the classic two-section report (pairs sharing a
// recording code, then pairs flagged by similarity) in English or French. The
// json, table, and sqlite formats carry the same pairs for tooling. Write
// holds an advisory lock next to the output path and replaces the file
// atomically, so a reader never observes a half-written report.
package report
