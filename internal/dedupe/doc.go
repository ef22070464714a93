// Package dedupe classifies every pair of tracks in a playlist as a confirmed
// duplicate, a suspected duplicate, or neither.
//
// Classify applies the pair policy: equal recording codes confirm a
// duplicate outright; otherwise degenerate titles are rejected and the title,
// artist, and album are scored with a token-order-insensitive ratio. Run fans
// the C(n,2) candidate pairs out to a per-run worker pool in fixed-size
// batches and folds the per-batch results back together on a single
// goroutine, in batch order, so the output never depends on scheduling.
//
// The package reports pairs only. It never mutates the input tracks and keeps
// no state between runs.
package dedupe
