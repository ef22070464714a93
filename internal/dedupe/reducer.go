package dedupe

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"purifier/internal/logging"
	"purifier/internal/playlist"
)

// cancelCheckInterval is how many candidates a worker classifies between
// context checks.
const cancelCheckInterval = 256

// classifyPair is the pair policy used by workers. It is a package-level
// variable so tests can inject failures.
var classifyPair = classifyPrepared

// Options configures a Run.
type Options struct {
	Thresholds Thresholds
	// ChunkSize is the number of candidates per batch. Zero selects
	// DefaultChunkSize.
	ChunkSize int
	// Workers bounds the pool. Zero selects runtime.NumCPU().
	Workers int
	// Progress, when set, is called from the merging goroutine after each
	// batch is folded into the result.
	Progress func(done, total int)
	Logger   *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Logger == nil {
		o.Logger = logging.NewNop()
	}
	return o
}

// batchResult is what a worker hands back for one batch. The merger owns it
// once sent.
type batchResult struct {
	index     int
	confirmed []confirmedHit
	suspected []SuspectedEntry
}

type confirmedHit struct {
	isrc string
	pair Pair
}

// Run classifies every pair of tracks and returns the confirmed and suspected
// duplicates.
//
// Batches are classified concurrently by a pool that lives only for this
// call. Results are folded on the calling goroutine strictly in batch order,
// so the output equals a sequential scan for any worker count or chunk size.
// At most twice the worker count of batches are in flight or waiting to be
// merged at any time.
//
// Any worker failure aborts the run. Cancelling ctx stops dispatch and the
// workers and returns ctx.Err(). No partial result is returned on error.
func Run(ctx context.Context, tracks []playlist.Track, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if err := opts.Thresholds.Validate(); err != nil {
		return nil, err
	}
	logger := logging.NewComponentLogger(logging.WithContext(ctx, opts.Logger), "dedupe")

	result := newResult(len(tracks))
	total := BatchCount(len(tracks), opts.ChunkSize)
	logger.Info("duplicate scan starting",
		logging.String(logging.FieldEventType, "scan_started"),
		logging.Int("tracks", len(tracks)),
		logging.Int("pairs", PairCount(len(tracks))),
		logging.Int("batches", total),
		logging.Int("chunk_size", opts.ChunkSize),
		logging.Int("workers", opts.Workers),
		logging.Int("suspected_threshold", opts.Thresholds.Suspected),
		logging.Int("confirmed_threshold", opts.Thresholds.Confirmed),
	)
	if total == 0 {
		return result, nil
	}

	started := time.Now()
	prepared := prepareAll(tracks)
	window := int64(2 * opts.Workers)
	inFlight := semaphore.NewWeighted(window)

	group, groupCtx := errgroup.WithContext(ctx)
	batches := make(chan Batch)
	results := make(chan batchResult, window)

	group.Go(func() error {
		defer close(batches)
		for batch := range Partition(len(tracks), opts.ChunkSize) {
			if err := inFlight.Acquire(groupCtx, 1); err != nil {
				return err
			}
			select {
			case batches <- batch:
			case <-groupCtx.Done():
				return groupCtx.Err()
			}
		}
		return nil
	})

	for range opts.Workers {
		group.Go(func() error {
			for batch := range batches {
				res, err := classifyBatch(groupCtx, tracks, prepared, batch, opts.Thresholds)
				if err != nil {
					return err
				}
				select {
				case results <- res:
				case <-groupCtx.Done():
					return groupCtx.Err()
				}
			}
			return nil
		})
	}

	waitErr := make(chan error, 1)
	go func() {
		waitErr <- group.Wait()
		close(results)
	}()

	sampler := logging.NewProgressSampler(10)
	pending := make(map[int]batchResult)
	next := 0
	for res := range results {
		pending[res.index] = res
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			result.fold(ready)
			inFlight.Release(1)
			next++
			if opts.Progress != nil {
				opts.Progress(next, total)
			}
			if sampler.Observe(next, total) {
				logger.Debug("duplicate scan progress",
					logging.String(logging.FieldEventType, "scan_progress"),
					logging.Int("batches_done", next),
					logging.Int("batches_total", total),
				)
			}
		}
	}

	if err := <-waitErr; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if next != total {
		return nil, fmt.Errorf("%w: merged %d of %d batches", ErrWorkerFailure, next, total)
	}

	logger.Info("duplicate scan complete",
		logging.String(logging.FieldEventType, "scan_complete"),
		logging.Int("confirmed_pairs", result.ConfirmedCount()),
		logging.Int("confirmed_codes", len(result.Confirmed)),
		logging.Int("suspected_pairs", result.SuspectedCount()),
		logging.Duration("elapsed", time.Since(started)),
	)
	return result, nil
}

func classifyBatch(ctx context.Context, tracks []playlist.Track, prepared []preparedTrack, batch Batch, th Thresholds) (res batchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &BatchError{Batch: batch.Index, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	res.index = batch.Index
	for n, c := range batch.Candidates {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return batchResult{}, err
			}
		}
		verdict := classifyPair(&prepared[c.I], &prepared[c.J], th)
		switch verdict.Kind {
		case Confirmed:
			res.confirmed = append(res.confirmed, confirmedHit{
				isrc: verdict.ISRC,
				pair: Pair{A: tracks[c.I], B: tracks[c.J]},
			})
		case Suspected:
			res.suspected = append(res.suspected, SuspectedEntry{
				Pair:             Pair{A: tracks[c.I], B: tracks[c.J]},
				NameSimilarity:   verdict.NameSimilarity,
				ArtistSimilarity: verdict.ArtistSimilarity,
				AlbumSimilarity:  verdict.AlbumSimilarity,
			})
		}
	}
	return res, nil
}

// fold appends one batch's hits. Only the merging goroutine calls it.
func (r *Result) fold(res batchResult) {
	for _, hit := range res.confirmed {
		if _, seen := r.Confirmed[hit.isrc]; !seen {
			r.ConfirmedOrder = append(r.ConfirmedOrder, hit.isrc)
		}
		r.Confirmed[hit.isrc] = append(r.Confirmed[hit.isrc], hit.pair)
	}
	r.Suspected = append(r.Suspected, res.suspected...)
}
