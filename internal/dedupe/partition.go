package dedupe

import "iter"

// Candidate is one unit of work: the positions of two tracks in the scanned
// slice, with I < J.
type Candidate struct {
	I, J int
}

// Batch is a run of consecutive candidates. Index is the batch's position in
// generation order and is what the reducer reassembles results by.
type Batch struct {
	Index      int
	Candidates []Candidate
}

// PairCount returns n*(n-1)/2, the number of unordered pairs of n tracks.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// BatchCount returns how many batches Partition yields for n tracks.
func BatchCount(n, chunkSize int) int {
	chunkSize = normalizeChunkSize(chunkSize)
	pairs := PairCount(n)
	return (pairs + chunkSize - 1) / chunkSize
}

// Partition lazily yields every unordered pair of n tracks, in (i, j) order
// with the outer index ascending, sliced into batches of at most chunkSize
// candidates. Only the batch being filled is held in memory. A non-positive
// chunkSize falls back to DefaultChunkSize.
func Partition(n, chunkSize int) iter.Seq[Batch] {
	chunkSize = normalizeChunkSize(chunkSize)
	return func(yield func(Batch) bool) {
		if n < 2 {
			return
		}
		index := 0
		current := make([]Candidate, 0, min(chunkSize, PairCount(n)))
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				current = append(current, Candidate{I: i, J: j})
				if len(current) < chunkSize {
					continue
				}
				if !yield(Batch{Index: index, Candidates: current}) {
					return
				}
				index++
				current = make([]Candidate, 0, chunkSize)
			}
		}
		if len(current) > 0 {
			yield(Batch{Index: index, Candidates: current})
		}
	}
}

func normalizeChunkSize(chunkSize int) int {
	if chunkSize < 1 {
		return DefaultChunkSize
	}
	return chunkSize
}
