package logging

// ProgressSampler thins out per-batch progress logs to one record each time
// completion crosses a percentage step. It is not safe for concurrent use.
type ProgressSampler struct {
	step int
	last int
}

// NewProgressSampler returns a sampler that fires every step percent. Steps
// outside 1..100 fall back to 5.
func NewProgressSampler(step int) *ProgressSampler {
	if step <= 0 || step > 100 {
		step = 5
	}
	return &ProgressSampler{step: step, last: -1}
}

// Observe records that done of total units are finished and reports whether
// the caller should log. A nil sampler logs everything.
func (s *ProgressSampler) Observe(done, total int) bool {
	if s == nil {
		return true
	}
	if total <= 0 || done < 0 {
		return false
	}
	done = min(done, total)
	bucket := done * 100 / total / s.step
	if bucket <= s.last {
		return false
	}
	s.last = bucket
	return true
}
