package logging

import "testing"

func TestNewProgressSamplerStep(t *testing.T) {
	for _, tc := range []struct {
		step, want int
	}{
		{0, 5},
		{-3, 5},
		{250, 5},
		{10, 10},
	} {
		if got := NewProgressSampler(tc.step).step; got != tc.want {
			t.Errorf("NewProgressSampler(%d).step = %d, want %d", tc.step, got, tc.want)
		}
	}
}

func TestProgressSamplerNilAlwaysLogs(t *testing.T) {
	var s *ProgressSampler
	if !s.Observe(1, 3) {
		t.Fatal("nil sampler should always log")
	}
}

func TestProgressSamplerSteps(t *testing.T) {
	s := NewProgressSampler(25)
	steps := []struct {
		done, total int
		want        bool
	}{
		{0, 8, true},
		{1, 8, false},
		{2, 8, true},
		{3, 8, false},
		{6, 8, true},
		{5, 8, false},
		{8, 8, true},
		{9, 8, false},
		{-1, 8, false},
		{1, 0, false},
	}
	for _, step := range steps {
		if got := s.Observe(step.done, step.total); got != step.want {
			t.Fatalf("Observe(%d, %d) = %v, want %v", step.done, step.total, got, step.want)
		}
	}
}

func TestProgressSamplerSingleBatch(t *testing.T) {
	s := NewProgressSampler(10)
	if !s.Observe(1, 1) {
		t.Fatal("completing the only batch should log")
	}
	if s.Observe(1, 1) {
		t.Fatal("repeated completion should not log again")
	}
}
