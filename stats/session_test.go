package stats

import (
	"math"
	"testing"
)

func TestSessionEmpty(t *testing.T) {
	var s Session
	if s.Runs() != 0 || s.Mean() != 0 || s.Median() != 0 || s.Best() != 0 {
		t.Errorf("empty session should report zeros, got runs=%d mean=%f median=%f best=%d",
			s.Runs(), s.Mean(), s.Median(), s.Best())
	}
}

func TestSessionSummary(t *testing.T) {
	var s Session
	for _, score := range []int{3, 1, 2, 10, 4} {
		s.Add(score)
	}

	if s.Runs() != 5 {
		t.Errorf("runs = %d, want 5", s.Runs())
	}
	if s.Best() != 10 {
		t.Errorf("best = %d, want 10", s.Best())
	}
	if math.Abs(s.Mean()-4) > 1e-9 {
		t.Errorf("mean = %f, want 4", s.Mean())
	}
	if s.Median() != 3 {
		t.Errorf("median = %f, want 3", s.Median())
	}
}

func TestSessionMedianEvenCount(t *testing.T) {
	tests := []struct {
		scores []int
		want   float64
	}{
		{[]int{1, 2}, 1.5},
		{[]int{7, 1, 4, 2}, 3},
		{[]int{5, 5}, 5},
	}

	for _, tc := range tests {
		var s Session
		for _, score := range tc.scores {
			s.Add(score)
		}
		if got := s.Median(); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("median of %v = %f, want %f", tc.scores, got, tc.want)
		}
	}
}
