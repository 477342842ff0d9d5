package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Session summarises the scores of the runs played by this process.
type Session struct {
	scores []float64
	best   int
}

func (s *Session) Add(score int) {
	s.scores = append(s.scores, float64(score))
	if score > s.best {
		s.best = score
	}
}

func (s *Session) Runs() int {
	return len(s.scores)
}

func (s *Session) Best() int {
	return s.best
}

func (s *Session) Mean() float64 {
	if len(s.scores) == 0 {
		return 0
	}
	return stat.Mean(s.scores, nil)
}

// Median averages the two middle scores when the run count is even.
func (s *Session) Median() float64 {
	n := len(s.scores)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, s.scores)
	sort.Float64s(sorted)
	if n%2 == 0 {
		return stat.Mean(sorted[n/2-1:n/2+1], nil)
	}
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}
