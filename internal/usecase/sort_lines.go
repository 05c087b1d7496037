package usecase

import (
	"time"

	"github.com/aalvaropc/soro/internal/domain"
)

// SortLines sorts lines in place with the algorithm named by selector and
// returns that algorithm together with the wall-clock time the sort took.
// Unknown selectors sort with Quick Sort.
func SortLines(lines []string, selector string) (domain.Algorithm, time.Duration) {
	algo := domain.Select(selector)
	return algo, sortTimed(lines, algo, time.Now)
}

func sortTimed(lines []string, algo domain.Algorithm, now func() time.Time) time.Duration {
	start := now()
	algo.Sort(lines)
	return now().Sub(start)
}
