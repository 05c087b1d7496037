package usecase

import (
	"strings"

	"github.com/aalvaropc/soro/internal/domain"
)

// NormalizeSelector maps short or differently cased algorithm names
// ("bubble", "QUICKSORT", ...) to their selector names. Anything it does not
// recognize is returned trimmed but otherwise untouched, so domain.Select can
// apply its Quick Sort fallback.
func NormalizeSelector(name string) string {
	in := strings.TrimSpace(name)
	switch strings.ToLower(in) {
	case "bubble", "bubble sort", "bubblesort":
		return domain.NameBubbleSort
	case "quick", "quick sort", "quicksort":
		return domain.NameQuickSort
	case "insertion", "insertion sort", "insertionsort":
		return domain.NameInsertionSort
	default:
		return in
	}
}
