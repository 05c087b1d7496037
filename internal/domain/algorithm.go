package domain

// Algorithm selects one of the in-place line sorting strategies.
type Algorithm int

const (
	QuickSort Algorithm = iota
	BubbleSort
	InsertionSort
)

// Selector names as shown to the user.
const (
	NameBubbleSort    = "Bubble Sort"
	NameQuickSort     = "Quick Sort"
	NameInsertionSort = "Insertion Sort"
)

// Algorithms lists every strategy in display order.
func Algorithms() []Algorithm {
	return []Algorithm{BubbleSort, QuickSort, InsertionSort}
}

// Select maps a selector name to an algorithm. Anything unrecognized,
// including the empty string, selects QuickSort.
func Select(name string) Algorithm {
	switch name {
	case NameBubbleSort:
		return BubbleSort
	case NameQuickSort:
		return QuickSort
	case NameInsertionSort:
		return InsertionSort
	default:
		return QuickSort
	}
}

func (a Algorithm) String() string {
	switch a {
	case BubbleSort:
		return NameBubbleSort
	case InsertionSort:
		return NameInsertionSort
	default:
		return NameQuickSort
	}
}

// Stable reports whether equal lines keep their relative order.
func (a Algorithm) Stable() bool {
	return a == BubbleSort || a == InsertionSort
}

// Sort reorders lines in place, non-descending under CompareLines.
func (a Algorithm) Sort(lines []string) {
	switch a {
	case BubbleSort:
		bubbleSort(lines)
	case InsertionSort:
		insertionSort(lines)
	default:
		quickSort(lines)
	}
}
