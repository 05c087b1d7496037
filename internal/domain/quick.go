package domain

// quickSort is a Lomuto quicksort with the last element as pivot.
// There is no pivot sampling: already sorted or reversed input costs O(n²).
func quickSort(lines []string) {
	quickSortRange(lines, 0, len(lines)-1)
}

// quickSortRange recurses into the smaller partition and loops on the
// larger one, so the stack stays O(log n) deep. The partitions are disjoint,
// which makes the result the same as recursing into both.
func quickSortRange(lines []string, low, high int) {
	for low < high {
		pi := partition(lines, low, high)
		if pi-low < high-pi {
			quickSortRange(lines, low, pi-1)
			low = pi + 1
		} else {
			quickSortRange(lines, pi+1, high)
			high = pi - 1
		}
	}
}

func partition(lines []string, low, high int) int {
	pivot := lines[high]
	i := low - 1

	for j := low; j < high; j++ {
		if CompareLines(lines[j], pivot) < 0 {
			i++
			lines[i], lines[j] = lines[j], lines[i]
		}
	}

	lines[i+1], lines[high] = lines[high], lines[i+1]
	return i + 1
}
