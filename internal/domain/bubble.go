package domain

// bubbleSort runs every pass even when a pass made no swaps.
func bubbleSort(lines []string) {
	n := len(lines)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if CompareLines(lines[j], lines[j+1]) > 0 {
				lines[j], lines[j+1] = lines[j+1], lines[j]
			}
		}
	}
}
