package domain

func insertionSort(lines []string) {
	for i := 1; i < len(lines); i++ {
		key := lines[i]
		j := i - 1
		for j >= 0 && CompareLines(lines[j], key) > 0 {
			lines[j+1] = lines[j]
			j--
		}
		lines[j+1] = key
	}
}
