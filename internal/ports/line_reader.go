package ports

// LineReader loads the lines of a text file (e.g., from the filesystem).
type LineReader interface {
	ReadLines(path string) ([]string, error)
}
