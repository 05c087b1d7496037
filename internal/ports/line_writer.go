package ports

// LineWriter persists lines to a text file, replacing any previous content.
type LineWriter interface {
	WriteLines(path string, lines []string) error
}
