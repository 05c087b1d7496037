package usecase

import (
	"path/filepath"
	"strings"
)

// DefaultOutputPath places suffix before the extension of input:
// "data/lines.txt" with ".sorted" becomes "data/lines.sorted.txt".
func DefaultOutputPath(input, suffix string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	if ext == filepath.Base(input) {
		// dotfile such as ".lines": no extension to keep.
		base, ext = input, ""
	}
	return base + suffix + ext
}
