package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/soro/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderSummary(r domain.SortReport) string {
	return fmt.Sprintf("Sorted elements: %d\nSort time: %.3f ms (%s)", r.Count, r.ElapsedMS(), r.Algorithm)
}

// renderLines numbers each line so blank lines stay visible.
func renderLines(lines []string) string {
	if len(lines) == 0 {
		return "(empty)"
	}
	width := len(fmt.Sprint(len(lines)))

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%*d │ %s", width, i+1, l)
	}
	return b.String()
}
