package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#9F8CFF"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#B35C00", Dark: "#FFAF5F"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Accent   lipgloss.Style

	// Toast is for results and errors, Busy for "Sorting…" style notices.
	Toast lipgloss.Style
	Busy  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Subtitle: lipgloss.NewStyle().Foreground(colorMuted),
		Help:     lipgloss.NewStyle().Foreground(colorMuted),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent),
		Accent: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Toast:  lipgloss.NewStyle().Foreground(colorWarn),
		Busy:   lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
	}
}
