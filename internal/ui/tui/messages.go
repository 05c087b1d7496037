package tui

import "github.com/aalvaropc/soro/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type linesLoadedMsg struct {
	path  string
	lines []string
	err   error
}

type sortDoneMsg struct {
	report domain.SortReport
}

type savedMsg struct {
	path string
	err  error
}
