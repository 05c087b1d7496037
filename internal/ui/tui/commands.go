package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/soro/internal/domain"
	"github.com/aalvaropc/soro/internal/ports"
	"github.com/aalvaropc/soro/internal/usecase"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdLoadLines(r ports.LineReader, path string, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		p := filepath.Clean(path)
		if r == nil {
			return linesLoadedMsg{path: p, err: errors.New("LineReader is nil")}
		}

		lines, err := r.ReadLines(p)
		if err != nil {
			log.Error("lines.load.failed", "path", p, "err", err)
			return linesLoadedMsg{path: p, err: err}
		}

		log.Info("lines.loaded", "path", p, "count", len(lines))
		return linesLoadedMsg{path: p, lines: lines}
	}
}

// cmdSort sorts lines in place. The model must not touch lines until the
// sortDoneMsg arrives.
func cmdSort(lines []string, selector, inputPath string, reports ports.ReportStore, log *slog.Logger, debug bool) tea.Cmd {
	return func() tea.Msg {
		log.Info("sort.start", "input", inputPath, "selector", selector, "count", len(lines))

		started := time.Now()
		algo, elapsed := usecase.SortLines(lines, selector)
		rep := domain.SortReport{
			Algorithm: algo.String(),
			Count:     len(lines),
			Elapsed:   elapsed,
			InputPath: inputPath,
			SortedAt:  started,
		}

		log.Info("sort.ok", "algorithm", rep.Algorithm, "count", rep.Count, "elapsed_ms", rep.ElapsedMS())
		if debug && len(lines) > 0 {
			log.Debug("sort.bounds", "first", lines[0], "last", lines[len(lines)-1])
		}
		if reports != nil {
			if _, err := reports.SaveReport(rep); err != nil {
				log.Warn("sort.report.failed", "input", inputPath, "err", err)
			}
		}
		return sortDoneMsg{report: rep}
	}
}

func cmdSave(w ports.LineWriter, path string, lines []string, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		p := filepath.Clean(path)
		if w == nil {
			return savedMsg{path: p, err: errors.New("LineWriter is nil")}
		}

		if err := w.WriteLines(p, lines); err != nil {
			log.Error("save.failed", "path", p, "err", err)
			return savedMsg{path: p, err: err}
		}

		log.Info("save.ok", "path", p, "count", len(lines))
		return savedMsg{path: p}
	}
}
