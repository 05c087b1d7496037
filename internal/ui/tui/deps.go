package tui

import (
	"log/slog"

	"github.com/aalvaropc/soro/internal/domain"
	"github.com/aalvaropc/soro/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Reader ports.LineReader
	Writer ports.LineWriter
	Config domain.Config

	// Reports is optional; nil keeps no sort history.
	Reports ports.ReportStore

	Logger *slog.Logger
	Debug  bool
}
