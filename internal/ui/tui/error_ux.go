package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/soro/internal/domain"
)

const unexpectedMessage = "Unexpected error (see logs)"

var reYAMLLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into the one-line toast shown in the TUI.
// Details stay in the log file.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindEmptyInput:
			return emptyMessage
		case domain.KindNotFound:
			return notFoundMessage(oe)
		case domain.KindInvalidConfig:
			return configMessage(oe)
		case domain.KindExecution:
			return ioMessage(oe)
		}
		return unexpectedMessage
	}

	if errors.Is(err, domain.ErrEmptyInput) {
		return emptyMessage
	}
	if looksLikeYAMLProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}
	return unexpectedMessage
}

func notFoundMessage(oe *domain.OpError) string {
	switch {
	case strings.HasPrefix(oe.Op, "linefile."):
		return "File not found: " + fileName(oe.Path)
	case strings.HasPrefix(oe.Op, "configfinder."):
		return "soro.yaml not found"
	default:
		return "Not found"
	}
}

// configMessage only inspects the cause: the path itself ends in ".yaml".
func configMessage(oe *domain.OpError) string {
	msg := ""
	if oe.Err != nil {
		msg = oe.Err.Error()
	}
	name := "config"
	if strings.TrimSpace(oe.Path) != "" {
		name = fileName(oe.Path)
	}
	if line := extractLine(msg); line != "" {
		return "Invalid YAML at " + name + " line " + line
	}
	if looksLikeYAMLProblem(msg) {
		return "Invalid YAML at " + name
	}
	return "Invalid config"
}

func ioMessage(oe *domain.OpError) string {
	switch {
	case oe.Op == "linefile.read":
		return "Cannot read " + fileName(oe.Path)
	case strings.HasPrefix(oe.Op, "linefile."):
		return "Cannot write " + fileName(oe.Path)
	case strings.HasPrefix(oe.Op, "reportstore."):
		return "Cannot record sort history"
	case strings.HasPrefix(oe.Op, "fsworkspace."):
		return "Cannot create soro.yaml"
	default:
		return unexpectedMessage
	}
}

func fileName(p string) string {
	return filepath.Base(p)
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	if m := reYAMLLine.FindStringSubmatch(s); len(m) == 2 {
		return m[1]
	}
	return ""
}
