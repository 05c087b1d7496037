package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// safeModel keeps a panic in Update or View from tearing down the terminal.
// After a panic the user lands on the home screen with the loaded lines
// intact; the stack goes to the log.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.report("tui.update", r, fmt.Sprintf("%T", msg))
			s.m = s.m.recovered()
			next, cmd = s, nil
		}
	}()

	inner, c := s.m.Update(msg)
	switch v := inner.(type) {
	case model:
		s.m = v
	case safeModel:
		s = v
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.report("tui.view", r, "")
			out = unexpectedMessage
		}
	}()
	return s.m.View()
}

func (s safeModel) report(where string, r any, msgType string) {
	s.log.Error("panic.recovered",
		"where", where,
		"screen", int(s.m.scr),
		"msg_type", msgType,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

// recovered resets the navigation state after a panic.
func (m model) recovered() model {
	m.scr = screenHome
	m.running = false
	m.toast = unexpectedMessage
	return m
}

var _ tea.Model = safeModel{}
