package tui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/soro/internal/domain"
	"github.com/aalvaropc/soro/internal/usecase"
)

type screen int

const (
	screenHome screen = iota
	screenAlgorithms
	screenPath
	screenResult
)

type pathPurpose int

const (
	pathOpen pathPurpose = iota
	pathSave
)

type action int

const (
	actionSelectFile action = iota
	actionSortMethod
	actionSort
	actionSave
	actionInitConfig
	actionQuit
)

type menuItem struct {
	title  string
	desc   string
	action action
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type algorithmItem struct {
	algo domain.Algorithm
}

func (a algorithmItem) Title() string { return a.algo.String() }
func (a algorithmItem) Description() string {
	if a.algo.Stable() {
		return "stable"
	}
	return "not stable"
}
func (a algorithmItem) FilterValue() string { return a.algo.String() }

const emptyMessage = "Please select a file first"

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	scr    screen
	menu   list.Model
	algos  list.Model
	path   textinput.Model
	viewer viewport.Model

	purpose   pathPurpose
	algorithm domain.Algorithm
	inputPath string
	lines     []string
	report    *domain.SortReport
	savedPath string

	running bool
	toast   string

	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	items := []list.Item{
		menuItem{"Select file", "Load the lines of a text file", actionSelectFile},
		menuItem{"Sort method", "Bubble, Quick or Insertion sort", actionSortMethod},
		menuItem{"Sort", "Sort the loaded lines", actionSort},
		menuItem{"Save", "Write the sorted lines to a file", actionSave},
		menuItem{"Init config", "Create soro.yaml in this directory", actionInitConfig},
		menuItem{"Quit", "Exit soro", actionQuit},
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "soro"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.SetShowHelp(false)

	algoItems := make([]list.Item, 0, len(domain.Algorithms()))
	for _, a := range domain.Algorithms() {
		algoItems = append(algoItems, algorithmItem{algo: a})
	}
	algos := list.New(algoItems, list.NewDefaultDelegate(), 0, 0)
	algos.Title = "Sort method"
	algos.SetShowStatusBar(false)
	algos.SetFilteringEnabled(false)
	algos.SetShowHelp(false)

	in := textinput.New()
	in.Prompt = "path: "
	in.CharLimit = 4096
	in.Width = 60

	m := model{
		theme:     t,
		deps:      deps,
		log:       log,
		scr:       screenHome,
		menu:      menu,
		algos:     algos,
		path:      in,
		viewer:    viewport.New(80, 20),
		algorithm: domain.Select(usecase.NormalizeSelector(deps.Config.Defaults.Algorithm)),
	}
	m.selectAlgorithmItem()

	wd, err := os.Getwd()
	if err == nil && deps.WorkspaceLocator != nil {
		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr == nil {
			m.workspaceFound = true
			m.workspaceRoot = root
		}
	}

	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		m.algos.SetSize(w-4, h-10)
		m.path.Width = max(w-16, 10)
		m.viewer.Width = max(w-8, 10)
		m.viewer.Height = max(h-14, 3)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Created soro.yaml"
		return m, cmdRefreshWorkspace(m.deps)

	case linesLoadedMsg:
		m.running = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.inputPath = msg.path
		m.lines = msg.lines
		m.report = nil
		m.savedPath = ""
		m.toast = fmt.Sprintf("Loaded %d line(s) from %s", len(msg.lines), msg.path)
		return m, nil

	case sortDoneMsg:
		m.running = false
		rep := msg.report
		m.report = &rep
		m.toast = ""
		m.viewer.SetContent(renderLines(m.lines))
		m.viewer.GotoTop()
		m.scr = screenResult
		return m, nil

	case savedMsg:
		m.running = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.savedPath = msg.path
		m.toast = "Saved to " + msg.path
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenAlgorithms:
			return m.updateAlgorithms(msg)
		case screenPath:
			return m.updatePath(msg)
		case screenResult:
			return m.updateResult(msg)
		}
	}

	return m.forward(msg)
}

func (m model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.scr {
	case screenHome:
		m.menu, cmd = m.menu.Update(msg)
	case screenAlgorithms:
		m.algos, cmd = m.algos.Update(msg)
	case screenPath:
		m.path, cmd = m.path.Update(msg)
	case screenResult:
		m.viewer, cmd = m.viewer.Update(msg)
	}
	return m, cmd
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		return m.do(it.action)
	}
	return m.forward(msg)
}

func (m model) do(a action) (tea.Model, tea.Cmd) {
	if m.running {
		m.toast = "Busy…"
		return m, nil
	}
	m.toast = ""

	switch a {
	case actionSelectFile:
		return m.openPath(pathOpen, m.inputPath)

	case actionSortMethod:
		m.selectAlgorithmItem()
		m.scr = screenAlgorithms
		return m, nil

	case actionSort:
		return m.startSort()

	case actionSave:
		if m.report == nil {
			m.toast = "Nothing sorted yet"
			return m, nil
		}
		return m.openPath(pathSave, m.defaultSavePath())

	case actionInitConfig:
		wd, err := os.Getwd()
		if err != nil {
			m.toast = userMessage(err)
			return m, nil
		}
		return m, cmdInitWorkspaceHere(m.deps, wd)

	case actionQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m model) startSort() (tea.Model, tea.Cmd) {
	if len(m.lines) == 0 {
		m.toast = emptyMessage
		return m, nil
	}
	m.running = true
	m.toast = "Sorting…"
	return m, cmdSort(m.lines, m.algorithm.String(), m.inputPath, m.deps.Reports, m.log, m.deps.Debug)
}

func (m model) openPath(p pathPurpose, initial string) (tea.Model, tea.Cmd) {
	m.purpose = p
	m.path.SetValue(initial)
	m.path.CursorEnd()
	if p == pathOpen {
		m.path.Placeholder = "file to sort, e.g. lines.txt"
	} else {
		m.path.Placeholder = "where to save the sorted lines"
	}
	m.scr = screenPath
	return m, m.path.Focus()
}

func (m model) updateAlgorithms(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q":
		m.scr = screenHome
		return m, nil
	case "enter":
		if it, ok := m.algos.SelectedItem().(algorithmItem); ok {
			m.algorithm = it.algo
			m.toast = "Sort method: " + it.algo.String()
		}
		m.scr = screenHome
		return m, nil
	}
	return m.forward(msg)
}

func (m model) updatePath(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.path.Blur()
		m.scr = m.returnScreen()
		return m, nil
	case "enter":
		p := strings.TrimSpace(m.path.Value())
		if p == "" {
			m.toast = "Path is required"
			return m, nil
		}
		m.path.Blur()
		m.scr = m.returnScreen()
		m.running = true
		if m.purpose == pathOpen {
			m.toast = "Loading…"
			return m, cmdLoadLines(m.deps.Reader, p, m.log)
		}
		m.toast = "Saving…"
		return m, cmdSave(m.deps.Writer, p, m.lines, m.log)
	}
	return m.forward(msg)
}

func (m model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q":
		m.scr = screenHome
		return m, nil
	case "s":
		if m.running {
			return m, nil
		}
		return m.openPath(pathSave, m.defaultSavePath())
	}
	return m.forward(msg)
}

func (m model) returnScreen() screen {
	if m.purpose == pathSave && m.report != nil {
		return screenResult
	}
	return screenHome
}

func (m model) defaultSavePath() string {
	if m.savedPath != "" {
		return m.savedPath
	}
	suffix := m.deps.Config.Output.Suffix
	if suffix == "" {
		suffix = domain.DefaultConfig().Output.Suffix
	}
	return usecase.DefaultOutputPath(m.inputPath, suffix)
}

func (m *model) selectAlgorithmItem() {
	for i, a := range domain.Algorithms() {
		if a == m.algorithm {
			m.algos.Select(i)
			return
		}
	}
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("soro") + "\n" +
		m.theme.Subtitle.Render("Sort the lines of a text file: numbers by value, text by character code") + "\n"

	status := m.theme.Help.Render(m.statusLine())
	if m.workspaceFound {
		status += "\n" + m.theme.Help.Render(fmt.Sprintf("Config: %s", m.workspaceRoot))
	}

	toast := ""
	if m.toast != "" {
		style := m.theme.Toast
		if m.running {
			style = m.theme.Busy
		}
		toast = "\n" + style.Render(m.toast)
	}

	var body, help string
	switch m.scr {
	case screenHome:
		body = m.theme.Card.Render(m.menu.View())
		help = "↑/↓ navigate • enter open • q quit"

	case screenAlgorithms:
		body = m.theme.Card.Render(m.algos.View())
		help = "↑/↓ navigate • enter choose • esc back"

	case screenPath:
		title := "Select file"
		if m.purpose == pathSave {
			title = "Save sorted lines"
		}
		body = m.theme.Card.Render(m.theme.Title.Render(title) + "\n\n" + m.path.View())
		help = "enter confirm • esc cancel"

	case screenResult:
		summary := ""
		if m.report != nil {
			summary = m.theme.Accent.Render(renderSummary(*m.report)) + "\n\n"
		}
		body = m.theme.Card.Render(summary + m.viewer.View())
		help = fmt.Sprintf("↑/↓ scroll (%3.f%%) • s save • esc back", m.viewer.ScrollPercent()*100)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}

	return wrap.Render(header + "\n" + status + "\n\n" + body + toast + "\n" + m.theme.Help.Render(help))
}

func (m model) statusLine() string {
	file := "no file selected"
	if m.inputPath != "" {
		file = fmt.Sprintf("%s (%d lines)", clampString(m.inputPath, 60), len(m.lines))
	}
	return fmt.Sprintf("File: %s • Method: %s", file, m.algorithm)
}
