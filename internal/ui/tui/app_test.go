package tui

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/soro/internal/domain"
)

type fakeReader struct {
	lines []string
	err   error
	path  string
}

func (f *fakeReader) ReadLines(path string) ([]string, error) {
	f.path = path
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.lines), nil
}

type fakeWriter struct {
	path  string
	lines []string
	err   error
}

func (f *fakeWriter) WriteLines(path string, lines []string) error {
	f.path = path
	f.lines = slices.Clone(lines)
	return f.err
}

func newTestModel(t *testing.T, r *fakeReader, w *fakeWriter) model {
	t.Helper()
	m := newModel(Deps{Reader: r, Writer: w, Config: domain.DefaultConfig()})
	return step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func step(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	tm, _ := m.Update(msg)
	out, ok := tm.(model)
	if !ok {
		t.Fatalf("Update returned %T", tm)
	}
	return out
}

// run executes cmd and feeds the resulting message back into the model.
func run(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	return step(t, m, cmd())
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyEsc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEsc} }
func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModel_UsesConfiguredAlgorithm(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Defaults.Algorithm = "insertion"

	m := newModel(Deps{Config: cfg})
	if m.algorithm != domain.InsertionSort {
		t.Fatalf("expected insertion sort, got %v", m.algorithm)
	}

	m = newModel(Deps{})
	if m.algorithm != domain.QuickSort {
		t.Fatalf("expected quick sort default, got %v", m.algorithm)
	}
}

func TestSortWithoutFileIsRejected(t *testing.T) {
	m := newTestModel(t, &fakeReader{}, &fakeWriter{})

	tm, cmd := m.do(actionSort)
	m = tm.(model)
	if cmd != nil {
		t.Fatalf("expected no command")
	}
	if m.toast != emptyMessage {
		t.Fatalf("expected %q, got %q", emptyMessage, m.toast)
	}
	if m.running {
		t.Fatalf("expected not running")
	}
}

func TestSelectFileSortAndSave(t *testing.T) {
	r := &fakeReader{lines: []string{"10", "2", "1", "apple"}}
	w := &fakeWriter{}
	m := newTestModel(t, r, w)

	// Select file.
	tm, _ := m.do(actionSelectFile)
	m = tm.(model)
	if m.scr != screenPath || m.purpose != pathOpen {
		t.Fatalf("expected open path screen, got scr=%v purpose=%v", m.scr, m.purpose)
	}
	m.path.SetValue("data/in.txt")

	tm, cmd := m.Update(keyEnter())
	m = tm.(model)
	if !m.running {
		t.Fatalf("expected running while loading")
	}
	m = run(t, m, cmd)
	if r.path != "data/in.txt" {
		t.Fatalf("reader got %q", r.path)
	}
	if m.running || len(m.lines) != 4 || m.inputPath != "data/in.txt" {
		t.Fatalf("unexpected state after load: running=%v lines=%q path=%q", m.running, m.lines, m.inputPath)
	}

	// Choose Bubble Sort.
	tm, _ = m.do(actionSortMethod)
	m = tm.(model)
	if m.scr != screenAlgorithms {
		t.Fatalf("expected algorithms screen")
	}
	m.algos.Select(0)
	m = step(t, m, keyEnter())
	if m.algorithm != domain.BubbleSort || m.scr != screenHome {
		t.Fatalf("expected bubble sort chosen, got %v on %v", m.algorithm, m.scr)
	}

	// Sort.
	tm, cmd = m.do(actionSort)
	m = tm.(model)
	if !m.running {
		t.Fatalf("expected running while sorting")
	}
	m = run(t, m, cmd)

	if m.scr != screenResult {
		t.Fatalf("expected result screen, got %v", m.scr)
	}
	if !slices.Equal(m.lines, []string{"1", "2", "10", "apple"}) {
		t.Fatalf("unexpected sorted lines %q", m.lines)
	}
	if m.report == nil || m.report.Algorithm != "Bubble Sort" || m.report.Count != 4 {
		t.Fatalf("unexpected report %+v", m.report)
	}
	if !strings.Contains(m.View(), "Sorted elements: 4") {
		t.Fatalf("expected summary in view:\n%s", m.View())
	}

	// Save.
	m = step(t, m, keyRune('s'))
	if m.scr != screenPath || m.purpose != pathSave {
		t.Fatalf("expected save path screen")
	}
	if got := m.path.Value(); got != "data/in.sorted.txt" {
		t.Fatalf("expected default save path, got %q", got)
	}

	tm, cmd = m.Update(keyEnter())
	m = tm.(model)
	if m.scr != screenResult {
		t.Fatalf("expected to return to result screen, got %v", m.scr)
	}
	m = run(t, m, cmd)

	if w.path != "data/in.sorted.txt" || !slices.Equal(w.lines, []string{"1", "2", "10", "apple"}) {
		t.Fatalf("unexpected write path=%q lines=%q", w.path, w.lines)
	}
	if m.savedPath != "data/in.sorted.txt" || !strings.HasPrefix(m.toast, "Saved to") {
		t.Fatalf("unexpected state after save: saved=%q toast=%q", m.savedPath, m.toast)
	}
}

func TestSaveBeforeSort(t *testing.T) {
	m := newTestModel(t, &fakeReader{}, &fakeWriter{})
	m = step(t, m, linesLoadedMsg{path: "in.txt", lines: []string{"b", "a"}})

	tm, cmd := m.do(actionSave)
	m = tm.(model)
	if cmd != nil || m.toast != "Nothing sorted yet" {
		t.Fatalf("expected save to be refused, toast=%q", m.toast)
	}
}

func TestLoadErrorShowsToast(t *testing.T) {
	m := newTestModel(t, &fakeReader{}, &fakeWriter{})
	err := &domain.OpError{Op: "linefile.read", Kind: domain.KindNotFound, Path: "/tmp/missing.txt", Err: errors.New("no such file")}

	m = step(t, m, linesLoadedMsg{path: "/tmp/missing.txt", err: err})
	if m.toast != "File not found: missing.txt" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
	if m.inputPath != "" {
		t.Fatalf("input path should stay unset on error")
	}
}

func TestSaveErrorShowsToast(t *testing.T) {
	m := newTestModel(t, &fakeReader{}, &fakeWriter{})
	err := &domain.OpError{Op: "linefile.write", Kind: domain.KindExecution, Path: "/ro/out.txt", Err: errors.New("read-only file system")}

	m = step(t, m, savedMsg{path: "/ro/out.txt", err: err})
	if m.toast != "Cannot write out.txt" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
	if m.savedPath != "" {
		t.Fatalf("saved path should stay unset on error")
	}
}

func TestPathInputRequiresValueAndEscCancels(t *testing.T) {
	m := newTestModel(t, &fakeReader{}, &fakeWriter{})

	tm, _ := m.do(actionSelectFile)
	m = tm.(model)

	tm, cmd := m.Update(keyEnter())
	m = tm.(model)
	if cmd != nil || m.toast != "Path is required" || m.scr != screenPath {
		t.Fatalf("expected path to be required, toast=%q scr=%v", m.toast, m.scr)
	}

	// "q" is typed into the input, not treated as quit.
	tm, _ = m.Update(keyRune('q'))
	m = tm.(model)
	if m.path.Value() != "q" || m.scr != screenPath {
		t.Fatalf("expected q typed into input, value=%q", m.path.Value())
	}

	m = step(t, m, keyEsc())
	if m.scr != screenHome {
		t.Fatalf("expected esc to return home, got %v", m.scr)
	}
}

func TestBusyBlocksActions(t *testing.T) {
	m := newTestModel(t, &fakeReader{}, &fakeWriter{})
	m.running = true

	tm, cmd := m.do(actionSelectFile)
	m = tm.(model)
	if cmd != nil || m.scr != screenHome || m.toast != "Busy…" {
		t.Fatalf("expected busy refusal, scr=%v toast=%q", m.scr, m.toast)
	}
}

func TestQuitFromHome(t *testing.T) {
	m := newTestModel(t, &fakeReader{}, &fakeWriter{})
	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestViewRendersEveryScreen(t *testing.T) {
	m := newTestModel(t, &fakeReader{}, &fakeWriter{})
	m = step(t, m, linesLoadedMsg{path: "in.txt", lines: []string{"b", "a"}})

	for _, s := range []screen{screenHome, screenAlgorithms, screenPath, screenResult} {
		m.scr = s
		if v := m.View(); !strings.Contains(v, "soro") {
			t.Fatalf("screen %v: missing header in view", s)
		}
	}
	if !strings.Contains(m.statusLine(), "in.txt (2 lines)") {
		t.Fatalf("unexpected status line %q", m.statusLine())
	}
}

func TestSafeModelRecoversPanics(t *testing.T) {
	inner := newTestModel(t, &fakeReader{}, &fakeWriter{})
	inner.menu.Select(1) // "Sort method"
	// A zero list has no pagination; selecting an item in it panics.
	inner.algos = list.Model{}
	s := wrapSafe(inner, nil)

	tm, cmd := s.Update(keyEnter())
	got, ok := tm.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got %T", tm)
	}
	if cmd != nil {
		t.Fatalf("expected no command after panic")
	}
	if got.m.scr != screenHome || got.m.running || got.m.toast != "Unexpected error (see logs)" {
		t.Fatalf("unexpected recovered state scr=%v running=%v toast=%q", got.m.scr, got.m.running, got.m.toast)
	}
}

type fakeReportStore struct {
	saved []domain.SortReport
}

func (f *fakeReportStore) SaveReport(r domain.SortReport) (string, error) {
	f.saved = append(f.saved, r)
	return "id", nil
}

func TestSortRecordsReport(t *testing.T) {
	store := &fakeReportStore{}
	m := newModel(Deps{Reader: &fakeReader{}, Writer: &fakeWriter{}, Reports: store})
	m = step(t, m, linesLoadedMsg{path: "in.txt", lines: []string{"b", "a", "c"}})

	tm, cmd := m.do(actionSort)
	m = run(t, tm.(model), cmd)

	if len(store.saved) != 1 {
		t.Fatalf("expected one saved report, got %d", len(store.saved))
	}
	got := store.saved[0]
	if got.Algorithm != "Quick Sort" || got.Count != 3 || got.InputPath != "in.txt" || got.SortedAt.IsZero() {
		t.Fatalf("unexpected report %+v", got)
	}
	if !slices.Equal(m.lines, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected lines %q", m.lines)
	}
}
