package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/aalvaropc/soro/internal/domain"
	"github.com/aalvaropc/soro/internal/ports"
)

// --- fakes ---

type fakeReader struct {
	lines []string
	err   error
	calls int
}

func (f *fakeReader) ReadLines(_ string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.lines), nil
}

type fakeWriter struct {
	path  string
	lines []string
	err   error
	calls int
}

func (f *fakeWriter) WriteLines(path string, lines []string) error {
	f.calls++
	f.path = path
	f.lines = slices.Clone(lines)
	return f.err
}

type fakeReportStore struct {
	saved []domain.SortReport
	err   error
}

func (f *fakeReportStore) SaveReport(r domain.SortReport) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = append(f.saved, r)
	return "report-1", nil
}

var (
	_ ports.LineReader  = (*fakeReader)(nil)
	_ ports.LineWriter  = (*fakeWriter)(nil)
	_ ports.ReportStore = (*fakeReportStore)(nil)
)

// stepClock advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		cur := t
		t = t.Add(step)
		return cur
	}
}

// --- SortLines ---

func TestSortLines_SortsInPlace(t *testing.T) {
	lines := []string{"10", "2", "1"}
	algo, elapsed := SortLines(lines, "Insertion Sort")

	if algo != domain.InsertionSort {
		t.Fatalf("expected insertion sort, got %v", algo)
	}
	if !slices.Equal(lines, []string{"1", "2", "10"}) {
		t.Fatalf("got %q", lines)
	}
	if elapsed < 0 {
		t.Fatalf("negative elapsed %v", elapsed)
	}
}

func TestSortLines_UnknownSelectorUsesQuickSort(t *testing.T) {
	lines := []string{"b", "a"}
	algo, _ := SortLines(lines, "Shell Sort")
	if algo != domain.QuickSort {
		t.Fatalf("expected quick sort fallback, got %v", algo)
	}
	if !slices.Equal(lines, []string{"a", "b"}) {
		t.Fatalf("got %q", lines)
	}
}

func TestSortTimed_UsesClock(t *testing.T) {
	got := sortTimed([]string{"b", "a"}, domain.BubbleSort, stepClock(3*time.Millisecond))
	if got != 3*time.Millisecond {
		t.Fatalf("expected 3ms, got %v", got)
	}
}

// --- SortFile.Execute ---

func TestSortFile_Execute_WritesSortedLines(t *testing.T) {
	r := &fakeReader{lines: []string{"banana", "apple", "10", "2"}}
	w := &fakeWriter{}
	uc := NewSortFile(r, w, WithNow(stepClock(2*time.Millisecond)))

	res, err := uc.Execute(context.Background(), "in.txt", "out.txt", "Bubble Sort")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"2", "10", "apple", "banana"}
	if !slices.Equal(res.Lines, want) {
		t.Fatalf("lines: got %q, want %q", res.Lines, want)
	}
	if w.calls != 1 || w.path != "out.txt" || !slices.Equal(w.lines, want) {
		t.Fatalf("unexpected write: calls=%d path=%q lines=%q", w.calls, w.path, w.lines)
	}

	rep := res.Report
	if rep.Algorithm != "Bubble Sort" {
		t.Fatalf("expected Bubble Sort, got %q", rep.Algorithm)
	}
	if rep.Count != 4 {
		t.Fatalf("expected count 4, got %d", rep.Count)
	}
	if rep.Elapsed != 2*time.Millisecond {
		t.Fatalf("expected 2ms, got %v", rep.Elapsed)
	}
	if rep.InputPath != "in.txt" || rep.OutputPath != "out.txt" {
		t.Fatalf("unexpected paths %+v", rep)
	}
	if want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC); !rep.SortedAt.Equal(want) {
		t.Fatalf("expected sorted_at %v, got %v", want, rep.SortedAt)
	}
	if res.ReportID != "" {
		t.Fatalf("no report store configured, got id %q", res.ReportID)
	}
}

func TestSortFile_Execute_RecordsReport(t *testing.T) {
	store := &fakeReportStore{}
	uc := NewSortFile(&fakeReader{lines: []string{"b", "a"}}, &fakeWriter{}, WithReportStore(store))

	res, err := uc.Execute(context.Background(), "in.txt", "out.txt", "Insertion Sort")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ReportID != "report-1" {
		t.Fatalf("expected report id, got %q", res.ReportID)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected one saved report, got %d", len(store.saved))
	}
	if got := store.saved[0]; got.Algorithm != "Insertion Sort" || got.OutputPath != "out.txt" || got.Count != 2 {
		t.Fatalf("unexpected saved report %+v", got)
	}
}

func TestSortFile_Execute_ReportFailureIsNotFatal(t *testing.T) {
	store := &fakeReportStore{err: errors.New("read-only")}
	uc := NewSortFile(&fakeReader{lines: []string{"b", "a"}}, nil, WithReportStore(store))

	res, err := uc.Execute(context.Background(), "in.txt", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ReportID != "" || !slices.Equal(res.Lines, []string{"a", "b"}) {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestSortFile_Execute_FailedWriteIsNotRecorded(t *testing.T) {
	store := &fakeReportStore{}
	uc := NewSortFile(&fakeReader{lines: []string{"b", "a"}}, &fakeWriter{err: errors.New("disk full")}, WithReportStore(store))

	if _, err := uc.Execute(context.Background(), "in.txt", "out.txt", ""); err == nil {
		t.Fatalf("expected write error")
	}
	if len(store.saved) != 0 {
		t.Fatalf("failed sorts must not be recorded")
	}
}

func TestSortFile_Execute_NoOutputSkipsWrite(t *testing.T) {
	r := &fakeReader{lines: []string{"b", "a"}}
	w := &fakeWriter{}
	uc := NewSortFile(r, w)

	res, err := uc.Execute(context.Background(), "in.txt", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.calls != 0 {
		t.Fatalf("expected no write, got %d", w.calls)
	}
	if res.Report.OutputPath != "" {
		t.Fatalf("expected empty output path, got %q", res.Report.OutputPath)
	}
	if res.Report.Algorithm != domain.NameQuickSort {
		t.Fatalf("expected default quick sort, got %q", res.Report.Algorithm)
	}
}

func TestSortFile_Execute_NilWriter(t *testing.T) {
	uc := NewSortFile(&fakeReader{lines: []string{"b", "a"}}, nil)
	if _, err := uc.Execute(context.Background(), "in.txt", "out.txt", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSortFile_Execute_EmptyInputRejected(t *testing.T) {
	w := &fakeWriter{}
	uc := NewSortFile(&fakeReader{lines: []string{}}, w)

	_, err := uc.Execute(context.Background(), "empty.txt", "out.txt", "")
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if !errors.Is(err, domain.ErrEmptyInput) || !domain.IsKind(err, domain.KindEmptyInput) {
		t.Fatalf("expected empty input error, got %v", err)
	}
	if w.calls != 0 {
		t.Fatalf("expected no write")
	}
}

func TestSortFile_Execute_ReadError(t *testing.T) {
	readErr := &domain.OpError{Op: "linefile.read", Kind: domain.KindNotFound, Path: "in.txt", Err: errors.New("no such file")}
	uc := NewSortFile(&fakeReader{err: readErr}, &fakeWriter{})

	_, err := uc.Execute(context.Background(), "in.txt", "out.txt", "")
	if !errors.Is(err, readErr) {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestSortFile_Execute_WriteErrorKeepsResult(t *testing.T) {
	writeErr := errors.New("disk full")
	uc := NewSortFile(&fakeReader{lines: []string{"b", "a"}}, &fakeWriter{err: writeErr})

	res, err := uc.Execute(context.Background(), "in.txt", "out.txt", "")
	if !errors.Is(err, writeErr) {
		t.Fatalf("expected write error, got %v", err)
	}
	if !slices.Equal(res.Lines, []string{"a", "b"}) {
		t.Fatalf("expected sorted lines despite write error, got %q", res.Lines)
	}
	if res.Report.OutputPath != "" {
		t.Fatalf("output path must stay empty when the write failed")
	}
}

func TestSortFile_Execute_ContextCancelledBeforeRead(t *testing.T) {
	r := &fakeReader{lines: []string{"a"}}
	uc := NewSortFile(r, &fakeWriter{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, "in.txt", "out.txt", "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if r.calls != 0 {
		t.Fatalf("expected no read, got %d", r.calls)
	}
}

// --- InitWorkspace ---

type fakeInitializer struct {
	root  string
	force bool
}

func (f *fakeInitializer) Init(root string, force bool) error {
	f.root, f.force = root, force
	return nil
}

func TestInitWorkspace_Delegates(t *testing.T) {
	fi := &fakeInitializer{}
	if err := NewInitWorkspace(fi).Execute("/tmp/ws", true); err != nil {
		t.Fatal(err)
	}
	if fi.root != "/tmp/ws" || !fi.force {
		t.Fatalf("unexpected call %+v", fi)
	}
}
