package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/soro/internal/domain"
	"github.com/aalvaropc/soro/internal/ports"
)

// SortResult is what SortFile hands back: the summary plus the sorted lines
// for display.
type SortResult struct {
	Report   domain.SortReport
	Lines    []string
	ReportID string
}

type SortFile struct {
	reader  ports.LineReader
	writer  ports.LineWriter
	reports ports.ReportStore
	now     func() time.Time
	log     *slog.Logger
}

type SortFileOption func(*SortFile)

// WithNow is useful for tests.
func WithNow(now func() time.Time) SortFileOption {
	return func(uc *SortFile) {
		if now != nil {
			uc.now = now
		}
	}
}

func WithLogger(l *slog.Logger) SortFileOption {
	return func(uc *SortFile) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithReportStore records every successful sort in s.
func WithReportStore(s ports.ReportStore) SortFileOption {
	return func(uc *SortFile) { uc.reports = s }
}

// NewSortFile builds the use case. A nil writer makes Execute skip saving.
func NewSortFile(r ports.LineReader, w ports.LineWriter, opts ...SortFileOption) *SortFile {
	uc := &SortFile{
		reader: r,
		writer: w,
		now:    time.Now,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute reads inputPath, sorts its lines with the selected algorithm and,
// when outputPath is set, writes them there. An input without lines is
// rejected before sorting.
func (uc *SortFile) Execute(ctx context.Context, inputPath, outputPath, selector string) (SortResult, error) {
	if err := ctx.Err(); err != nil {
		return SortResult{}, err
	}

	lines, err := uc.reader.ReadLines(inputPath)
	if err != nil {
		uc.log.Error("sort.read.failed", "input", inputPath, "err", err)
		return SortResult{}, err
	}
	if len(lines) == 0 {
		return SortResult{}, &domain.OpError{
			Op:   "usecase.sort_file",
			Kind: domain.KindEmptyInput,
			Path: inputPath,
			Err:  domain.ErrEmptyInput,
		}
	}

	started := uc.now()
	algo := domain.Select(selector)
	uc.log.Info("sort.start", "input", inputPath, "algorithm", algo.String(), "count", len(lines))

	elapsed := sortTimed(lines, algo, uc.now)

	res := SortResult{
		Report: domain.SortReport{
			Algorithm: algo.String(),
			Count:     len(lines),
			Elapsed:   elapsed,
			InputPath: inputPath,
			SortedAt:  started,
		},
		Lines: lines,
	}

	if outputPath == "" || uc.writer == nil {
		uc.log.Info("sort.ok", "algorithm", algo.String(), "count", len(lines), "elapsed_ms", res.Report.ElapsedMS())
		res.ReportID = uc.record(res.Report)
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := uc.writer.WriteLines(outputPath, lines); err != nil {
		uc.log.Error("sort.write.failed", "output", outputPath, "err", err)
		return res, err
	}
	res.Report.OutputPath = outputPath

	uc.log.Info("sort.ok",
		"algorithm", algo.String(),
		"count", len(lines),
		"elapsed_ms", res.Report.ElapsedMS(),
		"output", outputPath,
	)
	res.ReportID = uc.record(res.Report)
	return res, nil
}

// record saves r when a report store is set. Failures are logged only: the
// sort itself already succeeded.
func (uc *SortFile) record(r domain.SortReport) string {
	if uc.reports == nil {
		return ""
	}
	id, err := uc.reports.SaveReport(r)
	if err != nil {
		uc.log.Warn("sort.report.failed", "input", r.InputPath, "err", err)
		return ""
	}
	uc.log.Debug("sort.report.saved", "id", id)
	return id
}
