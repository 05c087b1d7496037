package reportstore

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/soro/internal/domain"
	"github.com/aalvaropc/soro/internal/ports"
)

const (
	defaultReportsDir = ".soro/reports"
	indexFile         = "index.jsonl"
	maxNameTries      = 1000
)

// Entry is one line of the history index.
type Entry struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Algorithm string    `json:"algorithm"`
	Count     int       `json:"count"`
	ElapsedMS float64   `json:"elapsed_ms"`
	Input     string    `json:"input"`
	SortedAt  time.Time `json:"sorted_at"`
}

type JSONStore struct {
	rootDir    string
	dirName    string
	writeIndex bool
	now        func() time.Time
}

type Option func(*JSONStore)

// WithIndex toggles the JSONL index (<dir>/index.jsonl). On by default.
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) {
		if now != nil {
			s.now = now
		}
	}
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Reports.Dir
	if strings.TrimSpace(dir) == "" {
		dir = defaultReportsDir
	}

	s := &JSONStore{
		rootDir:    root,
		dirName:    dir,
		writeIndex: true,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

func (s *JSONStore) dir() string {
	if filepath.IsAbs(s.dirName) {
		return s.dirName
	}
	return filepath.Join(s.rootDir, s.dirName)
}

// SaveReport writes r as <dir>/<timestamp>_<input>.json and returns its id.
// Reports stamped with the same millisecond get a -2, -3, ... suffix.
func (s *JSONStore) SaveReport(r domain.SortReport) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	if r.SortedAt.IsZero() {
		r.SortedAt = s.now()
	}
	r.SortedAt = r.SortedAt.UTC()

	slug := slugify(strings.TrimSuffix(filepath.Base(r.InputPath), filepath.Ext(r.InputPath)))
	if slug == "" {
		slug = "sort"
	}

	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	id, err := claimName(dir, r.SortedAt.Format("20060102T150405.000Z")+"_"+slug)
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}
	filename := id + ".json"
	path := filepath.Join(dir, filename)

	if err := writeAtomic(path, b); err != nil {
		_ = os.Remove(path)
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		if err := s.appendIndex(dir, id, filename, r); err != nil {
			return id, &domain.OpError{
				Op:   "reportstore.index",
				Kind: domain.KindExecution,
				Path: filepath.Join(dir, indexFile),
				Err:  err,
			}
		}
	}

	return id, nil
}

// claimName creates an empty <base>.json, or <base>-2.json, <base>-3.json ...
// when that is taken, and returns the id it got.
func claimName(dir, base string) (string, error) {
	for n := 1; n <= maxNameTries; n++ {
		id := base
		if n > 1 {
			id = fmt.Sprintf("%s-%d", base, n)
		}
		f, err := os.OpenFile(filepath.Join(dir, id+".json"), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		return id, f.Close()
	}
	return "", fmt.Errorf("no free report name for %s after %d tries", base, maxNameTries)
}

// writeAtomic replaces path with b through a temp file in the same directory.
func writeAtomic(path string, b []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func (s *JSONStore) appendIndex(dir, id, filename string, r domain.SortReport) error {
	line, err := json.Marshal(Entry{
		ID:        id,
		File:      filename,
		Algorithm: r.Algorithm,
		Count:     r.Count,
		ElapsedMS: r.ElapsedMS(),
		Input:     r.InputPath,
		SortedAt:  r.SortedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// List returns the most recent index entries, newest first. limit <= 0
// returns all of them. A missing index is an empty history.
func (s *JSONStore) List(limit int) ([]Entry, error) {
	path := filepath.Join(s.dir(), indexFile)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, &domain.OpError{
			Op:   "reportstore.list",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			return nil, &domain.OpError{
				Op:   "reportstore.list",
				Kind: domain.KindExecution,
				Path: path,
				Err:  fmt.Errorf("line %d: %w", n, err),
			}
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "reportstore.list",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// newest first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
