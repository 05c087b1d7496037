// Package logger owns soro's process-wide structured logger. Until Setup
// succeeds every record is discarded, so commands can log unconditionally.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	defaultDir = ".soro/logs"
	fileName   = "soro.log"
)

type Config struct {
	Root  string
	Dir   string // relative to Root unless absolute; defaults to .soro/logs
	Debug bool
}

func (c Config) path() string {
	root := c.Root
	if root == "" {
		root = "."
	}
	dir := c.Dir
	if dir == "" {
		dir = defaultDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return filepath.Join(filepath.Clean(dir), fileName)
}

type state struct {
	log  *slog.Logger
	file *os.File
	path string
}

var (
	mu  sync.RWMutex
	cur = discard()
)

func discard() state {
	return state{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// Setup opens <root>/<dir>/soro.log for appending and installs a JSON
// logger writing to it. The returned func closes the file and goes back to
// discarding. On error the logger keeps discarding.
func Setup(cfg Config) (func() error, error) {
	path := cfg.path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		reset()
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, err
	}

	l := slog.New(newHandler(f, cfg.Debug))

	mu.Lock()
	cur = state{log: l, file: f, path: path}
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug, "pid", os.Getpid())

	return func() error {
		mu.Lock()
		defer mu.Unlock()
		if cur.file == f {
			cur = discard()
		}
		return f.Close()
	}, nil
}

// newHandler writes UTC RFC3339Nano timestamps; debug adds source positions.
func newHandler(w io.Writer, debug bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	opts.ReplaceAttr = func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
			a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
		}
		return a
	}
	return slog.NewJSONHandler(w, opts)
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	cur = discard()
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return cur.log
}

// For returns the current logger tagged with component.
func For(component string) *slog.Logger {
	return L().With("component", component)
}

// Path is the active log file, or "" while discarding.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.path
}

func Ready() bool {
	mu.RLock()
	defer mu.RUnlock()
	return cur.file != nil
}
