package configfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/soro/internal/domain"
	"github.com/aalvaropc/soro/internal/ports"
)

// ConfigFile is the name of the soro configuration file.
const ConfigFile = "soro.yaml"

// Lookup is the result of a search. Dir is where it started, Root the
// directory holding the config file or "" when there is none.
type Lookup struct {
	Dir  string
	Root string
}

func (l Lookup) Found() bool { return l.Root != "" }

// Finder searches for the config file from a directory or a file up to the
// filesystem root.
type Finder struct {
	ConfigFile string // defaults to "soro.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

// StartDir turns path into the absolute directory a search begins at. A
// file stands for its parent directory; a missing path is taken as a
// directory.
func StartDir(path string) (string, error) {
	if path == "" {
		return "", &domain.OpError{
			Op:   "configfinder.start",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("start path is empty"),
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfinder.start",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return filepath.Dir(abs), nil
	}
	return abs, nil
}

// Lookup walks upward from start. Not finding the file is not an error.
func (f *Finder) Lookup(start string) (Lookup, error) {
	dir, err := StartDir(start)
	if err != nil {
		return Lookup{}, err
	}

	name := f.ConfigFile
	if name == "" {
		name = ConfigFile
	}
	for cur := dir; ; cur = filepath.Dir(cur) {
		if info, err := os.Stat(filepath.Join(cur, name)); err == nil && !info.IsDir() {
			return Lookup{Dir: dir, Root: cur}, nil
		}
		if filepath.Dir(cur) == cur {
			return Lookup{Dir: dir}, nil
		}
	}
}

// FindRoot returns the directory holding the config file, or a KindNotFound
// error naming the start directory.
func (f *Finder) FindRoot(start string) (string, error) {
	l, err := f.Lookup(start)
	if err != nil {
		return "", err
	}
	if !l.Found() {
		return "", &domain.OpError{
			Op:   "configfinder.findroot",
			Kind: domain.KindNotFound,
			Path: l.Dir,
			Err:  domain.ErrNotFound,
		}
	}
	return l.Root, nil
}
