package linefile

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/soro/internal/domain"
)

// WriteLines writes lines to path, each followed by "\n", replacing any
// existing file. The content goes to a uniquely named temp file in the same
// directory and is renamed into place. When path is a symlink its target is
// replaced and the link stays.
func WriteLines(path string, lines []string) error {
	target, mode, err := resolveTarget(path)
	if err != nil {
		return &domain.OpError{
			Op:   "linefile.write",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	f, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return &domain.OpError{
			Op:   "linefile.write",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	tmp := f.Name()

	if err := f.Chmod(mode); err != nil {
		return abortWrite(f, tmp, path, err)
	}
	w := bufio.NewWriter(f)
	for _, l := range lines {
		if _, err := w.WriteString(l); err != nil {
			return abortWrite(f, tmp, path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return abortWrite(f, tmp, path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return abortWrite(f, tmp, path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "linefile.write",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "linefile.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// resolveTarget follows symlinks at path and returns the file to replace
// along with the permissions the new file should carry.
func resolveTarget(path string) (string, fs.FileMode, error) {
	target, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		// New file, or a dangling link; the rename below reports a missing dir.
		return path, 0o644, nil
	}
	if err != nil {
		return "", 0, err
	}
	info, err := os.Stat(target)
	if err != nil {
		return "", 0, err
	}
	if info.IsDir() {
		return "", 0, errors.New("is a directory")
	}
	return target, info.Mode().Perm(), nil
}

func abortWrite(f *os.File, tmp, path string, err error) error {
	_ = f.Close()
	_ = os.Remove(tmp)
	return &domain.OpError{
		Op:   "linefile.write",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}
