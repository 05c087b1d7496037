package fsworkspace

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/soro/internal/domain"
	"github.com/aalvaropc/soro/internal/infra/configfinder"
	"github.com/aalvaropc/soro/internal/ports"
)

//go:embed templates/soro.yaml
var configTemplate []byte

const gitignoreHeader = "# soro"

// gitignoreEntries keeps logs, sort history and interrupted atomic writes
// out of version control.
var gitignoreEntries = []string{".soro/", "*.tmp"}

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init scaffolds root: the default log directory, .gitignore entries and a
// soro.yaml from the embedded template. An existing soro.yaml is kept unless
// force is set.
func (i *Initializer) Init(root string, force bool) error {
	root = filepath.Clean(root)

	logs := filepath.Join(root, filepath.FromSlash(domain.DefaultConfig().Logs.Dir))
	if err := os.MkdirAll(logs, 0o755); err != nil {
		return &domain.OpError{
			Op:   "fsworkspace.mkdir",
			Kind: domain.KindExecution,
			Path: logs,
			Err:  err,
		}
	}

	if err := ensureGitignore(root); err != nil {
		return &domain.OpError{
			Op:   "fsworkspace.gitignore",
			Kind: domain.KindExecution,
			Path: filepath.Join(root, ".gitignore"),
			Err:  err,
		}
	}

	dst := filepath.Join(root, configfinder.ConfigFile)
	if err := writeTemplate(dst, force); err != nil {
		return &domain.OpError{
			Op:   "fsworkspace.write",
			Kind: domain.KindExecution,
			Path: dst,
			Err:  err,
		}
	}
	return nil
}

func writeTemplate(dst string, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(dst, flags, 0o644)
	if err != nil {
		if !force && errors.Is(err, fs.ErrExist) {
			return nil
		}
		return err
	}
	if _, err := f.Write(configTemplate); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func ensureGitignore(root string) error {
	path := filepath.Join(root, ".gitignore")

	b, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	out, changed := mergeGitignore(string(b))
	if !changed {
		return nil
	}
	return os.WriteFile(path, []byte(out), 0o644)
}

// mergeGitignore appends the soro block entries missing from existing.
// Lines already present anywhere in the file are not repeated.
func mergeGitignore(existing string) (string, bool) {
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			present[l] = true
		}
	}

	var missing []string
	for _, e := range gitignoreEntries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return existing, false
	}

	var b strings.Builder
	if existing != "" {
		b.WriteString(existing)
		if !strings.HasSuffix(existing, "\n") {
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	if !present[gitignoreHeader] {
		b.WriteString(gitignoreHeader + "\n")
	}
	for _, e := range missing {
		b.WriteString(e + "\n")
	}
	return b.String(), true
}
