package linefile

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/aalvaropc/soro/internal/domain"
	"github.com/aalvaropc/soro/internal/ports"
)

const maxLineBytes = 16 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Store reads and writes plain text files, one line per element.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

var (
	_ ports.LineReader = (*Store)(nil)
	_ ports.LineWriter = (*Store)(nil)
)

func (s *Store) ReadLines(path string) ([]string, error) {
	return ReadLines(path)
}

func (s *Store) WriteLines(path string, lines []string) error {
	return WriteLines(path, lines)
}

// ReadLines returns the lines of the file at path. "\n", "\r\n" and a lone
// "\r" each terminate a line, a final terminator does not add an empty line,
// and a leading UTF-8 byte order mark is dropped.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "linefile.read",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	lines, err := scanLines(f)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "linefile.read",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return lines, nil
}

func scanLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	sc.Split(scanAnyLine)

	lines := []string{}
	first := true
	for sc.Scan() {
		b := sc.Bytes()
		if first {
			b = bytes.TrimPrefix(b, utf8BOM)
			first = false
		}
		lines = append(lines, string(b))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// scanAnyLine is bufio.ScanLines extended to old Mac "\r" endings.
func scanAnyLine(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Trailing "\r": wait to see whether "\n" follows.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
