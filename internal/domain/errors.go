package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrEmptyInput    = errors.New("empty input")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind tells callers what went wrong without exposing which adapter
// failed. The TUI and CLI pick their message from it.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindEmptyInput    ErrorKind = "empty_input"
	KindExecution     ErrorKind = "execution"
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindInvalidConfig:
		return ErrInvalidConfig
	case KindEmptyInput:
		return ErrEmptyInput
	case KindExecution:
		return ErrExecution
	default:
		return nil
	}
}

// OpError records the operation ("linefile.read", "config.load", ...) and
// the file involved. errors.Is matches both the wrapped cause and the
// sentinel of Kind, so an OpError of KindNotFound is also ErrNotFound.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string
	Err  error
}

// Error renders as "op path: kind: cause".
func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteByte(' ')
		b.WriteString(e.Path)
	}
	b.WriteString(": ")
	b.WriteString(string(e.Kind))
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of the first OpError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return kind != "" && KindOf(err) == kind
}
