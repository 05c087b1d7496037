package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "linefile.read",
		Kind: KindNotFound,
		Path: "in.txt",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindNotFound {
		t.Fatalf("expected kind %s", KindNotFound)
	}
}

func TestOpErrorMessage(t *testing.T) {
	err := &OpError{Op: "config.load", Kind: KindInvalidConfig, Path: "soro.yaml", Err: ErrInvalidConfig}
	msg := err.Error()
	if want := "config.load soro.yaml: invalid_config: invalid config"; msg != want {
		t.Fatalf("Error() = %q, want %q", msg, want)
	}

	noPath := &OpError{Op: "usecase.sort_file", Kind: KindEmptyInput}
	if got := noPath.Error(); got != "usecase.sort_file: empty_input" {
		t.Fatalf("unexpected message %q", got)
	}

	var nilErr *OpError
	if nilErr.Error() != "<nil>" {
		t.Fatalf("expected <nil> for nil receiver")
	}
	if nilErr.Unwrap() != nil {
		t.Fatalf("expected nil unwrap for nil receiver")
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "usecase.sort_file", Kind: KindEmptyInput, Err: ErrEmptyInput}
	wrapped := errors.Join(errors.New("outer"), err)

	if !IsKind(wrapped, KindEmptyInput) {
		t.Fatalf("expected IsKind to see through wrapping")
	}
	if IsKind(wrapped, KindNotFound) {
		t.Fatalf("unexpected kind match")
	}
	if IsKind(errors.New("plain"), KindExecution) {
		t.Fatalf("plain errors have no kind")
	}
}

func TestOpErrorMatchesKindSentinel(t *testing.T) {
	err := &OpError{Op: "linefile.read", Kind: KindNotFound, Path: "in.txt", Err: fs.ErrNotExist}

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected kind sentinel to match")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected cause to match")
	}
	if errors.Is(err, ErrExecution) {
		t.Fatalf("unexpected match with another kind")
	}

	unknown := &OpError{Op: "x", Kind: "other"}
	if errors.Is(unknown, ErrNotFound) {
		t.Fatalf("unknown kinds have no sentinel")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(fmt.Errorf("wrap: %w", &OpError{Kind: KindExecution})); got != KindExecution {
		t.Fatalf("expected execution, got %q", got)
	}
	if got := KindOf(errors.New("plain")); got != "" {
		t.Fatalf("expected empty kind, got %q", got)
	}
	if IsKind(errors.New("plain"), "") {
		t.Fatalf("empty kind must never match")
	}
}
