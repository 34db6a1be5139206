package runner

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/az-ai-labs/affixmorph/affix"
)

// ErrorKind is a coarse-grained categorization for runner errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindInvalidInput  ErrorKind = "invalid_input"
	KindIO            ErrorKind = "io"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // optional: grammar, dictionary or exceptions file
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is an *OpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

func opError(op, path string, err error) *OpError {
	return &OpError{Op: op, Kind: classify(err), Path: path, Err: err}
}

func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, affix.ErrFormat):
		return KindInvalidInput
	default:
		return KindIO
	}
}

func errUnpaired(dicts, affixes int) error {
	if dicts == 0 {
		return errors.New("no dictionary/affix pair configured")
	}
	return fmt.Errorf("counts of dictionary and affix files differ: %d, %d", dicts, affixes)
}
