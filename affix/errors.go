package affix

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat classifies every malformed-grammar failure.
	ErrFormat = errors.New("affix: bad grammar format")

	// ErrUnknownFlagMode is returned for a FLAG directive with an unknown argument.
	ErrUnknownFlagMode = errors.New("unknown flag mode")
)

// FormatError reports a malformed affix grammar. Line is 1-based; zero
// means the failure is not tied to a single line (e.g. a truncated block).
type FormatError struct {
	Line int
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := "affix: " + e.Msg
	if e.Line > 0 {
		base = fmt.Sprintf("affix: line %d: %s", e.Line, e.Msg)
	}
	if e.Err != nil {
		base += ": " + e.Err.Error()
	}
	return base
}

func (e *FormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is makes errors.Is(err, ErrFormat) hold for any *FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func formatErrorf(line int, err error, format string, args ...any) *FormatError {
	return &FormatError{Line: line, Msg: fmt.Sprintf(format, args...), Err: err}
}
