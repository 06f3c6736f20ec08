package foam

import (
	"errors"
	"fmt"
)

// Errors returned by this package wrap one of these, so callers can
// distinguish them with [errors.Is].
var (
	ErrUnsupportedClass = errors.New("unsupported class")
	ErrUnterminated     = errors.New("unterminated object")
	ErrUnbalanced       = errors.New("unexpected }")
	ErrMalformedField   = errors.New("malformed field")
	ErrMalformedLine    = errors.New("malformed line")
	ErrShortHeader      = errors.New("input shorter than header")
	ErrUnencodable      = errors.New("cannot encode")
)

// A ParseError reports a failure at a specific (1-based) line of the input.
type ParseError struct {
	Lno int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d: %v", e.Lno, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func errorf(lno int, kind error, format string, args ...any) error {
	return &ParseError{Lno: lno, Err: fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))}
}
