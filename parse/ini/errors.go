package ini

import (
	"errors"
	"fmt"
)

// Error kinds, matchable via errors.Is.
var (
	ErrMalformedSection  = errors.New("malformed section header")
	ErrInvalidKey        = errors.New("invalid key")
	ErrUnparsableValue   = errors.New("unparsable value")
	ErrCapacityExceeded  = errors.New("entry capacity exceeded")
	ErrArraySizeExceeded = errors.New("array size exceeded")
	ErrInvalidSyntax     = errors.New("invalid syntax")
	ErrValidation        = errors.New("validation failed")
)

// ParseError qualifies an error kind with a message and, when the error
// occurred while consuming input, the 1-based line number.
type ParseError struct {
	Kind error
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("ini:%d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("ini: %s", e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Kind }

func perr(kind error, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
