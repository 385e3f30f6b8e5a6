package parser

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is matched by every *MalformedInputError.
var ErrMalformedInput = errors.New("parser: malformed input")

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("parser: invalid option supplied")

// MalformedInputError describes input that does not follow the record format.
type MalformedInputError struct {
	Line   int    // 1-based line number; 0 when the input ended early
	Text   string // offending line after whitespace trimming
	Reason string
	Err    error // underlying cause, if any
}

func (e *MalformedInputError) Error() string {
	msg := "parser: "
	if e.Line > 0 {
		msg += fmt.Sprintf("line %d: ", e.Line)
	}
	msg += e.Reason
	if e.Text != "" {
		msg += fmt.Sprintf(" (%q)", e.Text)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is ErrMalformedInput.
func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }

// Unwrap returns the underlying cause.
func (e *MalformedInputError) Unwrap() error { return e.Err }
