package core

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is matched by every *MalformedInputError via errors.Is.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError reports a grid that could not be constructed from its
// input. Line and Col are 1-based; zero means the field does not apply.
type MalformedInputError struct {
	Line   int
	Col    int
	Reason string
}

func (e *MalformedInputError) Error() string {
	switch {
	case e.Line > 0 && e.Col > 0:
		return fmt.Sprintf("malformed input at line %d col %d: %s", e.Line, e.Col, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("malformed input at line %d: %s", e.Line, e.Reason)
	default:
		return "malformed input: " + e.Reason
	}
}

// Is lets errors.Is(err, ErrMalformedInput) match.
func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }
