// Package errs classifies the failure modes named in the engine's error
// handling design: I/O, parsing, internal invariants, and step-bound
// exhaustion. Callers branch on Kind rather than matching error strings.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies which of the engine's four error categories an error
// belongs to.
type Kind int

const (
	// InputIO marks a file that could not be read.
	InputIO Kind = iota
	// ParseError marks a malformed formula.
	ParseError
	// InternalInvariant marks a pipeline stage that produced a shape a
	// later stage does not expect. It always indicates a bug.
	InternalInvariant
	// BoundReached marks a proof that exhausted its step budget without
	// deriving the empty clause. Non-fatal.
	BoundReached
)

func (k Kind) String() string {
	switch k {
	case InputIO:
		return "InputIO"
	case ParseError:
		return "ParseError"
	case InternalInvariant:
		return "InternalInvariant"
	case BoundReached:
		return "BoundReached"
	default:
		return "Unknown"
	}
}

// Error is a classified, positioned error. Line is 1-based and zero when
// not applicable (e.g. InputIO errors that precede any line processing).
type Error struct {
	Kind   Kind
	Line   int
	Offset string // offending substring, when relevant
	cause  error
}

func (e *Error) Error() string {
	switch {
	case e.Line > 0 && e.Offset != "":
		return fmt.Sprintf("%s: line %d: %q: %v", e.Kind, e.Line, e.Offset, e.cause)
	case e.Line > 0:
		return fmt.Sprintf("%s: line %d: %v", e.Kind, e.Line, e.cause)
	default:
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	}
}

func (e *Error) Unwrap() error { return e.cause }

// Fatal reports whether an error of this kind should abort the run. Only
// BoundReached is non-fatal (spec §7).
func (k Kind) Fatal() bool { return k != BoundReached }

// New wraps cause with errors.WithStack (for diagnostics) and classifies
// it as kind, with no positional context.
func New(kind Kind, cause error) *Error {
	return &Error{Kind: kind, cause: errors.WithStack(cause)}
}

// Newf builds a classified error from a format string.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return New(kind, errors.Errorf(format, args...))
}

// AtLine attaches line/offset context to a classified error.
func AtLine(kind Kind, line int, offset string, cause error) *Error {
	return &Error{Kind: kind, Line: line, Offset: offset, cause: errors.WithStack(cause)}
}

// As reports whether err (or something it wraps) is an *Error, and if so,
// returns it alongside true.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
