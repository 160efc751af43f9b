// Package errs defines the five error kinds of the toolkit's error model
// (spec.md §7) as a small typed wrapper over github.com/cockroachdb/errors,
// so callers can errors.Is/errors.As against a Kind while the wrapped
// cause and stack trace survive for the lifecycle logs in internal/xlog.
package errs

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Kind enumerates the error kinds named in spec.md §7. No sixth kind is
// introduced by this implementation.
type Kind int

const (
	// InvalidParameter: unknown curve id, zero element inverted, bit
	// index out of range, shift amount >= field width.
	InvalidParameter Kind = iota + 1
	// PrecisionExceeded: caller requested a field/polynomial size beyond
	// what this build supports.
	PrecisionExceeded
	// OutOfMemory: dynamic scratch-vector acquisition failed.
	OutOfMemory
	// ReadShort: the RNG collaborator could not produce the requested
	// number of bytes.
	ReadShort
	// BufferTooSmall: caller-supplied output buffer is smaller than the
	// formatted result.
	BufferTooSmall
)

func (k Kind) String() string {
	switch k {
	case InvalidParameter:
		return "invalid-parameter"
	case PrecisionExceeded:
		return "precision-exceeded"
	case OutOfMemory:
		return "out-of-memory"
	case ReadShort:
		return "read-short"
	case BufferTooSmall:
		return "buffer-too-small"
	default:
		return "unknown"
	}
}

// Error is the single error type surfaced to callers, carrying a Kind, the
// operation that failed, and an optional wrapped cause.
type Error struct {
	Kind  Kind
	Op    string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Is lets errors.Is(err, SomeKind) style checks work through a Kind sentinel
// produced by New.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind && (other.Op == "" || other.Op == e.Op)
}

// New builds an Error of the given kind for operation op, wrapping cause
// (which may be nil) with a stack trace via cockroachdb/errors.
func New(kind Kind, op string, cause error) *Error {
	var wrapped error
	if cause != nil {
		wrapped = errors.Wrapf(cause, "%s", op)
	}
	return &Error{Kind: kind, Op: op, cause: wrapped}
}

// Of returns a zero-cause Error sentinel for the given kind, suitable for
// errors.Is(err, errs.Of(errs.InvalidParameter)) checks.
func Of(kind Kind) *Error {
	return &Error{Kind: kind}
}
