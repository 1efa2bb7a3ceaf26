package highsrun

import (
	"errors"
	"fmt"
)

// Sentinel errors for solver operations.
var (
	// ErrUnavailable indicates the solver cannot start
	// (executable not found on PATH or at the configured path).
	ErrUnavailable = errors.New("highsrun: solver unavailable")

	// ErrWaitTimeout indicates the solution file never satisfied the
	// completion predicate within the allowed wait. The solver process
	// may have crashed without producing output, or the wait was simply
	// too short for the model.
	ErrWaitTimeout = errors.New("highsrun: timed out waiting for solution file")

	// ErrIncompleteSolution indicates a structurally incomplete solution
	// file: a row for a known decision variable carried no value token.
	// HiGHS was likely interrupted while flushing the numeric body.
	// Wrapped by DecodeError; test with errors.Is.
	ErrIncompleteSolution = errors.New("highsrun: incomplete solution file")
)

// DecodeError describes a fatal structural problem in a solution file.
// It wraps the underlying cause to preserve the error chain — consumers
// can errors.Is against [ErrIncompleteSolution] or inspect the fields.
//
// A DecodeError on a file that passed completion detection is ambiguous:
// it may indicate a genuine solver anomaly, a completion-detection race
// (the marker appeared before the body finished flushing), or caller
// misconfiguration. The file format gives no way to distinguish these.
type DecodeError struct {
	// Symbol is the solution-file symbol on the offending row, if any.
	Symbol string

	// Line is the 1-based line number of the offending row, 0 if unknown.
	Line int

	// Content is the offending line, truncated to a bounded length.
	Content string

	// Err is the underlying cause.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("highsrun: decode line %d: symbol %q: %v", e.Line, e.Symbol, e.Err)
	}
	return fmt.Sprintf("highsrun: decode line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsIncomplete reports whether err stems from a structurally incomplete
// solution file. Convenience wrapper around errors.Is — equivalent to:
//
//	errors.Is(err, highsrun.ErrIncompleteSolution)
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncompleteSolution)
}
