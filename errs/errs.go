// Package errs defines the error-kind taxonomy used across the module:
// shape construction failures, narrow-phase numerical failures, and
// stale-handle lookups.
package errs

import "fmt"

// Kind classifies an error into one of the categories the world loop and
// its callers need to branch on.
type Kind int

const (
	// InvalidShape marks a shape that failed validation at construction
	// time (degenerate geometry, non-convex point set, zero extents).
	InvalidShape Kind = iota
	// NumericalFailure marks a narrow-phase or solver routine that could
	// not converge within its iteration cap.
	NumericalFailure
	// IdNotFound marks a lookup against a handle that no longer resolves
	// to a live body.
	IdNotFound
)

func (k Kind) String() string {
	switch k {
	case InvalidShape:
		return "InvalidShape"
	case NumericalFailure:
		return "NumericalFailure"
	case IdNotFound:
		return "IdNotFound"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type carrying a Kind plus context.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New builds an *Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Is reports whether err is an *Error of the given kind, for use with
// errors.Is-style checks.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
