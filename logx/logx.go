// Package logx provides the injectable logging seam used for narrow-phase
// and solver diagnostics. It mirrors the teacher's pattern of optional,
// zero-value-safe collaborators (an *Events with no listeners is a no-op;
// a Logger with no backing writer is a no-op too).
package logx

import "log"

// Logger is satisfied by *log.Logger and by any test double that only
// needs to capture Printf-shaped calls.
type Logger interface {
	Printf(format string, args ...interface{})
}

type noop struct{}

func (noop) Printf(string, ...interface{}) {}

// Noop is a Logger that discards everything, used as the zero-value
// default so callers never need a nil check before logging.
var Noop Logger = noop{}

// Default returns a Logger backed by the standard library's log package.
func Default() Logger {
	return log.Default()
}
