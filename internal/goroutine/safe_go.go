package goroutine

import (
	"runtime/debug"
)

// Logger is the minimal logging surface needed to report panics.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// RecoveryHandler runs fire-and-forget goroutines with panic recovery.
// Used for best-effort notifications that must never take down a handler.
type RecoveryHandler struct {
	logger Logger
}

// NewRecoveryHandler creates a handler that reports panics to the given logger.
func NewRecoveryHandler(logger Logger) *RecoveryHandler {
	return &RecoveryHandler{logger: logger}
}

// SafeGo starts fn in a goroutine; a panic is logged and swallowed.
func (rh *RecoveryHandler) SafeGo(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				rh.logger.Errorf("panic in goroutine: %v\nstack trace:\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}
