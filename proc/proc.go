package proc

import (
	"os"

	"go.uber.org/zap"

	arcruntime "github.com/wippyai/arc-runtime"
)

// Mode selects what Exit does with the requested status.
type Mode uint8

const (
	// Terminate ends the process with the given status. This is the mode
	// generated code runs under.
	Terminate Mode = iota

	// Report returns the status to the caller without terminating, so the
	// exit contract can be exercised from tests.
	Report
)

// Exiter terminates execution or reports the requested status, per its
// construction-time mode.
type Exiter struct {
	mode Mode
}

var _ arcruntime.Exiter = (*Exiter)(nil)

// New creates an Exiter with the given mode.
func New(mode Mode) *Exiter {
	return &Exiter{mode: mode}
}

// Exit ends the process with the given status code. In Report mode it
// returns the code instead; in Terminate mode it never returns.
func (e *Exiter) Exit(code int) int {
	Logger().Debug("exit requested",
		zap.Int("status", code),
		zap.Bool("terminate", e.mode == Terminate))

	if e.mode == Terminate {
		os.Exit(code)
	}
	return code
}
