package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the runtime the error occurred
type Phase string

const (
	PhaseAlloc Phase = "alloc" // heap allocation and lifetime
	PhaseIO    Phase = "io"    // buffer file operations
	PhaseProc  Phase = "proc"  // process control
)

// Kind categorizes the error
type Kind string

const (
	KindOpen       Kind = "open"
	KindStat       Kind = "stat"
	KindRead       Kind = "read"
	KindWrite      Kind = "write"
	KindClose      Kind = "close"
	KindShortWrite Kind = "short_write"
	KindInvalidRef Kind = "invalid_ref"
)

// Error is the structured error type used throughout the runtime
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Path   string // file path for I/O errors
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Path != "" {
		b.WriteByte(' ')
		b.WriteString(e.Path)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// IO creates a file operation error
func IO(kind Kind, path string, cause error) *Error {
	return &Error{
		Phase: PhaseIO,
		Kind:  kind,
		Path:  path,
		Cause: cause,
	}
}

// ShortWrite creates an error for a write that stored fewer bytes than asked
func ShortWrite(path string, wrote, want int) *Error {
	return &Error{
		Phase:  PhaseIO,
		Kind:   KindShortWrite,
		Path:   path,
		Detail: fmt.Sprintf("wrote %d of %d bytes", wrote, want),
	}
}

// InvalidRef creates an invalid reference error for debug validation
func InvalidRef(op string, ref uint32) *Error {
	return &Error{
		Phase:  PhaseAlloc,
		Kind:   KindInvalidRef,
		Detail: fmt.Sprintf("%s of ref %d with no live object", op, ref),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
