// Package errors provides structured error types for the arc-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Recoverable failures are confined to file I/O; everything else
// in the runtime is a contract violation and never produces an error value.
//
// Use the convenience constructors:
//
//	err := errors.IO(errors.KindOpen, path, cause)
//	err := errors.ShortWrite(path, wrote, want)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
