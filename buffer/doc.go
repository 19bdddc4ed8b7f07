// Package buffer implements the runtime's owned byte buffers: whole-file
// read and write, concatenation, length and index queries, and single-byte
// construction.
//
// Every producing call returns a fresh, unshared, sentinel-terminated
// buffer whose ownership transfers to the caller. Free is the one
// deallocation entry point; each buffer goes through it exactly once.
// Failure is always a nil buffer plus an error, never partial data.
//
// Buffers are not yet tracked by allocation headers. Boxing one into a
// reference-counted object means copying it behind a header
// (heap.AllocBytes), never sharing the backing slice.
package buffer
