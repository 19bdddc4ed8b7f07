// Package arcruntime is the native support layer underlying compiled code:
// heap object lifetime tracking, owned byte buffers, and process termination.
//
// A compiler backend emits calls against this library for everything its
// target language cannot express itself. The core is the reference-counted
// object lifetime model: every heap allocation carries an allocation header
// holding an atomic owner count, and generated code brackets pointer copies
// and scope exits with retain/release calls. The remaining surface is a set
// of byte-buffer utilities (file I/O, concatenation, length/index queries)
// and a configurable process-exit primitive.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	arcruntime/     Root package with the Ref type and core Heap contract
//	├── heap/       Allocation headers and the retain/release protocol
//	├── buffer/     Owned byte buffers: file I/O, concat, length/index
//	├── proc/       Process exit, terminating or reporting per configuration
//	└── errors/     Structured error types
//
// # Quick Start
//
// Allocate an object, share it, and let the last release reclaim it:
//
//	h := heap.New()
//	ref := h.AllocBytes([]byte("payload"))
//	other := h.Retain(ref) // second owner; other == ref
//	h.Release(ref)
//	h.Release(other)       // count hits zero, storage reclaimed
//
// Round-trip a file through owned buffers:
//
//	b, err := buffer.ReadFile("in.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer buffer.Free(b)
//	if err := buffer.WriteFile("out.txt", b); err != nil {
//	    log.Fatal(err)
//	}
//
// # Ownership Model
//
// Allocation hands the caller one ownership unit (count = 1). Retain adds an
// owner, release removes one, and the release observing the one-to-zero
// transition runs the object's finalizer and reclaims its storage, exactly
// once. Ref 0 is the null reference; retain and release treat it as a no-op.
//
// Buffers produced by the buffer package are single-owner and are not yet
// tracked by allocation headers. Handing one to a reference-counted object
// means copying it behind a header (heap.AllocBytes), never sharing the
// backing storage.
//
// # Trust Boundary
//
// Retaining or releasing a reference that is not backed by a live object,
// and freeing a buffer twice, are contract violations: the emitting compiler
// guarantees callers never do this, and the runtime performs no defensive
// validation. heap.SetDebug enables logging of invalid-ref calls for
// development builds without changing the production contract.
//
// # Thread Safety
//
// Heap is safe for concurrent use; an object's owner count may be mutated
// from any goroutine holding a valid reference. Buffers are never shared
// across goroutines by the runtime itself.
package arcruntime
