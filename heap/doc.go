// Package heap implements allocation headers and the retain/release protocol.
//
// Every allocation carries a header holding an atomic owner count,
// initialized to 1. Generated code calls Retain on every additional binding
// to an object and Release on every binding leaving scope; the Release that
// drops the count to zero runs the object's finalizer and reclaims its slot.
//
// # Calling Contract
//
//	h := heap.New()
//	ref := h.Alloc(16)      // one owner
//	ref2 := h.Retain(ref)   // two owners; ref2 == ref
//	h.Release(ref)          // one owner
//	h.Release(ref2)         // zero owners: finalizer runs, slot reclaimed
//
// Ref 0 is the null reference: Retain and Release accept it as a no-op so
// generated code can retain/release optional bindings unconditionally.
//
// # Preconditions
//
// Retain and Release require a ref backed by a live object (count >= 1).
// Calling them on a reclaimed ref is a contract violation, not a recoverable
// error; the emitting compiler is trusted to satisfy this and the runtime
// does not validate it. SetDebug(true) logs such calls during development.
//
// # Memory Ordering
//
// Increments carry no ordering obligation of their own: any caller holding a
// valid reference guarantees the object is not concurrently destroyed. The
// decrement that reaches zero must happen-after all other owners' payload
// accesses; sync/atomic's sequentially consistent operations provide this.
package heap
