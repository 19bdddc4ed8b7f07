package arcruntime

// Ref is an opaque reference to a reference-counted heap object.
// Ref 0 is reserved and always invalid; it plays the role of the null
// pointer in generated code.
type Ref uint32

// Finalizer runs against an object's payload when its last owner releases
// it, before the storage is reclaimed.
type Finalizer func(payload []byte)

// Heap tracks the live owners of every allocated object so storage can be
// reclaimed exactly when the last owner relinquishes it. This is the calling
// contract a compiler backend is emitted against.
type Heap interface {
	// Alloc creates a zeroed object of the given size with one owner.
	Alloc(size int) Ref

	// AllocBytes creates an object with one owner, copying p into its payload.
	AllocBytes(p []byte) Ref

	// Retain adds an owner and returns its argument unchanged, so generated
	// assignment expressions can pass through it. Ref 0 is a no-op.
	Retain(r Ref) Ref

	// Release removes an owner. The call that drops the count to zero runs
	// the finalizer and reclaims the object. Ref 0 is a no-op.
	Release(r Ref)

	// Bytes returns the object's payload, or nil for an invalid ref.
	Bytes(r Ref) []byte

	// SetFinalizer installs f to run when the object is reclaimed.
	SetFinalizer(r Ref, f Finalizer)

	// Len returns the number of live objects.
	Len() int
}

// Exiter terminates execution, or reports the requested status without
// terminating, depending on how it was constructed.
type Exiter interface {
	Exit(code int) int
}
