package heap

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	arcruntime "github.com/wippyai/arc-runtime"
	"github.com/wippyai/arc-runtime/errors"
)

// object is one heap slot: the allocation header (owner count) followed,
// logically, by the payload it tracks.
type object struct {
	owners  atomic.Int32
	payload []byte
	fin     arcruntime.Finalizer
}

// Heap implements the reference-counted object lifetime model. Slots are
// addressed by Ref; Ref 0 is reserved invalid.
//
// Owner counts are mutated atomically without holding the slot lock, so
// retain and release from any number of goroutines serialize only on the
// count itself. Go's atomic operations are sequentially consistent, which
// covers the required pairing: the decrement that reaches zero happens-after
// every other owner's prior payload accesses, so the finalizer never races
// an in-flight read.
type Heap struct {
	entries  []*object
	freeList []arcruntime.Ref
	mu       sync.RWMutex
}

// New creates an empty heap.
func New() *Heap {
	return &Heap{
		entries:  make([]*object, 0, 64),
		freeList: make([]arcruntime.Ref, 0, 16),
	}
}

var _ arcruntime.Heap = (*Heap)(nil)

// Alloc creates a zeroed object of the given size with one owner.
func (h *Heap) Alloc(size int) arcruntime.Ref {
	if size < 0 {
		size = 0
	}
	o := &object{payload: make([]byte, size)}
	o.owners.Store(1)
	return h.insert(o)
}

// AllocBytes creates an object with one owner, copying p into its payload.
func (h *Heap) AllocBytes(p []byte) arcruntime.Ref {
	o := &object{payload: make([]byte, len(p))}
	copy(o.payload, p)
	o.owners.Store(1)
	return h.insert(o)
}

func (h *Heap) insert(o *object) arcruntime.Ref {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n := len(h.freeList); n > 0 {
		ref := h.freeList[n-1]
		h.freeList = h.freeList[:n-1]
		h.entries[ref-1] = o
		return ref
	}
	h.entries = append(h.entries, o)
	return arcruntime.Ref(len(h.entries))
}

// Retain adds an owner to the object and returns the ref unchanged, so
// generated assignment expressions can pass through it. Ref 0 is a no-op.
// The caller must hold a valid reference, which guarantees the object is
// not concurrently destroyed.
func (h *Heap) Retain(ref arcruntime.Ref) arcruntime.Ref {
	if ref == 0 {
		return 0
	}
	o := h.lookup(ref)
	if o == nil {
		if debug.Load() {
			Logger().Warn("retain of invalid ref",
				zap.Uint32("ref", uint32(ref)),
				zap.Error(errors.InvalidRef("retain", uint32(ref))))
		}
		return ref
	}
	o.owners.Add(1)
	return ref
}

// Release removes one owner from the object. The call observing the count
// drop to zero runs the finalizer and reclaims the slot, exactly once.
// Ref 0 is a no-op.
func (h *Heap) Release(ref arcruntime.Ref) {
	if ref == 0 {
		return
	}
	o := h.lookup(ref)
	if o == nil {
		if debug.Load() {
			Logger().Warn("release of invalid ref",
				zap.Uint32("ref", uint32(ref)),
				zap.Error(errors.InvalidRef("release", uint32(ref))))
		}
		return
	}
	if o.owners.Add(-1) != 0 {
		return
	}

	// Last owner is gone; this goroutine reclaims the object.
	if o.fin != nil {
		o.fin(o.payload)
	}

	h.mu.Lock()
	idx := int(ref) - 1
	if idx < len(h.entries) && h.entries[idx] == o {
		h.entries[idx] = nil
		h.freeList = append(h.freeList, ref)
	}
	h.mu.Unlock()
}

// Bytes returns the object's payload, or nil for an invalid ref.
func (h *Heap) Bytes(ref arcruntime.Ref) []byte {
	o := h.lookup(ref)
	if o == nil {
		return nil
	}
	return o.payload
}

// SetFinalizer installs f to run when the object's last owner releases it.
// Install before the ref is shared across goroutines.
func (h *Heap) SetFinalizer(ref arcruntime.Ref, f arcruntime.Finalizer) {
	o := h.lookup(ref)
	if o == nil {
		return
	}
	o.fin = f
}

// Refs returns the object's current owner count, or 0 for an invalid ref.
// The value is a snapshot; under concurrent mutation it is stale on arrival.
func (h *Heap) Refs(ref arcruntime.Ref) int32 {
	o := h.lookup(ref)
	if o == nil {
		return 0
	}
	return o.owners.Load()
}

// Len returns the number of live objects.
func (h *Heap) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries) - len(h.freeList)
}

func (h *Heap) lookup(ref arcruntime.Ref) *object {
	if ref == 0 {
		return nil
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	idx := int(ref) - 1
	if idx >= len(h.entries) {
		return nil
	}
	return h.entries[idx]
}
