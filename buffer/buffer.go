package buffer

import (
	"io"
	"os"
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/wippyai/arc-runtime/errors"
)

// Buffer is an owned, sentinel-terminated byte sequence. The backing slice
// always ends with a NUL byte; the logical length excludes it. A nil Buffer
// is the absent value: zero length, no bytes, and the failure signal of
// producing calls.
//
// Buffers are single-owner. Every Buffer returned by this package must be
// passed to Free exactly once; they are not tracked by allocation headers.
type Buffer []byte

// live counts buffers allocated and not yet freed, for leak accounting.
var live atomic.Int64

func alloc(size int) Buffer {
	live.Add(1)
	return make(Buffer, size)
}

// Len returns the buffer's logical length, excluding the sentinel.
// A nil buffer has length 0.
func (b Buffer) Len() int {
	if len(b) == 0 {
		return 0
	}
	return len(b) - 1
}

// ByteAt returns the byte value at index i, or -1 when i is outside
// [0, Len()). The sentinel is not addressable.
func (b Buffer) ByteAt(i int) int {
	if i < 0 || i >= b.Len() {
		return -1
	}
	return int(b[i])
}

// FromByte creates a one-byte buffer from a numeric code, clamped to the
// valid byte range.
func FromByte(code int) Buffer {
	if code < 0 {
		code = 0
	}
	if code > 255 {
		code = 255
	}
	b := alloc(2)
	b[0] = byte(code)
	return b
}

// FromString creates a buffer holding the bytes of s. This is the path a
// compiler backend emits for string literals.
func FromString(s string) Buffer {
	b := alloc(len(s) + 1)
	copy(b, s)
	return b
}

// Concat returns a fresh buffer holding a's bytes followed by b's. Nil
// inputs are treated as empty; neither input is mutated or consumed.
func Concat(a, b Buffer) Buffer {
	an, bn := a.Len(), b.Len()
	out := alloc(an + bn + 1)
	copy(out, a[:an])
	copy(out[an:], b[:bn])
	return out
}

// ReadFile returns a buffer holding the file's full contents. On any
// failure it returns a nil buffer and the error; a partially read file is
// never reported as success.
func ReadFile(path string) (Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.IO(errors.KindOpen, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.IO(errors.KindStat, path, err)
	}
	size := int(info.Size())

	b := alloc(size + 1)
	if _, err := io.ReadFull(f, b[:size]); err != nil {
		Free(b)
		return nil, errors.IO(errors.KindRead, path, err)
	}
	b[size] = 0
	return b, nil
}

// WriteFile overwrites the file at path with exactly b's logical bytes.
// Open, write, short-write, and close failures all surface as errors.
func WriteFile(path string, b Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.IO(errors.KindOpen, path, err)
	}

	n, err := f.Write(b[:b.Len()])
	if err != nil {
		return multierr.Append(errors.IO(errors.KindWrite, path, err), f.Close())
	}
	if n != b.Len() {
		return multierr.Append(errors.ShortWrite(path, n, b.Len()), f.Close())
	}

	if err := f.Close(); err != nil {
		return errors.IO(errors.KindClose, path, err)
	}
	return nil
}

// Free releases a buffer produced by this package. Nil is a no-op. Freeing
// the same buffer twice is a contract violation, not a detected error.
func Free(b Buffer) {
	if b == nil {
		return
	}
	live.Add(-1)
}

// Live returns the number of buffers allocated and not yet freed.
func Live() int {
	return int(live.Load())
}
