package buffer

import (
	"bytes"
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/wippyai/arc-runtime/errors"
)

func TestBuffer_Len(t *testing.T) {
	var absent Buffer
	if absent.Len() != 0 {
		t.Fatal("nil buffer must have length 0")
	}

	b := FromString("hello")
	defer Free(b)
	if b.Len() != 5 {
		t.Fatalf("expected length 5, got %d", b.Len())
	}

	empty := FromString("")
	defer Free(empty)
	if empty.Len() != 0 {
		t.Fatalf("expected length 0, got %d", empty.Len())
	}
}

func TestBuffer_ByteAt(t *testing.T) {
	b := FromString("abc")
	defer Free(b)

	for i, want := range []int{'a', 'b', 'c'} {
		if got := b.ByteAt(i); got != want {
			t.Fatalf("ByteAt(%d) = %d, want %d", i, got, want)
		}
	}
	if b.ByteAt(3) != -1 {
		t.Fatal("index at logical length must return -1")
	}
	if b.ByteAt(100) != -1 {
		t.Fatal("index past logical length must return -1")
	}
	if b.ByteAt(-1) != -1 {
		t.Fatal("negative index must return -1")
	}

	var absent Buffer
	if absent.ByteAt(0) != -1 {
		t.Fatal("index into nil buffer must return -1")
	}
}

func TestFromByte_Clamping(t *testing.T) {
	tests := []struct {
		code int
		want byte
	}{
		{99, 'c'},
		{0, 0},
		{255, 255},
		{-5, 0},
		{300, 255},
	}
	for _, tt := range tests {
		b := FromByte(tt.code)
		if b.Len() != 1 {
			t.Fatalf("FromByte(%d) length %d, want 1", tt.code, b.Len())
		}
		if b.ByteAt(0) != int(tt.want) {
			t.Fatalf("FromByte(%d) = %d, want %d", tt.code, b.ByteAt(0), tt.want)
		}
		Free(b)
	}
}

func TestConcat_Identity(t *testing.T) {
	b := FromString("hello")
	defer Free(b)

	withNil := Concat(b, nil)
	if !bytes.Equal(withNil[:withNil.Len()], b[:b.Len()]) {
		t.Fatalf("Concat(b, nil) = %q, want %q", withNil, b)
	}
	Free(withNil)

	nilFirst := Concat(nil, b)
	if !bytes.Equal(nilFirst[:nilFirst.Len()], b[:b.Len()]) {
		t.Fatalf("Concat(nil, b) = %q, want %q", nilFirst, b)
	}
	Free(nilFirst)

	both := Concat(nil, nil)
	if both == nil || both.Len() != 0 {
		t.Fatal("Concat(nil, nil) must be a present, empty buffer")
	}
	Free(both)
}

func TestConcat_DoesNotMutateInputs(t *testing.T) {
	a := FromString("ab")
	b := FromString("cd")
	defer Free(a)
	defer Free(b)

	out := Concat(a, b)
	defer Free(out)

	if out.Len() != 4 || !bytes.Equal(out[:4], []byte("abcd")) {
		t.Fatalf("Concat = %q, want abcd", out[:out.Len()])
	}
	if !bytes.Equal(a[:a.Len()], []byte("ab")) || !bytes.Equal(b[:b.Len()], []byte("cd")) {
		t.Fatal("Concat mutated an input")
	}

	out[0] = 'X' // fresh storage: must not reach a
	if a.ByteAt(0) != 'a' {
		t.Fatal("Concat shares storage with an input")
	}
}

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.bin")

	// Embedded zero bytes inside the logical length must survive.
	zero := FromByte(0)
	xy := FromString("xy")
	src := Concat(zero, xy)
	Free(zero)
	Free(xy)
	defer Free(src)
	if src.Len() != 3 {
		t.Fatalf("source length %d, want 3", src.Len())
	}

	if err := WriteFile(path, src); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	defer Free(got)

	if got.Len() != src.Len() || !bytes.Equal(got[:got.Len()], src[:src.Len()]) {
		t.Fatalf("read back %v, want %v", got[:got.Len()], src[:src.Len()])
	}
}

func TestFile_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overwrite.txt")

	long := FromString("a longer first version")
	short := FromString("short")
	defer Free(long)
	defer Free(short)

	if err := WriteFile(path, long); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := WriteFile(path, short); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	defer Free(got)

	if got.Len() != 5 || !bytes.Equal(got[:5], []byte("short")) {
		t.Fatalf("read back %q, want short", got[:got.Len()])
	}
}

func TestReadFile_Missing(t *testing.T) {
	b, err := ReadFile(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if b != nil {
		t.Fatal("failure must return a nil buffer, never data")
	}

	var rtErr *errors.Error
	if !stderrors.As(err, &rtErr) {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if rtErr.Kind != errors.KindOpen {
		t.Fatalf("expected open error, got %s", rtErr.Kind)
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	b := FromString("content")
	defer Free(b)

	err := WriteFile(filepath.Join(t.TempDir(), "missing-dir", "f"), b)
	if err == nil {
		t.Fatal("expected error for unopenable path")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseIO, Kind: errors.KindOpen}) {
		t.Fatalf("expected io/open error, got %v", err)
	}
}

// The worked end-to-end scenario: write "ab", read it back, append 'c'.
func TestScenario_WriteReadAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.txt")

	ab := FromString("ab")
	if err := WriteFile(path, ab); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	Free(ab)

	read, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if read.Len() != 2 || read.ByteAt(0) != 'a' || read.ByteAt(1) != 'b' {
		t.Fatalf("read back %q with length %d", read[:read.Len()], read.Len())
	}

	c := FromByte(99)
	abc := Concat(read, c)
	if abc.Len() != 3 || !bytes.Equal(abc[:3], []byte("abc")) {
		t.Fatalf("concat = %q, want abc", abc[:abc.Len()])
	}

	Free(read)
	Free(c)
	Free(abc)
}

// Repeated alloc/free cycles across every producer must not leak.
func TestFree_LeakAccounting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leak.txt")
	base := Live()

	for i := 0; i < 100; i++ {
		a := FromString("left")
		b := FromByte(i)
		c := Concat(a, b)
		if err := WriteFile(path, c); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		d, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		Free(a)
		Free(b)
		Free(c)
		Free(d)
	}

	if got := Live(); got != base {
		t.Fatalf("leaked %d buffers over alloc/free cycles", got-base)
	}
}

func TestFree_NilNoOp(t *testing.T) {
	base := Live()
	Free(nil)
	if Live() != base {
		t.Fatal("Free(nil) must not change the live count")
	}
}
