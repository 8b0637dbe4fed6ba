package buffer

import (
	"go.uber.org/zap"

	"github.com/qborsh/borsh-go/errors"
)

const (
	// DefaultCapacity is used when New is called with a zero capacity.
	DefaultCapacity = 128

	// MaxCapacity bounds a single buffer's storage (1 GiB). A grow request
	// beyond it poisons the buffer instead of attempting the allocation;
	// heap exhaustion itself is not observable in Go, so this guard is the
	// allocation-failure arm of the error taxonomy.
	MaxCapacity = 1 << 30

	// Below growthKnee capacity doubles; at or above it grows by 1.5x.
	growthKnee = 1024
)

// Buffer is a growable byte buffer with independent write and read positions
// and a sticky failure flag.
type Buffer struct {
	data   []byte // len(data) == capacity; [0:length] is the valid region
	length int
	cursor int
	err    *errors.Error
}

// New creates a buffer with the given initial capacity. Zero (or negative)
// selects DefaultCapacity. A request beyond MaxCapacity returns an
// already-poisoned buffer, never a partially usable one.
func New(initialCapacity int) *Buffer {
	if initialCapacity <= 0 {
		initialCapacity = DefaultCapacity
	}
	b := &Buffer{}
	if initialCapacity > MaxCapacity {
		b.poison(errors.Allocation(initialCapacity, MaxCapacity))
		return b
	}
	b.data = make([]byte, initialCapacity)
	return b
}

// poison records the first failure and freezes the buffer. Diagnostic detail
// is reported exactly once, here.
func (b *Buffer) poison(e *errors.Error) {
	if b.err != nil {
		return
	}
	b.err = e
	Logger().Debug("buffer poisoned",
		zap.Error(e),
		zap.Int("length", b.length),
		zap.Int("cursor", b.cursor),
		zap.Int("capacity", len(b.data)),
	)
}

// Fail poisons the buffer with a codec-layer error. Codec and binding layers
// use it to report failures that the buffer itself cannot detect, such as a
// collection length overflowing the u32 prefix. A no-op if already poisoned.
func (b *Buffer) Fail(e *errors.Error) {
	b.poison(e)
}

// grow raises capacity to at least need. Reports false after poisoning on
// sizing overflow or a request beyond MaxCapacity.
func (b *Buffer) grow(need int) bool {
	capacity := len(b.data)
	var next int
	if capacity < growthKnee {
		next = capacity * 2
	} else {
		next = capacity + capacity/2
	}
	if next < need {
		next = need
	}
	if next < capacity {
		b.poison(errors.SizeOverflow(b.length, need-b.length))
		return false
	}
	if next > MaxCapacity {
		if need > MaxCapacity {
			b.poison(errors.Allocation(need, MaxCapacity))
			return false
		}
		next = MaxCapacity
	}
	grown := make([]byte, next)
	copy(grown, b.data[:b.length])
	b.data = grown
	return true
}

// reserve appends n bytes to the valid region and returns the destination
// for the caller to fill. Nil when poisoned, either before or by this call.
func (b *Buffer) reserve(n int) []byte {
	if b.err != nil {
		return nil
	}
	need := b.length + n
	if need < b.length {
		b.poison(errors.SizeOverflow(b.length, n))
		return nil
	}
	if need > len(b.data) {
		if !b.grow(need) {
			return nil
		}
	}
	dest := b.data[b.length:need]
	b.length = need
	return dest
}

// Write appends p at the write position. A no-op when poisoned.
func (b *Buffer) Write(p []byte) {
	dest := b.reserve(len(p))
	if dest == nil {
		return
	}
	copy(dest, p)
}

// Next returns the next n bytes at the read cursor and advances it. The
// returned slice aliases the buffer's storage and is valid until the next
// write or reset. Reading past the valid length poisons the buffer and
// returns nil - truncation is signaled, adjacent memory is never exposed.
func (b *Buffer) Next(n int) []byte {
	if b.err != nil {
		return nil
	}
	if n < 0 {
		b.poison(errors.InvalidData(errors.PhaseDecode, "negative read size"))
		return nil
	}
	end := b.cursor + n
	if end < b.cursor || end > b.length {
		b.poison(errors.Truncated(b.cursor, n, b.length))
		return nil
	}
	p := b.data[b.cursor:end]
	b.cursor = end
	return p
}

// ReadBytes is the copying form of Next: the returned slice is owned by the
// caller and survives later buffer mutation.
func (b *Buffer) ReadBytes(n int) []byte {
	p := b.Next(n)
	if p == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, p)
	return out
}

// ResetCursor rewinds the read cursor to the start without touching written
// data. A no-op when poisoned.
func (b *Buffer) ResetCursor() {
	if b.err != nil {
		return
	}
	b.cursor = 0
}

// Reset discards written data and rewinds the cursor, keeping the allocated
// storage for reuse. A no-op when poisoned.
func (b *Buffer) Reset() {
	if b.err != nil {
		return
	}
	b.length = 0
	b.cursor = 0
}

// Len reports the number of valid bytes written.
func (b *Buffer) Len() int { return b.length }

// Cap reports the allocated storage size.
func (b *Buffer) Cap() int { return len(b.data) }

// Cursor reports the current read position.
func (b *Buffer) Cursor() int { return b.cursor }

// Remaining reports the unread byte count between cursor and length.
func (b *Buffer) Remaining() int { return b.length - b.cursor }

// Bytes returns the valid region. The slice aliases the buffer's storage;
// it is invalidated by the next write or reset.
func (b *Buffer) Bytes() []byte { return b.data[:b.length] }

// Raw returns the full allocated storage, including unused capacity, for
// zero-copy interop. Same aliasing rules as Bytes.
func (b *Buffer) Raw() []byte { return b.data }

// Poisoned reports whether the buffer has entered the sticky failure state.
func (b *Buffer) Poisoned() bool { return b.err != nil }

// Err returns the first recorded failure, or nil while healthy.
func (b *Buffer) Err() error {
	if b.err == nil {
		return nil
	}
	return b.err
}
