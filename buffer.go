package bytebuf

import "fmt"

const (
	// DefaultCapacity is the storage size given to buffers allocated
	// without an explicit capacity.
	DefaultCapacity = 64

	// growthFactor is the multiplier applied to capacity on each
	// doubling step during growth.
	growthFactor = 2
)

// End is the Subarray sentinel meaning "no end bound": the slice extends
// to the end of the buffer. Any negative end is treated the same way.
//
// Unlike APIs that overload a literal 0 for this purpose, an end of 0
// here is a genuinely empty range, so Subarray(start, 0) never aliases
// "to the end".
const End = -1

// Buffer is a growable, bounds-checked byte buffer. It tracks used
// length separately from allocated capacity and exclusively owns its
// storage. The zero value is not usable; construct with Alloc or From.
//
// A Buffer is not safe for concurrent mutation. Derived buffers own
// independent storage and may cross goroutines freely.
type Buffer struct {
	storage  []byte // allocated storage; len(storage) is the capacity
	length   int    // bytes currently in use
	released bool
}

// valid reports whether the buffer can be operated on at all.
func (b *Buffer) valid() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}
	if b.released {
		return ErrReleased
	}
	return nil
}

// Alloc returns a new empty buffer with the given capacity. A capacity
// of zero selects DefaultCapacity. A negative capacity fails with
// ErrAllocation.
func Alloc(capacity int) (*Buffer, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrAllocation, capacity)
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	b := &Buffer{storage: make([]byte, capacity)}
	emitAlloc(capacity, 0)
	return b, nil
}

// From returns a new buffer holding an independent copy of src. A nil
// or empty src yields a default-capacity empty buffer; this is a defined
// no-error case, not a failure.
func From(src []byte) *Buffer {
	if len(src) == 0 {
		emitAlloc(DefaultCapacity, 0)
		return &Buffer{storage: make([]byte, DefaultCapacity)}
	}

	storage := make([]byte, len(src))
	copy(storage, src)

	b := &Buffer{storage: storage, length: len(src)}
	emitAlloc(len(src), len(src))
	return b
}

// Len returns the number of bytes currently in use.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.length
}

// Cap returns the allocated capacity in bytes.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.storage)
}

// Released reports whether Release has been called on this buffer.
func (b *Buffer) Released() bool {
	return b != nil && b.released
}

// Bytes returns an independent copy of the bytes currently in use.
// The copy preserves exclusive ownership of the buffer's storage;
// mutating it never affects the buffer.
func (b *Buffer) Bytes() []byte {
	if b == nil || b.released {
		return nil
	}
	return append([]byte(nil), b.storage[:b.length]...)
}

// EnsureCapacity grows the buffer's storage until its capacity reaches
// or exceeds min. It is a no-op when the capacity is already sufficient.
// Growth doubles the capacity repeatedly; if a doubling step would
// overflow, the target snaps directly to min. Existing bytes are
// preserved unchanged. On failure the buffer is left exactly as before.
func (b *Buffer) EnsureCapacity(min int) error {
	if err := b.valid(); err != nil {
		return err
	}
	if min < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrAllocation, min)
	}
	if len(b.storage) >= min {
		return nil
	}

	newCap := grownCapacity(len(b.storage), min)

	storage := make([]byte, newCap)
	copy(storage, b.storage)

	emitGrow(len(b.storage), newCap, b.length)
	b.storage = storage
	return nil
}

// grownCapacity returns the capacity reached by doubling cur until it
// covers min, snapping directly to min when a doubling step would wrap
// below cur.
func grownCapacity(cur, min int) int {
	if cur < 1 {
		cur = 1
	}
	for cur < min {
		next := cur * growthFactor
		if next < cur {
			next = min
		}
		cur = next
	}
	return cur
}

// Write appends src at the buffer's current end, growing storage as
// needed, and returns the number of bytes written. A nil or empty src
// is a successful no-op returning 0, never an error. On failure the
// buffer is left exactly as before.
func (b *Buffer) Write(src []byte) (int, error) {
	if err := b.valid(); err != nil {
		return 0, err
	}
	if len(src) == 0 {
		return 0, nil
	}

	total := b.length + len(src)
	if total < b.length {
		return 0, fmt.Errorf("%w: length %d + %d overflows", ErrAllocation, b.length, len(src))
	}
	if err := b.EnsureCapacity(total); err != nil {
		return 0, err
	}

	copy(b.storage[b.length:], src)
	b.length = total
	return len(src), nil
}

// Clone returns an independent deep copy with identical length and
// content. The copy's capacity equals its length; a clone of an empty
// buffer gets DefaultCapacity.
func (b *Buffer) Clone() (*Buffer, error) {
	if err := b.valid(); err != nil {
		return nil, err
	}
	return From(b.storage[:b.length]), nil
}

// Subarray returns an independent copy of the bytes in [start, end).
// Pass End (or any negative end) for "to the end of the buffer"; an end
// beyond the used length clamps to it. When start >= Len() or
// start >= end the result is a fresh empty buffer, not a failure.
// A negative start fails with ErrInvalidArgument.
func (b *Buffer) Subarray(start, end int) (*Buffer, error) {
	if err := b.valid(); err != nil {
		return nil, err
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: negative start %d", ErrInvalidArgument, start)
	}

	if end < 0 || end > b.length {
		end = b.length
	}
	if start >= b.length || start >= end {
		return Alloc(0)
	}
	return From(b.storage[start:end]), nil
}

// Release drops the buffer's storage and invalidates the buffer: every
// subsequent operation fails with ErrReleased. Release is idempotent
// and safe on a nil buffer.
func (b *Buffer) Release() {
	if b == nil || b.released {
		return
	}
	emitRelease(len(b.storage), b.length)
	b.storage = nil
	b.length = 0
	b.released = true
}
