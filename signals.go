package bytebuf

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for buffer lifecycle events.
var (
	SignalAlloc   = capitan.NewSignal("bytebuf.alloc", "Buffer storage allocated")
	SignalGrow    = capitan.NewSignal("bytebuf.grow", "Buffer capacity grown")
	SignalRelease = capitan.NewSignal("bytebuf.release", "Buffer storage released")
)

// Keys for typed event data.
var (
	KeyCapacity     = capitan.NewIntKey("capacity")
	KeyLength       = capitan.NewIntKey("length")
	KeyFromCapacity = capitan.NewIntKey("from_capacity")
	KeyToCapacity   = capitan.NewIntKey("to_capacity")
)

// emitAlloc emits an event when fresh storage is allocated, for both
// explicit Alloc calls and derivations (From, Clone, Subarray).
func emitAlloc(capacity, length int) {
	capitan.Emit(context.Background(), SignalAlloc,
		KeyCapacity.Field(capacity),
		KeyLength.Field(length),
	)
}

// emitGrow emits an event when a buffer's storage is reallocated.
func emitGrow(fromCapacity, toCapacity, length int) {
	capitan.Emit(context.Background(), SignalGrow,
		KeyFromCapacity.Field(fromCapacity),
		KeyToCapacity.Field(toCapacity),
		KeyLength.Field(length),
	)
}

// emitRelease emits an event when a buffer's storage is dropped.
func emitRelease(capacity, length int) {
	capitan.Emit(context.Background(), SignalRelease,
		KeyCapacity.Field(capacity),
		KeyLength.Field(length),
	)
}
