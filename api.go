// Package bytebuf provides a growable, bounds-checked byte buffer for
// building, reading, and converting raw byte sequences.
//
// The package centers on a single type, Buffer, which owns a resizable
// byte store and tracks used length separately from allocated capacity.
// Around it sit three groups of operations:
//
//   - Scalar access: bounds-checked, endianness-aware reads and writes
//     of fixed-width unsigned integers at arbitrary offsets.
//   - Text conversion: rendering buffer contents to and from a closed
//     set of encodings (hex, base64, latin1, utf8, utf16le).
//   - Relations: equality, lexicographic ordering, and substring search
//     over buffer pairs.
//
// # Ownership
//
// Every Buffer exclusively owns its storage. Derived buffers (Clone,
// Subarray, From) always receive freshly allocated, independent storage,
// so a derived buffer may be handed to another goroutine without
// coordination. A Buffer itself is not safe for concurrent mutation;
// exactly one owner mutates a given buffer at a time.
//
// Release drops a buffer's storage deterministically. A released buffer
// is invalid for any further use: every subsequent operation fails with
// ErrReleased.
//
// # Growth
//
// Appending past capacity grows the storage by repeated doubling until
// it reaches the required size, snapping directly to the exact size when
// doubling would overflow. A failed growth leaves the buffer exactly as
// it was; no operation ever leaves length, capacity, and storage in an
// inconsistent relationship.
//
// # Failure Signaling
//
// Scalar accessors never conflate "bounds check failed" with "the value
// read happens to be zero": out-of-range access fails with a *BoundsError
// carrying the offending offset, access size, and buffer length. All
// failures are recoverable by the caller; nothing in this package
// terminates the process.
//
// # Basic Usage
//
//	b, _ := bytebuf.Alloc(0) // default capacity
//	b.Write([]byte{0x01, 0x02, 0x03})
//
//	hex, _ := b.ToHex() // "010203"
//
//	v, err := b.ReadUint16(1, binary.BigEndian)
//	if err != nil {
//	    // *BoundsError, never a silent zero
//	}
//
//	tail, _ := b.Subarray(1, bytebuf.End) // independent copy of [0x02, 0x03]
//	b.Release()
//
// # Events
//
// Buffer lifecycle events (allocation, growth, release) are emitted as
// capitan signals. Hosts that want visibility into buffer churn can
// subscribe to SignalAlloc, SignalGrow, and SignalRelease; hosts that
// don't, pay only the cost of an unobserved emission.
//
// # Cipher Mode Descriptors
//
// The aead subpackage carries the parameter descriptors (IV length, tag
// length, permitted key sizes) for the AEAD cipher modes consumed by
// higher-level encryption code. It performs no cryptographic computation.
package bytebuf
