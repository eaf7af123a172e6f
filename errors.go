package bytebuf

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrAllocation indicates storage could not be obtained on
	// construction or growth: a negative capacity request, or capacity
	// arithmetic that would overflow. The buffer, if pre-existing, is
	// left in its last consistent state.
	ErrAllocation = errors.New("allocation failed")

	// ErrInvalidArgument indicates a structurally invalid argument,
	// such as a negative offset or text that cannot be decoded in the
	// requested encoding. An absent or empty source to Write or From is
	// NOT an error; it is a defined no-op.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfBounds indicates a scalar read or write whose offset and
	// size exceed the buffer's current used length. Carried by
	// *BoundsError.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrUnknownEncoding indicates an encoding selector outside the
	// supported set. Carried by *EncodingError.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrReleased indicates an operation on a buffer after Release.
	ErrReleased = errors.New("buffer released")
)

// BoundsError reports a scalar access that failed its bounds check.
// It wraps ErrOutOfBounds with the offending offset, access size, and
// the buffer's used length at the time of the access.
type BoundsError struct {
	Offset int // Requested offset
	Size   int // Access size in bytes
	Length int // Buffer's used length
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("out of bounds: %d-byte access at offset %d exceeds length %d", e.Size, e.Offset, e.Length)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// EncodingError reports an encoding selector outside the supported set.
// It wraps ErrUnknownEncoding with the rejected selector, and also
// matches ErrInvalidArgument: an unrecognized selector is one kind of
// structurally invalid argument.
type EncodingError struct {
	Encoding Encoding // The rejected selector
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("unknown encoding %q", string(e.Encoding))
}

func (e *EncodingError) Unwrap() error {
	return ErrUnknownEncoding
}

// Is matches the broader ErrInvalidArgument class in addition to the
// ErrUnknownEncoding sentinel reached through Unwrap.
func (e *EncodingError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// newBoundsError creates a BoundsError for a failed scalar access.
func newBoundsError(offset, size, length int) error {
	return &BoundsError{
		Offset: offset,
		Size:   size,
		Length: length,
	}
}
