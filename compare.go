package bytebuf

import "bytes"

// Equals reports whether a and b hold the same bytes: equal lengths and
// every byte matching. A nil or released operand is treated as a
// zero-length sequence, keeping Equals consistent with Compare.
func (b *Buffer) Equals(other *Buffer) bool {
	return bytes.Equal(b.view(), other.view())
}

// Compare orders two buffers lexicographically by byte sequence,
// returning -1, 0, or +1. When one sequence is a strict prefix of the
// other, the shorter sorts first. A nil or released operand is treated
// as a zero-length sequence. Compare(a, b) == 0 exactly when
// Equals(a, b).
func (b *Buffer) Compare(other *Buffer) int {
	return bytes.Compare(b.view(), other.view())
}

// IndexOf returns the lowest position >= offset at which pattern occurs
// contiguously in the buffer, or -1 when there is no such position: a
// nil or empty pattern, a pattern longer than the remaining bytes, an
// offset past the used length, or no match.
func (b *Buffer) IndexOf(pattern []byte, offset int) int {
	if b == nil || b.released {
		return -1
	}
	if len(pattern) == 0 || offset < 0 || offset > b.length {
		return -1
	}
	if len(pattern) > b.length-offset {
		return -1
	}

	i := bytes.Index(b.storage[offset:b.length], pattern)
	if i < 0 {
		return -1
	}
	return offset + i
}

// view returns the in-use bytes for relational operations, mapping nil
// and released buffers to an empty sequence.
func (b *Buffer) view() []byte {
	if b == nil || b.released {
		return nil
	}
	return b.storage[:b.length]
}
