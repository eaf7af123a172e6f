package bytebuf

import "encoding/binary"

// boundsCheck verifies that a size-byte access at offset stays within
// the buffer's used length.
func (b *Buffer) boundsCheck(offset, size int) error {
	if offset < 0 || offset > b.length || b.length-offset < size {
		return newBoundsError(offset, size, b.length)
	}
	return nil
}

// ReadByteAt returns the byte at offset. Fails with *BoundsError when
// offset is outside the used length.
func (b *Buffer) ReadByteAt(offset int) (byte, error) {
	if err := b.valid(); err != nil {
		return 0, err
	}
	if err := b.boundsCheck(offset, 1); err != nil {
		return 0, err
	}
	return b.storage[offset], nil
}

// WriteByteAt stores v at offset, in place within the used length.
func (b *Buffer) WriteByteAt(offset int, v byte) error {
	if err := b.valid(); err != nil {
		return err
	}
	if err := b.boundsCheck(offset, 1); err != nil {
		return err
	}
	b.storage[offset] = v
	return nil
}

// ReadUint16 returns the 2 bytes at offset interpreted in the given
// byte order. A failed bounds check is reported as a *BoundsError,
// never as a zero value.
func (b *Buffer) ReadUint16(offset int, order binary.ByteOrder) (uint16, error) {
	if err := b.valid(); err != nil {
		return 0, err
	}
	if err := b.boundsCheck(offset, 2); err != nil {
		return 0, err
	}
	return order.Uint16(b.storage[offset:]), nil
}

// ReadUint32 returns the 4 bytes at offset interpreted in the given
// byte order.
func (b *Buffer) ReadUint32(offset int, order binary.ByteOrder) (uint32, error) {
	if err := b.valid(); err != nil {
		return 0, err
	}
	if err := b.boundsCheck(offset, 4); err != nil {
		return 0, err
	}
	return order.Uint32(b.storage[offset:]), nil
}

// ReadUint64 returns the 8 bytes at offset interpreted in the given
// byte order.
func (b *Buffer) ReadUint64(offset int, order binary.ByteOrder) (uint64, error) {
	if err := b.valid(); err != nil {
		return 0, err
	}
	if err := b.boundsCheck(offset, 8); err != nil {
		return 0, err
	}
	return order.Uint64(b.storage[offset:]), nil
}

// WriteUint16 stores v at offset in the given byte order, in place
// within the used length. Writing never extends the buffer; use Write
// to append.
func (b *Buffer) WriteUint16(offset int, v uint16, order binary.ByteOrder) error {
	if err := b.valid(); err != nil {
		return err
	}
	if err := b.boundsCheck(offset, 2); err != nil {
		return err
	}
	order.PutUint16(b.storage[offset:], v)
	return nil
}

// WriteUint32 stores v at offset in the given byte order, in place
// within the used length.
func (b *Buffer) WriteUint32(offset int, v uint32, order binary.ByteOrder) error {
	if err := b.valid(); err != nil {
		return err
	}
	if err := b.boundsCheck(offset, 4); err != nil {
		return err
	}
	order.PutUint32(b.storage[offset:], v)
	return nil
}

// WriteUint64 stores v at offset in the given byte order, in place
// within the used length.
func (b *Buffer) WriteUint64(offset int, v uint64, order binary.ByteOrder) error {
	if err := b.valid(); err != nil {
		return err
	}
	if err := b.boundsCheck(offset, 8); err != nil {
		return err
	}
	order.PutUint64(b.storage[offset:], v)
	return nil
}
