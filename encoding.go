package bytebuf

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding selects a text representation for buffer contents.
// The set is closed; selectors outside it fail with ErrUnknownEncoding.
type Encoding string

const (
	// Hex renders two lowercase hexadecimal characters per byte, with
	// no separators and no prefix.
	Hex Encoding = "hex"

	// Base64 renders the standard padded base64 alphabet.
	Base64 Encoding = "base64"

	// Latin1 maps each byte to the codepoint of the same numeric value
	// (ISO 8859-1).
	Latin1 Encoding = "latin1"

	// UTF8 passes bytes through unchanged. Well-formedness is the
	// caller's concern; it is not validated here.
	UTF8 Encoding = "utf8"

	// UTF16LE interprets consecutive byte pairs as little-endian 16-bit
	// code units. A dangling final byte decodes as U+FFFD.
	UTF16LE Encoding = "utf16le"
)

// validEncodings contains the closed encoding set.
var validEncodings = map[Encoding]bool{
	Hex:     true,
	Base64:  true,
	Latin1:  true,
	UTF8:    true,
	UTF16LE: true,
}

// IsValidEncoding returns true if enc is a supported encoding selector.
func IsValidEncoding(enc Encoding) bool {
	return validEncodings[enc]
}

// utf16le decodes and encodes little-endian UTF-16 without a BOM.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ToHex returns the buffer's contents as lowercase hexadecimal, exactly
// two characters per byte.
func (b *Buffer) ToHex() (string, error) {
	if err := b.valid(); err != nil {
		return "", err
	}
	return hex.EncodeToString(b.storage[:b.length]), nil
}

// ToString renders the buffer's contents in the given encoding. An
// unknown selector fails with a *EncodingError wrapping
// ErrUnknownEncoding.
func (b *Buffer) ToString(enc Encoding) (string, error) {
	if err := b.valid(); err != nil {
		return "", err
	}

	data := b.storage[:b.length]
	switch enc {
	case Hex:
		return hex.EncodeToString(data), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(data), nil
	case Latin1:
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("latin1 decode: %w", err)
		}
		return string(decoded), nil
	case UTF8:
		return string(data), nil
	case UTF16LE:
		decoded, err := utf16le.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("utf16le decode: %w", err)
		}
		return string(decoded), nil
	default:
		return "", &EncodingError{Encoding: enc}
	}
}

// AppendString decodes s in the given encoding and appends the resulting
// bytes, growing storage as needed. It returns the number of bytes
// appended. Text that cannot be decoded in the requested encoding fails
// with ErrInvalidArgument; an unknown selector fails with a
// *EncodingError.
func (b *Buffer) AppendString(s string, enc Encoding) (int, error) {
	if err := b.valid(); err != nil {
		return 0, err
	}

	raw, err := decodeText(s, enc)
	if err != nil {
		return 0, err
	}
	return b.Write(raw)
}

// decodeText converts text in the given encoding back to raw bytes.
func decodeText(s string, enc Encoding) ([]byte, error) {
	switch enc {
	case Hex:
		raw, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed hex: %v", ErrInvalidArgument, err)
		}
		return raw, nil
	case Base64:
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed base64: %v", ErrInvalidArgument, err)
		}
		return raw, nil
	case Latin1:
		raw, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("%w: text not representable in latin1: %v", ErrInvalidArgument, err)
		}
		return raw, nil
	case UTF8:
		return []byte(s), nil
	case UTF16LE:
		raw, err := utf16le.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("%w: utf16le encode: %v", ErrInvalidArgument, err)
		}
		return raw, nil
	default:
		return nil, &EncodingError{Encoding: enc}
	}
}
