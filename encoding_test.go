package bytebuf

import (
	"bytes"
	"errors"
	"testing"
)

func TestToHex(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want string
	}{
		{name: "empty", src: nil, want: ""},
		{name: "single byte", src: []byte{0x0F}, want: "0f"},
		{name: "leading zero", src: []byte{0x00, 0xFF}, want: "00ff"},
		{name: "sequence", src: []byte{0x01, 0x02, 0x03}, want: "010203"},
		{name: "all nibbles", src: []byte{0xDE, 0xAD, 0xBE, 0xEF}, want: "deadbeef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := From(tt.src).ToHex()
			if err != nil {
				t.Fatalf("ToHex failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToHex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		enc  Encoding
		want string
	}{
		{name: "hex", src: []byte{0x01, 0x02, 0x03}, enc: Hex, want: "010203"},
		{name: "base64 padded", src: []byte{0x01, 0x02, 0x03, 0x04}, enc: Base64, want: "AQIDBA=="},
		{name: "base64 unpadded length", src: []byte{0x01, 0x02, 0x03}, enc: Base64, want: "AQID"},
		{name: "latin1 ascii", src: []byte("plain"), enc: Latin1, want: "plain"},
		{name: "latin1 high byte", src: []byte{0xE9}, enc: Latin1, want: "é"},
		{name: "utf8 passthrough", src: []byte("héllo"), enc: UTF8, want: "héllo"},
		{name: "utf16le", src: []byte{0x68, 0x00, 0x69, 0x00}, enc: UTF16LE, want: "hi"},
		{name: "utf16le non-ascii", src: []byte{0xE9, 0x00}, enc: UTF16LE, want: "é"},
		{name: "utf16le dangling byte", src: []byte{0x41, 0x00, 0x42}, enc: UTF16LE, want: "A�"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := From(tt.src).ToString(tt.enc)
			if err != nil {
				t.Fatalf("ToString(%q) failed: %v", tt.enc, err)
			}
			if got != tt.want {
				t.Errorf("ToString(%q) = %q, want %q", tt.enc, got, tt.want)
			}
		})
	}
}

func TestToString_UnknownEncoding(t *testing.T) {
	b := From([]byte{1})

	_, err := b.ToString("utf32")
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Fatalf("error = %v, want ErrUnknownEncoding", err)
	}

	var ee *EncodingError
	if !errors.As(err, &ee) {
		t.Fatalf("error is not *EncodingError: %v", err)
	}
	if ee.Encoding != "utf32" {
		t.Errorf("EncodingError.Encoding = %q, want %q", ee.Encoding, "utf32")
	}
}

func TestAppendString(t *testing.T) {
	tests := []struct {
		name string
		text string
		enc  Encoding
		want []byte
	}{
		{name: "hex", text: "0a0b", enc: Hex, want: []byte{0x0A, 0x0B}},
		{name: "base64", text: "AQID", enc: Base64, want: []byte{0x01, 0x02, 0x03}},
		{name: "latin1", text: "é", enc: Latin1, want: []byte{0xE9}},
		{name: "utf8", text: "hi", enc: UTF8, want: []byte{0x68, 0x69}},
		{name: "utf16le", text: "hi", enc: UTF16LE, want: []byte{0x68, 0x00, 0x69, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := Alloc(0)
			n, err := b.AppendString(tt.text, tt.enc)
			if err != nil {
				t.Fatalf("AppendString(%q, %q) failed: %v", tt.text, tt.enc, err)
			}
			if n != len(tt.want) {
				t.Errorf("AppendString returned %d, want %d", n, len(tt.want))
			}
			if got := b.Bytes(); !bytes.Equal(got, tt.want) {
				t.Errorf("Bytes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppendString_MalformedText(t *testing.T) {
	tests := []struct {
		name string
		text string
		enc  Encoding
	}{
		{name: "odd hex digits", text: "abc", enc: Hex},
		{name: "non-hex characters", text: "zz", enc: Hex},
		{name: "broken base64", text: "!!!!", enc: Base64},
		{name: "rune outside latin1", text: "€", enc: Latin1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := Alloc(0)
			_, err := b.AppendString(tt.text, tt.enc)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("AppendString(%q, %q) error = %v, want ErrInvalidArgument", tt.text, tt.enc, err)
			}
			if b.Len() != 0 {
				t.Errorf("failed append changed length: Len() = %d", b.Len())
			}
		})
	}
}

func TestAppendString_UnknownEncoding(t *testing.T) {
	b, _ := Alloc(0)
	if _, err := b.AppendString("x", "ebcdic"); !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("error = %v, want ErrUnknownEncoding", err)
	}
}

func TestStringRoundTrip(t *testing.T) {
	src := []byte{0x00, 0x41, 0x7F, 0x80, 0xE9, 0xFF}

	for _, enc := range []Encoding{Hex, Base64, Latin1} {
		t.Run(string(enc), func(t *testing.T) {
			text, err := From(src).ToString(enc)
			if err != nil {
				t.Fatalf("ToString failed: %v", err)
			}

			back, _ := Alloc(0)
			if _, err := back.AppendString(text, enc); err != nil {
				t.Fatalf("AppendString failed: %v", err)
			}
			if got := back.Bytes(); !bytes.Equal(got, src) {
				t.Errorf("round trip = %v, want %v", got, src)
			}
		})
	}
}

func TestIsValidEncoding(t *testing.T) {
	for _, enc := range []Encoding{Hex, Base64, Latin1, UTF8, UTF16LE} {
		if !IsValidEncoding(enc) {
			t.Errorf("IsValidEncoding(%q) = false, want true", enc)
		}
	}
	for _, enc := range []Encoding{"", "utf32", "ascii", "HEX"} {
		if IsValidEncoding(enc) {
			t.Errorf("IsValidEncoding(%q) = true, want false", enc)
		}
	}
}
