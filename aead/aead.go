// Package aead provides parameter descriptors for AEAD cipher modes:
// IV length, authentication-tag length, and the set of permitted key
// sizes per mode.
//
// The table is fixed at package init and never mutated, so lookups are
// safe for concurrent use without locking. Lookups return independent
// copies; callers cannot corrupt the table through a returned Mode.
//
// This package carries metadata only. It performs no encryption,
// decryption, or key handling; buffers of key, IV, and plaintext
// material belong to the consuming encryption layer.
package aead

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrUnknownMode indicates a lookup for a cipher family or sub-mode
// outside the registered set.
var ErrUnknownMode = errors.New("unknown cipher mode")

// Mode describes the fixed parameters of an AEAD cipher mode. Values
// are immutable; the registry hands out independent copies.
type Mode struct {
	Name      string // Canonical name, e.g. "aes-gcm"
	ID        uint16 // Stable algorithm family id
	IVLength  int    // Initialization vector length in bytes
	TagLength int    // Authentication tag length in bytes
	KeySizes  []int  // Permitted key lengths in bytes
}

// AllowsKeySize reports whether n bytes is a permitted key length for
// this mode.
func (m Mode) AllowsKeySize(n int) bool {
	for _, size := range m.KeySizes {
		if size == n {
			return true
		}
	}
	return false
}

// clone returns a copy whose KeySizes slice is independent of the
// registry's backing storage.
func (m Mode) clone() Mode {
	sizes := make([]int, len(m.KeySizes))
	copy(sizes, m.KeySizes)
	m.KeySizes = sizes
	return m
}

// Algorithm family ids.
const (
	idAESGCM           uint16 = 0x15
	idAESCCM           uint16 = 0x1C
	idChaCha20Poly1305 uint16 = 0xC5
)

// aesKeySizes holds the AES key lengths: AES-128, AES-192, AES-256.
var aesKeySizes = []int{16, 24, 32}

// modes is the descriptor table, keyed by canonical name. Fixed at
// init; read-only thereafter.
var modes = map[string]Mode{
	"aes-gcm": {
		Name:      "aes-gcm",
		ID:        idAESGCM,
		IVLength:  12,
		TagLength: 16,
		KeySizes:  aesKeySizes,
	},
	"aes-ccm": {
		Name:      "aes-ccm",
		ID:        idAESCCM,
		IVLength:  13,
		TagLength: 16,
		KeySizes:  aesKeySizes,
	},
	"chacha20-poly1305": {
		Name:      "chacha20-poly1305",
		ID:        idChaCha20Poly1305,
		IVLength:  chacha20poly1305.NonceSize,
		TagLength: chacha20poly1305.Overhead,
		KeySizes:  []int{chacha20poly1305.KeySize},
	},
}

// Lookup returns the descriptor for the given cipher family and
// sub-mode. The sub-mode is matched case-insensitively ("gcm" and "GCM"
// are the same). Families without sub-modes, such as chacha20-poly1305,
// ignore subMode. Unknown combinations fail with ErrUnknownMode.
func Lookup(family, subMode string) (Mode, error) {
	switch strings.ToLower(family) {
	case "aes":
		return AES(subMode)
	case "chacha20", "chacha20-poly1305":
		return ChaCha20Poly1305(), nil
	}
	return Mode{}, fmt.Errorf("%w: family %q", ErrUnknownMode, family)
}

// AES returns the descriptor for an AES sub-mode, matched
// case-insensitively. Supported sub-modes are "gcm" and "ccm".
func AES(subMode string) (Mode, error) {
	switch {
	case strings.EqualFold(subMode, "gcm"):
		return modes["aes-gcm"].clone(), nil
	case strings.EqualFold(subMode, "ccm"):
		return modes["aes-ccm"].clone(), nil
	}
	return Mode{}, fmt.Errorf("%w: aes sub-mode %q", ErrUnknownMode, subMode)
}

// ChaCha20Poly1305 returns the descriptor for ChaCha20-Poly1305, the
// only mode of its family.
func ChaCha20Poly1305() Mode {
	return modes["chacha20-poly1305"].clone()
}
