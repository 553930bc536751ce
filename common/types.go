package common

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ledgerwatch/erigon-lib/common/length"
)

// Address is the 20-byte account identifier used on the wire and in
// signature recovery.
type Address [length.Addr]byte

// Bytes32 is a 32-byte value: transaction ids, block ids, signing hashes.
type Bytes32 [length.Hash]byte

// BytesToAddress sets b to the low-order bytes of an Address.
// If b is longer than 20 bytes it is cropped from the left.
func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

// ParseAddress parses a 0x-prefixed hex string into an Address.
// The input must decode to exactly 20 bytes.
func ParseAddress(s string) (Address, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address %q: %w", s, err)
	}
	if len(b) != length.Addr {
		return Address{}, fmt.Errorf("invalid address %q: expected %d bytes, got %d", s, length.Addr, len(b))
	}
	return BytesToAddress(b), nil
}

func (a *Address) SetBytes(b []byte) {
	if len(b) > len(a) {
		b = b[len(b)-length.Addr:]
	}
	copy(a[length.Addr-len(b):], b)
}

func (a Address) Bytes() []byte { return a[:] }

func (a Address) Hex() string { return hexutil.Encode(a[:]) }

func (a Address) String() string { return a.Hex() }

// IsZero reports whether the address is all zero bytes.
func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// BytesToBytes32 sets b to the low-order bytes of a Bytes32, cropping
// from the left when b is longer than 32 bytes.
func BytesToBytes32(b []byte) Bytes32 {
	var h Bytes32
	h.SetBytes(b)
	return h
}

// ParseBytes32 parses a 0x-prefixed hex string into a Bytes32.
// The input must decode to exactly 32 bytes.
func ParseBytes32(s string) (Bytes32, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return Bytes32{}, fmt.Errorf("invalid bytes32 %q: %w", s, err)
	}
	if len(b) != length.Hash {
		return Bytes32{}, fmt.Errorf("invalid bytes32 %q: expected %d bytes, got %d", s, length.Hash, len(b))
	}
	return BytesToBytes32(b), nil
}

func (h *Bytes32) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-length.Hash:]
	}
	copy(h[length.Hash-len(b):], b)
}

func (h Bytes32) Bytes() []byte { return h[:] }

func (h Bytes32) Hex() string { return hexutil.Encode(h[:]) }

func (h Bytes32) String() string { return h.Hex() }

func (h Bytes32) IsZero() bool {
	return h == Bytes32{}
}

func (h Bytes32) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

func (h *Bytes32) UnmarshalText(input []byte) error {
	parsed, err := ParseBytes32(string(input))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// CopyBytes returns an exact copy of the provided bytes.
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	copied := make([]byte, len(b))
	copy(copied, b)
	return copied
}

// Hex2Bytes decodes a hex string without 0x prefix, ignoring errors.
// Test helper, mirrors the usual fixture style.
func Hex2Bytes(s string) []byte {
	b, _ := hex.DecodeString(s)
	return b
}

// TrimLeftZeroes returns b without leading zero bytes.
func TrimLeftZeroes(b []byte) []byte {
	return bytes.TrimLeft(b, "\x00")
}
