package tx

import (
	"crypto/rand"
	"encoding/binary"
)

// RandomNonce draws a fresh 8-byte nonce from the system entropy source.
func RandomNonce() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}
