// Package crypto wraps the hashing and recoverable-signature primitives
// the transaction engine consumes: Blake2b-256 for signing hashes and
// transaction ids, secp256k1 for signatures, Keccak-256 for address
// derivation.
package crypto

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	gcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/blake2b"

	"github.com/lumina-chain/lumina-sdk/common"
)

// SignatureLength is the byte length of one recoverable signature:
// r (32) || s (32) || recovery id (1).
const SignatureLength = 65

var ErrInvalidSignatureLength = errors.New("invalid signature length")

// Blake2b256 hashes the concatenation of data with Blake2b-256.
func Blake2b256(data ...[]byte) common.Bytes32 {
	h, _ := blake2b.New256(nil)
	for _, d := range data {
		h.Write(d)
	}
	var out common.Bytes32
	h.Sum(out[:0])
	return out
}

// Sign produces a 65-byte recoverable signature of hash.
func Sign(hash common.Bytes32, key *ecdsa.PrivateKey) ([]byte, error) {
	return gcrypto.Sign(hash[:], key)
}

// RecoverSigner recovers the address that produced sig over hash. The
// address is the last 20 bytes of the Keccak-256 hash of the recovered
// 64-byte public key.
func RecoverSigner(hash common.Bytes32, sig []byte) (common.Address, error) {
	if len(sig) != SignatureLength {
		return common.Address{}, fmt.Errorf("%w: got %d, want %d", ErrInvalidSignatureLength, len(sig), SignatureLength)
	}
	pub, err := gcrypto.SigToPub(hash[:], sig)
	if err != nil {
		return common.Address{}, err
	}
	return AddressFromPublicKey(pub), nil
}

// AddressFromPublicKey derives the account address of pub:
// Keccak256(pubkey64)[12:].
func AddressFromPublicKey(pub *ecdsa.PublicKey) common.Address {
	return common.Address(gcrypto.PubkeyToAddress(*pub))
}

// AddressFromPrivateKey derives the account address controlled by key.
func AddressFromPrivateKey(key *ecdsa.PrivateKey) common.Address {
	return AddressFromPublicKey(&key.PublicKey)
}

// GenerateKey creates a new secp256k1 private key.
func GenerateKey() (*ecdsa.PrivateKey, error) {
	return gcrypto.GenerateKey()
}

// HexToKey parses a private key from its 32-byte hex form, with or
// without 0x prefix.
func HexToKey(s string) (*ecdsa.PrivateKey, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	return gcrypto.HexToECDSA(s)
}

// KeyToHex renders a private key as unprefixed hex, the key-file format.
func KeyToHex(key *ecdsa.PrivateKey) string {
	return fmt.Sprintf("%x", gcrypto.FromECDSA(key))
}
