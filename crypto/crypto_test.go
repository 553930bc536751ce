package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-chain/lumina-sdk/common"
)

func TestBlake2b256(t *testing.T) {
	// blake2b-256 of the empty input
	assert.Equal(t,
		"0x0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		Blake2b256().Hex())

	// concatenation equals hashing the joined input
	joined := Blake2b256([]byte("hello"), []byte("world"))
	whole := Blake2b256([]byte("helloworld"))
	assert.Equal(t, whole, joined)
}

func TestAddressDerivation(t *testing.T) {
	// known key/address pair, pins Keccak-256 as the derivation hash
	key, err := HexToKey("0x7582be841ca040aa940fff6c05773129e135623e41acce3e0b8ba520dc1ae26a")
	require.NoError(t, err)
	assert.Equal(t, "0xd989829d88b0ed1b06edf5c50174ecfa64f14a64", AddressFromPrivateKey(key).Hex())
}

func TestSignRecover(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	hash := Blake2b256([]byte("payload"))
	sig, err := Sign(hash, key)
	require.NoError(t, err)
	require.Len(t, sig, SignatureLength)

	signer, err := RecoverSigner(hash, sig)
	require.NoError(t, err)
	assert.Equal(t, AddressFromPrivateKey(key), signer)

	// a different message recovers a different signer
	other, err := RecoverSigner(Blake2b256([]byte("other")), sig)
	if err == nil {
		assert.NotEqual(t, AddressFromPrivateKey(key), other)
	}
}

func TestRecoverSignerLength(t *testing.T) {
	hash := Blake2b256([]byte("payload"))
	for _, n := range []int{0, 64, 66} {
		_, err := RecoverSigner(hash, make([]byte, n))
		assert.ErrorIs(t, err, ErrInvalidSignatureLength, "length %d", n)
	}
}

func TestKeyHexRoundTrip(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	back, err := HexToKey(KeyToHex(key))
	require.NoError(t, err)
	assert.Equal(t, key.D, back.D)

	var zero common.Address
	assert.NotEqual(t, zero, AddressFromPrivateKey(back))

	_, err = HexToKey("0xzz")
	assert.Error(t, err)
}
