package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0x7567d83b7b8d80addcb281a71d54fc7b3364ffed")
	require.NoError(t, err)
	assert.Equal(t, "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", addr.Hex())

	_, err = ParseAddress("0x7567d83b7b8d80addcb281a71d54fc7b3364ff")
	assert.ErrorContains(t, err, "expected 20 bytes")

	_, err = ParseAddress("7567d83b7b8d80addcb281a71d54fc7b3364ffed")
	assert.Error(t, err, "missing 0x prefix")
}

func TestParseBytes32(t *testing.T) {
	id, err := ParseBytes32("0x2a1c25ce0d66f45276a5f308b99bf410e2fc7d5b6ea37a49f2ab9f1da9446478")
	require.NoError(t, err)
	assert.Equal(t, "0x2a1c25ce0d66f45276a5f308b99bf410e2fc7d5b6ea37a49f2ab9f1da9446478", id.Hex())

	_, err = ParseBytes32("0x2a1c")
	assert.ErrorContains(t, err, "expected 32 bytes")
}

func TestSetBytesPadsLeft(t *testing.T) {
	addr := BytesToAddress([]byte{0x01, 0x02})
	assert.Equal(t, "0x0000000000000000000000000000000000000102", addr.Hex())

	var h Bytes32
	h.SetBytes([]byte{0xff})
	assert.Equal(t, byte(0xff), h[31])
}

func TestZeroChecks(t *testing.T) {
	assert.True(t, Address{}.IsZero())
	assert.False(t, BytesToAddress([]byte{1}).IsZero())
	assert.True(t, Bytes32{}.IsZero())
}

func TestJSONRoundTrip(t *testing.T) {
	addr, err := ParseAddress("0xd989829d88b0ed1b06edf5c50174ecfa64f14a64")
	require.NoError(t, err)

	encoded, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.JSONEq(t, `"0xd989829d88b0ed1b06edf5c50174ecfa64f14a64"`, string(encoded))

	var back Address
	require.NoError(t, json.Unmarshal(encoded, &back))
	assert.Equal(t, addr, back)
}

func TestTrimLeftZeroes(t *testing.T) {
	assert.Equal(t, []byte{0xaa}, TrimLeftZeroes([]byte{0, 0, 0xaa}))
	assert.Empty(t, TrimLeftZeroes([]byte{0, 0}))
	assert.Equal(t, []byte{0xaa, 0}, TrimLeftZeroes([]byte{0xaa, 0}))
}
