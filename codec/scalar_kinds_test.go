package codec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericKindZeroLaw(t *testing.T) {
	k := NumericKind{MaxBytes: 8}

	enc, err := k.Encode(uint64(0), "n")
	require.NoError(t, err)
	assert.Equal(t, []byte{}, enc)

	dec, err := k.Decode([]byte{}, "n")
	require.NoError(t, err)
	assert.Zero(t, dec.(*big.Int).Sign())
}

func TestNumericKindEncode(t *testing.T) {
	k := NumericKind{MaxBytes: 8}

	tests := []struct {
		name    string
		val     interface{}
		want    []byte
		wantErr bool
	}{
		{"uint64", uint64(0x1234), []byte{0x12, 0x34}, false},
		{"big.Int", big.NewInt(255), []byte{0xff}, false},
		{"hex string", "0x64", []byte{0x64}, false},
		{"int", 7, []byte{0x07}, false},
		{"max bytes exact", uint64(0xffffffffffffffff), []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, false},
		{"negative int", -1, nil, true},
		{"negative big", big.NewInt(-5), nil, true},
		{"wrong type", []string{"x"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := k.Encode(tt.val, "n")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, enc)
		})
	}
}

func TestNumericKindMaxBytes(t *testing.T) {
	k := NumericKind{MaxBytes: 1}

	_, err := k.Encode(uint64(255), "n")
	assert.NoError(t, err)

	_, err = k.Encode(uint64(256), "n")
	assert.ErrorContains(t, err, "exceeds 1 bytes")

	_, err = k.Decode([]byte{0x01, 0x00}, "n")
	assert.ErrorContains(t, err, "exceeds 1 bytes")
}

func TestNumericKindDecodeNonCanonical(t *testing.T) {
	k := NumericKind{MaxBytes: 8}

	_, err := k.Decode([]byte{0x00}, "n")
	assert.ErrorContains(t, err, "non-canonical")

	_, err = k.Decode([]byte{0x00, 0x01}, "n")
	assert.ErrorContains(t, err, "non-canonical")
}

func TestBufferKindPassThrough(t *testing.T) {
	k := BufferKind{}

	enc, err := k.Encode([]byte{1, 2, 3}, "b")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, enc)

	_, err = k.Encode("0x010203", "b")
	assert.Error(t, err, "buffer kind only passes binary through")
}

func TestHexBlobKind(t *testing.T) {
	k := HexBlobKind{}

	enc, err := k.Encode("0x010203", "b")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, enc)

	_, err = k.Encode("010203", "b")
	assert.Error(t, err, "missing 0x prefix")

	_, err = k.Encode("0x0102zz", "b")
	assert.Error(t, err, "invalid hex digits")
}

func TestFixedHexBlobKindLength(t *testing.T) {
	k := FixedHexBlobKind{Bytes: 20}

	_, err := k.Encode(make([]byte, 20), "addr")
	assert.NoError(t, err)

	for _, n := range []int{0, 19, 21} {
		_, err := k.Encode(make([]byte, n), "addr")
		assert.Error(t, err, "length %d must be rejected", n)

		_, err = k.Decode(make([]byte, n), "addr")
		if n == 0 {
			assert.Error(t, err)
			continue
		}
		assert.Error(t, err, "length %d must be rejected", n)
	}
}

func TestOptionalFixedHexBlobKind(t *testing.T) {
	k := OptionalFixedHexBlobKind{Bytes: 20}

	enc, err := k.Encode(nil, "to")
	require.NoError(t, err)
	assert.Equal(t, []byte{}, enc)

	enc, err = k.Encode([]byte{}, "to")
	require.NoError(t, err)
	assert.Equal(t, []byte{}, enc)

	dec, err := k.Decode([]byte{}, "to")
	require.NoError(t, err)
	assert.Nil(t, dec)

	_, err = k.Encode(make([]byte, 19), "to")
	assert.Error(t, err)

	dec, err = k.Decode(make([]byte, 20), "to")
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 20), dec)
}

func TestCompactFixedHexBlobKind(t *testing.T) {
	k := CompactFixedHexBlobKind{Bytes: 8}

	full := []byte{0, 0, 0, 0, 0xaa, 0xbb, 0xcc, 0xdd}
	enc, err := k.Encode(full, "blockRef")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc, 0xdd}, enc)

	dec, err := k.Decode([]byte{0xaa, 0xbb, 0xcc, 0xdd}, "blockRef")
	require.NoError(t, err)
	assert.Equal(t, full, dec)
}

func TestCompactFixedHexBlobKindAllZero(t *testing.T) {
	k := CompactFixedHexBlobKind{Bytes: 8}

	enc, err := k.Encode(make([]byte, 8), "blockRef")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, enc, "all-zero value travels as a single zero byte")

	dec, err := k.Decode([]byte{0x00}, "blockRef")
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 8), dec)
}

func TestCompactFixedHexBlobKindRejects(t *testing.T) {
	k := CompactFixedHexBlobKind{Bytes: 8}

	_, err := k.Encode(make([]byte, 7), "blockRef")
	assert.Error(t, err, "in-memory form must be exactly 8 bytes")

	_, err = k.Decode([]byte{}, "blockRef")
	assert.Error(t, err, "wire form keeps at least one byte")

	_, err = k.Decode(make([]byte, 9), "blockRef")
	assert.Error(t, err)

	_, err = k.Decode([]byte{0x00, 0xaa}, "blockRef")
	assert.ErrorContains(t, err, "non-canonical")
}

func TestCompactRoundTrip(t *testing.T) {
	k := CompactFixedHexBlobKind{Bytes: 8}

	for _, val := range [][]byte{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0xaa, 0xbb, 0xcc, 0xdd},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	} {
		enc, err := k.Encode(val, "x")
		require.NoError(t, err)
		dec, err := k.Decode(enc.([]byte), "x")
		require.NoError(t, err)
		assert.Equal(t, val, dec)
	}
}

func TestErrorPathReporting(t *testing.T) {
	k := StructKind{
		{Name: "items", Kind: ArrayKind{Item: NumericKind{MaxBytes: 1}}},
	}
	_, err := k.Encode(map[string]interface{}{
		"items": []interface{}{uint64(1), uint64(300)},
	}, "tx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tx.items[1]")
}
