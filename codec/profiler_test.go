package codec

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// petProfile mirrors the schema style of the transaction profiles: a
// struct with scalar fields and a nested homogeneous array.
var petProfile = Profile{
	Name: "pet",
	Kind: StructKind{
		{Name: "name", Kind: HexBlobKind{}},
		{Name: "age", Kind: NumericKind{MaxBytes: 4}},
		{Name: "tags", Kind: ArrayKind{Item: NumericKind{MaxBytes: 8}}},
	},
}

func TestEncodeDecodeObject(t *testing.T) {
	data, err := EncodeObject(map[string]interface{}{
		"name": []byte("kitty"),
		"age":  uint64(3),
		"tags": []interface{}{uint64(0), uint64(7)},
	}, petProfile)
	require.NoError(t, err)

	decoded, err := DecodeObject(data, petProfile)
	require.NoError(t, err)

	fields := decoded.(map[string]interface{})
	assert.Equal(t, []byte("kitty"), fields["name"])
	assert.Equal(t, int64(3), fields["age"].(*big.Int).Int64())

	tags := fields["tags"].([]interface{})
	require.Len(t, tags, 2)
	assert.Equal(t, int64(0), tags[0].(*big.Int).Int64())
	assert.Equal(t, int64(7), tags[1].(*big.Int).Int64())
}

func TestEncodeObjectMissingField(t *testing.T) {
	_, err := EncodeObject(map[string]interface{}{
		"name": []byte("kitty"),
		"age":  uint64(3),
	}, petProfile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing field "tags"`)
}

func TestDecodeObjectFieldCount(t *testing.T) {
	// a two-element list cannot satisfy the three-field profile
	short := hexutil.MustDecode("0xc7856b6974747903")
	_, err := DecodeObject(short, petProfile)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStructure)
}

func TestDecodeObjectShapeMismatch(t *testing.T) {
	// a byte string where a list is expected
	data, err := EncodeObject(map[string]interface{}{
		"name": []byte("kitty"),
		"age":  uint64(3),
		"tags": []interface{}{},
	}, petProfile)
	require.NoError(t, err)

	scalarProfile := Profile{Name: "pet", Kind: NumericKind{MaxBytes: 8}}
	_, err = DecodeObject(data, scalarProfile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected byte string")
}

func TestDecodeRawTrailingBytes(t *testing.T) {
	item := hexutil.MustDecode("0xc0c0")
	_, err := DecodeRaw(item)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing bytes")
}

func TestDecodeRawNodeTree(t *testing.T) {
	// [[0x0a], "", 0x01] nested shape survives parsing
	raw := hexutil.MustDecode("0xc4c10a8001")
	node, err := DecodeRaw(raw)
	require.NoError(t, err)

	list, ok := node.([]interface{})
	require.True(t, ok)
	require.Len(t, list, 3)

	inner := list[0].([]interface{})
	assert.Equal(t, []byte{0x0a}, inner[0])
	assert.Equal(t, []byte{}, list[1])
	assert.Equal(t, []byte{0x01}, list[2])
}
