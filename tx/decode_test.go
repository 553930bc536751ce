package tx

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-chain/lumina-sdk/codec"
	"github.com/lumina-chain/lumina-sdk/crypto"
)

func TestDecodeVector(t *testing.T) {
	decoded, err := Decode(hexutil.MustDecode(vectorUnsignedRaw))
	require.NoError(t, err)

	assert.Equal(t, TypeLegacy, decoded.Type())
	assert.Equal(t, byte(1), decoded.ChainTag())
	assert.Equal(t, "0x00000000aabbccdd", decoded.BlockRef().String())
	assert.Equal(t, uint32(32), decoded.Expiration())
	assert.Equal(t, uint64(21000), decoded.Gas())
	assert.Nil(t, decoded.DependsOn())
	assert.Equal(t, uint64(12345678), decoded.Nonce())
	assert.False(t, decoded.IsDelegated())

	coef, err := decoded.GasPriceCoef()
	require.NoError(t, err)
	assert.Equal(t, uint8(128), coef)

	clauses := decoded.Clauses()
	require.Len(t, clauses, 2)
	require.NotNil(t, clauses[0].To())
	assert.Equal(t, "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", clauses[0].To().Hex())
	assert.Equal(t, int64(10000), clauses[0].Value().Int64())
	assert.Equal(t, int64(20000), clauses[1].Value().Int64())
	assert.Equal(t, hexutil.MustDecode("0x000000606060"), clauses[0].Data())

	hash, err := decoded.SigningHash()
	require.NoError(t, err)
	assert.Equal(t, vectorSigningHash, hash.Hex())
}

func TestDecodeEmptyInput(t *testing.T) {
	_, err := Decode(nil)
	assert.ErrorContains(t, err, "empty input")
}

func TestDecodeUnknownTypePrefix(t *testing.T) {
	_, err := Decode(hexutil.MustDecode("0x2af8540184aabbccdd"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestDecodeWrongFieldCount(t *testing.T) {
	// 8-field legacy list (reserved dropped)
	eight := "0xec0184aabbccdd20dad9947567d83b7b8d80addcb281a71d54fc7b3364ffed8227108081808252088083bc614e"
	_, err := Decode(hexutil.MustDecode(eight))
	assert.ErrorContains(t, err, "expected 9 or 10 fields, got 8")

	// 11-field legacy list (two trailing extras)
	eleven := "0xef0184aabbccdd20dad9947567d83b7b8d80addcb281a71d54fc7b3364ffed8227108081808252088083bc614ec08080"
	_, err = Decode(hexutil.MustDecode(eleven))
	assert.ErrorContains(t, err, "expected 9 or 10 fields, got 11")
}

func TestDecodeUntrimmedReserved(t *testing.T) {
	raw := "0xee0184aabbccdd20dad9947567d83b7b8d80addcb281a71d54fc7b3364ffed8227108081808252088083bc614ec180"
	_, err := Decode(hexutil.MustDecode(raw))
	assert.ErrorContains(t, err, "not trimmed")
}

func TestDecodeBadClauseRecipient(t *testing.T) {
	// clause `to` is 19 bytes
	raw := "0xec0184aabbccdd20d9d8937567d83b7b8d80addcb281a71d54fc7b3364ff8227108081808252088083bc614ec0"
	_, err := Decode(hexutil.MustDecode(raw))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tx.clauses[0].to")
	assert.Contains(t, err.Error(), "expected 20 bytes, got 19")
}

func TestDecodeNonCanonicalValue(t *testing.T) {
	// clause value encoded as 0x00 instead of the empty string
	raw := "0xeb0184aabbccdd20d8d7947567d83b7b8d80addcb281a71d54fc7b3364ffed008081808252088083bc614ec0"
	_, err := Decode(hexutil.MustDecode(raw))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tx.clauses[0].value")
	assert.Contains(t, err.Error(), "non-canonical")
}

func TestDecodeSignatureLengthMismatch(t *testing.T) {
	senderKey, err := crypto.HexToKey(senderKeyHex)
	require.NoError(t, err)

	signed, err := vectorTx(t).Sign(senderKey)
	require.NoError(t, err)

	// re-encode with a truncated and an extended signature
	for _, mutate := range []func([]byte) []byte{
		func(sig []byte) []byte { return sig[:64] },
		func(sig []byte) []byte { return append(sig, 0) },
	} {
		fields := signed.inner.packed()
		fields["signature"] = mutate(signed.Signature())
		raw, err := encodeSignedLegacy(fields)
		require.NoError(t, err)

		_, err = Decode(raw)
		assert.ErrorIs(t, err, ErrInvalidSignatureLength)
	}
}

func TestDecodeDelegatedSignatureLength(t *testing.T) {
	senderKey, err := crypto.HexToKey(senderKeyHex)
	require.NoError(t, err)

	// a delegated transaction with only the sender half must not decode
	var features Features
	features.SetDelegated(true)
	trans, err := NewBuilder(TypeLegacy).
		ChainTag(1).
		Clause(Transfer(vectorRecipient(t), big.NewInt(1))).
		Gas(21000).
		Features(features).
		Build()
	require.NoError(t, err)

	hash, err := trans.SigningHash()
	require.NoError(t, err)
	half, err := crypto.Sign(hash, senderKey)
	require.NoError(t, err)

	fields := trans.inner.packed()
	fields["signature"] = half
	raw, err := encodeSignedLegacy(fields)
	require.NoError(t, err)

	_, err = Decode(raw)
	assert.ErrorIs(t, err, ErrInvalidSignatureLength)
}

func encodeSignedLegacy(fields map[string]interface{}) ([]byte, error) {
	return codec.EncodeObject(fields, signedLegacyProfile)
}
