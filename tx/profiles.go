package tx

import (
	"github.com/ledgerwatch/erigon-lib/common/length"

	"github.com/lumina-chain/lumina-sdk/codec"
)

// Wire layouts. RLP carries no field names: the order declared here is
// the protocol, and it must stay identical between the encode and decode
// paths.

var clauseKind = codec.StructKind{
	{Name: "to", Kind: codec.OptionalFixedHexBlobKind{Bytes: length.Addr}},
	{Name: "value", Kind: codec.NumericKind{MaxBytes: 32}},
	{Name: "data", Kind: codec.HexBlobKind{}},
}

var legacyFields = []codec.Profile{
	{Name: "chainTag", Kind: codec.NumericKind{MaxBytes: 1}},
	{Name: "blockRef", Kind: codec.CompactFixedHexBlobKind{Bytes: 8}},
	{Name: "expiration", Kind: codec.NumericKind{MaxBytes: 4}},
	{Name: "clauses", Kind: codec.ArrayKind{Item: clauseKind}},
	{Name: "gasPriceCoef", Kind: codec.NumericKind{MaxBytes: 1}},
	{Name: "gas", Kind: codec.NumericKind{MaxBytes: 8}},
	{Name: "dependsOn", Kind: codec.OptionalFixedHexBlobKind{Bytes: length.Hash}},
	{Name: "nonce", Kind: codec.NumericKind{MaxBytes: 8}},
	{Name: "reserved", Kind: codec.ArrayKind{Item: codec.BufferKind{}}},
}

var dynamicFeeFields = []codec.Profile{
	{Name: "chainTag", Kind: codec.NumericKind{MaxBytes: 1}},
	{Name: "blockRef", Kind: codec.CompactFixedHexBlobKind{Bytes: 8}},
	{Name: "expiration", Kind: codec.NumericKind{MaxBytes: 4}},
	{Name: "clauses", Kind: codec.ArrayKind{Item: clauseKind}},
	{Name: "maxPriorityFeePerGas", Kind: codec.NumericKind{MaxBytes: 32}},
	{Name: "maxFeePerGas", Kind: codec.NumericKind{MaxBytes: 32}},
	{Name: "gas", Kind: codec.NumericKind{MaxBytes: 8}},
	{Name: "dependsOn", Kind: codec.OptionalFixedHexBlobKind{Bytes: length.Hash}},
	{Name: "nonce", Kind: codec.NumericKind{MaxBytes: 8}},
	{Name: "reserved", Kind: codec.ArrayKind{Item: codec.BufferKind{}}},
}

var (
	unsignedLegacyProfile     = codec.Profile{Name: "tx", Kind: codec.StructKind(legacyFields)}
	signedLegacyProfile       = codec.Profile{Name: "tx", Kind: codec.StructKind(withSignature(legacyFields))}
	unsignedDynamicFeeProfile = codec.Profile{Name: "tx", Kind: codec.StructKind(dynamicFeeFields)}
	signedDynamicFeeProfile   = codec.Profile{Name: "tx", Kind: codec.StructKind(withSignature(dynamicFeeFields))}
)

func withSignature(fields []codec.Profile) []codec.Profile {
	signed := make([]codec.Profile, len(fields), len(fields)+1)
	copy(signed, fields)
	return append(signed, codec.Profile{Name: "signature", Kind: codec.BufferKind{}})
}
