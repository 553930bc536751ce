package tx

import (
	"github.com/lumina-chain/lumina-sdk/codec"
	"github.com/lumina-chain/lumina-sdk/common"
)

// Transaction types. TypeLegacy transactions carry a gas price
// coefficient and encode as a bare RLP list; TypeDynamicFee transactions
// carry a fee-cap pair and prefix their encoding with the type byte.
const (
	TypeLegacy     byte = 0x00
	TypeDynamicFee byte = 0x51
)

// TxData is the variant-specific body of a transaction. The two
// implementations, LegacyTx and DynamicFeeTx, differ only in their
// gas-pricing fields; constructing one excludes the other's pricing at
// the type level.
type TxData interface {
	txType() byte
	copy() TxData

	chainTag() byte
	blockRef() BlockRef
	expiration() uint32
	clauses() []*Clause
	gas() uint64
	dependsOn() *common.Bytes32
	nonce() uint64
	reserved() Reserved

	setClauses(clauses []*Clause)
	setGas(gas uint64)

	// packed returns the body as the value map expected by the variant's
	// profile (signature excluded).
	packed() map[string]interface{}
	// profile returns the wire layout for the body, with or without the
	// trailing signature field.
	profile(signed bool) codec.Profile
}

func copyClauses(clauses []*Clause) []*Clause {
	cpy := make([]*Clause, 0, len(clauses))
	for _, c := range clauses {
		cpy = append(cpy, c.copy())
	}
	return cpy
}

func copyDependsOn(dependsOn *common.Bytes32) *common.Bytes32 {
	if dependsOn == nil {
		return nil
	}
	cpy := *dependsOn
	return &cpy
}

func packClauses(clauses []*Clause) []interface{} {
	packed := make([]interface{}, 0, len(clauses))
	for _, c := range clauses {
		packed = append(packed, c.packed())
	}
	return packed
}

func packDependsOn(dependsOn *common.Bytes32) interface{} {
	if dependsOn == nil {
		return nil
	}
	return dependsOn.Bytes()
}
