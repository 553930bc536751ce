package tx

import (
	"math/big"

	"github.com/lumina-chain/lumina-sdk/codec"
	"github.com/lumina-chain/lumina-sdk/common"
)

// DynamicFeeTx is the fee-market transaction body: the sender bids a
// priority fee on top of the network base fee, bounded by an absolute
// fee cap.
type DynamicFeeTx struct {
	ChainTag             byte
	BlockRef             BlockRef
	Expiration           uint32
	Clauses              []*Clause
	MaxPriorityFeePerGas *big.Int
	MaxFeePerGas         *big.Int
	Gas                  uint64
	DependsOn            *common.Bytes32
	Nonce                uint64
	Reserved             Reserved
}

// copy creates a deep copy of the transaction body.
func (body *DynamicFeeTx) copy() TxData {
	cpy := &DynamicFeeTx{
		ChainTag:   body.ChainTag,
		BlockRef:   body.BlockRef,
		Expiration: body.Expiration,
		Clauses:    copyClauses(body.Clauses),

		// These are copied below.
		MaxPriorityFeePerGas: new(big.Int),
		MaxFeePerGas:         new(big.Int),

		Gas:       body.Gas,
		DependsOn: copyDependsOn(body.DependsOn),
		Nonce:     body.Nonce,
		Reserved:  body.Reserved.copy(),
	}
	if body.MaxPriorityFeePerGas != nil {
		cpy.MaxPriorityFeePerGas.Set(body.MaxPriorityFeePerGas)
	}
	if body.MaxFeePerGas != nil {
		cpy.MaxFeePerGas.Set(body.MaxFeePerGas)
	}
	return cpy
}

func (body *DynamicFeeTx) txType() byte               { return TypeDynamicFee }
func (body *DynamicFeeTx) chainTag() byte             { return body.ChainTag }
func (body *DynamicFeeTx) blockRef() BlockRef         { return body.BlockRef }
func (body *DynamicFeeTx) expiration() uint32         { return body.Expiration }
func (body *DynamicFeeTx) clauses() []*Clause         { return body.Clauses }
func (body *DynamicFeeTx) gas() uint64                { return body.Gas }
func (body *DynamicFeeTx) dependsOn() *common.Bytes32 { return body.DependsOn }
func (body *DynamicFeeTx) nonce() uint64              { return body.Nonce }
func (body *DynamicFeeTx) reserved() Reserved         { return body.Reserved }

func (body *DynamicFeeTx) setClauses(clauses []*Clause) { body.Clauses = clauses }
func (body *DynamicFeeTx) setGas(gas uint64)            { body.Gas = gas }

func (body *DynamicFeeTx) packed() map[string]interface{} {
	maxPriorityFee := body.MaxPriorityFeePerGas
	if maxPriorityFee == nil {
		maxPriorityFee = new(big.Int)
	}
	maxFee := body.MaxFeePerGas
	if maxFee == nil {
		maxFee = new(big.Int)
	}
	return map[string]interface{}{
		"chainTag":             body.ChainTag,
		"blockRef":             body.BlockRef.Bytes(),
		"expiration":           body.Expiration,
		"clauses":              packClauses(body.Clauses),
		"maxPriorityFeePerGas": maxPriorityFee,
		"maxFeePerGas":         maxFee,
		"gas":                  body.Gas,
		"dependsOn":            packDependsOn(body.DependsOn),
		"nonce":                body.Nonce,
		"reserved":             body.Reserved.packed(),
	}
}

func (body *DynamicFeeTx) profile(signed bool) codec.Profile {
	if signed {
		return signedDynamicFeeProfile
	}
	return unsignedDynamicFeeProfile
}
