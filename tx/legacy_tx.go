package tx

import (
	"github.com/lumina-chain/lumina-sdk/codec"
	"github.com/lumina-chain/lumina-sdk/common"
)

// LegacyTx is the original transaction body: gas price is a single
// coefficient interpolating between the network base price and twice the
// base price.
type LegacyTx struct {
	ChainTag     byte
	BlockRef     BlockRef
	Expiration   uint32
	Clauses      []*Clause
	GasPriceCoef uint8
	Gas          uint64
	DependsOn    *common.Bytes32
	Nonce        uint64
	Reserved     Reserved
}

// copy creates a deep copy of the transaction body.
func (body *LegacyTx) copy() TxData {
	return &LegacyTx{
		ChainTag:     body.ChainTag,
		BlockRef:     body.BlockRef,
		Expiration:   body.Expiration,
		Clauses:      copyClauses(body.Clauses),
		GasPriceCoef: body.GasPriceCoef,
		Gas:          body.Gas,
		DependsOn:    copyDependsOn(body.DependsOn),
		Nonce:        body.Nonce,
		Reserved:     body.Reserved.copy(),
	}
}

func (body *LegacyTx) txType() byte               { return TypeLegacy }
func (body *LegacyTx) chainTag() byte             { return body.ChainTag }
func (body *LegacyTx) blockRef() BlockRef         { return body.BlockRef }
func (body *LegacyTx) expiration() uint32         { return body.Expiration }
func (body *LegacyTx) clauses() []*Clause         { return body.Clauses }
func (body *LegacyTx) gas() uint64                { return body.Gas }
func (body *LegacyTx) dependsOn() *common.Bytes32 { return body.DependsOn }
func (body *LegacyTx) nonce() uint64              { return body.Nonce }
func (body *LegacyTx) reserved() Reserved         { return body.Reserved }

func (body *LegacyTx) setClauses(clauses []*Clause) { body.Clauses = clauses }
func (body *LegacyTx) setGas(gas uint64)            { body.Gas = gas }

func (body *LegacyTx) packed() map[string]interface{} {
	return map[string]interface{}{
		"chainTag":     body.ChainTag,
		"blockRef":     body.BlockRef.Bytes(),
		"expiration":   body.Expiration,
		"clauses":      packClauses(body.Clauses),
		"gasPriceCoef": body.GasPriceCoef,
		"gas":          body.Gas,
		"dependsOn":    packDependsOn(body.DependsOn),
		"nonce":        body.Nonce,
		"reserved":     body.Reserved.packed(),
	}
}

func (body *LegacyTx) profile(signed bool) codec.Profile {
	if signed {
		return signedLegacyProfile
	}
	return unsignedLegacyProfile
}
