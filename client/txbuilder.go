package client

import (
	"errors"
	"math/big"

	"github.com/lumina-chain/lumina-sdk/common"
	"github.com/lumina-chain/lumina-sdk/params"
	"github.com/lumina-chain/lumina-sdk/tx"
)

// TxOptions parameterizes NewTransaction. Zero values mean "apply the
// network default": block ref from the best block, the standard
// expiration window, intrinsic gas for the clause list, and a random
// nonce.
type TxOptions struct {
	Type    byte // tx.TypeLegacy or tx.TypeDynamicFee
	Clauses []*tx.Clause

	BlockRef   *tx.BlockRef
	Expiration uint32
	Gas        uint64
	DependsOn  *common.Bytes32
	Nonce      uint64
	Delegated  bool

	// legacy pricing
	GasPriceCoef *uint8

	// dynamic-fee pricing
	MaxPriorityFeePerGas *big.Int
	MaxFeePerGas         *big.Int
}

// NewTransaction builds an unsigned transaction with network defaults
// applied: the chain tag is discovered from genesis and the block ref
// derived from the current best block unless given explicitly.
func (c *Client) NewTransaction(opts TxOptions) (*tx.Transaction, error) {
	if len(opts.Clauses) == 0 {
		return nil, errors.New("new transaction: at least one clause required")
	}

	chainTag, err := c.ChainTag()
	if err != nil {
		return nil, err
	}

	blockRef := opts.BlockRef
	if blockRef == nil {
		best, err := c.BestBlock()
		if err != nil {
			return nil, err
		}
		br := tx.NewBlockRefFromID(best.ID)
		blockRef = &br
	}

	expiration := opts.Expiration
	if expiration == 0 {
		expiration = params.DefaultExpiration
	}

	gas := opts.Gas
	if gas == 0 {
		gas, err = tx.IntrinsicGas(opts.Clauses...)
		if err != nil {
			return nil, err
		}
	}

	nonce := opts.Nonce
	if nonce == 0 {
		nonce, err = tx.RandomNonce()
		if err != nil {
			return nil, err
		}
	}

	builder := tx.NewBuilder(opts.Type).
		ChainTag(chainTag).
		BlockRef(*blockRef).
		Expiration(expiration).
		Gas(gas).
		DependsOn(opts.DependsOn).
		Nonce(nonce)
	for _, clause := range opts.Clauses {
		builder.Clause(clause)
	}
	if opts.Delegated {
		var features tx.Features
		features.SetDelegated(true)
		builder.Features(features)
	}

	switch opts.Type {
	case tx.TypeLegacy:
		coef := params.DefaultGasPriceCoef
		if opts.GasPriceCoef != nil {
			coef = *opts.GasPriceCoef
		}
		builder.GasPriceCoef(coef)
	case tx.TypeDynamicFee:
		if opts.MaxPriorityFeePerGas != nil {
			builder.MaxPriorityFeePerGas(opts.MaxPriorityFeePerGas)
		}
		if opts.MaxFeePerGas != nil {
			builder.MaxFeePerGas(opts.MaxFeePerGas)
		}
	}

	return builder.Build()
}
