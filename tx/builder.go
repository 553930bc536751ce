package tx

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/lumina-chain/lumina-sdk/common"
)

// Builder assembles a transaction of one variant. Setting a pricing field
// belonging to the other variant is rejected at Build, so a legacy
// transaction can never silently carry fee caps nor a dynamic-fee
// transaction a price coefficient.
type Builder struct {
	txType     byte
	chainTag   byte
	blockRef   BlockRef
	expiration uint32
	clauses    []*Clause
	gas        uint64
	dependsOn  *common.Bytes32
	nonce      uint64
	features   Features
	unused     [][]byte

	gasPriceCoef         *uint8
	maxPriorityFeePerGas *big.Int
	maxFeePerGas         *big.Int
}

// NewBuilder starts a builder for the given transaction type.
func NewBuilder(txType byte) *Builder {
	return &Builder{txType: txType}
}

func (b *Builder) ChainTag(tag byte) *Builder {
	b.chainTag = tag
	return b
}

func (b *Builder) BlockRef(br BlockRef) *Builder {
	b.blockRef = br
	return b
}

func (b *Builder) Expiration(blocks uint32) *Builder {
	b.expiration = blocks
	return b
}

// Clause appends one clause to the transaction.
func (b *Builder) Clause(c *Clause) *Builder {
	b.clauses = append(b.clauses, c.copy())
	return b
}

func (b *Builder) Gas(gas uint64) *Builder {
	b.gas = gas
	return b
}

func (b *Builder) DependsOn(txID *common.Bytes32) *Builder {
	b.dependsOn = copyDependsOn(txID)
	return b
}

func (b *Builder) Nonce(nonce uint64) *Builder {
	b.nonce = nonce
	return b
}

func (b *Builder) Features(f Features) *Builder {
	b.features = f
	return b
}

// GasPriceCoef sets the legacy pricing coefficient (0-255).
func (b *Builder) GasPriceCoef(coef uint8) *Builder {
	b.gasPriceCoef = &coef
	return b
}

// MaxPriorityFeePerGas sets the dynamic-fee priority bid.
func (b *Builder) MaxPriorityFeePerGas(fee *big.Int) *Builder {
	b.maxPriorityFeePerGas = new(big.Int).Set(fee)
	return b
}

// MaxFeePerGas sets the dynamic-fee absolute cap.
func (b *Builder) MaxFeePerGas(fee *big.Int) *Builder {
	b.maxFeePerGas = new(big.Int).Set(fee)
	return b
}

// Build validates the pricing fields against the variant and returns the
// unsigned transaction.
func (b *Builder) Build() (*Transaction, error) {
	reserved := Reserved{Features: b.features, Unused: b.unused}
	switch b.txType {
	case TypeLegacy:
		if b.maxFeePerGas != nil || b.maxPriorityFeePerGas != nil {
			return nil, errors.New("build: fee caps not applicable to legacy transaction")
		}
		var coef uint8
		if b.gasPriceCoef != nil {
			coef = *b.gasPriceCoef
		}
		return NewTransaction(&LegacyTx{
			ChainTag:     b.chainTag,
			BlockRef:     b.blockRef,
			Expiration:   b.expiration,
			Clauses:      b.clauses,
			GasPriceCoef: coef,
			Gas:          b.gas,
			DependsOn:    b.dependsOn,
			Nonce:        b.nonce,
			Reserved:     reserved,
		}), nil
	case TypeDynamicFee:
		if b.gasPriceCoef != nil {
			return nil, errors.New("build: gas price coefficient not applicable to dynamic fee transaction")
		}
		maxPriorityFee := b.maxPriorityFeePerGas
		if maxPriorityFee == nil {
			maxPriorityFee = new(big.Int)
		}
		maxFee := b.maxFeePerGas
		if maxFee == nil {
			maxFee = new(big.Int)
		}
		return NewTransaction(&DynamicFeeTx{
			ChainTag:             b.chainTag,
			BlockRef:             b.blockRef,
			Expiration:           b.expiration,
			Clauses:              b.clauses,
			MaxPriorityFeePerGas: maxPriorityFee,
			MaxFeePerGas:         maxFee,
			Gas:                  b.gas,
			DependsOn:            b.dependsOn,
			Nonce:                b.nonce,
			Reserved:             reserved,
		}), nil
	default:
		return nil, fmt.Errorf("build: %w: 0x%02x", ErrUnsupportedType, b.txType)
	}
}
