package tx

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/lumina-chain/lumina-sdk/codec"
	"github.com/lumina-chain/lumina-sdk/common"
)

// Field counts of the two wire layouts. A signed transaction carries one
// trailing signature field.
const (
	legacyFieldCount     = 9
	dynamicFeeFieldCount = 10
)

// ErrUnsupportedType is returned for a leading type byte that names no
// known transaction variant.
var ErrUnsupportedType = errors.New("unsupported transaction type")

// Decode parses wire bytes into a Transaction. The variant is classified
// by the leading type byte (a bare RLP list means legacy) and the
// signed/unsigned layout by field count; any other combination is an
// error. Signed input is validated far enough that Origin (and Delegator
// for fee-delegated input) can only fail on a cryptographically invalid
// signature.
func Decode(raw []byte) (*Transaction, error) {
	if len(raw) == 0 {
		return nil, errors.New("decode transaction: empty input")
	}
	// An RLP list prefix cannot collide with a type byte: type bytes stay
	// below 0xc0.
	if raw[0] >= 0xc0 {
		return decodePayload(raw, TypeLegacy)
	}
	if raw[0] == TypeDynamicFee {
		return decodePayload(raw[1:], TypeDynamicFee)
	}
	return nil, fmt.Errorf("%w: 0x%02x", ErrUnsupportedType, raw[0])
}

func decodePayload(payload []byte, txType byte) (*Transaction, error) {
	node, err := codec.DecodeRaw(payload)
	if err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}
	list, ok := node.([]interface{})
	if !ok {
		return nil, errors.New("decode transaction: expected list")
	}

	unsignedCount := legacyFieldCount
	if txType == TypeDynamicFee {
		unsignedCount = dynamicFeeFieldCount
	}
	var signed bool
	switch len(list) {
	case unsignedCount:
		signed = false
	case unsignedCount + 1:
		signed = true
	default:
		return nil, fmt.Errorf("decode transaction: expected %d or %d fields, got %d",
			unsignedCount, unsignedCount+1, len(list))
	}

	var body TxData
	if txType == TypeDynamicFee {
		body = &DynamicFeeTx{}
	} else {
		body = &LegacyTx{}
	}
	decoded, err := body.profile(signed).Kind.Decode(node, "tx")
	if err != nil {
		return nil, err
	}
	fields := decoded.(map[string]interface{})

	if err := unpackBody(body, fields); err != nil {
		return nil, err
	}
	t := &Transaction{inner: body}
	if !signed {
		return t, nil
	}

	sig := fields["signature"].([]byte)
	if err := validateSignature(sig, body.reserved().Features.IsDelegated()); err != nil {
		return nil, err
	}
	t.signature = sig
	return t, nil
}

func unpackBody(body TxData, fields map[string]interface{}) error {
	clauses, err := unpackClauses(fields["clauses"].([]interface{}))
	if err != nil {
		return err
	}
	reserved, err := unpackReserved(fields["reserved"].([]interface{}))
	if err != nil {
		return err
	}
	var blockRef BlockRef
	copy(blockRef[:], fields["blockRef"].([]byte))
	var dependsOn *common.Bytes32
	if raw, ok := fields["dependsOn"].([]byte); ok {
		id := common.BytesToBytes32(raw)
		dependsOn = &id
	}

	switch b := body.(type) {
	case *LegacyTx:
		b.ChainTag = byte(fields["chainTag"].(*big.Int).Uint64())
		b.BlockRef = blockRef
		b.Expiration = uint32(fields["expiration"].(*big.Int).Uint64())
		b.Clauses = clauses
		b.GasPriceCoef = uint8(fields["gasPriceCoef"].(*big.Int).Uint64())
		b.Gas = fields["gas"].(*big.Int).Uint64()
		b.DependsOn = dependsOn
		b.Nonce = fields["nonce"].(*big.Int).Uint64()
		b.Reserved = reserved
	case *DynamicFeeTx:
		b.ChainTag = byte(fields["chainTag"].(*big.Int).Uint64())
		b.BlockRef = blockRef
		b.Expiration = uint32(fields["expiration"].(*big.Int).Uint64())
		b.Clauses = clauses
		b.MaxPriorityFeePerGas = fields["maxPriorityFeePerGas"].(*big.Int)
		b.MaxFeePerGas = fields["maxFeePerGas"].(*big.Int)
		b.Gas = fields["gas"].(*big.Int).Uint64()
		b.DependsOn = dependsOn
		b.Nonce = fields["nonce"].(*big.Int).Uint64()
		b.Reserved = reserved
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, body)
	}
	return nil
}

func unpackClauses(items []interface{}) ([]*Clause, error) {
	clauses := make([]*Clause, 0, len(items))
	for _, item := range items {
		fields := item.(map[string]interface{})
		c := &Clause{
			value: fields["value"].(*big.Int),
			data:  fields["data"].([]byte),
		}
		if raw, ok := fields["to"].([]byte); ok {
			to := common.BytesToAddress(raw)
			c.to = &to
		}
		clauses = append(clauses, c)
	}
	return clauses, nil
}
