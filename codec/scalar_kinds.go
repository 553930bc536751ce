package codec

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/lumina-chain/lumina-sdk/common"
)

// NumericKind codes a non-negative integer as its minimal big-endian byte
// string. Zero encodes as the empty string; the empty string decodes back
// to zero. MaxBytes bounds the minimal encoding.
type NumericKind struct {
	MaxBytes int
}

func (k NumericKind) Encode(val interface{}, path string) (interface{}, error) {
	var n *big.Int
	switch v := val.(type) {
	case *big.Int:
		n = v
	case uint64:
		n = new(big.Int).SetUint64(v)
	case uint32:
		n = new(big.Int).SetUint64(uint64(v))
	case uint8:
		n = new(big.Int).SetUint64(uint64(v))
	case int:
		if v < 0 {
			return nil, fmt.Errorf("%s: negative number", path)
		}
		n = new(big.Int).SetInt64(int64(v))
	case string:
		parsed, err := hexutil.DecodeBig(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		n = parsed
	default:
		return nil, typeErr(path, "integer", val)
	}
	if n == nil {
		return nil, typeErr(path, "integer", val)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%s: negative number", path)
	}
	b := n.Bytes()
	if len(b) > k.MaxBytes {
		return nil, fmt.Errorf("%s: number exceeds %d bytes", path, k.MaxBytes)
	}
	return b, nil
}

func (k NumericKind) Decode(node interface{}, path string) (interface{}, error) {
	b, ok := node.([]byte)
	if !ok {
		return nil, structureErr(path, "expected byte string, got list")
	}
	if len(b) > k.MaxBytes {
		return nil, fmt.Errorf("%s: number exceeds %d bytes", path, k.MaxBytes)
	}
	if len(b) > 0 && b[0] == 0 {
		return nil, fmt.Errorf("%s: non-canonical integer (leading zero bytes)", path)
	}
	return new(big.Int).SetBytes(b), nil
}

// BufferKind passes already-binary data through untouched. Used for
// signatures and the opaque entries of the reserved field.
type BufferKind struct{}

func (k BufferKind) Encode(val interface{}, path string) (interface{}, error) {
	b, ok := val.([]byte)
	if !ok {
		return nil, typeErr(path, "[]byte", val)
	}
	return common.CopyBytes(b), nil
}

func (k BufferKind) Decode(node interface{}, path string) (interface{}, error) {
	b, ok := node.([]byte)
	if !ok {
		return nil, structureErr(path, "expected byte string, got list")
	}
	return common.CopyBytes(b), nil
}

// HexBlobKind codes an arbitrary-length byte string. Textual input must be
// 0x-prefixed hex; binary input passes through.
type HexBlobKind struct{}

func (k HexBlobKind) Encode(val interface{}, path string) (interface{}, error) {
	return encodeBlob(val, path)
}

func (k HexBlobKind) Decode(node interface{}, path string) (interface{}, error) {
	b, ok := node.([]byte)
	if !ok {
		return nil, structureErr(path, "expected byte string, got list")
	}
	return common.CopyBytes(b), nil
}

// FixedHexBlobKind is a HexBlobKind whose value must be exactly Bytes long
// (20 for addresses, 32 for hashes).
type FixedHexBlobKind struct {
	Bytes int
}

func (k FixedHexBlobKind) Encode(val interface{}, path string) (interface{}, error) {
	b, err := encodeBlob(val, path)
	if err != nil {
		return nil, err
	}
	if len(b) != k.Bytes {
		return nil, fmt.Errorf("%s: expected %d bytes, got %d", path, k.Bytes, len(b))
	}
	return b, nil
}

func (k FixedHexBlobKind) Decode(node interface{}, path string) (interface{}, error) {
	b, ok := node.([]byte)
	if !ok {
		return nil, structureErr(path, "expected byte string, got list")
	}
	if len(b) != k.Bytes {
		return nil, fmt.Errorf("%s: expected %d bytes, got %d", path, k.Bytes, len(b))
	}
	return common.CopyBytes(b), nil
}

// OptionalFixedHexBlobKind behaves like FixedHexBlobKind but treats a nil
// or empty value as the empty byte string. Used for the optional `to` and
// `dependsOn` fields. Decode returns nil for an empty field.
type OptionalFixedHexBlobKind struct {
	Bytes int
}

func (k OptionalFixedHexBlobKind) Encode(val interface{}, path string) (interface{}, error) {
	if val == nil {
		return []byte{}, nil
	}
	b, err := encodeBlob(val, path)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return []byte{}, nil
	}
	if len(b) != k.Bytes {
		return nil, fmt.Errorf("%s: expected %d bytes, got %d", path, k.Bytes, len(b))
	}
	return b, nil
}

func (k OptionalFixedHexBlobKind) Decode(node interface{}, path string) (interface{}, error) {
	b, ok := node.([]byte)
	if !ok {
		return nil, structureErr(path, "expected byte string, got list")
	}
	if len(b) == 0 {
		return nil, nil
	}
	if len(b) != k.Bytes {
		return nil, fmt.Errorf("%s: expected %d bytes, got %d", path, k.Bytes, len(b))
	}
	return common.CopyBytes(b), nil
}

// CompactFixedHexBlobKind codes a fixed-size field whose leading zero
// bytes are stripped on the wire and restored on decode. The in-memory
// form is always exactly Bytes long; the wire form keeps at least one
// byte, so an all-zero value travels as a single 0x00.
type CompactFixedHexBlobKind struct {
	Bytes int
}

func (k CompactFixedHexBlobKind) Encode(val interface{}, path string) (interface{}, error) {
	b, err := encodeBlob(val, path)
	if err != nil {
		return nil, err
	}
	if len(b) != k.Bytes {
		return nil, fmt.Errorf("%s: expected %d bytes, got %d", path, k.Bytes, len(b))
	}
	trimmed := common.TrimLeftZeroes(b)
	if len(trimmed) == 0 {
		trimmed = b[k.Bytes-1:]
	}
	return common.CopyBytes(trimmed), nil
}

func (k CompactFixedHexBlobKind) Decode(node interface{}, path string) (interface{}, error) {
	b, ok := node.([]byte)
	if !ok {
		return nil, structureErr(path, "expected byte string, got list")
	}
	if len(b) == 0 || len(b) > k.Bytes {
		return nil, fmt.Errorf("%s: expected 1 to %d bytes, got %d", path, k.Bytes, len(b))
	}
	if len(b) > 1 && b[0] == 0 {
		return nil, fmt.Errorf("%s: non-canonical compact field (leading zero bytes)", path)
	}
	out := make([]byte, k.Bytes)
	copy(out[k.Bytes-len(b):], b)
	return out, nil
}

// encodeBlob normalizes the textual hex boundary: a string must be valid
// 0x-prefixed hex, a []byte passes through.
func encodeBlob(val interface{}, path string) ([]byte, error) {
	switch v := val.(type) {
	case []byte:
		return common.CopyBytes(v), nil
	case string:
		b, err := hexutil.Decode(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return b, nil
	default:
		return nil, typeErr(path, "[]byte or hex string", val)
	}
}
