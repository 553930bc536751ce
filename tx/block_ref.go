package tx

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/lumina-chain/lumina-sdk/common"
)

// BlockRef is the first 8 bytes of a recent block id. Together with the
// expiration field it bounds the window in which a transaction may be
// included: block number in the first 4 bytes, a fragment of the block
// hash in the rest.
type BlockRef [8]byte

// NewBlockRef builds a block ref holding only a block number.
func NewBlockRef(blockNum uint32) BlockRef {
	var br BlockRef
	binary.BigEndian.PutUint32(br[:], blockNum)
	return br
}

// NewBlockRefFromID truncates a full block id to its leading 8 bytes.
func NewBlockRefFromID(blockID common.Bytes32) BlockRef {
	var br BlockRef
	copy(br[:], blockID[:])
	return br
}

// ParseBlockRef parses a 0x-prefixed hex string into a BlockRef.
func ParseBlockRef(s string) (BlockRef, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return BlockRef{}, fmt.Errorf("invalid block ref %q: %w", s, err)
	}
	if len(b) != 8 {
		return BlockRef{}, fmt.Errorf("invalid block ref %q: expected 8 bytes, got %d", s, len(b))
	}
	var br BlockRef
	copy(br[:], b)
	return br, nil
}

// Number extracts the block number the ref points at.
func (br BlockRef) Number() uint32 {
	return binary.BigEndian.Uint32(br[:4])
}

func (br BlockRef) Bytes() []byte { return br[:] }

func (br BlockRef) String() string { return hexutil.Encode(br[:]) }
