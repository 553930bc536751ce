package tx

import (
	"errors"
	"math/big"

	"github.com/lumina-chain/lumina-sdk/common"
)

// Features is the bitmask of protocol features a transaction opts into,
// carried as the first element of the reserved field.
type Features uint32

// DelegationFeature marks the transaction as fee-delegated: a second
// signature authorizes a gas payer distinct from the sender.
const DelegationFeature Features = 1

// IsDelegated reports whether the fee-delegation bit is set.
func (f Features) IsDelegated() bool {
	return f&DelegationFeature == DelegationFeature
}

// SetDelegated sets or clears the fee-delegation bit.
func (f *Features) SetDelegated(on bool) {
	if on {
		*f |= DelegationFeature
	} else {
		*f &^= DelegationFeature
	}
}

var errReservedNotTrimmed = errors.New("invalid reserved fields: not trimmed")

// Reserved is the forward-compatible extension record every transaction
// carries. Unknown trailing entries survive a decode/encode round trip so
// that transactions from newer protocol revisions re-encode byte exact.
type Reserved struct {
	Features Features
	Unused   [][]byte
}

func (r Reserved) copy() Reserved {
	cpy := Reserved{Features: r.Features}
	if len(r.Unused) > 0 {
		cpy.Unused = make([][]byte, 0, len(r.Unused))
		for _, u := range r.Unused {
			cpy.Unused = append(cpy.Unused, common.CopyBytes(u))
		}
	}
	return cpy
}

// packed returns the reserved field as the wire list: features followed by
// the unused entries, with trailing zero-value elements trimmed. A fully
// zero record packs to an empty list; anything else would break wire
// compatibility with nodes hashing the canonical form.
func (r Reserved) packed() []interface{} {
	list := make([]interface{}, 0, len(r.Unused)+1)
	list = append(list, new(big.Int).SetUint64(uint64(r.Features)).Bytes())
	for _, u := range r.Unused {
		list = append(list, common.CopyBytes(u))
	}
	for len(list) > 0 {
		last, _ := list[len(list)-1].([]byte)
		if len(last) != 0 {
			break
		}
		list = list[:len(list)-1]
	}
	return list
}

// unpackReserved rebuilds a Reserved record from the decoded wire list,
// rejecting non-canonical (untrimmed) input.
func unpackReserved(items []interface{}) (Reserved, error) {
	if len(items) == 0 {
		return Reserved{}, nil
	}
	last, _ := items[len(items)-1].([]byte)
	if len(last) == 0 {
		return Reserved{}, errReservedNotTrimmed
	}
	features, ok := items[0].([]byte)
	if !ok {
		return Reserved{}, errors.New("invalid reserved fields: features must be a byte string")
	}
	if len(features) > 4 {
		return Reserved{}, errors.New("invalid reserved fields: features exceeds 4 bytes")
	}
	if len(features) > 0 && features[0] == 0 {
		return Reserved{}, errors.New("invalid reserved fields: non-canonical features")
	}
	r := Reserved{Features: Features(new(big.Int).SetBytes(features).Uint64())}
	if len(items) > 1 {
		r.Unused = make([][]byte, 0, len(items)-1)
		for _, item := range items[1:] {
			u, ok := item.([]byte)
			if !ok {
				return Reserved{}, errors.New("invalid reserved fields: entry must be a byte string")
			}
			r.Unused = append(r.Unused, common.CopyBytes(u))
		}
	}
	return r, nil
}
