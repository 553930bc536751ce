package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/rlp"
)

// EncodeObject walks the profile over val in declared field order and
// returns the RLP serialization of the packed tree.
func EncodeObject(val interface{}, p Profile) ([]byte, error) {
	packed, err := p.Kind.Encode(val, p.Name)
	if err != nil {
		return nil, err
	}
	data, err := rlp.EncodeToBytes(packed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	return data, nil
}

// DecodeObject parses data into a generic node tree and zips it against
// the profile, returning the named-field result (a map for struct
// profiles).
func DecodeObject(data []byte, p Profile) (interface{}, error) {
	node, err := DecodeRaw(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	return p.Kind.Decode(node, p.Name)
}

// DecodeRaw parses an RLP byte string into a generic node tree: []byte
// for string items, []interface{} for lists. The input must be a single
// well-formed item with no trailing bytes.
func DecodeRaw(data []byte) (interface{}, error) {
	s := rlp.NewStream(bytes.NewReader(data), uint64(len(data)))
	node, err := parseNode(s)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.Kind(); !errors.Is(err, io.EOF) {
		return nil, errors.New("rlp: trailing bytes after encoded item")
	}
	return node, nil
}

func parseNode(s *rlp.Stream) (interface{}, error) {
	kind, _, err := s.Kind()
	if err != nil {
		return nil, err
	}
	if kind != rlp.List {
		return s.Bytes()
	}
	if _, err := s.List(); err != nil {
		return nil, err
	}
	children := []interface{}{}
	for {
		if _, _, err := s.Kind(); err != nil {
			if errors.Is(err, rlp.EOL) {
				break
			}
			return nil, err
		}
		child, err := parseNode(s)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if err := s.ListEnd(); err != nil {
		return nil, err
	}
	return children, nil
}
