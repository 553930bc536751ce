package tx

import (
	"encoding/json"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/lumina-chain/lumina-sdk/common"
)

// ErrEmptyBytecode is returned when a contract-creation clause is built
// without deployment bytecode.
var ErrEmptyBytecode = errors.New("contract creation clause requires non-empty data")

// Clause is one operation carried by a transaction: a value transfer, a
// contract call, or a contract creation (nil recipient). A transaction
// executes its clauses atomically and in order.
type Clause struct {
	to    *common.Address
	value *big.Int
	data  []byte
}

// Transfer builds a clause moving value to an account, with no call data.
func Transfer(to common.Address, value *big.Int) *Clause {
	return Call(to, value, nil)
}

// Call builds a clause invoking a contract with the given value and input
// data.
func Call(to common.Address, value *big.Int, data []byte) *Clause {
	cpy := to
	return &Clause{
		to:    &cpy,
		value: newValue(value),
		data:  common.CopyBytes(data),
	}
}

// Deploy builds a contract-creation clause. The bytecode must be
// non-empty; there is nothing to deploy otherwise.
func Deploy(bytecode []byte, value *big.Int) (*Clause, error) {
	if len(bytecode) == 0 {
		return nil, ErrEmptyBytecode
	}
	return &Clause{
		to:    nil,
		value: newValue(value),
		data:  common.CopyBytes(bytecode),
	}, nil
}

func newValue(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// To returns the clause recipient, or nil for contract creation.
func (c *Clause) To() *common.Address {
	if c.to == nil {
		return nil
	}
	cpy := *c.to
	return &cpy
}

// Value returns the amount transferred by the clause.
func (c *Clause) Value() *big.Int {
	return new(big.Int).Set(c.value)
}

// Data returns the clause call data or deployment bytecode.
func (c *Clause) Data() []byte {
	return common.CopyBytes(c.data)
}

// IsCreation reports whether the clause creates a contract.
func (c *Clause) IsCreation() bool {
	return c.to == nil
}

func (c *Clause) copy() *Clause {
	cpy := &Clause{
		value: new(big.Int).Set(c.value),
		data:  common.CopyBytes(c.data),
	}
	if c.to != nil {
		to := *c.to
		cpy.to = &to
	}
	return cpy
}

// packed returns the clause as the value map expected by the clause
// profile.
func (c *Clause) packed() map[string]interface{} {
	var to interface{}
	if c.to != nil {
		to = c.to.Bytes()
	}
	return map[string]interface{}{
		"to":    to,
		"value": c.value,
		"data":  c.data,
	}
}

type clauseJSON struct {
	To    *common.Address `json:"to"`
	Value *hexutil.Big    `json:"value"`
	Data  hexutil.Bytes   `json:"data"`
}

func (c *Clause) MarshalJSON() ([]byte, error) {
	return json.Marshal(&clauseJSON{
		To:    c.To(),
		Value: (*hexutil.Big)(c.value),
		Data:  c.data,
	})
}

func (c *Clause) UnmarshalJSON(input []byte) error {
	var dec clauseJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	if dec.To == nil && len(dec.Data) == 0 {
		return ErrEmptyBytecode
	}
	c.to = dec.To
	c.value = newValue((*big.Int)(dec.Value))
	c.data = common.CopyBytes(dec.Data)
	return nil
}
