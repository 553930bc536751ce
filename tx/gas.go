package tx

import (
	"errors"
	"math"

	"github.com/lumina-chain/lumina-sdk/params"
)

// ErrGasOverflow is returned when the intrinsic gas of a clause list does
// not fit in 64 bits.
var ErrGasOverflow = errors.New("intrinsic gas overflow")

// IntrinsicGas computes the minimum gas a transaction with the given
// clauses requires before any execution happens: a base cost, a per-clause
// cost depending on whether the clause creates a contract, and a per-byte
// cost over the clause data.
func IntrinsicGas(clauses ...*Clause) (uint64, error) {
	total := params.TxGas
	for _, c := range clauses {
		clauseGas := params.ClauseGas
		if c.IsCreation() {
			clauseGas = params.ClauseGasContractCreation
		}
		if total > math.MaxUint64-clauseGas {
			return 0, ErrGasOverflow
		}
		total += clauseGas

		dg, err := dataGas(c.data)
		if err != nil {
			return 0, err
		}
		if total > math.MaxUint64-dg {
			return 0, ErrGasOverflow
		}
		total += dg
	}
	return total, nil
}

func dataGas(data []byte) (uint64, error) {
	var zeros, nonZeros uint64
	for _, b := range data {
		if b == 0 {
			zeros++
		} else {
			nonZeros++
		}
	}
	zeroGas := zeros * params.TxDataZeroGas
	nonZeroGas := nonZeros * params.TxDataNonZeroGas
	if zeroGas > math.MaxUint64-nonZeroGas {
		return 0, ErrGasOverflow
	}
	return zeroGas + nonZeroGas, nil
}
