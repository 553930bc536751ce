package params

// Intrinsic gas parameters. Gas for a transaction is the base cost plus a
// per-clause cost that depends on whether the clause creates a contract,
// plus a per-byte cost over the clause data.
const (
	TxGas                     uint64 = 5000  // base cost of any transaction
	ClauseGas                 uint64 = 16000 // per clause with a recipient
	ClauseGasContractCreation uint64 = 48000 // per clause without a recipient
	TxDataZeroGas             uint64 = 4     // per zero byte of clause data
	TxDataNonZeroGas          uint64 = 68    // per non-zero byte of clause data
)

// Transaction defaults applied by the facade when an option is not given.
const (
	DefaultExpiration   uint32 = 720 // blocks the transaction stays valid after its block ref
	DefaultGasPriceCoef uint8  = 0
)
