// Package tx implements the transaction data model of the Lumina chain:
// multi-clause transactions in two gas-pricing variants, their canonical
// RLP wire form, intrinsic gas, and the dual-signature protocol that
// binds sender and fee payer to a transaction.
package tx

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"sync/atomic"

	"golang.org/x/exp/slices"

	"github.com/lumina-chain/lumina-sdk/codec"
	"github.com/lumina-chain/lumina-sdk/common"
	"github.com/lumina-chain/lumina-sdk/crypto"
)

var (
	// ErrUnsigned is returned when an operation needs a signature the
	// transaction does not carry yet.
	ErrUnsigned = errors.New("unsigned transaction")

	// ErrAlreadySigned is returned when mutating a signed transaction,
	// which would silently invalidate its signature.
	ErrAlreadySigned = errors.New("transaction already signed")

	// ErrTxTypeNotSupported is returned when a pricing accessor does not
	// apply to the transaction's variant.
	ErrTxTypeNotSupported = errors.New("transaction type not supported")

	// ErrInvalidSignatureLength is returned for signatures that are not
	// 65 bytes (single-signed) or 130 bytes (fee-delegated).
	ErrInvalidSignatureLength = errors.New("invalid signature length")
)

// Transaction wraps a variant body with its signature. Values are
// immutable: every mutator returns a new Transaction, so independent
// goroutines may build and encode transactions freely.
type Transaction struct {
	inner     TxData
	signature []byte

	// caches, safe because the value is immutable
	signingHash atomic.Value
	origin      atomic.Value
}

// NewTransaction wraps a deep copy of body in an unsigned Transaction.
func NewTransaction(body TxData) *Transaction {
	return &Transaction{inner: body.copy()}
}

// Type returns the transaction type identifier.
func (t *Transaction) Type() byte { return t.inner.txType() }

// ChainTag returns the replay-protection tag of the target network.
func (t *Transaction) ChainTag() byte { return t.inner.chainTag() }

// BlockRef returns the block the transaction's validity window starts at.
func (t *Transaction) BlockRef() BlockRef { return t.inner.blockRef() }

// Expiration returns the validity window length in blocks.
func (t *Transaction) Expiration() uint32 { return t.inner.expiration() }

// Clauses returns a deep copy of the transaction's clause list.
func (t *Transaction) Clauses() []*Clause { return copyClauses(t.inner.clauses()) }

// Gas returns the gas provided for execution.
func (t *Transaction) Gas() uint64 { return t.inner.gas() }

// DependsOn returns the id of a transaction that must succeed first, or
// nil.
func (t *Transaction) DependsOn() *common.Bytes32 { return copyDependsOn(t.inner.dependsOn()) }

// Nonce returns the user-supplied uniqueness value.
func (t *Transaction) Nonce() uint64 { return t.inner.nonce() }

// Reserved returns the forward-compatibility record.
func (t *Transaction) Reserved() Reserved { return t.inner.reserved().copy() }

// Features returns the feature bitmask from the reserved record.
func (t *Transaction) Features() Features { return t.inner.reserved().Features }

// IsDelegated reports whether the transaction opts into fee delegation.
func (t *Transaction) IsDelegated() bool { return t.Features().IsDelegated() }

// Signature returns the raw signature, nil when unsigned.
func (t *Transaction) Signature() []byte { return slices.Clone(t.signature) }

// GasPriceCoef returns the legacy gas price coefficient. It fails for
// dynamic-fee transactions.
func (t *Transaction) GasPriceCoef() (uint8, error) {
	body, ok := t.inner.(*LegacyTx)
	if !ok {
		return 0, fmt.Errorf("gasPriceCoef: %w", ErrTxTypeNotSupported)
	}
	return body.GasPriceCoef, nil
}

// MaxFeePerGas returns the dynamic-fee absolute cap. It fails for legacy
// transactions.
func (t *Transaction) MaxFeePerGas() (*big.Int, error) {
	body, ok := t.inner.(*DynamicFeeTx)
	if !ok {
		return nil, fmt.Errorf("maxFeePerGas: %w", ErrTxTypeNotSupported)
	}
	return new(big.Int).Set(body.MaxFeePerGas), nil
}

// MaxPriorityFeePerGas returns the dynamic-fee priority bid. It fails for
// legacy transactions.
func (t *Transaction) MaxPriorityFeePerGas() (*big.Int, error) {
	body, ok := t.inner.(*DynamicFeeTx)
	if !ok {
		return nil, fmt.Errorf("maxPriorityFeePerGas: %w", ErrTxTypeNotSupported)
	}
	return new(big.Int).Set(body.MaxPriorityFeePerGas), nil
}

// IntrinsicGas computes the minimum gas the transaction's clause list
// requires.
func (t *Transaction) IntrinsicGas() (uint64, error) {
	return IntrinsicGas(t.inner.clauses()...)
}

// AppendClause returns a copy of the transaction with one more clause and
// the gas field recomputed from the new clause list. The transaction must
// be unsigned.
func (t *Transaction) AppendClause(c *Clause) (*Transaction, error) {
	if t.signature != nil {
		return nil, fmt.Errorf("append clause: %w", ErrAlreadySigned)
	}
	inner := t.inner.copy()
	clauses := append(inner.clauses(), c.copy())
	inner.setClauses(clauses)
	gas, err := IntrinsicGas(clauses...)
	if err != nil {
		return nil, err
	}
	inner.setGas(gas)
	return &Transaction{inner: inner}, nil
}

// Encode serializes the transaction to its wire form. Dynamic-fee
// transactions are prefixed with their type byte. When includeSignature
// is false the 9/10-field unsigned layout is produced, which is also the
// signing preimage.
func (t *Transaction) Encode(includeSignature bool) ([]byte, error) {
	fields := t.inner.packed()
	if includeSignature {
		if t.signature == nil {
			return nil, fmt.Errorf("encode: %w", ErrUnsigned)
		}
		fields["signature"] = t.signature
	}
	data, err := codec.EncodeObject(fields, t.inner.profile(includeSignature))
	if err != nil {
		return nil, err
	}
	if typ := t.inner.txType(); typ != TypeLegacy {
		data = append([]byte{typ}, data...)
	}
	return data, nil
}

// SigningHash returns the Blake2b-256 hash of the unsigned wire form,
// the preimage the sender signs.
func (t *Transaction) SigningHash() (common.Bytes32, error) {
	if cached := t.signingHash.Load(); cached != nil {
		return cached.(common.Bytes32), nil
	}
	enc, err := t.Encode(false)
	if err != nil {
		return common.Bytes32{}, err
	}
	hash := crypto.Blake2b256(enc)
	t.signingHash.Store(hash)
	return hash, nil
}

// DelegatorSigningHash returns the preimage the fee payer signs:
// Blake2b-256 over the signing hash concatenated with the sender's
// address. Binding the sender in prevents replaying a gas payer's
// signature against a transaction from a different origin.
func (t *Transaction) DelegatorSigningHash(origin common.Address) (common.Bytes32, error) {
	hash, err := t.SigningHash()
	if err != nil {
		return common.Bytes32{}, err
	}
	return crypto.Blake2b256(hash[:], origin[:]), nil
}

// Origin recovers the sender address from the first signature half.
func (t *Transaction) Origin() (common.Address, error) {
	if t.signature == nil {
		return common.Address{}, fmt.Errorf("origin: %w", ErrUnsigned)
	}
	if cached := t.origin.Load(); cached != nil {
		return cached.(common.Address), nil
	}
	if err := validateSignature(t.signature, t.IsDelegated()); err != nil {
		return common.Address{}, err
	}
	hash, err := t.SigningHash()
	if err != nil {
		return common.Address{}, err
	}
	origin, err := crypto.RecoverSigner(hash, t.signature[:crypto.SignatureLength])
	if err != nil {
		return common.Address{}, err
	}
	t.origin.Store(origin)
	return origin, nil
}

// Delegator recovers the fee payer address from the second signature
// half, or returns nil for a non-delegated transaction. The second half
// is verified against the delegator signing hash, not the bare signing
// hash.
func (t *Transaction) Delegator() (*common.Address, error) {
	if t.signature == nil {
		return nil, fmt.Errorf("delegator: %w", ErrUnsigned)
	}
	if !t.IsDelegated() {
		return nil, nil
	}
	if err := validateSignature(t.signature, true); err != nil {
		return nil, err
	}
	origin, err := t.Origin()
	if err != nil {
		return nil, err
	}
	hash, err := t.DelegatorSigningHash(origin)
	if err != nil {
		return nil, err
	}
	delegator, err := crypto.RecoverSigner(hash, t.signature[crypto.SignatureLength:])
	if err != nil {
		return nil, err
	}
	return &delegator, nil
}

// ID returns the transaction id: Blake2b-256 over the signing hash
// concatenated with the sender address. Unlike a plain hash of the signed
// bytes, the id binds the preimage to the recovered sender.
func (t *Transaction) ID() (common.Bytes32, error) {
	origin, err := t.Origin()
	if err != nil {
		return common.Bytes32{}, err
	}
	hash, err := t.SigningHash()
	if err != nil {
		return common.Bytes32{}, err
	}
	return crypto.Blake2b256(hash[:], origin[:]), nil
}

// Sign returns a copy of the transaction carrying key's signature. It
// fails for fee-delegated transactions, which need both parties.
func (t *Transaction) Sign(key *ecdsa.PrivateKey) (*Transaction, error) {
	if t.IsDelegated() {
		return nil, errors.New("sign: fee-delegated transaction requires SignDelegated")
	}
	hash, err := t.SigningHash()
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(hash, key)
	if err != nil {
		return nil, err
	}
	return t.WithSignature(sig)
}

// SenderSignature computes the sender's half of a fee-delegated
// signature: key's signature over the signing hash. The sender and the
// fee payer usually run in different processes; each computes its half
// and the halves are joined with WithSignature.
func (t *Transaction) SenderSignature(key *ecdsa.PrivateKey) ([]byte, error) {
	if !t.IsDelegated() {
		return nil, errors.New("sender signature: transaction does not enable fee delegation")
	}
	hash, err := t.SigningHash()
	if err != nil {
		return nil, err
	}
	return crypto.Sign(hash, key)
}

// DelegatorSignature computes the fee payer's half of a fee-delegated
// signature: key's signature over the delegator signing hash for the
// given sender.
func (t *Transaction) DelegatorSignature(key *ecdsa.PrivateKey, origin common.Address) ([]byte, error) {
	if !t.IsDelegated() {
		return nil, errors.New("delegator signature: transaction does not enable fee delegation")
	}
	hash, err := t.DelegatorSigningHash(origin)
	if err != nil {
		return nil, err
	}
	return crypto.Sign(hash, key)
}

// SignDelegated returns a copy of the transaction signed by both the
// sender and the fee payer. The fee payer signs the delegator signing
// hash, which covers the sender's address.
func (t *Transaction) SignDelegated(senderKey, delegatorKey *ecdsa.PrivateKey) (*Transaction, error) {
	senderSig, err := t.SenderSignature(senderKey)
	if err != nil {
		return nil, err
	}
	delegatorSig, err := t.DelegatorSignature(delegatorKey, crypto.AddressFromPrivateKey(senderKey))
	if err != nil {
		return nil, err
	}
	return t.WithSignature(append(senderSig, delegatorSig...))
}

// WithSignature returns a copy of the transaction carrying sig. The
// signature length must match the transaction's delegation mode.
func (t *Transaction) WithSignature(sig []byte) (*Transaction, error) {
	if err := validateSignature(sig, t.IsDelegated()); err != nil {
		return nil, err
	}
	return &Transaction{
		inner:     t.inner.copy(),
		signature: slices.Clone(sig),
	}, nil
}

func validateSignature(sig []byte, delegated bool) error {
	want := crypto.SignatureLength
	if delegated {
		want = 2 * crypto.SignatureLength
	}
	if len(sig) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidSignatureLength, len(sig), want)
	}
	return nil
}
