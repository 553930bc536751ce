package client

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/lumina-chain/lumina-sdk/common"
)

// Block is the subset of the node's block representation the SDK needs:
// enough to derive a block ref and follow chain progress.
type Block struct {
	Number      uint32         `json:"number"`
	ID          common.Bytes32 `json:"id"`
	ParentID    common.Bytes32 `json:"parentID"`
	Timestamp   uint64         `json:"timestamp"`
	GasLimit    uint64         `json:"gasLimit"`
	GasUsed     uint64         `json:"gasUsed"`
	TotalScore  uint64         `json:"totalScore"`
	Signer      common.Address `json:"signer"`
	IsTrunk     bool           `json:"isTrunk"`
	IsFinalized bool           `json:"isFinalized"`
}

// sendTxRequest is the submission body: the signed wire bytes as hex.
type sendTxRequest struct {
	Raw hexutil.Bytes `json:"raw"`
}

// SendResult is the node's acknowledgement of a submitted transaction.
type SendResult struct {
	ID common.Bytes32 `json:"id"`
}

// ReceiptMeta locates a receipt on the chain.
type ReceiptMeta struct {
	BlockID        common.Bytes32 `json:"blockID"`
	BlockNumber    uint32         `json:"blockNumber"`
	BlockTimestamp uint64         `json:"blockTimestamp"`
	TxID           common.Bytes32 `json:"txID"`
	TxOrigin       common.Address `json:"txOrigin"`
}

// Receipt is the execution result of a processed transaction.
type Receipt struct {
	GasUsed  uint64         `json:"gasUsed"`
	GasPayer common.Address `json:"gasPayer"`
	Paid     *hexutil.Big   `json:"paid"`
	Reward   *hexutil.Big   `json:"reward"`
	Reverted bool           `json:"reverted"`
	Meta     ReceiptMeta    `json:"meta"`
}
