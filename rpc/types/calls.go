package types

import (
	"math/big"

	"github.com/0xPolygon/rolldown/messages"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ChainCall is the payload of the calls that only name a chain
type ChainCall struct {
	Chain uint32 `json:"chain"`
}

// PendingUpdateCall points to the pending update of a chain by its dispute period end
type PendingUpdateCall struct {
	Chain    uint32 `json:"chain"`
	Deadline uint64 `json:"deadline"`
}

// EncodedUpdateCall carries an update in its L1 ABI encoding
type EncodedUpdateCall struct {
	Chain uint32        `json:"chain"`
	Data  hexutil.Bytes `json:"data"`
}

type StakeCall struct {
	Chain  uint32   `json:"chain"`
	Amount *big.Int `json:"amount"`
}

type SequencerConfigurationCall struct {
	Chain        uint32   `json:"chain"`
	MinimalStake *big.Int `json:"minimalStake"`
	SlashFine    *big.Int `json:"slashFine"`
}

// WithdrawCall burns tokens of the caller on L2 to release them to Recipient on L1
type WithdrawCall struct {
	Chain        uint32         `json:"chain"`
	Recipient    common.Address `json:"recipient"`
	TokenAddress common.Address `json:"tokenAddress"`
	Amount       *big.Int       `json:"amount"`
}

// BatchCall names the L2 requests of a chain to commit to a new batch
type BatchCall struct {
	Chain uint32         `json:"chain"`
	Range messages.Range `json:"range"`
}

type MaintenanceCall struct {
	On bool `json:"on"`
}

// Submitted is returned by the write methods
type Submitted struct {
	Caller string `json:"caller"`
	// Deadline is set by updateL2FromL1: the block at which the update is processed
	Deadline *uint64 `json:"deadline,omitempty"`
	// L2RequestID is set by cancelRequestsFromL1 and withdraw: the id of the dispute or the withdrawal
	L2RequestID *uint64 `json:"l2RequestId,omitempty"`
	// BatchID and Root are set by createBatch
	BatchID *uint64      `json:"batchId,omitempty"`
	Root    *common.Hash `json:"root,omitempty"`
}
