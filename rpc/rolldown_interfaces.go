package rpc

import (
	"context"
	"math/big"

	"github.com/0xPolygon/rolldown/events"
	"github.com/0xPolygon/rolldown/messages"
	"github.com/0xPolygon/rolldown/rights"
	"github.com/0xPolygon/rolldown/rolldown"
	"github.com/0xPolygon/rolldown/tokens"
	"github.com/0xPolygon/rolldown/tree"
	"github.com/ethereum/go-ethereum/common"
)

// RolldownNode is the state machine behind the rolldown endpoints
type RolldownNode interface {
	UpdateL2FromL1(ctx context.Context, caller common.Address, nonce uint64, update messages.L1Update) (uint64, error)
	UpdateL2FromL1Encoded(
		ctx context.Context, caller common.Address, nonce uint64, chain uint32, data []byte,
	) (uint64, error)
	ForceUpdateL2FromL1(ctx context.Context, caller common.Address, nonce uint64, update messages.L1Update) error
	CancelRequestsFromL1(
		ctx context.Context, caller common.Address, nonce uint64, chain uint32, deadline uint64,
	) (uint64, error)
	ForceCancelRequestsFromL1(ctx context.Context, caller common.Address, nonce uint64, chain uint32, deadline uint64) error
	ProvideSequencerStake(ctx context.Context, caller common.Address, nonce uint64, chain uint32, amount *big.Int) error
	LeaveActiveSequencers(ctx context.Context, caller common.Address, nonce uint64, chain uint32) error
	RejoinActiveSequencers(ctx context.Context, caller common.Address, nonce uint64, chain uint32) error
	Unstake(ctx context.Context, caller common.Address, nonce uint64, chain uint32) error
	SetSequencerConfiguration(
		ctx context.Context, caller common.Address, nonce uint64, chain uint32, minimalStake, slashFine *big.Int,
	) error
	Withdraw(
		ctx context.Context, caller common.Address, nonce uint64, chain uint32,
		recipient, token common.Address, amount *big.Int,
	) (uint64, error)
	CreateBatch(
		ctx context.Context, caller common.Address, nonce uint64, chain uint32, rng messages.Range,
	) (*rolldown.L2RequestsBatch, error)
	SetMaintenanceMode(ctx context.Context, caller common.Address, nonce uint64, on bool) error

	PendingUpdatesDigest(ctx context.Context, chain uint32) (common.Hash, error)
	PendingUpdatesEncoded(ctx context.Context, chain uint32) ([]byte, error)
	SequencerRights(ctx context.Context, chain uint32, sequencer common.Address) (rights.Rights, error)
	SequencerStake(ctx context.Context, chain uint32, sequencer common.Address) (*big.Int, error)
	ActiveSequencers(ctx context.Context, chain uint32) ([]common.Address, error)
	SelectedSequencer(ctx context.Context, chain uint32) (*common.Address, error)
	PendingRequest(ctx context.Context, chain uint32, deadline uint64) (*rolldown.PendingRequest, error)
	Events(ctx context.Context, fromBlock, toBlock uint64) ([]*events.Event, error)
	Balance(ctx context.Context, assetID uint64, account common.Address) (tokens.Balance, error)
	BlockNumber(ctx context.Context) (uint64, error)
	Nonce(ctx context.Context, account common.Address) (uint64, error)
	IsMaintenance(ctx context.Context) (bool, error)
	L2Request(ctx context.Context, chain uint32, l2RequestID uint64) (*rolldown.L2Request, error)
	L2RequestsBatch(ctx context.Context, chain uint32, batchID uint64) (*rolldown.L2RequestsBatch, error)
	LastL2RequestsBatch(ctx context.Context, chain uint32) (*rolldown.L2RequestsBatch, error)
	MerkleRoot(ctx context.Context, chain uint32, rng messages.Range) (common.Hash, error)
	MerkleProof(ctx context.Context, chain uint32, rng messages.Range, l2RequestID uint64) (tree.Proof, error)
	VerifyMerkleProof(
		ctx context.Context, chain uint32, rng messages.Range, root common.Hash, l2RequestID uint64, proof tree.Proof,
	) (bool, error)
}
