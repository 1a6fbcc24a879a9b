package node

import (
	"context"
	"math/big"

	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/events"
	"github.com/0xPolygon/rolldown/messages"
	"github.com/0xPolygon/rolldown/rolldown"
	ethCommon "github.com/ethereum/go-ethereum/common"
)

// MaintenanceModeSwitched is the payload of events.MaintenanceModeSwitched
type MaintenanceModeSwitched struct {
	On bool `json:"on"`
}

// UpdateL2FromL1 queues an update read from L1 by the caller and returns its dispute period end
func (n *Node) UpdateL2FromL1(
	ctx context.Context, caller ethCommon.Address, nonce uint64, update messages.L1Update,
) (uint64, error) {
	var deadline uint64
	err := n.executeSigned(ctx, caller, nonce, func(tx db.Querier, block uint64) error {
		var err error
		deadline, err = n.rolldown.UpdateL2FromL1(tx, block, caller, update)
		return err
	})
	return deadline, err
}

// UpdateL2FromL1Encoded is UpdateL2FromL1 for an update in its L1 ABI encoding
func (n *Node) UpdateL2FromL1Encoded(
	ctx context.Context, caller ethCommon.Address, nonce uint64, chain uint32, data []byte,
) (uint64, error) {
	update, err := messages.DecodeL1Update(chain, data)
	if err != nil {
		return 0, err
	}
	return n.UpdateL2FromL1(ctx, caller, nonce, update)
}

// ForceUpdateL2FromL1 processes an update right away, skipping the dispute period
func (n *Node) ForceUpdateL2FromL1(
	ctx context.Context, caller ethCommon.Address, nonce uint64, update messages.L1Update,
) error {
	return n.executeAdmin(ctx, caller, nonce, func(tx db.Querier, block uint64) error {
		return n.rolldown.ForceUpdateL2FromL1(tx, block, update)
	})
}

// CancelRequestsFromL1 disputes the pending update of the chain with the given deadline and
// returns the L2 request id assigned to the dispute
func (n *Node) CancelRequestsFromL1(
	ctx context.Context, caller ethCommon.Address, nonce uint64, chain uint32, deadline uint64,
) (uint64, error) {
	var l2RequestID uint64
	err := n.executeSigned(ctx, caller, nonce, func(tx db.Querier, block uint64) error {
		var err error
		l2RequestID, err = n.rolldown.CancelRequestsFromL1(tx, block, caller, chain, deadline)
		return err
	})
	return l2RequestID, err
}

// ForceCancelRequestsFromL1 drops a pending update without opening a dispute
func (n *Node) ForceCancelRequestsFromL1(
	ctx context.Context, caller ethCommon.Address, nonce uint64, chain uint32, deadline uint64,
) error {
	return n.executeAdmin(ctx, caller, nonce, func(tx db.Querier, block uint64) error {
		return n.rolldown.ForceCancelRequestsFromL1(tx, block, chain, deadline)
	})
}

func (n *Node) ProvideSequencerStake(
	ctx context.Context, caller ethCommon.Address, nonce uint64, chain uint32, amount *big.Int,
) error {
	return n.executeSigned(ctx, caller, nonce, func(tx db.Querier, block uint64) error {
		return n.staking.ProvideSequencerStake(tx, block, chain, caller, amount)
	})
}

func (n *Node) LeaveActiveSequencers(ctx context.Context, caller ethCommon.Address, nonce uint64, chain uint32) error {
	return n.executeSigned(ctx, caller, nonce, func(tx db.Querier, block uint64) error {
		return n.staking.LeaveActiveSequencers(tx, block, chain, caller)
	})
}

func (n *Node) RejoinActiveSequencers(ctx context.Context, caller ethCommon.Address, nonce uint64, chain uint32) error {
	return n.executeSigned(ctx, caller, nonce, func(tx db.Querier, block uint64) error {
		return n.staking.RejoinActiveSequencers(tx, block, chain, caller)
	})
}

func (n *Node) Unstake(ctx context.Context, caller ethCommon.Address, nonce uint64, chain uint32) error {
	return n.executeSigned(ctx, caller, nonce, func(tx db.Querier, block uint64) error {
		return n.staking.Unstake(tx, block, chain, caller)
	})
}

// SetSequencerConfiguration sets the minimal stake and the slash fine of the chain
func (n *Node) SetSequencerConfiguration(
	ctx context.Context, caller ethCommon.Address, nonce uint64, chain uint32, minimalStake, slashFine *big.Int,
) error {
	return n.executeAdmin(ctx, caller, nonce, func(tx db.Querier, block uint64) error {
		return n.staking.SetSequencerConfiguration(tx, block, chain, minimalStake, slashFine)
	})
}

// Withdraw burns amount of token held by the caller on the chain and records its withdrawal
// to recipient on L1. It returns the L2 request id of the withdrawal.
func (n *Node) Withdraw(
	ctx context.Context, caller ethCommon.Address, nonce uint64, chain uint32,
	recipient, token ethCommon.Address, amount *big.Int,
) (uint64, error) {
	var l2RequestID uint64
	err := n.executeSigned(ctx, caller, nonce, func(tx db.Querier, block uint64) error {
		var err error
		l2RequestID, err = n.rolldown.Withdraw(tx, block, caller, chain, recipient, token, amount)
		return err
	})
	return l2RequestID, err
}

// CreateBatch commits the L2 requests of the chain in rng to a batch assigned to the caller
func (n *Node) CreateBatch(
	ctx context.Context, caller ethCommon.Address, nonce uint64, chain uint32, rng messages.Range,
) (*rolldown.L2RequestsBatch, error) {
	var batch *rolldown.L2RequestsBatch
	err := n.executeSigned(ctx, caller, nonce, func(tx db.Querier, block uint64) error {
		var err error
		batch, err = n.rolldown.CreateBatch(tx, block, caller, chain, rng)
		return err
	})
	return batch, err
}

// SetMaintenanceMode switches the maintenance mode, which blocks every bridge request while on
func (n *Node) SetMaintenanceMode(ctx context.Context, caller ethCommon.Address, nonce uint64, on bool) error {
	return n.executeAdmin(ctx, caller, nonce, func(tx db.Querier, block uint64) error {
		if err := setMaintenance(tx, on); err != nil {
			return err
		}
		n.logger.Infof("maintenance mode switched to %t at block %d", on, block)
		return events.Emit(tx, block, events.MaintenanceModeSwitched, 0, MaintenanceModeSwitched{On: on})
	})
}
