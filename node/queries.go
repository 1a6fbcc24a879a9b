package node

import (
	"context"
	"math/big"

	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/events"
	"github.com/0xPolygon/rolldown/messages"
	"github.com/0xPolygon/rolldown/rights"
	"github.com/0xPolygon/rolldown/rolldown"
	"github.com/0xPolygon/rolldown/tokens"
	"github.com/0xPolygon/rolldown/tree"
	ethCommon "github.com/ethereum/go-ethereum/common"
)

func (n *Node) BlockNumber(ctx context.Context) (uint64, error) {
	var result uint64
	err := n.query(ctx, func(_ db.Querier, block uint64) error {
		result = block
		return nil
	})
	return result, err
}

// Nonce returns the nonce the next signed call of the account must carry
func (n *Node) Nonce(ctx context.Context, account ethCommon.Address) (uint64, error) {
	var result uint64
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = getNonce(tx, account)
		return err
	})
	return result, err
}

// PendingUpdatesDigest returns the keccak digest of the L2 update relayed to L1
func (n *Node) PendingUpdatesDigest(ctx context.Context, chain uint32) (ethCommon.Hash, error) {
	var result ethCommon.Hash
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = n.rolldown.PendingUpdatesDigest(tx, chain)
		return err
	})
	return result, err
}

// PendingUpdatesEncoded returns the ABI encoding of the L2 update relayed to L1
func (n *Node) PendingUpdatesEncoded(ctx context.Context, chain uint32) ([]byte, error) {
	var result []byte
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = n.rolldown.PendingUpdatesEncoded(tx, chain)
		return err
	})
	return result, err
}

func (n *Node) SequencerRights(ctx context.Context, chain uint32, sequencer ethCommon.Address) (rights.Rights, error) {
	var result rights.Rights
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = n.rights.Get(tx, chain, sequencer)
		return err
	})
	return result, err
}

func (n *Node) SequencerStake(ctx context.Context, chain uint32, sequencer ethCommon.Address) (*big.Int, error) {
	var result *big.Int
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = n.staking.SequencerStake(tx, chain, sequencer)
		return err
	})
	return result, err
}

func (n *Node) ActiveSequencers(ctx context.Context, chain uint32) ([]ethCommon.Address, error) {
	var result []ethCommon.Address
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = n.staking.ActiveSequencers(tx, chain)
		return err
	})
	return result, err
}

// SelectedSequencer returns the sequencer allowed to update the chain, nil if there is none
func (n *Node) SelectedSequencer(ctx context.Context, chain uint32) (*ethCommon.Address, error) {
	var result *ethCommon.Address
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = n.staking.SelectedSequencer(tx, chain)
		return err
	})
	return result, err
}

// PendingRequest returns the update of the chain waiting with the given deadline, db.ErrNotFound if there is none
func (n *Node) PendingRequest(ctx context.Context, chain uint32, deadline uint64) (*rolldown.PendingRequest, error) {
	var result *rolldown.PendingRequest
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = n.rolldown.PendingRequest(tx, chain, deadline)
		return err
	})
	return result, err
}

// Events returns the events emitted between both blocks, included
func (n *Node) Events(ctx context.Context, fromBlock, toBlock uint64) ([]*events.Event, error) {
	var result []*events.Event
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = events.Get(tx, fromBlock, toBlock)
		return err
	})
	return result, err
}

func (n *Node) Balance(ctx context.Context, assetID uint64, account ethCommon.Address) (tokens.Balance, error) {
	var result tokens.Balance
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = n.tokens.Balance(tx, assetID, account)
		return err
	})
	return result, err
}

func (n *Node) IsMaintenance(ctx context.Context) (bool, error) {
	var result bool
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = maintenanceStatus{}.IsMaintenance(tx)
		return err
	})
	return result, err
}

// L2Request returns the L2 request of the chain with the given id, db.ErrNotFound if there is none
func (n *Node) L2Request(ctx context.Context, chain uint32, l2RequestID uint64) (*rolldown.L2Request, error) {
	var result *rolldown.L2Request
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = n.rolldown.L2Request(tx, chain, l2RequestID)
		return err
	})
	return result, err
}

// L2RequestsBatch returns the batch of the chain with the given id, db.ErrNotFound if there is none
func (n *Node) L2RequestsBatch(ctx context.Context, chain uint32, batchID uint64) (*rolldown.L2RequestsBatch, error) {
	var result *rolldown.L2RequestsBatch
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = n.rolldown.L2RequestsBatch(tx, chain, batchID)
		return err
	})
	return result, err
}

func (n *Node) LastL2RequestsBatch(ctx context.Context, chain uint32) (*rolldown.L2RequestsBatch, error) {
	var result *rolldown.L2RequestsBatch
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = n.rolldown.LastL2RequestsBatch(tx, chain)
		return err
	})
	return result, err
}

func (n *Node) MerkleRoot(ctx context.Context, chain uint32, rng messages.Range) (ethCommon.Hash, error) {
	var result ethCommon.Hash
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = n.rolldown.MerkleRoot(tx, chain, rng)
		return err
	})
	return result, err
}

func (n *Node) MerkleProof(
	ctx context.Context, chain uint32, rng messages.Range, l2RequestID uint64,
) (tree.Proof, error) {
	var result tree.Proof
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = n.rolldown.MerkleProof(tx, chain, rng, l2RequestID)
		return err
	})
	return result, err
}

func (n *Node) VerifyMerkleProof(
	ctx context.Context, chain uint32, rng messages.Range, root ethCommon.Hash, l2RequestID uint64, proof tree.Proof,
) (bool, error) {
	var result bool
	err := n.query(ctx, func(tx db.Querier, _ uint64) error {
		var err error
		result, err = n.rolldown.VerifyMerkleProof(tx, chain, rng, root, l2RequestID, proof)
		return err
	})
	return result, err
}
