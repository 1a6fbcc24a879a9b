package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/log"
	"github.com/0xPolygon/rolldown/messages"
	"github.com/0xPolygon/rolldown/rpc/types"
	"github.com/0xPolygon/rolldown/tree"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	// ROLLDOWN is the namespace of the rolldown service
	ROLLDOWN  = "rolldown"
	meterName = "github.com/0xPolygon/rolldown/rpc"

	// unauthorizedErrorCode is returned when the signature of a write call does not recover
	unauthorizedErrorCode = -32001
)

// RolldownEndpoints contains implementations for the "rolldown" RPC endpoints
type RolldownEndpoints struct {
	logger       *log.Logger
	meter        metric.Meter
	readTimeout  time.Duration
	writeTimeout time.Duration
	node         RolldownNode
}

// NewRolldownEndpoints returns RolldownEndpoints
func NewRolldownEndpoints(
	logger *log.Logger,
	writeTimeout time.Duration,
	readTimeout time.Duration,
	node RolldownNode,
) *RolldownEndpoints {
	return &RolldownEndpoints{
		logger:       logger,
		meter:        otel.Meter(meterName),
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
		node:         node,
	}
}

// UpdateL2FromL1 queues an update read from L1. The caller is the sequencer.
// curl -X POST http://localhost:5576/ -H "Content-Type: application/json" \
// -d '{"method":"rolldown_updateL2FromL1", "params":[{...}, 0, "0x..."], "id":1}'
func (r *RolldownEndpoints) UpdateL2FromL1(
	update messages.L1Update, nonce uint64, signature hexutil.Bytes,
) (interface{}, rpc.Error) {
	const method = "updateL2FromL1"
	ctx, cancel := r.writeContext(method)
	defer cancel()

	caller, rErr := authenticate(method, update, nonce, signature)
	if rErr != nil {
		return nil, rErr
	}
	deadline, err := r.node.UpdateL2FromL1(ctx, caller, nonce, update)
	if err != nil {
		return nil, r.callError(method, err)
	}
	return types.Submitted{Caller: caller.Hex(), Deadline: &deadline}, nil
}

// UpdateL2FromL1Encoded is UpdateL2FromL1 for an update in the ABI encoding produced by L1
func (r *RolldownEndpoints) UpdateL2FromL1Encoded(
	call types.EncodedUpdateCall, nonce uint64, signature hexutil.Bytes,
) (interface{}, rpc.Error) {
	const method = "updateL2FromL1Encoded"
	ctx, cancel := r.writeContext(method)
	defer cancel()

	caller, rErr := authenticate(method, call, nonce, signature)
	if rErr != nil {
		return nil, rErr
	}
	deadline, err := r.node.UpdateL2FromL1Encoded(ctx, caller, nonce, call.Chain, call.Data)
	if err != nil {
		return nil, r.callError(method, err)
	}
	return types.Submitted{Caller: caller.Hex(), Deadline: &deadline}, nil
}

func (r *RolldownEndpoints) ForceUpdateL2FromL1(
	update messages.L1Update, nonce uint64, signature hexutil.Bytes,
) (interface{}, rpc.Error) {
	const method = "forceUpdateL2FromL1"
	ctx, cancel := r.writeContext(method)
	defer cancel()

	caller, rErr := authenticate(method, update, nonce, signature)
	if rErr != nil {
		return nil, rErr
	}
	if err := r.node.ForceUpdateL2FromL1(ctx, caller, nonce, update); err != nil {
		return nil, r.callError(method, err)
	}
	return types.Submitted{Caller: caller.Hex()}, nil
}

// CancelRequestsFromL1 disputes a pending update. The result carries the L2 request id of the dispute.
func (r *RolldownEndpoints) CancelRequestsFromL1(
	call types.PendingUpdateCall, nonce uint64, signature hexutil.Bytes,
) (interface{}, rpc.Error) {
	const method = "cancelRequestsFromL1"
	ctx, cancel := r.writeContext(method)
	defer cancel()

	caller, rErr := authenticate(method, call, nonce, signature)
	if rErr != nil {
		return nil, rErr
	}
	l2RequestID, err := r.node.CancelRequestsFromL1(ctx, caller, nonce, call.Chain, call.Deadline)
	if err != nil {
		return nil, r.callError(method, err)
	}
	return types.Submitted{Caller: caller.Hex(), L2RequestID: &l2RequestID}, nil
}

func (r *RolldownEndpoints) ForceCancelRequestsFromL1(
	call types.PendingUpdateCall, nonce uint64, signature hexutil.Bytes,
) (interface{}, rpc.Error) {
	const method = "forceCancelRequestsFromL1"
	ctx, cancel := r.writeContext(method)
	defer cancel()

	caller, rErr := authenticate(method, call, nonce, signature)
	if rErr != nil {
		return nil, rErr
	}
	if err := r.node.ForceCancelRequestsFromL1(ctx, caller, nonce, call.Chain, call.Deadline); err != nil {
		return nil, r.callError(method, err)
	}
	return types.Submitted{Caller: caller.Hex()}, nil
}

func (r *RolldownEndpoints) ProvideSequencerStake(
	call types.StakeCall, nonce uint64, signature hexutil.Bytes,
) (interface{}, rpc.Error) {
	const method = "provideSequencerStake"
	ctx, cancel := r.writeContext(method)
	defer cancel()

	caller, rErr := authenticate(method, call, nonce, signature)
	if rErr != nil {
		return nil, rErr
	}
	if call.Amount == nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, "amount is required")
	}
	if err := r.node.ProvideSequencerStake(ctx, caller, nonce, call.Chain, call.Amount); err != nil {
		return nil, r.callError(method, err)
	}
	return types.Submitted{Caller: caller.Hex()}, nil
}

func (r *RolldownEndpoints) LeaveActiveSequencers(
	call types.ChainCall, nonce uint64, signature hexutil.Bytes,
) (interface{}, rpc.Error) {
	return r.chainCall("leaveActiveSequencers", call, nonce, signature, r.node.LeaveActiveSequencers)
}

func (r *RolldownEndpoints) RejoinActiveSequencers(
	call types.ChainCall, nonce uint64, signature hexutil.Bytes,
) (interface{}, rpc.Error) {
	return r.chainCall("rejoinActiveSequencers", call, nonce, signature, r.node.RejoinActiveSequencers)
}

func (r *RolldownEndpoints) Unstake(call types.ChainCall, nonce uint64, signature hexutil.Bytes) (interface{}, rpc.Error) {
	return r.chainCall("unstake", call, nonce, signature, r.node.Unstake)
}

func (r *RolldownEndpoints) SetSequencerConfiguration(
	call types.SequencerConfigurationCall, nonce uint64, signature hexutil.Bytes,
) (interface{}, rpc.Error) {
	const method = "setSequencerConfiguration"
	ctx, cancel := r.writeContext(method)
	defer cancel()

	caller, rErr := authenticate(method, call, nonce, signature)
	if rErr != nil {
		return nil, rErr
	}
	if call.MinimalStake == nil || call.SlashFine == nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, "minimalStake and slashFine are required")
	}
	err := r.node.SetSequencerConfiguration(ctx, caller, nonce, call.Chain, call.MinimalStake, call.SlashFine)
	if err != nil {
		return nil, r.callError(method, err)
	}
	return types.Submitted{Caller: caller.Hex()}, nil
}

// Withdraw burns tokens of the caller and records their withdrawal to L1. The result carries
// the L2 request id of the withdrawal.
func (r *RolldownEndpoints) Withdraw(
	call types.WithdrawCall, nonce uint64, signature hexutil.Bytes,
) (interface{}, rpc.Error) {
	const method = "withdraw"
	ctx, cancel := r.writeContext(method)
	defer cancel()

	caller, rErr := authenticate(method, call, nonce, signature)
	if rErr != nil {
		return nil, rErr
	}
	if call.Amount == nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, "amount is required")
	}
	l2RequestID, err := r.node.Withdraw(ctx, caller, nonce, call.Chain, call.Recipient, call.TokenAddress, call.Amount)
	if err != nil {
		return nil, r.callError(method, err)
	}
	return types.Submitted{Caller: caller.Hex(), L2RequestID: &l2RequestID}, nil
}

// CreateBatch commits a range of L2 requests to a batch assigned to the caller
func (r *RolldownEndpoints) CreateBatch(
	call types.BatchCall, nonce uint64, signature hexutil.Bytes,
) (interface{}, rpc.Error) {
	const method = "createBatch"
	ctx, cancel := r.writeContext(method)
	defer cancel()

	caller, rErr := authenticate(method, call, nonce, signature)
	if rErr != nil {
		return nil, rErr
	}
	batch, err := r.node.CreateBatch(ctx, caller, nonce, call.Chain, call.Range)
	if err != nil {
		return nil, r.callError(method, err)
	}
	return types.Submitted{Caller: caller.Hex(), BatchID: &batch.BatchID, Root: &batch.Root}, nil
}

func (r *RolldownEndpoints) SetMaintenanceMode(
	call types.MaintenanceCall, nonce uint64, signature hexutil.Bytes,
) (interface{}, rpc.Error) {
	const method = "setMaintenanceMode"
	ctx, cancel := r.writeContext(method)
	defer cancel()

	caller, rErr := authenticate(method, call, nonce, signature)
	if rErr != nil {
		return nil, rErr
	}
	if err := r.node.SetMaintenanceMode(ctx, caller, nonce, call.On); err != nil {
		return nil, r.callError(method, err)
	}
	return types.Submitted{Caller: caller.Hex()}, nil
}

// PendingUpdatesDigest returns the keccak digest of the update to relay to L1
func (r *RolldownEndpoints) PendingUpdatesDigest(chain uint32) (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("pendingUpdatesDigest")
	defer cancel()

	digest, err := r.node.PendingUpdatesDigest(ctx, chain)
	if err != nil {
		return nil, r.callError("pendingUpdatesDigest", err)
	}
	return digest, nil
}

// PendingUpdatesEncoded returns the ABI encoding of the update to relay to L1
func (r *RolldownEndpoints) PendingUpdatesEncoded(chain uint32) (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("pendingUpdatesEncoded")
	defer cancel()

	encoded, err := r.node.PendingUpdatesEncoded(ctx, chain)
	if err != nil {
		return nil, r.callError("pendingUpdatesEncoded", err)
	}
	return hexutil.Bytes(encoded), nil
}

func (r *RolldownEndpoints) SequencerRights(chain uint32, sequencer common.Address) (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("sequencerRights")
	defer cancel()

	res, err := r.node.SequencerRights(ctx, chain, sequencer)
	if err != nil {
		return nil, r.callError("sequencerRights", err)
	}
	return res, nil
}

func (r *RolldownEndpoints) SequencerStake(chain uint32, sequencer common.Address) (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("sequencerStake")
	defer cancel()

	res, err := r.node.SequencerStake(ctx, chain, sequencer)
	if err != nil {
		return nil, r.callError("sequencerStake", err)
	}
	return res, nil
}

func (r *RolldownEndpoints) ActiveSequencers(chain uint32) (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("activeSequencers")
	defer cancel()

	res, err := r.node.ActiveSequencers(ctx, chain)
	if err != nil {
		return nil, r.callError("activeSequencers", err)
	}
	if res == nil {
		res = []common.Address{}
	}
	return res, nil
}

func (r *RolldownEndpoints) SelectedSequencer(chain uint32) (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("selectedSequencer")
	defer cancel()

	res, err := r.node.SelectedSequencer(ctx, chain)
	if err != nil {
		return nil, r.callError("selectedSequencer", err)
	}
	if res == nil {
		return nil, rpc.NewRPCError(rpc.NotFoundErrorCode, fmt.Sprintf("no sequencer selected on chain %d", chain))
	}
	return res, nil
}

func (r *RolldownEndpoints) PendingRequest(chain uint32, deadline uint64) (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("pendingRequest")
	defer cancel()

	res, err := r.node.PendingRequest(ctx, chain, deadline)
	if err != nil {
		return nil, r.callError("pendingRequest", err)
	}
	return res, nil
}

// Events returns the events emitted between both blocks, included
func (r *RolldownEndpoints) Events(fromBlock, toBlock uint64) (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("events")
	defer cancel()

	if fromBlock > toBlock {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode,
			fmt.Sprintf("fromBlock %d is greater than toBlock %d", fromBlock, toBlock))
	}
	res, err := r.node.Events(ctx, fromBlock, toBlock)
	if err != nil {
		return nil, r.callError("events", err)
	}
	return res, nil
}

func (r *RolldownEndpoints) Balance(assetID uint64, account common.Address) (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("balance")
	defer cancel()

	res, err := r.node.Balance(ctx, assetID, account)
	if err != nil {
		return nil, r.callError("balance", err)
	}
	return res, nil
}

func (r *RolldownEndpoints) BlockNumber() (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("blockNumber")
	defer cancel()

	res, err := r.node.BlockNumber(ctx)
	if err != nil {
		return nil, r.callError("blockNumber", err)
	}
	return res, nil
}

// Nonce returns the nonce the next write call of the account must be signed with
func (r *RolldownEndpoints) Nonce(account common.Address) (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("nonce")
	defer cancel()

	res, err := r.node.Nonce(ctx, account)
	if err != nil {
		return nil, r.callError("nonce", err)
	}
	return res, nil
}

func (r *RolldownEndpoints) IsMaintenance() (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("isMaintenance")
	defer cancel()

	res, err := r.node.IsMaintenance(ctx)
	if err != nil {
		return nil, r.callError("isMaintenance", err)
	}
	return res, nil
}

func (r *RolldownEndpoints) L2Request(chain uint32, l2RequestID uint64) (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("l2Request")
	defer cancel()

	res, err := r.node.L2Request(ctx, chain, l2RequestID)
	if err != nil {
		return nil, r.callError("l2Request", err)
	}
	return res, nil
}

func (r *RolldownEndpoints) L2RequestsBatch(chain uint32, batchID uint64) (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("l2RequestsBatch")
	defer cancel()

	res, err := r.node.L2RequestsBatch(ctx, chain, batchID)
	if err != nil {
		return nil, r.callError("l2RequestsBatch", err)
	}
	return res, nil
}

func (r *RolldownEndpoints) LastL2RequestsBatch(chain uint32) (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("lastL2RequestsBatch")
	defer cancel()

	res, err := r.node.LastL2RequestsBatch(ctx, chain)
	if err != nil {
		return nil, r.callError("lastL2RequestsBatch", err)
	}
	return res, nil
}

// GetMerkleRoot returns the root of the tree of the L2 requests of the chain in rng
func (r *RolldownEndpoints) GetMerkleRoot(chain uint32, rng messages.Range) (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("getMerkleRoot")
	defer cancel()

	res, err := r.node.MerkleRoot(ctx, chain, rng)
	if err != nil {
		return nil, r.callError("getMerkleRoot", err)
	}
	return res, nil
}

func (r *RolldownEndpoints) GetMerkleProof(chain uint32, rng messages.Range, l2RequestID uint64) (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("getMerkleProof")
	defer cancel()

	res, err := r.node.MerkleProof(ctx, chain, rng, l2RequestID)
	if err != nil {
		return nil, r.callError("getMerkleProof", err)
	}
	return res, nil
}

func (r *RolldownEndpoints) VerifyMerkleProof(
	chain uint32, rng messages.Range, root common.Hash, l2RequestID uint64, proof tree.Proof,
) (interface{}, rpc.Error) {
	ctx, cancel := r.readContext("verifyMerkleProof")
	defer cancel()

	res, err := r.node.VerifyMerkleProof(ctx, chain, rng, root, l2RequestID, proof)
	if err != nil {
		return nil, r.callError("verifyMerkleProof", err)
	}
	return res, nil
}

func (r *RolldownEndpoints) chainCall(
	method string, call types.ChainCall, nonce uint64, signature hexutil.Bytes,
	fn func(ctx context.Context, caller common.Address, nonce uint64, chain uint32) error,
) (interface{}, rpc.Error) {
	ctx, cancel := r.writeContext(method)
	defer cancel()

	caller, rErr := authenticate(method, call, nonce, signature)
	if rErr != nil {
		return nil, rErr
	}
	if err := fn(ctx, caller, nonce, call.Chain); err != nil {
		return nil, r.callError(method, err)
	}
	return types.Submitted{Caller: caller.Hex()}, nil
}

func (r *RolldownEndpoints) writeContext(method string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
	r.count(ctx, method)
	return ctx, cancel
}

func (r *RolldownEndpoints) readContext(method string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), r.readTimeout)
	r.count(ctx, method)
	return ctx, cancel
}

func (r *RolldownEndpoints) count(ctx context.Context, method string) {
	c, merr := r.meter.Int64Counter(method)
	if merr != nil {
		r.logger.Warnf("failed to create %s counter: %s", method, merr)
		return
	}
	c.Add(ctx, 1)
}

func (r *RolldownEndpoints) callError(method string, err error) rpc.Error {
	r.logger.Debugf("%s failed: %v", method, err)
	if errors.Is(err, db.ErrNotFound) {
		return rpc.NewRPCError(rpc.NotFoundErrorCode, fmt.Sprintf("%s: %s", method, err))
	}
	return rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("%s: %s", method, err))
}

// authenticate recovers the caller from the signature of the full method name
func authenticate(method string, payload interface{}, nonce uint64, signature []byte) (common.Address, rpc.Error) {
	caller, err := types.RecoverCaller(ROLLDOWN+"_"+method, payload, nonce, signature)
	if err != nil {
		return common.Address{}, rpc.NewRPCError(unauthorizedErrorCode, err.Error())
	}
	return caller, nil
}
