package rolldown

import (
	"errors"
	"fmt"

	"github.com/0xPolygon/rolldown/common"
	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/events"
	"github.com/0xPolygon/rolldown/messages"
	ethCommon "github.com/ethereum/go-ethereum/common"
)

// UpdateL2FromL1 queues an update read from L1 by the sequencer. The update is processed at
// block + DisputePeriodLength unless it gets canceled before. One read right is consumed.
// It returns the deadline of the update.
func (r *Rolldown) UpdateL2FromL1(
	tx db.Querier, block uint64, sequencer ethCommon.Address, update messages.L1Update,
) (uint64, error) {
	if err := r.checkMaintenance(tx); err != nil {
		return 0, err
	}
	if r.cfg.RequireSelectedSequencer {
		selected, err := r.staking.IsSelectedSequencer(tx, update.Chain, sequencer)
		if err != nil {
			return 0, err
		}
		if !selected {
			return 0, fmt.Errorf("%w: %s on chain %d", ErrOnlySelectedSequencerIsAllowedToUpdate, sequencer, update.Chain)
		}
	}
	rng, err := r.validate(tx, update)
	if err != nil {
		return 0, err
	}
	hash, err := update.Hash()
	if err != nil {
		return 0, err
	}
	if err := r.rights.ConsumeRead(tx, update.Chain, sequencer); err != nil {
		return 0, err
	}
	deadline, err := common.SafeAddUint64(block, r.cfg.DisputePeriodLength)
	if err != nil {
		return 0, fmt.Errorf("dispute period end: %w", err)
	}
	if err := insertPendingRequest(tx, &PendingRequest{
		Deadline:   deadline,
		Chain:      update.Chain,
		Submitter:  sequencer,
		Update:     update,
		Hash:       hash,
		RangeStart: rng.Start,
		RangeEnd:   rng.End,
	}); err != nil {
		return 0, err
	}
	r.logger.Infof("sequencer %s stored update %d..%d of chain %d, dispute period ends at block %d",
		sequencer, rng.Start, rng.End, update.Chain, deadline)
	return deadline, events.Emit(tx, block, events.L1ReadStored, update.Chain, L1ReadStored{
		Chain:                    update.Chain,
		Sequencer:                sequencer,
		DisputePeriodEnd:         deadline,
		Range:                    rng,
		LastProcessedRequestOnL1: update.LastProcessedRequestOnL1,
		LastAcceptedRequestOnL1:  update.LastAcceptedRequestOnL1,
		Hash:                     hash,
	})
}

// CancelRequestsFromL1 evicts the pending update of the chain with the given deadline and opens
// a dispute about it, to be resolved by a CancelResolution coming from L1. One cancel right of
// the canceler is consumed. It returns the L2 request id assigned to the dispute.
func (r *Rolldown) CancelRequestsFromL1(
	tx db.Querier, block uint64, canceler ethCommon.Address, chain uint32, deadline uint64,
) (uint64, error) {
	if err := r.checkMaintenance(tx); err != nil {
		return 0, err
	}
	if err := r.rights.ConsumeCancel(tx, chain, canceler); err != nil {
		return 0, err
	}
	pending, err := r.takePendingRequest(tx, chain, deadline)
	if err != nil {
		return 0, err
	}
	l2RequestID, err := acquireL2RequestID(tx, chain)
	if err != nil {
		return 0, err
	}
	record := &CancelRecord{
		Chain:                 chain,
		L2RequestID:           l2RequestID,
		Updater:               pending.Submitter,
		Canceler:              canceler,
		LastProcessedOnSource: pending.Update.LastProcessedRequestOnL1,
		LastAcceptedOnSource:  pending.Update.LastAcceptedRequestOnL1,
		Hash:                  pending.Hash,
	}
	if err := insertCancel(tx, record); err != nil {
		return 0, err
	}
	encoded, err := record.message().Encode()
	if err != nil {
		return 0, err
	}
	if _, err := storeL2Request(tx, block, chain, l2RequestID, messages.UpdateTypeCancel, encoded); err != nil {
		return 0, err
	}
	r.logger.Infof("sequencer %s canceled update of %s with deadline %d on chain %d, dispute %d opened",
		canceler, pending.Submitter, deadline, chain, l2RequestID)
	return l2RequestID, events.Emit(tx, block, events.L1ReadCanceled, chain, L1ReadCanceled{
		Chain:                   chain,
		CanceledSequencerUpdate: deadline,
		AssignedID:              messages.RequestID{Origin: messages.OriginL2, ID: l2RequestID},
	})
}

// ForceCancelRequestsFromL1 drops the pending update of the chain with the given deadline
// without opening a dispute. The submitter gets its read right back if it is still active.
func (r *Rolldown) ForceCancelRequestsFromL1(tx db.Querier, block uint64, chain uint32, deadline uint64) error {
	if err := r.checkMaintenance(tx); err != nil {
		return err
	}
	pending, err := r.takePendingRequest(tx, chain, deadline)
	if err != nil {
		return err
	}
	restored, err := r.rights.ResetRead(tx, chain, pending.Submitter)
	if err != nil {
		return err
	}
	r.logger.Infof("update of %s with deadline %d on chain %d force canceled at block %d, read right restored: %t",
		pending.Submitter, deadline, chain, block, restored)
	return nil
}

// VerifySequencerUpdate compares hash with the digest of the pending update of the chain with
// the given deadline. The second value is false when there is no such update.
func (r *Rolldown) VerifySequencerUpdate(
	tx db.Querier, chain uint32, deadline uint64, hash ethCommon.Hash,
) (bool, bool, error) {
	pending, err := getPendingRequest(tx, deadline, chain)
	if errors.Is(err, db.ErrNotFound) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return pending.Hash == hash, true, nil
}

func (r *Rolldown) validate(tx db.Querier, update messages.L1Update) (messages.Range, error) {
	if err := update.Validate(r.cfg.MaxRequestsPerUpdate); err != nil {
		return messages.Range{}, err
	}
	counters, err := getCounters(tx, update.Chain)
	if err != nil {
		return messages.Range{}, err
	}
	if err := update.ValidateIDs(counters.LastProcessedRequestOnL2); err != nil {
		return messages.Range{}, err
	}
	rng, _ := update.Range()
	return rng, nil
}

func (r *Rolldown) takePendingRequest(tx db.Querier, chain uint32, deadline uint64) (*PendingRequest, error) {
	pending, err := getPendingRequest(tx, deadline, chain)
	if errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("%w: no update with deadline %d on chain %d", ErrRequestDoesNotExist, deadline, chain)
	}
	if err != nil {
		return nil, err
	}
	if err := deletePendingRequest(tx, deadline, chain); err != nil {
		return nil, err
	}
	return pending, nil
}
