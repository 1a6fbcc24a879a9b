package rolldown

import (
	"errors"
	"fmt"

	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/events"
	"github.com/0xPolygon/rolldown/messages"
)

const requestSavepoint = "rolldown_request"

// fatalError aborts the whole transition instead of being recorded as a failed request
type fatalError struct {
	err error
}

func (e *fatalError) Error() string { return e.err.Error() }
func (e *fatalError) Unwrap() error { return e.err }

func fatal(err error) error {
	return &fatalError{err: err}
}

// OnInitialize creates the automatic batch of L2 requests due at block, then processes every
// update whose dispute period ends at block, in ascending chain order. The submitter gets its
// read right back if it is still active.
func (r *Rolldown) OnInitialize(tx db.Querier, block uint64) error {
	if err := r.createAutomaticBatch(tx, block); err != nil {
		return fmt.Errorf("error creating batch at block %d: %w", block, err)
	}
	expired, err := getPendingRequestsAt(tx, block)
	if err != nil {
		return fmt.Errorf("error getting updates with deadline %d: %w", block, err)
	}
	for _, pending := range expired {
		if err := deletePendingRequest(tx, pending.Deadline, pending.Chain); err != nil {
			return err
		}
		restored, err := r.rights.RestoreRead(tx, pending.Chain, pending.Submitter)
		if err != nil {
			return err
		}
		if !restored {
			r.logger.Debugf("sequencer %s is no longer active on chain %d, read right not restored",
				pending.Submitter, pending.Chain)
		}
		counters, err := getCounters(tx, pending.Chain)
		if err != nil {
			return err
		}
		if pending.RangeEnd <= counters.LastProcessedRequestOnL2 {
			// TODO: slash the submitter once stale updates are proven on L1
			r.logger.Warnf("update of %s on chain %d is stale: requests %d..%d already processed up to %d",
				pending.Submitter, pending.Chain, pending.RangeStart, pending.RangeEnd,
				counters.LastProcessedRequestOnL2)
			continue
		}
		if err := r.processUpdate(tx, block, pending.Update); err != nil {
			return err
		}
	}
	return nil
}

// ForceUpdateL2FromL1 validates and processes the update right away, without dispute period
func (r *Rolldown) ForceUpdateL2FromL1(tx db.Querier, block uint64, update messages.L1Update) error {
	if err := r.checkMaintenance(tx); err != nil {
		return err
	}
	rng, err := r.validate(tx, update)
	if err != nil {
		return err
	}
	r.logger.Infof("forcing update %d..%d of chain %d at block %d", rng.Start, rng.End, update.Chain, block)
	return r.processUpdate(tx, block, update)
}

func (r *Rolldown) processUpdate(tx db.Querier, block uint64, update messages.L1Update) error {
	for _, request := range update.Requests() {
		if err := r.processRequest(tx, block, update.Chain, request); err != nil {
			return err
		}
	}
	return nil
}

// processRequest applies a single request and records its outcome. Requests already processed
// are skipped. A failing request leaves no writes behind but its outcome is still recorded.
func (r *Rolldown) processRequest(tx db.Querier, block uint64, chain uint32, request messages.Request) error {
	id := request.ID().ID
	counters, err := getCounters(tx, chain)
	if err != nil {
		return err
	}
	if id <= counters.LastProcessedRequestOnL2 {
		r.logger.Debugf("request %d of chain %d already processed", id, chain)
		return nil
	}
	_, err = getRequestResult(tx, chain, id)
	if err == nil {
		r.logger.Debugf("request %d of chain %d already has a result", id, chain)
		return nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return err
	}

	status := true
	err = db.WithSavepoint(tx, requestSavepoint, func() error {
		return r.apply(tx, block, chain, request)
	})
	if err != nil {
		var fatalErr *fatalError
		if errors.As(err, &fatalErr) {
			r.logger.Errorf("error processing request %d of chain %d: %v", id, chain, fatalErr.err)
			return fatalErr.err
		}
		r.logger.Warnf("%s request %d of chain %d failed: %v", request.Type, id, chain, err)
		status = false
	}

	if err := insertRequestResult(tx, &RequestResult{
		Chain:      chain,
		RequestID:  id,
		UpdateType: request.Type,
		Status:     status,
		Block:      block,
	}); err != nil {
		return err
	}
	counters.LastProcessedRequestOnL2 = id
	if err := setCounters(tx, counters); err != nil {
		return err
	}
	return events.Emit(tx, block, events.RequestProcessedOnL2, chain, RequestProcessedOnL2{
		Chain:      chain,
		RequestID:  id,
		UpdateType: request.Type,
		Status:     status,
	})
}

func (r *Rolldown) apply(tx db.Querier, block uint64, chain uint32, request messages.Request) error {
	switch request.Type {
	case messages.UpdateTypeDeposit:
		return r.processDeposit(tx, chain, request.Deposit)
	case messages.UpdateTypeWithdrawal:
		return r.processWithdrawal(tx, chain, request.Withdrawal)
	case messages.UpdateTypeCancelResolution:
		return r.processCancelResolution(tx, block, chain, request.CancelResolution)
	case messages.UpdateTypeIndexUpdate:
		return r.processIndexRemoval(tx, chain, request.IndexRemoval)
	default:
		return fmt.Errorf("%w: unexpected request type %s", messages.ErrInvalidUpdate, request.Type)
	}
}

func (r *Rolldown) processDeposit(tx db.Querier, chain uint32, deposit *messages.Deposit) error {
	asset := messages.L1Asset{Chain: chain, Address: deposit.TokenAddress}
	assetID, err := r.registry.GetL1AssetID(tx, asset)
	if errors.Is(err, db.ErrNotFound) {
		assetID, err = r.registry.CreateL1Asset(tx, asset)
		if err == nil {
			r.logger.Infof("registered L1 asset %s as %d", asset, assetID)
		}
	}
	if err != nil {
		return fmt.Errorf("error resolving asset %s: %w", asset, err)
	}
	if err := r.tokens.Mint(tx, assetID, deposit.DepositRecipient, deposit.Amount); err != nil {
		return fmt.Errorf("error minting %s of asset %d to %s: %w",
			deposit.Amount, assetID, deposit.DepositRecipient, err)
	}
	return nil
}

func (r *Rolldown) processWithdrawal(tx db.Querier, chain uint32, withdrawal *messages.Withdrawal) error {
	asset := messages.L1Asset{Chain: chain, Address: withdrawal.TokenAddress}
	assetID, err := r.registry.GetL1AssetID(tx, asset)
	if err != nil {
		return fmt.Errorf("error resolving asset %s: %w", asset, err)
	}
	account := withdrawal.WithdrawalRecipient
	if err := r.tokens.EnsureCanWithdraw(tx, assetID, account, withdrawal.Amount); err != nil {
		return fmt.Errorf("%s can not withdraw %s of asset %d: %w", account, withdrawal.Amount, assetID, err)
	}
	if err := r.tokens.Burn(tx, assetID, account, withdrawal.Amount); err != nil {
		return fmt.Errorf("error burning %s of asset %d from %s: %w", withdrawal.Amount, assetID, account, err)
	}
	return nil
}

// processCancelResolution closes a dispute. Both parties get their rights back before anybody
// is slashed, so a deactivation caused by the slash is final.
func (r *Rolldown) processCancelResolution(
	tx db.Querier, block uint64, chain uint32, resolution *messages.CancelResolution,
) error {
	cancel, err := getCancel(tx, chain, resolution.L2RequestID)
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("%w: no cancel %d on chain %d", ErrRequestDoesNotExist, resolution.L2RequestID, chain)
	}
	if err != nil {
		return fatal(err)
	}
	if _, err := r.rights.RestoreRead(tx, chain, cancel.Updater); err != nil {
		return fatal(err)
	}
	if _, err := r.rights.RestoreCancel(tx, chain, cancel.Canceler); err != nil {
		return fatal(err)
	}
	if err := deleteCancel(tx, chain, cancel.L2RequestID); err != nil {
		return fatal(err)
	}

	if resolution.CancelJustified {
		r.logger.Infof("cancel %d of chain %d was justified, slashing updater %s",
			cancel.L2RequestID, chain, cancel.Updater)
		canceler := cancel.Canceler
		return r.staking.SlashSequencer(tx, block, chain, cancel.Updater, &canceler)
	}
	r.logger.Infof("cancel %d of chain %d was not justified, slashing canceler %s",
		cancel.L2RequestID, chain, cancel.Canceler)
	return r.staking.SlashSequencer(tx, block, chain, cancel.Canceler, nil)
}

func (r *Rolldown) processIndexRemoval(tx db.Querier, chain uint32, removal *messages.L2UpdatesToRemove) error {
	removed := 0
	for _, id := range removal.L2UpdatesToRemove {
		deleted, err := deleteRequestResult(tx, chain, id)
		if err != nil {
			return fatal(err)
		}
		if deleted {
			removed++
		}
	}
	r.logger.Debugf("removed %d of %d results of chain %d", removed, len(removal.L2UpdatesToRemove), chain)
	return nil
}
