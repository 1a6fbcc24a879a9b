package rolldown

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/log"
	"github.com/0xPolygon/rolldown/messages"
	"github.com/0xPolygon/rolldown/rights"
	ethCommon "github.com/ethereum/go-ethereum/common"
)

var (
	ErrOnlySelectedSequencerIsAllowedToUpdate  = errors.New("only the selected sequencer is allowed to update")
	ErrMultipleUpdatesInSingleBlock            = errors.New("multiple updates in a single block")
	ErrRequestDoesNotExist                     = errors.New("request does not exist")
	ErrSequencerLastUpdateStillInDisputePeriod = errors.New("sequencer last update is still in dispute period")
	ErrSequencerAwaitingCancelResolution       = errors.New("sequencer is awaiting cancel resolution")
	ErrBlockedByMaintenanceMode                = errors.New("blocked by maintenance mode")
)

// Tokens moves the L1 assets bridged to L2
type Tokens interface {
	Mint(tx db.Querier, assetID uint64, account ethCommon.Address, amount *big.Int) error
	EnsureCanWithdraw(tx db.Querier, assetID uint64, account ethCommon.Address, amount *big.Int) error
	Burn(tx db.Querier, assetID uint64, account ethCommon.Address, amount *big.Int) error
}

// AssetRegistry maps L1 token contracts to L2 asset ids
type AssetRegistry interface {
	GetL1AssetID(tx db.Querier, asset messages.L1Asset) (uint64, error)
	CreateL1Asset(tx db.Querier, asset messages.L1Asset) (uint64, error)
}

// SequencerStaking tells who may update and punishes sequencers
type SequencerStaking interface {
	IsSelectedSequencer(tx db.Querier, chain uint32, sequencer ethCommon.Address) (bool, error)
	SelectedSequencer(tx db.Querier, chain uint32) (*ethCommon.Address, error)
	SlashSequencer(tx db.Querier, block uint64, chain uint32, sequencer ethCommon.Address,
		reporter *ethCommon.Address) error
}

// MaintenanceStatus tells whether the bridge is paused. While it is, no update, cancel or
// withdrawal is accepted. Updates already queued are still processed.
type MaintenanceStatus interface {
	IsMaintenance(tx db.Querier) (bool, error)
}

// L1ReadStored is the payload of events.L1ReadStored
type L1ReadStored struct {
	Chain                    uint32            `json:"chain"`
	Sequencer                ethCommon.Address `json:"sequencer"`
	DisputePeriodEnd         uint64            `json:"disputePeriodEnd"`
	Range                    messages.Range    `json:"range"`
	LastProcessedRequestOnL1 uint64            `json:"lastProcessedRequestOnL1"`
	LastAcceptedRequestOnL1  uint64            `json:"lastAcceptedRequestOnL1"`
	Hash                     ethCommon.Hash    `json:"hash"`
}

// L1ReadCanceled is the payload of events.L1ReadCanceled
type L1ReadCanceled struct {
	Chain                   uint32             `json:"chain"`
	CanceledSequencerUpdate uint64             `json:"canceledSequencerUpdate"`
	AssignedID              messages.RequestID `json:"assignedId"`
}

// RequestProcessedOnL2 is the payload of events.RequestProcessedOnL2
type RequestProcessedOnL2 struct {
	Chain      uint32              `json:"chain"`
	RequestID  uint64              `json:"requestId"`
	UpdateType messages.UpdateType `json:"updateType"`
	Status     bool                `json:"status"`
}

// Rolldown keeps the queue of updates read from L1, processes them once their dispute period
// is over and builds the digest of their outcomes that is relayed back to L1
type Rolldown struct {
	logger      *log.Logger
	cfg         Config
	rights      *rights.Ledger
	staking     SequencerStaking
	tokens      Tokens
	registry    AssetRegistry
	maintenance MaintenanceStatus
}

func New(
	logger *log.Logger,
	cfg Config,
	rightsLedger *rights.Ledger,
	staking SequencerStaking,
	tokens Tokens,
	registry AssetRegistry,
	maintenance MaintenanceStatus,
) (*Rolldown, error) {
	if cfg.DisputePeriodLength == 0 {
		return nil, errors.New("DisputePeriodLength must be greater than zero")
	}
	if cfg.MaxRequestsPerUpdate <= 0 {
		return nil, fmt.Errorf("MaxRequestsPerUpdate must be greater than zero, got %d", cfg.MaxRequestsPerUpdate)
	}
	return &Rolldown{
		logger:      logger,
		cfg:         cfg,
		rights:      rightsLedger,
		staking:     staking,
		tokens:      tokens,
		registry:    registry,
		maintenance: maintenance,
	}, nil
}

func (r *Rolldown) checkMaintenance(tx db.Querier) error {
	on, err := r.maintenance.IsMaintenance(tx)
	if err != nil {
		return err
	}
	if on {
		return ErrBlockedByMaintenanceMode
	}
	return nil
}

// LastProcessedRequestOnL2 returns the highest L1 request id processed for the chain
func (r *Rolldown) LastProcessedRequestOnL2(tx db.Querier, chain uint32) (uint64, error) {
	c, err := getCounters(tx, chain)
	if err != nil {
		return 0, err
	}
	return c.LastProcessedRequestOnL2, nil
}

// PendingRequest returns the update of the chain waiting with the given deadline
func (r *Rolldown) PendingRequest(tx db.Querier, chain uint32, deadline uint64) (*PendingRequest, error) {
	return getPendingRequest(tx, deadline, chain)
}

// PendingRequests returns every update of the chain still in its dispute period
func (r *Rolldown) PendingRequests(tx db.Querier, chain uint32) ([]*PendingRequest, error) {
	return getPendingRequests(tx, chain)
}

// RequestResult returns the outcome of a processed request, db.ErrNotFound if there is none
func (r *Rolldown) RequestResult(tx db.Querier, chain uint32, requestID uint64) (*RequestResult, error) {
	return getRequestResult(tx, chain, requestID)
}

// Cancel returns the open dispute with the given L2 request id, db.ErrNotFound if there is none
func (r *Rolldown) Cancel(tx db.Querier, chain uint32, l2RequestID uint64) (*CancelRecord, error) {
	return getCancel(tx, chain, l2RequestID)
}
