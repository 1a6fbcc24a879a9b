package rolldown

import (
	"fmt"

	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/log"
	"github.com/0xPolygon/rolldown/rights"
	ethCommon "github.com/ethereum/go-ethereum/common"
)

// SequencerHooks keeps the rights ledger in step with the active sets and holds the stake of
// sequencers that still have updates or disputes open
type SequencerHooks struct {
	logger *log.Logger
	rights *rights.Ledger
}

func NewSequencerHooks(logger *log.Logger, rightsLedger *rights.Ledger) *SequencerHooks {
	return &SequencerHooks{logger: logger, rights: rightsLedger}
}

// OnSequencerJoined grants the rights of a new member, minus the ones it has under dispute
func (h *SequencerHooks) OnSequencerJoined(tx db.Querier, chain uint32, sequencer ethCommon.Address) error {
	d, err := countDisputes(tx, chain, sequencer)
	if err != nil {
		return err
	}
	if d.readsUnderDispute() > 0 || d.cancelsRaised > 0 {
		h.logger.Debugf("sequencer %s joins chain %d with %d reads and %d cancels under dispute",
			sequencer, chain, d.readsUnderDispute(), d.cancelsRaised)
	}
	return h.rights.OnSequencerJoined(tx, chain, sequencer, d.readsUnderDispute(), d.cancelsRaised)
}

func (h *SequencerHooks) OnSequencersRemoved(tx db.Querier, chain uint32, removed []ethCommon.Address) error {
	return h.rights.OnSequencersRemoved(tx, chain, removed)
}

// CanUnstake fails while the sequencer has an update in its dispute period or is part of an
// open dispute
func (h *SequencerHooks) CanUnstake(tx db.Querier, chain uint32, sequencer ethCommon.Address) error {
	d, err := countDisputes(tx, chain, sequencer)
	if err != nil {
		return err
	}
	if d.pendingUpdates > 0 {
		return fmt.Errorf("%w: %s on chain %d", ErrSequencerLastUpdateStillInDisputePeriod, sequencer, chain)
	}
	if d.cancelsAgainst > 0 || d.cancelsRaised > 0 {
		return fmt.Errorf("%w: %s on chain %d", ErrSequencerAwaitingCancelResolution, sequencer, chain)
	}
	return nil
}
