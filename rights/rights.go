package rights

import (
	"errors"
	"fmt"

	"github.com/0xPolygon/rolldown/common"
	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/log"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

const rightsTable = "sequencer_rights"

var (
	ErrReadRightsExhausted   = errors.New("read rights exhausted")
	ErrCancelRightsExhausted = errors.New("cancel rights exhausted")
)

// Rights of a sequencer over a chain. Only members of the chain's active set have a row,
// everybody else reads as zero rights.
// CancelDebt counts the cancel rights owed to peers that left while every cancel right of the
// sequencer was tied to an open dispute. It is paid before any cancel right is granted again,
// so CancelRights + open cancels - CancelDebt always equals the number of other members.
type Rights struct {
	Chain        uint32            `meddler:"chain" json:"chain"`
	Sequencer    ethCommon.Address `meddler:"sequencer,address" json:"sequencer"`
	ReadRights   uint64            `meddler:"read_rights" json:"readRights"`
	CancelRights uint64            `meddler:"cancel_rights" json:"cancelRights"`
	CancelDebt   uint64            `meddler:"cancel_debt" json:"cancelDebt,omitempty"`
}

// grantCancel gives one cancel right, or pays one right of debt instead
func (r *Rights) grantCancel() error {
	if r.CancelDebt > 0 {
		r.CancelDebt--
		return nil
	}
	v, err := common.SafeAddUint64(r.CancelRights, 1)
	if err != nil {
		return fmt.Errorf("cancel rights of %s: %w", r.Sequencer, err)
	}
	r.CancelRights = v
	return nil
}

// Ledger keeps the read and cancel rights of the active sequencers
type Ledger struct {
	logger *log.Logger
}

func NewLedger(logger *log.Logger) *Ledger {
	return &Ledger{logger: logger}
}

// Get returns the rights of the sequencer, zero rights if it is not active
func (l *Ledger) Get(tx db.Querier, chain uint32, sequencer ethCommon.Address) (Rights, error) {
	r, err := getRights(tx, chain, sequencer)
	if errors.Is(err, db.ErrNotFound) {
		return Rights{Chain: chain, Sequencer: sequencer}, nil
	}
	return r, err
}

// GetAll returns the rights of every active sequencer of the chain
func (l *Ledger) GetAll(tx db.Querier, chain uint32) ([]*Rights, error) {
	var all []*Rights
	err := meddler.QueryAll(tx, &all,
		`SELECT * FROM sequencer_rights WHERE chain = $1 ORDER BY sequencer ASC;`, chain)
	if err != nil {
		return nil, err
	}
	return all, nil
}

// ConsumeRead takes one read right from the sequencer
func (l *Ledger) ConsumeRead(tx db.Querier, chain uint32, sequencer ethCommon.Address) error {
	r, err := l.Get(tx, chain, sequencer)
	if err != nil {
		return err
	}
	if r.ReadRights == 0 {
		return fmt.Errorf("%w: sequencer %s on chain %d", ErrReadRightsExhausted, sequencer, chain)
	}
	r.ReadRights--
	return updateRights(tx, &r)
}

// ConsumeCancel takes one cancel right from the sequencer
func (l *Ledger) ConsumeCancel(tx db.Querier, chain uint32, sequencer ethCommon.Address) error {
	r, err := l.Get(tx, chain, sequencer)
	if err != nil {
		return err
	}
	if r.CancelRights == 0 {
		return fmt.Errorf("%w: sequencer %s on chain %d", ErrCancelRightsExhausted, sequencer, chain)
	}
	r.CancelRights--
	return updateRights(tx, &r)
}

// RestoreRead gives one read right back to the sequencer. Inactive sequencers are left
// untouched and false is returned.
func (l *Ledger) RestoreRead(tx db.Querier, chain uint32, sequencer ethCommon.Address) (bool, error) {
	return l.restore(tx, chain, sequencer, func(r *Rights) error {
		v, err := common.SafeAddUint64(r.ReadRights, 1)
		if err != nil {
			return fmt.Errorf("read rights of %s: %w", sequencer, err)
		}
		r.ReadRights = v
		return nil
	})
}

// RestoreCancel gives one cancel right back to the sequencer if it is active. A right owed to
// a departed peer is settled first.
func (l *Ledger) RestoreCancel(tx db.Querier, chain uint32, sequencer ethCommon.Address) (bool, error) {
	return l.restore(tx, chain, sequencer, func(r *Rights) error {
		return r.grantCancel()
	})
}

// ResetRead sets the read rights of an active sequencer to one
func (l *Ledger) ResetRead(tx db.Querier, chain uint32, sequencer ethCommon.Address) (bool, error) {
	return l.restore(tx, chain, sequencer, func(r *Rights) error {
		r.ReadRights = 1
		return nil
	})
}

func (l *Ledger) restore(
	tx db.Querier, chain uint32, sequencer ethCommon.Address, mutate func(r *Rights) error,
) (bool, error) {
	r, err := getRights(tx, chain, sequencer)
	if errors.Is(err, db.ErrNotFound) {
		l.logger.Debugf("sequencer %s is not active on chain %d, rights not restored", sequencer, chain)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := mutate(&r); err != nil {
		return false, err
	}
	return true, updateRights(tx, &r)
}

// OnSequencerJoined grants the rights of a new member of the active set. Rights that are
// still tied to a dispute are not granted again: readUnderDispute is subtracted from the
// single read right and cancelUnderDispute from one cancel right per other member.
// Every other member gets one more cancel right.
func (l *Ledger) OnSequencerJoined(
	tx db.Querier, chain uint32, sequencer ethCommon.Address, readUnderDispute, cancelUnderDispute uint64,
) error {
	others, err := l.GetAll(tx, chain)
	if err != nil {
		return err
	}
	for _, other := range others {
		if other.Sequencer == sequencer {
			return fmt.Errorf("sequencer %s already has rights on chain %d", sequencer, chain)
		}
	}
	peers := uint64(len(others))
	joined := &Rights{
		Chain:        chain,
		Sequencer:    sequencer,
		ReadRights:   common.SaturatingSubUint64(1, readUnderDispute),
		CancelRights: common.SaturatingSubUint64(peers, cancelUnderDispute),
		CancelDebt:   common.SaturatingSubUint64(cancelUnderDispute, peers),
	}
	if err := meddler.Insert(tx, rightsTable, joined); err != nil {
		return fmt.Errorf("error inserting rights of %s: %w", sequencer, err)
	}
	for _, other := range others {
		if err := other.grantCancel(); err != nil {
			return err
		}
		if err := updateRights(tx, other); err != nil {
			return err
		}
	}
	l.logger.Debugf("sequencer %s joined chain %d with %d read and %d cancel rights",
		sequencer, chain, joined.ReadRights, joined.CancelRights)
	return nil
}

// OnSequencersRemoved drops the rights of the removed members and takes one cancel right
// per removed member from everybody left. What cannot be taken is recorded as debt.
func (l *Ledger) OnSequencersRemoved(tx db.Querier, chain uint32, removed []ethCommon.Address) error {
	var count uint64
	for _, seq := range removed {
		res, err := tx.Exec(`DELETE FROM sequencer_rights WHERE chain = $1 AND sequencer = $2;`,
			chain, seq.Hex())
		if err != nil {
			return fmt.Errorf("error deleting rights of %s: %w", seq, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		count += uint64(n)
	}
	if count == 0 {
		return nil
	}
	_, err := tx.Exec(`
		UPDATE sequencer_rights
		SET cancel_rights = CASE WHEN cancel_rights > $1 THEN cancel_rights - $1 ELSE 0 END,
			cancel_debt = cancel_debt + CASE WHEN cancel_rights < $1 THEN $1 - cancel_rights ELSE 0 END
		WHERE chain = $2;`, count, chain)
	if err != nil {
		return fmt.Errorf("error updating cancel rights of chain %d: %w", chain, err)
	}
	return nil
}

func getRights(tx db.Querier, chain uint32, sequencer ethCommon.Address) (Rights, error) {
	var r Rights
	err := meddler.QueryRow(tx, &r,
		`SELECT * FROM sequencer_rights WHERE chain = $1 AND sequencer = $2;`, chain, sequencer.Hex())
	if err != nil {
		return Rights{}, db.ReturnErrNotFound(err)
	}
	return r, nil
}

func updateRights(tx db.Querier, r *Rights) error {
	res, err := tx.Exec(`
		UPDATE sequencer_rights SET read_rights = $1, cancel_rights = $2, cancel_debt = $3
		WHERE chain = $4 AND sequencer = $5;`, r.ReadRights, r.CancelRights, r.CancelDebt, r.Chain, r.Sequencer.Hex())
	if err != nil {
		return fmt.Errorf("error updating rights of %s: %w", r.Sequencer, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: rights of %s on chain %d", db.ErrNotFound, r.Sequencer, r.Chain)
	}
	return nil
}
