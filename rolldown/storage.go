package rolldown

import (
	"errors"
	"fmt"

	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/messages"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

const (
	pendingRequestTable = "pending_request"
	requestResultTable  = "request_result"
	cancelTable         = "cancel"
	chainCounterTable   = "chain_counter"
)

// PendingRequest is an update waiting for the end of its dispute period
type PendingRequest struct {
	Deadline   uint64            `meddler:"deadline" json:"deadline"`
	Chain      uint32            `meddler:"chain" json:"chain"`
	Submitter  ethCommon.Address `meddler:"submitter,address" json:"submitter"`
	Update     messages.L1Update `meddler:"batch,json" json:"update"`
	Hash       ethCommon.Hash    `meddler:"hash,hash" json:"hash"`
	RangeStart uint64            `meddler:"range_start" json:"rangeStart"`
	RangeEnd   uint64            `meddler:"range_end" json:"rangeEnd"`
}

// RequestResult is the recorded outcome of a processed request
type RequestResult struct {
	Chain      uint32              `meddler:"chain" json:"chain"`
	RequestID  uint64              `meddler:"request_id" json:"requestId"`
	UpdateType messages.UpdateType `meddler:"update_type" json:"updateType"`
	Status     bool                `meddler:"status" json:"status"`
	Block      uint64              `meddler:"block" json:"block"`
}

// CancelRecord is an open dispute against a pending update, waiting for its resolution from L1
type CancelRecord struct {
	Chain                 uint32            `meddler:"chain" json:"chain"`
	L2RequestID           uint64            `meddler:"l2_request_id" json:"l2RequestId"`
	Updater               ethCommon.Address `meddler:"updater,address" json:"updater"`
	Canceler              ethCommon.Address `meddler:"canceler,address" json:"canceler"`
	LastProcessedOnSource uint64            `meddler:"last_processed_on_source" json:"lastProcessedOnSource"`
	LastAcceptedOnSource  uint64            `meddler:"last_accepted_on_source" json:"lastAcceptedOnSource"`
	Hash                  ethCommon.Hash    `meddler:"hash,hash" json:"hash"`
}

func (c *CancelRecord) message() messages.Cancel {
	return messages.Cancel{
		L2RequestID:           c.L2RequestID,
		LastProcessedOnSource: c.LastProcessedOnSource,
		LastAcceptedOnSource:  c.LastAcceptedOnSource,
		Hash:                  c.Hash,
	}
}

// ChainCounters are the per chain request counters
type ChainCounters struct {
	Chain                    uint32 `meddler:"chain" json:"chain"`
	LastProcessedRequestOnL2 uint64 `meddler:"last_processed_request_on_l2" json:"lastProcessedRequestOnL2"`
	L2OriginRequestID        uint64 `meddler:"l2_origin_request_id" json:"l2OriginRequestId"`
}

func getPendingRequest(tx db.Querier, deadline uint64, chain uint32) (*PendingRequest, error) {
	p := &PendingRequest{}
	err := meddler.QueryRow(tx, p,
		`SELECT * FROM pending_request WHERE deadline = $1 AND chain = $2;`, deadline, chain)
	return p, db.ReturnErrNotFound(err)
}

func getPendingRequestsAt(tx db.Querier, deadline uint64) ([]*PendingRequest, error) {
	var pending []*PendingRequest
	err := meddler.QueryAll(tx, &pending,
		`SELECT * FROM pending_request WHERE deadline = $1 ORDER BY chain ASC;`, deadline)
	if err != nil {
		return nil, err
	}
	return pending, nil
}

func getPendingRequests(tx db.Querier, chain uint32) ([]*PendingRequest, error) {
	var pending []*PendingRequest
	err := meddler.QueryAll(tx, &pending,
		`SELECT * FROM pending_request WHERE chain = $1 ORDER BY deadline ASC;`, chain)
	if err != nil {
		return nil, err
	}
	return pending, nil
}

func insertPendingRequest(tx db.Querier, p *PendingRequest) error {
	if err := meddler.Insert(tx, pendingRequestTable, p); err != nil {
		if db.IsUniqueConstraintErr(err) {
			return fmt.Errorf("%w: chain %d already has an update with deadline %d",
				ErrMultipleUpdatesInSingleBlock, p.Chain, p.Deadline)
		}
		return fmt.Errorf("error inserting pending request: %w", err)
	}
	return nil
}

func deletePendingRequest(tx db.Querier, deadline uint64, chain uint32) error {
	_, err := tx.Exec(`DELETE FROM pending_request WHERE deadline = $1 AND chain = $2;`, deadline, chain)
	return err
}

func getRequestResult(tx db.Querier, chain uint32, requestID uint64) (*RequestResult, error) {
	r := &RequestResult{}
	err := meddler.QueryRow(tx, r,
		`SELECT * FROM request_result WHERE chain = $1 AND request_id = $2;`, chain, requestID)
	return r, db.ReturnErrNotFound(err)
}

func getRequestResults(tx db.Querier, chain uint32) ([]*RequestResult, error) {
	var results []*RequestResult
	err := meddler.QueryAll(tx, &results,
		`SELECT * FROM request_result WHERE chain = $1 ORDER BY request_id ASC;`, chain)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func insertRequestResult(tx db.Querier, r *RequestResult) error {
	if err := meddler.Insert(tx, requestResultTable, r); err != nil {
		return fmt.Errorf("error inserting result of request %d: %w", r.RequestID, err)
	}
	return nil
}

func deleteRequestResult(tx db.Querier, chain uint32, requestID uint64) (bool, error) {
	res, err := tx.Exec(`DELETE FROM request_result WHERE chain = $1 AND request_id = $2;`, chain, requestID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func getCancel(tx db.Querier, chain uint32, l2RequestID uint64) (*CancelRecord, error) {
	c := &CancelRecord{}
	err := meddler.QueryRow(tx, c,
		`SELECT * FROM cancel WHERE chain = $1 AND l2_request_id = $2;`, chain, l2RequestID)
	return c, db.ReturnErrNotFound(err)
}

func getCancels(tx db.Querier, chain uint32) ([]*CancelRecord, error) {
	var cancels []*CancelRecord
	err := meddler.QueryAll(tx, &cancels,
		`SELECT * FROM cancel WHERE chain = $1 ORDER BY l2_request_id ASC;`, chain)
	if err != nil {
		return nil, err
	}
	return cancels, nil
}

func insertCancel(tx db.Querier, c *CancelRecord) error {
	if err := meddler.Insert(tx, cancelTable, c); err != nil {
		return fmt.Errorf("error inserting cancel %d: %w", c.L2RequestID, err)
	}
	return nil
}

func deleteCancel(tx db.Querier, chain uint32, l2RequestID uint64) error {
	_, err := tx.Exec(`DELETE FROM cancel WHERE chain = $1 AND l2_request_id = $2;`, chain, l2RequestID)
	return err
}

func getCounters(tx db.Querier, chain uint32) (*ChainCounters, error) {
	c := &ChainCounters{}
	err := meddler.QueryRow(tx, c, `SELECT * FROM chain_counter WHERE chain = $1;`, chain)
	err = db.ReturnErrNotFound(err)
	if errors.Is(err, db.ErrNotFound) {
		return &ChainCounters{Chain: chain, L2OriginRequestID: 1}, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func getAllCounters(tx db.Querier) ([]*ChainCounters, error) {
	var counters []*ChainCounters
	if err := meddler.QueryAll(tx, &counters, `SELECT * FROM chain_counter ORDER BY chain ASC;`); err != nil {
		return nil, err
	}
	return counters, nil
}

func setCounters(tx db.Querier, c *ChainCounters) error {
	_, err := tx.Exec(`
		INSERT INTO chain_counter (chain, last_processed_request_on_l2, l2_origin_request_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (chain) DO UPDATE SET
			last_processed_request_on_l2 = excluded.last_processed_request_on_l2,
			l2_origin_request_id = excluded.l2_origin_request_id;
	`, c.Chain, c.LastProcessedRequestOnL2, c.L2OriginRequestID)
	if err != nil {
		return fmt.Errorf("error updating counters of chain %d: %w", c.Chain, err)
	}
	return nil
}

// disputeCounts tells how many updates and disputes of a sequencer are still open
type disputeCounts struct {
	pendingUpdates uint64
	cancelsAgainst uint64
	cancelsRaised  uint64
}

// readsUnderDispute are the read rights the sequencer has not got back yet
func (d disputeCounts) readsUnderDispute() uint64 {
	return d.pendingUpdates + d.cancelsAgainst
}

func countDisputes(tx db.Querier, chain uint32, sequencer ethCommon.Address) (disputeCounts, error) {
	var d disputeCounts
	addr := sequencer.Hex()
	if err := tx.QueryRow(`SELECT COUNT(*) FROM pending_request WHERE chain = $1 AND submitter = $2;`,
		chain, addr).Scan(&d.pendingUpdates); err != nil {
		return d, err
	}
	if err := tx.QueryRow(`SELECT COUNT(*) FROM cancel WHERE chain = $1 AND updater = $2;`,
		chain, addr).Scan(&d.cancelsAgainst); err != nil {
		return d, err
	}
	if err := tx.QueryRow(`SELECT COUNT(*) FROM cancel WHERE chain = $1 AND canceler = $2;`,
		chain, addr).Scan(&d.cancelsRaised); err != nil {
		return d, err
	}
	return d, nil
}
