package rolldown

import (
	"errors"
	"fmt"

	"github.com/0xPolygon/rolldown/common"
	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/events"
	"github.com/0xPolygon/rolldown/messages"
	"github.com/0xPolygon/rolldown/tree"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

const l2RequestsBatchTable = "l2_requests_batch"

var (
	ErrInvalidRange          = errors.New("invalid range")
	ErrNonExistingRequestID  = errors.New("non existing request id")
	ErrBatchAlreadyAvailable = errors.New("batch already available")
)

// BatchSource tells what created a batch
type BatchSource string

const (
	BatchSourceManual               BatchSource = "Manual"
	BatchSourceAutomaticSizeReached BatchSource = "AutomaticSizeReached"
	BatchSourcePeriodReached        BatchSource = "PeriodReached"
)

// L2RequestsBatch is a contiguous range of L2 requests of a chain committed by its merkle root.
// The assignee is expected to relay the root to L1.
type L2RequestsBatch struct {
	Chain      uint32            `meddler:"chain" json:"chain"`
	BatchID    uint64            `meddler:"batch_id" json:"batchId"`
	Block      uint64            `meddler:"block" json:"block"`
	RangeStart uint64            `meddler:"range_start" json:"rangeStart"`
	RangeEnd   uint64            `meddler:"range_end" json:"rangeEnd"`
	Assignee   ethCommon.Address `meddler:"assignee,address" json:"assignee"`
	Source     BatchSource       `meddler:"source" json:"source"`
	Root       ethCommon.Hash    `meddler:"root,hash" json:"root"`
}

func (b *L2RequestsBatch) Range() messages.Range {
	return messages.Range{Start: b.RangeStart, End: b.RangeEnd}
}

// TxBatchCreated is the payload of events.TxBatchCreated
type TxBatchCreated struct {
	Chain    uint32            `json:"chain"`
	Source   BatchSource       `json:"source"`
	Assignee ethCommon.Address `json:"assignee"`
	BatchID  uint64            `json:"batchId"`
	Range    messages.Range    `json:"range"`
	Root     ethCommon.Hash    `json:"root"`
}

// CreateBatch commits the L2 requests of the chain in rng to a new batch assigned to sender.
// The range must not leave a gap after the last batch and may only name existing requests.
func (r *Rolldown) CreateBatch(
	tx db.Querier, block uint64, sender ethCommon.Address, chain uint32, rng messages.Range,
) (*L2RequestsBatch, error) {
	if rng.Start == 0 || rng.Start > rng.End {
		return nil, fmt.Errorf("%w: %d..%d", ErrInvalidRange, rng.Start, rng.End)
	}
	counters, err := getCounters(tx, chain)
	if err != nil {
		return nil, err
	}
	if rng.End >= counters.L2OriginRequestID {
		return nil, fmt.Errorf("%w: %d, last L2 request of chain %d is %d",
			ErrNonExistingRequestID, rng.End, chain, counters.L2OriginRequestID-1)
	}
	last, err := r.lastBatch(tx, chain)
	if err != nil {
		return nil, err
	}
	if rng.Start > last.RangeEnd+1 {
		return nil, fmt.Errorf("%w: %d..%d leaves a gap after the last batched request %d",
			ErrInvalidRange, rng.Start, rng.End, last.RangeEnd)
	}
	return r.insertBatch(tx, block, chain, last.BatchID+1, rng, sender, BatchSourceManual)
}

// createAutomaticBatch batches the L2 requests of the first chain that has either gathered
// MerkleRootAutomaticBatchSize unbatched requests or not been batched for
// MerkleRootAutomaticBatchPeriod blocks. At most one batch is created per block, assigned to
// the selected sequencer of the chain.
func (r *Rolldown) createAutomaticBatch(tx db.Querier, block uint64) error {
	size := r.cfg.MerkleRootAutomaticBatchSize
	if size == 0 {
		return nil
	}
	counters, err := getAllCounters(tx)
	if err != nil {
		return err
	}
	for _, c := range counters {
		lastID := common.SaturatingSubUint64(c.L2OriginRequestID, 1)
		last, err := r.lastBatch(tx, c.Chain)
		if err != nil {
			return err
		}
		var source BatchSource
		switch {
		case lastID >= last.RangeEnd+size:
			source = BatchSourceAutomaticSizeReached
		case r.cfg.MerkleRootAutomaticBatchPeriod > 0 && block >= last.Block+r.cfg.MerkleRootAutomaticBatchPeriod:
			source = BatchSourcePeriodReached
		default:
			continue
		}
		start := last.RangeEnd + 1
		end := min(start+size-1, lastID)
		if end < start {
			continue
		}
		assignee, err := r.staking.SelectedSequencer(tx, c.Chain)
		if err != nil {
			return err
		}
		if assignee == nil {
			r.logger.Debugf("no sequencer selected on chain %d, requests %d..%d not batched", c.Chain, start, end)
			continue
		}
		_, err = r.insertBatch(tx, block, c.Chain, last.BatchID+1,
			messages.Range{Start: start, End: end}, *assignee, source)
		return err
	}
	return nil
}

func (r *Rolldown) insertBatch(
	tx db.Querier, block uint64, chain uint32, batchID uint64, rng messages.Range,
	assignee ethCommon.Address, source BatchSource,
) (*L2RequestsBatch, error) {
	t, err := r.merkleTree(tx, chain, rng)
	if err != nil {
		return nil, err
	}
	batch := &L2RequestsBatch{
		Chain:      chain,
		BatchID:    batchID,
		Block:      block,
		RangeStart: rng.Start,
		RangeEnd:   rng.End,
		Assignee:   assignee,
		Source:     source,
		Root:       t.Root(),
	}
	if err := meddler.Insert(tx, l2RequestsBatchTable, batch); err != nil {
		if db.IsUniqueConstraintErr(err) {
			return nil, fmt.Errorf("%w: batch %d of chain %d", ErrBatchAlreadyAvailable, batchID, chain)
		}
		return nil, fmt.Errorf("error inserting batch %d of chain %d: %w", batchID, chain, err)
	}
	r.logger.Infof("batch %d of chain %d created (%s): requests %d..%d assigned to %s, root %s",
		batchID, chain, source, rng.Start, rng.End, assignee, batch.Root)
	return batch, events.Emit(tx, block, events.TxBatchCreated, chain, TxBatchCreated{
		Chain:    chain,
		Source:   source,
		Assignee: assignee,
		BatchID:  batchID,
		Range:    rng,
		Root:     batch.Root,
	})
}

// L2RequestsBatch returns the batch of the chain with the given id, db.ErrNotFound if there is none
func (r *Rolldown) L2RequestsBatch(tx db.Querier, chain uint32, batchID uint64) (*L2RequestsBatch, error) {
	batch := &L2RequestsBatch{}
	err := meddler.QueryRow(tx, batch,
		`SELECT * FROM l2_requests_batch WHERE chain = $1 AND batch_id = $2;`, chain, batchID)
	return batch, db.ReturnErrNotFound(err)
}

// LastL2RequestsBatch returns the latest batch of the chain, db.ErrNotFound if there is none
func (r *Rolldown) LastL2RequestsBatch(tx db.Querier, chain uint32) (*L2RequestsBatch, error) {
	batch := &L2RequestsBatch{}
	err := meddler.QueryRow(tx, batch,
		`SELECT * FROM l2_requests_batch WHERE chain = $1 ORDER BY batch_id DESC LIMIT 1;`, chain)
	return batch, db.ReturnErrNotFound(err)
}

// lastBatch is LastL2RequestsBatch with a zero batch when the chain has none
func (r *Rolldown) lastBatch(tx db.Querier, chain uint32) (*L2RequestsBatch, error) {
	last, err := r.LastL2RequestsBatch(tx, chain)
	if errors.Is(err, db.ErrNotFound) {
		return &L2RequestsBatch{Chain: chain}, nil
	}
	return last, err
}

// MerkleRoot returns the root of the tree whose leaves are the hashes of the L2 requests in rng
func (r *Rolldown) MerkleRoot(tx db.Querier, chain uint32, rng messages.Range) (ethCommon.Hash, error) {
	t, err := r.merkleTree(tx, chain, rng)
	if err != nil {
		return ethCommon.Hash{}, err
	}
	return t.Root(), nil
}

// MerkleProof returns the proof that the L2 request l2RequestID is part of the tree of rng
func (r *Rolldown) MerkleProof(
	tx db.Querier, chain uint32, rng messages.Range, l2RequestID uint64,
) (tree.Proof, error) {
	if l2RequestID < rng.Start || l2RequestID > rng.End {
		return nil, fmt.Errorf("%w: request %d is not in %d..%d", ErrInvalidRange, l2RequestID, rng.Start, rng.End)
	}
	t, err := r.merkleTree(tx, chain, rng)
	if err != nil {
		return nil, err
	}
	return t.GetProof(int(l2RequestID - rng.Start))
}

// VerifyMerkleProof checks proof for the L2 request l2RequestID against root, the root of
// the tree of rng
func (r *Rolldown) VerifyMerkleProof(
	tx db.Querier, chain uint32, rng messages.Range, root ethCommon.Hash, l2RequestID uint64, proof tree.Proof,
) (bool, error) {
	if rng.Start == 0 || rng.Start > rng.End || l2RequestID < rng.Start || l2RequestID > rng.End {
		return false, nil
	}
	request, err := getL2Request(tx, chain, l2RequestID)
	if errors.Is(err, db.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	count := rng.End - rng.Start + 1
	return tree.Verify(root, request.Hash, int(l2RequestID-rng.Start), int(count), proof), nil
}

func (r *Rolldown) merkleTree(tx db.Querier, chain uint32, rng messages.Range) (*tree.Tree, error) {
	if rng.Start == 0 || rng.Start > rng.End {
		return nil, fmt.Errorf("%w: %d..%d", ErrInvalidRange, rng.Start, rng.End)
	}
	requests, err := getL2Requests(tx, chain, rng)
	if err != nil {
		return nil, err
	}
	if uint64(len(requests)) != rng.End-rng.Start+1 {
		return nil, fmt.Errorf("%w: chain %d does not have every L2 request in %d..%d",
			ErrNonExistingRequestID, chain, rng.Start, rng.End)
	}
	leaves := make([]ethCommon.Hash, len(requests))
	for i, request := range requests {
		leaves[i] = request.Hash
	}
	return tree.New(leaves)
}
