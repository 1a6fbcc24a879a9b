package rolldown

import (
	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/messages"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// GetL2Update returns the outcomes of the chain waiting to be relayed to L1: every recorded
// result sorted by request id and every open dispute sorted by L2 request id
func (r *Rolldown) GetL2Update(tx db.Querier, chain uint32) (messages.L2Update, error) {
	results, err := getRequestResults(tx, chain)
	if err != nil {
		return messages.L2Update{}, err
	}
	cancels, err := getCancels(tx, chain)
	if err != nil {
		return messages.L2Update{}, err
	}
	update := messages.L2Update{
		Results: make([]messages.RequestResult, 0, len(results)),
		Cancels: make([]messages.Cancel, 0, len(cancels)),
	}
	for _, res := range results {
		update.Results = append(update.Results, messages.RequestResult{
			RequestID:  res.RequestID,
			UpdateType: res.UpdateType,
			Status:     res.Status,
		})
	}
	for _, c := range cancels {
		update.Cancels = append(update.Cancels, c.message())
	}
	return update, nil
}

// PendingUpdatesEncoded returns the ABI encoding of GetL2Update
func (r *Rolldown) PendingUpdatesEncoded(tx db.Querier, chain uint32) ([]byte, error) {
	update, err := r.GetL2Update(tx, chain)
	if err != nil {
		return nil, err
	}
	return update.Encode()
}

// PendingUpdatesDigest returns the keccak256 of PendingUpdatesEncoded
func (r *Rolldown) PendingUpdatesDigest(tx db.Querier, chain uint32) (ethCommon.Hash, error) {
	encoded, err := r.PendingUpdatesEncoded(tx, chain)
	if err != nil {
		return ethCommon.Hash{}, err
	}
	var digest ethCommon.Hash
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(encoded)
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}
