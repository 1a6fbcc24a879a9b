package rolldown

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/0xPolygon/rolldown/common"
	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/events"
	"github.com/0xPolygon/rolldown/messages"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/russross/meddler"
)

const l2RequestTable = "l2_request"

var (
	ErrUnknownAsset    = errors.New("unknown L1 asset")
	ErrNotEnoughAssets = errors.New("not enough assets")
)

// L2Request is a request originated on L2 for L1: a withdrawal or a cancel. The log of L2
// requests is append only, its hashes are the leaves of the batches merkle trees.
type L2Request struct {
	Chain       uint32              `meddler:"chain" json:"chain"`
	L2RequestID uint64              `meddler:"l2_request_id" json:"l2RequestId"`
	UpdateType  messages.UpdateType `meddler:"update_type" json:"updateType"`
	Encoded     hexutil.Bytes       `meddler:"encoded" json:"encoded"`
	Hash        ethCommon.Hash      `meddler:"hash,hash" json:"hash"`
	Block       uint64              `meddler:"block" json:"block"`
}

// WithdrawalRequestCreated is the payload of events.WithdrawalRequestCreated
type WithdrawalRequestCreated struct {
	Chain        uint32             `json:"chain"`
	RequestID    messages.RequestID `json:"requestId"`
	Recipient    ethCommon.Address  `json:"recipient"`
	TokenAddress ethCommon.Address  `json:"tokenAddress"`
	Amount       *big.Int           `json:"amount"`
	Hash         ethCommon.Hash     `json:"hash"`
}

// Withdraw burns amount of the L1 token of the chain held by account and records a
// withdrawal of it to recipient on L1. It returns the L2 request id of the withdrawal.
func (r *Rolldown) Withdraw(
	tx db.Querier, block uint64, account ethCommon.Address, chain uint32,
	recipient, token ethCommon.Address, amount *big.Int,
) (uint64, error) {
	if err := r.checkMaintenance(tx); err != nil {
		return 0, err
	}
	if err := common.CheckAmount(amount); err != nil {
		return 0, err
	}
	asset := messages.L1Asset{Chain: chain, Address: token}
	assetID, err := r.registry.GetL1AssetID(tx, asset)
	if errors.Is(err, db.ErrNotFound) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAsset, asset)
	}
	if err != nil {
		return 0, fmt.Errorf("error resolving asset %s: %w", asset, err)
	}
	if err := r.tokens.EnsureCanWithdraw(tx, assetID, account, amount); err != nil {
		return 0, fmt.Errorf("%w: %s can not withdraw %s of asset %d: %w",
			ErrNotEnoughAssets, account, amount, assetID, err)
	}
	if err := r.tokens.Burn(tx, assetID, account, amount); err != nil {
		return 0, fmt.Errorf("error burning %s of asset %d from %s: %w", amount, assetID, account, err)
	}

	id, err := acquireL2RequestID(tx, chain)
	if err != nil {
		return 0, err
	}
	withdrawal := messages.L2Withdrawal{
		RequestID:           messages.RequestID{Origin: messages.OriginL2, ID: id},
		WithdrawalRecipient: recipient,
		TokenAddress:        token,
		Amount:              amount,
	}
	encoded, err := withdrawal.Encode()
	if err != nil {
		return 0, err
	}
	request, err := storeL2Request(tx, block, chain, id, messages.UpdateTypeWithdrawal, encoded)
	if err != nil {
		return 0, err
	}
	r.logger.Infof("%s withdraws %s of asset %d to %s on chain %d, L2 request %d",
		account, amount, assetID, recipient, chain, id)
	return id, events.Emit(tx, block, events.WithdrawalRequestCreated, chain, WithdrawalRequestCreated{
		Chain:        chain,
		RequestID:    withdrawal.RequestID,
		Recipient:    recipient,
		TokenAddress: token,
		Amount:       amount,
		Hash:         request.Hash,
	})
}

// L2Request returns the L2 request of the chain with the given id, db.ErrNotFound if there is none
func (r *Rolldown) L2Request(tx db.Querier, chain uint32, l2RequestID uint64) (*L2Request, error) {
	return getL2Request(tx, chain, l2RequestID)
}

// acquireL2RequestID returns the next L2 origin request id of the chain and advances the counter
func acquireL2RequestID(tx db.Querier, chain uint32) (uint64, error) {
	counters, err := getCounters(tx, chain)
	if err != nil {
		return 0, err
	}
	id := counters.L2OriginRequestID
	if counters.L2OriginRequestID, err = common.SafeAddUint64(id, 1); err != nil {
		return 0, fmt.Errorf("l2 origin request id: %w", err)
	}
	if err := setCounters(tx, counters); err != nil {
		return 0, err
	}
	return id, nil
}

func storeL2Request(
	tx db.Querier, block uint64, chain uint32, id uint64, updateType messages.UpdateType, encoded []byte,
) (*L2Request, error) {
	request := &L2Request{
		Chain:       chain,
		L2RequestID: id,
		UpdateType:  updateType,
		Encoded:     encoded,
		Hash:        crypto.Keccak256Hash(encoded),
		Block:       block,
	}
	if err := meddler.Insert(tx, l2RequestTable, request); err != nil {
		return nil, fmt.Errorf("error inserting L2 request %d of chain %d: %w", id, chain, err)
	}
	return request, nil
}

func getL2Request(tx db.Querier, chain uint32, l2RequestID uint64) (*L2Request, error) {
	request := &L2Request{}
	err := meddler.QueryRow(tx, request,
		`SELECT * FROM l2_request WHERE chain = $1 AND l2_request_id = $2;`, chain, l2RequestID)
	return request, db.ReturnErrNotFound(err)
}

func getL2Requests(tx db.Querier, chain uint32, rng messages.Range) ([]*L2Request, error) {
	var requests []*L2Request
	err := meddler.QueryAll(tx, &requests, `
		SELECT * FROM l2_request
		WHERE chain = $1 AND l2_request_id >= $2 AND l2_request_id <= $3
		ORDER BY l2_request_id ASC;
	`, chain, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}
	return requests, nil
}
