package messages

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var requestIDComponents = []abi.ArgumentMarshaling{
	{Name: "origin", Type: "uint8"},
	{Name: "id", Type: "uint256"},
}

var cancelComponents = []abi.ArgumentMarshaling{
	{Name: "l2RequestId", Type: "uint256"},
	{Name: "lastProcessedOnSource", Type: "uint256"},
	{Name: "lastAcceptedOnSource", Type: "uint256"},
	{Name: "hash", Type: "bytes32"},
}

var (
	l1UpdateArgs = mustArguments([]abi.ArgumentMarshaling{
		{Name: "lastProcessedRequestOnL1", Type: "uint256"},
		{Name: "lastAcceptedRequestOnL1", Type: "uint256"},
		{Name: "order", Type: "uint8[]"},
		{Name: "pendingDeposits", Type: "tuple[]", Components: []abi.ArgumentMarshaling{
			{Name: "requestId", Type: "tuple", Components: requestIDComponents},
			{Name: "depositRecipient", Type: "address"},
			{Name: "tokenAddress", Type: "address"},
			{Name: "amount", Type: "uint256"},
			{Name: "timeStamp", Type: "uint256"},
		}},
		{Name: "pendingWithdrawals", Type: "tuple[]", Components: []abi.ArgumentMarshaling{
			{Name: "requestId", Type: "tuple", Components: requestIDComponents},
			{Name: "withdrawalRecipient", Type: "address"},
			{Name: "tokenAddress", Type: "address"},
			{Name: "amount", Type: "uint256"},
			{Name: "timeStamp", Type: "uint256"},
		}},
		{Name: "pendingCancelResolutions", Type: "tuple[]", Components: []abi.ArgumentMarshaling{
			{Name: "requestId", Type: "tuple", Components: requestIDComponents},
			{Name: "l2RequestId", Type: "uint256"},
			{Name: "cancelJustified", Type: "bool"},
			{Name: "timeStamp", Type: "uint256"},
		}},
		{Name: "pendingL2UpdatesToRemove", Type: "tuple[]", Components: []abi.ArgumentMarshaling{
			{Name: "requestId", Type: "tuple", Components: requestIDComponents},
			{Name: "l2UpdatesToRemove", Type: "uint256[]"},
			{Name: "timeStamp", Type: "uint256"},
		}},
	})

	l2UpdateArgs = mustArguments([]abi.ArgumentMarshaling{
		{Name: "results", Type: "tuple[]", Components: []abi.ArgumentMarshaling{
			{Name: "requestId", Type: "uint256"},
			{Name: "updateType", Type: "uint8"},
			{Name: "status", Type: "bool"},
		}},
		{Name: "cancels", Type: "tuple[]", Components: cancelComponents},
	})

	cancelArgs = mustArguments(cancelComponents)

	l2WithdrawalArgs = mustArguments([]abi.ArgumentMarshaling{
		{Name: "requestId", Type: "tuple", Components: requestIDComponents},
		{Name: "withdrawalRecipient", Type: "address"},
		{Name: "tokenAddress", Type: "address"},
		{Name: "amount", Type: "uint256"},
	})
)

// mustArguments builds a single tuple argument, the encoding of abi.encode(struct) in solidity
func mustArguments(components []abi.ArgumentMarshaling) abi.Arguments {
	t, err := abi.NewType("tuple", "", components)
	if err != nil {
		panic(fmt.Sprintf("invalid abi definition: %v", err))
	}
	return abi.Arguments{{Type: t}}
}

type abiRequestID struct {
	Origin uint8    `abi:"origin"`
	ID     *big.Int `abi:"id"`
}

type abiDeposit struct {
	RequestID        abiRequestID   `abi:"requestId"`
	DepositRecipient common.Address `abi:"depositRecipient"`
	TokenAddress     common.Address `abi:"tokenAddress"`
	Amount           *big.Int       `abi:"amount"`
	TimeStamp        *big.Int       `abi:"timeStamp"`
}

type abiWithdrawal struct {
	RequestID           abiRequestID   `abi:"requestId"`
	WithdrawalRecipient common.Address `abi:"withdrawalRecipient"`
	TokenAddress        common.Address `abi:"tokenAddress"`
	Amount              *big.Int       `abi:"amount"`
	TimeStamp           *big.Int       `abi:"timeStamp"`
}

type abiCancelResolution struct {
	RequestID       abiRequestID `abi:"requestId"`
	L2RequestID     *big.Int     `abi:"l2RequestId"`
	CancelJustified bool         `abi:"cancelJustified"`
	TimeStamp       *big.Int     `abi:"timeStamp"`
}

type abiL2UpdatesToRemove struct {
	RequestID         abiRequestID `abi:"requestId"`
	L2UpdatesToRemove []*big.Int   `abi:"l2UpdatesToRemove"`
	TimeStamp         *big.Int     `abi:"timeStamp"`
}

type abiL1Update struct {
	LastProcessedRequestOnL1 *big.Int               `abi:"lastProcessedRequestOnL1"`
	LastAcceptedRequestOnL1  *big.Int               `abi:"lastAcceptedRequestOnL1"`
	Order                    []uint8                `abi:"order"`
	PendingDeposits          []abiDeposit           `abi:"pendingDeposits"`
	PendingWithdrawals       []abiWithdrawal        `abi:"pendingWithdrawals"`
	PendingCancelResolutions []abiCancelResolution  `abi:"pendingCancelResolutions"`
	PendingL2UpdatesToRemove []abiL2UpdatesToRemove `abi:"pendingL2UpdatesToRemove"`
}

type abiRequestResult struct {
	RequestID  *big.Int `abi:"requestId"`
	UpdateType uint8    `abi:"updateType"`
	Status     bool     `abi:"status"`
}

type abiCancel struct {
	L2RequestID           *big.Int `abi:"l2RequestId"`
	LastProcessedOnSource *big.Int `abi:"lastProcessedOnSource"`
	LastAcceptedOnSource  *big.Int `abi:"lastAcceptedOnSource"`
	Hash                  [32]byte `abi:"hash"`
}

type abiL2Withdrawal struct {
	RequestID           abiRequestID   `abi:"requestId"`
	WithdrawalRecipient common.Address `abi:"withdrawalRecipient"`
	TokenAddress        common.Address `abi:"tokenAddress"`
	Amount              *big.Int       `abi:"amount"`
}

type abiL2Update struct {
	Results []abiRequestResult `abi:"results"`
	Cancels []abiCancel        `abi:"cancels"`
}

// Encode returns the ABI encoding of the update. The chain is not part of the encoding.
func (u L1Update) Encode() ([]byte, error) {
	return l1UpdateArgs.Pack(u.toABI())
}

// Hash returns the keccak256 of the ABI encoded update
func (u L1Update) Hash() (common.Hash, error) {
	encoded, err := u.Encode()
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(encoded), nil
}

// DecodeL1Update parses an ABI encoded update read from the given chain
func DecodeL1Update(chain uint32, data []byte) (update L1Update, err error) {
	values, err := l1UpdateArgs.Unpack(data)
	if err != nil {
		return L1Update{}, fmt.Errorf("%w: %w", ErrInvalidUpdate, err)
	}
	if len(values) != 1 {
		return L1Update{}, fmt.Errorf("%w: unexpected number of abi values %d", ErrInvalidUpdate, len(values))
	}
	defer func() {
		// ConvertType panics on a layout mismatch
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidUpdate, r)
		}
	}()
	raw := *abi.ConvertType(values[0], new(abiL1Update)).(*abiL1Update)
	return fromABI(chain, raw)
}

func (u L1Update) toABI() abiL1Update {
	out := abiL1Update{
		LastProcessedRequestOnL1: new(big.Int).SetUint64(u.LastProcessedRequestOnL1),
		LastAcceptedRequestOnL1:  new(big.Int).SetUint64(u.LastAcceptedRequestOnL1),
		Order:                    make([]uint8, len(u.Order)),
		PendingDeposits:          make([]abiDeposit, len(u.PendingDeposits)),
		PendingWithdrawals:       make([]abiWithdrawal, len(u.PendingWithdrawals)),
		PendingCancelResolutions: make([]abiCancelResolution, len(u.PendingCancelResolutions)),
		PendingL2UpdatesToRemove: make([]abiL2UpdatesToRemove, len(u.PendingL2UpdatesToRemove)),
	}
	for i, o := range u.Order {
		out.Order[i] = uint8(o)
	}
	for i, d := range u.PendingDeposits {
		out.PendingDeposits[i] = abiDeposit{
			RequestID:        requestIDToABI(d.RequestID),
			DepositRecipient: d.DepositRecipient,
			TokenAddress:     d.TokenAddress,
			Amount:           orZero(d.Amount),
			TimeStamp:        orZero(d.TimeStamp),
		}
	}
	for i, w := range u.PendingWithdrawals {
		out.PendingWithdrawals[i] = abiWithdrawal{
			RequestID:           requestIDToABI(w.RequestID),
			WithdrawalRecipient: w.WithdrawalRecipient,
			TokenAddress:        w.TokenAddress,
			Amount:              orZero(w.Amount),
			TimeStamp:           orZero(w.TimeStamp),
		}
	}
	for i, c := range u.PendingCancelResolutions {
		out.PendingCancelResolutions[i] = abiCancelResolution{
			RequestID:       requestIDToABI(c.RequestID),
			L2RequestID:     new(big.Int).SetUint64(c.L2RequestID),
			CancelJustified: c.CancelJustified,
			TimeStamp:       orZero(c.TimeStamp),
		}
	}
	for i, r := range u.PendingL2UpdatesToRemove {
		ids := make([]*big.Int, len(r.L2UpdatesToRemove))
		for j, id := range r.L2UpdatesToRemove {
			ids[j] = new(big.Int).SetUint64(id)
		}
		out.PendingL2UpdatesToRemove[i] = abiL2UpdatesToRemove{
			RequestID:         requestIDToABI(r.RequestID),
			L2UpdatesToRemove: ids,
			TimeStamp:         orZero(r.TimeStamp),
		}
	}
	return out
}

func fromABI(chain uint32, raw abiL1Update) (L1Update, error) {
	lastProcessed, err := toUint64(raw.LastProcessedRequestOnL1)
	if err != nil {
		return L1Update{}, err
	}
	lastAccepted, err := toUint64(raw.LastAcceptedRequestOnL1)
	if err != nil {
		return L1Update{}, err
	}
	u := L1Update{
		Chain:                    chain,
		LastProcessedRequestOnL1: lastProcessed,
		LastAcceptedRequestOnL1:  lastAccepted,
		Order:                    make([]UpdateType, len(raw.Order)),
	}
	for i, o := range raw.Order {
		u.Order[i] = UpdateType(o)
	}
	for _, d := range raw.PendingDeposits {
		rid, err := requestIDFromABI(d.RequestID)
		if err != nil {
			return L1Update{}, err
		}
		u.PendingDeposits = append(u.PendingDeposits, Deposit{
			RequestID:        rid,
			DepositRecipient: d.DepositRecipient,
			TokenAddress:     d.TokenAddress,
			Amount:           d.Amount,
			TimeStamp:        d.TimeStamp,
		})
	}
	for _, w := range raw.PendingWithdrawals {
		rid, err := requestIDFromABI(w.RequestID)
		if err != nil {
			return L1Update{}, err
		}
		u.PendingWithdrawals = append(u.PendingWithdrawals, Withdrawal{
			RequestID:           rid,
			WithdrawalRecipient: w.WithdrawalRecipient,
			TokenAddress:        w.TokenAddress,
			Amount:              w.Amount,
			TimeStamp:           w.TimeStamp,
		})
	}
	for _, c := range raw.PendingCancelResolutions {
		rid, err := requestIDFromABI(c.RequestID)
		if err != nil {
			return L1Update{}, err
		}
		l2ID, err := toUint64(c.L2RequestID)
		if err != nil {
			return L1Update{}, err
		}
		u.PendingCancelResolutions = append(u.PendingCancelResolutions, CancelResolution{
			RequestID:       rid,
			L2RequestID:     l2ID,
			CancelJustified: c.CancelJustified,
			TimeStamp:       c.TimeStamp,
		})
	}
	for _, r := range raw.PendingL2UpdatesToRemove {
		rid, err := requestIDFromABI(r.RequestID)
		if err != nil {
			return L1Update{}, err
		}
		ids := make([]uint64, len(r.L2UpdatesToRemove))
		for j, id := range r.L2UpdatesToRemove {
			if ids[j], err = toUint64(id); err != nil {
				return L1Update{}, err
			}
		}
		u.PendingL2UpdatesToRemove = append(u.PendingL2UpdatesToRemove, L2UpdatesToRemove{
			RequestID:         rid,
			L2UpdatesToRemove: ids,
			TimeStamp:         r.TimeStamp,
		})
	}
	return u, nil
}

// RequestResult is the recorded outcome of a processed L1 request
type RequestResult struct {
	RequestID  uint64     `json:"requestId"`
	UpdateType UpdateType `json:"updateType"`
	Status     bool       `json:"status"`
}

// Cancel is an open dispute over an update removed from the dispute queue
type Cancel struct {
	L2RequestID           uint64      `json:"l2RequestId"`
	LastProcessedOnSource uint64      `json:"lastProcessedOnSource"`
	LastAcceptedOnSource  uint64      `json:"lastAcceptedOnSource"`
	Hash                  common.Hash `json:"hash"`
}

// L2Update is the outbound summary relayed back to L1
type L2Update struct {
	Results []RequestResult `json:"results"`
	Cancels []Cancel        `json:"cancels"`
}

// Encode returns the ABI encoding of the L2 update
func (u L2Update) Encode() ([]byte, error) {
	raw := abiL2Update{
		Results: make([]abiRequestResult, len(u.Results)),
		Cancels: make([]abiCancel, len(u.Cancels)),
	}
	for i, r := range u.Results {
		raw.Results[i] = abiRequestResult{
			RequestID:  new(big.Int).SetUint64(r.RequestID),
			UpdateType: uint8(r.UpdateType),
			Status:     r.Status,
		}
	}
	for i, c := range u.Cancels {
		raw.Cancels[i] = c.toABI()
	}
	return l2UpdateArgs.Pack(raw)
}

func (c Cancel) toABI() abiCancel {
	return abiCancel{
		L2RequestID:           new(big.Int).SetUint64(c.L2RequestID),
		LastProcessedOnSource: new(big.Int).SetUint64(c.LastProcessedOnSource),
		LastAcceptedOnSource:  new(big.Int).SetUint64(c.LastAcceptedOnSource),
		Hash:                  c.Hash,
	}
}

// Encode returns the ABI encoding of the cancel on its own, as stored in the L2 request log
func (c Cancel) Encode() ([]byte, error) {
	return cancelArgs.Pack(c.toABI())
}

// L2Withdrawal is a withdrawal started on L2 and claimed on L1 with a merkle proof
type L2Withdrawal struct {
	RequestID           RequestID      `json:"requestId"`
	WithdrawalRecipient common.Address `json:"withdrawalRecipient"`
	TokenAddress        common.Address `json:"tokenAddress"`
	Amount              *big.Int       `json:"amount"`
}

// Encode returns the ABI encoding of the withdrawal
func (w L2Withdrawal) Encode() ([]byte, error) {
	return l2WithdrawalArgs.Pack(abiL2Withdrawal{
		RequestID:           requestIDToABI(w.RequestID),
		WithdrawalRecipient: w.WithdrawalRecipient,
		TokenAddress:        w.TokenAddress,
		Amount:              orZero(w.Amount),
	})
}

// DecodeL2Update parses an ABI encoded L2 update, as done by the L1 verifier
func DecodeL2Update(data []byte) (update L2Update, err error) {
	values, err := l2UpdateArgs.Unpack(data)
	if err != nil {
		return L2Update{}, err
	}
	if len(values) != 1 {
		return L2Update{}, fmt.Errorf("unexpected number of abi values %d", len(values))
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid l2 update: %v", r)
		}
	}()
	raw := *abi.ConvertType(values[0], new(abiL2Update)).(*abiL2Update)
	for _, r := range raw.Results {
		id, err := toUint64(r.RequestID)
		if err != nil {
			return L2Update{}, err
		}
		update.Results = append(update.Results, RequestResult{
			RequestID:  id,
			UpdateType: UpdateType(r.UpdateType),
			Status:     r.Status,
		})
	}
	for _, c := range raw.Cancels {
		cancel := Cancel{Hash: c.Hash}
		if cancel.L2RequestID, err = toUint64(c.L2RequestID); err != nil {
			return L2Update{}, err
		}
		if cancel.LastProcessedOnSource, err = toUint64(c.LastProcessedOnSource); err != nil {
			return L2Update{}, err
		}
		if cancel.LastAcceptedOnSource, err = toUint64(c.LastAcceptedOnSource); err != nil {
			return L2Update{}, err
		}
		update.Cancels = append(update.Cancels, cancel)
	}
	return update, nil
}

func requestIDToABI(r RequestID) abiRequestID {
	return abiRequestID{Origin: uint8(r.Origin), ID: new(big.Int).SetUint64(r.ID)}
}

func requestIDFromABI(r abiRequestID) (RequestID, error) {
	id, err := toUint64(r.ID)
	if err != nil {
		return RequestID{}, err
	}
	return RequestID{Origin: Origin(r.Origin), ID: id}, nil
}

func toUint64(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, nil
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("%w: %s does not fit in 64 bits", ErrWrongRequestID, v)
	}
	return v.Uint64(), nil
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
