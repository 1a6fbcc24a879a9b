package messages

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// Origin tells on which chain a request id was assigned
type Origin uint8

const (
	OriginL1 Origin = iota
	OriginL2
)

func (o Origin) String() string {
	switch o {
	case OriginL1:
		return "L1"
	case OriginL2:
		return "L2"
	default:
		return fmt.Sprintf("Origin(%d)", uint8(o))
	}
}

// UpdateType identifies the kind of a request or of a recorded outcome
type UpdateType uint8

const (
	UpdateTypeDeposit UpdateType = iota
	UpdateTypeWithdrawal
	UpdateTypeIndexUpdate
	UpdateTypeCancel
	UpdateTypeCancelResolution
)

func (u UpdateType) String() string {
	switch u {
	case UpdateTypeDeposit:
		return "DEPOSIT"
	case UpdateTypeWithdrawal:
		return "WITHDRAWAL"
	case UpdateTypeIndexUpdate:
		return "INDEX_UPDATE"
	case UpdateTypeCancel:
		return "CANCEL"
	case UpdateTypeCancelResolution:
		return "CANCEL_RESOLUTION"
	default:
		return fmt.Sprintf("UpdateType(%d)", uint8(u))
	}
}

// isRequestKind reports whether u can appear in the order of an L1Update
func (u UpdateType) isRequestKind() bool {
	switch u {
	case UpdateTypeDeposit, UpdateTypeWithdrawal, UpdateTypeIndexUpdate, UpdateTypeCancelResolution:
		return true
	default:
		return false
	}
}

type RequestID struct {
	Origin Origin `json:"origin"`
	ID     uint64 `json:"id"`
}

func (r RequestID) String() string {
	return fmt.Sprintf("%s:%d", r.Origin, r.ID)
}

// Deposit credits an L1 asset to an L2 account
type Deposit struct {
	RequestID        RequestID      `json:"requestId"`
	DepositRecipient common.Address `json:"depositRecipient"`
	TokenAddress     common.Address `json:"tokenAddress"`
	Amount           *big.Int       `json:"amount"`
	TimeStamp        *big.Int       `json:"timeStamp"`
}

// Withdrawal debits an L1 asset from an L2 account
type Withdrawal struct {
	RequestID           RequestID      `json:"requestId"`
	WithdrawalRecipient common.Address `json:"withdrawalRecipient"`
	TokenAddress        common.Address `json:"tokenAddress"`
	Amount              *big.Int       `json:"amount"`
	TimeStamp           *big.Int       `json:"timeStamp"`
}

// CancelResolution adjudicates the open cancel identified by L2RequestID
type CancelResolution struct {
	RequestID       RequestID `json:"requestId"`
	L2RequestID     uint64    `json:"l2RequestId"`
	CancelJustified bool      `json:"cancelJustified"`
	TimeStamp       *big.Int  `json:"timeStamp"`
}

// L2UpdatesToRemove asks to drop already relayed outcomes from the pending updates
type L2UpdatesToRemove struct {
	RequestID         RequestID `json:"requestId"`
	L2UpdatesToRemove []uint64  `json:"l2UpdatesToRemove"`
	TimeStamp         *big.Int  `json:"timeStamp"`
}

// L1Update is a batch of requests read from L1 by a sequencer
type L1Update struct {
	Chain                    uint32              `json:"chain"`
	LastProcessedRequestOnL1 uint64              `json:"lastProcessedRequestOnL1"`
	LastAcceptedRequestOnL1  uint64              `json:"lastAcceptedRequestOnL1"`
	Order                    []UpdateType        `json:"order"`
	PendingDeposits          []Deposit           `json:"pendingDeposits"`
	PendingWithdrawals       []Withdrawal        `json:"pendingWithdrawals"`
	PendingCancelResolutions []CancelResolution  `json:"pendingCancelResolutions"`
	PendingL2UpdatesToRemove []L2UpdatesToRemove `json:"pendingL2UpdatesToRemove"`
}

// Range is the inclusive interval of request ids carried by an update
type Range struct {
	Start uint64 `json:"start"`
	End   uint64 `json:"end"`
}

// Request is one entry of an L1Update. Exactly one of the pointers is set, matching Type.
type Request struct {
	Type             UpdateType
	Deposit          *Deposit
	Withdrawal       *Withdrawal
	CancelResolution *CancelResolution
	IndexRemoval     *L2UpdatesToRemove
}

func (r Request) ID() RequestID {
	switch r.Type {
	case UpdateTypeDeposit:
		return r.Deposit.RequestID
	case UpdateTypeWithdrawal:
		return r.Withdrawal.RequestID
	case UpdateTypeCancelResolution:
		return r.CancelResolution.RequestID
	case UpdateTypeIndexUpdate:
		return r.IndexRemoval.RequestID
	default:
		return RequestID{}
	}
}

// Len returns the number of requests in the update
func (u L1Update) Len() int {
	return len(u.PendingDeposits) + len(u.PendingWithdrawals) +
		len(u.PendingCancelResolutions) + len(u.PendingL2UpdatesToRemove)
}

// Requests returns every request of the update sorted by ascending id
func (u L1Update) Requests() []Request {
	requests := make([]Request, 0, u.Len())
	for i := range u.PendingDeposits {
		requests = append(requests, Request{Type: UpdateTypeDeposit, Deposit: &u.PendingDeposits[i]})
	}
	for i := range u.PendingWithdrawals {
		requests = append(requests, Request{Type: UpdateTypeWithdrawal, Withdrawal: &u.PendingWithdrawals[i]})
	}
	for i := range u.PendingCancelResolutions {
		requests = append(requests, Request{
			Type:             UpdateTypeCancelResolution,
			CancelResolution: &u.PendingCancelResolutions[i],
		})
	}
	for i := range u.PendingL2UpdatesToRemove {
		requests = append(requests, Request{Type: UpdateTypeIndexUpdate, IndexRemoval: &u.PendingL2UpdatesToRemove[i]})
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].ID().ID < requests[j].ID().ID
	})
	return requests
}

// Range returns the lowest and highest request id of the update, false if it is empty
func (u L1Update) Range() (Range, bool) {
	requests := u.Requests()
	if len(requests) == 0 {
		return Range{}, false
	}
	return Range{
		Start: requests[0].ID().ID,
		End:   requests[len(requests)-1].ID().ID,
	}, true
}

// L1Asset identifies a token contract on a source chain
type L1Asset struct {
	Chain   uint32         `json:"chain"`
	Address common.Address `json:"address"`
}

func (a L1Asset) String() string {
	return fmt.Sprintf("%d:%s", a.Chain, a.Address.Hex())
}
