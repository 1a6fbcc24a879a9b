package messages

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/0xPolygon/rolldown/common"
)

var (
	ErrEmptyUpdate     = errors.New("empty update")
	ErrTooManyRequests = errors.New("too many requests in a single update")
	ErrInvalidUpdate   = errors.New("invalid update")
	ErrWrongRequestID  = errors.New("wrong request id")
)

// Validate checks the shape of the update: size bounds, request origins, per kind
// ordering and that the declared order matches the requests actually present.
// It does not look at any state.
func (u L1Update) Validate(maxRequests int) error {
	total := u.Len()
	if total == 0 {
		return ErrEmptyUpdate
	}
	if total > maxRequests {
		return fmt.Errorf("%w: %d requests, max %d", ErrTooManyRequests, total, maxRequests)
	}
	if len(u.Order) != total {
		return fmt.Errorf("%w: order declares %d requests but update carries %d",
			ErrInvalidUpdate, len(u.Order), total)
	}

	declared := map[UpdateType]int{}
	for _, kind := range u.Order {
		if !kind.isRequestKind() {
			return fmt.Errorf("%w: %s can not be part of an L1 update", ErrInvalidUpdate, kind)
		}
		declared[kind]++
	}
	actual := map[UpdateType]int{
		UpdateTypeDeposit:          len(u.PendingDeposits),
		UpdateTypeWithdrawal:       len(u.PendingWithdrawals),
		UpdateTypeCancelResolution: len(u.PendingCancelResolutions),
		UpdateTypeIndexUpdate:      len(u.PendingL2UpdatesToRemove),
	}
	for kind, count := range actual {
		if declared[kind] != count {
			return fmt.Errorf("%w: order declares %d %s requests but update carries %d",
				ErrInvalidUpdate, declared[kind], kind, count)
		}
	}

	if err := checkKind(u.PendingDeposits, func(d Deposit) RequestID { return d.RequestID }); err != nil {
		return fmt.Errorf("%w: deposits: %w", ErrInvalidUpdate, err)
	}
	if err := checkKind(u.PendingWithdrawals, func(w Withdrawal) RequestID { return w.RequestID }); err != nil {
		return fmt.Errorf("%w: withdrawals: %w", ErrInvalidUpdate, err)
	}
	if err := checkKind(u.PendingCancelResolutions,
		func(c CancelResolution) RequestID { return c.RequestID }); err != nil {
		return fmt.Errorf("%w: cancel resolutions: %w", ErrInvalidUpdate, err)
	}
	if err := checkKind(u.PendingL2UpdatesToRemove,
		func(r L2UpdatesToRemove) RequestID { return r.RequestID }); err != nil {
		return fmt.Errorf("%w: l2 updates to remove: %w", ErrInvalidUpdate, err)
	}

	if err := u.checkValues(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUpdate, err)
	}

	requests := u.Requests()
	lowest := requests[0].ID().ID
	if lowest == 0 {
		return fmt.Errorf("%w: request ids start at 1", ErrWrongRequestID)
	}
	for i, request := range requests {
		expectedID, err := common.SafeAddUint64(lowest, uint64(i))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWrongRequestID, err)
		}
		if request.ID().ID != expectedID {
			return fmt.Errorf("%w: expected request id %d, found %d", ErrInvalidUpdate, expectedID, request.ID().ID)
		}
		if request.Type != u.Order[i] {
			return fmt.Errorf("%w: request %d is %s but order declares %s",
				ErrInvalidUpdate, expectedID, request.Type, u.Order[i])
		}
	}
	return nil
}

// ValidateIDs checks that the update continues the sequence of already processed
// requests: it must not leave a gap and must carry at least one new request.
func (u L1Update) ValidateIDs(lastProcessed uint64) error {
	r, ok := u.Range()
	if !ok {
		return ErrEmptyUpdate
	}
	if r.Start == 0 {
		return fmt.Errorf("%w: request ids start at 1", ErrWrongRequestID)
	}
	if r.Start-1 > lastProcessed {
		return fmt.Errorf("%w: first request %d leaves a gap after last processed %d",
			ErrWrongRequestID, r.Start, lastProcessed)
	}
	if r.End <= lastProcessed {
		return fmt.Errorf("%w: every request up to %d was already processed (last processed %d)",
			ErrWrongRequestID, r.End, lastProcessed)
	}
	return nil
}

// checkValues rejects missing or negative amounts and timestamps. Amounts wider than an
// L2 balance are left to fail when the request is applied.
func (u L1Update) checkValues() error {
	for _, d := range u.PendingDeposits {
		if err := checkUint256("amount", d.Amount); err != nil {
			return fmt.Errorf("deposit %d: %w", d.RequestID.ID, err)
		}
		if err := checkUint256("timestamp", d.TimeStamp); err != nil {
			return fmt.Errorf("deposit %d: %w", d.RequestID.ID, err)
		}
	}
	for _, w := range u.PendingWithdrawals {
		if err := checkUint256("amount", w.Amount); err != nil {
			return fmt.Errorf("withdrawal %d: %w", w.RequestID.ID, err)
		}
		if err := checkUint256("timestamp", w.TimeStamp); err != nil {
			return fmt.Errorf("withdrawal %d: %w", w.RequestID.ID, err)
		}
	}
	for _, c := range u.PendingCancelResolutions {
		if err := checkUint256("timestamp", c.TimeStamp); err != nil {
			return fmt.Errorf("cancel resolution %d: %w", c.RequestID.ID, err)
		}
	}
	for _, r := range u.PendingL2UpdatesToRemove {
		if err := checkUint256("timestamp", r.TimeStamp); err != nil {
			return fmt.Errorf("l2 updates to remove %d: %w", r.RequestID.ID, err)
		}
	}
	return nil
}

func checkUint256(field string, v *big.Int) error {
	switch {
	case v == nil:
		return fmt.Errorf("missing %s", field)
	case v.Sign() < 0:
		return fmt.Errorf("negative %s %s", field, v)
	case v.BitLen() > 256:
		return fmt.Errorf("%s %s does not fit in uint256", field, v)
	}
	return nil
}

func checkKind[T any](items []T, id func(T) RequestID) error {
	var previous uint64
	for i, item := range items {
		rid := id(item)
		if rid.Origin != OriginL1 {
			return fmt.Errorf("request %s does not originate on L1", rid)
		}
		if i > 0 && rid.ID <= previous {
			return fmt.Errorf("request ids are not strictly increasing: %d after %d", rid.ID, previous)
		}
		previous = rid.ID
	}
	return nil
}
