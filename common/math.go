package common

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/holiman/uint256"
)

// MaxAmountBits is the width of every balance and stake amount
const MaxAmountBits = 128

var (
	// ErrMathOverflow is returned when a checked operation would overflow or underflow
	ErrMathOverflow = errors.New("math overflow")
	// ErrBalanceOverflow is returned when an amount does not fit in MaxAmountBits
	ErrBalanceOverflow = errors.New("balance overflow")
	// ErrInvalidAmount is returned when a required amount is missing or negative
	ErrInvalidAmount = errors.New("invalid amount")
)

// SafeAddUint64 returns a + b or ErrMathOverflow
func SafeAddUint64(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrMathOverflow
	}
	return a + b, nil
}

// SafeSubUint64 returns a - b or ErrMathOverflow when b > a
func SafeSubUint64(a, b uint64) (uint64, error) {
	if b > a {
		return 0, ErrMathOverflow
	}
	return a - b, nil
}

// SaturatingSubUint64 returns a - b, or 0 when b > a
func SaturatingSubUint64(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// CheckAmount fails unless v is set, not negative and fits in MaxAmountBits
func CheckAmount(v *big.Int) error {
	if v == nil {
		return fmt.Errorf("%w: missing", ErrInvalidAmount)
	}
	if v.Sign() < 0 {
		return fmt.Errorf("%w: %s is negative", ErrInvalidAmount, v)
	}
	if v.BitLen() > MaxAmountBits {
		return ErrBalanceOverflow
	}
	return nil
}

// ToAmount converts a big.Int into a checked amount. Nil is read as zero.
func ToAmount(v *big.Int) (*uint256.Int, error) {
	if v == nil {
		return new(uint256.Int), nil
	}
	if v.Sign() < 0 || v.BitLen() > MaxAmountBits {
		return nil, ErrBalanceOverflow
	}
	amount, overflow := uint256.FromBig(v)
	if overflow {
		return nil, ErrBalanceOverflow
	}
	return amount, nil
}

// AddAmounts returns a + b, failing when the result does not fit in MaxAmountBits
func AddAmounts(a, b *big.Int) (*big.Int, error) {
	x, err := ToAmount(a)
	if err != nil {
		return nil, err
	}
	y, err := ToAmount(b)
	if err != nil {
		return nil, err
	}
	sum, overflow := new(uint256.Int).AddOverflow(x, y)
	if overflow || sum.BitLen() > MaxAmountBits {
		return nil, ErrMathOverflow
	}
	return sum.ToBig(), nil
}

// SubAmounts returns a - b, failing when b > a
func SubAmounts(a, b *big.Int) (*big.Int, error) {
	x, err := ToAmount(a)
	if err != nil {
		return nil, err
	}
	y, err := ToAmount(b)
	if err != nil {
		return nil, err
	}
	diff, underflow := new(uint256.Int).SubOverflow(x, y)
	if underflow {
		return nil, ErrMathOverflow
	}
	return diff.ToBig(), nil
}

// MinAmount returns the smallest of a and b, nil is read as zero
func MinAmount(a, b *big.Int) *big.Int {
	if a == nil || b == nil {
		return new(big.Int)
	}
	if a.Cmp(b) <= 0 {
		return new(big.Int).Set(a)
	}
	return new(big.Int).Set(b)
}

// PercentOf returns amount * percent / 100 rounded down
func PercentOf(amount *big.Int, percent uint8) (*big.Int, error) {
	x, err := ToAmount(amount)
	if err != nil {
		return nil, err
	}
	const hundred = 100
	res := new(uint256.Int).Mul(x, uint256.NewInt(uint64(percent)))
	res.Div(res, uint256.NewInt(hundred))
	return res.ToBig(), nil
}

// IsZeroAmount reports whether v is nil or zero
func IsZeroAmount(v *big.Int) bool {
	return v == nil || v.Sign() == 0
}
