package sequencerstaking

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func seq(i int) common.Address {
	return common.BigToAddress(big.NewInt(int64(i + 100)))
}

func seqs(idxs ...int) []common.Address {
	res := make([]common.Address, 0, len(idxs))
	for _, i := range idxs {
		res = append(res, seq(i))
	}
	return res
}

func seqPtr(i int) *common.Address {
	s := seq(i)
	return &s
}

func fullSet() []common.Address {
	return seqs(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)
}

func TestRotationAdvance(t *testing.T) {
	tests := []struct {
		name             string
		set              []common.Address
		next             uint32
		expectedSelected *common.Address
		expectedNext     uint32
	}{
		{name: "in range", set: fullSet(), next: 6, expectedSelected: seqPtr(6), expectedNext: 7},
		{name: "pointer at the end wraps", set: fullSet(), next: 12, expectedSelected: seqPtr(0), expectedNext: 1},
		{name: "pointer past the end wraps", set: fullSet(), next: 13, expectedSelected: seqPtr(0), expectedNext: 1},
		{name: "empty set", set: nil, next: 6, expectedSelected: nil, expectedNext: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Rotation{NextIndex: tt.next, Selected: seqPtr(5)}
			r.advance(tt.set)
			require.Equal(t, tt.expectedSelected, r.Selected)
			require.Equal(t, tt.expectedNext, r.NextIndex)
		})
	}
}

func TestRotationRemove(t *testing.T) {
	tests := []struct {
		name              string
		next              uint32
		removed           []common.Address
		expectedSelected  *common.Address
		expectedNext      uint32
		expectedRemaining []common.Address
	}{
		{
			name:              "several before and after the pointer",
			next:              6,
			removed:           seqs(1, 4, 5, 6, 8, 11),
			expectedSelected:  nil,
			expectedNext:      3,
			expectedRemaining: seqs(0, 2, 3, 7, 9, 10),
		},
		{
			name:              "selected removed at the pointer",
			next:              4,
			removed:           seqs(4),
			expectedSelected:  nil,
			expectedNext:      4,
			expectedRemaining: seqs(0, 1, 2, 3, 5, 6, 7, 8, 9, 10, 11),
		},
		{
			name:              "selected kept",
			next:              6,
			removed:           seqs(2, 3, 5, 8, 11),
			expectedSelected:  seqPtr(4),
			expectedNext:      3,
			expectedRemaining: seqs(0, 1, 4, 6, 7, 9, 10),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Rotation{NextIndex: tt.next, Selected: seqPtr(4)}
			removed := map[common.Address]struct{}{}
			for _, s := range tt.removed {
				removed[s] = struct{}{}
			}
			remaining := r.remove(fullSet(), removed)
			require.Equal(t, tt.expectedSelected, r.Selected)
			require.Equal(t, tt.expectedNext, r.NextIndex)
			require.Equal(t, tt.expectedRemaining, remaining)
		})
	}
}

func TestRotationVisitsEveryRemainingMember(t *testing.T) {
	for removedIdx := 0; removedIdx < 5; removedIdx++ {
		for start := uint32(0); start <= 5; start++ {
			set := seqs(0, 1, 2, 3, 4)
			r := Rotation{NextIndex: start}
			r.advance(set)
			remaining := r.remove(set, map[common.Address]struct{}{seq(removedIdx): {}})

			seen := map[common.Address]int{}
			for i := 0; i < len(remaining); i++ {
				r.advance(remaining)
				require.NotNil(t, r.Selected)
				require.Contains(t, remaining, *r.Selected)
				seen[*r.Selected]++
			}
			require.Len(t, seen, len(remaining), "removed %d, start %d", removedIdx, start)
		}
	}
}
