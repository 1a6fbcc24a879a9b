package sequencerstaking

import (
	"github.com/ethereum/go-ethereum/common"
)

// Rotation is the round robin state of a chain: the member selected to submit updates and
// the position of the active set that will be selected next
type Rotation struct {
	Chain     uint32          `meddler:"chain" json:"chain"`
	NextIndex uint32          `meddler:"next_index" json:"nextIndex"`
	Selected  *common.Address `meddler:"selected,addressptr" json:"selected"`
}

// advance selects the member at NextIndex, wrapping to the first member when the pointer ran
// past the end. An empty set clears the selection.
func (r *Rotation) advance(set []common.Address) {
	if len(set) == 0 {
		r.NextIndex = 0
		r.Selected = nil
		return
	}
	if int(r.NextIndex) >= len(set) {
		r.NextIndex = 0
	}
	selected := set[r.NextIndex]
	r.Selected = &selected
	r.NextIndex++
}

// remove drops the given members from set and moves the pointer left by the number of removed
// members placed before it, so the next selection is the member that would have been selected
// anyway. A removed selected member clears the selection.
func (r *Rotation) remove(set []common.Address, removed map[common.Address]struct{}) []common.Address {
	remaining := make([]common.Address, 0, len(set))
	var shift uint32
	for pos, member := range set {
		if _, ok := removed[member]; ok {
			if uint32(pos) < r.NextIndex {
				shift++
			}
			continue
		}
		remaining = append(remaining, member)
	}
	r.NextIndex -= shift
	if r.Selected != nil {
		if _, ok := removed[*r.Selected]; ok {
			r.Selected = nil
		}
	}
	return remaining
}
