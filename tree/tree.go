package tree

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

var (
	ErrEmptyTree       = errors.New("tree has no leaves")
	ErrIndexOutOfRange = errors.New("leaf index out of range")
)

// Proof are the sibling hashes needed to rebuild the root from a leaf, lowest level first.
// Levels where the node has no sibling contribute nothing.
type Proof []common.Hash

// Tree is a keccak256 binary merkle tree over a fixed list of leaves. On levels with an odd
// number of nodes the last one is promoted to the next level unchanged.
type Tree struct {
	// layers[0] are the leaves, the last layer holds only the root
	layers [][]common.Hash
}

// New builds the tree of the given leaves
func New(leaves []common.Hash) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}
	current := make([]common.Hash, len(leaves))
	copy(current, leaves)
	t := &Tree{layers: [][]common.Hash{current}}
	for len(current) > 1 {
		next := make([]common.Hash, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			if i+1 == len(current) {
				next = append(next, current[i])
				continue
			}
			next = append(next, hashPair(current[i], current[i+1]))
		}
		t.layers = append(t.layers, next)
		current = next
	}
	return t, nil
}

// Root returns the root hash of the tree
func (t *Tree) Root() common.Hash {
	return t.layers[len(t.layers)-1][0]
}

// Len returns the number of leaves
func (t *Tree) Len() int {
	return len(t.layers[0])
}

// GetProof returns the proof of the leaf at index
func (t *Tree) GetProof(index int) (Proof, error) {
	if index < 0 || index >= t.Len() {
		return nil, fmt.Errorf("%w: %d, tree has %d leaves", ErrIndexOutOfRange, index, t.Len())
	}
	proof := Proof{}
	for _, layer := range t.layers[:len(t.layers)-1] {
		if index%2 == 1 {
			proof = append(proof, layer[index-1])
		} else if index+1 < len(layer) {
			proof = append(proof, layer[index+1])
		}
		index /= 2
	}
	return proof, nil
}

// Verify checks that leaf sits at index of a tree of count leaves with the given root
func Verify(root, leaf common.Hash, index, count int, proof Proof) bool {
	if count <= 0 || index < 0 || index >= count {
		return false
	}
	current := leaf
	used := 0
	for width := count; width > 1; width = (width + 1) / 2 {
		switch {
		case index%2 == 1:
			if used == len(proof) {
				return false
			}
			current = hashPair(proof[used], current)
			used++
		case index+1 < width:
			if used == len(proof) {
				return false
			}
			current = hashPair(current, proof[used])
			used++
		}
		index /= 2
	}
	return used == len(proof) && current == root
}

func hashPair(left, right common.Hash) common.Hash {
	var hash common.Hash
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(left[:])
	hasher.Write(right[:])
	copy(hash[:], hasher.Sum(nil))
	return hash
}
