package tree

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func leaves(n int) []common.Hash {
	result := make([]common.Hash, n)
	for i := range result {
		result[i] = crypto.Keccak256Hash([]byte{byte(i)})
	}
	return result
}

func pair(left, right common.Hash) common.Hash {
	return crypto.Keccak256Hash(left[:], right[:])
}

func TestRoot(t *testing.T) {
	l := leaves(5)
	tests := []struct {
		name     string
		leaves   []common.Hash
		expected common.Hash
	}{
		{name: "single leaf", leaves: l[:1], expected: l[0]},
		{name: "two leaves", leaves: l[:2], expected: pair(l[0], l[1])},
		{name: "odd leaf is promoted", leaves: l[:3], expected: pair(pair(l[0], l[1]), l[2])},
		{name: "four leaves", leaves: l[:4], expected: pair(pair(l[0], l[1]), pair(l[2], l[3]))},
		{
			name:     "promoted twice",
			leaves:   l[:5],
			expected: pair(pair(pair(l[0], l[1]), pair(l[2], l[3])), l[4]),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := New(tt.leaves)
			require.NoError(t, err)
			require.Equal(t, tt.expected, tr.Root())
			require.Equal(t, len(tt.leaves), tr.Len())
		})
	}

	_, err := New(nil)
	require.ErrorIs(t, err, ErrEmptyTree)
}

func TestGetProof(t *testing.T) {
	l := leaves(5)
	tr, err := New(l)
	require.NoError(t, err)

	proof, err := tr.GetProof(2)
	require.NoError(t, err)
	require.Equal(t, Proof{l[3], pair(l[0], l[1]), l[4]}, proof)

	// the last leaf has no sibling until the top level
	proof, err = tr.GetProof(4)
	require.NoError(t, err)
	require.Equal(t, Proof{pair(pair(l[0], l[1]), pair(l[2], l[3]))}, proof)

	single, err := New(l[:1])
	require.NoError(t, err)
	proof, err = single.GetProof(0)
	require.NoError(t, err)
	require.Empty(t, proof)

	_, err = tr.GetProof(5)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = tr.GetProof(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestVerify(t *testing.T) {
	for n := 1; n <= 9; n++ {
		l := leaves(n)
		tr, err := New(l)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			t.Run(fmt.Sprintf("%d of %d", i, n), func(t *testing.T) {
				proof, err := tr.GetProof(i)
				require.NoError(t, err)
				require.True(t, Verify(tr.Root(), l[i], i, n, proof))

				require.False(t, Verify(tr.Root(), crypto.Keccak256Hash([]byte("other")), i, n, proof))
				if n > 1 {
					require.False(t, Verify(tr.Root(), l[i], (i+1)%n, n, proof))
					require.False(t, Verify(tr.Root(), l[i], i, n, proof[:len(proof)-1]))
				}
				require.False(t, Verify(tr.Root(), l[i], i, n, append(Proof{}, append(proof, l[0])...)))
				require.False(t, Verify(tr.Root(), l[i], n, n, proof))
			})
		}
	}
}
