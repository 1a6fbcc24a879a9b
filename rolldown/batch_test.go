package rolldown

import (
	"math/big"
	"testing"

	"github.com/0xPolygon/rolldown/common"
	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/events"
	"github.com/0xPolygon/rolldown/messages"
	"github.com/0xPolygon/rolldown/tree"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

// fund deposits amount of token to recipient through a forced update
func (e *testEnv) fund(t *testing.T, block, id uint64, amount int64) {
	t.Helper()
	require.NoError(t, e.rd.ForceUpdateL2FromL1(e.tx, block, newBatch().deposit(id, amount).build()))
}

// withdrawRequests records n withdrawals of 1 token from recipient
func (e *testEnv) withdrawRequests(t *testing.T, block uint64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := e.rd.Withdraw(e.tx, block, recipient, chain, alice, token, big.NewInt(1))
		require.NoError(t, err)
	}
}

func (e *testEnv) requestHashes(t *testing.T, rng messages.Range) []ethCommon.Hash {
	t.Helper()
	var hashes []ethCommon.Hash
	for id := rng.Start; id <= rng.End; id++ {
		request, err := e.rd.L2Request(e.tx, chain, id)
		require.NoError(t, err)
		hashes = append(hashes, request.Hash)
	}
	return hashes
}

func TestWithdraw(t *testing.T) {
	e := newTestEnv(t)
	e.fund(t, 1, 1, 100)

	id, err := e.rd.Withdraw(e.tx, 2, recipient, chain, alice, token, big.NewInt(40))
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)
	require.Equal(t, big.NewInt(60), e.tokenBalance(t, recipient))

	expected, err := messages.L2Withdrawal{
		RequestID:           messages.RequestID{Origin: messages.OriginL2, ID: 1},
		WithdrawalRecipient: alice,
		TokenAddress:        token,
		Amount:              big.NewInt(40),
	}.Encode()
	require.NoError(t, err)
	request, err := e.rd.L2Request(e.tx, chain, id)
	require.NoError(t, err)
	require.Equal(t, messages.UpdateTypeWithdrawal, request.UpdateType)
	require.Equal(t, expected, []byte(request.Encoded))
	require.Equal(t, crypto.Keccak256Hash(expected), request.Hash)
	require.Equal(t, uint64(2), request.Block)

	created, err := events.GetByName(e.tx, events.WithdrawalRequestCreated, 2, 2)
	require.NoError(t, err)
	require.Len(t, created, 1)
	var payload WithdrawalRequestCreated
	require.NoError(t, created[0].Decode(&payload))
	require.Equal(t, alice, payload.Recipient)
	require.Equal(t, big.NewInt(40), payload.Amount)
	require.Equal(t, request.Hash, payload.Hash)

	// withdrawals never reach the outbound update
	l2Update, err := e.rd.GetL2Update(e.tx, chain)
	require.NoError(t, err)
	require.Len(t, l2Update.Results, 1)
	require.Empty(t, l2Update.Cancels)
}

func TestWithdrawErrors(t *testing.T) {
	e := newTestEnv(t)
	e.fund(t, 1, 1, 100)

	_, err := e.rd.Withdraw(e.tx, 2, recipient, chain, alice, ethCommon.HexToAddress("0x99"), big.NewInt(1))
	require.ErrorIs(t, err, ErrUnknownAsset)

	err = db.WithSavepoint(e.tx, "withdraw", func() error {
		_, err := e.rd.Withdraw(e.tx, 2, recipient, chain, alice, token, big.NewInt(101))
		return err
	})
	require.ErrorIs(t, err, ErrNotEnoughAssets)
	require.Equal(t, big.NewInt(100), e.tokenBalance(t, recipient))

	_, err = e.rd.Withdraw(e.tx, 2, recipient, chain, alice, token, nil)
	require.ErrorIs(t, err, common.ErrInvalidAmount)
	_, err = e.rd.Withdraw(e.tx, 2, recipient, chain, alice, token, big.NewInt(-1))
	require.ErrorIs(t, err, common.ErrInvalidAmount)

	_, err = e.rd.L2Request(e.tx, chain, 1)
	require.ErrorIs(t, err, db.ErrNotFound)
}

func TestCancelsAndWithdrawalsShareL2RequestIDs(t *testing.T) {
	e := newTestEnv(t)
	e.join(t, alice)
	e.join(t, bob)
	e.fund(t, 1, 1, 100)

	id, err := e.rd.Withdraw(e.tx, 2, recipient, chain, alice, token, big.NewInt(10))
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	deadline, err := e.rd.UpdateL2FromL1(e.tx, 3, alice, newBatch().deposit(2, 100).build())
	require.NoError(t, err)
	cancelID, err := e.rd.CancelRequestsFromL1(e.tx, 4, bob, chain, deadline)
	require.NoError(t, err)
	require.Equal(t, uint64(2), cancelID)

	request, err := e.rd.L2Request(e.tx, chain, cancelID)
	require.NoError(t, err)
	require.Equal(t, messages.UpdateTypeCancel, request.UpdateType)
	cancel, err := e.rd.Cancel(e.tx, chain, cancelID)
	require.NoError(t, err)
	encoded, err := cancel.message().Encode()
	require.NoError(t, err)
	require.Equal(t, crypto.Keccak256Hash(encoded), request.Hash)

	id, err = e.rd.Withdraw(e.tx, 5, recipient, chain, alice, token, big.NewInt(10))
	require.NoError(t, err)
	require.Equal(t, uint64(3), id)
}

func TestCreateBatch(t *testing.T) {
	e := newTestEnv(t)
	e.fund(t, 1, 1, 100)
	e.withdrawRequests(t, 2, 5)

	tests := []struct {
		name        string
		rng         messages.Range
		expectedErr error
	}{
		{name: "starts at zero", rng: messages.Range{Start: 0, End: 2}, expectedErr: ErrInvalidRange},
		{name: "inverted", rng: messages.Range{Start: 3, End: 2}, expectedErr: ErrInvalidRange},
		{name: "past the last request", rng: messages.Range{Start: 1, End: 6}, expectedErr: ErrNonExistingRequestID},
		{name: "gap after nothing batched", rng: messages.Range{Start: 2, End: 3}, expectedErr: ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.rd.CreateBatch(e.tx, 3, bob, chain, tt.rng)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}

	batch, err := e.rd.CreateBatch(e.tx, 3, bob, chain, messages.Range{Start: 1, End: 3})
	require.NoError(t, err)
	expectedTree, err := tree.New(e.requestHashes(t, batch.Range()))
	require.NoError(t, err)
	require.Equal(t, &L2RequestsBatch{
		Chain:      chain,
		BatchID:    1,
		Block:      3,
		RangeStart: 1,
		RangeEnd:   3,
		Assignee:   bob,
		Source:     BatchSourceManual,
		Root:       expectedTree.Root(),
	}, batch)

	stored, err := e.rd.L2RequestsBatch(e.tx, chain, 1)
	require.NoError(t, err)
	require.Equal(t, batch, stored)

	_, err = e.rd.CreateBatch(e.tx, 4, bob, chain, messages.Range{Start: 5, End: 5})
	require.ErrorIs(t, err, ErrInvalidRange)
	// overlapping the previous batch is allowed
	second, err := e.rd.CreateBatch(e.tx, 4, bob, chain, messages.Range{Start: 3, End: 5})
	require.NoError(t, err)
	require.Equal(t, uint64(2), second.BatchID)

	last, err := e.rd.LastL2RequestsBatch(e.tx, chain)
	require.NoError(t, err)
	require.Equal(t, second, last)

	created, err := events.GetByName(e.tx, events.TxBatchCreated, 3, 4)
	require.NoError(t, err)
	require.Len(t, created, 2)

	_, err = e.rd.LastL2RequestsBatch(e.tx, chain+1)
	require.ErrorIs(t, err, db.ErrNotFound)
}

func TestMerkleProof(t *testing.T) {
	e := newTestEnv(t)
	e.fund(t, 1, 1, 100)
	e.withdrawRequests(t, 2, 5)
	rng := messages.Range{Start: 1, End: 5}

	root, err := e.rd.MerkleRoot(e.tx, chain, rng)
	require.NoError(t, err)
	expectedTree, err := tree.New(e.requestHashes(t, rng))
	require.NoError(t, err)
	require.Equal(t, expectedTree.Root(), root)

	for id := rng.Start; id <= rng.End; id++ {
		proof, err := e.rd.MerkleProof(e.tx, chain, rng, id)
		require.NoError(t, err)
		ok, err := e.rd.VerifyMerkleProof(e.tx, chain, rng, root, id, proof)
		require.NoError(t, err)
		require.True(t, ok, "request %d", id)

		other := id%5 + 1
		ok, err = e.rd.VerifyMerkleProof(e.tx, chain, rng, root, other, proof)
		require.NoError(t, err)
		require.False(t, ok, "proof of %d used for %d", id, other)
	}

	_, err = e.rd.MerkleProof(e.tx, chain, messages.Range{Start: 1, End: 3}, 4)
	require.ErrorIs(t, err, ErrInvalidRange)
	_, err = e.rd.MerkleRoot(e.tx, chain, messages.Range{Start: 4, End: 6})
	require.ErrorIs(t, err, ErrNonExistingRequestID)

	ok, err := e.rd.VerifyMerkleProof(e.tx, chain, rng, root, 9, tree.Proof{})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAutomaticBatches(t *testing.T) {
	tests := []struct {
		name            string
		requests        int
		block           uint64
		selected        bool
		expectedRange   *messages.Range
		expectedSource  BatchSource
		expectedBatches int
	}{
		{
			name:           "size reached",
			requests:       5,
			block:          3,
			selected:       true,
			expectedRange:  &messages.Range{Start: 1, End: 3},
			expectedSource: BatchSourceAutomaticSizeReached,
		},
		{
			name:           "period reached",
			requests:       2,
			block:          10,
			selected:       true,
			expectedRange:  &messages.Range{Start: 1, End: 2},
			expectedSource: BatchSourcePeriodReached,
		},
		{name: "neither reached", requests: 2, block: 3, selected: true},
		{name: "nothing to batch", block: 10, selected: true},
		{name: "no sequencer selected", requests: 5, block: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnvWithConfig(t, Config{
				DisputePeriodLength:            disputePeriod,
				MaxRequestsPerUpdate:           10,
				MerkleRootAutomaticBatchSize:   3,
				MerkleRootAutomaticBatchPeriod: 10,
			})
			if tt.selected {
				e.join(t, charlie)
				require.NoError(t, e.staking.SelectFirst(e.tx, chain))
			}
			e.fund(t, 1, 1, 100)
			e.withdrawRequests(t, 2, tt.requests)

			require.NoError(t, e.rd.OnInitialize(e.tx, tt.block))
			last, err := e.rd.LastL2RequestsBatch(e.tx, chain)
			if tt.expectedRange == nil {
				require.ErrorIs(t, err, db.ErrNotFound)
				return
			}
			require.NoError(t, err)
			require.Equal(t, *tt.expectedRange, last.Range())
			require.Equal(t, tt.expectedSource, last.Source)
			require.Equal(t, charlie, last.Assignee)
			require.Equal(t, tt.block, last.Block)
			expectedTree, err := tree.New(e.requestHashes(t, last.Range()))
			require.NoError(t, err)
			require.Equal(t, expectedTree.Root(), last.Root)
		})
	}
}

func TestAutomaticBatchesFollowTheLastOne(t *testing.T) {
	e := newTestEnvWithConfig(t, Config{
		DisputePeriodLength:          disputePeriod,
		MaxRequestsPerUpdate:         10,
		MerkleRootAutomaticBatchSize: 2,
	})
	e.join(t, charlie)
	require.NoError(t, e.staking.SelectFirst(e.tx, chain))
	e.fund(t, 1, 1, 100)
	e.withdrawRequests(t, 2, 5)

	for block := uint64(3); block <= 6; block++ {
		require.NoError(t, e.rd.OnInitialize(e.tx, block))
	}
	expected := []messages.Range{{Start: 1, End: 2}, {Start: 3, End: 4}}
	for i, rng := range expected {
		batch, err := e.rd.L2RequestsBatch(e.tx, chain, uint64(i+1))
		require.NoError(t, err)
		require.Equal(t, rng, batch.Range())
		require.Equal(t, uint64(i+3), batch.Block)
	}
	// a single request left is below the size and there is no period
	_, err := e.rd.L2RequestsBatch(e.tx, chain, 3)
	require.ErrorIs(t, err, db.ErrNotFound)
}

func TestMaintenanceModeBlocksRequests(t *testing.T) {
	e := newTestEnv(t)
	e.join(t, alice)
	e.join(t, bob)
	e.fund(t, 1, 1, 100)
	deadline, err := e.rd.UpdateL2FromL1(e.tx, 2, alice, newBatch().deposit(2, 100).build())
	require.NoError(t, err)

	e.maintenance.on = true
	_, err = e.rd.UpdateL2FromL1(e.tx, 3, bob, newBatch().deposit(2, 100).build())
	require.ErrorIs(t, err, ErrBlockedByMaintenanceMode)
	_, err = e.rd.CancelRequestsFromL1(e.tx, 3, bob, chain, deadline)
	require.ErrorIs(t, err, ErrBlockedByMaintenanceMode)
	require.ErrorIs(t, e.rd.ForceCancelRequestsFromL1(e.tx, 3, chain, deadline), ErrBlockedByMaintenanceMode)
	require.ErrorIs(t, e.rd.ForceUpdateL2FromL1(e.tx, 3, newBatch().deposit(2, 100).build()),
		ErrBlockedByMaintenanceMode)
	_, err = e.rd.Withdraw(e.tx, 3, recipient, chain, alice, token, big.NewInt(1))
	require.ErrorIs(t, err, ErrBlockedByMaintenanceMode)
	e.requireRights(t, bob, 1, 1)

	e.maintenance.on = false
	_, err = e.rd.CancelRequestsFromL1(e.tx, 4, bob, chain, deadline)
	require.NoError(t, err)
}
