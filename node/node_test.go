package node

import (
	"context"
	"math/big"
	"path"
	"testing"
	"time"

	"github.com/0xPolygon/rolldown/common"
	"github.com/0xPolygon/rolldown/config/types"
	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/events"
	"github.com/0xPolygon/rolldown/log"
	"github.com/0xPolygon/rolldown/messages"
	"github.com/0xPolygon/rolldown/rights"
	"github.com/0xPolygon/rolldown/rolldown"
	"github.com/0xPolygon/rolldown/sequencerstaking"
	"github.com/0xPolygon/rolldown/tokens"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

const (
	chain         = uint32(1)
	disputePeriod = uint64(3)
)

var (
	admin     = ethCommon.HexToAddress("0xad")
	alice     = ethCommon.HexToAddress("0xa1")
	bob       = ethCommon.HexToAddress("0xb0")
	recipient = ethCommon.HexToAddress("0x5e")
	token     = ethCommon.HexToAddress("0x7070")
)

func testGenesis() Genesis {
	return Genesis{
		Chains: []GenesisChain{
			{Chain: chain, MinimalStake: big.NewInt(1000), SlashFine: big.NewInt(100)},
		},
		Sequencers: []GenesisSequencer{
			{Address: alice, Chain: chain, Stake: big.NewInt(1000)},
			{Address: bob, Chain: chain, Stake: big.NewInt(1000)},
		},
		Balances: []GenesisBalance{
			{Account: alice, Amount: big.NewInt(500)},
		},
	}
}

func newTestNode(t *testing.T, dbPath string) *Node {
	t.Helper()
	if dbPath == "" {
		dbPath = path.Join(t.TempDir(), "node.sqlite")
	}
	n, err := New(log.WithFields("module", "node-test"),
		Config{DBPath: dbPath, BlockTime: types.NewDuration(10 * time.Millisecond), Admin: admin},
		rolldown.Config{DisputePeriodLength: disputePeriod, MaxRequestsPerUpdate: 10},
		sequencerstaking.Config{MaxSequencers: 10, CancellerRewardPercentage: 20, RotationPeriodBlocks: 100},
		testGenesis(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { n.Close() })
	require.NoError(t, n.ApplyGenesis(context.Background()))
	return n
}

func deposit(id, amount uint64) messages.L1Update {
	return messages.L1Update{
		Chain:                   chain,
		LastAcceptedRequestOnL1: id,
		Order:                   []messages.UpdateType{messages.UpdateTypeDeposit},
		PendingDeposits: []messages.Deposit{{
			RequestID:        messages.RequestID{Origin: messages.OriginL1, ID: id},
			DepositRecipient: recipient,
			TokenAddress:     token,
			Amount:           new(big.Int).SetUint64(amount),
			TimeStamp:        big.NewInt(1),
		}},
	}
}

func produce(t *testing.T, n *Node, blocks int) {
	t.Helper()
	for i := 0; i < blocks; i++ {
		_, err := n.ProduceBlock(context.Background())
		require.NoError(t, err)
	}
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(log.WithFields("module", "node-test"),
		Config{DBPath: path.Join(t.TempDir(), "node.sqlite")},
		rolldown.Config{DisputePeriodLength: disputePeriod, MaxRequestsPerUpdate: 10},
		sequencerstaking.Config{MaxSequencers: 10, RotationPeriodBlocks: 100},
		Genesis{},
	)
	require.Error(t, err)
}

func TestGenesis(t *testing.T) {
	ctx := context.Background()
	n := newTestNode(t, "")

	active, err := n.ActiveSequencers(ctx, chain)
	require.NoError(t, err)
	require.Equal(t, []ethCommon.Address{alice, bob}, active)

	selected, err := n.SelectedSequencer(ctx, chain)
	require.NoError(t, err)
	require.NotNil(t, selected)
	require.Equal(t, alice, *selected)

	for _, seq := range active {
		r, err := n.SequencerRights(ctx, chain, seq)
		require.NoError(t, err)
		require.Equal(t, rights.Rights{Chain: chain, Sequencer: seq, ReadRights: 1, CancelRights: 1}, r)
		stake, err := n.SequencerStake(ctx, chain, seq)
		require.NoError(t, err)
		require.Equal(t, big.NewInt(1000), stake)
	}

	b, err := n.Balance(ctx, tokens.NativeAssetID, alice)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(500), b.Free)
	require.Equal(t, big.NewInt(1000), b.Reserved)

	// a second run does not endow twice
	require.NoError(t, n.ApplyGenesis(ctx))
	b, err = n.Balance(ctx, tokens.NativeAssetID, alice)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(500), b.Free)
	require.Equal(t, big.NewInt(1000), b.Reserved)
}

func TestUpdateIsProcessedAtDeadline(t *testing.T) {
	ctx := context.Background()
	n := newTestNode(t, "")

	deadline, err := n.UpdateL2FromL1(ctx, alice, 0, deposit(1, 100))
	require.NoError(t, err)
	require.Equal(t, disputePeriod, deadline)

	r, err := n.SequencerRights(ctx, chain, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(0), r.ReadRights)
	pending, err := n.PendingRequest(ctx, chain, deadline)
	require.NoError(t, err)
	require.Equal(t, alice, pending.Submitter)

	produce(t, n, int(disputePeriod)-1)
	_, err = n.PendingRequest(ctx, chain, deadline)
	require.NoError(t, err)

	produce(t, n, 1)
	block, err := n.BlockNumber(ctx)
	require.NoError(t, err)
	require.Equal(t, deadline, block)
	_, err = n.PendingRequest(ctx, chain, deadline)
	require.ErrorIs(t, err, db.ErrNotFound)

	r, err = n.SequencerRights(ctx, chain, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(1), r.ReadRights)
	b, err := n.Balance(ctx, 1, recipient)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(100), b.Free)

	encoded, err := n.PendingUpdatesEncoded(ctx, chain)
	require.NoError(t, err)
	l2Update, err := messages.DecodeL2Update(encoded)
	require.NoError(t, err)
	require.Equal(t, []messages.RequestResult{
		{RequestID: 1, UpdateType: messages.UpdateTypeDeposit, Status: true},
	}, l2Update.Results)

	evs, err := n.Events(ctx, deadline, deadline)
	require.NoError(t, err)
	require.Len(t, evs, 1)
	require.Equal(t, events.RequestProcessedOnL2, evs[0].Name)
}

func TestCancelThroughNode(t *testing.T) {
	ctx := context.Background()
	n := newTestNode(t, "")

	deadline, err := n.UpdateL2FromL1(ctx, alice, 0, deposit(1, 100))
	require.NoError(t, err)
	produce(t, n, 1)
	l2RequestID, err := n.CancelRequestsFromL1(ctx, bob, 0, chain, deadline)
	require.NoError(t, err)
	require.Equal(t, uint64(1), l2RequestID)

	digest, err := n.PendingUpdatesDigest(ctx, chain)
	require.NoError(t, err)
	require.NotEqual(t, ethCommon.Hash{}, digest)

	produce(t, n, int(disputePeriod))
	b, err := n.Balance(ctx, 1, recipient)
	require.NoError(t, err)
	require.Equal(t, int64(0), b.Free.Int64())
}

func TestNonces(t *testing.T) {
	ctx := context.Background()
	n := newTestNode(t, "")

	_, err := n.UpdateL2FromL1(ctx, alice, 1, deposit(1, 100))
	require.ErrorIs(t, err, ErrInvalidNonce)

	// a failed call does not consume the nonce
	_, err = n.UpdateL2FromL1(ctx, alice, 0, messages.L1Update{Chain: chain})
	require.ErrorIs(t, err, messages.ErrEmptyUpdate)
	nonce, err := n.Nonce(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(0), nonce)

	_, err = n.UpdateL2FromL1(ctx, alice, 0, deposit(1, 100))
	require.NoError(t, err)
	nonce, err = n.Nonce(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(1), nonce)

	_, err = n.UpdateL2FromL1(ctx, alice, 0, deposit(2, 100))
	require.ErrorIs(t, err, ErrInvalidNonce)
}

func TestFailedCallIsRolledBack(t *testing.T) {
	ctx := context.Background()
	n := newTestNode(t, "")

	_, err := n.UpdateL2FromL1(ctx, alice, 0, deposit(1, 100))
	require.NoError(t, err)
	// same block, same chain
	_, err = n.UpdateL2FromL1(ctx, bob, 0, deposit(1, 100))
	require.ErrorIs(t, err, rolldown.ErrMultipleUpdatesInSingleBlock)

	r, err := n.SequencerRights(ctx, chain, bob)
	require.NoError(t, err)
	require.Equal(t, uint64(1), r.ReadRights)
	evs, err := n.Events(ctx, 0, 0)
	require.NoError(t, err)
	for _, e := range evs {
		if e.Name == events.L1ReadStored {
			var payload rolldown.L1ReadStored
			require.NoError(t, e.Decode(&payload))
			require.Equal(t, alice, payload.Sequencer)
		}
	}
}

func TestAdminCalls(t *testing.T) {
	ctx := context.Background()
	n := newTestNode(t, "")

	err := n.ForceUpdateL2FromL1(ctx, alice, 0, deposit(1, 100))
	require.ErrorIs(t, err, ErrNotAdmin)
	err = n.SetSequencerConfiguration(ctx, bob, 0, chain, big.NewInt(1), big.NewInt(1))
	require.ErrorIs(t, err, ErrNotAdmin)

	require.NoError(t, n.ForceUpdateL2FromL1(ctx, admin, 0, deposit(1, 100)))
	b, err := n.Balance(ctx, 1, recipient)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(100), b.Free)

	deadline, err := n.UpdateL2FromL1(ctx, alice, 0, deposit(2, 100))
	require.NoError(t, err)
	require.NoError(t, n.ForceCancelRequestsFromL1(ctx, admin, 1, chain, deadline))
	_, err = n.PendingRequest(ctx, chain, deadline)
	require.ErrorIs(t, err, db.ErrNotFound)

	// raising the minimum removes both sequencers
	require.NoError(t, n.SetSequencerConfiguration(ctx, admin, 2, chain, big.NewInt(2000), big.NewInt(100)))
	active, err := n.ActiveSequencers(ctx, chain)
	require.NoError(t, err)
	require.Empty(t, active)
}

func TestStakingEntryPoints(t *testing.T) {
	ctx := context.Background()
	n := newTestNode(t, "")

	require.NoError(t, n.LeaveActiveSequencers(ctx, bob, 0, chain))
	r, err := n.SequencerRights(ctx, chain, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(0), r.CancelRights)

	require.NoError(t, n.RejoinActiveSequencers(ctx, bob, 1, chain))
	require.NoError(t, n.LeaveActiveSequencers(ctx, bob, 2, chain))
	require.NoError(t, n.Unstake(ctx, bob, 3, chain))
	b, err := n.Balance(ctx, tokens.NativeAssetID, bob)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1000), b.Free)

	require.NoError(t, n.ProvideSequencerStake(ctx, bob, 4, chain, big.NewInt(1000)))
	active, err := n.ActiveSequencers(ctx, chain)
	require.NoError(t, err)
	require.Equal(t, []ethCommon.Address{alice, bob}, active)
}

func TestUpdateL2FromL1Encoded(t *testing.T) {
	ctx := context.Background()
	n := newTestNode(t, "")

	data, err := deposit(1, 100).Encode()
	require.NoError(t, err)
	deadline, err := n.UpdateL2FromL1Encoded(ctx, alice, 0, chain, data)
	require.NoError(t, err)
	pending, err := n.PendingRequest(ctx, chain, deadline)
	require.NoError(t, err)
	require.Equal(t, uint64(1), pending.RangeEnd)

	_, err = n.UpdateL2FromL1Encoded(ctx, alice, 1, chain, []byte{0x01})
	require.Error(t, err)
}

func TestStateSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dbPath := path.Join(t.TempDir(), "node.sqlite")
	n := newTestNode(t, dbPath)
	produce(t, n, 4)
	require.NoError(t, n.Close())

	n = newTestNode(t, dbPath)
	block, err := n.BlockNumber(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(4), block)
	b, err := n.Balance(ctx, tokens.NativeAssetID, alice)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(500), b.Free)
}

func TestStartProducesBlocks(t *testing.T) {
	n := newTestNode(t, "")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- n.Start(ctx) }()

	require.Eventually(t, func() bool {
		block, err := n.BlockNumber(context.Background())
		return err == nil && block >= 2
	}, 5*time.Second, 10*time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("node did not stop")
	}
}

func TestMaintenanceMode(t *testing.T) {
	ctx := context.Background()
	n := newTestNode(t, "")

	require.ErrorIs(t, n.SetMaintenanceMode(ctx, alice, 0, true), ErrNotAdmin)
	require.NoError(t, n.SetMaintenanceMode(ctx, admin, 0, true))
	on, err := n.IsMaintenance(ctx)
	require.NoError(t, err)
	require.True(t, on)

	_, err = n.UpdateL2FromL1(ctx, alice, 0, deposit(1, 100))
	require.ErrorIs(t, err, rolldown.ErrBlockedByMaintenanceMode)
	_, err = n.Withdraw(ctx, alice, 0, chain, recipient, token, big.NewInt(1))
	require.ErrorIs(t, err, rolldown.ErrBlockedByMaintenanceMode)
	require.ErrorIs(t, n.ForceUpdateL2FromL1(ctx, admin, 1, deposit(1, 100)), rolldown.ErrBlockedByMaintenanceMode)
	// staking is not gated
	require.NoError(t, n.LeaveActiveSequencers(ctx, bob, 0, chain))

	evs, err := n.Events(ctx, 0, 0)
	require.NoError(t, err)
	var switched []*events.Event
	for _, e := range evs {
		if e.Name == events.MaintenanceModeSwitched {
			switched = append(switched, e)
		}
	}
	require.Len(t, switched, 1)
	var payload MaintenanceModeSwitched
	require.NoError(t, switched[0].Decode(&payload))
	require.True(t, payload.On)

	require.NoError(t, n.SetMaintenanceMode(ctx, admin, 1, false))
	on, err = n.IsMaintenance(ctx)
	require.NoError(t, err)
	require.False(t, on)
	_, err = n.UpdateL2FromL1(ctx, alice, 0, deposit(1, 100))
	require.NoError(t, err)
}

func TestWithdrawAndBatch(t *testing.T) {
	ctx := context.Background()
	n := newTestNode(t, "")

	require.NoError(t, n.ForceUpdateL2FromL1(ctx, admin, 0, deposit(1, 100)))
	l2RequestID, err := n.Withdraw(ctx, recipient, 0, chain, alice, token, big.NewInt(40))
	require.NoError(t, err)
	require.Equal(t, uint64(1), l2RequestID)
	b, err := n.Balance(ctx, 1, recipient)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(60), b.Free)

	request, err := n.L2Request(ctx, chain, l2RequestID)
	require.NoError(t, err)
	require.Equal(t, messages.UpdateTypeWithdrawal, request.UpdateType)

	_, err = n.LastL2RequestsBatch(ctx, chain)
	require.ErrorIs(t, err, db.ErrNotFound)
	rng := messages.Range{Start: 1, End: 1}
	batch, err := n.CreateBatch(ctx, bob, 0, chain, rng)
	require.NoError(t, err)
	require.Equal(t, bob, batch.Assignee)
	// a single leaf is its own root
	require.Equal(t, request.Hash, batch.Root)

	stored, err := n.L2RequestsBatch(ctx, chain, batch.BatchID)
	require.NoError(t, err)
	require.Equal(t, batch, stored)
	last, err := n.LastL2RequestsBatch(ctx, chain)
	require.NoError(t, err)
	require.Equal(t, batch, last)

	root, err := n.MerkleRoot(ctx, chain, rng)
	require.NoError(t, err)
	require.Equal(t, batch.Root, root)
	proof, err := n.MerkleProof(ctx, chain, rng, l2RequestID)
	require.NoError(t, err)
	require.Empty(t, proof)
	ok, err := n.VerifyMerkleProof(ctx, chain, rng, root, l2RequestID, proof)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = n.CreateBatch(ctx, bob, 1, chain, messages.Range{Start: 1, End: 2})
	require.ErrorIs(t, err, rolldown.ErrNonExistingRequestID)
}

func TestGenesisRejectsMissingMinimalStake(t *testing.T) {
	genesis := testGenesis()
	genesis.Chains[0].MinimalStake = nil
	n, err := New(log.WithFields("module", "node-test"),
		Config{
			DBPath:    path.Join(t.TempDir(), "node.sqlite"),
			BlockTime: types.NewDuration(10 * time.Millisecond),
			Admin:     admin,
		},
		rolldown.Config{DisputePeriodLength: disputePeriod, MaxRequestsPerUpdate: 10},
		sequencerstaking.Config{MaxSequencers: 10, CancellerRewardPercentage: 20, RotationPeriodBlocks: 100},
		genesis,
	)
	require.NoError(t, err)
	t.Cleanup(func() { n.Close() })
	require.ErrorIs(t, n.ApplyGenesis(context.Background()), common.ErrInvalidAmount)

	active, err := n.ActiveSequencers(context.Background(), chain)
	require.NoError(t, err)
	require.Empty(t, active)
}
