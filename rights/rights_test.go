package rights

import (
	"context"
	"path"
	"testing"

	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/log"
	"github.com/0xPolygon/rolldown/rights/migrations"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

const chain = uint32(1)

var (
	alice = ethCommon.HexToAddress("0xa1")
	bob   = ethCommon.HexToAddress("0xb0")
	carol = ethCommon.HexToAddress("0xca")
	dave  = ethCommon.HexToAddress("0xda")
)

func newTestLedger(t *testing.T) (*Ledger, *db.Tx) {
	t.Helper()
	dbPath := path.Join(t.TempDir(), "rights.sqlite")
	require.NoError(t, migrations.RunMigrations(dbPath))
	database, err := db.NewSQLiteDB(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	tx, err := db.NewTx(context.Background(), database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })
	return NewLedger(log.WithFields("module", "rights-test")), tx
}

func requireRights(t *testing.T, l *Ledger, tx db.Querier, seq ethCommon.Address, read, cancel uint64) {
	t.Helper()
	r, err := l.Get(tx, chain, seq)
	require.NoError(t, err)
	require.Equal(t, read, r.ReadRights, "read rights of %s", seq)
	require.Equal(t, cancel, r.CancelRights, "cancel rights of %s", seq)
}

func TestJoinAndRemoveKeepsCancelRightsEqualToPeers(t *testing.T) {
	l, tx := newTestLedger(t)

	members := []ethCommon.Address{alice, bob, carol, dave}
	for i, seq := range members {
		require.NoError(t, l.OnSequencerJoined(tx, chain, seq, 0, 0))
		for _, m := range members[:i+1] {
			requireRights(t, l, tx, m, 1, uint64(i))
		}
	}

	require.NoError(t, l.OnSequencersRemoved(tx, chain, []ethCommon.Address{bob, dave}))
	requireRights(t, l, tx, alice, 1, 1)
	requireRights(t, l, tx, carol, 1, 1)
	requireRights(t, l, tx, bob, 0, 0)
	requireRights(t, l, tx, dave, 0, 0)

	require.NoError(t, l.OnSequencerJoined(tx, chain, bob, 0, 0))
	requireRights(t, l, tx, alice, 1, 2)
	requireRights(t, l, tx, bob, 1, 2)
	requireRights(t, l, tx, carol, 1, 2)

	all, err := l.GetAll(tx, chain)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// other chains are not affected
	other, err := l.GetAll(tx, chain+1)
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestRemovingUnknownSequencerIsNoop(t *testing.T) {
	l, tx := newTestLedger(t)
	require.NoError(t, l.OnSequencerJoined(tx, chain, alice, 0, 0))
	require.NoError(t, l.OnSequencerJoined(tx, chain, bob, 0, 0))
	require.NoError(t, l.OnSequencersRemoved(tx, chain, []ethCommon.Address{carol}))
	requireRights(t, l, tx, alice, 1, 1)
	requireRights(t, l, tx, bob, 1, 1)
}

func TestJoinWithRightsUnderDispute(t *testing.T) {
	l, tx := newTestLedger(t)
	require.NoError(t, l.OnSequencerJoined(tx, chain, alice, 0, 0))
	require.NoError(t, l.OnSequencerJoined(tx, chain, bob, 0, 0))
	require.NoError(t, l.OnSequencerJoined(tx, chain, carol, 1, 1))
	requireRights(t, l, tx, carol, 0, 1)

	require.NoError(t, l.OnSequencerJoined(tx, chain, dave, 3, 5))
	requireRights(t, l, tx, dave, 0, 0)

	require.Error(t, l.OnSequencerJoined(tx, chain, dave, 0, 0))
}

func TestConsumeAndRestore(t *testing.T) {
	l, tx := newTestLedger(t)
	require.NoError(t, l.OnSequencerJoined(tx, chain, alice, 0, 0))
	require.NoError(t, l.OnSequencerJoined(tx, chain, bob, 0, 0))

	require.NoError(t, l.ConsumeRead(tx, chain, alice))
	require.ErrorIs(t, l.ConsumeRead(tx, chain, alice), ErrReadRightsExhausted)
	requireRights(t, l, tx, alice, 0, 1)

	require.NoError(t, l.ConsumeCancel(tx, chain, bob))
	require.ErrorIs(t, l.ConsumeCancel(tx, chain, bob), ErrCancelRightsExhausted)
	requireRights(t, l, tx, bob, 1, 0)

	restored, err := l.RestoreRead(tx, chain, alice)
	require.NoError(t, err)
	require.True(t, restored)
	restored, err = l.RestoreCancel(tx, chain, bob)
	require.NoError(t, err)
	require.True(t, restored)
	requireRights(t, l, tx, alice, 1, 1)
	requireRights(t, l, tx, bob, 1, 1)

	restored, err = l.RestoreRead(tx, chain, alice)
	require.NoError(t, err)
	require.True(t, restored)
	requireRights(t, l, tx, alice, 2, 1)
	restored, err = l.ResetRead(tx, chain, alice)
	require.NoError(t, err)
	require.True(t, restored)
	requireRights(t, l, tx, alice, 1, 1)
}

func TestInactiveSequencerHasNoRights(t *testing.T) {
	l, tx := newTestLedger(t)
	requireRights(t, l, tx, alice, 0, 0)
	require.ErrorIs(t, l.ConsumeRead(tx, chain, alice), ErrReadRightsExhausted)
	require.ErrorIs(t, l.ConsumeCancel(tx, chain, alice), ErrCancelRightsExhausted)

	restored, err := l.RestoreRead(tx, chain, alice)
	require.NoError(t, err)
	require.False(t, restored)
	restored, err = l.RestoreCancel(tx, chain, alice)
	require.NoError(t, err)
	require.False(t, restored)
	requireRights(t, l, tx, alice, 0, 0)
}

func TestPeerLeavingWhileCancelIsOpenIsOwed(t *testing.T) {
	l, tx := newTestLedger(t)
	require.NoError(t, l.OnSequencerJoined(tx, chain, alice, 0, 0))
	require.NoError(t, l.OnSequencerJoined(tx, chain, bob, 0, 0))

	// bob cancels an update of alice, then alice leaves
	require.NoError(t, l.ConsumeCancel(tx, chain, bob))
	require.NoError(t, l.OnSequencersRemoved(tx, chain, []ethCommon.Address{alice}))
	requireRights(t, l, tx, bob, 1, 0)
	r, err := l.Get(tx, chain, bob)
	require.NoError(t, err)
	require.Equal(t, uint64(1), r.CancelDebt)

	// the dispute is resolved: the right pays the debt instead of coming back
	restored, err := l.RestoreCancel(tx, chain, bob)
	require.NoError(t, err)
	require.True(t, restored)
	requireRights(t, l, tx, bob, 1, 0)

	require.NoError(t, l.OnSequencerJoined(tx, chain, carol, 0, 0))
	requireRights(t, l, tx, bob, 1, 1)
	requireRights(t, l, tx, carol, 1, 1)
}

func TestJoinWhileOwingCancelRights(t *testing.T) {
	l, tx := newTestLedger(t)
	require.NoError(t, l.OnSequencerJoined(tx, chain, alice, 0, 0))
	require.NoError(t, l.OnSequencerJoined(tx, chain, bob, 0, 0))
	require.NoError(t, l.ConsumeCancel(tx, chain, bob))
	require.NoError(t, l.OnSequencersRemoved(tx, chain, []ethCommon.Address{alice}))

	// a new peer settles the debt first, the open cancel still accounts for the peer
	require.NoError(t, l.OnSequencerJoined(tx, chain, carol, 0, 0))
	requireRights(t, l, tx, bob, 1, 0)
	require.ErrorIs(t, l.ConsumeCancel(tx, chain, bob), ErrCancelRightsExhausted)

	restored, err := l.RestoreCancel(tx, chain, bob)
	require.NoError(t, err)
	require.True(t, restored)
	requireRights(t, l, tx, bob, 1, 1)
}

func TestJoinWithMoreOpenCancelsThanPeers(t *testing.T) {
	l, tx := newTestLedger(t)
	require.NoError(t, l.OnSequencerJoined(tx, chain, alice, 0, 0))
	require.NoError(t, l.OnSequencerJoined(tx, chain, bob, 0, 2))
	requireRights(t, l, tx, bob, 1, 0)

	for range 2 {
		restored, err := l.RestoreCancel(tx, chain, bob)
		require.NoError(t, err)
		require.True(t, restored)
	}
	requireRights(t, l, tx, bob, 1, 1)
}
