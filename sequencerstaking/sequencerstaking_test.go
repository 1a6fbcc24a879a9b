package sequencerstaking

import (
	"context"
	"errors"
	"math/big"
	"path"
	"testing"

	"github.com/0xPolygon/rolldown/common"
	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/db/types"
	"github.com/0xPolygon/rolldown/events"
	eventsMigrations "github.com/0xPolygon/rolldown/events/migrations"
	"github.com/0xPolygon/rolldown/log"
	"github.com/0xPolygon/rolldown/sequencerstaking/migrations"
	"github.com/0xPolygon/rolldown/sequencerstaking/mocks"
	"github.com/0xPolygon/rolldown/tokens"
	tokensMigrations "github.com/0xPolygon/rolldown/tokens/migrations"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	chain          = uint32(1)
	minimumStake   = 1000
	slashFine      = 100
	tokensEndowed  = 10_000
	rewardPercent  = 20
	testBlock      = uint64(10)
	maxSequencersT = 3
)

var (
	alice   = ethCommon.HexToAddress("0xa1")
	bob     = ethCommon.HexToAddress("0xb0")
	charlie = ethCommon.HexToAddress("0xc4")
	dave    = ethCommon.HexToAddress("0xda")
	eve     = ethCommon.HexToAddress("0xee")
)

type testEnv struct {
	staking *Staking
	ledger  *tokens.Ledger
	hooks   *mocks.ActiveSetHooks
	tx      *db.Tx
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dbPath := path.Join(t.TempDir(), "staking.sqlite")
	var migs []types.Migration
	migs = append(migs, migrations.Migrations...)
	migs = append(migs, tokensMigrations.Migrations...)
	migs = append(migs, eventsMigrations.Migrations...)
	require.NoError(t, db.RunMigrations(dbPath, migs))
	database, err := db.NewSQLiteDB(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	tx, err := db.NewTx(context.Background(), database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })

	logger := log.WithFields("module", "staking-test")
	ledger := tokens.NewLedger(logger)
	hooks := mocks.NewActiveSetHooks(t)
	staking, err := New(logger, Config{
		MaxSequencers:             maxSequencersT,
		CancellerRewardPercentage: rewardPercent,
		RotationPeriodBlocks:      1,
	}, ledger, hooks)
	require.NoError(t, err)

	require.NoError(t, staking.SetSequencerConfiguration(tx, testBlock, chain,
		big.NewInt(minimumStake), big.NewInt(slashFine)))
	for _, acc := range []ethCommon.Address{alice, bob, charlie, dave} {
		require.NoError(t, ledger.Mint(tx, tokens.NativeAssetID, acc, big.NewInt(tokensEndowed)))
	}
	return &testEnv{staking: staking, ledger: ledger, hooks: hooks, tx: tx}
}

func (e *testEnv) join(t *testing.T, seq ethCommon.Address, amount int64) {
	t.Helper()
	e.hooks.EXPECT().OnSequencerJoined(mock.Anything, chain, seq).Return(nil).Once()
	require.NoError(t, e.staking.ProvideSequencerStake(e.tx, testBlock, chain, seq, big.NewInt(amount)))
	e.requireActive(t, seq, true)
}

func (e *testEnv) requireActive(t *testing.T, seq ethCommon.Address, expected bool) {
	t.Helper()
	active, err := e.staking.IsActiveSequencer(e.tx, chain, seq)
	require.NoError(t, err)
	require.Equal(t, expected, active, "sequencer %s", seq)
}

func (e *testEnv) requireBalance(t *testing.T, acc ethCommon.Address, free, reserved int64) {
	t.Helper()
	b, err := e.ledger.Balance(e.tx, tokens.NativeAssetID, acc)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(free).String(), b.Free.String(), "free of %s", acc)
	require.Equal(t, big.NewInt(reserved).String(), b.Reserved.String(), "reserved of %s", acc)
}

func (e *testEnv) requireStake(t *testing.T, acc ethCommon.Address, expected int64) {
	t.Helper()
	stake, err := e.staking.SequencerStake(e.tx, chain, acc)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(expected).String(), stake.String())
}

func (e *testEnv) issuance(t *testing.T) *big.Int {
	t.Helper()
	issuance, err := e.ledger.TotalIssuance(e.tx, tokens.NativeAssetID)
	require.NoError(t, err)
	return issuance
}

func TestProvideSequencerStake(t *testing.T) {
	e := newTestEnv(t)

	require.NoError(t, e.staking.ProvideSequencerStake(e.tx, testBlock, chain, alice, big.NewInt(minimumStake-1)))
	e.requireActive(t, alice, false)
	e.requireStake(t, alice, minimumStake-1)
	e.requireBalance(t, alice, tokensEndowed-minimumStake+1, minimumStake-1)

	e.hooks.EXPECT().OnSequencerJoined(mock.Anything, chain, alice).Return(nil).Once()
	require.NoError(t, e.staking.ProvideSequencerStake(e.tx, testBlock, chain, alice, big.NewInt(1)))
	e.requireActive(t, alice, true)
	e.requireStake(t, alice, minimumStake)

	// more stake for an active member does not join again
	require.NoError(t, e.staking.ProvideSequencerStake(e.tx, testBlock, chain, alice, big.NewInt(1)))
	set, err := e.staking.ActiveSequencers(e.tx, chain)
	require.NoError(t, err)
	require.Equal(t, []ethCommon.Address{alice}, set)

	joined, err := events.GetByName(e.tx, events.SequencerJoinedActiveSet, testBlock, testBlock)
	require.NoError(t, err)
	require.Len(t, joined, 1)
	var payload SequencerJoinedActiveSet
	require.NoError(t, joined[0].Decode(&payload))
	require.Equal(t, SequencerJoinedActiveSet{Chain: chain, Sequencer: alice}, payload)
}

func TestProvideSequencerStakeErrors(t *testing.T) {
	e := newTestEnv(t)
	err := e.staking.ProvideSequencerStake(e.tx, testBlock, chain+1, alice, big.NewInt(minimumStake))
	require.ErrorIs(t, err, ErrUnknownChain)

	err = e.staking.ProvideSequencerStake(e.tx, testBlock, chain, alice, big.NewInt(tokensEndowed+1))
	require.ErrorIs(t, err, tokens.ErrInsufficientBalance)

	err = e.staking.ProvideSequencerStake(e.tx, testBlock, chain, alice, nil)
	require.ErrorIs(t, err, common.ErrInvalidAmount)
	err = e.staking.ProvideSequencerStake(e.tx, testBlock, chain, alice, big.NewInt(-1))
	require.ErrorIs(t, err, common.ErrInvalidAmount)
	e.requireStake(t, alice, 0)
}

func TestProvideSequencerStakeActiveSetBound(t *testing.T) {
	e := newTestEnv(t)
	e.join(t, alice, minimumStake)
	e.join(t, bob, minimumStake)
	e.join(t, charlie, minimumStake)

	require.NoError(t, e.staking.ProvideSequencerStake(e.tx, testBlock, chain, dave, big.NewInt(minimumStake)))
	e.requireActive(t, dave, false)
	e.requireStake(t, dave, minimumStake)
	e.requireBalance(t, dave, tokensEndowed-minimumStake, minimumStake)

	err := e.staking.RejoinActiveSequencers(e.tx, testBlock, chain, dave)
	require.ErrorIs(t, err, ErrMaxSequencersLimitReached)
}

func TestLeaveAndRejoin(t *testing.T) {
	e := newTestEnv(t)
	e.join(t, alice, minimumStake)
	e.join(t, bob, minimumStake)

	err := e.staking.LeaveActiveSequencers(e.tx, testBlock, chain, charlie)
	require.ErrorIs(t, err, ErrSequencerIsNotInActiveSet)

	err = e.staking.RejoinActiveSequencers(e.tx, testBlock, chain, alice)
	require.ErrorIs(t, err, ErrSequencerAlreadyInActiveSet)

	e.hooks.EXPECT().OnSequencersRemoved(mock.Anything, chain, []ethCommon.Address{alice}).Return(nil).Once()
	require.NoError(t, e.staking.LeaveActiveSequencers(e.tx, testBlock, chain, alice))
	e.requireActive(t, alice, false)
	e.requireStake(t, alice, minimumStake)

	require.NoError(t, e.staking.ProvideSequencerStake(e.tx, testBlock, chain, charlie, big.NewInt(minimumStake-1)))
	err = e.staking.RejoinActiveSequencers(e.tx, testBlock, chain, charlie)
	require.ErrorIs(t, err, ErrNotEnoughSequencerStake)

	e.hooks.EXPECT().OnSequencerJoined(mock.Anything, chain, alice).Return(nil).Once()
	require.NoError(t, e.staking.RejoinActiveSequencers(e.tx, testBlock, chain, alice))
	set, err := e.staking.ActiveSequencers(e.tx, chain)
	require.NoError(t, err)
	require.Equal(t, []ethCommon.Address{bob, alice}, set)
}

func TestUnstake(t *testing.T) {
	e := newTestEnv(t)
	e.join(t, alice, minimumStake)

	err := e.staking.Unstake(e.tx, testBlock, chain, alice)
	require.ErrorIs(t, err, ErrCantUnstakeWhileInActiveSet)

	e.hooks.EXPECT().OnSequencersRemoved(mock.Anything, chain, []ethCommon.Address{alice}).Return(nil).Once()
	require.NoError(t, e.staking.LeaveActiveSequencers(e.tx, testBlock, chain, alice))

	errDispute := errors.New("still in dispute")
	e.hooks.EXPECT().CanUnstake(mock.Anything, chain, alice).Return(errDispute).Once()
	require.ErrorIs(t, e.staking.Unstake(e.tx, testBlock, chain, alice), errDispute)
	e.requireBalance(t, alice, tokensEndowed-minimumStake, minimumStake)

	e.hooks.EXPECT().CanUnstake(mock.Anything, chain, alice).Return(nil)
	require.NoError(t, e.staking.Unstake(e.tx, testBlock, chain, alice))
	e.requireStake(t, alice, 0)
	e.requireBalance(t, alice, tokensEndowed, 0)

	require.ErrorIs(t, e.staking.Unstake(e.tx, testBlock, chain, alice), ErrNoStake)
}

func TestSetSequencerConfiguration(t *testing.T) {
	e := newTestEnv(t)
	e.join(t, alice, minimumStake)
	e.join(t, bob, minimumStake)
	e.join(t, charlie, minimumStake+1)

	e.hooks.EXPECT().OnSequencersRemoved(mock.Anything, chain, []ethCommon.Address{alice, bob}).Return(nil).Once()
	require.NoError(t, e.staking.SetSequencerConfiguration(e.tx, testBlock, chain,
		big.NewInt(minimumStake+1), big.NewInt(slashFine-1)))

	set, err := e.staking.ActiveSequencers(e.tx, chain)
	require.NoError(t, err)
	require.Equal(t, []ethCommon.Address{charlie}, set)
	cfg, err := e.staking.ChainConfig(e.tx, chain)
	require.NoError(t, err)
	require.Equal(t, int64(minimumStake+1), cfg.MinimalStake.Int64())
	require.Equal(t, int64(slashFine-1), cfg.SlashFine.Int64())
}

func TestSetSequencerConfigurationRejectsMissingAmounts(t *testing.T) {
	e := newTestEnv(t)
	e.join(t, alice, minimumStake)

	tests := []struct {
		name         string
		chain        uint32
		minimalStake *big.Int
		slashFine    *big.Int
	}{
		{name: "nil minimal stake with active members", chain: chain, slashFine: big.NewInt(1)},
		{name: "nil slash fine with active members", chain: chain, minimalStake: big.NewInt(1)},
		{name: "nil minimal stake on a new chain", chain: 7, slashFine: big.NewInt(1)},
		{name: "negative slash fine on a new chain", chain: 7, minimalStake: big.NewInt(1), slashFine: big.NewInt(-5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.staking.SetSequencerConfiguration(e.tx, testBlock, tt.chain, tt.minimalStake, tt.slashFine)
			require.ErrorIs(t, err, common.ErrInvalidAmount)
		})
	}

	cfg, err := e.staking.ChainConfig(e.tx, chain)
	require.NoError(t, err)
	require.Equal(t, int64(minimumStake), cfg.MinimalStake.Int64())
	_, err = e.staking.ChainConfig(e.tx, 7)
	require.ErrorIs(t, err, ErrUnknownChain)
	e.requireActive(t, alice, true)
}

func TestSlashSequencer(t *testing.T) {
	e := newTestEnv(t)
	e.join(t, alice, minimumStake)
	e.join(t, bob, minimumStake)
	issuance0 := e.issuance(t)

	reward := int64(rewardPercent * slashFine / 100)
	e.hooks.EXPECT().OnSequencersRemoved(mock.Anything, chain, []ethCommon.Address{alice}).Return(nil).Once()
	require.NoError(t, e.staking.SlashSequencer(e.tx, testBlock, chain, alice, &eve))
	e.requireStake(t, alice, minimumStake-slashFine)
	e.requireBalance(t, alice, tokensEndowed-minimumStake, minimumStake-slashFine)
	e.requireBalance(t, eve, reward, 0)
	e.requireActive(t, alice, false)
	require.Equal(t, new(big.Int).Sub(issuance0, big.NewInt(slashFine-reward)).String(), e.issuance(t).String())

	issuance1 := e.issuance(t)
	e.hooks.EXPECT().OnSequencersRemoved(mock.Anything, chain, []ethCommon.Address{bob}).Return(nil).Once()
	require.NoError(t, e.staking.SlashSequencer(e.tx, testBlock, chain, bob, nil))
	e.requireBalance(t, bob, tokensEndowed-minimumStake, minimumStake-slashFine)
	require.Equal(t, new(big.Int).Sub(issuance1, big.NewInt(slashFine)).String(), e.issuance(t).String())

	slashed, err := events.GetByName(e.tx, events.SequencerSlashed, testBlock, testBlock)
	require.NoError(t, err)
	require.Len(t, slashed, 2)
	var payload SequencerSlashed
	require.NoError(t, slashed[0].Decode(&payload))
	require.Equal(t, &eve, payload.Reporter)
	require.Equal(t, int64(reward), payload.Repatriated.Int64())
	require.Equal(t, int64(slashFine-reward), payload.Burned.Int64())
}

func TestSlashSequencerSmallStake(t *testing.T) {
	tests := []struct {
		name                string
		stake               int64
		reporter            *ethCommon.Address
		expectedSlashed     int64
		expectedRepatriated int64
	}{
		{name: "stake below the reward with reporter", stake: 10, reporter: &eve, expectedSlashed: 10, expectedRepatriated: 10},
		{name: "stake below the reward without reporter", stake: 10, expectedSlashed: 10},
		{name: "stake between reward and fine with reporter", stake: 50, reporter: &eve, expectedSlashed: 50, expectedRepatriated: 20},
		{name: "stake between reward and fine without reporter", stake: 50, expectedSlashed: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t)
			require.NoError(t, e.staking.ProvideSequencerStake(e.tx, testBlock, chain, charlie, big.NewInt(tt.stake)))
			issuance0 := e.issuance(t)

			require.NoError(t, e.staking.SlashSequencer(e.tx, testBlock, chain, charlie, tt.reporter))

			e.requireStake(t, charlie, tt.stake-tt.expectedSlashed)
			e.requireBalance(t, charlie, tokensEndowed-tt.stake, tt.stake-tt.expectedSlashed)
			e.requireBalance(t, eve, tt.expectedRepatriated, 0)
			burned := tt.expectedSlashed - tt.expectedRepatriated
			require.Equal(t, new(big.Int).Sub(issuance0, big.NewInt(burned)).String(), e.issuance(t).String())
		})
	}
}

func TestOnFinalize(t *testing.T) {
	e := newTestEnv(t)
	e.join(t, alice, minimumStake)
	e.join(t, bob, minimumStake)
	e.join(t, charlie, minimumStake)

	require.NoError(t, e.staking.SelectFirst(e.tx, chain))
	selected, err := e.staking.SelectedSequencer(e.tx, chain)
	require.NoError(t, err)
	require.Equal(t, &alice, selected)

	expected := []ethCommon.Address{alice, bob, charlie, alice, bob}
	for i, exp := range expected {
		require.NoError(t, e.staking.OnFinalize(e.tx, uint64(i)))
		isSelected, err := e.staking.IsSelectedSequencer(e.tx, chain, exp)
		require.NoError(t, err)
		require.True(t, isSelected, "block %d", i)
	}

	// charlie is next, removing alice from before the pointer keeps it that way
	e.hooks.EXPECT().OnSequencersRemoved(mock.Anything, chain, []ethCommon.Address{alice}).Return(nil).Once()
	require.NoError(t, e.staking.LeaveActiveSequencers(e.tx, testBlock, chain, alice))
	require.NoError(t, e.staking.OnFinalize(e.tx, 5))
	selected, err = e.staking.SelectedSequencer(e.tx, chain)
	require.NoError(t, err)
	require.Equal(t, &charlie, selected)
}
