package tokens

import (
	"context"
	"math/big"
	"path"
	"testing"

	"github.com/0xPolygon/rolldown/common"
	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/log"
	"github.com/0xPolygon/rolldown/messages"
	"github.com/0xPolygon/rolldown/tokens/migrations"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	alice = ethCommon.HexToAddress("0xa1")
	bob   = ethCommon.HexToAddress("0xb0")
	token = messages.L1Asset{Chain: 1, Address: ethCommon.HexToAddress("0x30")}
)

func newTestLedger(t *testing.T) (*Ledger, *db.Tx) {
	t.Helper()
	dbPath := path.Join(t.TempDir(), "tokens.sqlite")
	require.NoError(t, migrations.RunMigrations(dbPath))
	database, err := db.NewSQLiteDB(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	tx, err := db.NewTx(context.Background(), database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })
	return NewLedger(log.WithFields("module", "tokens-test")), tx
}

func requireBalance(t *testing.T, l *Ledger, tx db.Querier, asset uint64, account ethCommon.Address, free, reserved int64) {
	t.Helper()
	b, err := l.Balance(tx, asset, account)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(free).String(), b.Free.String(), "free balance of %s", account)
	require.Equal(t, big.NewInt(reserved).String(), b.Reserved.String(), "reserved balance of %s", account)
}

func TestL1AssetRegistry(t *testing.T) {
	l, tx := newTestLedger(t)

	_, err := l.GetL1AssetID(tx, token)
	require.ErrorIs(t, err, db.ErrNotFound)

	id, err := l.CreateL1Asset(tx, token)
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	got, err := l.GetL1AssetID(tx, token)
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = l.CreateL1Asset(tx, token)
	require.ErrorIs(t, err, ErrAssetAlreadyExists)

	// same address on another chain is another asset
	other, err := l.CreateL1Asset(tx, messages.L1Asset{Chain: 2, Address: token.Address})
	require.NoError(t, err)
	require.Equal(t, uint64(2), other)
}

func TestMintBurn(t *testing.T) {
	l, tx := newTestLedger(t)
	id, err := l.CreateL1Asset(tx, token)
	require.NoError(t, err)

	require.NoError(t, l.Mint(tx, id, alice, big.NewInt(100)))
	requireBalance(t, l, tx, id, alice, 100, 0)

	require.NoError(t, l.EnsureCanWithdraw(tx, id, alice, big.NewInt(100)))
	require.ErrorIs(t, l.EnsureCanWithdraw(tx, id, alice, big.NewInt(101)), ErrInsufficientBalance)
	require.ErrorIs(t, l.Burn(tx, id, alice, big.NewInt(101)), ErrInsufficientBalance)
	requireBalance(t, l, tx, id, alice, 100, 0)

	require.NoError(t, l.Burn(tx, id, alice, big.NewInt(40)))
	requireBalance(t, l, tx, id, alice, 60, 0)
	issuance, err := l.TotalIssuance(tx, id)
	require.NoError(t, err)
	require.Equal(t, "60", issuance.String())

	require.ErrorIs(t, l.Mint(tx, 42, alice, big.NewInt(1)), ErrUnknownAsset)
}

func TestMintOverflow(t *testing.T) {
	l, tx := newTestLedger(t)
	maxAmount := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), common.MaxAmountBits), big.NewInt(1))
	require.NoError(t, l.Mint(tx, NativeAssetID, alice, maxAmount))
	require.ErrorIs(t, l.Mint(tx, NativeAssetID, bob, big.NewInt(1)), common.ErrMathOverflow)
	requireBalance(t, l, tx, NativeAssetID, bob, 0, 0)
}

func TestReserveAndSlash(t *testing.T) {
	l, tx := newTestLedger(t)
	require.NoError(t, l.Mint(tx, NativeAssetID, alice, big.NewInt(1000)))

	require.ErrorIs(t, l.Reserve(tx, alice, big.NewInt(1001)), ErrInsufficientBalance)
	require.NoError(t, l.Reserve(tx, alice, big.NewInt(800)))
	requireBalance(t, l, tx, NativeAssetID, alice, 200, 800)

	require.NoError(t, l.RepatriateReserved(tx, alice, bob, big.NewInt(20)))
	require.NoError(t, l.SlashReserved(tx, alice, big.NewInt(80)))
	requireBalance(t, l, tx, NativeAssetID, alice, 200, 700)
	requireBalance(t, l, tx, NativeAssetID, bob, 20, 0)

	issuance, err := l.TotalIssuance(tx, NativeAssetID)
	require.NoError(t, err)
	require.Equal(t, "920", issuance.String())

	require.ErrorIs(t, l.Unreserve(tx, alice, big.NewInt(701)), ErrInsufficientReserved)
	require.NoError(t, l.Unreserve(tx, alice, big.NewInt(700)))
	requireBalance(t, l, tx, NativeAssetID, alice, 900, 0)
}
