package db

import (
	"context"
	"errors"
	"math/big"
	"path"
	"testing"

	"github.com/0xPolygon/rolldown/db/types"
	"github.com/0xPolygon/rolldown/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
	"github.com/stretchr/testify/require"
)

const testMigration = `
-- +migrate Down
DROP TABLE IF EXISTS sample;

-- +migrate Up
CREATE TABLE sample (
	id      INTEGER PRIMARY KEY,
	owner   VARCHAR NOT NULL,
	spender VARCHAR,
	amount  TEXT,
	hash    VARCHAR NOT NULL
);
`

type sample struct {
	ID      uint64          `meddler:"id"`
	Owner   common.Address  `meddler:"owner,address"`
	Spender *common.Address `meddler:"spender,addressptr"`
	Amount  *big.Int        `meddler:"amount,bigint"`
	Hash    common.Hash     `meddler:"hash,hash"`
}

func newTestDB(t *testing.T) *Tx {
	t.Helper()
	dbPath := path.Join(t.TempDir(), "db_test.sqlite")
	database, err := NewSQLiteDB(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, RunMigrationsDB(log.GetDefaultLogger(), database,
		[]types.Migration{{ID: "sample0001", SQL: testMigration}}))
	require.NoError(t, CheckMigrations(log.GetDefaultLogger(), database,
		[]types.Migration{{ID: "sample0001", SQL: testMigration}}))
	tx, err := NewTx(context.Background(), database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })
	return tx
}

func TestMeddlers(t *testing.T) {
	tx := newTestDB(t)
	spender := common.HexToAddress("0x02")
	amount, ok := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	require.True(t, ok)

	withAll := &sample{
		ID:      1,
		Owner:   common.HexToAddress("0x01"),
		Spender: &spender,
		Amount:  amount,
		Hash:    common.HexToHash("0xabcd"),
	}
	withNils := &sample{ID: 2, Owner: common.HexToAddress("0x03")}
	require.NoError(t, meddler.Insert(tx, "sample", withAll))
	require.NoError(t, meddler.Insert(tx, "sample", withNils))

	var read sample
	require.NoError(t, meddler.QueryRow(tx, &read, "SELECT * FROM sample WHERE id = 1"))
	require.Equal(t, *withAll, read)

	read = sample{}
	require.NoError(t, meddler.QueryRow(tx, &read, "SELECT * FROM sample WHERE id = 2"))
	require.Nil(t, read.Spender)
	require.Nil(t, read.Amount)

	err := meddler.QueryRow(tx, &read, "SELECT * FROM sample WHERE id = 3")
	require.ErrorIs(t, ReturnErrNotFound(err), ErrNotFound)

	err = meddler.Insert(tx, "sample", withAll)
	require.True(t, IsUniqueConstraintErr(err))
}

func TestWithSavepoint(t *testing.T) {
	tx := newTestDB(t)
	errBoom := errors.New("boom")

	err := WithSavepoint(tx, "first", func() error {
		return meddler.Insert(tx, "sample", &sample{ID: 1, Owner: common.HexToAddress("0x01")})
	})
	require.NoError(t, err)

	err = WithSavepoint(tx, "second", func() error {
		if err := meddler.Insert(tx, "sample", &sample{ID: 2, Owner: common.HexToAddress("0x02")}); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	var count int
	require.NoError(t, tx.QueryRow("SELECT COUNT(*) FROM sample").Scan(&count))
	require.Equal(t, 1, count)
}

func TestTxCallbacks(t *testing.T) {
	tx := newTestDB(t)
	committed, rolledBack := false, false
	tx.AddCommitCallback(func() { committed = true })
	tx.AddRollbackCallback(func() { rolledBack = true })
	require.NoError(t, tx.Commit())
	require.True(t, committed)
	require.False(t, rolledBack)
}
