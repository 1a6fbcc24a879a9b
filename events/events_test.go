package events

import (
	"context"
	"path"
	"testing"

	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/events/migrations"
	"github.com/stretchr/testify/require"
)

type stored struct {
	Sequencer string `json:"sequencer"`
	Deadline  uint64 `json:"deadline"`
}

func TestEmitAndGet(t *testing.T) {
	dbPath := path.Join(t.TempDir(), "events.sqlite")
	require.NoError(t, migrations.RunMigrations(dbPath))
	database, err := db.NewSQLiteDB(dbPath)
	require.NoError(t, err)
	defer database.Close()

	tx, err := db.NewTx(context.Background(), database)
	require.NoError(t, err)
	require.NoError(t, Emit(tx, 1, L1ReadStored, 1, stored{Sequencer: "0x01", Deadline: 6}))
	require.NoError(t, Emit(tx, 2, StakeProvided, 1, map[string]string{"amount": "1000"}))
	require.NoError(t, Emit(tx, 2, L1ReadStored, 2, stored{Sequencer: "0x02", Deadline: 7}))
	require.NoError(t, tx.Commit())

	all, err := Get(database, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, L1ReadStored, all[0].Name)
	require.Equal(t, StakeProvided, all[1].Name)
	require.Less(t, all[0].ID, all[1].ID)

	var payload stored
	require.NoError(t, all[2].Decode(&payload))
	require.Equal(t, stored{Sequencer: "0x02", Deadline: 7}, payload)
	require.Equal(t, uint32(2), all[2].Chain)

	atTwo, err := GetByName(database, L1ReadStored, 2, 2)
	require.NoError(t, err)
	require.Len(t, atTwo, 1)
	require.Equal(t, uint64(2), atTwo[0].Block)

	// rolled back events are gone
	tx, err = db.NewTx(context.Background(), database)
	require.NoError(t, err)
	require.NoError(t, Emit(tx, 3, SequencerSlashed, 1, struct{}{}))
	require.NoError(t, tx.Rollback())
	none, err := Get(database, 3, 3)
	require.NoError(t, err)
	require.Empty(t, none)
}
