package migrations

import (
	_ "embed"

	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/db/types"
)

//go:embed rolldown0001.sql
var mig001 string

//go:embed rolldown0002.sql
var mig002 string

var Migrations = []types.Migration{
	{
		ID:  "rolldown0001",
		SQL: mig001,
	},
	{
		ID:  "rolldown0002",
		SQL: mig002,
	},
}

func RunMigrations(dbPath string) error {
	return db.RunMigrations(dbPath, Migrations)
}
