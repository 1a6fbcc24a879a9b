package migrations

import (
	_ "embed"

	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/db/types"
)

//go:embed rights0001.sql
var mig001 string

var Migrations = []types.Migration{
	{
		ID:  "rights0001",
		SQL: mig001,
	},
}

func RunMigrations(dbPath string) error {
	return db.RunMigrations(dbPath, Migrations)
}
