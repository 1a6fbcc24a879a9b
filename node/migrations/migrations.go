package migrations

import (
	_ "embed"

	"github.com/0xPolygon/rolldown/db"
	"github.com/0xPolygon/rolldown/db/types"
	eventsMigrations "github.com/0xPolygon/rolldown/events/migrations"
	rightsMigrations "github.com/0xPolygon/rolldown/rights/migrations"
	rolldownMigrations "github.com/0xPolygon/rolldown/rolldown/migrations"
	stakingMigrations "github.com/0xPolygon/rolldown/sequencerstaking/migrations"
	tokensMigrations "github.com/0xPolygon/rolldown/tokens/migrations"
)

//go:embed node0001.sql
var mig001 string

//go:embed node0002.sql
var mig002 string

var Migrations = []types.Migration{
	{
		ID:  "node0001",
		SQL: mig001,
	},
	{
		ID:  "node0002",
		SQL: mig002,
	},
}

// All returns the migrations of every component sharing the node database
func All() []types.Migration {
	var migs []types.Migration
	migs = append(migs, Migrations...)
	migs = append(migs, eventsMigrations.Migrations...)
	migs = append(migs, tokensMigrations.Migrations...)
	migs = append(migs, rightsMigrations.Migrations...)
	migs = append(migs, stakingMigrations.Migrations...)
	migs = append(migs, rolldownMigrations.Migrations...)
	return migs
}

func RunMigrations(dbPath string) error {
	return db.RunMigrations(dbPath, All())
}
