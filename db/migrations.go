package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/0xPolygon/rolldown/db/types"
	"github.com/0xPolygon/rolldown/log"
	migrate "github.com/rubenv/sql-migrate"
)

const upDownSeparator = "-- +migrate Up"

// RunMigrations will execute pending migrations if needed to keep
// the database updated with the latest changes in either direction,
// up or down.
func RunMigrations(dbPath string, migrations []types.Migration) error {
	db, err := NewSQLiteDB(dbPath)
	if err != nil {
		return fmt.Errorf("error creating DB %w", err)
	}
	defer db.Close()
	return RunMigrationsDB(log.GetDefaultLogger(), db, migrations)
}

// RunMigrationsDB runs the given migrations up on an already opened database
func RunMigrationsDB(logger *log.Logger, db *sql.DB, migrations []types.Migration) error {
	migs := &migrate.MemoryMigrationSource{Migrations: []*migrate.Migration{}}
	for _, m := range migrations {
		splitted := strings.Split(m.SQL, upDownSeparator)
		if len(splitted) != 2 { //nolint:mnd
			return fmt.Errorf("migration %s must contain exactly one %q marker", m.ID, upDownSeparator)
		}
		migs.Migrations = append(migs.Migrations, &migrate.Migration{
			Id:   m.ID,
			Up:   []string{splitted[1]},
			Down: []string{splitted[0]},
		})
	}

	logger.Debugf("running migrations:")
	for _, m := range migs.Migrations {
		logger.Debugf("%+v", m.Id)
	}
	nMigrations, err := migrate.Exec(db, "sqlite3", migs, migrate.Up)
	if err != nil {
		return fmt.Errorf("error executing migration %w", err)
	}

	logger.Infof("successfully ran %d migrations", nMigrations)
	return nil
}

// CheckMigrations verifies that every migration with an Up section has already
// been applied to the database
func CheckMigrations(logger *log.Logger, db *sql.DB, migrations []types.Migration) error {
	var actual int
	err := db.QueryRow(`SELECT COUNT(1) FROM gorp_migrations`).Scan(&actual)
	if err != nil {
		logger.Error("error getting migrations count: ", err)
		return err
	}
	if len(migrations) > actual {
		return fmt.Errorf("the component needs to run %d migrations before starting. DB only contains %d migrations",
			len(migrations), actual)
	}
	logger.Infof("found %d migrations as expected", actual)
	return nil
}
