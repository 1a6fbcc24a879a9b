package types

// Migration is a single schema change identified by a globally unique ID.
// SQL holds both directions using the sql-migrate markers
// `-- +migrate Up` and `-- +migrate Down`.
type Migration struct {
	ID  string
	SQL string
}
