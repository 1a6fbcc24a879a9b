package db

import (
	"context"
	"database/sql"
	"fmt"
)

type Tx struct {
	*sql.Tx
	rollbackCallbacks []func()
	commitCallbacks   []func()
}

func NewTx(ctx context.Context, db DBer) (*Tx, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{
		Tx: tx,
	}, nil
}

func (s *Tx) AddRollbackCallback(cb func()) {
	s.rollbackCallbacks = append(s.rollbackCallbacks, cb)
}
func (s *Tx) AddCommitCallback(cb func()) {
	s.commitCallbacks = append(s.commitCallbacks, cb)
}

func (s *Tx) Commit() error {
	if err := s.Tx.Commit(); err != nil {
		return err
	}
	for _, cb := range s.commitCallbacks {
		cb()
	}
	return nil
}

func (s *Tx) Rollback() error {
	if err := s.Tx.Rollback(); err != nil {
		return err
	}
	for _, cb := range s.rollbackCallbacks {
		cb()
	}
	return nil
}

// WithSavepoint runs fn inside a named savepoint of the ongoing transaction.
// If fn fails the writes done by fn are undone and the error of fn is returned,
// the outer transaction stays usable.
func WithSavepoint(q Querier, name string, fn func() error) error {
	if _, err := q.Exec("SAVEPOINT " + name); err != nil {
		return fmt.Errorf("error creating savepoint %s: %w", name, err)
	}
	if fnErr := fn(); fnErr != nil {
		if _, err := q.Exec("ROLLBACK TO " + name); err != nil {
			return fmt.Errorf("error rolling back to savepoint %s: %w. Original error: %w", name, err, fnErr)
		}
		if _, err := q.Exec("RELEASE " + name); err != nil {
			return fmt.Errorf("error releasing savepoint %s: %w. Original error: %w", name, err, fnErr)
		}
		return fnErr
	}
	if _, err := q.Exec("RELEASE " + name); err != nil {
		return fmt.Errorf("error releasing savepoint %s: %w", name, err)
	}
	return nil
}
