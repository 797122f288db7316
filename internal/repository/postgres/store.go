package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dtroode/itemgraph/internal/model"
)

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var _ model.Store = (*Store)(nil)

// Store hands out repositories bound either to the pool or to an open transaction.
type Store struct {
	db *sql.DB
	q  DBTX
}

// NewStore creates a Store on top of a pool.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, q: db}
}

func (s *Store) Users() model.UserStore {
	return NewUserRepository(s.q)
}

func (s *Store) Items() model.ItemStore {
	return NewItemRepository(s.q)
}

// InTx begins a transaction, runs fn with a transactional Store and commits
// on success or rolls back on error or panic. Panics are rethrown. Calling
// InTx on a transactional Store reuses the open transaction.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx model.Store) error) (err error) {
	if s.db == nil {
		return fn(ctx, s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("rollback failed (%v) after: %w", rbErr, err)
			}
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()

	return fn(ctx, &Store{q: tx})
}
