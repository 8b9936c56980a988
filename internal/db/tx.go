package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// The preference repository runs every read and write through it, so a
// user-id row and a locale row can be updated inside one transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// TxRunner runs a function inside a single SQLite transaction. The
// callback's Querier is backed by a *sql.Tx; an error or a panic out of
// the callback rolls the transaction back.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context, q Querier) error) error
}

// SQLiteTxRunner is the TxRunner over the preferences database.
type SQLiteTxRunner struct {
	db *sql.DB
}

func NewTxRunner(database *sql.DB) *SQLiteTxRunner {
	return &SQLiteTxRunner{db: database}
}

func (r *SQLiteTxRunner) InTx(ctx context.Context, fn func(ctx context.Context, q Querier) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		// Covers both the error return and a panic inside fn.
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}
