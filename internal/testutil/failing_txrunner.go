package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/rihla/internal/db"
)

// FailOnNthExecTxRunner is a test TxRunner that injects an error on the
// Nth ExecContext call within a transaction, simulating a write failure
// at a precise point in a multi-write operation.
//
// ExecContext calls are counted starting at 1; reads pass through.
type FailOnNthExecTxRunner struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (r *FailOnNthExecTxRunner) InTx(ctx context.Context, fn func(ctx context.Context, q db.Querier) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	wrapped := &failOnNthExec{Querier: tx, failOn: r.FailOn, err: r.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failOnNthExec struct {
	db.Querier
	count  atomic.Int32
	failOn int32
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.count.Add(1)
	if n == f.failOn {
		return nil, f.err
	}
	return f.Querier.ExecContext(ctx, query, args...)
}
