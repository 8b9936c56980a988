package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/rihla/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRunner(t *testing.T) *db.SQLiteTxRunner {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewTxRunner(database)
}

func readPref(runner *db.SQLiteTxRunner, key string) (string, bool) {
	var val string
	var found bool
	_ = runner.InTx(context.Background(), func(ctx context.Context, q db.Querier) error {
		row := q.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key)
		if err := row.Scan(&val); err != nil {
			return nil // not found
		}
		found = true
		return nil
	})
	return val, found
}

func TestInTx_CommitOnSuccess(t *testing.T) {
	runner := openTestRunner(t)

	err := runner.InTx(context.Background(), func(ctx context.Context, q db.Querier) error {
		_, err := q.ExecContext(ctx,
			`INSERT INTO preferences (key, value) VALUES (?, ?)`, "user_id", "pilgrim-42")
		return err
	})
	require.NoError(t, err)

	val, found := readPref(runner, "user_id")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "pilgrim-42", val)
}

func TestInTx_RollbackOnError(t *testing.T) {
	runner := openTestRunner(t)

	err := runner.InTx(context.Background(), func(ctx context.Context, q db.Querier) error {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO preferences (key, value) VALUES (?, ?)`, "locale", "ar"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := readPref(runner, "locale")
	assert.False(t, found, "row should not exist after rollback")
}

func TestInTx_RollbackOnPanic(t *testing.T) {
	runner := openTestRunner(t)

	assert.Panics(t, func() {
		_ = runner.InTx(context.Background(), func(ctx context.Context, q db.Querier) error {
			_, _ = q.ExecContext(ctx,
				`INSERT INTO preferences (key, value) VALUES (?, ?)`, "locale", "ur")
			panic("boom")
		})
	})

	_, found := readPref(runner, "locale")
	assert.False(t, found, "row should not exist after panic rollback")
}
