package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/floatsync/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

const insertRun = `INSERT INTO runs (id, sheet_id, status, started_at, finished_at)
	VALUES (?, '4242', 'succeeded', '2024-01-05T09:00:00Z', '2024-01-05T09:00:01Z')`

// runExists reads through a fresh transaction so it sees only committed rows.
func runExists(t *testing.T, uow *db.SQLiteUnitOfWork, id string) bool {
	t.Helper()
	var n int
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE id = ?`, id).Scan(&n)
	})
	require.NoError(t, err)
	return n == 1
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertRun, "run-1")
		return err
	})
	require.NoError(t, err)

	assert.True(t, runExists(t, uow, "run-1"), "run should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertRun, "run-2"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	assert.False(t, runExists(t, uow, "run-2"), "run should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertRun, "run-3")
			panic("boom")
		})
	})

	assert.False(t, runExists(t, uow, "run-3"), "run should not exist after panic rollback")
}
