package db_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/alexanderramin/annotationhq/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*db.SQLiteUnitOfWork, *sql.DB) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database), database
}

func insertEntry(ctx context.Context, tx db.DBTX, annotator string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO work_logs (date, annotator_name, project_name, task_type, images_done, hours_spent, status, created_at)
		VALUES ('2024-01-15', ?, 'P1', 'QA', 1, 0, 'Completed', '2024-01-15T09:00:00.000000')`, annotator)
	return err
}

func countEntries(t *testing.T, database *sql.DB, annotator string) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM work_logs WHERE annotator_name = ?`, annotator).Scan(&n))
	return n
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow, database := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertEntry(ctx, tx, "Alice")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countEntries(t, database, "Alice"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow, database := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertEntry(ctx, tx, "Bob"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.Equal(t, 0, countEntries(t, database, "Bob"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow, database := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertEntry(ctx, tx, "Carol")
			panic("boom")
		})
	})
	assert.Equal(t, 0, countEntries(t, database, "Carol"))
}
