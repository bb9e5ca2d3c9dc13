package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func insertRow(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO work_logs (date, annotator_name, project_name, task_type, images_done, hours_spent, status, created_at)
		VALUES ('2024-01-15', 'Alice', 'P1', 'QA', 5, 1.0, 'Completed', '2024-01-15T09:00:00.000000')`)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesWorkLogsTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='work_logs'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "work_logs", name)
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_work_logs_date",
		"idx_work_logs_annotator",
		"idx_work_logs_project",
		"idx_work_logs_date_annotator",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_IDsIncrease(t *testing.T) {
	db := openTestDB(t)

	first := insertRow(t, db)
	second := insertRow(t, db)
	assert.Greater(t, second, first)
}

func TestMigrate_RejectsNegativeCounts(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO work_logs (date, annotator_name, project_name, task_type, images_done, hours_spent, status, created_at)
		VALUES ('2024-01-15', 'Alice', 'P1', 'QA', -1, 0, 'Completed', '2024-01-15T09:00:00.000000')`)
	assert.Error(t, err)
}

func TestMigrate_EntriesImmutable(t *testing.T) {
	db := openTestDB(t)
	id := insertRow(t, db)

	_, err := db.Exec(`UPDATE work_logs SET images_done = 99 WHERE id = ?`, id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "immutable")

	_, err = db.Exec(`DELETE FROM work_logs WHERE id = ?`, id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "immutable")
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/dir/annotationhq.db"
	db, err := OpenDB(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := OpenDB(path)
	require.NoError(t, err)
	require.NoError(t, reopened.Close())
}
