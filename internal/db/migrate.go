package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent and the
// list is append-only.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form in sqlite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS work_logs (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		date           TEXT NOT NULL,
		annotator_name TEXT NOT NULL,
		project_name   TEXT NOT NULL,
		task_type      TEXT NOT NULL,
		images_done    INTEGER NOT NULL DEFAULT 0 CHECK(images_done >= 0),
		hours_spent    REAL NOT NULL DEFAULT 0 CHECK(hours_spent >= 0),
		status         TEXT NOT NULL,
		challenges     TEXT NOT NULL DEFAULT '',
		suggestions    TEXT NOT NULL DEFAULT '',
		extra_notes    TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_logs_date ON work_logs(date)`,
	`CREATE INDEX IF NOT EXISTS idx_work_logs_annotator ON work_logs(annotator_name)`,
	`CREATE INDEX IF NOT EXISTS idx_work_logs_project ON work_logs(project_name)`,
	`CREATE INDEX IF NOT EXISTS idx_work_logs_date_annotator ON work_logs(date, annotator_name)`,

	// Entries are append-only.
	`CREATE TRIGGER IF NOT EXISTS work_logs_no_update
		BEFORE UPDATE ON work_logs
		BEGIN SELECT RAISE(ABORT, 'work_logs entries are immutable'); END`,
	`CREATE TRIGGER IF NOT EXISTS work_logs_no_delete
		BEFORE DELETE ON work_logs
		BEGIN SELECT RAISE(ABORT, 'work_logs entries are immutable'); END`,
}
