package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/annotationhq/internal/db"
	"github.com/alexanderramin/annotationhq/internal/domain"
)

const workLogColumns = `id, date, annotator_name, project_name, task_type, images_done, hours_spent,
	status, challenges, suggestions, extra_notes, created_at`

// SQLiteWorkLogRepo implements WorkLogRepo on the work_logs table.
type SQLiteWorkLogRepo struct {
	db db.DBTX
}

// NewSQLiteWorkLogRepo accepts a *sql.DB or a *sql.Tx.
func NewSQLiteWorkLogRepo(db db.DBTX) *SQLiteWorkLogRepo {
	return &SQLiteWorkLogRepo{db: db}
}

// Create inserts e and fills in ID. CreatedAt is stamped here unless the
// caller already set it.
func (r *SQLiteWorkLogRepo) Create(ctx context.Context, e *domain.WorkLogEntry) error {
	if e.CreatedAt == "" {
		e.CreatedAt = nowLocal()
	}
	query := `INSERT INTO work_logs (date, annotator_name, project_name, task_type, images_done, hours_spent,
		status, challenges, suggestions, extra_notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		e.Date,
		e.AnnotatorName,
		e.ProjectName,
		e.TaskType,
		e.ImagesDone,
		e.HoursSpent,
		e.Status,
		e.Challenges,
		e.Suggestions,
		e.ExtraNotes,
		e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting work log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading work log id: %w", err)
	}
	e.ID = id
	return nil
}

func (r *SQLiteWorkLogRepo) GetByID(ctx context.Context, id int64) (*domain.WorkLogEntry, error) {
	query := `SELECT ` + workLogColumns + ` FROM work_logs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	e, err := scanWorkLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("work log %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work log: %w", err)
	}
	return e, nil
}

func (r *SQLiteWorkLogRepo) List(ctx context.Context, f domain.Filter) ([]*domain.WorkLogEntry, error) {
	where, args := filterWhere(f)
	query := `SELECT ` + workLogColumns + ` FROM work_logs` + where + ` ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing work logs: %w", err)
	}
	defer rows.Close()
	return scanWorkLogs(rows)
}

func (r *SQLiteWorkLogRepo) ListFlagged(ctx context.Context, f domain.Filter) ([]*domain.WorkLogEntry, error) {
	where, args := filterWhere(f)
	query := `SELECT ` + workLogColumns + ` FROM work_logs` + where +
		` AND (challenges != '' OR suggestions != '') ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing flagged work logs: %w", err)
	}
	defer rows.Close()
	return scanWorkLogs(rows)
}

func (r *SQLiteWorkLogRepo) DistinctProjects(ctx context.Context, date string) ([]string, error) {
	return r.distinct(ctx, "project_name", date, "ASC")
}

func (r *SQLiteWorkLogRepo) DistinctAnnotators(ctx context.Context, date string) ([]string, error) {
	return r.distinct(ctx, "annotator_name", date, "ASC")
}

func (r *SQLiteWorkLogRepo) DistinctDates(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "date", "", "DESC")
}

// distinct lists the distinct values of col. col and dir are never user input.
func (r *SQLiteWorkLogRepo) distinct(ctx context.Context, col, date, dir string) ([]string, error) {
	query := `SELECT DISTINCT ` + col + ` FROM work_logs`
	var args []any
	if date != "" {
		query += ` WHERE date = ?`
		args = append(args, date)
	}
	query += ` ORDER BY ` + col + ` ` + dir

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing distinct %s: %w", col, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning distinct %s: %w", col, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating distinct %s: %w", col, err)
	}
	return values, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkLog(row rowScanner) (*domain.WorkLogEntry, error) {
	var e domain.WorkLogEntry
	err := row.Scan(
		&e.ID, &e.Date, &e.AnnotatorName, &e.ProjectName, &e.TaskType, &e.ImagesDone, &e.HoursSpent,
		&e.Status, &e.Challenges, &e.Suggestions, &e.ExtraNotes, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanWorkLogs(rows *sql.Rows) ([]*domain.WorkLogEntry, error) {
	var entries []*domain.WorkLogEntry
	for rows.Next() {
		e, err := scanWorkLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning work log row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work logs: %w", err)
	}
	return entries, nil
}
