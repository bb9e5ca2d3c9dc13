package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/annotationhq/internal/domain"
)

// ErrNotFound is wrapped by lookups that match no row.
var ErrNotFound = errors.New("not found")

// WorkLogRepo is the record store for work-log entries. There is
// no update or delete: entries are immutable after creation.
type WorkLogRepo interface {
	Create(ctx context.Context, e *domain.WorkLogEntry) error
	GetByID(ctx context.Context, id int64) (*domain.WorkLogEntry, error)
	// List returns entries matching f, newest first.
	List(ctx context.Context, f domain.Filter) ([]*domain.WorkLogEntry, error)
	// ListFlagged is List restricted to entries with challenges or suggestions.
	ListFlagged(ctx context.Context, f domain.Filter) ([]*domain.WorkLogEntry, error)
	// DistinctProjects and DistinctAnnotators sort ascending; an empty date
	// spans every date.
	DistinctProjects(ctx context.Context, date string) ([]string, error)
	DistinctAnnotators(ctx context.Context, date string) ([]string, error)
	// DistinctDates sorts newest first.
	DistinctDates(ctx context.Context) ([]string, error)
}
