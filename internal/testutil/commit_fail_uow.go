package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/annotationhq/internal/db"
)

// CommitFailUoW runs fn inside a real transaction, then rolls back and
// returns Err in place of the commit. fn sees its own writes; nothing
// reaches the database.
type CommitFailUoW struct {
	DB  *sql.DB
	Err error

	// Ran is set once fn has returned without error.
	Ran bool
}

func (u *CommitFailUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	u.Ran = true
	return fmt.Errorf("committing transaction: %w", u.Err)
}
