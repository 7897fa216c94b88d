package postgres

import (
	"context"
	"database/sql"
	"time"
)

// DBExecutor - общий интерфейс *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if t.Valid {
		return &t.Time
	}
	return nil
}

func nullIntPtr(v sql.NullInt64) *int {
	if v.Valid {
		id := int(v.Int64)
		return &id
	}
	return nil
}

func intPtrArg(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
