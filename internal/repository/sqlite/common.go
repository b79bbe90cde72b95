package sqlite

import (
	"context"
	"database/sql"

	"punchclock/internal/errors"
)

// HandleDatabaseError wraps a driver failure as a persistence error
func HandleDatabaseError(operation string, err error) error {
	return errors.NewPersistenceError(operation, err)
}

// ValidateRowsAffected turns a zero-row write into a not-found error for the
// given entity
func ValidateRowsAffected(result sql.Result, entity string, id string) error {
	n, err := result.RowsAffected()
	switch {
	case err != nil:
		return errors.NewPersistenceError("get rows affected", err)
	case n == 0:
		return errors.NewNotFoundError(entity, id)
	}
	return nil
}

// ExecuteWithLastInsertID runs an insert and returns the new row id
func ExecuteWithLastInsertID(ctx context.Context, db *sql.DB, query string, args ...any) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.NewPersistenceError("execute query", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, errors.NewPersistenceError("get last insert ID", err)
	}
	return id, nil
}

// ExecuteWithRowsAffected runs a statement and returns how many rows it
// touched
func ExecuteWithRowsAffected(ctx context.Context, db *sql.DB, query string, args ...any) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.NewPersistenceError("execute query", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewPersistenceError("get rows affected", err)
	}
	return n, nil
}

// QuerySingle runs a single-row query, mapping the empty result to a
// not-found error for the given entity
func QuerySingle[T any](ctx context.Context, db *sql.DB, query string, scan func(Scanner) (*T, error), entity string, id string, args ...any) (*T, error) {
	result, err := scan(db.QueryRowContext(ctx, query, args...))
	switch {
	case err == sql.ErrNoRows:
		return nil, errors.NewNotFoundError(entity, id)
	case err != nil:
		return nil, errors.NewPersistenceError("scan "+entity, err)
	}
	return result, nil
}

// QueryMultiple runs a multi-row query and scans every row. An empty result
// is a nil slice, not an error
func QueryMultiple[T any](ctx context.Context, db *sql.DB, query string, scan func(Rows) ([]*T, error), entity string, args ...any) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewPersistenceError("query "+entity, err)
	}
	defer rows.Close()

	results, err := scan(rows)
	if err != nil {
		return nil, errors.NewPersistenceError("scan "+entity, err)
	}
	return results, nil
}
