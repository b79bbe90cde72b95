package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"punchclock/internal/errors"
	"punchclock/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations. All times are
// stored as RFC3339 strings and dates as YYYY-MM-DD strings.
type Repository interface {
	// Span operations
	InsertSpan(ctx context.Context, span *Span) error
	ListSpansByMonth(ctx context.Context, identity string, year int, month time.Month) ([]*Span, error)
	DeleteSpansByDate(ctx context.Context, identity string, date string) (int64, error)

	// Pending entry operations
	GetPendingEntry(ctx context.Context, identity string) (*PendingEntry, error)
	InsertPendingEntry(ctx context.Context, entry *PendingEntry) error

	// CommitPendingSpan atomically deletes the pending entry and inserts the
	// completed span in one transaction.
	CommitPendingSpan(ctx context.Context, span *Span) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New opens the database at dbPath and brings its schema up to date. A nil
// logger falls back to slog.Default().
func New(dbPath string, logger *slog.Logger) (*SQLiteRepository, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewPersistenceError("open database", err)
	}

	if err := migrations.RunMigrations(context.Background(), db, logger); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// InsertSpan inserts a committed span
func (r *SQLiteRepository) InsertSpan(ctx context.Context, span *Span) error {
	query := `
	INSERT INTO spans (identity, date, enter_time, leave_time)
	VALUES (?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		span.Identity, span.Date, FormatTimeForDB(span.EnterTime), FormatTimeForDB(span.LeaveTime))
	if err != nil {
		return err
	}

	span.ID = id
	return nil
}

// ListSpansByMonth retrieves one identity's spans for a month, ordered by
// date then enter time
func (r *SQLiteRepository) ListSpansByMonth(ctx context.Context, identity string, year int, month time.Month) ([]*Span, error) {
	query := `
	SELECT id, identity, date, enter_time, leave_time
	FROM spans
	WHERE identity = ? AND date LIKE ?
	ORDER BY date ASC, enter_time ASC`

	prefix := FormatMonthPrefixForDB(year, month) + "%"
	return QueryMultiple(ctx, r.db, query, ScanSpans, "spans", identity, prefix)
}

// DeleteSpansByDate removes all spans on one date and reports how many
// were removed. Zero is a valid, non-error result.
func (r *SQLiteRepository) DeleteSpansByDate(ctx context.Context, identity string, date string) (int64, error) {
	query := `DELETE FROM spans WHERE identity = ? AND date = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, identity, date)
}

// GetPendingEntry retrieves the pending entry for an identity, or a
// not-found error when the slot is empty
func (r *SQLiteRepository) GetPendingEntry(ctx context.Context, identity string) (*PendingEntry, error) {
	query := `SELECT identity, enter_time FROM pending_entries WHERE identity = ?`
	return QuerySingle(ctx, r.db, query, ScanPendingEntry, "pending entry", identity, identity)
}

// InsertPendingEntry creates the pending entry for an identity. The primary
// key rejects a second insert while one exists.
func (r *SQLiteRepository) InsertPendingEntry(ctx context.Context, entry *PendingEntry) error {
	query := `INSERT INTO pending_entries (identity, enter_time) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, entry.Identity, FormatTimeForDB(entry.EnterTime))
	if err != nil {
		return HandleDatabaseError("insert pending entry", err)
	}
	return nil
}

// CommitPendingSpan deletes the pending entry and inserts the span in one
// transaction, so a failed write never leaves half the hand-off applied.
func (r *SQLiteRepository) CommitPendingSpan(ctx context.Context, span *Span) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM pending_entries WHERE identity = ?`, span.Identity)
	if err != nil {
		return HandleDatabaseError("delete pending entry", err)
	}
	if err := ValidateRowsAffected(result, "pending entry", span.Identity); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO spans (identity, date, enter_time, leave_time) VALUES (?, ?, ?, ?)`,
		span.Identity, span.Date, FormatTimeForDB(span.EnterTime), FormatTimeForDB(span.LeaveTime))
	if err != nil {
		return HandleDatabaseError("insert span", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return HandleDatabaseError("get last insert ID", err)
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit transaction", err)
	}

	span.ID = id
	return nil
}
