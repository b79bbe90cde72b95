package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchclock/internal/errors"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	dbPath := filepath.Join(t.TempDir(), "punchclock.db")

	repo, err := New(dbPath, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		repo.Close()
	})

	return repo
}

func testSpan(identity string, day, enterHour, leaveHour int) *Span {
	enter := time.Date(2025, time.September, day, enterHour, 0, 0, 0, time.UTC)
	leave := time.Date(2025, time.September, day, leaveHour, 0, 0, 0, time.UTC)
	return &Span{
		Identity:  identity,
		Date:      FormatDateForDB(2025, time.September, day),
		EnterTime: enter,
		LeaveTime: leave,
	}
}

func TestInsertSpan(t *testing.T) {
	repo := setupTestDB(t)

	span := testSpan("chat-42", 10, 11, 15)
	err := repo.InsertSpan(context.Background(), span)
	require.NoError(t, err)
	assert.Greater(t, span.ID, int64(0))

	spans, err := repo.ListSpansByMonth(context.Background(), "chat-42", 2025, time.September)
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, span.ID, spans[0].ID)
	assert.Equal(t, span.EnterTime.Unix(), spans[0].EnterTime.Unix())
	assert.Equal(t, span.LeaveTime.Unix(), spans[0].LeaveTime.Unix())
}

func TestListSpansByMonth(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	// Insert out of order; listing must come back sorted by date then enter.
	require.NoError(t, repo.InsertSpan(ctx, testSpan("chat-42", 12, 9, 12)))
	require.NoError(t, repo.InsertSpan(ctx, testSpan("chat-42", 10, 14, 18)))
	require.NoError(t, repo.InsertSpan(ctx, testSpan("chat-42", 10, 9, 12)))

	// Different identity and different month must not leak in.
	require.NoError(t, repo.InsertSpan(ctx, testSpan("chat-7", 10, 9, 12)))
	other := testSpan("chat-42", 10, 9, 12)
	other.Date = "2025-08-10"
	require.NoError(t, repo.InsertSpan(ctx, other))

	spans, err := repo.ListSpansByMonth(ctx, "chat-42", 2025, time.September)
	require.NoError(t, err)
	require.Len(t, spans, 3)
	assert.Equal(t, "2025-09-10", spans[0].Date)
	assert.Equal(t, 9, spans[0].EnterTime.Hour())
	assert.Equal(t, "2025-09-10", spans[1].Date)
	assert.Equal(t, 14, spans[1].EnterTime.Hour())
	assert.Equal(t, "2025-09-12", spans[2].Date)
}

func TestListSpansByMonth_Empty(t *testing.T) {
	repo := setupTestDB(t)

	spans, err := repo.ListSpansByMonth(context.Background(), "chat-42", 2025, time.September)
	require.NoError(t, err)
	assert.Empty(t, spans)
}

func TestDeleteSpansByDate(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.InsertSpan(ctx, testSpan("chat-42", 10, 9, 12)))
	require.NoError(t, repo.InsertSpan(ctx, testSpan("chat-42", 10, 14, 18)))
	require.NoError(t, repo.InsertSpan(ctx, testSpan("chat-42", 11, 9, 12)))

	removed, err := repo.DeleteSpansByDate(ctx, "chat-42", "2025-09-10")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	// The other date survives.
	spans, err := repo.ListSpansByMonth(ctx, "chat-42", 2025, time.September)
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, "2025-09-11", spans[0].Date)

	// Deleting an empty date is not an error.
	removed, err = repo.DeleteSpansByDate(ctx, "chat-42", "2025-09-10")
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestPendingEntryLifecycle(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	// Empty slot reads as not found.
	_, err := repo.GetPendingEntry(ctx, "chat-42")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	enter := time.Date(2025, time.September, 10, 18, 30, 0, 0, time.UTC)
	err = repo.InsertPendingEntry(ctx, &PendingEntry{Identity: "chat-42", EnterTime: enter})
	require.NoError(t, err)

	entry, err := repo.GetPendingEntry(ctx, "chat-42")
	require.NoError(t, err)
	assert.Equal(t, "chat-42", entry.Identity)
	assert.Equal(t, enter.Unix(), entry.EnterTime.Unix())

	// The primary key rejects a second pending entry.
	err = repo.InsertPendingEntry(ctx, &PendingEntry{Identity: "chat-42", EnterTime: enter.Add(time.Hour)})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypePersistence))

	// Another identity has its own slot.
	err = repo.InsertPendingEntry(ctx, &PendingEntry{Identity: "chat-7", EnterTime: enter})
	require.NoError(t, err)

	entry, err = repo.GetPendingEntry(ctx, "chat-7")
	require.NoError(t, err)
	assert.Equal(t, "chat-7", entry.Identity)
}

func TestCommitPendingSpan(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	enter := time.Date(2025, time.September, 10, 18, 30, 0, 0, time.UTC)
	leave := time.Date(2025, time.September, 10, 21, 15, 0, 0, time.UTC)
	require.NoError(t, repo.InsertPendingEntry(ctx, &PendingEntry{Identity: "chat-42", EnterTime: enter}))

	span := &Span{
		Identity:  "chat-42",
		Date:      FormatDateForDB(2025, time.September, 10),
		EnterTime: enter,
		LeaveTime: leave,
	}
	err := repo.CommitPendingSpan(ctx, span)
	require.NoError(t, err)
	assert.Greater(t, span.ID, int64(0))

	// The pending slot is drained and the span is durable.
	_, err = repo.GetPendingEntry(ctx, "chat-42")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	spans, err := repo.ListSpansByMonth(ctx, "chat-42", 2025, time.September)
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, leave.Unix(), spans[0].LeaveTime.Unix())
}

func TestCommitPendingSpan_NoPending(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	span := testSpan("chat-42", 10, 11, 15)
	err := repo.CommitPendingSpan(ctx, span)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	// The rolled-back transaction must not have written the span.
	spans, err := repo.ListSpansByMonth(ctx, "chat-42", 2025, time.September)
	require.NoError(t, err)
	assert.Empty(t, spans)
}
