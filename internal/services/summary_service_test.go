package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchclock/internal/domain"
	"punchclock/internal/repository/sqlite"
	"punchclock/internal/store"
)

func setupSummaryService(t *testing.T) (SummaryService, store.SpanStore) {
	repo, err := sqlite.New(filepath.Join(t.TempDir(), "punchclock.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	spans := store.New(repo)
	return NewSummaryService(spans), spans
}

func TestSummaryService_Build(t *testing.T) {
	service, spans := setupSummaryService(t)
	ctx := context.Background()

	day10 := time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC)
	day12 := time.Date(2025, time.September, 12, 0, 0, 0, 0, time.UTC)

	// 3h20m on the 10th, 2h45m on the 12th.
	_, err := spans.CommitSpan(ctx, testIdentity,
		day10.Add(11*time.Hour+40*time.Minute), day10.Add(15*time.Hour))
	require.NoError(t, err)
	_, err = spans.CommitSpan(ctx, testIdentity,
		day12.Add(18*time.Hour+30*time.Minute), day12.Add(21*time.Hour+15*time.Minute))
	require.NoError(t, err)

	summary, err := service.Build(ctx, testIdentity, 2025, time.September)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, summary.Identity)
	assert.Equal(t, 2025, summary.Year)
	assert.Equal(t, time.September, summary.Month)
	require.Len(t, summary.Rows, 2)

	assert.Equal(t, domain.Date{Year: 2025, Month: time.September, Day: 10}, summary.Rows[0].Date)
	assert.Equal(t, domain.HMS{Hours: 3, Minutes: 20}, summary.Rows[0].Duration)
	assert.Equal(t, domain.Date{Year: 2025, Month: time.September, Day: 12}, summary.Rows[1].Date)
	assert.Equal(t, domain.HMS{Hours: 2, Minutes: 45}, summary.Rows[1].Duration)

	assert.Equal(t, domain.HMS{Hours: 6, Minutes: 5}, summary.Total)
}

func TestSummaryService_Build_EmptyMonth(t *testing.T) {
	service, _ := setupSummaryService(t)

	summary, err := service.Build(context.Background(), testIdentity, 2025, time.July)
	require.NoError(t, err)
	assert.Empty(t, summary.Rows)
	assert.True(t, summary.Total.IsZero())
}

func TestSummaryService_Build_ScopedToIdentity(t *testing.T) {
	service, spans := setupSummaryService(t)
	ctx := context.Background()

	day := time.Date(2025, time.September, 10, 9, 0, 0, 0, time.UTC)
	_, err := spans.CommitSpan(ctx, domain.Identity("chat-7"), day, day.Add(3*time.Hour))
	require.NoError(t, err)

	summary, err := service.Build(ctx, testIdentity, 2025, time.September)
	require.NoError(t, err)
	assert.Empty(t, summary.Rows)
}
