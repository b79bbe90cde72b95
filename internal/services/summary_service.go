package services

import (
	"context"
	"time"

	"punchclock/internal/domain"
	"punchclock/internal/store"
)

// summaryServiceImpl implements the SummaryService interface
type summaryServiceImpl struct {
	spans store.SpanStore
}

// NewSummaryService creates a new SummaryService instance
func NewSummaryService(spans store.SpanStore) SummaryService {
	return &summaryServiceImpl{spans: spans}
}

// Build aggregates one identity's committed spans for a month. Rows come
// back from the store already ordered by date then enter instant; the total
// is the sum of all row durations, decomposed into components.
func (s *summaryServiceImpl) Build(ctx context.Context, identity domain.Identity, year int, month time.Month) (*domain.MonthSummary, error) {
	spans, err := s.spans.ListMonth(ctx, identity, year, month)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.SummaryRow, len(spans))
	var totalSeconds int64
	for i, span := range spans {
		seconds := int64(span.Duration() / time.Second)
		rows[i] = domain.SummaryRow{
			Date:     span.Date,
			Enter:    span.Enter,
			Leave:    span.Leave,
			Duration: domain.DecomposeSeconds(seconds),
		}
		totalSeconds += seconds
	}

	return &domain.MonthSummary{
		Identity: identity,
		Year:     year,
		Month:    month,
		Rows:     rows,
		Total:    domain.DecomposeSeconds(totalSeconds),
	}, nil
}
