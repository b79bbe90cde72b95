package services

import (
	"context"
	"fmt"

	"punchclock/internal/domain"
	"punchclock/internal/errors"
	"punchclock/internal/parser"
	"punchclock/internal/store"
)

// executorServiceImpl implements the ExecutorService interface
type executorServiceImpl struct {
	spans   store.SpanStore
	summary SummaryService
}

// NewExecutorService creates a new ExecutorService instance
func NewExecutorService(spans store.SpanStore, summary SummaryService) ExecutorService {
	return &executorServiceImpl{
		spans:   spans,
		summary: summary,
	}
}

// Execute applies an intent against the span store and describes what
// changed. Store and summary errors pass through untouched so the caller
// can turn them into user-facing feedback.
func (e *executorServiceImpl) Execute(ctx context.Context, identity domain.Identity, intent parser.Intent) (*ExecutionResult, error) {
	switch it := intent.(type) {
	case parser.EnterIntent:
		return e.executeEnter(ctx, identity, it)
	case parser.LeaveIntent:
		return e.executeLeave(ctx, identity, it)
	case parser.EnterLeaveIntent:
		return e.executeEnterLeave(ctx, identity, it)
	case parser.ClearIntent:
		return e.executeClear(ctx, identity, it)
	case parser.SummaryIntent:
		return e.executeSummary(ctx, identity, it)
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported intent %T", intent), nil)
	}
}

func (e *executorServiceImpl) executeEnter(ctx context.Context, identity domain.Identity, intent parser.EnterIntent) (*ExecutionResult, error) {
	if err := e.spans.BeginPending(ctx, identity, intent.Instant); err != nil {
		return nil, err
	}
	return &ExecutionResult{
		Outcome:  OutcomeEntered,
		Pending:  &domain.PendingEntry{Identity: identity, Enter: intent.Instant},
		Feedback: fmt.Sprintf("Entered at %s.", intent.Instant.Format("2006-01-02 15:04")),
	}, nil
}

func (e *executorServiceImpl) executeLeave(ctx context.Context, identity domain.Identity, intent parser.LeaveIntent) (*ExecutionResult, error) {
	span, err := e.spans.CompletePending(ctx, identity, intent.Instant)
	if err != nil {
		return nil, err
	}
	return &ExecutionResult{
		Outcome:  OutcomeLeft,
		Span:     span,
		Feedback: spanFeedback(span),
	}, nil
}

func (e *executorServiceImpl) executeEnterLeave(ctx context.Context, identity domain.Identity, intent parser.EnterLeaveIntent) (*ExecutionResult, error) {
	span, err := e.spans.CommitSpan(ctx, identity, intent.Enter, intent.Leave)
	if err != nil {
		return nil, err
	}
	return &ExecutionResult{
		Outcome:  OutcomeCommitted,
		Span:     span,
		Feedback: spanFeedback(span),
	}, nil
}

func (e *executorServiceImpl) executeClear(ctx context.Context, identity domain.Identity, intent parser.ClearIntent) (*ExecutionResult, error) {
	removed, err := e.spans.ClearDay(ctx, identity, intent.Date)
	if err != nil {
		return nil, err
	}
	feedback := fmt.Sprintf("Removed %d spans on %s.", removed, intent.Date)
	if removed == 1 {
		feedback = fmt.Sprintf("Removed 1 span on %s.", intent.Date)
	}
	return &ExecutionResult{
		Outcome:  OutcomeCleared,
		Removed:  removed,
		Feedback: feedback,
	}, nil
}

func (e *executorServiceImpl) executeSummary(ctx context.Context, identity domain.Identity, intent parser.SummaryIntent) (*ExecutionResult, error) {
	summary, err := e.summary.Build(ctx, identity, intent.Year, intent.Month)
	if err != nil {
		return nil, err
	}
	return &ExecutionResult{
		Outcome: OutcomeSummary,
		Summary: summary,
		Format:  intent.Format,
		Feedback: fmt.Sprintf("Summary for %s %d: %d spans, %s total.",
			intent.Month, intent.Year, len(summary.Rows), summary.Total),
	}, nil
}

// spanFeedback describes a committed span: its date, both clock times and
// the resulting duration.
func spanFeedback(span *domain.Span) string {
	return fmt.Sprintf("Recorded %s %s-%s (%s).",
		span.Date,
		span.Enter.Format("15:04"),
		span.Leave.Format("15:04"),
		domain.DecomposeDuration(span.Duration()))
}
