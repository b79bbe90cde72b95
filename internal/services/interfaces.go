package services

import (
	"context"
	"time"

	"punchclock/internal/domain"
	"punchclock/internal/parser"
)

// Outcome names what a successfully executed command changed.
type Outcome string

const (
	OutcomeEntered   Outcome = "entered"
	OutcomeLeft      Outcome = "left"
	OutcomeCommitted Outcome = "committed"
	OutcomeCleared   Outcome = "cleared"
	OutcomeSummary   Outcome = "summary"
)

// ExecutionResult is the structured result of one executed command, plus the
// human-readable feedback describing exactly what changed. Feedback is never
// empty for a recognized command.
type ExecutionResult struct {
	Outcome  Outcome              `json:"outcome"`
	Span     *domain.Span         `json:"span,omitempty"`
	Pending  *domain.PendingEntry `json:"pending,omitempty"`
	Removed  int                  `json:"removed,omitempty"`
	Summary  *domain.MonthSummary `json:"summary,omitempty"`
	Format   parser.DocFormat     `json:"format,omitempty"`
	Feedback string               `json:"feedback"`
}

// ExecutorService applies parsed intents against the span store for one
// identity.
type ExecutorService interface {
	Execute(ctx context.Context, identity domain.Identity, intent parser.Intent) (*ExecutionResult, error)
}

// SummaryService aggregates a month's committed spans into the structured
// form the rendering layer consumes.
type SummaryService interface {
	Build(ctx context.Context, identity domain.Identity, year int, month time.Month) (*domain.MonthSummary, error)
}
