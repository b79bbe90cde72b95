// Package api is the facade the transports call: one entry point turning
// (identity, command text, now) into an outcome plus feedback text.
package api

import (
	"context"
	"log/slog"
	"time"

	"punchclock/internal/clock"
	"punchclock/internal/domain"
	"punchclock/internal/errors"
	"punchclock/internal/parser"
	"punchclock/internal/services"
	"punchclock/internal/store"
)

// Result is the outcome of one command. Recognized commands always carry
// non-empty feedback, whether they succeeded or were rejected.
type Result struct {
	OK        bool                      `json:"ok"`
	Feedback  string                    `json:"feedback"`
	ErrorCode string                    `json:"error_code,omitempty"`
	Execution *services.ExecutionResult `json:"execution,omitempty"`
}

// API defines the command and summary operations exposed to transports.
type API interface {
	// Execute parses and executes one command for an identity relative to
	// the supplied instant. Parse, state and persistence errors are
	// recovered into the Result; the returned error is reserved for
	// failures outside the command taxonomy.
	Execute(ctx context.Context, identity domain.Identity, text string, now time.Time) (*Result, error)

	// BuildSummary builds a month summary directly, bypassing command text.
	BuildSummary(ctx context.Context, identity domain.Identity, year int, month time.Month) (*domain.MonthSummary, error)

	// Now returns the current instant in the configured zone.
	Now() time.Time
}

type apiImpl struct {
	resolver *clock.Resolver
	parser   *parser.Parser
	executor services.ExecutorService
	summary  services.SummaryService
	logger   *slog.Logger
}

// New creates an API instance wired to the given span store.
func New(spans store.SpanStore, resolver *clock.Resolver, logger *slog.Logger) API {
	if logger == nil {
		logger = slog.Default()
	}
	summary := services.NewSummaryService(spans)
	return &apiImpl{
		resolver: resolver,
		parser:   parser.NewParser(resolver),
		executor: services.NewExecutorService(spans, summary),
		summary:  summary,
		logger:   logger,
	}
}

func (a *apiImpl) Now() time.Time {
	return a.resolver.Now()
}

func (a *apiImpl) Execute(ctx context.Context, identity domain.Identity, text string, now time.Time) (*Result, error) {
	intent, err := a.parser.Parse(text, now)
	if err != nil {
		return a.recover(identity, text, err)
	}

	execution, err := a.executor.Execute(ctx, identity, intent)
	if err != nil {
		return a.recover(identity, text, err)
	}

	return &Result{
		OK:        true,
		Feedback:  execution.Feedback,
		Execution: execution,
	}, nil
}

func (a *apiImpl) BuildSummary(ctx context.Context, identity domain.Identity, year int, month time.Month) (*domain.MonthSummary, error) {
	return a.summary.Build(ctx, identity, year, month)
}

// recover turns a command error into user-facing feedback. Errors outside
// the taxonomy pass through to the transport untouched.
func (a *apiImpl) recover(identity domain.Identity, text string, err error) (*Result, error) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		return nil, err
	}

	if errors.ShouldLogError(err) {
		a.logger.Error("command failed",
			slog.String("identity", string(identity)),
			slog.String("command", text),
			slog.String("code", appErr.Code),
			slog.Any("error", err),
		)
	}

	return &Result{
		OK:        false,
		Feedback:  errors.GetUserMessage(err),
		ErrorCode: appErr.Code,
	}, nil
}
