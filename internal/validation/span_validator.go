package validation

import (
	"fmt"
	"time"

	"punchclock/internal/domain"
	"punchclock/internal/errors"
)

// SpanValidator validates span instants before they are committed
type SpanValidator struct {
	validator *Validator
}

// NewSpanValidator creates a new span validator
func NewSpanValidator() *SpanValidator {
	return &SpanValidator{
		validator: NewValidator(),
	}
}

// ValidateSpanForCommit checks the commit invariants: the leave instant must
// be strictly after the enter instant, and both must fall on the same
// calendar date. A violation is reported, never silently corrected.
func (sv *SpanValidator) ValidateSpanForCommit(enter, leave time.Time) error {
	if !leave.After(enter) {
		return errors.NewLeaveBeforeEnterError(fmt.Sprintf(
			"leave time %s is not after enter time %s",
			leave.Format("15:04"), enter.Format("15:04"),
		))
	}
	if domain.DateOf(enter) != domain.DateOf(leave) {
		// Spans never cross midnight; a next-day leave needs an explicit day.
		return errors.NewLeaveBeforeEnterError(fmt.Sprintf(
			"enter %s and leave %s fall on different days; spans must stay within one day",
			enter.Format("2006-01-02 15:04"), leave.Format("2006-01-02 15:04"),
		))
	}
	return nil
}

// ValidateIdentity checks that an identity key is usable
func (sv *SpanValidator) ValidateIdentity(identity domain.Identity) error {
	if !sv.validator.IsNonEmptyIdentity(string(identity)) {
		return errors.NewValidationError("identity must not be empty", nil)
	}
	return nil
}
