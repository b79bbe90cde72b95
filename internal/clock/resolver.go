// Package clock resolves partial time and day expressions against a
// reference "now", producing fully-qualified instants in a configured
// time zone.
package clock

import (
	"time"

	"punchclock/internal/domain"
	"punchclock/internal/errors"
	"punchclock/internal/validation"
)

// Resolver infers full dates and times from partial command input relative
// to a reference instant. The time zone is injected, never ambient state.
type Resolver struct {
	loc       *time.Location
	validator *validation.Validator
}

// NewResolver creates a resolver for the given time zone.
func NewResolver(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return &Resolver{
		loc:       loc,
		validator: validation.NewValidator(),
	}
}

// Location returns the resolver's time zone.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Now returns the current instant in the resolver's zone, truncated to the
// minute. Instants carry no seconds.
func (r *Resolver) Now() time.Time {
	now := time.Now().In(r.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, r.loc)
}

// Normalize moves an instant into the resolver's zone and drops seconds.
func (r *Resolver) Normalize(t time.Time) time.Time {
	t = t.In(r.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, r.loc)
}

// ResolveTime qualifies a bare hour/minute against the reference instant.
// Commands register events that already happened, so the time always lands
// on now's calendar day, whether the clock time is past or still ahead.
func (r *Resolver) ResolveTime(now time.Time, hour, minute int) (time.Time, error) {
	if !r.validator.IsValidClockTime(hour, minute) {
		return time.Time{}, errors.NewInvalidTimeError(hour, minute)
	}
	now = now.In(r.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, r.loc), nil
}

// At places a clock time on an already-resolved date.
func (r *Resolver) At(date domain.Date, hour, minute int) (time.Time, error) {
	if !r.validator.IsValidClockTime(hour, minute) {
		return time.Time{}, errors.NewInvalidTimeError(hour, minute)
	}
	return time.Date(date.Year, date.Month, date.Day, hour, minute, 0, 0, r.loc), nil
}

// ResolveWeekday walks backward from now (inclusive of today) to the most
// recent date with the given weekday. The result is never in the future.
func (r *Resolver) ResolveWeekday(now time.Time, weekday time.Weekday) domain.Date {
	now = now.In(r.loc)
	delta := int(now.Weekday() - weekday)
	if delta < 0 {
		delta += 7
	}
	return domain.DateOf(now.AddDate(0, 0, -delta))
}

// ResolveDayOfMonth resolves a bare day-of-month number to the most recent
// date with that day that is on or before now. The day is validated against
// the current month's length; out-of-range values are a parse error.
func (r *Resolver) ResolveDayOfMonth(now time.Time, day int) (domain.Date, error) {
	now = now.In(r.loc)
	if !r.validator.IsValidDayOfMonth(now.Year(), now.Month(), day) {
		return domain.Date{}, errors.NewInvalidDayError(day, validation.DaysInMonth(now.Year(), now.Month()))
	}
	year, month := now.Year(), now.Month()
	if day > now.Day() {
		// That day has not happened yet this month; use the previous
		// month that actually has it.
		for {
			month--
			if month < time.January {
				month = time.December
				year--
			}
			if day <= validation.DaysInMonth(year, month) {
				break
			}
		}
	}
	return domain.Date{Year: year, Month: month, Day: day}, nil
}

// ResolveMonth resolves a bare month name to the most recent year in which
// that month has already started relative to now. Asking for december in
// January yields the previous year's December.
func (r *Resolver) ResolveMonth(now time.Time, month time.Month) (int, time.Month) {
	now = now.In(r.loc)
	year := now.Year()
	if month > now.Month() {
		year--
	}
	return year, month
}
