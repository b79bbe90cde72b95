package domain

import (
	"fmt"
	"time"
)

// Identity is the opaque key identifying whose clock is being tracked.
// It is derived from the chat context (user or group) by the transport;
// the core never interprets it.
type Identity string

// Date identifies one calendar day in the process time zone.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// DateOf extracts the calendar date of an instant.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Span represents a committed, immutable enter/leave instant pair for one
// continuous work period on a given date. Invariant: Enter < Leave, both on
// the same calendar date as Date.
type Span struct {
	ID       int64     `json:"id"`
	Identity Identity  `json:"identity"`
	Date     Date      `json:"date"`
	Enter    time.Time `json:"enter"`
	Leave    time.Time `json:"leave"`
}

// NewSpan creates a span for the given identity and instants. The date is
// derived from the enter instant.
func NewSpan(identity Identity, enter, leave time.Time) Span {
	return Span{
		Identity: identity,
		Date:     DateOf(enter),
		Enter:    enter,
		Leave:    leave,
	}
}

// Duration returns the length of the span.
func (s Span) Duration() time.Duration {
	return s.Leave.Sub(s.Enter)
}

// IsValid checks that the span satisfies its invariants.
func (s Span) IsValid() bool {
	if s.Identity == "" {
		return false
	}
	if !s.Leave.After(s.Enter) {
		return false
	}
	return DateOf(s.Enter) == s.Date && DateOf(s.Leave) == s.Date
}

// PendingEntry is an open, uncommitted enter awaiting a matching leave.
// At most one exists per identity at any time.
type PendingEntry struct {
	Identity Identity  `json:"identity"`
	Enter    time.Time `json:"enter"`
}
