package parser

import (
	"time"

	"punchclock/internal/domain"
)

// DocFormat selects the render target for a summary. It is forwarded to the
// rendering layer untouched.
type DocFormat string

const (
	FormatDefault DocFormat = "text"
	FormatPDF     DocFormat = "pdf"
)

// Intent is a fully-resolved typed command, ready for execution. All
// temporal arguments have been qualified against the reference instant.
type Intent interface {
	intent()
}

// EnterIntent opens a pending entry at the given instant.
type EnterIntent struct {
	Instant time.Time
}

// LeaveIntent closes the pending entry at the given instant.
type LeaveIntent struct {
	Instant time.Time
}

// EnterLeaveIntent commits a complete span directly, bypassing the
// pending-entry mechanism.
type EnterLeaveIntent struct {
	Enter time.Time
	Leave time.Time
}

// ClearIntent removes all spans on one date.
type ClearIntent struct {
	Date domain.Date
}

// SummaryIntent requests a month summary in the given format.
type SummaryIntent struct {
	Year   int
	Month  time.Month
	Format DocFormat
}

func (EnterIntent) intent()      {}
func (LeaveIntent) intent()      {}
func (EnterLeaveIntent) intent() {}
func (ClearIntent) intent()      {}
func (SummaryIntent) intent()    {}
