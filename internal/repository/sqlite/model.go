package sqlite

import "time"

// Span represents a committed work span row.
type Span struct {
	ID        int64
	Identity  string
	Date      string // YYYY-MM-DD, the calendar day the span belongs to
	EnterTime time.Time
	LeaveTime time.Time
}

// PendingEntry represents the single open enter slot for an identity.
// The identity column is the primary key, so the database itself enforces
// the at-most-one invariant.
type PendingEntry struct {
	Identity  string
	EnterTime time.Time
}
