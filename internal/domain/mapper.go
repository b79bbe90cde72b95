package domain

import (
	"punchclock/internal/repository/sqlite"
)

// SpanMapper handles conversion between domain and database Span models.
type SpanMapper struct{}

// NewSpanMapper creates a new SpanMapper instance.
func NewSpanMapper() *SpanMapper {
	return &SpanMapper{}
}

// ToDatabase converts a domain Span to a database Span.
func (m *SpanMapper) ToDatabase(span Span) sqlite.Span {
	return sqlite.Span{
		ID:        span.ID,
		Identity:  string(span.Identity),
		Date:      sqlite.FormatDateForDB(span.Date.Year, span.Date.Month, span.Date.Day),
		EnterTime: span.Enter,
		LeaveTime: span.Leave,
	}
}

// FromDatabase converts a database Span to a domain Span. The date is
// re-derived from the enter instant, which the commit invariant keeps equal
// to the stored date column.
func (m *SpanMapper) FromDatabase(dbSpan sqlite.Span) Span {
	return Span{
		ID:       dbSpan.ID,
		Identity: Identity(dbSpan.Identity),
		Date:     DateOf(dbSpan.EnterTime),
		Enter:    dbSpan.EnterTime,
		Leave:    dbSpan.LeaveTime,
	}
}

// FromDatabaseSlice converts a slice of database Spans to domain Spans.
func (m *SpanMapper) FromDatabaseSlice(dbSpans []*sqlite.Span) []Span {
	spans := make([]Span, len(dbSpans))
	for i, dbSpan := range dbSpans {
		spans[i] = m.FromDatabase(*dbSpan)
	}
	return spans
}

// PendingEntryMapper handles conversion between domain and database
// PendingEntry models.
type PendingEntryMapper struct{}

// NewPendingEntryMapper creates a new PendingEntryMapper instance.
func NewPendingEntryMapper() *PendingEntryMapper {
	return &PendingEntryMapper{}
}

// ToDatabase converts a domain PendingEntry to a database PendingEntry.
func (m *PendingEntryMapper) ToDatabase(entry PendingEntry) sqlite.PendingEntry {
	return sqlite.PendingEntry{
		Identity:  string(entry.Identity),
		EnterTime: entry.Enter,
	}
}

// FromDatabase converts a database PendingEntry to a domain PendingEntry.
func (m *PendingEntryMapper) FromDatabase(dbEntry sqlite.PendingEntry) PendingEntry {
	return PendingEntry{
		Identity: Identity(dbEntry.Identity),
		Enter:    dbEntry.EnterTime,
	}
}

// Mapper aggregates all model mappers.
type Mapper struct {
	Span         *SpanMapper
	PendingEntry *PendingEntryMapper
}

// NewMapper creates a new Mapper instance with all model mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Span:         NewSpanMapper(),
		PendingEntry: NewPendingEntryMapper(),
	}
}
