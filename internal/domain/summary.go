package domain

import (
	"time"
)

// SummaryRow is one span of a month summary, with its duration already
// decomposed for the presentation layer.
type SummaryRow struct {
	Date     Date      `json:"date"`
	Enter    time.Time `json:"enter"`
	Leave    time.Time `json:"leave"`
	Duration HMS       `json:"duration"`
}

// MonthSummary aggregates one identity's committed spans for a month.
// It is derived on demand and never persisted. Rows are ordered by date
// ascending, then by enter instant within a date.
type MonthSummary struct {
	Identity Identity     `json:"identity"`
	Year     int          `json:"year"`
	Month    time.Month   `json:"month"`
	Rows     []SummaryRow `json:"rows"`
	Total    HMS          `json:"total"`
}
