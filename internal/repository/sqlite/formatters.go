package sqlite

import (
	"fmt"
	"time"
)

// FormatTimeForDB formats a time.Time value as RFC3339 string for consistent database storage
func FormatTimeForDB(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// FormatDateForDB formats a calendar date as YYYY-MM-DD for database storage.
// Lexicographic order on this shape matches chronological order, which the
// month queries rely on.
func FormatDateForDB(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// FormatMonthPrefixForDB formats a year/month as the YYYY-MM- prefix shared
// by every date in that month.
func FormatMonthPrefixForDB(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d-", year, int(month))
}
