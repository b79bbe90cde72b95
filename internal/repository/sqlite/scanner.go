package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanSpan scans a single span from a database row
func ScanSpan(scanner Scanner) (*Span, error) {
	span := &Span{}
	var enterTime, leaveTime string

	err := scanner.Scan(
		&span.ID,
		&span.Identity,
		&span.Date,
		&enterTime,
		&leaveTime,
	)
	if err != nil {
		return nil, err
	}

	if span.EnterTime, err = ParseTimeFromDB(enterTime); err != nil {
		return nil, err
	}
	if span.LeaveTime, err = ParseTimeFromDB(leaveTime); err != nil {
		return nil, err
	}

	return span, nil
}

// ScanSpans scans multiple spans from database rows
func ScanSpans(rows Rows) ([]*Span, error) {
	var spans []*Span
	for rows.Next() {
		span, err := ScanSpan(rows)
		if err != nil {
			return nil, err
		}
		spans = append(spans, span)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return spans, nil
}

// ScanPendingEntry scans a single pending entry from a database row
func ScanPendingEntry(scanner Scanner) (*PendingEntry, error) {
	entry := &PendingEntry{}
	var enterTime string

	err := scanner.Scan(&entry.Identity, &enterTime)
	if err != nil {
		return nil, err
	}

	if entry.EnterTime, err = ParseTimeFromDB(enterTime); err != nil {
		return nil, err
	}

	return entry, nil
}
