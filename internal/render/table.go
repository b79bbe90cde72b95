// Package render turns month summaries into presentation output. The core
// supplies durations as decomposed components, so rendering never re-derives
// rounding.
package render

import (
	"fmt"
	"strings"

	"punchclock/internal/domain"
	"punchclock/internal/feedback"
)

// TableRenderer renders a month summary as a plain-text table using the
// word table of one language.
type TableRenderer struct {
	labels feedback.Labels
}

// NewTableRenderer creates a renderer for the given language.
func NewTableRenderer(lang feedback.Language) *TableRenderer {
	return &TableRenderer{labels: feedback.ForLanguage(lang)}
}

// Render formats the summary rows and grand total.
func (r *TableRenderer) Render(summary *domain.MonthSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %d - %s\n\n", r.labels.MonthName(summary.Month), summary.Year, summary.Identity)
	fmt.Fprintf(&b, "%-12s %-7s %-7s %s\n", r.labels.Date, r.labels.Enter, r.labels.Leave, r.labels.Duration)

	for _, row := range summary.Rows {
		fmt.Fprintf(&b, "%-12s %-7s %-7s %s\n",
			row.Date,
			row.Enter.Format("15:04"),
			row.Leave.Format("15:04"),
			row.Duration,
		)
	}

	fmt.Fprintf(&b, "\n%s: %s\n", r.labels.Total, summary.Total)
	return b.String()
}
