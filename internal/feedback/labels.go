// Package feedback holds the language-specific words used by report
// rendering. It is a pure lookup table keyed by a language tag; nothing in
// the core branches on display language.
package feedback

import "time"

// Language tags the word table to use for a report.
type Language string

const (
	LanguageEN Language = "en"
	LanguageES Language = "es"
)

// Labels holds the report words for one language.
type Labels struct {
	Date     string
	Enter    string
	Leave    string
	Duration string
	Total    string
	Months   [12]string
}

var labelsEN = Labels{
	Date:     "Date",
	Enter:    "Enter",
	Leave:    "Leave",
	Duration: "Duration",
	Total:    "Total",
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
}

var labelsES = Labels{
	Date:     "Fecha",
	Enter:    "Entrada",
	Leave:    "Salida",
	Duration: "Duración",
	Total:    "Total",
	Months: [12]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	},
}

// ForLanguage returns the word table for a language tag. Unknown tags fall
// back to English.
func ForLanguage(lang Language) Labels {
	switch lang {
	case LanguageES:
		return labelsES
	default:
		return labelsEN
	}
}

// MonthName returns the localized name of a month.
func (l Labels) MonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return l.Months[month-1]
}
