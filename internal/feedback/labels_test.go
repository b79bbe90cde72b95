package feedback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestForLanguage(t *testing.T) {
	en := ForLanguage(LanguageEN)
	assert.Equal(t, "Enter", en.Enter)
	assert.Equal(t, "Leave", en.Leave)

	es := ForLanguage(LanguageES)
	assert.Equal(t, "Entrada", es.Enter)
	assert.Equal(t, "Salida", es.Leave)
	assert.Equal(t, "Duración", es.Duration)

	// Unknown tags fall back to English.
	assert.Equal(t, en, ForLanguage(Language("fr")))
}

func TestMonthName(t *testing.T) {
	en := ForLanguage(LanguageEN)
	es := ForLanguage(LanguageES)

	assert.Equal(t, "September", en.MonthName(time.September))
	assert.Equal(t, "Septiembre", es.MonthName(time.September))
	assert.Equal(t, "January", en.MonthName(time.January))
	assert.Equal(t, "Diciembre", es.MonthName(time.December))

	assert.Equal(t, "", en.MonthName(time.Month(0)))
	assert.Equal(t, "", en.MonthName(time.Month(13)))
}
