package validation

import (
	"strings"
	"time"
)

// Validator provides common validation utilities for clock values
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyIdentity checks that an identity key is not blank
func (v *Validator) IsNonEmptyIdentity(identity string) bool {
	return strings.TrimSpace(identity) != ""
}

// IsValidClockTime checks that an hour/minute pair is a valid time of day
func (v *Validator) IsValidClockTime(hour, minute int) bool {
	return hour >= 0 && hour < 24 && minute >= 0 && minute < 60
}

// IsValidMonth checks that a month number is within 1..12
func (v *Validator) IsValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// IsValidDayOfMonth checks that a day falls within the given month's length
func (v *Validator) IsValidDayOfMonth(year int, month time.Month, day int) bool {
	return day >= 1 && day <= DaysInMonth(year, month)
}

// IsValidYear checks that a year is within the range the clock accepts.
// Four-digit years only; anything else is treated as a parse ambiguity.
func (v *Validator) IsValidYear(year int) bool {
	return year >= 1000 && year <= 9999
}

// DaysInMonth returns the number of days in the given month, accounting for
// leap years.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
