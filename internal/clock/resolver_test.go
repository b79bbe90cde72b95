package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchclock/internal/domain"
	"punchclock/internal/errors"
)

// 2025-09-10 is a Wednesday.
var wednesday = time.Date(2025, time.September, 10, 13, 0, 0, 0, time.UTC)

func TestResolver_ResolveTime(t *testing.T) {
	resolver := NewResolver(time.UTC)

	tests := []struct {
		name     string
		hour     int
		minute   int
		expected time.Time
		wantCode string
	}{
		{
			name:     "should place a past clock time on today",
			hour:     11,
			minute:   40,
			expected: time.Date(2025, time.September, 10, 11, 40, 0, 0, time.UTC),
		},
		{
			name:     "should place a future clock time on today as well",
			hour:     18,
			minute:   30,
			expected: time.Date(2025, time.September, 10, 18, 30, 0, 0, time.UTC),
		},
		{
			name:     "should reject hour 24",
			hour:     24,
			minute:   0,
			wantCode: errors.CodeInvalidTime,
		},
		{
			name:     "should reject minute 60",
			hour:     10,
			minute:   60,
			wantCode: errors.CodeInvalidTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instant, err := resolver.ResolveTime(wednesday, tt.hour, tt.minute)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, instant)
			}
		})
	}
}

func TestResolver_ResolveWeekday(t *testing.T) {
	resolver := NewResolver(time.UTC)

	tests := []struct {
		name     string
		weekday  time.Weekday
		expected domain.Date
	}{
		{
			name:     "should resolve the same weekday to today",
			weekday:  time.Wednesday,
			expected: domain.Date{Year: 2025, Month: time.September, Day: 10},
		},
		{
			name:     "should walk back two days to Monday",
			weekday:  time.Monday,
			expected: domain.Date{Year: 2025, Month: time.September, Day: 8},
		},
		{
			name:     "should walk back six days to Thursday, never forward",
			weekday:  time.Thursday,
			expected: domain.Date{Year: 2025, Month: time.September, Day: 4},
		},
		{
			name:     "should cross a month boundary walking back",
			weekday:  time.Sunday,
			expected: domain.Date{Year: 2025, Month: time.September, Day: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date := resolver.ResolveWeekday(wednesday, tt.weekday)
			assert.Equal(t, tt.expected, date)
			assert.False(t, domain.DateOf(wednesday).Before(date), "resolved date must not be in the future")
		})
	}
}

func TestResolver_ResolveWeekday_CrossesMonth(t *testing.T) {
	resolver := NewResolver(time.UTC)
	// 2025-09-01 is a Monday; Saturday walks back into August.
	monday := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC)

	date := resolver.ResolveWeekday(monday, time.Saturday)
	assert.Equal(t, domain.Date{Year: 2025, Month: time.August, Day: 30}, date)
}

func TestResolver_ResolveDayOfMonth(t *testing.T) {
	resolver := NewResolver(time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		day      int
		expected domain.Date
		wantCode string
	}{
		{
			name:     "should resolve an earlier day within the current month",
			now:      wednesday,
			day:      8,
			expected: domain.Date{Year: 2025, Month: time.September, Day: 8},
		},
		{
			name:     "should resolve today's day to today",
			now:      wednesday,
			day:      10,
			expected: domain.Date{Year: 2025, Month: time.September, Day: 10},
		},
		{
			name:     "should fall back to the previous month for a future day",
			now:      wednesday,
			day:      24,
			expected: domain.Date{Year: 2025, Month: time.August, Day: 24},
		},
		{
			name:     "should skip previous months lacking the day",
			now:      time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC),
			day:      31,
			expected: domain.Date{Year: 2025, Month: time.January, Day: 31},
		},
		{
			name:     "should cross a year boundary walking back",
			now:      time.Date(2025, time.January, 10, 10, 0, 0, 0, time.UTC),
			day:      20,
			expected: domain.Date{Year: 2024, Month: time.December, Day: 20},
		},
		{
			name:     "should reject day zero",
			now:      wednesday,
			day:      0,
			wantCode: errors.CodeInvalidDay,
		},
		{
			name:     "should reject a day beyond the current month's length",
			now:      wednesday,
			day:      31,
			wantCode: errors.CodeInvalidDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := resolver.ResolveDayOfMonth(tt.now, tt.day)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, date)
			}
		})
	}
}

func TestResolver_ResolveMonth(t *testing.T) {
	resolver := NewResolver(time.UTC)

	tests := []struct {
		name         string
		now          time.Time
		month        time.Month
		expectedYear int
	}{
		{
			name:         "should keep the current year for a past month",
			now:          wednesday,
			month:        time.July,
			expectedYear: 2025,
		},
		{
			name:         "should keep the current year for the current month",
			now:          wednesday,
			month:        time.September,
			expectedYear: 2025,
		},
		{
			name:         "should use the previous year for a future month",
			now:          wednesday,
			month:        time.December,
			expectedYear: 2024,
		},
		{
			name:         "should resolve december asked in January to last year",
			now:          time.Date(2026, time.January, 5, 8, 0, 0, 0, time.UTC),
			month:        time.December,
			expectedYear: 2025,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month := resolver.ResolveMonth(tt.now, tt.month)
			assert.Equal(t, tt.expectedYear, year)
			assert.Equal(t, tt.month, month)
		})
	}
}

func TestResolver_Normalize(t *testing.T) {
	resolver := NewResolver(time.UTC)
	noisy := time.Date(2025, time.September, 10, 13, 7, 42, 999, time.UTC)

	normalized := resolver.Normalize(noisy)
	assert.Equal(t, time.Date(2025, time.September, 10, 13, 7, 0, 0, time.UTC), normalized)
}

func TestResolver_TimeZoneIsExplicit(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	resolver := NewResolver(madrid)

	// 22:30 UTC on Sept 10 is already Sept 11 in Madrid.
	utcEvening := time.Date(2025, time.September, 10, 22, 30, 0, 0, time.UTC)
	instant, err := resolver.ResolveTime(utcEvening, 9, 0)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.September, 11, 9, 0, 0, 0, madrid), instant)
}

func TestNewResolver_NilLocationDefaultsToUTC(t *testing.T) {
	resolver := NewResolver(nil)
	assert.Equal(t, time.UTC, resolver.Location())
}
