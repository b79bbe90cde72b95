package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecomposeSeconds(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int64
		expected HMS
	}{
		{
			name:     "should decompose 3661 seconds into 1h 1m 1s",
			seconds:  3661,
			expected: HMS{Hours: 1, Minutes: 1, Seconds: 1},
		},
		{
			name:     "should decompose zero into all-zero components",
			seconds:  0,
			expected: HMS{},
		},
		{
			name:     "should decompose exact hours without remainder",
			seconds:  7200,
			expected: HMS{Hours: 2},
		},
		{
			name:     "should decompose sub-minute values",
			seconds:  59,
			expected: HMS{Seconds: 59},
		},
		{
			name:     "should clamp negative input to zero",
			seconds:  -90,
			expected: HMS{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecomposeSeconds(tt.seconds))
		})
	}
}

func TestDecomposeMinutes(t *testing.T) {
	tests := []struct {
		name     string
		minutes  int64
		expected HMS
	}{
		{
			name:     "should decompose 125 minutes into 2h 5m",
			minutes:  125,
			expected: HMS{Hours: 2, Minutes: 5},
		},
		{
			name:     "should decompose zero into all-zero components",
			minutes:  0,
			expected: HMS{},
		},
		{
			name:     "should decompose exact hours",
			minutes:  180,
			expected: HMS{Hours: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecomposeMinutes(tt.minutes))
		})
	}
}

func TestDecomposeDuration(t *testing.T) {
	assert.Equal(t, HMS{Hours: 2, Minutes: 45}, DecomposeDuration(2*time.Hour+45*time.Minute))
	assert.Equal(t, HMS{Hours: 3, Minutes: 20}, DecomposeDuration(3*time.Hour+20*time.Minute))
}

func TestHMS_String(t *testing.T) {
	assert.Equal(t, "2h 45m", HMS{Hours: 2, Minutes: 45}.String())
	assert.Equal(t, "1h 1m 1s", HMS{Hours: 1, Minutes: 1, Seconds: 1}.String())
	assert.Equal(t, "0h 0m", HMS{}.String())
}

func TestHMS_IsZero(t *testing.T) {
	assert.True(t, HMS{}.IsZero())
	assert.False(t, HMS{Minutes: 1}.IsZero())
}
