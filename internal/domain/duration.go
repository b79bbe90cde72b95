package domain

import (
	"fmt"
	"time"
)

// HMS is a non-negative duration decomposed into hour, minute and second
// components. Reporting consumes components rather than a raw scalar so the
// presentation layer never re-derives rounding.
type HMS struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// DecomposeSeconds splits a second count into hour/minute/second components
// using floor division and remainder. Negative inputs are clamped to zero;
// the span invariant guarantees they never occur.
func DecomposeSeconds(seconds int64) HMS {
	if seconds < 0 {
		seconds = 0
	}
	return HMS{
		Hours:   int(seconds / 3600),
		Minutes: int(seconds % 3600 / 60),
		Seconds: int(seconds % 60),
	}
}

// DecomposeMinutes splits a minute count into hour/minute components.
func DecomposeMinutes(minutes int64) HMS {
	if minutes < 0 {
		minutes = 0
	}
	return HMS{
		Hours:   int(minutes / 60),
		Minutes: int(minutes % 60),
	}
}

// DecomposeDuration decomposes a time.Duration into components.
func DecomposeDuration(d time.Duration) HMS {
	return DecomposeSeconds(int64(d / time.Second))
}

// String formats the components as "2h 45m" or "2h 45m 10s" when seconds
// are present.
func (h HMS) String() string {
	if h.Seconds != 0 {
		return fmt.Sprintf("%dh %dm %ds", h.Hours, h.Minutes, h.Seconds)
	}
	return fmt.Sprintf("%dh %dm", h.Hours, h.Minutes)
}

// IsZero reports whether all components are zero.
func (h HMS) IsZero() bool {
	return h.Hours == 0 && h.Minutes == 0 && h.Seconds == 0
}
