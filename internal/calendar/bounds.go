package calendar

import (
	"fmt"
	"time"
)

// Bounds is an optional inclusive date range. A nil side is unbounded.
type Bounds struct {
	Min *time.Time
	Max *time.Time
}

// NewBounds builds Bounds from optional endpoints; zero times are unbounded.
func NewBounds(lo, hi time.Time) Bounds {
	var b Bounds
	if !lo.IsZero() {
		b.Min = &lo
	}
	if !hi.IsZero() {
		b.Max = &hi
	}
	return b
}

// Contains reports whether t is on or after Min and on or before Max,
// compared by calendar day.
func (b Bounds) Contains(t time.Time) bool {
	day := dayKey(t)
	if b.Min != nil && day < dayKey(*b.Min) {
		return false
	}
	if b.Max != nil && day > dayKey(*b.Max) {
		return false
	}
	return true
}

// IsSet reports whether either side is bounded.
func (b Bounds) IsSet() bool {
	return b.Min != nil || b.Max != nil
}

func (b Bounds) String() string {
	lo, hi := "-inf", "+inf"
	if b.Min != nil {
		lo = Format(*b.Min)
	}
	if b.Max != nil {
		hi = Format(*b.Max)
	}
	return fmt.Sprintf("[%s, %s]", lo, hi)
}

func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
