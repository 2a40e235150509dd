// Package calendar builds the month grid shown by the date picker popup and
// owns the canonical text form of a date.
//
// Months are zero-based (0 = January) throughout this package to match the
// grid cells handed to the renderer. The grid is always 6 rows of 7 days,
// Sunday first, and is assembled by the caller from three independent
// pieces: PreviousMonthDays, CurrentMonthDays and NextMonthDays.
package calendar

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// GridCells is the number of day cells in a rendered month (6 rows of 7).
const GridCells = 42

// CellType records which month a grid cell belongs to relative to the panel.
type CellType int

const (
	Previous CellType = iota
	Current
	Next
)

func (t CellType) String() string {
	switch t {
	case Previous:
		return "previous"
	case Current:
		return "current"
	case Next:
		return "next"
	default:
		return fmt.Sprintf("CellType(%d)", int(t))
	}
}

// DateCellItem is one day in the grid. Month is zero-based.
type DateCellItem struct {
	Year  int
	Month int
	Date  int
	Type  CellType
}

// CalendarDate converts the cell into a 1-based calendar date.
func (c DateCellItem) CalendarDate() datetime.CalendarDate {
	return datetime.CalendarDate{Year: c.Year, Month: datetime.Month(c.Month + 1), Day: c.Date}
}

// Time returns midnight of the cell's day in loc.
func (c DateCellItem) Time(loc *time.Location) time.Time {
	return ToTime(c.CalendarDate(), loc)
}

// DaysInMonth returns the number of days in the zero-based month of year.
func DaysInMonth(year, month int) int {
	return datetime.DaysInMonth(year, datetime.Month(month+1))
}

// CurrentMonthDays returns cells for days 1..totalDays of the month.
func CurrentMonthDays(year, month, totalDays int) []DateCellItem {
	days := make([]DateCellItem, 0, totalDays)
	for d := 1; d <= totalDays; d++ {
		days = append(days, DateCellItem{Year: year, Month: month, Date: d, Type: Current})
	}
	return days
}

// PreviousMonthDays returns the trailing days of the month before
// (year, month) that precede day 1 in a Sunday-first week. The result is
// empty when the month starts on a Sunday.
func PreviousMonthDays(year, month int) []DateCellItem {
	lead := FirstWeekday(year, month)
	if lead == 0 {
		return []DateCellItem{}
	}
	py, pm := StepMonth(year, month, -1)
	total := DaysInMonth(py, pm)
	days := make([]DateCellItem, 0, lead)
	for d := total - lead + 1; d <= total; d++ {
		days = append(days, DateCellItem{Year: py, Month: pm, Date: d, Type: Previous})
	}
	return days
}

// NextMonthDays returns the leading days of the month after (year, month)
// needed to pad the grid to GridCells.
func NextMonthDays(year, month int) []DateCellItem {
	used := FirstWeekday(year, month) + DaysInMonth(year, month)
	pad := GridCells - used
	ny, nm := StepMonth(year, month, 1)
	days := make([]DateCellItem, 0, pad)
	for d := 1; d <= pad; d++ {
		days = append(days, DateCellItem{Year: ny, Month: nm, Date: d, Type: Next})
	}
	return days
}

// FirstWeekday returns the weekday index (Sunday = 0) of day 1 of the month.
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// StepMonth moves a zero-based (year, month) pair by delta months, wrapping
// across year boundaries.
func StepMonth(year, month, delta int) (int, int) {
	total := year*12 + month + delta
	y := total / 12
	m := total % 12
	if m < 0 {
		m += 12
		y--
	}
	return y, m
}

// MonthLabel renders the panel heading, e.g. "May 2023".
func MonthLabel(year, month int) string {
	return fmt.Sprintf("%s %d", time.Month(month+1), year)
}
