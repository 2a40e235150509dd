package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"cloudeng.io/datetime"
)

// Layout is the canonical text form used to render and parse dates.
const Layout = "2006-01-02"

// ErrInvalidDate reports text that is not a real date in canonical form.
var ErrInvalidDate = errors.New("invalid date")

var canonicalShape = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// Format renders t in canonical form.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse reads canonical text into midnight of that day in loc. Text that
// does not have the YYYY-MM-DD shape, or names a day that does not exist,
// fails with ErrInvalidDate.
func Parse(text string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if !canonicalShape.MatchString(text) {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, text)
	}
	t, err := time.ParseInLocation(Layout, text, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return t, nil
}

// FromTime returns the calendar date of t in its own location.
func FromTime(t time.Time) datetime.CalendarDate {
	y, m, d := t.Date()
	return datetime.CalendarDate{Year: y, Month: datetime.Month(m), Day: d}
}

// ToTime returns midnight of cd in loc. Out-of-range days and months are
// normalised the way time.Date does.
func ToTime(cd datetime.CalendarDate, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, loc)
}

// Midnight truncates t to the start of its day in loc.
func Midnight(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return ToTime(FromTime(t.In(loc)), loc)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return FromTime(a) == FromTime(b)
}
