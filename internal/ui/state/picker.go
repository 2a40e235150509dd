package state

import (
	"strings"
	"time"

	"github.com/atomicstack/datepop/internal/calendar"
	"github.com/atomicstack/datepop/internal/logging/events"
)

// ChangeFunc receives each committed date.
type ChangeFunc func(time.Time)

// Options tune a Picker. The zero value is usable.
type Options struct {
	Bounds calendar.Bounds
	// Location dates are normalised into; nil means time.Local.
	Location *time.Location
	// Now supplies "today" for cell flags; nil means time.Now.
	Now func() time.Time
	// StrictRange makes ClickCell ignore cells outside Bounds.
	StrictRange bool
}

// Cell is a grid day plus the flags the renderer styles it by.
type Cell struct {
	calendar.DateCellItem
	Selected     bool
	Today        bool
	OutsideMonth bool
	OutsideRange bool
}

// Picker is the date picker controller: popup visibility, the input text,
// the date derived from it, and the month shown in the popup. The selected
// date belongs to the caller and only changes through SetSelected.
type Picker struct {
	selected time.Time
	onChange ChangeFunc
	bounds   calendar.Bounds
	loc      *time.Location
	now      func() time.Time
	strict   bool

	open       bool
	text       string
	candidate  time.Time
	parsed     bool
	valid      bool
	panelYear  int
	panelMonth int
}

// NewPicker returns a closed picker showing selected.
func NewPicker(selected time.Time, onChange ChangeFunc, opts Options) *Picker {
	p := &Picker{
		onChange: onChange,
		bounds:   opts.Bounds,
		loc:      opts.Location,
		now:      opts.Now,
		strict:   opts.StrictRange,
	}
	if p.loc == nil {
		p.loc = time.Local
	}
	if p.now == nil {
		p.now = time.Now
	}
	p.selected = calendar.ToTime(calendar.FromTime(selected), p.loc)
	p.panelYear, p.panelMonth = p.selected.Year(), int(p.selected.Month())-1
	p.setText(calendar.Format(p.selected))
	return p
}

// SetSelected records an external change of the selected date and resets
// the input text to its canonical form. The calendar day is taken from t in
// its own location.
func (p *Picker) SetSelected(t time.Time) {
	p.selected = calendar.ToTime(calendar.FromTime(t), p.loc)
	p.setText(calendar.Format(p.selected))
}

// SetOnChange replaces the commit callback. Later commits, including ones
// triggered by an already registered outside-click listener, use fn.
func (p *Picker) SetOnChange(fn ChangeFunc) {
	p.onChange = fn
}

// SetBounds replaces the allowed range and re-derives validity.
func (p *Picker) SetBounds(b calendar.Bounds) {
	p.bounds = b
	p.derive()
}

// Edit replaces the input text. Selection and visibility are untouched.
func (p *Picker) Edit(text string) {
	p.setText(strings.TrimSpace(text))
	events.Picker.Edit(p.text, p.valid)
}

// Focus opens the popup.
func (p *Picker) Focus() {
	if p.open {
		return
	}
	p.open = true
	events.Picker.Open(p.text)
}

// Dismiss is the commit path taken on Enter or on a click outside the
// control. Unparseable text reverts to the selected date, out-of-range text
// is left as typed, and a valid date is committed. The popup closes in
// every case.
func (p *Picker) Dismiss() {
	switch {
	case !p.parsed:
		canonical := calendar.Format(p.selected)
		events.Picker.Reject(p.text, events.RejectUnparseable)
		if p.text != canonical {
			events.Picker.Revert(p.text, canonical)
		}
		p.setText(canonical)
	case !p.valid:
		events.Picker.Reject(p.text, events.RejectOutOfRange)
	default:
		p.commit(p.candidate, "text")
	}
	p.close()
}

// Idle reports whether an outside click has nothing to do: the popup is
// closed and the text still shows the selected date.
func (p *Picker) Idle() bool {
	return !p.open && p.text == calendar.Format(p.selected)
}

// ClickCell commits the cell's date without consulting the input text.
// Cells outside the range still commit unless StrictRange is set.
func (p *Picker) ClickCell(cell calendar.DateCellItem) {
	date := cell.Time(p.loc)
	outside := !p.bounds.Contains(date)
	events.Picker.CellClick(calendar.Format(date), cell.Type.String(), outside)
	if outside && p.strict {
		events.Picker.Reject(calendar.Format(date), events.RejectStrictCell)
		return
	}
	p.commit(date, "cell")
	p.close()
}

// PrevYear steps the panel back one year.
func (p *Picker) PrevYear() { p.navigate("prev-year", -12) }

// NextYear steps the panel forward one year.
func (p *Picker) NextYear() { p.navigate("next-year", 12) }

// PrevMonth steps the panel back one month.
func (p *Picker) PrevMonth() { p.navigate("prev-month", -1) }

// NextMonth steps the panel forward one month.
func (p *Picker) NextMonth() { p.navigate("next-month", 1) }

func (p *Picker) navigate(action string, delta int) {
	p.panelYear, p.panelMonth = calendar.StepMonth(p.panelYear, p.panelMonth, delta)
	events.Picker.Navigate(action, p.panelYear, p.panelMonth)
}

// Open reports whether the popup is visible.
func (p *Picker) Open() bool { return p.open }

// Text returns the current input text.
func (p *Picker) Text() string { return p.text }

// Valid reports whether the text parses to a date inside the range.
func (p *Picker) Valid() bool { return p.valid }

// Candidate returns the date parsed from the text, in range or not.
func (p *Picker) Candidate() (time.Time, bool) { return p.candidate, p.parsed }

// Selected returns the caller's date as last supplied.
func (p *Picker) Selected() time.Time { return p.selected }

// Bounds returns the allowed range.
func (p *Picker) Bounds() calendar.Bounds { return p.bounds }

// Panel returns the displayed year and zero-based month.
func (p *Picker) Panel() (int, int) { return p.panelYear, p.panelMonth }

// PanelLabel returns the popup heading, e.g. "May 2023".
func (p *Picker) PanelLabel() string { return calendar.MonthLabel(p.panelYear, p.panelMonth) }

// Grid returns the 42 cells of the panel month with their render flags.
func (p *Picker) Grid() []Cell {
	y, m := p.panelYear, p.panelMonth
	items := make([]calendar.DateCellItem, 0, calendar.GridCells)
	items = append(items, calendar.PreviousMonthDays(y, m)...)
	items = append(items, calendar.CurrentMonthDays(y, m, calendar.DaysInMonth(y, m))...)
	items = append(items, calendar.NextMonthDays(y, m)...)

	today := calendar.Midnight(p.now(), p.loc)
	cells := make([]Cell, len(items))
	for i, item := range items {
		date := item.Time(p.loc)
		cells[i] = Cell{
			DateCellItem: item,
			Selected:     calendar.SameDay(date, p.selected),
			Today:        calendar.SameDay(date, today),
			OutsideMonth: item.Type != calendar.Current,
			OutsideRange: !p.bounds.Contains(date),
		}
	}
	return cells
}

func (p *Picker) setText(text string) {
	p.text = text
	p.derive()
	if p.parsed {
		p.panelYear, p.panelMonth = p.candidate.Year(), int(p.candidate.Month())-1
	}
}

func (p *Picker) derive() {
	t, err := calendar.Parse(p.text, p.loc)
	if err != nil {
		p.candidate, p.parsed, p.valid = time.Time{}, false, false
		return
	}
	p.candidate, p.parsed = t, true
	p.valid = p.bounds.Contains(t)
}

func (p *Picker) commit(date time.Time, source string) {
	events.Picker.Commit(calendar.Format(date), source)
	if p.onChange != nil {
		p.onChange(date)
	}
}

func (p *Picker) close() {
	if !p.open {
		return
	}
	p.open = false
	events.Picker.Close(p.text)
}
