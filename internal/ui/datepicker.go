package ui

import (
	"time"

	"github.com/atomicstack/datepop/internal/calendar"
	"github.com/atomicstack/datepop/internal/logging/events"
	"github.com/atomicstack/datepop/internal/ui/pointer"
	uistate "github.com/atomicstack/datepop/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Layout of the control relative to its origin. Row 0 is the input line;
// the popup box starts on row 1 when open.
const (
	inputWidth   = 24
	cellWidth    = 3 // two digits and a separator
	gridWidth    = 7*cellWidth - 1
	popupWidth   = gridWidth + 4 // border and one column of padding per side
	popupHeight  = 2 + 6 + 2     // header, weekdays, six weeks, border
	contentLeft  = 2
	contentTop   = 1
	headerRow    = 0
	weekdayRow   = 1
	firstWeekRow = 2
	labelWidth   = gridWidth - 6
)

// Header button columns inside the popup content.
const (
	colPrevYear  = 0
	colPrevMonth = 2
	colNextMonth = gridWidth - 3
	colNextYear  = gridWidth - 1
)

// DatePicker is the terminal rendering of a state.Picker: an input line and
// a popup calendar placed at an origin on screen.
type DatePicker struct {
	state   *uistate.Picker
	input   textinput.Model
	focused bool
	originX int
	originY int
	keys    pickerKeyMap
}

// NewDatePicker wraps a controller built from selected, onChange and opts.
func NewDatePicker(selected time.Time, onChange uistate.ChangeFunc, opts uistate.Options) *DatePicker {
	in := textinput.New()
	in.Prompt = "» "
	in.Placeholder = "YYYY-MM-DD"
	in.CharLimit = 32
	in.Cursor.SetMode(cursor.CursorStatic)
	if styles.Prompt != nil {
		in.PromptStyle = *styles.Prompt
	}
	if styles.Cursor != nil {
		in.Cursor.Style = *styles.Cursor
	}
	w := &DatePicker{
		state: uistate.NewPicker(selected, onChange, opts),
		input: in,
		keys:  defaultPickerKeys(),
	}
	w.syncInput()
	return w
}

// State exposes the controller for callers that drive it directly.
func (w *DatePicker) State() *uistate.Picker {
	return w.state
}

// SetOrigin moves the control to column x, row y.
func (w *DatePicker) SetOrigin(x, y int) {
	w.originX, w.originY = x, y
}

// Focused reports whether keystrokes go to the input.
func (w *DatePicker) Focused() bool {
	return w.focused
}

// Mount registers the outside-click listener and returns its teardown.
// The listener reads the controller when it fires, so callbacks and bounds
// replaced after mounting are honoured.
func (w *DatePicker) Mount(reg *pointer.Registry) func() {
	return reg.Add(func(ev pointer.Event) {
		if w.Contains(ev.X, ev.Y) {
			return
		}
		w.blur()
		if w.state.Idle() {
			return
		}
		events.Picker.OutsideClick(ev.X, ev.Y)
		w.state.Dismiss()
		w.syncInput()
	})
}

// Focus gives the input keyboard focus and opens the popup.
func (w *DatePicker) Focus() tea.Cmd {
	w.focused = true
	cmd := w.input.Focus()
	w.state.Focus()
	return cmd
}

func (w *DatePicker) blur() {
	w.focused = false
	w.input.Blur()
}

// SetSelected forwards an external change of the selected date.
func (w *DatePicker) SetSelected(t time.Time) {
	w.state.SetSelected(t)
	w.syncInput()
}

// SetBounds forwards a change of the allowed range.
func (w *DatePicker) SetBounds(b calendar.Bounds) {
	w.state.SetBounds(b)
}

// SetOnChange replaces the commit callback.
func (w *DatePicker) SetOnChange(fn uistate.ChangeFunc) {
	w.state.SetOnChange(fn)
}

// inputRegion covers the input line.
func (w *DatePicker) inputRegion() pointer.Region {
	return pointer.Region{X: w.originX, Y: w.originY, Width: inputWidth, Height: 1}
}

// popupRegion covers the popup box; it is empty while closed.
func (w *DatePicker) popupRegion() pointer.Region {
	if !w.state.Open() {
		return pointer.Region{}
	}
	return pointer.Region{X: w.originX, Y: w.originY + 1, Width: popupWidth, Height: popupHeight}
}

// Contains reports whether (x, y) lands on the control.
func (w *DatePicker) Contains(x, y int) bool {
	return w.inputRegion().Contains(x, y) || w.popupRegion().Contains(x, y)
}
