package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HandleKey processes a key press while the input has focus. It reports
// whether the key was consumed.
func (w *DatePicker) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !w.focused {
		return false, nil
	}
	switch {
	case key.Matches(msg, w.keys.Commit):
		w.state.Dismiss()
		w.syncInput()
		return true, nil
	case key.Matches(msg, w.keys.Blur):
		w.blur()
		return true, nil
	case key.Matches(msg, w.keys.PrevMonth):
		return w.navigate(w.state.PrevMonth), nil
	case key.Matches(msg, w.keys.NextMonth):
		return w.navigate(w.state.NextMonth), nil
	case key.Matches(msg, w.keys.PrevYear):
		return w.navigate(w.state.PrevYear), nil
	case key.Matches(msg, w.keys.NextYear):
		return w.navigate(w.state.NextYear), nil
	}
	before := w.input.Value()
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	if w.input.Value() != before {
		w.state.Edit(w.input.Value())
	}
	return true, cmd
}

// syncInput copies controller text into the input when they disagree
// beyond surrounding whitespace.
func (w *DatePicker) syncInput() {
	if strings.TrimSpace(w.input.Value()) == w.state.Text() {
		return
	}
	w.input.SetValue(w.state.Text())
	w.input.CursorEnd()
}
