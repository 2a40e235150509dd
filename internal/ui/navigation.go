package ui

import tea "github.com/charmbracelet/bubbletea"

func (w *DatePicker) navigate(step func()) bool {
	if !w.state.Open() {
		return false
	}
	step()
	return true
}

// HandlePress processes a primary-button press that landed on the control.
// Presses elsewhere are the registry's business.
func (w *DatePicker) HandlePress(x, y int) tea.Cmd {
	if w.inputRegion().Contains(x, y) {
		return w.Focus()
	}
	if !w.popupRegion().Contains(x, y) {
		return nil
	}
	col := x - w.originX - contentLeft
	row := y - w.originY - 1 - contentTop
	if col < 0 || col >= gridWidth || row < 0 {
		return nil
	}
	switch {
	case row == headerRow:
		w.pressHeader(col)
	case row >= firstWeekRow && row < firstWeekRow+6:
		if col%cellWidth == cellWidth-1 {
			return nil
		}
		idx := (row-firstWeekRow)*7 + col/cellWidth
		grid := w.state.Grid()
		if idx < len(grid) {
			w.state.ClickCell(grid[idx].DateCellItem)
			w.syncInput()
		}
	}
	return nil
}

func (w *DatePicker) pressHeader(col int) {
	switch col {
	case colPrevYear:
		w.state.PrevYear()
	case colPrevMonth:
		w.state.PrevMonth()
	case colNextMonth:
		w.state.NextMonth()
	case colNextYear:
		w.state.NextYear()
	}
}

