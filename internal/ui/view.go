package ui

import (
	"fmt"
	"strings"

	uistate "github.com/atomicstack/datepop/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const weekdayHeader = "Su Mo Tu We Th Fr Sa"

type styledLine struct {
	text  string
	style *lipgloss.Style
}

// View renders the input line and, while open, the popup below it.
func (w *DatePicker) View() string {
	lines := []string{w.inputLine()}
	if w.state.Open() {
		lines = append(lines, w.popupView())
	}
	return strings.Join(lines, "\n")
}

func (w *DatePicker) inputLine() string {
	w.input.TextStyle = lipgloss.Style{}
	switch {
	case !w.state.Valid() && styles.InputInvalid != nil:
		w.input.TextStyle = *styles.InputInvalid
	case w.focused && styles.InputFocused != nil:
		w.input.TextStyle = *styles.InputFocused
	case styles.Input != nil:
		w.input.TextStyle = *styles.Input
	}
	line := w.input.View()
	if !w.state.Valid() {
		line += render(styles.Error, " ✗")
	}
	return line
}

func (w *DatePicker) popupView() string {
	lines := make([]string, 0, 8)
	lines = append(lines, w.headerLine())
	lines = append(lines, render(styles.Weekday, weekdayHeader))
	grid := w.state.Grid()
	for week := 0; week < 6; week++ {
		cells := make([]string, 0, 7)
		for d := 0; d < 7; d++ {
			idx := week*7 + d
			if idx >= len(grid) {
				cells = append(cells, "  ")
				continue
			}
			cells = append(cells, renderCell(grid[idx]))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	body := strings.Join(lines, "\n")
	if styles.Popup == nil {
		return body
	}
	return styles.Popup.Render(body)
}

func (w *DatePicker) headerLine() string {
	label := lipgloss.NewStyle().Width(labelWidth).Align(lipgloss.Center).Render(w.state.PanelLabel())
	return render(styles.NavButton, "« ‹") + render(styles.Header, label) + render(styles.NavButton, "› »")
}

func renderCell(c uistate.Cell) string {
	text := fmt.Sprintf("%2d", c.Date)
	style := lipgloss.NewStyle()
	if styles.Day != nil {
		style = *styles.Day
	}
	if c.OutsideMonth && styles.OtherMonth != nil {
		style = styles.OtherMonth.Inherit(style)
	}
	if c.OutsideRange && styles.OutOfRange != nil {
		style = styles.OutOfRange.Inherit(style)
	}
	if c.Today && styles.Today != nil {
		style = style.Inherit(*styles.Today)
	}
	if c.Selected && styles.Selected != nil {
		style = styles.Selected.Inherit(style)
	}
	return style.Render(text)
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	for _, l := range strings.Split(m.picker.View(), "\n") {
		lines = append(lines, styledLine{text: l})
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.statusText(), style: styles.Status})
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.help.View(m.keys), style: styles.Footer})
	}
	lines = limitHeight(lines, m.height)
	return renderLines(lines, m.width)
}

func (m *Model) statusText() string {
	if bounds := m.picker.State().Bounds(); bounds.IsSet() {
		return fmt.Sprintf("%s  range %s", m.status, bounds)
	}
	return m.status
}

func limitHeight(lines []styledLine, height int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	return lines[:height]
}

func renderLines(lines []styledLine, width int) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := render(line.style, line.text)
		if width > 0 {
			text = truncate.String(text, uint(width))
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}
