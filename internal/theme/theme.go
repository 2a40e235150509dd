package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Input        *lipgloss.Style
	InputFocused *lipgloss.Style
	InputInvalid *lipgloss.Style
	Prompt       *lipgloss.Style
	Cursor       *lipgloss.Style
	Popup        *lipgloss.Style
	Header       *lipgloss.Style
	NavButton    *lipgloss.Style
	Weekday      *lipgloss.Style
	Day          *lipgloss.Style
	OtherMonth   *lipgloss.Style
	OutOfRange   *lipgloss.Style
	Today        *lipgloss.Style
	Selected     *lipgloss.Style
	Status       *lipgloss.Style
	Error        *lipgloss.Style
	Footer       *lipgloss.Style
}

var defaultStyles = Styles{
	Input: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	InputFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	InputInvalid: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	Popup: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	NavButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Weekday: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Day: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	OtherMonth: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	OutOfRange: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Strikethrough(true),
	),
	Today: ptr(
		lipgloss.NewStyle().Underline(true).Bold(true),
	),
	Selected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
