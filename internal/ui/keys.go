package ui

import "github.com/charmbracelet/bubbles/key"

type pickerKeyMap struct {
	Commit    key.Binding
	Blur      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
		Blur:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		PrevMonth: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next month")),
		PrevYear:  key.NewBinding(key.WithKeys("ctrl+pgup"), key.WithHelp("ctrl+pgup", "prev year")),
		NextYear:  key.NewBinding(key.WithKeys("ctrl+pgdown"), key.WithHelp("ctrl+pgdn", "next year")),
	}
}

// appKeyMap lists program-level bindings and feeds the footer help.
type appKeyMap struct {
	picker pickerKeyMap
	Focus  key.Binding
	Quit   key.Binding
	Leave  key.Binding
}

func defaultAppKeys() appKeyMap {
	return appKeyMap{
		picker: defaultPickerKeys(),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Leave:  key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "done")),
	}
}

// ShortHelp implements help.KeyMap.
func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.picker.Commit, k.Focus, k.picker.PrevMonth, k.picker.NextMonth, k.Leave, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.picker.Commit, k.Focus},
		{k.picker.PrevMonth, k.picker.NextMonth, k.picker.PrevYear, k.picker.NextYear},
		{k.Leave, k.Quit},
	}
}
