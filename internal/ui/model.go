package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/datepop/internal/calendar"
	"github.com/atomicstack/datepop/internal/theme"
	"github.com/atomicstack/datepop/internal/ui/pointer"
	uistate "github.com/atomicstack/datepop/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the program model.
type Options struct {
	Selected    time.Time
	Bounds      calendar.Bounds
	StrictRange bool
	ShowFooter  bool
	Location    *time.Location
	Now         func() time.Time
}

// Model implements the Bubble Tea model hosting a single date picker. It
// plays the caller's role: it owns the selected date and feeds commits back
// into the picker.
type Model struct {
	picker    *DatePicker
	registry  *pointer.Registry
	release   func()
	selected  time.Time
	committed bool
	status    string
	width     int
	height    int

	showFooter bool
	help       help.Model
	keys       appKeyMap

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the program model and mounts the picker on a fresh
// pointer registry. Call Close when the program ends.
func NewModel(opts Options) *Model {
	selected := opts.Selected
	if selected.IsZero() {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		selected = now()
	}
	m := &Model{
		registry:   pointer.NewRegistry(),
		showFooter: opts.ShowFooter,
		help:       help.New(),
		keys:       defaultAppKeys(),
	}
	m.picker = NewDatePicker(selected, m.handleChange, uistate.Options{
		Bounds:      opts.Bounds,
		Location:    opts.Location,
		Now:         opts.Now,
		StrictRange: opts.StrictRange,
	})
	m.selected = m.picker.State().Selected()
	m.status = "Selected " + calendar.Format(m.selected)
	m.release = m.picker.Mount(m.registry)
	m.registerHandlers()
	return m
}

// Close releases the picker's pointer listener. It is safe to call twice.
func (m *Model) Close() {
	if m.release != nil {
		m.release()
	}
}

// Selected returns the last committed date and whether any commit happened.
func (m *Model) Selected() (time.Time, bool) {
	return m.selected, m.committed
}

// Picker exposes the hosted date picker.
func (m *Model) Picker() *DatePicker {
	return m.picker
}

// Registry exposes the pointer registry the picker is mounted on.
func (m *Model) Registry() *pointer.Registry {
	return m.registry
}

func (m *Model) handleChange(date time.Time) {
	m.selected = date
	m.committed = true
	m.status = "Selected " + calendar.Format(date)
	m.picker.SetSelected(date)
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	if handled, cmd := m.picker.HandleKey(keyMsg); handled {
		return cmd
	}
	switch {
	case key.Matches(keyMsg, m.keys.Focus):
		return m.picker.Focus()
	case key.Matches(keyMsg, m.keys.Leave):
		if !m.picker.State().Open() {
			return tea.Quit
		}
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft {
		return nil
	}
	m.registry.Dispatch(pointer.Event{X: mouse.X, Y: mouse.Y})
	if m.picker.Contains(mouse.X, mouse.Y) {
		return m.picker.HandlePress(mouse.X, mouse.Y)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	m.help.Width = size.Width
	return nil
}
