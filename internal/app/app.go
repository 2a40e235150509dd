package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atomicstack/datepop/internal/calendar"
	"github.com/atomicstack/datepop/internal/logging/events"
	"github.com/atomicstack/datepop/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Selected     time.Time
	Min          time.Time
	Max          time.Time
	StrictRange  bool
	ShowFooter   bool
	PrintInitial bool
}

// Bounds returns the configured range; zero ends are unbounded.
func (c Config) Bounds() calendar.Bounds {
	return calendar.NewBounds(c.Min, c.Max)
}

// Result is what the program settled on when it exited.
type Result struct {
	Date      time.Time
	Committed bool
}

// Printable reports whether the result belongs on stdout.
func (r Result) Printable(cfg Config) bool {
	return r.Committed || cfg.PrintInitial
}

// Run bootstraps and executes the Bubble Tea program. The UI is drawn on
// stderr so stdout stays free for the chosen date.
func Run(cfg Config) (Result, error) {
	return run(cfg, os.Stdin, os.Stderr)
}

func run(cfg Config, in io.Reader, out io.Writer) (Result, error) {
	model := ui.NewModel(ui.Options{
		Selected:    cfg.Selected,
		Bounds:      cfg.Bounds(),
		StrictRange: cfg.StrictRange,
		ShowFooter:  cfg.ShowFooter,
	})
	defer model.Close()

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return Result{}, fmt.Errorf("run program: %w", err)
	}
	date, committed := model.Selected()
	events.App.Exit(calendar.Format(date), committed)
	return Result{Date: date, Committed: committed}, nil
}
