package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/datepop/internal/app"
	"github.com/atomicstack/datepop/internal/calendar"
	"github.com/atomicstack/datepop/internal/config"
	"github.com/atomicstack/datepop/internal/logging"
	"github.com/atomicstack/datepop/internal/logging/events"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// configError marks failures that should exit with status 2.
type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

func main() {
	cmd := newRootCmd(os.Args[1:], os.Environ(), os.Stdout, app.Run)
	if err := cmd.Execute(); err != nil {
		var cerr configError
		if errors.As(err, &cerr) {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
			os.Exit(2)
		}
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type runFunc func(app.Config) (app.Result, error)

func newRootCmd(args, environ []string, stdout io.Writer, run runFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "datepop",
		Short:         "Pick a date in a terminal popup and print it",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return configError{err}
	})
	loader := config.Bind(cmd.Flags(), environ)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		runtimeCfg, err := loader.Load(args)
		if err != nil {
			return configError{err}
		}
		if err := config.Validate(runtimeCfg); err != nil {
			return configError{err}
		}
		logging.Configure(runtimeCfg.Logging.FilePath)
		logging.SetTraceEnabled(runtimeCfg.Logging.Trace)
		defer logging.Close()

		traceStartup(runtimeCfg)

		result, err := run(runtimeCfg.App)
		if err != nil {
			return err
		}
		if result.Printable(runtimeCfg.App) {
			fmt.Fprintln(stdout, calendar.Format(result.Date))
		}
		return nil
	}
	return cmd
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"bounds": cfg.App.Bounds().String(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails probes the standard descriptors. The UI draws on stderr,
// so that one is tried first.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stderr", os.Stderr.Fd()},
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
