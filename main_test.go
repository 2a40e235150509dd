package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/datepop/internal/app"
	"github.com/atomicstack/datepop/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stderr", "stdin", "stdout"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg, err := config.LoadArgs([]string{"--min", "2023-05-01", "--footer", "--trace", "--log-file", "trace.log"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["min"] != "2023-05-01" {
		t.Fatalf("expected min flag 2023-05-01, got %v", flagsValue["min"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["bounds"] != "[2023-05-01, +inf]" {
		t.Fatalf("expected bounds in payload, got %v", payload["bounds"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.Dates != cfg.Dates {
		t.Fatalf("expected dates %#v, got %#v", cfg.Dates, cfgValue.Dates)
	}
}

func TestRootCommandPrintsCommittedDate(t *testing.T) {
	var got app.Config
	run := func(cfg app.Config) (app.Result, error) {
		got = cfg
		return app.Result{Date: time.Date(2023, time.June, 1, 0, 0, 0, 0, time.Local), Committed: true}, nil
	}
	var out strings.Builder
	cmd := newRootCmd([]string{"--date", "2023-05-15", "--strict-range"}, nil, &out, run)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "2023-06-01\n" {
		t.Fatalf("expected committed date on stdout, got %q", out.String())
	}
	if !got.StrictRange {
		t.Fatalf("expected strict range passed to run")
	}
}

func TestRootCommandSilentWithoutCommit(t *testing.T) {
	run := func(cfg app.Config) (app.Result, error) {
		return app.Result{Date: cfg.Selected}, nil
	}
	var out strings.Builder
	cmd := newRootCmd([]string{"--date", "2023-05-15"}, nil, &out, run)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}

	out.Reset()
	cmd = newRootCmd([]string{"--date", "2023-05-15"}, []string{"DATEPOP_PRINT_INITIAL=true"}, &out, run)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "2023-05-15\n" {
		t.Fatalf("expected initial date with print-initial, got %q", out.String())
	}
}

func TestRootCommandConfigErrors(t *testing.T) {
	run := func(app.Config) (app.Result, error) {
		t.Fatalf("run must not be called on configuration errors")
		return app.Result{}, nil
	}
	for _, args := range [][]string{
		{"--date", "15/05/2023"},
		{"--min", "2023-06-01", "--max", "2023-05-01"},
	} {
		var out strings.Builder
		err := newRootCmd(args, nil, &out, run).Execute()
		var cerr configError
		if !errors.As(err, &cerr) {
			t.Fatalf("expected configuration error for %v, got %v", args, err)
		}
	}
}

func TestRootCommandRunError(t *testing.T) {
	boom := errors.New("boom")
	run := func(app.Config) (app.Result, error) { return app.Result{}, boom }
	var out strings.Builder
	err := newRootCmd(nil, nil, &out, run).Execute()
	if !errors.Is(err, boom) {
		t.Fatalf("expected run error, got %v", err)
	}
	var cerr configError
	if errors.As(err, &cerr) {
		t.Fatalf("expected run error not to be a configuration error")
	}
}
