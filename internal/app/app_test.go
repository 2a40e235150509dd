package app

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/datepop/internal/calendar"
)

func TestRunCommitsTypedDate(t *testing.T) {
	selected := time.Date(2023, time.May, 15, 0, 0, 0, 0, time.Local)
	cfg := Config{Selected: selected}
	var out bytes.Buffer
	in := strings.NewReader("\t\x15" + "2023-06-01" + "\r" + "\tq")

	result, err := run(cfg, in, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Committed {
		t.Fatalf("expected a commit")
	}
	if got := calendar.Format(result.Date); got != "2023-06-01" {
		t.Fatalf("expected 2023-06-01, got %s", got)
	}
	if !result.Printable(cfg) {
		t.Fatalf("expected committed result to be printable")
	}
}

func TestRunQuitWithoutCommit(t *testing.T) {
	selected := time.Date(2023, time.May, 15, 0, 0, 0, 0, time.Local)
	cfg := Config{Selected: selected}
	var out bytes.Buffer

	result, err := run(cfg, strings.NewReader("q"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Committed {
		t.Fatalf("expected no commit")
	}
	if got := calendar.Format(result.Date); got != "2023-05-15" {
		t.Fatalf("expected initial date, got %s", got)
	}
	if result.Printable(cfg) {
		t.Fatalf("expected uncommitted result to stay quiet")
	}
	cfg.PrintInitial = true
	if !result.Printable(cfg) {
		t.Fatalf("expected print-initial to force output")
	}
}

func TestConfigBounds(t *testing.T) {
	lo := time.Date(2023, time.May, 1, 0, 0, 0, 0, time.Local)
	b := Config{Min: lo}.Bounds()
	if b.Min == nil || b.Max != nil {
		t.Fatalf("expected lower bound only, got %s", b)
	}
}
