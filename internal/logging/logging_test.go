package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "datepop.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := withLog(t)
	SetTraceEnabled(false)
	Trace("picker.open", map[string]interface{}{"text": "2023-05-15"})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, got %v", err)
	}
}

func TestTraceWritesJSONLines(t *testing.T) {
	path := withLog(t)
	SetTraceEnabled(true)
	Trace("picker.commit", map[string]interface{}{"date": "2023-06-01"})
	Trace("picker.close", nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(lines))
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry.Event != "picker.commit" || entry.Payload["date"] != "2023-06-01" {
		t.Fatalf("unexpected entry %#v", entry)
	}
}

func TestErrorAppendsLine(t *testing.T) {
	path := withLog(t)
	Error(nil)
	Error(errors.New("boom"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "boom") {
		t.Fatalf("expected error in log, got %q", string(data))
	}
	if Path() != path {
		t.Fatalf("expected path %s, got %s", path, Path())
	}
}

func TestTraceEntriesShareRunAndCountUp(t *testing.T) {
	path := withLog(t)
	SetTraceEnabled(true)
	Trace("picker.open", nil)
	Trace("picker.navigate", map[string]interface{}{"month": "2023-06"})
	Close()
	Trace("picker.close", nil)
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 entries across reopen, got %d", len(lines))
	}
	var run string
	for i, line := range lines {
		var entry struct {
			Run string `json:"run"`
			Seq uint64 `json:"seq"`
		}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("decode entry %d: %v", i, err)
		}
		if entry.Run == "" {
			t.Fatalf("expected run id on entry %d", i)
		}
		if i == 0 {
			run = entry.Run
		} else if entry.Run != run {
			t.Fatalf("expected run %s, got %s", run, entry.Run)
		}
		if i > 0 && entry.Seq <= 1 {
			t.Fatalf("expected increasing sequence, got %d at %d", entry.Seq, i)
		}
	}
}

func TestConfigureSwitchesOpenFile(t *testing.T) {
	first := withLog(t)
	Error(errors.New("first"))
	second := filepath.Join(filepath.Dir(first), "other.log")
	Configure(second)
	Error(errors.New("second"))
	Close()

	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read first log: %v", err)
	}
	if strings.Contains(string(data), "second") {
		t.Fatalf("expected second error in the new file only, got %q", string(data))
	}
	data, err = os.ReadFile(second)
	if err != nil {
		t.Fatalf("read second log: %v", err)
	}
	if !strings.Contains(string(data), "second") {
		t.Fatalf("expected second error in %s, got %q", second, string(data))
	}
}
