package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "combopick.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("expected JSON line, got %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

func TestConfigureCreatesDirectory(t *testing.T) {
	path := useTempLog(t)
	if Path() != path {
		t.Fatalf("expected path %q, got %q", path, Path())
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("expected log directory created: %v", err)
	}
	Configure("  ")
	if Path() != defaultLogFile {
		t.Fatalf("expected blank path to reset to default, got %q", Path())
	}
}

func TestTraceGatedBySwitch(t *testing.T) {
	path := useTempLog(t)
	Trace("ignored", map[string]interface{}{"n": 1})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing is off, got %v", err)
	}

	SetTraceEnabled(true)
	Trace("combobox.commit", map[string]interface{}{"text": "ant"})
	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0]["level"] != "TRACE" || entries[0]["msg"] != "combobox.commit" {
		t.Fatalf("unexpected entry %v", entries[0])
	}
	payload, ok := entries[0]["payload"].(map[string]any)
	if !ok || payload["text"] != "ant" {
		t.Fatalf("unexpected payload %v", entries[0]["payload"])
	}
}

func TestErrorAlwaysWrites(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	Error(errors.New("boom"))
	entries := readEntries(t, path)
	if len(entries) != 1 || entries[0]["level"] != "ERROR" || entries[0]["msg"] != "boom" {
		t.Fatalf("unexpected entries %v", entries)
	}
}
