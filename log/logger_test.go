package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLogger_IncludesRunContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newLoggerWithWriter("run-123", &buf)

	logger.Info("step started", map[string]any{"step": "scaffold"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["run_id"] != "run-123" {
		t.Errorf("expected run_id=run-123, got %v", entry["run_id"])
	}
	if entry["message"] != "step started" {
		t.Errorf("expected message 'step started', got %v", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("expected level=info, got %v", entry["level"])
	}
}

func TestLogger_WithOutput(t *testing.T) {
	var first, second bytes.Buffer
	logger := newLoggerWithWriter("run-abc", &first)
	redirected := logger.WithOutput(&second)

	redirected.Error("command failed", map[string]any{"exit_code": 1})

	if first.Len() != 0 {
		t.Errorf("original writer should receive nothing, got: %s", first.String())
	}
	var entry map[string]any
	if err := json.Unmarshal(second.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["run_id"] != "run-abc" {
		t.Errorf("run context lost on WithOutput: %v", entry["run_id"])
	}
	if entry["level"] != "error" {
		t.Errorf("expected level=error, got %v", entry["level"])
	}
}

func TestNewFileLogger_TruncatesAndWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.log")
	if err := os.WriteFile(path, []byte("stale content from previous run\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	logger, closeFn, err := NewFileLogger("run-file", path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Info("pipeline started", nil)
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(data, []byte("stale content")) {
		t.Error("log file should be truncated on open")
	}
	if !bytes.Contains(data, []byte("pipeline started")) {
		t.Errorf("log file missing entry: %s", data)
	}
}

func TestNewFileLogger_BadPath(t *testing.T) {
	_, _, err := NewFileLogger("run-x", filepath.Join(t.TempDir(), "missing", "build.log"))
	if err == nil {
		t.Fatal("expected error for unwritable log path")
	}
}
