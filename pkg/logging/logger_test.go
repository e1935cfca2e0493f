package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerWritesToLogPath(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "gdexgen.log")
	t.Setenv("GDEXGEN_LOG_PATH", logFile)
	t.Setenv("GDEXGEN_JSON_LOG", "")

	logger := NewLogger("test", "info", nil)
	logger.Info("hello from the log file")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "hello from the log file") {
		t.Errorf("log file contents = %q", data)
	}
	if !strings.Contains(string(data), "gdexgen: ") {
		t.Errorf("log file is missing the line prefix: %q", data)
	}
}

func TestNewLoggerAppendsToLogPath(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "gdexgen.log")
	if err := os.WriteFile(logFile, []byte("earlier run\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GDEXGEN_LOG_PATH", logFile)

	NewLogger("test", "info", nil).Info("second run")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "earlier run") || !strings.Contains(string(data), "second run") {
		t.Errorf("log file must append, got %q", data)
	}
}

func TestNewLoggerExplicitWriterIgnoresLogPath(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "gdexgen.log")
	t.Setenv("GDEXGEN_LOG_PATH", logFile)

	var buf bytes.Buffer
	NewLogger("test", "info", &buf).Info("to the buffer")

	if !strings.Contains(buf.String(), "to the buffer") {
		t.Errorf("buffer = %q", buf.String())
	}
	if _, err := os.Stat(logFile); err == nil {
		t.Error("log file must not be created when a writer is passed")
	}
}

func TestGetLogLevel(t *testing.T) {
	t.Setenv("GDEXGEN_LOG_LEVEL", "")
	if got := GetLogLevel(); got != "warn" {
		t.Errorf("GetLogLevel() = %q, want warn", got)
	}

	t.Setenv("GDEXGEN_LOG_LEVEL", "debug")
	if got := GetLogLevel(); got != "debug" {
		t.Errorf("GetLogLevel() = %q, want debug", got)
	}
}
