package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", false, &buf)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("SVG not found", zap.String("identifier", "arrow"))
	_ = logger.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["identifier"] != "arrow" {
		t.Errorf("identifier = %v, want arrow", entry["identifier"])
	}
	if entry["logger"] != "sx" {
		t.Errorf("logger = %v, want sx", entry["logger"])
	}
}

func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("error", true, &buf)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	logger.Debug("library loaded")
	_ = logger.Sync()

	if !strings.Contains(buf.String(), "library loaded") {
		t.Errorf("debug mode should log at debug level, got %q", buf.String())
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("loud", false, nil); err == nil {
		t.Error("expected error for invalid level")
	}
}
