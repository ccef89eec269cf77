package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestConsoleOutputIncludesComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.With("component", "encoder").Info("encoded track", "slug", "my-song", "ran", true)

	line := buf.String()
	if !strings.Contains(line, "INFO encoder: encoded track") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, "slug=my-song") || !strings.Contains(line, "ran=true") {
		t.Fatalf("attrs missing from console line: %q", line)
	}
}

func TestConsoleQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("scan", "title", "My Song")
	if !strings.Contains(buf.String(), `title="My Song"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestJSONOutputUsesLowercaseLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("upload skipped", "key", "my-song/my-song.mp3")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", buf.String(), err)
	}
	if payload["level"] != "warn" {
		t.Fatalf("expected level warn, got %v", payload["level"])
	}
	if payload["msg"] != "upload skipped" {
		t.Fatalf("unexpected msg %v", payload["msg"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("info line should be filtered at warn level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("warn line missing: %q", buf.String())
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
