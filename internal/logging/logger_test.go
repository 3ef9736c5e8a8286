package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/justinricheson/collectionsynchronizer/internal/config"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "info", Format: config.FormatJSON, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("hidden")
	l.Info("shown")
	_ = l.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines; want 1: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry["msg"] != "shown" || entry["level"] != "info" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "debug", Format: config.FormatConsole, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("relayed")
	_ = l.Sync()
	if !strings.Contains(buf.String(), "DEBUG") || !strings.Contains(buf.String(), "relayed") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestFromConfig(t *testing.T) {
	opts := FromConfig(config.Config{LogLevel: "error", LogFormat: config.FormatJSON})
	if opts.Level != "error" || opts.Format != config.FormatJSON {
		t.Fatalf("unexpected options: %+v", opts)
	}
}
