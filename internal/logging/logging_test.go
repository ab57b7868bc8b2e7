package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/dailydeck/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		" WARN ":  log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"info":    log.InfoLevel,
		"bogus":   log.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_RespectsLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, config.LogConfig{Level: "warn", Format: "json"})
	l.Info("hidden")
	l.Warn("shown", "id", "7")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info logged at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"id":"7"`) {
		t.Fatalf("expected json record, got %s", out)
	}
}

func TestOpen_WritesToFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs", "deck.log")
	l, closeFn, err := Open(config.LogConfig{Level: "debug", Format: "logfmt", File: p})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	l.Debug("tick", "frame", 1)
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "msg=tick") {
		t.Fatalf("log file = %q", b)
	}
}

func TestOpen_EmptyFileDiscards(t *testing.T) {
	l, closeFn, err := Open(config.LogConfig{Level: "info", Format: "text"})
	if err != nil || l == nil || closeFn == nil {
		t.Fatalf("open: %v %v", l, err)
	}
	l.Info("nowhere")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
