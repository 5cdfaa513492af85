package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetup_FallsBackToEnv(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv("LOG_LEVEL", "debug")

	var buf bytes.Buffer
	Setup(&buf, "")
	slog.Debug("debug from env")
	if !strings.Contains(buf.String(), "debug from env") {
		t.Errorf("LOG_LEVEL=debug should enable debug records, got %q", buf.String())
	}

	buf.Reset()
	Setup(&buf, "error")
	slog.Warn("explicit level wins")
	if buf.Len() != 0 {
		t.Errorf("explicit level should override LOG_LEVEL, got %q", buf.String())
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden message")
	logger.Warn("visible message", "period", "May 2024")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("info record should be filtered, got %q", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "period=\"May 2024\"") {
		t.Errorf("warn record missing from output: %q", out)
	}
}
