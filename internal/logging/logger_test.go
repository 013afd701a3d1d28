package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestConsoleHandlerFormatsRecord(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelInfo)
	logger := slog.New(newConsoleHandler(&buf, lvl))

	logger = NewComponentLogger(logger, "pipeline")
	logger.Info("stage started", String(FieldStage, "transcription"), Int("percent", 40))

	line := buf.String()
	if !strings.Contains(line, "INFO pipeline: stage started") {
		t.Fatalf("unexpected line %q", line)
	}
	if !strings.Contains(line, "stage=transcription") || !strings.Contains(line, "percent=40") {
		t.Fatalf("missing attributes in %q", line)
	}
}

func TestConsoleHandlerQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl))

	logger.Warn("cleanup failed", Error(errors.New("permission denied: /tmp/x")))
	if !strings.Contains(buf.String(), `error="permission denied: /tmp/x"`) {
		t.Fatalf("expected quoted error value, got %q", buf.String())
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelWarn)
	handler := newConsoleHandler(&buf, lvl)

	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("info should be disabled at warn level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("error should be enabled at warn level")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNoopHandlerDiscards(t *testing.T) {
	logger := NewNop()
	// Must not panic and must report disabled at all levels.
	logger.Log(context.Background(), slog.LevelError, "ignored", slog.Time("at", time.Now()))
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("noop logger should be disabled")
	}
}
