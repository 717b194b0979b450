package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// captureLogOutput reinitializes the logger to write JSON to a buffer and
// restores the default afterwards.
func captureLogOutput(level Level, f func()) string {
	var buf bytes.Buffer
	InitLoggerTo(&buf, level, FormatJSON)
	defer InitLogger(LevelInfo, FormatText)

	f()
	return buf.String()
}

func decodeLine(t *testing.T, output string) map[string]any {
	t.Helper()
	line := strings.TrimSpace(output)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("Failed to decode log line %q: %v", line, err)
	}
	return rec
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		format Format
	}{
		{"Debug level JSON format", LevelDebug, FormatJSON},
		{"Info level JSON format", LevelInfo, FormatJSON},
		{"Warn level Text format", LevelWarn, FormatText},
		{"Error level Text format", LevelError, FormatText},
		{"Default level (invalid value)", Level(999), FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level, tt.format)
			if defaultLogger == nil || slog.Default() != defaultLogger {
				t.Error("Expected logger to be initialized and installed as the slog default")
			}
		})
	}
	InitLogger(LevelInfo, FormatText)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %d, expected %d", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("Expected FormatJSON, got %d (%v)", f, err)
	}
	if f, err := ParseFormat("TEXT"); err != nil || f != FormatText {
		t.Errorf("Expected FormatText, got %d (%v)", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestLevelFiltering(t *testing.T) {
	ctx := context.Background()
	output := captureLogOutput(LevelWarn, func() {
		DebugContext(ctx, "hidden debug")
		InfoContext(ctx, "hidden info")
		WarnContext(ctx, "shown warning")
		ErrorContext(ctx, "shown error")
	})

	if strings.Contains(output, "hidden") {
		t.Errorf("Expected messages below warn to be filtered:\n%s", output)
	}
	if !strings.Contains(output, "shown warning") || !strings.Contains(output, "shown error") {
		t.Errorf("Expected warn and error output:\n%s", output)
	}
}

func TestTimestampFormat(t *testing.T) {
	output := captureLogOutput(LevelInfo, func() {
		InfoContext(context.Background(), "timestamp test")
	})

	rec := decodeLine(t, output)
	ts, ok := rec["time"].(string)
	if !ok {
		t.Fatalf("Expected string time, got %T", rec["time"])
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("Expected RFC3339 timestamp, got %q", ts)
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, LevelInfo, FormatText)
	defer InitLogger(LevelInfo, FormatText)

	InfoContext(context.Background(), "text message", "key", "value")
	if !strings.Contains(buf.String(), "msg=\"text message\"") || !strings.Contains(buf.String(), "key=value") {
		t.Errorf("Unexpected text output: %s", buf.String())
	}
}

func TestRunID(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-123")
	if got := GetRunID(ctx); got != "run-123" {
		t.Errorf("Expected run-123, got %s", got)
	}
	if got := GetRunID(context.Background()); got != "" {
		t.Errorf("Expected empty run ID, got %s", got)
	}
	if got := GetRunID(context.WithValue(context.Background(), RunIDKey, 42)); got != "" {
		t.Errorf("Expected empty run ID for wrong type, got %s", got)
	}

	output := captureLogOutput(LevelInfo, func() {
		InfoContext(ctx, "with run")
	})
	if rec := decodeLine(t, output); rec["run_id"] != "run-123" {
		t.Errorf("Expected run_id attribute, got %v", rec["run_id"])
	}
}

func TestContextLoggingFunctions(t *testing.T) {
	ctx := WithRunID(context.Background(), "ctx-run")
	output := captureLogOutput(LevelDebug, func() {
		DebugContext(ctx, "debug ctx")
		InfoContext(ctx, "info ctx")
		WarnContext(ctx, "warn ctx")
		ErrorContext(ctx, "error ctx")
	})

	for _, msg := range []string{"debug ctx", "info ctx", "warn ctx", "error ctx"} {
		if !strings.Contains(output, msg) {
			t.Errorf("Expected output to contain %q", msg)
		}
	}
	if n := strings.Count(output, "ctx-run"); n != 4 {
		t.Errorf("Expected run ID on all 4 lines, got %d", n)
	}
}

func TestBatchHelpers(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		fn      func()
		msg     string
		level   string
		wantKey string
		wantVal any
	}{
		{
			name:    "BatchStarted",
			fn:      func() { BatchStarted(ctx, "modernize", "/tmp/web", 3) },
			msg:     "batch_started",
			level:   "INFO",
			wantKey: "files",
			wantVal: float64(3),
		},
		{
			name:    "FileSkipped",
			fn:      func() { FileSkipped(ctx, "index.htm", errors.New("not a chapter")) },
			msg:     "file_skipped",
			level:   "DEBUG",
			wantKey: "reason",
			wantVal: "not a chapter",
		},
		{
			name:    "FileError",
			fn:      func() { FileError(ctx, "GEN01.htm", "write", errors.New("disk full")) },
			msg:     "file_error",
			level:   "ERROR",
			wantKey: "error",
			wantVal: "disk full",
		},
		{
			name:    "ConversionMiss",
			fn:      func() { ConversionMiss(ctx, "GEN01.htm", "main content", "detail", "x") },
			msg:     "conversion_miss",
			level:   "WARN",
			wantKey: "detail",
			wantVal: "x",
		},
		{
			name:    "BatchFinished",
			fn:      func() { BatchFinished(ctx, "navigate", 10, 2, 1, 1500*time.Millisecond) },
			msg:     "batch_finished",
			level:   "INFO",
			wantKey: "duration_ms",
			wantVal: float64(1500),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := decodeLine(t, captureLogOutput(LevelDebug, tt.fn))
			if rec["msg"] != tt.msg {
				t.Errorf("Expected msg %s, got %v", tt.msg, rec["msg"])
			}
			if rec["level"] != tt.level {
				t.Errorf("Expected level %s, got %v", tt.level, rec["level"])
			}
			if rec[tt.wantKey] != tt.wantVal {
				t.Errorf("Expected %s=%v, got %v", tt.wantKey, tt.wantVal, rec[tt.wantKey])
			}
		})
	}
}

func TestInit(t *testing.T) {
	if defaultLogger == nil {
		t.Error("Expected defaultLogger to be initialized by init()")
	}
}

func TestLevelConstants(t *testing.T) {
	if LevelDebug >= LevelInfo || LevelInfo >= LevelWarn || LevelWarn >= LevelError {
		t.Error("Expected Debug < Info < Warn < Error")
	}
	if RunIDKey != "run_id" {
		t.Errorf("Expected RunIDKey to be 'run_id', got '%s'", RunIDKey)
	}
}
