package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q): unexpected error state %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := SetupLogger(Options{Level: slog.LevelInfo, Output: &buf})
	defer closeFn()

	logger.Debug("hidden")
	logger.Info("table loaded", slog.String("table", "scores"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug record to be filtered, got:\n%s", out)
	}
	if !strings.Contains(out, "table=scores") {
		t.Errorf("Expected info record in output, got:\n%s", out)
	}
}

type recordingHandler struct {
	level   slog.Level
	records *[]slog.Record
}

func (h recordingHandler) Enabled(_ context.Context, l slog.Level) bool { return l >= h.level }

func (h recordingHandler) Handle(_ context.Context, r slog.Record) error {
	*h.records = append(*h.records, r)
	return nil
}

func (h recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h recordingHandler) WithGroup(string) slog.Handler      { return h }

func TestMultiHandler_FansOutByLevel(t *testing.T) {
	var debugRecs, errorRecs []slog.Record
	multi := &multiHandler{handlers: []slog.Handler{
		recordingHandler{level: slog.LevelDebug, records: &debugRecs},
		recordingHandler{level: slog.LevelError, records: &errorRecs},
	}}
	logger := slog.New(multi)

	logger.Debug("one")
	logger.Error("two")

	if len(debugRecs) != 2 {
		t.Errorf("Expected 2 records in debug handler, got %d", len(debugRecs))
	}
	if len(errorRecs) != 1 {
		t.Errorf("Expected 1 record in error handler, got %d", len(errorRecs))
	}
	if !multi.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Expected multiHandler enabled when any handler is")
	}
}
