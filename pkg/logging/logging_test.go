package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"DEBUG": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"info":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewHandler(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		slog.New(NewHandler(&buf, slog.LevelInfo, "json")).Info("group created", "group", "g1")

		var record map[string]any
		if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
			t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
		}
		if record["group"] != "g1" {
			t.Errorf("group attr = %v, want g1", record["group"])
		}
	})

	t.Run("text respects level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(NewHandler(&buf, slog.LevelWarn, "text"))
		logger.Info("hidden")
		logger.Warn("shown")
		if strings.Contains(buf.String(), "hidden") {
			t.Error("info record written at warn level")
		}
		if !strings.Contains(buf.String(), "shown") {
			t.Error("warn record missing")
		}
	})
}
