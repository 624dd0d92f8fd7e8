package common

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLoggerWithOutput_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput("info", &buf)

	logger.Info().Str("ticker", "AAPL").Msg("price resolved")

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if event["ticker"] != "AAPL" {
		t.Errorf("ticker = %v", event["ticker"])
	}
	if event["message"] != "price resolved" {
		t.Errorf("message = %v", event["message"])
	}
}

func TestNewLoggerWithOutput_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput("warn", &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("also hidden")
	logger.Warn().Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("sub-warn events leaked: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn event missing: %q", out)
	}
}

func TestNewLoggerWithOutput_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput("bogus", &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug event leaked at default level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("info event missing: %q", out)
	}
}
