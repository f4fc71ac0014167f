package obs

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestLogEvent(t *testing.T) {
	logger := Logger()
	original := logger.Writer()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(original)

	LogEvent("info", "starting", map[string]any{
		"service": "hourlog-api",
		"addr":    ":8080",
	})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log not valid JSON: %v", err)
	}
	if entry["level"] != "info" {
		t.Fatalf("level = %v", entry["level"])
	}
	if entry["msg"] != "starting" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if entry["service"] != "hourlog-api" {
		t.Fatalf("service = %v", entry["service"])
	}
	if entry["ts"] == "" || entry["ts"] == nil {
		t.Fatalf("missing ts")
	}
}
