package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWithWriterLevels(t *testing.T) {
	tests := []struct {
		env       string
		wantDebug bool
	}{
		{"dev", true},
		{"prod", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(tt.env, &buf)
			log.Debug("debug line")
			log.Info("info line", "lot", "2025-Q4-AL")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Fatalf("debug emitted = %v, want %v; output: %s", got, tt.wantDebug, out)
			}

			lines := strings.Split(strings.TrimSpace(out), "\n")
			var entry map[string]any
			if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
				t.Fatalf("expected JSON output: %v", err)
			}
			if entry["service"] != "adlots" || entry["lot"] != "2025-Q4-AL" {
				t.Fatalf("unexpected entry: %v", entry)
			}
		})
	}
}
