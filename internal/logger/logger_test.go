package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"debug level", "debug", true, true},
		{"info level", "info", false, true},
		{"warn level", "warn", false, false},
		{"error level", "error", false, false},
		{"invalid defaults to info", "invalid", false, true},
		{"empty defaults to info", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := NewWithWriter(tt.level, &buf)

			log.Debug("debug message")
			gotDebug := bytes.Contains(buf.Bytes(), []byte("debug message"))
			if gotDebug != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", gotDebug, tt.wantDebug)
			}

			buf.Reset()
			log.Info("info message")
			gotInfo := bytes.Contains(buf.Bytes(), []byte("info message"))
			if gotInfo != tt.wantInfo {
				t.Errorf("info logged = %v, want %v", gotInfo, tt.wantInfo)
			}
		})
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info("test message")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	for _, field := range []string{"timestamp", "level", "message"} {
		if _, ok := logEntry[field]; !ok {
			t.Errorf("JSON log missing required field %q", field)
		}
	}

	if logEntry["message"] != "test message" {
		t.Errorf("message = %v, want %q", logEntry["message"], "test message")
	}
	if logEntry["level"] != "info" {
		t.Errorf("level = %v, want %q", logEntry["level"], "info")
	}
}

func TestLogger_WarnLevelRendersAsWarning(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)

	log.Warn("careful now")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry["level"] != "warning" {
		t.Errorf("level = %v, want %q", logEntry["level"], "warning")
	}
}

func TestLogger_WithModule(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithModule("flow").Info("test message")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if module, ok := logEntry["module"].(string); !ok || module != "flow" {
		t.Errorf("WithModule() module = %v, want %q", logEntry["module"], "flow")
	}
}

func TestLogger_WithRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithRequestID("req-123").Info("test message")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if requestID, ok := logEntry["request_id"].(string); !ok || requestID != "req-123" {
		t.Errorf("WithRequestID() request_id = %v, want %q", logEntry["request_id"], "req-123")
	}
}

func TestLogger_WithSessionID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithSessionID("sess-abc").Info("test message")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if sessionID, ok := logEntry["session_id"].(string); !ok || sessionID != "sess-abc" {
		t.Errorf("WithSessionID() session_id = %v, want %q", logEntry["session_id"], "sess-abc")
	}
}

func TestLogger_WithError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithError(errors.New("boom")).Error("operation failed")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if errField, ok := logEntry["error"].(string); !ok || errField != "boom" {
		t.Errorf("WithError() error = %v, want %q", logEntry["error"], "boom")
	}
}

func TestLogger_WithFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithFields(map[string]any{"intent": "SEMESTER_FEES", "attempt": 2}).Info("detected")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry["intent"] != "SEMESTER_FEES" {
		t.Errorf("intent = %v, want SEMESTER_FEES", logEntry["intent"])
	}
	if logEntry["attempt"] != float64(2) {
		t.Errorf("attempt = %v, want 2", logEntry["attempt"])
	}
}

func TestLogger_Infof(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Infof("loaded %d programs", 4)

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry["message"] != "loaded 4 programs" {
		t.Errorf("message = %v, want %q", logEntry["message"], "loaded 4 programs")
	}
}

func TestLogger_ShutdownWithoutRemoteSink(t *testing.T) {
	t.Parallel()

	log := NewWithWriter("info", &bytes.Buffer{})
	if err := log.Shutdown(t.Context()); err != nil {
		t.Errorf("Shutdown() = %v, want nil", err)
	}
}
