package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"WARN", "INFO", "DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
		{
			level:    "info",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "debug",
			expected: []string{"ERROR", "WARN", "INFO", "DEBUG"},
			excluded: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")

			err := Init(Options{
				Level: tt.level,
				File:  FileConfig{Path: logFile, MaxSizeMB: 10, MaxBackups: 1, MaxAgeDays: 1},
			})
			if err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}
			defer resetLogger()

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			logContent := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "scene.log")
	if err := Init(Options{Level: "info", Format: FormatJSON, File: FileConfig{Path: logFile}}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer resetLogger()

	Named("scene").Info("loaded", zap.Int("meshes", 3))
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(content), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, content)
	}
	if entry["msg"] != "loaded" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["logger"] != "scene" {
		t.Errorf("logger = %v", entry["logger"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["meshes"] != float64(3) {
		t.Errorf("meshes = %v", entry["meshes"])
	}
}

func TestConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Options{Level: "debug", Console: &buf}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer resetLogger()

	Sugar.Debugf("frame %d", 7)
	Sync()

	if !strings.Contains(buf.String(), "frame 7") {
		t.Errorf("console output missing message: %q", buf.String())
	}
}

func TestInitErrors(t *testing.T) {
	if err := Init(Options{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}

	logFile := filepath.Join(t.TempDir(), "x.log")
	if err := Init(Options{Format: "xml", File: FileConfig{Path: logFile}}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNopBeforeInit(t *testing.T) {
	resetLogger()
	// Must not panic.
	Info("dropped")
	Named("x").Warn("dropped")
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/glade.log")

	if cfg.Path != "/tmp/glade.log" {
		t.Errorf("expected path /tmp/glade.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 20 {
		t.Errorf("expected MaxSizeMB 20, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}

func resetLogger() {
	Sync()
	Log = zap.NewNop()
	Sugar = Log.Sugar()
}
