package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
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

			out := FileOutput{
				Path:       logFile,
				MaxSizeMB:  10,
				MaxBackups: 1,
				MaxAgeDays: 1,
			}

			if err := InitWithOutputs(tt.level, out, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

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

func TestDefaultFileOutput(t *testing.T) {
	out := DefaultFileOutput("/tmp/walk.log")

	if out.Path != "/tmp/walk.log" {
		t.Errorf("expected path /tmp/walk.log, got %s", out.Path)
	}
	if out.MaxSizeMB != 10 {
		t.Errorf("expected MaxSizeMB 10, got %d", out.MaxSizeMB)
	}
	if out.MaxBackups != 2 {
		t.Errorf("expected MaxBackups 2, got %d", out.MaxBackups)
	}
	if out.MaxAgeDays != 7 {
		t.Errorf("expected MaxAgeDays 7, got %d", out.MaxAgeDays)
	}
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "fallback.log")

	if err := InitWithOutputs("chatty", DefaultFileOutput(logFile), false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Debug("hidden")
	Info("visible")
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if strings.Contains(string(content), "hidden") {
		t.Error("debug message leaked at default level")
	}
	if !strings.Contains(string(content), "visible") {
		t.Error("info message missing at default level")
	}
}
