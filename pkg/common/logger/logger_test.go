package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/utkarsh5026/Explain/pkg/common/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		config logger.Config
	}{
		{
			name: "debug_text",
			config: logger.Config{
				Level:  logger.LevelDebug,
				Format: logger.FormatText,
				Output: &bytes.Buffer{},
			},
		},
		{
			name: "info_json",
			config: logger.Config{
				Level:  logger.LevelInfo,
				Format: logger.FormatJSON,
				Output: &bytes.Buffer{},
			},
		},
		{
			name: "error_text",
			config: logger.Config{
				Level:  logger.LevelError,
				Format: logger.FormatText,
				Output: &bytes.Buffer{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := logger.New(tt.config)
			if log == nil {
				t.Fatal("expected non-nil logger")
			}

			log.Info("test message", "key", "value")
		})
	}
}

func TestLogLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.Config{
		Level:  logger.LevelInfo,
		Format: logger.FormatText,
		Output: buf,
	})

	// Debug should not appear (level is Info)
	log.Debug("debug message")
	if strings.Contains(buf.String(), "debug message") {
		t.Error("debug message should not appear at Info level")
	}

	buf.Reset()
	log.Info("info message")
	if !strings.Contains(buf.String(), "info message") {
		t.Error("info message should appear at Info level")
	}

	buf.Reset()
	log.Error("error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message should appear at Info level")
	}
}

func TestJSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.Config{
		Level:  logger.LevelInfo,
		Format: logger.FormatJSON,
		Output: buf,
	})

	log.Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, `"msg":"test message"`) {
		t.Error("message should appear in JSON output")
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Error("key-value pair should appear in JSON output")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logger.Level
	}{
		{"debug", logger.LevelDebug},
		{"info", logger.LevelInfo},
		{"warn", logger.LevelWarn},
		{"error", logger.LevelError},
		{"bogus", logger.LevelInfo},
		{"", logger.LevelInfo},
	}

	for _, tt := range tests {
		if got := logger.ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetup(t *testing.T) {
	orig := logger.Default
	defer func() { logger.Default = orig }()

	buf := &bytes.Buffer{}
	logger.Setup(logger.Config{
		Level:  logger.LevelInfo,
		Format: logger.FormatText,
		Output: buf,
	})

	logger.Info("test message")
	if !strings.Contains(buf.String(), "test message") {
		t.Error("global Info function should use the configured logger")
	}
}
