// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if cfg.Caller {
		t.Error("expected default caller to be false")
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
	if cfg.Output == nil {
		t.Error("expected default output to be set")
	}
}

func TestInit(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() {
		SetLogger(prev)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "json", Timestamp: true, Output: &buf})

	Info().Str("addr", "0.0.0.0:3000").Msg("listening")
	Debug().Msg("hidden")

	output := buf.String()
	if !strings.Contains(output, `"message":"listening"`) {
		t.Errorf("expected message in output, got: %s", output)
	}
	if !strings.Contains(output, `"level":"info"`) {
		t.Errorf("expected level in output, got: %s", output)
	}
	if !strings.Contains(output, `"time":`) {
		t.Errorf("expected timestamp in output, got: %s", output)
	}
	if strings.Contains(output, "hidden") {
		t.Errorf("debug message should be filtered at info level, got: %s", output)
	}
}

func TestInit_ConsoleFormat(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() {
		SetLogger(prev)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})

	Warn().Msg("console line")

	output := buf.String()
	if !strings.Contains(output, "console line") {
		t.Errorf("expected message in output, got: %s", output)
	}
	if strings.Contains(output, `"message"`) {
		t.Errorf("console output should not be JSON, got: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"disabled", zerolog.Disabled},
		{"DEBUG", zerolog.DebugLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"trace", "debug", "info", "WARN", "error", "disabled"} {
		if !ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = false, want true", level)
		}
	}
	for _, level := range []string{"", "verbose", "critical"} {
		if ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = true, want false", level)
		}
	}
}

func TestErr(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))

	Err(errors.New("boom")).Msg("failed")

	output := buf.String()
	if !strings.Contains(output, `"error":"boom"`) {
		t.Errorf("expected error field, got: %s", output)
	}
	if !strings.Contains(output, `"level":"error"`) {
		t.Errorf("expected error level, got: %s", output)
	}
}

func TestNewTestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewTestLogger(&buf)
	logger.Info().Msg("captured")

	if !strings.Contains(buf.String(), "captured") {
		t.Errorf("expected captured output, got: %s", buf.String())
	}
}
