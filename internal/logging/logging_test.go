package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "info", cfg.Level)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected string
	}{
		{"debug", "debug", "DEBUG"},
		{"Debug uppercase", "DEBUG", "DEBUG"},
		{"info", "info", "INFO"},
		{"warn", "warn", "WARN"},
		{"warning alias", "warning", "WARN"},
		{"error", "error", "ERROR"},
		{"unknown defaults to info", "unknown", "INFO"},
		{"empty defaults to info", "", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := parseLevel(tt.level)
			assert.Equal(t, tt.expected, level.String())
		})
	}
}

func TestSetup_TextFormat(t *testing.T) {
	Setup(Config{Format: "text", Level: "info"})

	assert.NotNil(t, Get())
}

func TestSetup_JSONFormat(t *testing.T) {
	Setup(Config{Format: "json", Level: "debug"})

	assert.NotNil(t, Get())
}

func TestGet_ReturnsDefaultBeforeSetup(t *testing.T) {
	oldLogger := logger
	logger = nil
	defer func() { logger = oldLogger }()

	assert.NotNil(t, Get())
}
