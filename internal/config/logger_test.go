package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		config   LoggerConfig
		expected zerolog.Level
	}{
		{
			name:     "Debug level",
			config:   LoggerConfig{Level: "debug", Format: "json"},
			expected: zerolog.DebugLevel,
		},
		{
			name:     "Error level console format",
			config:   LoggerConfig{Level: "error", Format: "console"},
			expected: zerolog.ErrorLevel,
		},
		{
			name:     "Unknown level falls back to info",
			config:   LoggerConfig{Level: "chatty", Format: "json"},
			expected: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.config)
			assert.Equal(t, tt.expected, logger.GetLevel())
		})
	}
}
