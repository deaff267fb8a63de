package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"default", Config{}, "info"},
		{"verbose", Config{Verbose: true}, "debug"},
		{"quiet", Config{Quiet: true}, "warn"},
		{"both flags prefers quiet", Config{Verbose: true, Quiet: true}, "warn"},
		{"explicit wins over verbose", Config{Verbose: true, LogLevel: "error"}, "error"},
		{"invalid falls back", Config{LogLevel: "shouting"}, "info"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineLogLevel(&tt.config))
		})
	}
}

func TestUpdateFromFlags(t *testing.T) {
	cfg := Config{Output: "json", LogLevel: "warn"}

	cfg.UpdateFromFlags(true, false, false, "", "")
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "json", cfg.Output, "empty flag keeps existing value")
	assert.Equal(t, "warn", cfg.LogLevel, "empty flag keeps existing value")

	cfg.UpdateFromFlags(false, true, true, "text", "debug")
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
}
