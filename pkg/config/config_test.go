package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOptionalOverrides(t *testing.T) {
	dir := writeConfig(t, `
canvas:
  width: 200
  height: 150
objects:
  min: 2
  max: 4
retries:
  intersection: 250
tolerance:
  direction: 20
`)
	cfg, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, 200.0, cfg.Canvas.Width)
	assert.Equal(t, 150.0, cfg.Canvas.Height)
	assert.Equal(t, 2, cfg.Objects.Min)
	assert.Equal(t, 4, cfg.Objects.Max)
	assert.Equal(t, 250, cfg.Retries.Intersection)
	// Unset fields keep their defaults.
	assert.Equal(t, Default().Retries.Lines, cfg.Retries.Lines)
	assert.Equal(t, Default().Tolerance.LineEpsilon, cfg.Tolerance.LineEpsilon)
	assert.Equal(t, 20.0, cfg.Tolerance.Direction)
}

func TestLoadOptionalMalformed(t *testing.T) {
	dir := writeConfig(t, "canvas: [not a mapping")
	_, err := LoadOptional(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero canvas", func(c *Config) { c.Canvas.Width = 0 }, false},
		{"inverted band", func(c *Config) { c.Objects.Min = 5; c.Objects.Max = 2 }, false},
		{"zero retries", func(c *Config) { c.Retries.Lines = 0 }, false},
		{"negative tolerance", func(c *Config) { c.Tolerance.Direction = -1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestOptionsMapping(t *testing.T) {
	cfg := Default()
	cfg.Canvas.Width = 300
	cfg.Objects.Max = 8
	cfg.Retries.Wiggle = 3
	opts := cfg.Options()
	assert.Equal(t, 300.0, opts.Canvas.Width())
	assert.Equal(t, 8, opts.MaxShapes)
	assert.Equal(t, 3, opts.WiggleAttempts)
	assert.Equal(t, cfg.Tolerance.LineEpsilon, opts.Epsilon)
}
