// Package config loads the optional scenery.yaml generation settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-scenery/scenery/pkg/errors"
	"github.com/go-scenery/scenery/pkg/geom"
	"github.com/go-scenery/scenery/pkg/scene"
)

// FileName is the optional configuration file looked up in a directory.
const FileName = "scenery.yaml"

// Config represents the scenery.yaml configuration.
type Config struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Objects   ObjectsConfig   `yaml:"objects"`
	Retries   RetriesConfig   `yaml:"retries"`
	Tolerance ToleranceConfig `yaml:"tolerance"`
}

// CanvasConfig sets the target canvas size.
type CanvasConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// ObjectsConfig bounds the root-object count per scene.
type ObjectsConfig struct {
	Min int `yaml:"min,omitempty"`
	Max int `yaml:"max,omitempty"`
}

// RetriesConfig bounds the constrained-generation searches.
type RetriesConfig struct {
	Lines        int `yaml:"lines,omitempty"`
	Arrows       int `yaml:"arrows,omitempty"`
	Intersection int `yaml:"intersection,omitempty"`
	Wiggle       int `yaml:"wiggle,omitempty"`
}

// ToleranceConfig sets the angular tolerances in degrees.
type ToleranceConfig struct {
	LineEpsilon float64 `yaml:"lineEpsilon,omitempty"`
	Direction   float64 `yaml:"direction,omitempty"`
}

// Default returns the standard settings, mirroring scene.DefaultOptions.
func Default() Config {
	return Config{
		Canvas:  CanvasConfig{Width: 100, Height: 100},
		Objects: ObjectsConfig{Min: 3, Max: 6},
		Retries: RetriesConfig{
			Lines:        50,
			Arrows:       5,
			Intersection: 100,
			Wiggle:       10,
		},
		Tolerance: ToleranceConfig{LineEpsilon: 4, Direction: 30},
	}
}

// LoadOptional reads scenery.yaml from dir if present; a missing file yields
// the defaults. Unset fields fall back to their defaults individually.
func LoadOptional(dir string) (Config, error) {
	cfg := Default()
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Parsef("config.LoadOptional", "failed to parse %s: %v", FileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings that would make generation degenerate.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.Parsef("config.Validate", "canvas size must be positive, got %gx%g",
			c.Canvas.Width, c.Canvas.Height)
	}
	if c.Objects.Min < 0 || c.Objects.Max < c.Objects.Min {
		return errors.Parsef("config.Validate", "object band [%d,%d] is not a valid range",
			c.Objects.Min, c.Objects.Max)
	}
	if c.Retries.Lines < 1 || c.Retries.Arrows < 1 || c.Retries.Intersection < 1 {
		return errors.Parsef("config.Validate", "retry bounds must be at least 1")
	}
	if c.Tolerance.LineEpsilon < 0 || c.Tolerance.Direction < 0 {
		return errors.Parsef("config.Validate", "tolerances must be non-negative")
	}
	return nil
}

// Options maps the configuration onto scene generation options.
func (c Config) Options() scene.Options {
	opts := scene.DefaultOptions()
	opts.Canvas = geom.RectFromLTWH(0, 0, c.Canvas.Width, c.Canvas.Height)
	opts.MinShapes = c.Objects.Min
	opts.MaxShapes = c.Objects.Max
	opts.LineRetries = c.Retries.Lines
	opts.ArrowRetries = c.Retries.Arrows
	opts.IntersectRetries = c.Retries.Intersection
	opts.WiggleAttempts = c.Retries.Wiggle
	opts.Epsilon = c.Tolerance.LineEpsilon
	opts.DirectionTolerance = c.Tolerance.Direction
	return opts
}
