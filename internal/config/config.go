// Package config handles loading and validation of the editor configuration.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"sketchpad/internal/geom"
)

// Config holds the complete editor configuration.
type Config struct {
	// Stroke seeds the pen settings of a new session.
	Stroke StrokeConfig `toml:"stroke"`

	// Window sizes the application window.
	Window WindowConfig `toml:"window"`

	// Fit tunes the shape classification thresholds.
	Fit FitConfig `toml:"fit"`
}

// StrokeConfig holds the default pen settings.
type StrokeConfig struct {
	// Color is a named pen color: black, red, green, blue or yellow.
	Color string `toml:"color"`

	// Width is the pen stroke width in canvas units.
	Width float32 `toml:"width"`
}

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// FitConfig holds the classification thresholds; zero values fall back to
// the geometry package defaults.
type FitConfig struct {
	LineToleranceFactor float64 `toml:"line_tolerance_factor"`
	EllipseGateFactor   float64 `toml:"ellipse_gate_factor"`
	MinRadius           float64 `toml:"min_radius"`
	EllipseResidual     float64 `toml:"ellipse_residual"`
	CurveMinPoints      int     `toml:"curve_min_points"`
}

var namedColors = map[string]color.Color{
	"black":  color.Black,
	"red":    color.NRGBA{R: 255, A: 255},
	"green":  color.NRGBA{G: 255, A: 255},
	"blue":   color.NRGBA{B: 255, A: 255},
	"yellow": color.NRGBA{R: 255, G: 255, A: 255},
}

// Default returns the stock configuration.
func Default() *Config {
	opts := geom.DefaultOptions()
	return &Config{
		Stroke: StrokeConfig{Color: "black", Width: 3.0},
		Window: WindowConfig{Width: 1024, Height: 768},
		Fit: FitConfig{
			LineToleranceFactor: opts.LineToleranceFactor,
			EllipseGateFactor:   opts.EllipseGateFactor,
			MinRadius:           opts.MinRadius,
			EllipseResidual:     opts.EllipseResidual,
			CurveMinPoints:      opts.CurveMinPoints,
		},
	}
}

// Load reads the configuration from path. A missing file is not an error:
// the defaults are returned. A file that exists but does not parse is.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Validate()
	return cfg, nil
}

// Validate clamps nonsensical values back to their defaults.
func (c *Config) Validate() {
	def := Default()
	if _, ok := namedColors[c.Stroke.Color]; !ok {
		c.Stroke.Color = def.Stroke.Color
	}
	if c.Stroke.Width <= 0 {
		c.Stroke.Width = def.Stroke.Width
	}
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Fit.LineToleranceFactor < 0 {
		c.Fit.LineToleranceFactor = def.Fit.LineToleranceFactor
	}
	if c.Fit.EllipseGateFactor < 0 {
		c.Fit.EllipseGateFactor = def.Fit.EllipseGateFactor
	}
	if c.Fit.MinRadius < 0 {
		c.Fit.MinRadius = def.Fit.MinRadius
	}
	if c.Fit.EllipseResidual < 0 {
		c.Fit.EllipseResidual = def.Fit.EllipseResidual
	}
	if c.Fit.CurveMinPoints < 0 {
		c.Fit.CurveMinPoints = def.Fit.CurveMinPoints
	}
}

// StrokeColor resolves the configured color name.
func (c *Config) StrokeColor() color.Color {
	if col, ok := namedColors[c.Stroke.Color]; ok {
		return col
	}
	return color.Black
}

// FitOptions converts the fit section into classification options; zero
// fields resolve to the geometry defaults downstream.
func (c *Config) FitOptions() geom.Options {
	return geom.Options{
		LineToleranceFactor: c.Fit.LineToleranceFactor,
		EllipseGateFactor:   c.Fit.EllipseGateFactor,
		MinRadius:           c.Fit.MinRadius,
		EllipseResidual:     c.Fit.EllipseResidual,
		CurveMinPoints:      c.Fit.CurveMinPoints,
	}
}
