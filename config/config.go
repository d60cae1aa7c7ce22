package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rustyeddy/tradecharts/chart"
	"gopkg.in/yaml.v3"
)

// Config represents the complete chart configuration
type Config struct {
	Chart  chart.Layout `json:"chart" yaml:"chart"`
	Camera CameraConfig `json:"camera" yaml:"camera"`
	Render RenderConfig `json:"render" yaml:"render"`
	Live   LiveConfig   `json:"live" yaml:"live"`
	Log    LogConfig    `json:"log" yaml:"log"`
}

// CameraConfig is a scripted sequence of pan/zoom moves applied to a camera
// that starts on the chart's base window.
type CameraConfig struct {
	Steps []CameraStep `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// CameraStep pans by a screen-pixel delta and then optionally zooms.
type CameraStep struct {
	PanX float64 `json:"pan_x,omitempty" yaml:"pan_x,omitempty"`
	PanY float64 `json:"pan_y,omitempty" yaml:"pan_y,omitempty"`
	Zoom string  `json:"zoom,omitempty" yaml:"zoom,omitempty"` // "in", "out" or empty
}

// Apply runs the steps against c.
func (cc CameraConfig) Apply(c *chart.Camera) {
	for _, s := range cc.Steps {
		c.Pan(s.PanX, s.PanY)
		switch s.Zoom {
		case "in":
			c.Zoom(true)
		case "out":
			c.Zoom(false)
		}
	}
}

// RenderConfig controls how draw commands are written out
type RenderConfig struct {
	Format string `json:"format" yaml:"format"` // "yaml" or "json"
}

// LiveConfig drives the simulated live feed
type LiveConfig struct {
	Ticks      int     `json:"ticks" yaml:"ticks"`
	Interval   string  `json:"interval" yaml:"interval"` // e.g., "50ms", "1s"
	Volatility float64 `json:"volatility" yaml:"volatility"`
	Seed       int64   `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// ParseInterval converts the interval string to time.Duration
func (lc LiveConfig) ParseInterval() (time.Duration, error) {
	if lc.Interval == "" {
		return 0, nil
	}
	return time.ParseDuration(lc.Interval)
}

// LogConfig defines the logger configuration options.
type LogConfig struct {
	Level      string `json:"level" yaml:"level"`                                 // "debug", "info", "warn", "error"
	Format     string `json:"format" yaml:"format"`                               // "json" or "console"
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty"` // rotated log file (optional)
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Chart.Validate(); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	for i, s := range c.Camera.Steps {
		if s.Zoom != "" && s.Zoom != "in" && s.Zoom != "out" {
			return fmt.Errorf("camera.steps[%d].zoom must be 'in' or 'out'", i)
		}
	}
	if c.Render.Format != "yaml" && c.Render.Format != "json" {
		return fmt.Errorf("render.format must be 'yaml' or 'json'")
	}
	if c.Live.Ticks < 0 {
		return fmt.Errorf("live.ticks must not be negative")
	}
	if _, err := c.Live.ParseInterval(); err != nil {
		return fmt.Errorf("live.interval: %w", err)
	}
	if c.Live.Volatility < 0 {
		return fmt.Errorf("live.volatility must not be negative")
	}
	if c.Log.Format != "" && c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format must be 'json' or 'console'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Chart: chart.DefaultLayout(),
		Render: RenderConfig{
			Format: "yaml",
		},
		Live: LiveConfig{
			Ticks:      200,
			Interval:   "20ms",
			Volatility: 0.25,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
