// Package config loads the optional YAML settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Stan-breaks/Pixel-drifter/input"
	"github.com/Stan-breaks/Pixel-drifter/parameter"
)

// DefaultPath is checked when no -config flag is given
const DefaultPath = "pixel-drifter.yaml"

// Frame rate limits accepted from the file or flag
const (
	MinFrameRate = 1
	MaxFrameRate = 240
)

// Config holds run settings; gameplay tuning stays in parameter
type Config struct {
	FrameRate  int            `yaml:"frame_rate"`
	HoldWindow time.Duration  `yaml:"hold_window"`
	Color      string         `yaml:"color"`
	Log        LogConfig      `yaml:"log"`
	Keys       input.Bindings `yaml:"keys"`

	// Source is the file the config was read from, empty for built-in defaults
	Source string `yaml:"-"`
}

type LogConfig struct {
	Dir     string `yaml:"dir"`
	File    string `yaml:"file"`
	MaxSize int64  `yaml:"max_size"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		FrameRate:  parameter.FrameRate,
		HoldWindow: parameter.InputHoldWindow,
		Color:      "auto",
		Log: LogConfig{
			Dir:     parameter.LogDir,
			File:    parameter.LogFileName,
			MaxSize: parameter.LogMaxSize,
		},
		Keys: input.DefaultBindings(),
	}
}

// Load reads config with priority: customPath > DefaultPath > built-in defaults
func Load(customPath string) (*Config, error) {
	// Priority 1: Custom path from CLI
	if customPath != "" {
		if !fileExists(customPath) {
			return nil, fmt.Errorf("config file not found: %s", customPath)
		}
		return LoadFromPath(customPath)
	}

	// Priority 2: Default external config
	if fileExists(DefaultPath) {
		return LoadFromPath(DefaultPath)
	}

	// Priority 3: Built-in
	return Default(), nil
}

// LoadFromPath reads and validates a config file
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes YAML over the defaults; fields left out keep their default values
// Key bindings replace the defaults per action, unnamed actions keep their default keys
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	defaults := cfg.Keys
	cfg.Keys = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	cfg.Keys = defaults.Merge(cfg.Keys)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and action names
func (c *Config) Validate() error {
	if c.FrameRate < MinFrameRate || c.FrameRate > MaxFrameRate {
		return fmt.Errorf("frame_rate %d out of range [%d, %d]", c.FrameRate, MinFrameRate, MaxFrameRate)
	}
	if c.HoldWindow <= 0 {
		return fmt.Errorf("hold_window must be positive, got %s", c.HoldWindow)
	}
	if c.Log.MaxSize <= 0 {
		return fmt.Errorf("log.max_size must be positive, got %d", c.Log.MaxSize)
	}
	if c.Log.File == "" {
		return errors.New("log.file must not be empty")
	}
	return c.Keys.Validate()
}

// FrameInterval is the ticker period for the configured frame rate
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
