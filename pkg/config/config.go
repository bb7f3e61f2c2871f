// Package config loads generation settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"wordsearch/pkg/engine/grid"
	"wordsearch/pkg/puzzle"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything the CLI needs to generate puzzles.
// Flags given on the command line override values loaded from a file.
type Config struct {
	GridSize       int              `yaml:"grid_size"` // raised to fit the longest word
	Directions     []grid.Direction `yaml:"directions"`
	AllowBackwards bool             `yaml:"allow_backwards"`
	MaxAttempts    int              `yaml:"max_attempts"`
	Seed           uint64           `yaml:"seed"` // 0 seeds from the clock
	Workers        int              `yaml:"workers"`
	Retries        int              `yaml:"retries"`
	Locale         string           `yaml:"locale"`
	LocalesDir     string           `yaml:"locales_dir"`
	LogLevel       string           `yaml:"log_level"`
	Color          bool             `yaml:"color"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		GridSize:       15,
		Directions:     grid.AllDirections(),
		AllowBackwards: true,
		MaxAttempts:    puzzle.DefaultMaxAttempts,
		Seed:           0,
		Workers:        4,
		Retries:        0,
		Locale:         "en_GB",
		LocalesDir:     "locales",
		LogLevel:       "info",
		Color:          true,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(c)
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.GridSize < 1:
		return fmt.Errorf("%w: grid_size must be positive, got %d", ErrInvalidConfig, c.GridSize)
	case len(c.Directions) == 0:
		return fmt.Errorf("%w: at least one direction is required", ErrInvalidConfig)
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: max_attempts must be positive, got %d", ErrInvalidConfig, c.MaxAttempts)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	case c.Retries < 0:
		return fmt.Errorf("%w: retries must not be negative, got %d", ErrInvalidConfig, c.Retries)
	}
	for _, d := range c.Directions {
		if !d.IsValid() {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, grid.ErrInvalidDirection)
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
