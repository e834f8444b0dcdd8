package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for scorecard
type Config struct {
	Catalog CatalogConfig
	Output  OutputConfig
	Log     LogConfig
	Render  RenderConfig
}

// CatalogConfig selects the trial catalog
type CatalogConfig struct {
	// File overrides the built-in catalog when set
	File string `env:"SCORECARD_CATALOG_FILE"`
}

// OutputConfig holds where rendered cards are written
type OutputConfig struct {
	Dir string `env:"SCORECARD_OUTPUT_DIR" envDefault:"."`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `env:"SCORECARD_LOG_LEVEL" envDefault:"info"`
	Format string `env:"SCORECARD_LOG_FORMAT" envDefault:"json"`
}

// RenderConfig holds share card layout settings, in pixels
type RenderConfig struct {
	TitleSize  float64 `env:"SCORECARD_TITLE_SIZE" envDefault:"40"`
	RowSize    float64 `env:"SCORECARD_ROW_SIZE" envDefault:"28"`
	CardHeight int     `env:"SCORECARD_CARD_HEIGHT" envDefault:"160"`
}

// DefaultRender returns the standard card layout
func DefaultRender() RenderConfig {
	return RenderConfig{
		TitleSize:  40,
		RowSize:    28,
		CardHeight: 160,
	}
}

// Load loads configuration from a .env file, if present, and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return fmt.Errorf("output dir is required")
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %q", c.Log.Format)
	}

	if c.Render.TitleSize <= 0 || c.Render.RowSize <= 0 {
		return fmt.Errorf("font sizes must be positive")
	}

	if c.Render.CardHeight < 1 {
		return fmt.Errorf("invalid card height: %d", c.Render.CardHeight)
	}

	return nil
}

// SlogLevel converts the configured level name
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level: %q", c.Level)
	}
	return level, nil
}
