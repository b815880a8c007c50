// Package config loads environment-driven defaults for the CLI. A local
// .env file is applied first, then IPL_* variables; command-line flags
// override both.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds process-level settings.
type Config struct {
	DataPath string `envconfig:"DATA_PATH" default:"processed_ipl_dataset.csv"`
	DBPath   string `envconfig:"DB_PATH"`
	TopN     int    `envconfig:"TOP_N" default:"10"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Default returns the built-in settings, used when the environment is
// unusable.
func Default() *Config {
	return &Config{
		DataPath: "processed_ipl_dataset.csv",
		DBPath:   filepath.Join(userHome(), ".iplstats", "matches.db"),
		TopN:     10,
		LogLevel: "info",
	}
}

// Load reads .env (if present) and the IPL_* environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("IPL", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(userHome(), ".iplstats", "matches.db")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.TopN <= 0 {
		return fmt.Errorf("config: TOP_N must be positive, got %d", c.TopN)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown LOG_LEVEL %q", c.LogLevel)
	}
	return nil
}

// SlogLevel maps the configured level onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
