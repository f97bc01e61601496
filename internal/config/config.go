package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DefaultDailyGoal applies until the user saves a goal.
const DefaultDailyGoal = 10

// Config holds runtime settings read from SANSU_* environment variables.
type Config struct {
	DBPath         string `env:"SANSU_DB"`
	LogFile        string `env:"SANSU_LOG_FILE"`
	LogLevel       string `env:"SANSU_LOG_LEVEL" envDefault:"info"`
	DailyGoal      int    `env:"SANSU_DAILY_GOAL" envDefault:"10"`
	RefreshSeconds int    `env:"SANSU_REFRESH_SECONDS" envDefault:"30"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment. Unset paths default to ~/.sansu/.
func Load() (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config from environment: %w", err)
	}

	if cfg.DBPath == "" || cfg.LogFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		dir := filepath.Join(home, ".sansu")
		if cfg.DBPath == "" {
			cfg.DBPath = filepath.Join(dir, "sansu.db")
		}
		if cfg.LogFile == "" {
			cfg.LogFile = filepath.Join(dir, "sansu.log")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DailyGoal < 1 || c.DailyGoal > 999 {
		return fmt.Errorf("invalid SANSU_DAILY_GOAL: %d (must be 1-999)", c.DailyGoal)
	}
	if c.RefreshSeconds < 0 {
		return fmt.Errorf("invalid SANSU_REFRESH_SECONDS: %d (must be >= 0)", c.RefreshSeconds)
	}
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid SANSU_LOG_LEVEL: %q", c.LogLevel)
	}
	return nil
}

// RefreshInterval is how often the home screen re-polls progress. Zero
// disables polling.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshSeconds) * time.Second
}
