package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// DefaultEnvFile is loaded by Load when present.
const DefaultEnvFile = ".env"

// StderrLog is the TRIAGE_LOG_FILE value that sends logs to stderr.
const StderrLog = "-"

// Config holds runtime settings for the triage front-end.
type Config struct {
	Theme        string `env:"TRIAGE_THEME" envDefault:"dark"`
	LogLevel     string `env:"TRIAGE_LOG_LEVEL" envDefault:"info"`
	LogFile      string `env:"TRIAGE_LOG_FILE"`
	DB           string `env:"TRIAGE_DB" envDefault:":memory:"`
	CarryAnswers bool   `env:"TRIAGE_CARRY_ANSWERS" envDefault:"false"`
}

// Load reads envFile into the environment (a missing file is ignored; set
// variables win) and parses the environment into a Config.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("invalid TRIAGE_THEME %q: want dark or light", c.Theme)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid TRIAGE_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// LogPath resolves the log destination in priority order:
// 1. TRIAGE_LOG_FILE ("-" for stderr)
// 2. $XDG_STATE_HOME/triage/triage.log
// 3. ~/.local/state/triage/triage.log
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "triage", "triage.log"), nil
}
