// Package config loads mealyscan settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidValue is returned when a variable parses but holds an unsupported value
	ErrInvalidValue = errors.New("invalid config value")
)

// Automaton names accepted by MEALYSCAN_AUTOMATON
const (
	AutomatonFloat = "float"
	AutomatonCount = "count"
	AutomatonSplit = "split"
)

// Config holds the mealyscan settings
type Config struct {
	Automaton string `env:"MEALYSCAN_AUTOMATON" envDefault:"count"`
	LogLevel  string `env:"MEALYSCAN_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"MEALYSCAN_LOG_FORMAT" envDefault:"text"`
	Normalize bool   `env:"MEALYSCAN_NORMALIZE" envDefault:"true"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment into a Config and validates it.
func Load() (Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	cfg.Automaton = strings.ToLower(cfg.Automaton)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports unsupported automaton or log format values
func (c Config) Validate() error {
	var errs []error

	switch c.Automaton {
	case AutomatonFloat, AutomatonCount, AutomatonSplit:
	default:
		errs = append(errs, fmt.Errorf("%w: automaton %q", ErrInvalidValue, c.Automaton))
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: log format %q", ErrInvalidValue, c.LogFormat))
	}

	return errors.Join(errs...)
}

// Level maps LogLevel to a slog level. Unknown names fall back to info.
func (c Config) Level() slog.Level {
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
