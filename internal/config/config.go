// Package config loads syncreplay settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds the settings shared by every syncreplay command. Command line
// flags override the values loaded here.
type Config struct {
	LogLevel  string `env:"SYNCREPLAY_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"SYNCREPLAY_LOG_FORMAT" envDefault:"console"`
	NoColor   bool   `env:"SYNCREPLAY_NO_COLOR" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates a Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks that the level and format are recognised.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("config: log format %q: want %q or %q", c.LogFormat, FormatConsole, FormatJSON)
	}
	return nil
}
