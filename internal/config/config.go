// Package config provides YAML-based platform configuration loading.
// Only frontend, logging, storage and SSH settings live here; the game
// rules themselves are compile-time constants.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Frontend identifiers.
const (
	FrontendTea   = "tea"
	FrontendTcell = "tcell"
)

// Config contains all platform configuration.
type Config struct {
	Frontend string    `yaml:"frontend"`
	Sound    bool      `yaml:"sound"`
	DBPath   string    `yaml:"db_path"`
	Log      LogConfig `yaml:"log"`
	SSH      SSHConfig `yaml:"ssh"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty discards logs during local play
}

// SSHConfig defines the SSH server used by `snake serve`.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"` // Auto-generated at ~/.snake/host_key if empty
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// LogLevel parses the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendTea, FrontendTcell:
	default:
		return fmt.Errorf("config: unknown frontend %q (want %q or %q)", c.Frontend, FrontendTea, FrontendTcell)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: idle_timeout_minutes must not be negative, got %d", c.SSH.IdleTimeoutMinutes)
	}
	return nil
}
