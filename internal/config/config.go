// Package config loads bootstrap configuration: built-in defaults, then an
// optional YAML settings file, then FOCUSTRACK_* environment overrides.
// Runtime-tunable values (penalty, recovery, notifications) seed the
// persisted settings row on first run and are edited there afterwards.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"focustrack/internal/domain"
)

// Config is the process configuration.
type Config struct {
	DBPath                        string `env:"FOCUSTRACK_DB" yaml:"db_path"`
	PenaltyPerInterruptionMinutes int    `env:"FOCUSTRACK_PENALTY_MIN" yaml:"penalty_per_interruption_minutes"`
	RecoveryMinutes               int    `env:"FOCUSTRACK_RECOVERY_MIN" yaml:"recovery_minutes"`
	EnableNotifications           bool   `env:"FOCUSTRACK_NOTIFICATIONS" yaml:"enable_notifications"`
}

// Default returns the built-in configuration. The database lives under
// ~/.focustrack by default.
func Default() Config {
	cfg := Config{
		PenaltyPerInterruptionMinutes: domain.DefaultPenaltyMinutes,
		RecoveryMinutes:               domain.DefaultRecoveryMinutes,
		EnableNotifications:           true,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.DBPath = filepath.Join(home, ".focustrack", "focustrack.db")
	} else {
		cfg.DBPath = "focustrack.db"
	}
	return cfg
}

// SettingsFilePath returns the YAML settings file location
// (~/.focustrack/settings.yaml), or "" when no home directory is available.
func SettingsFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".focustrack", "settings.yaml")
}

// Load builds the effective configuration: defaults, overlaid by the YAML
// file at path when it exists, overlaid by environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	return nil
}

// Save writes the configuration to the YAML file at path, creating parent
// directories as needed.
func Save(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

// Settings converts the config into the initial persisted settings row.
func (c Config) Settings() *domain.Settings {
	return &domain.Settings{
		ID:                            "default",
		PenaltyPerInterruptionMinutes: c.PenaltyPerInterruptionMinutes,
		RecoveryMinutes:               c.RecoveryMinutes,
		EnableNotifications:           c.EnableNotifications,
	}
}
