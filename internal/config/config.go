// Package config loads the homework tracker's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/homework/internal/store/jsonstore"
)

const (
	appDir         = "homework_organizer"
	configFileName = "config.yaml"
)

// Config holds all settings. Zero-valued fields are filled by Load.
type Config struct {
	// Data file holding the classes (JSON).
	DataPath string `yaml:"data_path"`

	// UI theme: classic, neon or mono.
	Theme string `yaml:"theme"`

	// Plain selects the line-mode loop instead of the full-screen TUI.
	Plain bool `yaml:"plain"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger. An empty File disables logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() (*Config, error) {
	data, err := jsonstore.DefaultPath()
	if err != nil {
		return nil, err
	}
	return &Config{
		DataPath: data,
		Theme:    "classic",
		Logging:  LoggingConfig{Level: "info"},
	}, nil
}

// DefaultPath is config.yaml under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, appDir, configFileName), nil
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return nil, err
	}
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("HOMEWORK_DATA")); v != "" {
		c.DataPath = v
	}
	if v := strings.TrimSpace(os.Getenv("HOMEWORK_THEME")); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("HOMEWORK_LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("HOMEWORK_LOG_FILE")); v != "" {
		c.Logging.File = v
	}
}

func (c *Config) normalize() error {
	var err error
	if c.DataPath, err = ExpandHome(c.DataPath); err != nil {
		return err
	}
	if c.Logging.File, err = ExpandHome(c.Logging.File); err != nil {
		return err
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	switch c.Theme {
	case "":
		c.Theme = "classic"
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("unknown theme %q (want classic, neon or mono)", c.Theme)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	return nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
