package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional file-based configuration. Everything has a
// sensible default; a missing file is not an error. The theme set here
// is only the starting point — once the user toggles it inside the app,
// the persisted setting wins.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `yaml:"db_path"`

	// Theme is the default color scheme: "light" (default) or "dark".
	Theme string `yaml:"theme"`

	// WeekStart controls the first column of the month grid:
	// "monday" (default) or "sunday".
	WeekStart string `yaml:"week_start"`
}

func Default() Config {
	return Config{Theme: "light", WeekStart: "monday"}
}

// DefaultPath returns ~/.config/appagenda/config.yaml
func DefaultPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "appagenda", "config.yaml"), nil
}

// Load reads the config at path, filling unset fields with defaults.
// A nonexistent file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Theme != "dark" {
		cfg.Theme = "light"
	}
	if cfg.WeekStart != "sunday" {
		cfg.WeekStart = "monday"
	}
	return cfg, nil
}
