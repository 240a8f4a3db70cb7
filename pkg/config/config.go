// Package config loads the CLI's settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/spantint/config.toml and is entirely
// optional; every key has a default. The colorization core never reads
// configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appDirName = "spantint"

// Config holds the CLI settings.
type Config struct {
	// Color controls escape-sequence output: auto, always or never.
	Color string `koanf:"color"`
	// Theme is an optional path to a custom theme YAML file.
	Theme string `koanf:"theme"`
	// DefaultStyle names the theme style applied to characters no rule
	// covers when the command line passes no --default.
	DefaultStyle string `koanf:"default_style"`
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDirName, "config.toml")
}

// Load reads the config file at path, or DefaultPath when path is empty.
// A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{Color: "auto"}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from %s: %w", path, err)
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	return cfg, nil
}
