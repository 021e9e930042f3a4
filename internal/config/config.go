// Package config loads cycletrack settings from an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Path and ResolveDataPath.
const (
	EnvConfig = "CYCLETRACK_CONFIG"
	EnvData   = "CYCLETRACK_DATA"
)

// DefaultDataFile is the data file name used when no path is configured.
const DefaultDataFile = "wellness_data.json"

// Config holds user settings.
type Config struct {
	DataPath  string `yaml:"data_path"`
	Backend   string `yaml:"backend" validate:"omitempty,oneof=json sqlite"`
	LogLevel  string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"omitempty,oneof=console json"`
}

var validate = validator.New()

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// Dir returns ~/.cycletrack, or ./.cycletrack when the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cycletrack")
}

// Path returns the config file location: flag, then $CYCLETRACK_CONFIG, then ~/.cycletrack/config.yaml.
func Path(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the YAML file at path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// ResolveDataPath resolves the data file: flag, then $CYCLETRACK_DATA, then the
// config file, then ~/.cycletrack/wellness_data.json.
func (c *Config) ResolveDataPath(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(EnvData); env != "" {
		return env
	}
	if c.DataPath != "" {
		return expandHome(c.DataPath)
	}
	return filepath.Join(Dir(), DefaultDataFile)
}

func expandHome(p string) string {
	if len(p) < 2 || p[:2] != "~/" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
