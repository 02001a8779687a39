// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/fairy-core/internal/domain/entities"
)

const (
	// DefaultConfigDir is the directory name for fairy configuration.
	DefaultConfigDir = ".fairy"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Environment variables that override the config file.
const (
	EnvName   = "FAIRY_NAME"
	EnvHeight = "FAIRY_HEIGHT"
	EnvOutput = "FAIRY_OUTPUT"
)

// Config holds CLI configuration (read-only after load).
type Config struct {
	Fairy  FairyConfig  `yaml:"fairy,omitempty"`
	Output OutputConfig `yaml:"output,omitempty"`
}

// FairyConfig holds the defaults used when the user leaves a prompt empty.
type FairyConfig struct {
	Name   string `yaml:"name,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// OutputConfig controls how notices are written.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Fairy: FairyConfig{
			Name:   entities.DefaultName,
			Height: entities.MinHeight,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// Load loads configuration from the .fairy directory in the given path.
// A missing config file is not an error; defaults are used instead.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if c.Fairy.Height < entities.MinHeight || c.Fairy.Height > entities.MaxHeight {
		return fmt.Errorf("invalid fairy.height %d: %w", c.Fairy.Height, entities.ErrOutOfRange)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid output.format %q (must be %q or %q)", c.Output.Format, FormatText, FormatJSON)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if name := os.Getenv(EnvName); name != "" {
		c.Fairy.Name = name
	}
	if height := os.Getenv(EnvHeight); height != "" {
		h, err := strconv.Atoi(height)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvHeight, err)
		}
		c.Fairy.Height = h
	}
	if format := os.Getenv(EnvOutput); format != "" {
		c.Output.Format = format
	}
	return nil
}

// ConfigDir returns the path to the .fairy config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
