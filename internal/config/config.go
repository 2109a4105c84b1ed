// Package config provides configuration types, defaults, and persistence for caret.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/caret/internal/log"
	"github.com/iw2rmb/caret/segment"
)

var (
	ErrInvalidLens     = errors.New("invalid lens")
	ErrInvalidTabWidth = errors.New("invalid tab width")
)

const maxTabWidth = 16

// Config holds all configuration options for caret.
type Config struct {
	Lens        string      `mapstructure:"lens" yaml:"lens"` // "graphemes" (default), "words" or "sentences"
	LineNumbers bool        `mapstructure:"line_numbers" yaml:"line_numbers"`
	TabWidth    int         `mapstructure:"tab_width" yaml:"tab_width"`
	Theme       ThemeConfig `mapstructure:"theme" yaml:"theme"`

	// DebugLog is the log file used when debugging is on. Empty means
	// debug.log in the working directory.
	DebugLog string `mapstructure:"debug_log" yaml:"debug_log,omitempty"`
}

// ThemeConfig holds colour overrides. Values are lipgloss colours: ANSI
// indexes ("205") or hex ("#FF5F87").
type ThemeConfig struct {
	Cursor     string `mapstructure:"cursor" yaml:"cursor,omitempty"`
	LineNumber string `mapstructure:"line_number" yaml:"line_number,omitempty"`
}

func Defaults() Config {
	return Config{
		Lens:        segment.LensGraphemes.String(),
		LineNumbers: true,
		TabWidth:    4,
	}
}

// ParsedLens returns the configured lens. Call Validate first.
func (c Config) ParsedLens() segment.Lens {
	l, err := segment.ParseLens(c.Lens)
	if err != nil {
		return segment.LensGraphemes
	}
	return l
}

// Validate checks the configuration and returns the first problem found.
func Validate(c Config) error {
	if _, err := segment.ParseLens(c.Lens); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLens, err)
	}
	if c.TabWidth < 1 || c.TabWidth > maxTabWidth {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidTabWidth, c.TabWidth, maxTabWidth)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	body, err := yaml.Marshal(Defaults())
	if err != nil {
		// Defaults is a plain struct; marshalling cannot fail.
		panic(err)
	}
	return `# Caret Configuration
#
# lens: graphemes | words | sentences (ctrl+n cycles at runtime)
# tab_width: 1..16
# theme:
#   cursor: "205"
#   line_number: "#6C6C6C"
# debug_log: /tmp/caret.log

` + string(body)
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
