// Package config loads ~/.agelens/config.yaml and fills defaults for every
// command. Command-line flags override the values read here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/penwyp/agelens/internal/core/constants"
	"github.com/penwyp/agelens/internal/core/format"
	"github.com/penwyp/agelens/internal/core/units"
	"github.com/penwyp/agelens/internal/util"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath      = "~/.agelens/config.yaml"
	DefaultStateFile = "~/.agelens/state.db"
	DefaultLogFile   = "~/.agelens/logs/app.log"

	ConventionCompact = "compact"
	ConventionPlain   = "plain"
)

// Config is the on-disk configuration
type Config struct {
	Timezone  string         `yaml:"timezone"`
	Table     string         `yaml:"table"`
	StateFile string         `yaml:"state_file"`
	Refresh   time.Duration  `yaml:"refresh"`
	Highlight time.Duration  `yaml:"highlight"`
	Format    FormatConfig   `yaml:"format"`
	Timeline  TimelineConfig `yaml:"timeline"`
	Log       LogConfig      `yaml:"log"`
}

// FormatConfig selects the small-number convention
type FormatConfig struct {
	Convention       string `yaml:"convention"`
	DecimalSeparator string `yaml:"decimal_separator,omitempty"`
	MaxLeadingZeros  int    `yaml:"max_leading_zeros,omitempty"`
	Locale           string `yaml:"locale,omitempty"`
}

// TimelineConfig controls the terminal timeline
type TimelineConfig struct {
	Width int `yaml:"width"` // Columns; 0 uses the terminal width
}

// LogConfig controls the log file
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Format     string `yaml:"format"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns a validated configuration with every default applied
func Default() *Config {
	c := &Config{}
	_ = c.Validate()
	return c
}

// Load reads path, returning defaults when the file does not exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	resolved := util.ExpandPath(path)

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			util.LogDebugf("No config file at %s, using defaults", resolved)
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", resolved, err)
	}

	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", resolved, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", resolved, err)
	}
	return c, nil
}

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath
	}
	resolved := util.ExpandPath(path)
	if err := util.EnsureDir(filepath.Dir(resolved)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(resolved, data, 0644)
}

// Validate fills defaults and rejects values no command can use
func (c *Config) Validate() error {
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.Table == "" {
		c.Table = units.Tables()[0].Name
	}
	if c.StateFile == "" {
		c.StateFile = DefaultStateFile
	}
	if c.Refresh == 0 {
		c.Refresh = constants.TickInterval
	}
	if c.Highlight == 0 {
		c.Highlight = constants.HighlightDuration
	}
	if c.Format.Convention == "" {
		c.Format.Convention = ConventionCompact
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = DefaultLogFile
	}
	if c.Log.Format == "" {
		c.Log.Format = string(util.FormatText)
	}

	if _, err := util.NewTimeProvider(c.Timezone, nil); err != nil {
		return err
	}
	if _, err := units.Lookup(c.Table); err != nil {
		return err
	}
	if c.Refresh < 100*time.Millisecond || c.Refresh > time.Minute {
		return fmt.Errorf("refresh must be between 100ms and 1m, got %s", c.Refresh)
	}
	if c.Highlight < 0 || c.Highlight >= c.Refresh {
		return fmt.Errorf("highlight must be shorter than refresh, got %s", c.Highlight)
	}
	switch c.Format.Convention {
	case ConventionCompact, ConventionPlain:
	default:
		return fmt.Errorf("invalid format convention '%s': must be %s or %s", c.Format.Convention, ConventionCompact, ConventionPlain)
	}
	if sep := c.Format.DecimalSeparator; sep != "" && sep != "." && sep != "," {
		return fmt.Errorf("invalid decimal separator '%s': must be '.' or ','", sep)
	}
	if c.Format.MaxLeadingZeros < 0 {
		return fmt.Errorf("max_leading_zeros must not be negative")
	}
	if c.Format.Locale != "" {
		if _, err := language.Parse(c.Format.Locale); err != nil {
			return fmt.Errorf("invalid locale '%s': %w", c.Format.Locale, err)
		}
	}
	if c.Timeline.Width < 0 {
		return fmt.Errorf("timeline width must not be negative")
	}
	switch util.LogFormat(c.Log.Format) {
	case util.FormatText, util.FormatJSON:
	default:
		return fmt.Errorf("invalid log format '%s': must be text or json", c.Log.Format)
	}
	return nil
}

// FormatOptions converts the format section into formatter options.
func (c *Config) FormatOptions() format.Options {
	opts := format.CompactOptions
	if strings.EqualFold(c.Format.Convention, ConventionPlain) {
		opts = format.PlainOptions
	}
	if c.Format.DecimalSeparator != "" {
		opts.DecimalSeparator = c.Format.DecimalSeparator
	}
	if c.Format.MaxLeadingZeros > 0 {
		opts.MaxLeadingZeros = c.Format.MaxLeadingZeros
	}
	if c.Format.Locale != "" {
		if tag, err := language.Parse(c.Format.Locale); err == nil {
			opts.Locale = tag
		}
	}
	return opts
}

// LoggerOptions converts the log section, logging debug output to the
// console as well when debug is set.
func (c *Config) LoggerOptions(debug bool) util.LoggerOptions {
	level := c.Log.Level
	if debug {
		level = "debug"
	}
	return util.LoggerOptions{
		Level:          level,
		File:           util.ExpandPath(c.Log.File),
		Format:         util.LogFormat(c.Log.Format),
		DebugToConsole: debug,
		MaxSizeMB:      c.Log.MaxSizeMB,
		MaxBackups:     c.Log.MaxBackups,
		MaxAgeDays:     c.Log.MaxAgeDays,
	}
}
