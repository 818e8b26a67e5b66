// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Tone backends.
const (
	BackendSpeaker = "speaker"
	BackendSystem  = "system"
	BackendPrint   = "print"
)

// Default configuration values.
const (
	DefaultBackend    = BackendSpeaker
	DefaultSampleRate = 44100
	DefaultBufferSize = Duration(100 * time.Millisecond)
	DefaultLogLevel   = "warn"
)

// Config represents the freqbeep configuration.
type Config struct {
	Tone ToneConfig `toml:"tone" yaml:"tone"`
	Log  LogConfig  `toml:"log" yaml:"log"`
}

// ToneConfig selects and tunes the tone backend.
type ToneConfig struct {
	Backend    string   `toml:"backend" yaml:"backend"`         // speaker, system, print
	SampleRate int      `toml:"sample_rate" yaml:"sample_rate"` // speaker only
	BufferSize Duration `toml:"buffer_size" yaml:"buffer_size"` // speaker only
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Tone: ToneConfig{
			Backend:    DefaultBackend,
			SampleRate: DefaultSampleRate,
			BufferSize: DefaultBufferSize,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "freqbeep", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
// Files ending in .yaml or .yml are parsed as YAML, everything else as TOML.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every option holds a usable value.
func (c *Config) Validate() error {
	switch c.Tone.Backend {
	case BackendSpeaker, BackendSystem, BackendPrint:
	default:
		return fmt.Errorf("unknown tone backend %q (want %s, %s or %s)",
			c.Tone.Backend, BackendSpeaker, BackendSystem, BackendPrint)
	}

	if c.Tone.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive, got %d", c.Tone.SampleRate)
	}
	if c.Tone.BufferSize <= 0 {
		return fmt.Errorf("buffer_size must be positive, got %s", c.Tone.BufferSize.Duration())
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts the configured level name to a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", l.Level)
	}
	return level, nil
}
