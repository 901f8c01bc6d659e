// Package config loads the run configuration of the interpreter and builds
// the log handler from it.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/mtlang/core"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "MT_CONFIG"

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn or error
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`   // Empty means stderr
}

// Config is the run configuration.
type Config struct {
	Log       LogConfig `yaml:"log"`
	Color     bool      `yaml:"color"`
	DumpState bool      `yaml:"dump_state"`
	Monitor   bool      `yaml:"monitor"`
	FreqMHz   float64   `yaml:"freq_mhz"`
	MaxSteps  uint64    `yaml:"max_steps"`
	Lint      bool      `yaml:"lint"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Color:   true,
		FreqMHz: 1000,
	}
}

// Load reads a YAML config file. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("ConfigLoaded", "Path", path)

	return cfg, nil
}

// FromEnv loads the file named by MT_CONFIG, or returns the defaults when
// the variable is unset.
func FromEnv() (Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))

	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks the values that cannot be corrected silently.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	if c.FreqMHz <= 0 {
		return fmt.Errorf("freq_mhz must be positive, got %v", c.FreqMHz)
	}

	return nil
}

// ParseLevel converts a level name into a slog level. "trace" maps to
// core.LevelTrace.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "trace":
		return core.LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

// Freq returns the frequency of the core.
func (c Config) Freq() sim.Freq {
	return sim.Freq(c.FreqMHz) * sim.MHz
}

// NewHandler creates the log handler writing to w.
func (c Config) NewHandler(w io.Writer) slog.Handler {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

// OpenLog opens the log destination. The returned closer must be called
// once logging is done.
func (c Config) OpenLog() (io.Writer, func() error, error) {
	if c.Log.File == "" {
		return os.Stderr, func() error { return nil }, nil
	}

	f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}
