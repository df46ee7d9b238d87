// Package config loads the service configuration from an optional
// YAML file, falling back to defaults for anything unset.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Storage struct {
	// Backend selects the puzzle store: "fs" or "badger".
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type Config struct {
	Addr       string  `yaml:"addr"`
	LogLevel   string  `yaml:"log_level"`
	Storage    Storage `yaml:"storage"`
	Difficulty string  `yaml:"difficulty"`
	// StreamDelay throttles streaming solve events, e.g. "100ms".
	StreamDelay string `yaml:"stream_delay"`
}

func Default() Config {
	return Config{
		Addr:        ":8080",
		LogLevel:    "info",
		Storage:     Storage{Backend: "fs", Path: "./data"},
		Difficulty:  "medium",
		StreamDelay: "100ms",
	}
}

// Load reads the file at path over the defaults. A missing file is not
// an error when path is empty; a named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Storage.Backend {
	case "fs", "badger":
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if _, err := c.Delay(); err != nil {
		return err
	}
	return nil
}

// Delay parses the streaming delay.
func (c Config) Delay() (time.Duration, error) {
	if c.StreamDelay == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.StreamDelay)
	if err != nil {
		return 0, fmt.Errorf("stream_delay: %w", err)
	}
	return d, nil
}

// SlogLevel maps the configured level name onto slog.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
