// Package config loads projboard settings from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings.
type Config struct {
	// LayoutPath points at a custom HTML layout. Empty uses the embedded one.
	LayoutPath string `env:"PROJBOARD_LAYOUT"`
	// LogFile receives structured logs. Empty discards them in the TUI and
	// sends them to stderr for the batch commands.
	LogFile  string `env:"PROJBOARD_LOG_FILE"`
	LogLevel string `env:"PROJBOARD_LOG_LEVEL" envDefault:"info"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Environ())
}

// LoadFrom reads Config from KEY=VALUE pairs.
func LoadFrom(environ []string) (Config, error) {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid PROJBOARD_LOG_LEVEL %q: %w", s, err)
	}
	return lvl, nil
}

// NewLogger builds a text slog.Logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// OpenLogWriter returns the configured log destination. fallback is used
// when LogFile is empty. The returned close func is always non-nil.
func (c Config) OpenLogWriter(fallback io.Writer) (io.Writer, func() error, error) {
	if c.LogFile == "" {
		if fallback == nil {
			fallback = io.Discard
		}
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, f.Close, nil
}
