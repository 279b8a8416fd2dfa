// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the law runner and its
// command-line front end.
//
// A configuration is YAML; every field is optional and missing fields keep
// the documented defaults:
//
//	checks: 100        # samples per law (rapid.checks)
//	full: false        # run FullLaws instead of Laws
//	parallel: 4        # laws executed concurrently
//	suites: [field]    # case-insensitive substrings of suite names; empty = all
//	tolerance: 1e-9    # absolute and relative tolerance of float carriers
//	failfile: false    # let rapid persist failing cases under testdata/
//	log_level: info    # debug | info | warn | error
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults (single source of truth).
const (
	DefaultChecks    = 100
	DefaultParallel  = 4
	DefaultTolerance = 1e-9
	DefaultLogLevel  = "info"
)

// ErrInvalidConfig marks a configuration rejected by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is one law-run configuration.
type Config struct {
	Checks    int      `yaml:"checks"`
	Full      bool     `yaml:"full"`
	Parallel  int      `yaml:"parallel"`
	Suites    []string `yaml:"suites"`
	Tolerance float64  `yaml:"tolerance"`
	FailFile  bool     `yaml:"failfile"`
	LogLevel  string   `yaml:"log_level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Checks:    DefaultChecks,
		Parallel:  DefaultParallel,
		Tolerance: DefaultTolerance,
		LogLevel:  DefaultLogLevel,
	}
}

// Load reads path on top of Default and validates the result. An empty
// path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
// Unknown fields are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	switch {
	case c.Checks <= 0:
		return fmt.Errorf("%w: checks must be > 0, got %d", ErrInvalidConfig, c.Checks)
	case c.Parallel <= 0:
		return fmt.Errorf("%w: parallel must be > 0, got %d", ErrInvalidConfig, c.Parallel)
	case c.Tolerance < 0:
		return fmt.Errorf("%w: tolerance must be >= 0, got %g", ErrInvalidConfig, c.Tolerance)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// Selects reports whether a suite with the given name is selected by
// Suites.
func (c Config) Selects(name string) bool {
	if len(c.Suites) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, s := range c.Suites {
		if strings.Contains(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, s)
	}
	return l, nil
}
