// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *pflag.FlagSet, name string) bool {
	if fs == nil {
		return false
	}
	f := fs.Lookup(name)
	return f != nil && f.Changed
}

// ownsFlag reports whether the command behind fs accepts the flag at all.
// A nil fs owns every flag.
func ownsFlag(fs *pflag.FlagSet, name string) bool {
	return fs == nil || fs.Lookup(name) != nil
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the DRILLS_ prefix) to the CLI flag
// it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
// Unparsable values are ignored and the flag default stands.
var envOverrides = []envOverride{
	// Boolean overrides
	{"QUIET", "quiet", func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"VERBOSE", "verbose", func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"NO_COLOR", "no-color", func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
	{"TUI", "tui", func(c *AppConfig, v string) {
		c.TUI = parseBoolEnv(v, c.TUI)
	}},

	// String overrides
	{"THEME", "theme", func(c *AppConfig, v string) {
		c.Theme = strings.ToLower(v)
	}},
	{"LOG_FORMAT", "log-format", func(c *AppConfig, v string) {
		c.LogFormat = strings.ToLower(v)
	}},
	{"METRICS_FILE", "metrics-file", func(c *AppConfig, v string) {
		c.MetricsFile = v
	}},

	// Numeric and duration overrides
	{"DAY", "day", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Day = parsed
		}
	}},
	{"PACE", "pace", func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Pace = parsed
		}
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
// Variables for flags the command does not accept (DAY on fib) are skipped.
//
// Supported environment variables (all prefixed with DRILLS_):
//   - QUIET, VERBOSE, NO_COLOR, TUI, THEME, LOG_FORMAT, METRICS_FILE, DAY, PACE
func applyEnvOverrides(config *AppConfig, fs *pflag.FlagSet) {
	for _, o := range envOverrides {
		if !ownsFlag(fs, o.flag) || isFlagSet(fs, o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
