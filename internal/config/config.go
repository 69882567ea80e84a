// Package config holds the application configuration, its command-line
// flags and the environment variable overrides layered on top of them.
package config

import (
	"time"

	"github.com/spf13/pflag"

	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/logging"
	"github.com/agbru/drills/internal/ui"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "DRILLS_"

// AppConfig aggregates the settings shared by every subcommand plus the
// carol-specific presentation options.
type AppConfig struct {
	// Quiet suppresses banners and lowers the log level to errors only.
	Quiet bool
	// Verbose raises the log level to debug.
	Verbose bool
	// NoColor disables ANSI colors regardless of theme.
	NoColor bool
	// Theme is one of ui.ThemeNames.
	Theme string
	// LogFormat is "console" or "json".
	LogFormat string
	// MetricsFile, when set, receives a Prometheus textfile on exit.
	MetricsFile string

	// Day selects a single carol verse, 1-based. Zero prints all twelve.
	Day int
	// Pace is the delay between carol verses.
	Pace time.Duration
	// TUI opens the interactive carol viewer.
	TUI bool
}

// Default returns the configuration used when no flag or variable is set.
func Default() AppConfig {
	return AppConfig{
		Theme:     ui.DarkTheme.Name,
		LogFormat: string(logging.FormatConsole),
	}
}

// RegisterFlags binds the shared flags to fs. They are registered as
// persistent flags on the root command so every subcommand accepts them.
func RegisterFlags(fs *pflag.FlagSet, cfg *AppConfig) {
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Quiet mode: no banners, errors-only logging")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Color theme (dark, light, none)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log encoding (console, json)")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write Prometheus metrics to this file on exit")
}

// RegisterCarolFlags binds the carol presentation flags to fs.
func RegisterCarolFlags(fs *pflag.FlagSet, cfg *AppConfig) {
	fs.IntVar(&cfg.Day, "day", cfg.Day, "Print only this day (1-12)")
	fs.DurationVar(&cfg.Pace, "pace", cfg.Pace, "Delay between verses (e.g. 500ms, 2s)")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "Page through the verses interactively")
}

// Resolve applies environment overrides for every flag fs did not see on the
// command line, then validates the result.
func Resolve(cfg AppConfig, fs *pflag.FlagSet) (AppConfig, error) {
	applyEnvOverrides(&cfg, fs)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c AppConfig) Validate() error {
	if !ui.IsThemeName(c.Theme) {
		return apperrors.NewConfigError("invalid --theme %q (accepted values: %v)", c.Theme, ui.ThemeNames)
	}
	switch logging.Format(c.LogFormat) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return apperrors.NewConfigError("invalid --log-format %q (accepted values: console, json)", c.LogFormat)
	}
	if c.Day < 0 || c.Day > 12 {
		return apperrors.NewConfigError("invalid --day %d (accepted values: 1-12, or 0 for all)", c.Day)
	}
	if c.Pace < 0 {
		return apperrors.NewConfigError("invalid --pace %s (must not be negative)", c.Pace)
	}
	if c.TUI && c.Day != 0 {
		return apperrors.NewConfigError("--tui and --day cannot be combined")
	}
	return nil
}
