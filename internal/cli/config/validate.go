package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/pivotlab/internal/render"
	"github.com/katalvlaran/pivotlab/simplex"
)

// Validate checks every enumerated option and numeric range.
func (c *Config) Validate() error {
	if _, err := render.ParseMode(c.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if _, err := simplex.ParseRule(c.Rule); err != nil {
		return fmt.Errorf("rule: %w", err)
	}
	if _, err := simplex.ParseSense(c.Sense); err != nil {
		return fmt.Errorf("sense: %w", err)
	}
	if c.ObjectiveRow < 0 {
		return fmt.Errorf("objective_row must be >= 0, got %d", c.ObjectiveRow)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be > 0, got %d", c.MaxIterations)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must be >= 0, got %d", c.HistoryLimit)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}

	return nil
}

// DriverOptions translates the solver settings into simplex options.
// Call it on a validated config.
func (c *Config) DriverOptions() []simplex.Option {
	rule, _ := simplex.ParseRule(c.Rule)
	sense, _ := simplex.ParseSense(c.Sense)

	return []simplex.Option{
		simplex.WithRule(rule),
		simplex.WithSense(sense),
		simplex.WithObjectiveRow(c.ObjectiveRow),
		simplex.WithMaxIterations(c.MaxIterations),
	}
}

// OutputMode returns the parsed output mode. Call it on a validated config.
func (c *Config) OutputMode() render.OutputMode {
	m, _ := render.ParseMode(c.Output)

	return m
}

// ColorOverride reports whether color is forced and to which value.
func (c *Config) ColorOverride() (on, forced bool) {
	switch strings.ToLower(c.Color) {
	case "always":
		return true, true
	case "never":
		return false, true
	default:
		return false, false
	}
}

func (c *Config) slogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}

	return lvl
}
