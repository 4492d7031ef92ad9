// Package config loads pivotlab CLI configuration with koanf.
//
// Precedence (highest first): flags explicitly set on the command line,
// PIVOTLAB_* environment variables, the YAML config file, built-in defaults.
package config

// Config holds all CLI configuration options.
type Config struct {
	Output        string `koanf:"output"`         // auto|text|markdown|csv|json
	Rule          string `koanf:"rule"`           // bland|dantzig
	Sense         string `koanf:"sense"`          // max|min
	ObjectiveRow  int    `koanf:"objective_row"`  // row read as the objective
	MaxIterations int    `koanf:"max_iterations"` // per solve
	HistoryLimit  int    `koanf:"history_limit"`  // undo depth of interactive sessions, 0 = unbounded
	LogLevel      string `koanf:"log_level"`      // debug|info|warn|error
	Verbose       bool   `koanf:"verbose"`
	Color         string `koanf:"color"` // auto|always|never
}

// Default configuration values.
const (
	DefaultOutput        = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultRule          = "bland"
	DefaultSense         = "max"
	DefaultObjectiveRow  = 0
	DefaultMaxIterations = 1000
	DefaultHistoryLimit  = 0
	DefaultLogLevel      = "warn"
	DefaultColor         = "auto"
)

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Output:        DefaultOutput,
		Rule:          DefaultRule,
		Sense:         DefaultSense,
		ObjectiveRow:  DefaultObjectiveRow,
		MaxIterations: DefaultMaxIterations,
		HistoryLimit:  DefaultHistoryLimit,
		LogLevel:      DefaultLogLevel,
		Color:         DefaultColor,
	}
}
