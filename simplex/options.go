// SPDX-License-Identifier: MIT

package simplex

import (
	"log/slog"

	"github.com/katalvlaran/pivotlab/tableau"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRule is Bland's rule: slower on average, never cycles.
	DefaultRule = Bland

	// DefaultSense reads the objective row as a maximization.
	DefaultSense = Maximize

	// DefaultObjectiveRow is the first row, matching the editor layout.
	DefaultObjectiveRow = 0

	// DefaultMaxIterations caps Run.
	DefaultMaxIterations = 1000
)

const (
	panicMaxIterations = "simplex: WithMaxIterations: n must be > 0"
	panicObjectiveRow  = "simplex: WithObjectiveRow: row must be >= 0"
)

// BeforePivotFunc is called with the tableau about to be pivoted. A non-nil
// error aborts Run before the pivot is applied.
type BeforePivotFunc func(t *tableau.Tableau, p Pivot) error

// Option mutates driver options.
type Option func(*Options)

// Options stores the effective driver configuration.
type Options struct {
	rule          Rule
	sense         Sense
	objectiveRow  int
	maxIterations int
	logger        *slog.Logger
	beforePivot   BeforePivotFunc
}

// WithRule selects the pivot rule.
func WithRule(r Rule) Option { return func(o *Options) { o.rule = r } }

// WithSense selects how the objective row is read.
func WithSense(s Sense) Option { return func(o *Options) { o.sense = s } }

// WithObjectiveRow sets the index of the objective row. Panics on a negative row;
// a row beyond the tableau is reported by Next as tableau.ErrOutOfBounds.
func WithObjectiveRow(row int) Option {
	if row < 0 {
		panic(panicObjectiveRow)
	}

	return func(o *Options) { o.objectiveRow = row }
}

// WithMaxIterations caps the number of pivots one Run may apply. Panics on n ≤ 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterations)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithLogger routes debug logs of every chosen pivot. nil restores the discard logger.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.logger = l } }

// WithBeforePivot installs a hook called before every pivot applied by Step or Run.
func WithBeforePivot(fn BeforePivotFunc) Option { return func(o *Options) { o.beforePivot = fn } }

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		rule:          DefaultRule,
		sense:         DefaultSense,
		objectiveRow:  DefaultObjectiveRow,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return o
}
