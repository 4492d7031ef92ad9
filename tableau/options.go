// SPDX-License-Identifier: MIT

// Package tableau: functional options for construction and history.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic only on nonsensical values (programmer error).
package tableau

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRHSLabel is the header shown above the right-hand-side column.
	DefaultRHSLabel = "RHS"

	// DefaultHistoryLimit of 0 keeps every snapshot.
	DefaultHistoryLimit = 0
)

const (
	panicRHSLabelEmpty = "tableau: WithRHSLabel: label must be non-empty"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	artificial []string // names to mark as artificial at construction
	rhsLabel   string   // DefaultRHSLabel
}

// WithArtificial marks the named variables as artificial. Every name must be
// one of the tableau's variables; New reports ErrNamingMismatch otherwise.
func WithArtificial(names ...string) Option {
	cp := append([]string(nil), names...)

	return func(o *Options) { o.artificial = append(o.artificial, cp...) }
}

// WithRHSLabel overrides the header label of the right-hand-side column.
// Panics on an empty label.
func WithRHSLabel(label string) Option {
	if label == "" {
		panic(panicRHSLabelEmpty)
	}

	return func(o *Options) { o.rhsLabel = label }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{rhsLabel: DefaultRHSLabel}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
