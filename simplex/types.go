// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pivotlab/rational"
)

// Rule selects the entering column (and the tie-break of the ratio test).
//
//   - Bland:   lowest-index improving column; ratio ties go to the basic
//     variable with the lowest column index. Guaranteed to terminate.
//   - Dantzig: column with the largest improvement per unit; ratio ties go to
//     the lowest row. Usually fewer pivots, may cycle on degenerate problems
//     (bounded by MaxIterations).
type Rule int

const (
	// Bland is the anti-cycling lowest-index rule.
	Bland Rule = iota

	// Dantzig is the most-improving-coefficient rule.
	Dantzig
)

// String returns the lower-case rule name.
func (r Rule) String() string {
	switch r {
	case Bland:
		return "bland"
	case Dantzig:
		return "dantzig"
	default:
		return fmt.Sprintf("rule(%d)", int(r))
	}
}

// ParseRule maps "bland" / "dantzig" (any case) to a Rule.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bland":
		return Bland, nil
	case "dantzig":
		return Dantzig, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownRule)
	}
}

// Sense tells how to read the objective row.
type Sense int

const (
	// Maximize treats negative objective-row entries as improving.
	Maximize Sense = iota

	// Minimize treats positive objective-row entries as improving.
	Minimize
)

// String returns "max" or "min".
func (s Sense) String() string {
	if s == Minimize {
		return "min"
	}

	return "max"
}

// ParseSense maps "max"/"maximize" and "min"/"minimize" to a Sense.
func ParseSense(s string) (Sense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize":
		return Maximize, nil
	case "min", "minimize":
		return Minimize, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownSense)
	}
}

// Pivot is one chosen pivot position with the variables it swaps.
type Pivot struct {
	Row, Col int
	Entering string // vars[Col]
	Leaving  string // basis[Row] before the pivot
}

// String formats the pivot for logs and UIs.
func (p Pivot) String() string {
	return fmt.Sprintf("(%d,%d) %s enters, %s leaves", p.Row, p.Col, p.Entering, p.Leaving)
}

// Status is the outcome of Run.
type Status int

const (
	// Running means Run stopped before reaching a verdict (cancelled or hook error).
	Running Status = iota
	// Optimal means no column improves the objective.
	Optimal
	// Unbounded means the objective improves without limit.
	Unbounded
	// IterationLimit means Run used up MaxIterations while another pivot was still needed.
	IterationLimit
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Unbounded:
		return "unbounded"
	case IterationLimit:
		return "iteration-limit"
	default:
		return "running"
	}
}

// Result holds the outcome of a run and the solution read off the final tableau.
type Result struct {
	Status     Status
	Iterations int     // pivots performed by this run
	Pivots     []Pivot // in application order

	// Objective is the RHS of the objective row.
	Objective rational.Rational

	// Values maps every variable to its level: RHS of its row when basic, 0 otherwise.
	Values map[string]rational.Rational

	// Feasible is false when a constraint RHS is negative or an artificial
	// variable sits in the basis at a non-zero level.
	Feasible bool
}
