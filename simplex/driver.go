// SPDX-License-Identifier: MIT

package simplex

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pivotlab/rational"
	"github.com/katalvlaran/pivotlab/tableau"
)

// Driver chooses and applies pivots according to its Options.
// A Driver holds no tableau state and may be shared between goroutines as
// long as each Run works on its own tableau.
type Driver struct {
	opts Options
}

// NewDriver builds a driver over the defaults overridden by opts.
func NewDriver(opts ...Option) *Driver {
	return &Driver{opts: gatherOptions(opts...)}
}

// Rule reports the configured pivot rule.
func (d *Driver) Rule() Rule { return d.opts.rule }

// Sense reports the configured objective sense.
func (d *Driver) Sense() Sense { return d.opts.sense }

// ObjectiveRow reports the configured objective row index.
func (d *Driver) ObjectiveRow() int { return d.opts.objectiveRow }

// Next picks the next pivot without applying it.
//
// Errors:
//   - ErrOptimal when no non-artificial column improves the objective.
//   - ErrUnbounded when the entering column has no positive constraint entry;
//     the returned Pivot then carries Col and Entering with Row = -1.
//   - tableau.ErrOutOfBounds when the objective row does not exist.
//   - ErrUnknownRule for a Rule value outside Bland/Dantzig.
func (d *Driver) Next(t *tableau.Tableau) (Pivot, error) {
	obj := d.opts.objectiveRow
	if obj >= t.Rows() {
		return Pivot{}, fmt.Errorf("Next: objective row %d of %d: %w", obj, t.Rows(), tableau.ErrOutOfBounds)
	}

	col, err := d.enteringColumn(t, obj)
	if err != nil {
		return Pivot{}, err
	}
	vars := t.Vars()
	row := d.leavingRow(t, obj, col)
	if row < 0 {
		return Pivot{Row: -1, Col: col, Entering: vars[col]},
			fmt.Errorf("Next: column %q: %w", vars[col], ErrUnbounded)
	}

	return Pivot{Row: row, Col: col, Entering: vars[col], Leaving: t.Basis()[row]}, nil
}

// improves reports whether objective entry v lets its column improve z.
func (d *Driver) improves(v rational.Rational) bool {
	if d.opts.sense == Minimize {
		return v.Sign() > 0
	}

	return v.Sign() < 0
}

// enteringColumn scans the objective row according to the rule.
func (d *Driver) enteringColumn(t *tableau.Tableau, obj int) (int, error) {
	vars := t.Vars()
	best := -1
	var bestMag rational.Rational
	for j, name := range vars {
		if t.IsArtificial(name) {
			continue
		}
		v, _ := t.At(obj, j)
		if !d.improves(v) {
			continue
		}
		switch d.opts.rule {
		case Bland:
			return j, nil
		case Dantzig:
			if best < 0 || v.Abs().Cmp(bestMag) > 0 {
				best, bestMag = j, v.Abs()
			}
		default:
			return -1, fmt.Errorf("Next: %v: %w", d.opts.rule, ErrUnknownRule)
		}
	}
	if best < 0 {
		return -1, ErrOptimal
	}

	return best, nil
}

// leavingRow runs the minimum-ratio test on column col, skipping the objective
// row and non-positive entries. Returns -1 when no row qualifies.
func (d *Driver) leavingRow(t *tableau.Tableau, obj, col int) int {
	rhs := t.RHSCol()
	basis := t.Basis()
	best := -1
	var bestRatio rational.Rational
	for i := 0; i < t.Rows(); i++ {
		if i == obj {
			continue
		}
		a, _ := t.At(i, col)
		if a.Sign() <= 0 {
			continue
		}
		b, _ := t.At(i, rhs)
		ratio, _ := b.Quo(a) // a > 0
		if best < 0 {
			best, bestRatio = i, ratio
			continue
		}
		switch c := ratio.Cmp(bestRatio); {
		case c < 0:
			best, bestRatio = i, ratio
		case c == 0 && d.opts.rule == Bland && d.basicRank(t, basis[i], i) < d.basicRank(t, basis[best], best):
			best = i
		}
	}

	return best
}

// basicRank orders basic variables for Bland's tie-break. Names that are not
// columns sort after every column, by row.
func (d *Driver) basicRank(t *tableau.Tableau, name string, row int) int {
	if j := t.VarIndex(name); j >= 0 {
		return j
	}

	return t.Cols() + row
}

// Step picks and applies one pivot. On ErrOptimal or ErrUnbounded the tableau
// is left untouched and the returned Pivot describes what was found.
func (d *Driver) Step(t *tableau.Tableau) (Pivot, error) {
	p, err := d.Next(t)
	if err != nil {
		return p, err
	}
	if d.opts.beforePivot != nil {
		if err = d.opts.beforePivot(t, p); err != nil {
			return p, err
		}
	}
	if err = t.Pivot(p.Row, p.Col); err != nil {
		return p, err
	}
	d.opts.logger.Debug("pivot",
		"iteration", t.Iteration(),
		"row", p.Row, "col", p.Col,
		"entering", p.Entering, "leaving", p.Leaving)

	return p, nil
}

// Run pivots t in place until it is optimal, unbounded, the iteration limit is
// reached, ctx is cancelled or the BeforePivot hook fails.
//
// The returned Result is always populated from the tableau as it stands. The
// error is nil only for Status == Optimal; Unbounded pairs with ErrUnbounded and
// IterationLimit with ErrIterationLimit.
func (d *Driver) Run(ctx context.Context, t *tableau.Tableau) (Result, error) {
	res := Result{Status: Running}
	if err := t.ValidateBasis(); err != nil {
		return d.finish(t, res), err
	}
	if err := d.checkFeasibleStart(t); err != nil {
		return d.finish(t, res), err
	}

	log := d.opts.logger
	log.Debug("run start", "rule", d.opts.rule.String(), "sense", d.opts.sense.String(),
		"rows", t.Rows(), "cols", t.Cols())

	for {
		if err := ctx.Err(); err != nil {
			return d.finish(t, res), err
		}
		if res.Iterations >= d.opts.maxIterations {
			// The last allowed pivot may have reached a verdict.
			switch _, err := d.Next(t); {
			case errors.Is(err, ErrOptimal):
				res.Status = Optimal
				log.Debug("optimal", "iterations", res.Iterations)

				return d.finish(t, res), nil
			case errors.Is(err, ErrUnbounded):
				res.Status = Unbounded

				return d.finish(t, res), err
			}
			res.Status = IterationLimit
			log.Warn("iteration limit reached", "limit", d.opts.maxIterations)

			return d.finish(t, res), fmt.Errorf("Run: %d pivots: %w", res.Iterations, ErrIterationLimit)
		}

		p, err := d.Step(t)
		switch {
		case err == nil:
			res.Iterations++
			res.Pivots = append(res.Pivots, p)
		case errors.Is(err, ErrOptimal):
			res.Status = Optimal
			log.Debug("optimal", "iterations", res.Iterations)

			return d.finish(t, res), nil
		case errors.Is(err, ErrUnbounded):
			res.Status = Unbounded
			log.Debug("unbounded", "column", p.Entering)

			return d.finish(t, res), err
		default:
			return d.finish(t, res), err
		}
	}
}

// checkFeasibleStart rejects a negative RHS on any constraint row.
func (d *Driver) checkFeasibleStart(t *tableau.Tableau) error {
	for i := 0; i < t.Rows(); i++ {
		if i == d.opts.objectiveRow {
			continue
		}
		b, _ := t.RHS(i)
		if b.Sign() < 0 {
			return fmt.Errorf("Run: row %d RHS %s: %w", i, b, ErrInfeasibleStart)
		}
	}

	return nil
}

// finish fills the solution fields of res from t.
func (d *Driver) finish(t *tableau.Tableau, res Result) Result {
	sol := Solution(t, d.opts.objectiveRow)
	res.Objective = sol.Objective
	res.Values = sol.Values
	res.Feasible = sol.Feasible

	return res
}

// Solve is shorthand for NewDriver(opts...).Run(ctx, t).
func Solve(ctx context.Context, t *tableau.Tableau, opts ...Option) (Result, error) {
	return NewDriver(opts...).Run(ctx, t)
}

// unlimited is used by callers that want Run bounded only by ctx.
const unlimited = math.MaxInt32

// WithoutIterationLimit lifts the iteration cap; Bland's rule still terminates.
func WithoutIterationLimit() Option { return WithMaxIterations(unlimited) }
