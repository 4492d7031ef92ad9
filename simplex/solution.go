package simplex

import (
	"github.com/katalvlaran/pivotlab/rational"
	"github.com/katalvlaran/pivotlab/tableau"
)

// Point is the basic solution encoded by a tableau.
type Point struct {
	Objective rational.Rational
	Values    map[string]rational.Rational
	Feasible  bool
}

// Solution reads the basic solution off t: every basic variable takes the RHS
// of its row, every non-basic variable is zero. objRow names the objective row;
// an out-of-range objRow yields a zero Objective.
func Solution(t *tableau.Tableau, objRow int) Point {
	p := Point{Values: make(map[string]rational.Rational, len(t.Vars())), Feasible: true}
	for _, name := range t.Vars() {
		p.Values[name] = rational.Zero()
	}
	if objRow >= 0 && objRow < t.Rows() {
		p.Objective, _ = t.RHS(objRow)
	}

	for i, name := range t.Basis() {
		if i == objRow {
			continue
		}
		b, _ := t.RHS(i)
		if b.Sign() < 0 {
			p.Feasible = false
		}
		if t.IsArtificial(name) && !b.IsZero() {
			p.Feasible = false
		}
		if _, ok := p.Values[name]; ok {
			p.Values[name] = b
		}
	}

	return p
}
