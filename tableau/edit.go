// SPDX-License-Identifier: MIT

package tableau

import (
	"fmt"

	"github.com/katalvlaran/pivotlab/rational"
)

const (
	ctxAddConstraint = "AddConstraint"
	ctxAddVariable   = "AddVariable"
)

// AddConstraint appends a row (RHS included) whose basic variable is basicName.
// Errors: ErrDimensionMismatch when len(row) != Cols(); ErrNamingMismatch for
// an empty basicName. The tableau is unchanged on error.
// Complexity: amortized O(m).
func (t *Tableau) AddConstraint(row []rational.Rational, basicName string) error {
	if len(row) != t.m.c {
		return fmt.Errorf("%s: got %d values, want %d: %w", ctxAddConstraint, len(row), t.m.c, ErrDimensionMismatch)
	}
	if basicName == "" {
		return tableauErrorf(ctxAddConstraint, ErrNamingMismatch)
	}
	t.m.appendRow(row)
	t.basis = append(t.basis, basicName)

	return nil
}

// AddVariable inserts a column just before the RHS column.
// Errors: ErrDimensionMismatch when len(column) != Rows(); ErrNamingMismatch
// when name is empty or already used. The tableau is unchanged on error.
// Complexity: O(n*m) (one reallocation).
func (t *Tableau) AddVariable(column []rational.Rational, name string) error {
	if len(column) != t.m.r {
		return fmt.Errorf("%s: got %d values, want %d: %w", ctxAddVariable, len(column), t.m.r, ErrDimensionMismatch)
	}
	if name == "" || t.VarIndex(name) >= 0 {
		return fmt.Errorf("%s(%q): %w", ctxAddVariable, name, ErrNamingMismatch)
	}
	t.m.insertCol(t.RHSCol(), column)
	t.vars = append(t.vars, name)

	return nil
}
