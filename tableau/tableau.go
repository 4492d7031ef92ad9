// SPDX-License-Identifier: MIT

package tableau

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pivotlab/rational"
)

const (
	ctxNew           = "New"
	ctxValidateBasis = "ValidateBasis"
)

// Tableau is a Simplex tableau: a rational matrix whose last column is the
// right-hand side, plus naming metadata and the number of pivots performed.
//
// Invariants:
//   - len(vars) == Cols()-1, len(basis) == Rows().
//   - variable names are unique and non-empty; artificial ⊆ vars.
//   - after any Pivot(r, c): column c is the identity column of row r and
//     basis[r] == vars[c].
//
// A Tableau is not safe for concurrent mutation; the owner serializes access.
type Tableau struct {
	m          *Matrix
	vars       []string
	basis      []string
	artificial map[string]struct{}
	rhsLabel   string
	iteration  int
}

// New builds a tableau from rows×cols initial values.
//
// Implementation:
//   - Stage 1: rows, cols ≥ 1 (ErrBadShape).
//   - Stage 2: initial is exactly rows×cols (ErrDimensionMismatch).
//   - Stage 3: len(vars) == cols-1, len(basis) == rows, names valid (ErrNamingMismatch).
//   - Stage 4: deep-copy values; iteration = 0.
//
// Complexity: O(rows*cols).
func New(rows, cols int, initial [][]rational.Rational, vars, basis []string, opts ...Option) (*Tableau, error) {
	if rows <= 0 || cols <= 0 {
		return nil, tableauErrorf(ctxNew, ErrBadShape)
	}
	if err := validateRows(initial, rows, cols); err != nil {
		return nil, fmt.Errorf("%s: want %dx%d: %w", ctxNew, rows, cols, err)
	}
	if err := validateVarNames(vars, cols-1); err != nil {
		return nil, fmt.Errorf("%s: vars %v: %w", ctxNew, vars, err)
	}
	if err := validateBasisNames(basis, rows); err != nil {
		return nil, fmt.Errorf("%s: basis %v: %w", ctxNew, basis, err)
	}

	o := gatherOptions(opts...)
	art := make(map[string]struct{}, len(o.artificial))
	for _, a := range o.artificial {
		if indexOfName(vars, a) < 0 {
			return nil, fmt.Errorf("%s: artificial %q: %w", ctxNew, a, ErrNamingMismatch)
		}
		art[a] = struct{}{}
	}

	m, err := MatrixFromRows(initial)
	if err != nil {
		return nil, tableauErrorf(ctxNew, err)
	}

	return &Tableau{
		m:          m,
		vars:       append([]string(nil), vars...),
		basis:      append([]string(nil), basis...),
		artificial: art,
		rhsLabel:   o.rhsLabel,
	}, nil
}

// Rows returns the number of rows (objective row included).
func (t *Tableau) Rows() int { return t.m.r }

// Cols returns the number of columns (RHS included).
func (t *Tableau) Cols() int { return t.m.c }

// RHSCol returns the index of the right-hand-side column.
func (t *Tableau) RHSCol() int { return t.m.c - 1 }

// Iteration returns how many pivots have been applied.
func (t *Tableau) Iteration() int { return t.iteration }

// Vars returns a copy of the variable names, in column order.
func (t *Tableau) Vars() []string { return append([]string(nil), t.vars...) }

// Basis returns a copy of the basic-variable name of every row.
func (t *Tableau) Basis() []string { return append([]string(nil), t.basis...) }

// VarIndex returns the column of the named variable, or -1.
func (t *Tableau) VarIndex(name string) int { return indexOfName(t.vars, name) }

// IsArtificial reports whether the named variable is artificial.
func (t *Tableau) IsArtificial(name string) bool {
	_, ok := t.artificial[name]

	return ok
}

// Artificial returns the artificial variable names in column order.
func (t *Tableau) Artificial() []string {
	var out []string
	for _, v := range t.vars {
		if t.IsArtificial(v) {
			out = append(out, v)
		}
	}

	return out
}

// MarkArtificial flags an existing variable as artificial.
// Errors: ErrNamingMismatch for an unknown name.
func (t *Tableau) MarkArtificial(name string) error {
	if t.VarIndex(name) < 0 {
		return fmt.Errorf("MarkArtificial(%q): %w", name, ErrNamingMismatch)
	}
	t.artificial[name] = struct{}{}

	return nil
}

// At returns the value at (row, col).
func (t *Tableau) At(row, col int) (rational.Rational, error) { return t.m.At(row, col) }

// Set overwrites one cell, the RHS included. It does not touch the basis
// names or the iteration counter; editors use it to enter coefficients.
func (t *Tableau) Set(row, col int, v rational.Rational) error { return t.m.Set(row, col, v) }

// RHS returns the right-hand side of row i.
func (t *Tableau) RHS(row int) (rational.Rational, error) { return t.m.At(row, t.RHSCol()) }

// Matrix returns a deep copy of the values.
func (t *Tableau) Matrix() *Matrix { return t.m.Clone() }

// Header returns the column labels: variable names followed by the RHS label.
func (t *Tableau) Header() []string {
	return append(t.Vars(), t.rhsLabel)
}

// View returns the read-only display form: one row of strings per tableau
// row, integers as "p" and fractions as "p/q".
func (t *Tableau) View() [][]string { return t.m.Strings() }

// ValidateBasis checks that every row whose basic name is a variable holds
// that variable's identity column. Basic names that are not variables (an
// objective label such as "z") are not checked.
// Errors: ErrBasisInconsistent wrapped with the offending row.
// Complexity: O(r*r).
func (t *Tableau) ValidateBasis() error {
	for i, name := range t.basis {
		j := t.VarIndex(name)
		if j < 0 {
			continue
		}
		for r := 0; r < t.m.r; r++ {
			v := t.m.data[r*t.m.c+j]
			if (r == i && !v.IsOne()) || (r != i && !v.IsZero()) {
				return fmt.Errorf("%s: row %d basic %q: %w", ctxValidateBasis, i, name, ErrBasisInconsistent)
			}
		}
	}

	return nil
}

// Clone returns an independent deep copy, iteration counter included.
func (t *Tableau) Clone() *Tableau {
	art := make(map[string]struct{}, len(t.artificial))
	for k := range t.artificial {
		art[k] = struct{}{}
	}

	return &Tableau{
		m:          t.m.Clone(),
		vars:       t.Vars(),
		basis:      t.Basis(),
		artificial: art,
		rhsLabel:   t.rhsLabel,
		iteration:  t.iteration,
	}
}

// Equal reports identical values, names and basis. The iteration counter is
// ignored: two routes to the same tableau compare equal.
func (t *Tableau) Equal(o *Tableau) bool {
	if t == nil || o == nil {
		return t == o
	}
	if !t.m.Equal(o.m) || len(t.vars) != len(o.vars) || len(t.basis) != len(o.basis) {
		return false
	}
	for i := range t.vars {
		if t.vars[i] != o.vars[i] {
			return false
		}
	}
	for i := range t.basis {
		if t.basis[i] != o.basis[i] {
			return false
		}
	}

	return true
}

// String renders a compact debug form: header line, then "basis [row]" lines.
func (t *Tableau) String() string {
	var sb strings.Builder
	sb.WriteString("\t")
	sb.WriteString(strings.Join(t.Header(), "\t"))
	sb.WriteString("\n")
	for i, row := range t.View() {
		sb.WriteString(t.basis[i])
		sb.WriteString("\t")
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}

	return sb.String()
}
