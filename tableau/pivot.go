// SPDX-License-Identifier: MIT

package tableau

import "github.com/katalvlaran/pivotlab/rational"

const ctxPivot = "Pivot"

// Pivot performs one Gauss-Jordan elimination step around (row, col).
//
// Implementation:
//   - Stage 1 (Validate): 0 ≤ row < n, 0 ≤ col < m-1 (the RHS column is never
//     a pivot column), a[row][col] ≠ 0. Nothing is mutated before this passes.
//   - Stage 2 (Scale): row ← row · a[row][col]⁻¹, so the pivot becomes exactly 1.
//   - Stage 3 (Eliminate): for every other row r, r ← r − a[r][col] · row.
//   - Stage 4 (Finalize): basis[row] ← vars[col]; iteration++.
//
// Postcondition: column col is the identity column of row.
//
// Errors:
//   - ErrOutOfBounds, ErrZeroPivot (wrapped with coordinates).
//
// Complexity: O(n*m) rational operations.
func (t *Tableau) Pivot(row, col int) error {
	p, err := t.pivotElement(row, col)
	if err != nil {
		return err
	}

	inv, _ := p.Inv() // p ≠ 0
	t.m.scaleRow(row, inv)
	t.m.data[row*t.m.c+col] = rational.One()

	for r := 0; r < t.m.r; r++ {
		if r == row {
			continue
		}
		f := t.m.data[r*t.m.c+col]
		if f.IsZero() {
			continue
		}
		t.m.subScaledRow(r, row, f)
	}

	t.basis[row] = t.vars[col]
	t.iteration++

	return nil
}

// CanPivot reports whether Pivot(row, col) would succeed, and why not.
func (t *Tableau) CanPivot(row, col int) error {
	_, err := t.pivotElement(row, col)

	return err
}

// pivotElement validates the pivot coordinates and returns the element.
func (t *Tableau) pivotElement(row, col int) (rational.Rational, error) {
	if row < 0 || row >= t.m.r || col < 0 || col >= t.RHSCol() {
		return rational.Rational{}, cellErrorf(ctxPivot, row, col, ErrOutOfBounds)
	}
	p := t.m.data[row*t.m.c+col]
	if p.IsZero() {
		return rational.Rational{}, cellErrorf(ctxPivot, row, col, ErrZeroPivot)
	}

	return p, nil
}
