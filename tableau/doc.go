// Package tableau holds a Simplex tableau in exact rational arithmetic and the
// Gauss-Jordan pivot that drives it.
//
// The package provides:
//
//   - Matrix: a row-major n×m grid of rational.Rational with safe accessors.
//   - Tableau: Matrix + variable names (one per non-RHS column) + the basic
//     variable of every row + an iteration counter.
//   - Pivot: one elimination step around a caller-chosen element. No selection
//     policy lives here; see package simplex for Bland/Dantzig drivers.
//   - AddConstraint / AddVariable: structural edits (append row, insert column
//     before RHS).
//   - History: snapshot stack with Undo.
//
// Every failing operation validates before it mutates, so an error always
// leaves the tableau exactly as it was.
//
// Layout convention (by example):
//
//	         x    y   s1 | RHS
//	z   [   -3   -5    0 |   0 ]
//	s1  [    1    0    1 |   4 ]
//
// The last column is the right-hand side; it is never a pivot column.
package tableau
