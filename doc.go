// Package pivotlab is a workbench for Simplex tableaux kept in exact
// rational arithmetic: edit a tableau cell by cell, pivot on any non-zero
// element, undo, or let a pivot rule drive the method to its verdict.
//
// 🚀 What is pivotlab?
//
//	A small stack of packages, each usable on its own:
//		• rational: immutable fractions in lowest terms, with the lenient
//		  cell parser used by editors ("3/6" reads as 1/2)
//		• tableau:  the tableau, its Gauss-Jordan pivot, structural edits
//		  and a bounded undo history
//		• simplex:  Bland and Dantzig pivot rules, maximize or minimize,
//		  with optimal, unbounded and iteration-limit verdicts
//		• session:  edit/pivot modes, pending cell text and undo, the
//		  state behind every interactive front end
//
// ✨ Why exact?
//
//   - No rounding – every pivot is computed on fractions, so degenerate
//     and near-degenerate tableaux behave exactly as on paper
//   - Reversible – pivoting back on the column that just left the basis
//     restores the previous tableau entry for entry
//   - Teachable – each step prints as the fractions a student would write
//
// The pivotlab command (cmd/pivotlab) wraps the packages: show, pivot and
// solve work on YAML tableau files, repl offers a line-oriented session and
// edit opens a full-screen editor.
//
// Quick example, max 3x + 5y s.t. x ≤ 4, 2y ≤ 12:
//
//	basis │  x   y  s1   s2 │ RHS        basis │ x  y  s1   s2 │ RHS
//	  z   │ -3  -5   0    0 │   0          z   │ 0  0   3  5/2 │  42
//	  s1  │  1   0   1    0 │   4    ⇒     x   │ 1  0   1    0 │   4
//	  s2  │  0   2   0    1 │  12          y   │ 0  1   0  1/2 │   6
//
//	go install github.com/katalvlaran/pivotlab/cmd/pivotlab@latest
package pivotlab
