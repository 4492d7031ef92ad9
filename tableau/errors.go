// SPDX-License-Identifier: MIT
// Package tableau: sentinel error set.
// All operations return these sentinels, either plain or wrapped as
// "Op(args): %w"; tests and callers match via errors.Is. No operation panics
// on user-triggered conditions.

package tableau

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("tableau: dimensions must be > 0")

	// ErrDimensionMismatch indicates rows/columns that do not match the tableau shape.
	ErrDimensionMismatch = errors.New("tableau: dimension mismatch")

	// ErrNamingMismatch indicates variable or basis names that do not fit the
	// shape, or that are empty, duplicated or unknown.
	ErrNamingMismatch = errors.New("tableau: naming mismatch")

	// ErrOutOfBounds indicates a row or column index outside the valid range.
	// For Pivot the RHS column counts as out of bounds.
	ErrOutOfBounds = errors.New("tableau: index out of bounds")

	// ErrZeroPivot is returned when the chosen pivot element is zero.
	ErrZeroPivot = errors.New("tableau: zero pivot element")

	// ErrNothingToUndo is returned by History.Undo on an empty history.
	ErrNothingToUndo = errors.New("tableau: nothing to undo")

	// ErrBasisInconsistent signals that a basic variable's column is not the
	// identity column of its row.
	ErrBasisInconsistent = errors.New("tableau: basis inconsistent with matrix")
)

// tableauErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func tableauErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// cellErrorf wraps err with an operation tag and coordinates.
func cellErrorf(op string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, row, col, err)
}
