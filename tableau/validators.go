// SPDX-License-Identifier: MIT
// Package: tableau
//
// Purpose:
//   - Single source of truth for the shape and naming checks used by New and
//     the structural edits.
//   - Return plain sentinels; call sites wrap with their operation tag.

package tableau

import "github.com/katalvlaran/pivotlab/rational"

// validateRows checks that rows is exactly n×m.
func validateRows(rows [][]rational.Rational, n, m int) error {
	if len(rows) != n {
		return ErrDimensionMismatch
	}
	for _, row := range rows {
		if len(row) != m {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// validateVarNames checks count, non-emptiness and uniqueness.
func validateVarNames(vars []string, want int) error {
	if len(vars) != want {
		return ErrNamingMismatch
	}
	seen := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		if v == "" {
			return ErrNamingMismatch
		}
		if _, dup := seen[v]; dup {
			return ErrNamingMismatch
		}
		seen[v] = struct{}{}
	}

	return nil
}

// validateBasisNames checks one non-empty name per row. Repeated names are
// allowed: a manual pivot on a non-canonical tableau can bring in a variable
// that another row still names, and such a tableau must load again.
func validateBasisNames(basis []string, want int) error {
	if len(basis) != want {
		return ErrNamingMismatch
	}
	for _, b := range basis {
		if b == "" {
			return ErrNamingMismatch
		}
	}

	return nil
}

// indexOfName returns the position of name in names or -1.
func indexOfName(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}

	return -1
}
