// SPDX-License-Identifier: MIT
// Package tableau_test contains test helpers
//
// Purpose:
//   • Build tableaux from string literals so fixtures read like the printed form.
//   • Compare exactly: every check goes through Rational.Equal, never floats.

package tableau_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pivotlab/rational"
	"github.com/katalvlaran/pivotlab/tableau"
)

// rats converts literal rows into Rational rows; it panics on a bad literal.
func rats(rows [][]string) [][]rational.Rational {
	out := make([][]rational.Rational, len(rows))
	for i, row := range rows {
		out[i] = ratRow(row...)
	}

	return out
}

// ratRow converts literals into one Rational row.
func ratRow(cells ...string) []rational.Rational {
	out := make([]rational.Rational, len(cells))
	for j, c := range cells {
		out[j] = rational.MustParse(c)
	}

	return out
}

// MustTableau builds a tableau from literals or fails the test.
func MustTableau(t *testing.T, rows [][]string, vars, basis []string, opts ...tableau.Option) *tableau.Tableau {
	t.Helper()
	tb, err := tableau.New(len(rows), len(rows[0]), rats(rows), vars, basis, opts...)
	require.NoError(t, err)

	return tb
}

// RequireView asserts the display form equals want.
func RequireView(t *testing.T, want [][]string, tb *tableau.Tableau) {
	t.Helper()
	require.Equal(t, want, tb.View())
}

// RequireIdentityCol asserts column col is 1 at row and 0 elsewhere, exactly.
func RequireIdentityCol(t *testing.T, tb *tableau.Tableau, row, col int) {
	t.Helper()
	for r := 0; r < tb.Rows(); r++ {
		v, err := tb.At(r, col)
		require.NoError(t, err)
		if r == row {
			require.Truef(t, v.IsOne(), "a[%d][%d] = %s, want 1", r, col, v)
		} else {
			require.Truef(t, v.IsZero(), "a[%d][%d] = %s, want 0", r, col, v)
		}
	}
}

// textbook is the classic max 3x + 5y, x ≤ 4, 2y ≤ 12, 3x + 2y ≤ 18 tableau.
func textbook(t *testing.T) *tableau.Tableau {
	t.Helper()

	return MustTableau(t, [][]string{
		{"-3", "-5", "0", "0", "0", "0"},
		{"1", "0", "1", "0", "0", "4"},
		{"0", "2", "0", "1", "0", "12"},
		{"3", "2", "0", "0", "1", "18"},
	}, []string{"x", "y", "s1", "s2", "s3"}, []string{"z", "s1", "s2", "s3"})
}
