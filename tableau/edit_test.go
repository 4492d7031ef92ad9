package tableau_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pivotlab/tableau"
)

// TestAddConstraint appends a row and its basic variable.
func TestAddConstraint(t *testing.T) {
	tb := MustTableau(t, [][]string{{"1", "2", "0", "4"}}, []string{"x", "y", "s1"}, []string{"s1"})

	require.NoError(t, tb.AddConstraint(ratRow("0", "1", "1", "3"), "s2"))
	require.Equal(t, 2, tb.Rows())
	require.Equal(t, []string{"s1", "s2"}, tb.Basis())
	RequireView(t, [][]string{{"1", "2", "0", "4"}, {"0", "1", "1", "3"}}, tb)
}

// TestAddConstraintWrongLength must fail and leave the tableau unchanged.
func TestAddConstraintWrongLength(t *testing.T) {
	tb := textbook(t)
	before := tb.Clone()

	for _, row := range [][]string{{}, {"1"}, {"1", "2", "3", "4", "5"}, {"1", "2", "3", "4", "5", "6", "7"}} {
		err := tb.AddConstraint(ratRow(row...), "s4")
		require.ErrorIs(t, err, tableau.ErrDimensionMismatch)
		require.True(t, tb.Equal(before))
		require.Equal(t, 4, tb.Rows())
	}

	require.ErrorIs(t, tb.AddConstraint(ratRow("0", "0", "0", "0", "0", "0"), ""), tableau.ErrNamingMismatch)
	require.True(t, tb.Equal(before))
}

// TestAddVariable inserts a column before RHS.
func TestAddVariable(t *testing.T) {
	tb := MustTableau(t, [][]string{
		{"1", "2", "4"},
		{"0", "1", "3"},
	}, []string{"x", "y"}, []string{"z", "y"})

	require.NoError(t, tb.AddVariable(ratRow("0", "1/2"), "s1"))
	require.Equal(t, 4, tb.Cols())
	require.Equal(t, []string{"x", "y", "s1", "RHS"}, tb.Header())
	RequireView(t, [][]string{{"1", "2", "0", "4"}, {"0", "1", "1/2", "3"}}, tb)

	// The new column is immediately pivotable.
	require.NoError(t, tb.Pivot(1, 2))
	require.Equal(t, "s1", tb.Basis()[1])
}

// TestAddVariableErrors covers length and naming guards.
func TestAddVariableErrors(t *testing.T) {
	tb := textbook(t)
	before := tb.Clone()

	require.ErrorIs(t, tb.AddVariable(ratRow("1", "2"), "w"), tableau.ErrDimensionMismatch)
	require.ErrorIs(t, tb.AddVariable(ratRow("1", "2", "3", "4"), "x"), tableau.ErrNamingMismatch)
	require.ErrorIs(t, tb.AddVariable(ratRow("1", "2", "3", "4"), ""), tableau.ErrNamingMismatch)
	require.True(t, tb.Equal(before))
}
