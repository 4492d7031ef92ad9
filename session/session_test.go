package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pivotlab/rational"
	"github.com/katalvlaran/pivotlab/session"
	"github.com/katalvlaran/pivotlab/simplex"
	"github.com/katalvlaran/pivotlab/tableau"
)

// fill types literal rows into a default-shaped session and commits them.
func fill(t *testing.T, s *session.Session, rows [][]string) {
	t.Helper()
	for i, row := range rows {
		for j, text := range row {
			require.NoError(t, s.SetInput(i, j, text))
		}
	}
	require.NoError(t, s.CommitAll())
}

// TestDefault checks the 4x3 starting grid.
func TestDefault(t *testing.T) {
	s := session.Default()
	tb := s.Tableau()
	require.Equal(t, session.Edit, s.Mode())
	require.Equal(t, []string{"x1", "x2", "RHS"}, tb.Header())
	require.Equal(t, []string{"z", "s1", "s2", "s3"}, tb.Basis())
	for _, row := range tb.View() {
		require.Equal(t, []string{"0", "0", "0"}, row)
	}
	require.Equal(t, 0, s.HistoryLen())
}

// TestCommitFailToZero writes zero for bad text and still reports the error.
func TestCommitFailToZero(t *testing.T) {
	s := session.Default()
	require.NoError(t, s.SetInput(1, 0, "7/2"))
	require.True(t, s.Pending(1, 0))
	require.Equal(t, "7/2", s.Input(1, 0))
	require.NoError(t, s.Commit(1, 0))
	require.False(t, s.Pending(1, 0))
	require.Equal(t, "7/2", s.Input(1, 0))
	require.Equal(t, 1, s.HistoryLen())

	require.NoError(t, s.SetInput(1, 0, "seven"))
	err := s.Commit(1, 0)
	require.ErrorIs(t, err, rational.ErrMalformed)
	require.Equal(t, "0", s.Input(1, 0))
	require.Contains(t, s.Status(), "using 0")
	require.Equal(t, 2, s.HistoryLen())

	require.NoError(t, s.SetInput(2, 1, "1/0"))
	require.ErrorIs(t, s.Commit(2, 1), rational.ErrDivisionByZero)
	require.Equal(t, "0", s.Input(2, 1))
	require.Equal(t, 2, s.HistoryLen(), "unchanged value must not snapshot")
}

// TestCommitNormalizes stores lowest terms.
func TestCommitNormalizes(t *testing.T) {
	s := session.Default()
	require.NoError(t, s.SetInput(0, 2, " 3 / -6 "))
	require.NoError(t, s.Commit(0, 2))
	require.Equal(t, "-1/2", s.Input(0, 2))
	require.NoError(t, s.Commit(0, 2), "no pending text is a no-op")
}

// TestModeGuards refuses edits in Pivot mode and pivots in Edit mode.
func TestModeGuards(t *testing.T) {
	s := session.Default()
	require.ErrorIs(t, s.Pivot(1, 0), session.ErrWrongMode)
	_, err := s.Step()
	require.ErrorIs(t, err, session.ErrWrongMode)
	_, err = s.Solve(context.Background())
	require.ErrorIs(t, err, session.ErrWrongMode)

	require.NoError(t, s.SetMode(session.Pivot))
	require.ErrorIs(t, s.SetInput(0, 0, "1"), session.ErrWrongMode)
	require.ErrorIs(t, s.Commit(0, 0), session.ErrWrongMode)
	require.ErrorIs(t, s.SetInput(9, 9, "1"), session.ErrWrongMode)

	require.NoError(t, s.SetMode(session.Edit))
	require.ErrorIs(t, s.SetInput(9, 9, "1"), tableau.ErrOutOfBounds)
}

// TestSetModeCommitsPending flushes typed text when leaving Edit mode.
func TestSetModeCommitsPending(t *testing.T) {
	s := session.Default()
	require.NoError(t, s.SetInput(1, 0, "2"))
	require.NoError(t, s.SetInput(1, 2, "oops"))
	err := s.SetMode(session.Pivot)
	require.ErrorIs(t, err, rational.ErrMalformed)
	require.Equal(t, session.Pivot, s.Mode())
	require.Equal(t, []string{"2", "0", "0"}, s.Tableau().View()[1])
}

// TestPivotAndUndo pivots in Pivot mode and undoes back to the edited grid.
func TestPivotAndUndo(t *testing.T) {
	s := session.Default()
	fill(t, s, [][]string{
		{"-1", "-1", "0"},
		{"1", "0", "4"},
		{"0", "1", "3"},
		{"1", "1", "5"},
	})
	edited := s.Tableau()
	require.NoError(t, s.SetMode(session.Pivot))

	require.NoError(t, s.Pivot(3, 0))
	require.Equal(t, "x1", s.Tableau().Basis()[3])
	require.Equal(t, 1, s.Tableau().Iteration())

	before := s.HistoryLen()
	require.ErrorIs(t, s.Pivot(2, 0), tableau.ErrZeroPivot)
	require.ErrorIs(t, s.Pivot(0, 2), tableau.ErrOutOfBounds)
	require.Equal(t, before, s.HistoryLen(), "failed pivots leave no snapshot")

	require.NoError(t, s.Undo())
	require.True(t, s.Tableau().Equal(edited))
	require.Equal(t, 0, s.Tableau().Iteration())
}

// TestUndoUntilEmpty walks every cell commit back.
func TestUndoUntilEmpty(t *testing.T) {
	s := session.Default()
	fill(t, s, [][]string{{"1", "2", "3"}})
	require.Equal(t, 3, s.HistoryLen())
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Undo())
	}
	require.True(t, s.Tableau().Equal(session.DefaultTableau()))
	require.ErrorIs(t, s.Undo(), tableau.ErrNothingToUndo)
	require.Equal(t, "nothing to undo", s.Status())
}

// TestStructuralEdits adds rows and columns with fresh names and undoes them.
func TestStructuralEdits(t *testing.T) {
	s := session.Default()
	require.NoError(t, s.AddZeroConstraint())
	require.NoError(t, s.AddZeroVariable())
	tb := s.Tableau()
	require.Equal(t, []string{"z", "s1", "s2", "s3", "s4"}, tb.Basis())
	require.Equal(t, []string{"x1", "x2", "x3", "RHS"}, tb.Header())
	require.Equal(t, 5, tb.Rows())

	require.ErrorIs(t, s.AddVariable(make([]rational.Rational, 2), "y"), tableau.ErrDimensionMismatch)
	require.ErrorIs(t, s.AddConstraint(make([]rational.Rational, 4), ""), tableau.ErrNamingMismatch)
	require.Equal(t, 2, s.HistoryLen())

	require.NoError(t, s.Undo())
	require.Equal(t, []string{"x1", "x2", "RHS"}, s.Tableau().Header())
	require.NoError(t, s.Undo())
	require.Equal(t, 4, s.Tableau().Rows())
}

// TestSolveSnapshotsEveryPivot lets Undo walk back one automatic pivot at a time.
func TestSolveSnapshotsEveryPivot(t *testing.T) {
	s := session.Default()
	require.NoError(t, s.AddZeroVariable())
	require.NoError(t, s.AddZeroVariable())
	require.NoError(t, s.AddZeroVariable())
	// max x1 + x2 s.t. x1 ≤ 4, x2 ≤ 3, x1 + x2 ≤ 5 with slacks x3..x5.
	fill(t, s, [][]string{
		{"-1", "-1", "0", "0", "0", "0"},
		{"1", "0", "1", "0", "0", "4"},
		{"0", "1", "0", "1", "0", "3"},
		{"1", "1", "0", "0", "1", "5"},
	})
	start := s.Tableau()
	require.NoError(t, s.SetMode(session.Pivot))
	histBefore := s.HistoryLen()

	res, err := s.Solve(context.Background(), simplex.WithRule(simplex.Bland))
	require.NoError(t, err)
	require.Equal(t, simplex.Optimal, res.Status)
	require.Equal(t, "5", res.Objective.String())
	require.Equal(t, histBefore+res.Iterations, s.HistoryLen())
	require.Contains(t, s.Status(), "optimal")

	for i := 0; i < res.Iterations; i++ {
		require.NoError(t, s.Undo())
	}
	require.True(t, s.Tableau().Equal(start))
}

// TestStep applies exactly one driver-chosen pivot.
func TestStep(t *testing.T) {
	s := session.New(stepFixture(t))
	require.NoError(t, s.SetMode(session.Pivot))
	p, err := s.Step()
	require.NoError(t, err)
	require.Equal(t, 1, p.Row)
	require.Equal(t, 0, p.Col)
	require.Equal(t, 1, s.HistoryLen())

	_, err = s.Step()
	require.ErrorIs(t, err, simplex.ErrOptimal)
	require.Equal(t, 1, s.HistoryLen())
}

func stepFixture(t *testing.T) *tableau.Tableau {
	t.Helper()
	rows := [][]rational.Rational{
		{rational.FromInt(-1), rational.Zero(), rational.Zero()},
		{rational.One(), rational.One(), rational.FromInt(2)},
	}
	tb, err := tableau.New(2, 3, rows, []string{"x", "s"}, []string{"z", "s"})
	require.NoError(t, err)

	return tb
}

// TestReset drops history and returns to Edit mode.
func TestReset(t *testing.T) {
	s := session.New(stepFixture(t), session.WithHistoryLimit(1))
	require.NoError(t, s.SetMode(session.Pivot))
	require.NoError(t, s.Pivot(1, 0))
	s.Reset(nil)
	require.Equal(t, session.Edit, s.Mode())
	require.Equal(t, 0, s.HistoryLen())
	require.True(t, s.Tableau().Equal(session.DefaultTableau()))
}

// TestHistoryLimit keeps only the newest snapshots.
func TestHistoryLimit(t *testing.T) {
	s := session.Default(session.WithHistoryLimit(2))
	fill(t, s, [][]string{{"1", "2", "3"}})
	require.Equal(t, 2, s.HistoryLen())
	require.NoError(t, s.Undo())
	require.NoError(t, s.Undo())
	require.Equal(t, []string{"1", "0", "0"}, s.Tableau().View()[0])
}

// TestParseMode covers names and unknown input.
func TestParseMode(t *testing.T) {
	m, err := session.ParseMode(" Pivot ")
	require.NoError(t, err)
	require.Equal(t, session.Pivot, m)
	_, err = session.ParseMode("draw")
	require.ErrorIs(t, err, session.ErrUnknownMode)
}
