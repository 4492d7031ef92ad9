package tableau_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pivotlab/rational"
	"github.com/katalvlaran/pivotlab/tableau"
)

// TestUndoEmpty reports ErrNothingToUndo without side effects.
func TestUndoEmpty(t *testing.T) {
	var h tableau.History
	got, err := h.Undo()
	require.ErrorIs(t, err, tableau.ErrNothingToUndo)
	require.Nil(t, got)
	require.Equal(t, 0, h.Len())
}

// TestUndoRestoresPrePivot snapshots, pivots and undoes.
func TestUndoRestoresPrePivot(t *testing.T) {
	tb := textbook(t)
	orig := tb.Clone()
	h := tableau.NewHistory(tableau.DefaultHistoryLimit)

	h.Push(tb)
	require.NoError(t, tb.Pivot(2, 1))
	require.False(t, tb.Equal(orig))

	prev, err := h.Undo()
	require.NoError(t, err)
	require.True(t, prev.Equal(orig))
	require.Equal(t, 0, prev.Iteration())

	_, err = h.Undo()
	require.ErrorIs(t, err, tableau.ErrNothingToUndo)
}

// TestHistorySnapshotsAreDeep ensures later mutation does not leak into snapshots.
func TestHistorySnapshotsAreDeep(t *testing.T) {
	tb := textbook(t)
	var h tableau.History
	h.Push(tb)
	require.NoError(t, tb.Set(0, 0, rational.FromInt(100)))

	snap, err := h.Undo()
	require.NoError(t, err)
	v, _ := snap.At(0, 0)
	require.Equal(t, "-3", v.String())
}

// TestHistoryLimit drops the oldest snapshot when full.
func TestHistoryLimit(t *testing.T) {
	tb := textbook(t)
	h := tableau.NewHistory(2)

	h.Push(tb) // iteration 0, evicted below
	require.NoError(t, tb.Pivot(2, 1))
	h.Push(tb) // iteration 1
	require.NoError(t, tb.Pivot(3, 0))
	h.Push(tb) // iteration 2
	require.Equal(t, 2, h.Len())

	s, err := h.Undo()
	require.NoError(t, err)
	require.Equal(t, 2, s.Iteration())
	s, err = h.Undo()
	require.NoError(t, err)
	require.Equal(t, 1, s.Iteration())
	_, err = h.Undo()
	require.ErrorIs(t, err, tableau.ErrNothingToUndo)
}

// TestHistoryDropAndClear covers rollback helpers.
func TestHistoryDropAndClear(t *testing.T) {
	tb := textbook(t)
	var h tableau.History
	require.Nil(t, h.Peek())
	h.Push(tb)
	h.Push(tb)
	require.True(t, h.Peek().Equal(tb))
	h.Drop()
	require.Equal(t, 1, h.Len())
	h.Clear()
	require.Equal(t, 0, h.Len())
	h.Drop() // no-op on empty
	require.Equal(t, 0, h.Len())
}
