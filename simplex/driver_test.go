package simplex_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pivotlab/rational"
	"github.com/katalvlaran/pivotlab/simplex"
	"github.com/katalvlaran/pivotlab/tableau"
)

// mustTableau builds a tableau from literal rows or fails the test.
func mustTableau(t *testing.T, rows [][]string, vars, basis []string, opts ...tableau.Option) *tableau.Tableau {
	t.Helper()
	data := make([][]rational.Rational, len(rows))
	for i, row := range rows {
		data[i] = make([]rational.Rational, len(row))
		for j, c := range row {
			data[i][j] = rational.MustParse(c)
		}
	}
	tb, err := tableau.New(len(rows), len(rows[0]), data, vars, basis, opts...)
	require.NoError(t, err)

	return tb
}

// textbook: max 3x + 5y s.t. x ≤ 4, 2y ≤ 12, 3x + 2y ≤ 18. Optimum 36 at (2, 6).
func textbook(t *testing.T) *tableau.Tableau {
	t.Helper()

	return mustTableau(t, [][]string{
		{"-3", "-5", "0", "0", "0", "0"},
		{"1", "0", "1", "0", "0", "4"},
		{"0", "2", "0", "1", "0", "12"},
		{"3", "2", "0", "0", "1", "18"},
	}, []string{"x", "y", "s1", "s2", "s3"}, []string{"z", "s1", "s2", "s3"})
}

// beale is Beale's degenerate problem on which Dantzig's rule cycles.
func beale(t *testing.T) *tableau.Tableau {
	t.Helper()

	return mustTableau(t, [][]string{
		{"0", "0", "0", "-3/4", "20", "-1/2", "6", "0"},
		{"1", "0", "0", "1/4", "-8", "-1", "9", "0"},
		{"0", "1", "0", "1/2", "-12", "-1/2", "3", "0"},
		{"0", "0", "1", "0", "0", "1", "0", "1"},
	}, []string{"x1", "x2", "x3", "x4", "x5", "x6", "x7"}, []string{"z", "x1", "x2", "x3"})
}

func requireRat(t *testing.T, want string, got rational.Rational) {
	t.Helper()
	require.Truef(t, rational.MustParse(want).Equal(got), "got %s, want %s", got, want)
}

func positions(ps []simplex.Pivot) [][2]int {
	out := make([][2]int, len(ps))
	for i, p := range ps {
		out[i] = [2]int{p.Row, p.Col}
	}

	return out
}

// TestRunBland solves the textbook problem with Bland's rule.
func TestRunBland(t *testing.T) {
	tb := textbook(t)
	res, err := simplex.NewDriver().Run(context.Background(), tb)
	require.NoError(t, err)
	require.Equal(t, simplex.Optimal, res.Status)
	require.Equal(t, 3, res.Iterations)
	require.Equal(t, [][2]int{{1, 0}, {3, 1}, {2, 2}}, positions(res.Pivots))
	require.Equal(t, "x", res.Pivots[0].Entering)
	require.Equal(t, "s1", res.Pivots[0].Leaving)

	requireRat(t, "36", res.Objective)
	requireRat(t, "2", res.Values["x"])
	requireRat(t, "6", res.Values["y"])
	requireRat(t, "2", res.Values["s1"])
	requireRat(t, "0", res.Values["s2"])
	requireRat(t, "0", res.Values["s3"])
	require.True(t, res.Feasible)
	require.Equal(t, 3, tb.Iteration())
}

// TestRunDantzig takes the shorter path to the same optimum.
func TestRunDantzig(t *testing.T) {
	res, err := simplex.Solve(context.Background(), textbook(t), simplex.WithRule(simplex.Dantzig))
	require.NoError(t, err)
	require.Equal(t, simplex.Optimal, res.Status)
	require.Equal(t, [][2]int{{2, 1}, {3, 0}}, positions(res.Pivots))
	requireRat(t, "36", res.Objective)
	requireRat(t, "2", res.Values["x"])
	requireRat(t, "6", res.Values["y"])
}

// TestBealeCycling: Dantzig revisits its starting basis, Bland terminates.
func TestBealeCycling(t *testing.T) {
	tb := beale(t)
	start := tb.Basis()
	res, err := simplex.NewDriver(simplex.WithRule(simplex.Dantzig), simplex.WithMaxIterations(12)).
		Run(context.Background(), tb)
	require.ErrorIs(t, err, simplex.ErrIterationLimit)
	require.Equal(t, simplex.IterationLimit, res.Status)
	require.Equal(t, 12, res.Iterations)
	require.Equal(t, res.Pivots[:6], res.Pivots[6:])
	require.Equal(t, start, tb.Basis())

	tb = beale(t)
	res, err = simplex.NewDriver(simplex.WithRule(simplex.Bland)).Run(context.Background(), tb)
	require.NoError(t, err)
	require.Equal(t, simplex.Optimal, res.Status)
	require.Equal(t, 6, res.Iterations)
	requireRat(t, "5/4", res.Objective)
	requireRat(t, "1", res.Values["x4"])
	requireRat(t, "1", res.Values["x6"])
	requireRat(t, "0", res.Values["x7"])
}

// TestRunLimitEqualsPivotCount: a cap that the last pivot exactly uses up
// still reports the verdict that pivot reached.
func TestRunLimitEqualsPivotCount(t *testing.T) {
	res, err := simplex.Solve(context.Background(), textbook(t), simplex.WithMaxIterations(3))
	require.NoError(t, err)
	require.Equal(t, simplex.Optimal, res.Status)
	require.Equal(t, 3, res.Iterations)
	requireRat(t, "36", res.Objective)

	res, err = simplex.Solve(context.Background(), textbook(t), simplex.WithMaxIterations(2))
	require.ErrorIs(t, err, simplex.ErrIterationLimit)
	require.Equal(t, simplex.IterationLimit, res.Status)
	require.Equal(t, 2, res.Iterations)

	unbounded := mustTableau(t, [][]string{
		{"-1", "0", "0", "0"},
		{"1", "-1", "1", "1"},
	}, []string{"x", "y", "s"}, []string{"z", "s"})
	res, err = simplex.Solve(context.Background(), unbounded, simplex.WithMaxIterations(1))
	require.ErrorIs(t, err, simplex.ErrUnbounded)
	require.Equal(t, simplex.Unbounded, res.Status)
	require.Equal(t, 1, res.Iterations)
}

// TestRunUnbounded reports the offending column and keeps the result.
func TestRunUnbounded(t *testing.T) {
	tb := mustTableau(t, [][]string{
		{"-1", "0", "0", "0"},
		{"1", "-1", "1", "1"},
	}, []string{"x", "y", "s"}, []string{"z", "s"})

	res, err := simplex.NewDriver().Run(context.Background(), tb)
	require.ErrorIs(t, err, simplex.ErrUnbounded)
	require.Equal(t, simplex.Unbounded, res.Status)
	require.Equal(t, 1, res.Iterations)
	requireRat(t, "1", res.Objective)

	p, err := simplex.NewDriver().Next(tb)
	require.ErrorIs(t, err, simplex.ErrUnbounded)
	require.Equal(t, -1, p.Row)
	require.Equal(t, "y", p.Entering)
}

// TestRunMinimize reads positive objective entries as improving.
func TestRunMinimize(t *testing.T) {
	tb := mustTableau(t, [][]string{
		{"1", "0", "0"},
		{"1", "1", "3"},
	}, []string{"x", "s"}, []string{"z", "s"})

	res, err := simplex.NewDriver(simplex.WithSense(simplex.Minimize)).Run(context.Background(), tb)
	require.NoError(t, err)
	require.Equal(t, simplex.Optimal, res.Status)
	requireRat(t, "-3", res.Objective)
	requireRat(t, "3", res.Values["x"])

	// Read as a maximization the starting tableau is already optimal.
	tb = mustTableau(t, [][]string{
		{"1", "0", "0"},
		{"1", "1", "3"},
	}, []string{"x", "s"}, []string{"z", "s"})
	res, err = simplex.NewDriver().Run(context.Background(), tb)
	require.NoError(t, err)
	require.Zero(t, res.Iterations)
}

// TestArtificialNeverEnters skips artificial columns even when they improve.
func TestArtificialNeverEnters(t *testing.T) {
	tb := mustTableau(t, [][]string{
		{"0", "-5", "0"},
		{"1", "1", "2"},
	}, []string{"x", "a"}, []string{"z", "x"}, tableau.WithArtificial("a"))

	_, err := simplex.NewDriver().Next(tb)
	require.ErrorIs(t, err, simplex.ErrOptimal)
}

// TestRunPreconditions covers the checks performed before any pivot.
func TestRunPreconditions(t *testing.T) {
	infeasible := mustTableau(t, [][]string{
		{"-1", "0", "0"},
		{"1", "1", "-2"},
	}, []string{"x", "s"}, []string{"z", "s"})
	before := infeasible.Clone()
	_, err := simplex.NewDriver().Run(context.Background(), infeasible)
	require.ErrorIs(t, err, simplex.ErrInfeasibleStart)
	require.True(t, infeasible.Equal(before))

	_, err = simplex.NewDriver(simplex.WithObjectiveRow(5)).Next(textbook(t))
	require.ErrorIs(t, err, tableau.ErrOutOfBounds)

	_, err = simplex.NewDriver(simplex.WithRule(simplex.Rule(9))).Next(textbook(t))
	require.ErrorIs(t, err, simplex.ErrUnknownRule)
}

// TestRunCancelled stops between pivots and leaves a consistent tableau.
func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tb := textbook(t)
	d := simplex.NewDriver(simplex.WithBeforePivot(func(*tableau.Tableau, simplex.Pivot) error {
		cancel()

		return nil
	}))

	res, err := d.Run(ctx, tb)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, simplex.Running, res.Status)
	require.Equal(t, 1, res.Iterations)
	require.NoError(t, tb.ValidateBasis())
}

// TestBeforePivotHook sees every pivot and can abort before it is applied.
func TestBeforePivotHook(t *testing.T) {
	var h tableau.History
	tb := textbook(t)
	d := simplex.NewDriver(simplex.WithBeforePivot(func(cur *tableau.Tableau, _ simplex.Pivot) error {
		h.Push(cur)

		return nil
	}))
	res, err := d.Run(context.Background(), tb)
	require.NoError(t, err)
	require.Equal(t, res.Iterations, h.Len())

	for h.Len() > 0 {
		tb, err = h.Undo()
		require.NoError(t, err)
	}
	require.True(t, tb.Equal(textbook(t)))

	stop := errors.New("stop")
	tb = textbook(t)
	_, err = simplex.NewDriver(simplex.WithBeforePivot(func(*tableau.Tableau, simplex.Pivot) error { return stop })).
		Step(tb)
	require.ErrorIs(t, err, stop)
	require.True(t, tb.Equal(textbook(t)))
}

// TestStepLogsPivot routes pivot records through the configured logger.
func TestStepLogsPivot(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := simplex.NewDriver(simplex.WithLogger(log)).Step(textbook(t))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "msg=pivot")
	require.Contains(t, buf.String(), "entering=x")
	require.Contains(t, buf.String(), "leaving=s1")
}

// TestParseRuleAndSense covers the name round trips and unknown names.
func TestParseRuleAndSense(t *testing.T) {
	for _, r := range []simplex.Rule{simplex.Bland, simplex.Dantzig} {
		got, err := simplex.ParseRule(r.String())
		require.NoError(t, err)
		require.Equal(t, r, got)
	}
	_, err := simplex.ParseRule("steepest")
	require.ErrorIs(t, err, simplex.ErrUnknownRule)

	for in, want := range map[string]simplex.Sense{"max": simplex.Maximize, "Minimize": simplex.Minimize, " min ": simplex.Minimize} {
		got, err := simplex.ParseSense(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err = simplex.ParseSense("both")
	require.ErrorIs(t, err, simplex.ErrUnknownSense)
}

// TestOptionPanics rejects nonsensical option values.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { simplex.WithMaxIterations(0) })
	require.Panics(t, func() { simplex.WithObjectiveRow(-1) })
	require.NotPanics(t, func() { simplex.NewDriver(nil, simplex.WithoutIterationLimit()) })
}

// TestSolutionFlagsArtificial marks a non-zero artificial basic as infeasible.
func TestSolutionFlagsArtificial(t *testing.T) {
	tb := mustTableau(t, [][]string{
		{"0", "0", "0"},
		{"1", "1", "2"},
	}, []string{"x", "a"}, []string{"z", "a"}, tableau.WithArtificial("a"))

	p := simplex.Solution(tb, 0)
	require.False(t, p.Feasible)
	requireRat(t, "2", p.Values["a"])
	requireRat(t, "0", p.Values["x"])

	p = simplex.Solution(tb, 7)
	requireRat(t, "0", p.Objective)
}
