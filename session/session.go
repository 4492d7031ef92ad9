// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/pivotlab/rational"
	"github.com/katalvlaran/pivotlab/simplex"
	"github.com/katalvlaran/pivotlab/tableau"
)

// Mode selects which interactions are allowed.
type Mode int

const (
	// Edit allows cell edits; pivots are refused.
	Edit Mode = iota
	// Pivot allows pivots; cell edits are refused.
	Pivot
)

// String returns "edit" or "pivot".
func (m Mode) String() string {
	if m == Pivot {
		return "pivot"
	}

	return "edit"
}

// ParseMode maps "edit" / "pivot" (any case) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "edit":
		return Edit, nil
	case "pivot":
		return Pivot, nil
	default:
		return Edit, fmt.Errorf("%q: %w", s, ErrUnknownMode)
	}
}

type cell struct{ row, col int }

// Session owns a tableau and everything the user does to it.
type Session struct {
	t      *tableau.Tableau
	hist   *tableau.History
	mode   Mode
	inputs map[cell]string
	status string
	log    *slog.Logger
}

// DefaultTableau returns the starting grid of a fresh session: an objective
// row and three constraint rows over x1, x2, all zero.
func DefaultTableau() *tableau.Tableau {
	rows := make([][]rational.Rational, 4)
	for i := range rows {
		rows[i] = make([]rational.Rational, 3)
	}
	t, _ := tableau.New(4, 3, rows, []string{"x1", "x2"}, []string{"z", "s1", "s2", "s3"})

	return t
}

// New starts a session in Edit mode over t. The session takes ownership of t.
// A nil t starts from DefaultTableau.
func New(t *tableau.Tableau, opts ...Option) *Session {
	o := gatherOptions(opts...)
	if t == nil {
		t = DefaultTableau()
	}

	return &Session{
		t:      t,
		hist:   tableau.NewHistory(o.historyLimit),
		mode:   Edit,
		inputs: make(map[cell]string),
		log:    o.logger,
	}
}

// Default starts a session over DefaultTableau.
func Default(opts ...Option) *Session { return New(nil, opts...) }

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// SetMode switches mode. Pending cell text is committed before leaving Edit
// mode; the joined parse errors of that commit are returned.
func (s *Session) SetMode(m Mode) error {
	if m == s.mode {
		return nil
	}
	var err error
	if s.mode == Edit {
		err = s.CommitAll()
	}
	s.mode = m
	s.setStatus("%s mode", m)

	return err
}

// Tableau returns a copy of the current tableau.
func (s *Session) Tableau() *tableau.Tableau { return s.t.Clone() }

// Status returns the last human-readable status message.
func (s *Session) Status() string { return s.status }

// HistoryLen reports how many undo steps are available.
func (s *Session) HistoryLen() int { return s.hist.Len() }

// Input returns the text shown in a cell: the raw text if it has not been
// committed yet, otherwise the formatted value. Out-of-range cells read "".
func (s *Session) Input(row, col int) string {
	if text, ok := s.inputs[cell{row, col}]; ok {
		return text
	}
	v, err := s.t.At(row, col)
	if err != nil {
		return ""
	}

	return v.String()
}

// Pending reports whether a cell holds uncommitted text.
func (s *Session) Pending(row, col int) bool {
	_, ok := s.inputs[cell{row, col}]

	return ok
}

// SetInput stores raw text for a cell without parsing it.
// Errors: ErrWrongMode outside Edit mode; tableau.ErrOutOfBounds.
func (s *Session) SetInput(row, col int, text string) error {
	if s.mode != Edit {
		return fmt.Errorf("SetInput: %s mode: %w", s.mode, ErrWrongMode)
	}
	if _, err := s.t.At(row, col); err != nil {
		return err
	}
	s.inputs[cell{row, col}] = text

	return nil
}

// Commit parses the pending text of a cell and writes it. Unparseable text
// is written as zero and the parse error is returned. A snapshot is pushed
// only when the stored value actually changes. Committing a cell without
// pending text is a no-op.
func (s *Session) Commit(row, col int) error {
	if s.mode != Edit {
		return fmt.Errorf("Commit: %s mode: %w", s.mode, ErrWrongMode)
	}
	c := cell{row, col}
	text, ok := s.inputs[c]
	if !ok {
		return nil
	}
	cur, err := s.t.At(row, col)
	if err != nil {
		delete(s.inputs, c)

		return err
	}

	v, perr := rational.ParseCell(text)
	delete(s.inputs, c)
	if !v.Equal(cur) {
		s.hist.Push(s.t)
		_ = s.t.Set(row, col, v) // bounds checked above
		s.log.Debug("commit", "row", row, "col", col, "value", v.String())
	}
	if perr != nil {
		s.setStatus("cell (%d,%d): %v; using 0", row, col, perr)

		return perr
	}
	s.setStatus("cell (%d,%d) = %s", row, col, v)

	return nil
}

// CommitAll commits every pending cell in row-major order and joins the
// parse errors.
func (s *Session) CommitAll() error {
	var errs []error
	for i := 0; i < s.t.Rows(); i++ {
		for j := 0; j < s.t.Cols(); j++ {
			if !s.Pending(i, j) {
				continue
			}
			if err := s.Commit(i, j); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

// Pivot pivots on (row, col). Pivot mode only. A failed pivot leaves neither
// a changed tableau nor a history entry.
func (s *Session) Pivot(row, col int) error {
	if s.mode != Pivot {
		return fmt.Errorf("Pivot: %s mode: %w", s.mode, ErrWrongMode)
	}

	return s.mutate(func(t *tableau.Tableau) error { return t.Pivot(row, col) },
		"pivot (%d,%d)", row, col)
}

// AddConstraint appends a constraint row with its basic variable name.
func (s *Session) AddConstraint(row []rational.Rational, basicName string) error {
	return s.mutate(func(t *tableau.Tableau) error { return t.AddConstraint(row, basicName) },
		"added constraint %s", basicName)
}

// AddVariable inserts a variable column before RHS.
func (s *Session) AddVariable(column []rational.Rational, name string) error {
	return s.mutate(func(t *tableau.Tableau) error { return t.AddVariable(column, name) },
		"added variable %s", name)
}

// AddZeroConstraint appends an all-zero row whose basic name is the first
// unused "sN".
func (s *Session) AddZeroConstraint() error {
	name := s.freshName("s", s.t.Basis())

	return s.AddConstraint(make([]rational.Rational, s.t.Cols()), name)
}

// AddZeroVariable inserts an all-zero column named by the first unused "xN".
func (s *Session) AddZeroVariable() error {
	name := s.freshName("x", s.t.Vars())

	return s.AddVariable(make([]rational.Rational, s.t.Rows()), name)
}

func (s *Session) freshName(prefix string, taken []string) string {
	used := make(map[string]bool, len(taken)+len(s.t.Vars()))
	for _, n := range taken {
		used[n] = true
	}
	for _, n := range s.t.Vars() {
		used[n] = true
	}
	for k := 1; ; k++ {
		if name := fmt.Sprintf("%s%d", prefix, k); !used[name] {
			return name
		}
	}
}

// Undo restores the tableau from before the last mutation.
// Errors: tableau.ErrNothingToUndo when the history is empty.
func (s *Session) Undo() error {
	prev, err := s.hist.Undo()
	if err != nil {
		s.setStatus("nothing to undo")

		return err
	}
	s.t = prev
	clear(s.inputs)
	s.setStatus("undone; iteration %d", s.t.Iteration())
	s.log.Debug("undo", "remaining", s.hist.Len())

	return nil
}

// Reset replaces the tableau, clears history and pending text and returns to
// Edit mode. A nil t resets to DefaultTableau.
func (s *Session) Reset(t *tableau.Tableau) {
	if t == nil {
		t = DefaultTableau()
	}
	s.t = t
	s.hist.Clear()
	clear(s.inputs)
	s.mode = Edit
	s.setStatus("reset")
}

// Step applies the pivot chosen by a driver built from opts. Pivot mode only.
func (s *Session) Step(opts ...simplex.Option) (simplex.Pivot, error) {
	if s.mode != Pivot {
		return simplex.Pivot{}, fmt.Errorf("Step: %s mode: %w", s.mode, ErrWrongMode)
	}
	p, err := simplex.NewDriver(opts...).Next(s.t)
	if err != nil {
		s.setStatus("%v", err)

		return p, err
	}

	return p, s.Pivot(p.Row, p.Col)
}

// Solve runs a driver built from opts to completion. Pivot mode only. Every
// automatic pivot gets its own history entry, so Undo walks back one pivot
// at a time.
func (s *Session) Solve(ctx context.Context, opts ...simplex.Option) (simplex.Result, error) {
	if s.mode != Pivot {
		return simplex.Result{}, fmt.Errorf("Solve: %s mode: %w", s.mode, ErrWrongMode)
	}
	hook := simplex.WithBeforePivot(func(t *tableau.Tableau, _ simplex.Pivot) error {
		s.hist.Push(t)

		return nil
	})
	res, err := simplex.NewDriver(append(opts, hook)...).Run(ctx, s.t)
	clear(s.inputs)
	if err != nil {
		s.setStatus("%s after %d pivots: %v", res.Status, res.Iterations, err)
	} else {
		s.setStatus("%s after %d pivots, objective %s", res.Status, res.Iterations, res.Objective)
	}

	return res, err
}

// mutate applies fn to a copy and, on success, snapshots the current tableau
// and adopts the copy.
func (s *Session) mutate(fn func(*tableau.Tableau) error, format string, args ...any) error {
	next := s.t.Clone()
	if err := fn(next); err != nil {
		s.setStatus("%v", err)

		return err
	}
	s.hist.Push(s.t)
	s.t = next
	clear(s.inputs)
	s.setStatus(format, args...)
	s.log.Debug(s.status, "iteration", s.t.Iteration())

	return nil
}

func (s *Session) setStatus(format string, args ...any) {
	s.status = fmt.Sprintf(format, args...)
}
