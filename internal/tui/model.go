// Package tui is the full-screen tableau editor behind "pivotlab edit".
//
// The model wraps a session.Session. In edit mode the focused cell is a text
// input whose raw text is handed to the session on every keystroke and
// committed when the cursor leaves the cell; in pivot mode the arrow keys
// pick a pivot cell and enter applies it.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/pivotlab/internal/tabfile"
	"github.com/katalvlaran/pivotlab/session"
	"github.com/katalvlaran/pivotlab/simplex"
)

// Option configures the editor.
type Option func(*Options)

// Options stores the effective editor configuration.
type Options struct {
	path   string
	name   string
	driver []simplex.Option
	color  bool
}

// WithFile sets the file ctrl+s writes to and the document name saved with it.
func WithFile(path, name string) Option {
	return func(o *Options) { o.path, o.name = path, name }
}

// WithDriverOptions sets the solver options used by step and solve.
func WithDriverOptions(opts ...simplex.Option) Option {
	return func(o *Options) { o.driver = opts }
}

// WithColor turns styling on or off. Styling is on by default.
func WithColor(on bool) Option { return func(o *Options) { o.color = on } }

func gatherOptions(opts ...Option) Options {
	o := Options{color: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

type cell struct{ row, col int }

// Model is the bubbletea model of the editor.
type Model struct {
	ctx    context.Context
	sess   *session.Session
	opts   Options
	keys   keyMap
	help   help.Model
	input  textinput.Model
	styles styles

	cursor    cell
	highlight *cell // last pivot cell
	err       error
	note      string
	width     int
	quitting  bool
}

// New builds the editor over sess.
func New(sess *session.Session, opts ...Option) Model {
	o := gatherOptions(opts...)

	in := textinput.New()
	in.Prompt = ""
	in.Focus()

	m := Model{
		ctx:    context.Background(),
		sess:   sess,
		opts:   o,
		keys:   defaultKeyMap(),
		help:   help.New(),
		input:  in,
		styles: newStyles(o.color),
	}
	m.loadInput()

	return m
}

// Session returns the edited session.
func (m Model) Session() *session.Session { return m.sess }

// Cursor returns the focused cell.
func (m Model) Cursor() (row, col int) { return m.cursor.row, m.cursor.col }

// Err returns the error of the last action, if it failed.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err, m.note = nil, ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true

		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Mode):
		next := session.Pivot
		if m.sess.Mode() == session.Pivot {
			next = session.Edit
		}
		m.err = m.sess.SetMode(next)
		m.loadInput()
	case key.Matches(msg, m.keys.Undo):
		m.err = m.sess.Undo()
		m.highlight = nil
		m.clampCursor()
		m.loadInput()
	case key.Matches(msg, m.keys.AddRow):
		m.commitFocused()
		m.err = m.sess.AddZeroConstraint()
		m.loadInput()
	case key.Matches(msg, m.keys.AddVar):
		m.commitFocused()
		m.err = m.sess.AddZeroVariable()
		m.loadInput()
	case key.Matches(msg, m.keys.Step):
		p, err := m.sess.Step(m.opts.driver...)
		switch {
		case errors.Is(err, simplex.ErrOptimal):
			m.note = "already optimal"
		case err != nil:
			m.err = err
		default:
			m.highlight = &cell{p.Row, p.Col}
		}
	case key.Matches(msg, m.keys.Solve):
		_, m.err = m.sess.Solve(m.ctx, m.opts.driver...)
		m.highlight = nil
	case key.Matches(msg, m.keys.Save):
		if m.err = m.save(); m.err == nil {
			m.note = "saved " + m.opts.path
		}
	case m.sess.Mode() == session.Edit:
		return m.updateEdit(msg)
	default:
		m.updatePivot(msg)
	}

	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		m.commitFocused()
		m.move(1, 0)
	case key.Matches(msg, m.keys.Up):
		m.commitFocused()
		m.move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.commitFocused()
		m.move(1, 0)
	case key.Matches(msg, m.keys.Next):
		m.commitFocused()
		m.advance(1)
	case key.Matches(msg, m.keys.Prev):
		m.commitFocused()
		m.advance(-1)
	default:
		var cmd tea.Cmd
		before := m.input.Value()
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != before {
			m.err = m.sess.SetInput(m.cursor.row, m.cursor.col, v)
		}

		return m, cmd
	}
	m.loadInput()

	return m, nil
}

func (m *Model) updatePivot(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		if err := m.sess.Pivot(m.cursor.row, m.cursor.col); err != nil {
			m.err = err

			return
		}
		m.highlight = &cell{m.cursor.row, m.cursor.col}
	case key.Matches(msg, m.keys.Up):
		m.move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.move(1, 0)
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Prev):
		m.move(0, -1)
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Next):
		m.move(0, 1)
	}
}

// commitFocused commits the focused cell when it holds pending text.
func (m *Model) commitFocused() {
	if m.sess.Mode() != session.Edit || !m.sess.Pending(m.cursor.row, m.cursor.col) {
		return
	}
	m.err = m.sess.Commit(m.cursor.row, m.cursor.col)
}

// loadInput shows the focused cell's text in the input. A stored zero starts
// blank so typing replaces it.
func (m *Model) loadInput() {
	text := m.sess.Input(m.cursor.row, m.cursor.col)
	if text == "0" && !m.sess.Pending(m.cursor.row, m.cursor.col) {
		text = ""
	}
	m.input.SetValue(text)
	m.input.CursorEnd()
}

// move shifts the cursor, stopping at the edges.
func (m *Model) move(dRow, dCol int) {
	m.cursor.row += dRow
	m.cursor.col += dCol
	m.clampCursor()
}

// advance walks the cells in row-major order, wrapping at row ends.
func (m *Model) advance(step int) {
	t := m.sess.Tableau()
	idx := m.cursor.row*t.Cols() + m.cursor.col + step
	last := t.Rows()*t.Cols() - 1
	idx = max(0, min(idx, last))
	m.cursor = cell{idx / t.Cols(), idx % t.Cols()}
}

func (m *Model) clampCursor() {
	t := m.sess.Tableau()
	m.cursor.row = max(0, min(m.cursor.row, t.Rows()-1))
	m.cursor.col = max(0, min(m.cursor.col, t.Cols()-1))
}

func (m *Model) save() error {
	if m.opts.path == "" {
		return errNoFile
	}
	if m.sess.Mode() == session.Edit {
		if err := m.sess.CommitAll(); err != nil {
			return err
		}
		m.loadInput()
	}

	return tabfile.Save(m.opts.path, m.sess.Tableau(), m.opts.name)
}

var errNoFile = errors.New("no file to save to; start the editor with a file argument")

// Run starts the editor full screen and blocks until the user quits or ctx
// is done.
func Run(ctx context.Context, sess *session.Session, opts ...Option) error {
	m := New(sess, opts...)
	m.ctx = ctx

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}

		return err
	}

	return nil
}
