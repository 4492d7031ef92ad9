package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/pivotlab/internal/render"
	"github.com/katalvlaran/pivotlab/session"
	"github.com/katalvlaran/pivotlab/tableau"
)

type styles struct {
	*render.Styles
	color   bool
	cursor  lipgloss.Style
	pending lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
}

func newStyles(color bool) styles {
	r := lipgloss.NewRenderer(os.Stdout)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		Styles:  render.NewStyles(os.Stdout, color),
		color:   color,
		cursor:  r.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")),
		pending: r.NewStyle().Foreground(lipgloss.Color("11")).Italic(true),
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")),
		cell:    r.NewStyle().Align(lipgloss.Right),
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	t := m.sess.Tableau()

	var b strings.Builder
	b.WriteString(m.titleLine(t))
	b.WriteString("\n\n")
	b.WriteString(m.grid(t))
	b.WriteString("\n\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) titleLine(t *tableau.Tableau) string {
	name := m.opts.name
	if name == "" {
		name = m.opts.path
	}
	if name == "" {
		name = "untitled"
	}

	return fmt.Sprintf("%s  %s  %s",
		m.styles.Header1.Render("pivotlab · "+name),
		m.styles.Header2.Render("["+m.sess.Mode().String()+"]"),
		m.styles.Muted.Render(fmt.Sprintf("iteration %d, %d undo", t.Iteration(), m.sess.HistoryLen())),
	)
}

// grid lays out the basis column, every tableau column and a rule under the
// objective row.
func (m Model) grid(t *tableau.Tableau) string {
	header := append([]string{"basis"}, t.Header()...)
	basis := t.Basis()

	texts := make([][]string, t.Rows())
	for i := range texts {
		texts[i] = make([]string, t.Cols())
		for j := range texts[i] {
			texts[i][j] = m.decorate(i, j, m.cellText(i, j))
		}
	}

	widths := make([]int, len(header))
	for j, h := range header {
		widths[j] = lipgloss.Width(h)
	}
	for i, row := range texts {
		widths[0] = max(widths[0], lipgloss.Width(basis[i]))
		for j, s := range row {
			widths[j+1] = max(widths[j+1], lipgloss.Width(s))
		}
	}

	var b strings.Builder
	cols := make([]string, len(header))
	for j, h := range header {
		cols[j] = m.styles.header.Width(widths[j] + 2).Align(lipgloss.Center).Render(h)
	}
	b.WriteString(strings.Join(cols, " "))

	total := len(widths) - 1
	for _, w := range widths {
		total += w + 2
	}

	for i, row := range texts {
		b.WriteString("\n")
		cols[0] = m.styles.Basis.Width(widths[0] + 2).Render(" " + basis[i])
		for j, s := range row {
			cols[j+1] = m.styles.cell.Width(widths[j+1] + 2).Render(s + " ")
		}
		b.WriteString(strings.Join(cols, " "))
		if i == 0 && t.Rows() > 1 {
			b.WriteString("\n")
			b.WriteString(m.styles.Muted.Render(strings.Repeat("─", total)))
		}
	}

	return b.String()
}

// cellText is the undecorated text of a cell: the live input for the
// focused cell in edit mode, the session text otherwise.
func (m Model) cellText(row, col int) string {
	if m.focused(row, col) && m.sess.Mode() == session.Edit {
		return m.input.Value()
	}

	return m.sess.Input(row, col)
}

func (m Model) decorate(row, col int, s string) string {
	switch {
	case m.focused(row, col):
		if m.sess.Mode() == session.Edit {
			if m.styles.color {
				return m.styles.cursor.Render(m.input.View())
			}

			return "[" + s + "]"
		}
		if m.styles.color {
			return m.styles.cursor.Render(s)
		}

		return "[" + s + "]"
	case m.highlight != nil && m.highlight.row == row && m.highlight.col == col:
		if m.styles.color {
			return m.styles.Pivot.Render(s)
		}

		return "<" + s + ">"
	case m.sess.Pending(row, col):
		return m.styles.pending.Render(s)
	}

	return s
}

func (m Model) focused(row, col int) bool {
	return m.cursor.row == row && m.cursor.col == col
}

func (m Model) statusLine() string {
	switch {
	case m.err != nil:
		return m.styles.Error.Render("error: " + m.err.Error())
	case m.note != "":
		return m.styles.Success.Render(m.note)
	default:
		return m.styles.Muted.Render(m.sess.Status())
	}
}
