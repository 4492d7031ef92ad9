package render

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/pivotlab/tableau"
)

// Cell addresses one tableau entry.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// TableauOptions tunes Tableau output.
type TableauOptions struct {
	Title     string
	Highlight *Cell // pivot cell to emphasize, if any
}

// TableauJSON is the JSON form of a tableau.
type TableauJSON struct {
	Title      string     `json:"title,omitempty"`
	Iteration  int        `json:"iteration"`
	Vars       []string   `json:"vars"`
	Basis      []string   `json:"basis"`
	Artificial []string   `json:"artificial,omitempty"`
	Header     []string   `json:"header"`
	Rows       [][]string `json:"rows"`
	Highlight  *Cell      `json:"highlight,omitempty"`
}

// basisHeader labels the leading column that holds each row's basic variable.
const basisHeader = "basis"

// Tableau writes t in the effective mode.
func (r *Renderer) Tableau(t *tableau.Tableau, opts TableauOptions) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.tableauJSON(t, opts)
	case ModeMarkdown:
		if opts.Title != "" {
			r.Header(1, opts.Title)
			r.Println()
		}
		r.Println(r.tableauWriter(t, opts, false).RenderMarkdown())
	case ModeCSV:
		r.Println(r.tableauWriter(t, opts, false).RenderCSV())
	default:
		r.tableauText(t, opts)
	}

	return nil
}

func (r *Renderer) tableauText(t *tableau.Tableau, opts TableauOptions) {
	if opts.Title != "" {
		r.Header(1, opts.Title)
	}
	r.Println(r.tableauWriter(t, opts, true).Render())
	r.Println(r.styles.Muted.Render(fmt.Sprintf("iteration %d", t.Iteration())))
}

// tableauWriter lays t out as a go-pretty table. styled adds the basis color
// and the pivot highlight; without color the pivot cell is bracketed instead.
func (r *Renderer) tableauWriter(t *tableau.Tableau, opts TableauOptions, styled bool) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault

	header := table.Row{basisHeader}
	for _, h := range t.Header() {
		header = append(header, h)
	}
	tw.AppendHeader(header)

	basis := t.Basis()
	for i, cells := range t.View() {
		name := basis[i]
		if styled {
			name = r.styles.Basis.Render(name)
		}
		row := table.Row{name}
		for j, v := range cells {
			if styled && opts.Highlight != nil && opts.Highlight.Row == i && opts.Highlight.Col == j {
				if r.color {
					v = r.styles.Pivot.Render(v)
				} else {
					v = "[" + v + "]"
				}
			}
			row = append(row, v)
		}
		tw.AppendRow(row)
		if styled && i == 0 && t.Rows() > 1 {
			tw.AppendSeparator()
		}
	}

	return tw
}

func (r *Renderer) tableauJSON(t *tableau.Tableau, opts TableauOptions) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")

	return enc.Encode(TableauJSON{
		Title:      opts.Title,
		Iteration:  t.Iteration(),
		Vars:       t.Vars(),
		Basis:      t.Basis(),
		Artificial: t.Artificial(),
		Header:     t.Header(),
		Rows:       t.View(),
		Highlight:  opts.Highlight,
	})
}
