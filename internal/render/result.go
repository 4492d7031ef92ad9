package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/pivotlab/rational"
	"github.com/katalvlaran/pivotlab/simplex"
)

// ResultJSON is the JSON form of a solver result.
type ResultJSON struct {
	Source     string            `json:"source,omitempty"`
	Status     string            `json:"status"`
	Iterations int               `json:"iterations"`
	Objective  string            `json:"objective"`
	Feasible   bool              `json:"feasible"`
	Values     map[string]string `json:"values"`
	Pivots     []PivotJSON       `json:"pivots"`
	Error      string            `json:"error,omitempty"`
}

// PivotJSON is one applied pivot.
type PivotJSON struct {
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Entering string `json:"entering"`
	Leaving  string `json:"leaving"`
}

// NewResultJSON converts res and the error Run returned with it.
func NewResultJSON(source string, res simplex.Result, err error) ResultJSON {
	out := ResultJSON{
		Source:     source,
		Status:     res.Status.String(),
		Iterations: res.Iterations,
		Objective:  res.Objective.String(),
		Feasible:   res.Feasible,
		Values:     make(map[string]string, len(res.Values)),
		Pivots:     make([]PivotJSON, 0, len(res.Pivots)),
	}
	for k, v := range res.Values {
		out.Values[k] = v.String()
	}
	for _, p := range res.Pivots {
		out.Pivots = append(out.Pivots, PivotJSON{Row: p.Row, Col: p.Col, Entering: p.Entering, Leaving: p.Leaving})
	}
	if err != nil {
		out.Error = err.Error()
	}

	return out
}

// Results writes several solver results; vars gives the value column order.
func (r *Renderer) Results(vars []string, results []ResultJSON) error {
	if r.EffectiveMode() == ModeJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")

		return enc.Encode(results)
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	header := table.Row{"source", "status", "pivots", "objective"}
	for _, v := range vars {
		header = append(header, v)
	}
	tw.AppendHeader(header)
	for _, res := range results {
		status := res.Status
		if r.EffectiveMode() == ModeText {
			status = r.statusStyle(res).Render(status)
		}
		row := table.Row{res.Source, status, res.Iterations, res.Objective}
		for _, v := range vars {
			row = append(row, res.Values[v])
		}
		tw.AppendRow(row)
	}

	switch r.EffectiveMode() {
	case ModeMarkdown:
		r.Println(tw.RenderMarkdown())
	case ModeCSV:
		r.Println(tw.RenderCSV())
	default:
		r.Println(tw.Render())
		for _, res := range results {
			if res.Error != "" && res.Status != "optimal" {
				r.Println(r.styles.Muted.Render(res.Source + ": " + res.Error))
			}
		}
	}

	return nil
}

// Result writes one result with its pivot trail.
func (r *Renderer) Result(source string, vars []string, res simplex.Result, err error) error {
	rj := NewResultJSON(source, res, err)
	if r.EffectiveMode() == ModeJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")

		return enc.Encode(rj)
	}

	if len(res.Pivots) > 0 && r.EffectiveMode() != ModeCSV {
		trail := make([]string, len(res.Pivots))
		for i, p := range res.Pivots {
			trail[i] = p.String()
		}
		r.Header(2, "Pivots")
		r.Println(strings.Join(trail, "\n"))
		r.Println()
	}

	return r.Results(vars, []ResultJSON{rj})
}

func (r *Renderer) statusStyle(res ResultJSON) lipgloss.Style {
	switch {
	case res.Status == "optimal" && res.Feasible:
		return r.styles.Success
	case res.Status == "optimal":
		return r.styles.Warning
	default:
		return r.styles.Error
	}
}

// ParsedJSON is the JSON form of one parsed literal.
type ParsedJSON struct {
	Input string `json:"input"`
	Value string `json:"value"`
	Float string `json:"float"`
	Error string `json:"error,omitempty"`
}

// Parsed writes each input with its fail-to-zero value and parse error.
func (r *Renderer) Parsed(inputs []string) error {
	out := make([]ParsedJSON, len(inputs))
	for i, in := range inputs {
		v, err := rational.ParseCell(in)
		f, _ := v.Float64()
		out[i] = ParsedJSON{Input: in, Value: v.String(), Float: fmt.Sprintf("%g", f)}
		if err != nil {
			out[i].Error = err.Error()
		}
	}

	if r.EffectiveMode() == ModeJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")

		return enc.Encode(out)
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"input", "value", "float", "error"})
	for _, p := range out {
		tw.AppendRow(table.Row{p.Input, p.Value, p.Float, p.Error})
	}
	switch r.EffectiveMode() {
	case ModeMarkdown:
		r.Println(tw.RenderMarkdown())
	case ModeCSV:
		r.Println(tw.RenderCSV())
	default:
		r.Println(tw.Render())
	}

	return nil
}
