// Package render formats tableaux, solver results and parsed rationals for
// the terminal. Every output can be produced as a styled table (text), a
// markdown pipe table, CSV or JSON; auto mode picks text on a terminal and
// markdown otherwise.
package render

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Renderer writes formatted output to an out and an error stream.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	isTTY  bool
	color  bool
	styles *Styles
}

// NewRenderer detects whether out is a terminal and enables color accordingly.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY builds a renderer with an explicit terminal flag; tests use it.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}

	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		color:  isTTY,
		styles: NewStyles(out, isTTY),
	}
}

// SetColor forces color on or off regardless of terminal detection.
func (r *Renderer) SetColor(on bool) {
	r.color = on
	r.styles = NewStyles(r.out, on)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// Mode returns the configured mode, possibly ModeAuto.
func (r *Renderer) Mode() OutputMode { return r.mode }

// EffectiveMode resolves ModeAuto against the terminal flag.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}

	return ModeMarkdown
}

// Styles returns the text-mode styles.
func (r *Renderer) Styles() *Styles { return r.styles }

// Color reports whether styled output is enabled.
func (r *Renderer) Color() bool { return r.color }

// Writer returns the main output stream.
func (r *Renderer) Writer() io.Writer { return r.out }

// ErrWriter returns the diagnostic stream.
func (r *Renderer) ErrWriter() io.Writer { return r.errOut }

// Println writes a line to the output stream.
func (r *Renderer) Println(a ...any) { _, _ = fmt.Fprintln(r.out, a...) }

// Printf writes formatted text to the output stream.
func (r *Renderer) Printf(format string, a ...any) { _, _ = fmt.Fprintf(r.out, format, a...) }

// Header writes a section header in the current mode.
func (r *Renderer) Header(level int, title string) {
	if r.EffectiveMode() == ModeText {
		style := r.styles.Header2
		if level <= 1 {
			style = r.styles.Header1
		}
		r.Println(style.Render(title))

		return
	}
	r.Println(FormatHeader(level, title))
}

// Warnf writes a warning line to the error stream.
func (r *Renderer) Warnf(format string, a ...any) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Warning.Render("warning: "+fmt.Sprintf(format, a...)))
}
