package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pivotlab/internal/render"
	"github.com/katalvlaran/pivotlab/internal/tabfile"
	"github.com/katalvlaran/pivotlab/session"
	"github.com/katalvlaran/pivotlab/tableau"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl [file]",
		Short: "Edit and pivot a tableau from a line-oriented prompt",
		Long: `Start an interactive prompt over the tableau in file, or over a blank
4x3 tableau when no file is given. Type .help for the list of commands.`,
		Example: `  pivotlab repl
  pivotlab repl plan.yaml --history-limit 50`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			return runREPL(cmd, path)
		},
	}
}

func runREPL(cmd *cobra.Command, path string) error {
	cc := NewCommandContext(cmd)
	state, err := newREPLState(cc, path)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          state.prompt(),
		HistoryFile:     replHistoryFile(),
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	name := path
	if name == "" {
		name = "blank tableau"
	}
	cc.Renderer.Printf("pivotlab REPL (%s)\n", name)
	cc.Renderer.Println("Type .help for commands, .quit to exit")
	cc.Renderer.Println()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if state.exec(cmd.Context(), line) {
			break
		}
		rl.SetPrompt(state.prompt())
	}

	return nil
}

// replHistoryFile returns the readline history path, or "" to keep history
// in memory only.
func replHistoryFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	dir = filepath.Join(dir, "pivotlab")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return ""
	}

	return filepath.Join(dir, "repl_history")
}

func newREPLCompleter() *readline.PrefixCompleter {
	files := readline.PcItemDynamic(func(string) []string {
		matches, _ := filepath.Glob("*.yaml")
		more, _ := filepath.Glob("*.yml")

		return append(matches, more...)
	})

	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".mode", readline.PcItem("edit"), readline.PcItem("pivot")),
		readline.PcItem(".set"),
		readline.PcItem(".pivot"),
		readline.PcItem(".step"),
		readline.PcItem(".solve"),
		readline.PcItem(".addrow"),
		readline.PcItem(".addvar"),
		readline.PcItem(".undo"),
		readline.PcItem(".reset"),
		readline.PcItem(".show"),
		readline.PcItem(".load", files),
		readline.PcItem(".save", files),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}

// replState is everything one REPL run mutates.
type replState struct {
	cc   *CommandContext
	sess *session.Session
	path string
	name string
}

func newREPLState(cc *CommandContext, path string) (*replState, error) {
	r := &replState{cc: cc, path: path}
	var t *tableau.Tableau
	if path != "" {
		loaded, doc, err := tabfile.Load(path)
		if err != nil {
			return nil, err
		}
		t, r.name = loaded, doc.Name
	}
	r.sess = session.New(t, cc.SessionOptions()...)

	return r, nil
}

func (r *replState) prompt() string {
	return fmt.Sprintf("pivotlab[%s]> ", r.sess.Mode())
}

// exec runs one input line and reports whether the REPL should stop.
func (r *replState) exec(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, ".") {
		r.errorf("unknown input %q (commands start with a dot, type .help)", line)

		return false
	}

	parts := strings.Fields(line)
	command, args := strings.ToLower(parts[0]), parts[1:]

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(r.cc.Renderer.Writer())

	case ".mode":
		if len(args) == 0 {
			r.cc.Renderer.Println(r.sess.Mode())

			return false
		}
		m, err := session.ParseMode(args[0])
		if err != nil {
			r.fail(err)

			return false
		}
		if err := r.sess.SetMode(m); err != nil {
			r.fail(err)
		}
		r.status()

	case ".set":
		if len(args) < 3 {
			r.errorf("usage: .set <row> <col> <value>")

			return false
		}
		row, col, ok := r.coords(args)
		if !ok {
			return false
		}
		if err := r.sess.SetInput(row, col, strings.Join(args[2:], " ")); err != nil {
			r.fail(err)

			return false
		}
		if err := r.sess.Commit(row, col); err != nil {
			r.fail(err)
		}
		r.show(nil)

	case ".pivot":
		if len(args) != 2 {
			r.errorf("usage: .pivot <row> <col>")

			return false
		}
		row, col, ok := r.coords(args)
		if !ok {
			return false
		}
		if err := r.sess.Pivot(row, col); err != nil {
			r.fail(err)

			return false
		}
		r.show(&render.Cell{Row: row, Col: col})

	case ".step":
		p, err := r.sess.Step(r.cc.DriverOptions()...)
		if err != nil {
			r.fail(err)

			return false
		}
		r.cc.Renderer.Println(p)
		r.show(&render.Cell{Row: p.Row, Col: p.Col})

	case ".solve":
		res, err := r.sess.Solve(ctx, r.cc.DriverOptions()...)
		if errors.Is(err, session.ErrWrongMode) {
			r.fail(err)

			return false
		}
		if res.Iterations > 0 {
			r.show(nil)
		}
		if rerr := r.cc.Renderer.Result(r.source(), r.sess.Tableau().Vars(), res, err); rerr != nil {
			r.fail(rerr)
		}
		if err != nil {
			r.fail(err)
		}

	case ".addrow":
		if err := r.sess.AddZeroConstraint(); err != nil {
			r.fail(err)

			return false
		}
		r.show(nil)

	case ".addvar":
		if err := r.sess.AddZeroVariable(); err != nil {
			r.fail(err)

			return false
		}
		r.show(nil)

	case ".undo":
		if err := r.sess.Undo(); err != nil {
			r.status()

			return false
		}
		r.show(nil)

	case ".reset":
		r.sess.Reset(nil)
		r.show(nil)

	case ".show":
		r.show(nil)

	case ".load":
		if len(args) != 1 {
			r.errorf("usage: .load <file>")

			return false
		}
		t, doc, err := tabfile.Load(args[0])
		if err != nil {
			r.fail(err)

			return false
		}
		r.sess.Reset(t)
		r.path, r.name = args[0], doc.Name
		r.show(nil)

	case ".save":
		path := r.path
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			r.errorf("usage: .save <file>")

			return false
		}
		if err := r.sess.CommitAll(); err != nil {
			r.fail(err)
		}
		if err := tabfile.Save(path, r.sess.Tableau(), r.name); err != nil {
			r.fail(err)

			return false
		}
		r.path = path
		r.cc.Renderer.Printf("saved %s\n", path)

	default:
		r.errorf("unknown command: %s (type .help for commands)", command)
	}

	return false
}

func (r *replState) coords(args []string) (row, col int, ok bool) {
	row, err := strconv.Atoi(args[0])
	if err != nil {
		r.errorf("invalid row %q", args[0])

		return 0, 0, false
	}
	col, err = strconv.Atoi(args[1])
	if err != nil {
		r.errorf("invalid column %q", args[1])

		return 0, 0, false
	}

	return row, col, true
}

func (r *replState) source() string {
	if r.path != "" {
		return r.path
	}

	return "repl"
}

func (r *replState) show(highlight *render.Cell) {
	title := r.name
	if title == "" {
		title = r.source()
	}
	if err := r.cc.Renderer.Tableau(r.sess.Tableau(), render.TableauOptions{Title: title, Highlight: highlight}); err != nil {
		r.fail(err)
	}
	r.status()
}

func (r *replState) status() {
	if s := r.sess.Status(); s != "" {
		r.cc.Renderer.Println(r.cc.Renderer.Styles().Muted.Render(s))
	}
}

func (r *replState) fail(err error) {
	_, _ = fmt.Fprintf(r.cc.Renderer.ErrWriter(), "Error: %v\n", err)
}

func (r *replState) errorf(format string, args ...any) {
	r.fail(fmt.Errorf(format, args...))
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help                     Show this help message
  .mode [edit|pivot]        Show or switch the mode
  .set <row> <col> <value>  Write a cell (edit mode); bad values become 0
  .pivot <row> <col>        Pivot on a cell (pivot mode)
  .step                     Apply the pivot the configured rule picks
  .solve                    Pivot until optimal, unbounded or the cap
  .addrow                   Append an all-zero constraint row
  .addvar                   Insert an all-zero variable column
  .undo                     Restore the tableau before the last change
  .reset                    Start over from a blank tableau
  .show                     Print the tableau
  .load <file>              Replace the tableau with a file
  .save [file]              Write the tableau to a file
  .quit / .exit             Exit the REPL

Tips:
  - Rows and columns are zero-based; row 0 is the objective row
  - Values are integers or fractions such as -3/4
  - Tab completion works for commands and file names
`
	_, _ = fmt.Fprintln(w, help)
}
