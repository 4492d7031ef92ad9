package commands

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pivotlab/internal/render"
	"github.com/katalvlaran/pivotlab/internal/tabfile"
	"github.com/katalvlaran/pivotlab/simplex"
	"github.com/katalvlaran/pivotlab/tableau"
)

// ErrNotOptimal is returned by solve when at least one tableau did not reach
// an optimum.
var ErrNotOptimal = errors.New("not every tableau reached an optimum")

// SolveOptions holds the local flags of the solve command.
type SolveOptions struct {
	Concurrency int
	Write       bool
	Final       bool
}

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve <file>...",
		Short: "Run the simplex method on one or more tableau files",
		Long: `Run the simplex method to completion on every file and report the status,
the number of pivots, the objective value and the basic solution.

The pivot rule, objective sense, objective row and iteration cap come from
the global flags or the config file. Files are solved concurrently.`,
		Example: `  pivotlab solve plan.yaml
  pivotlab solve --rule dantzig plans/*.yaml -o json
  pivotlab solve plan.yaml --final --write`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Concurrency, "concurrency", "j", runtime.NumCPU(), "Maximum number of files solved at once")
	cmd.Flags().BoolVar(&opts.Write, "write", false, "Save each final tableau back to its file")
	cmd.Flags().BoolVar(&opts.Final, "final", false, "Print the final tableau of a single file")

	return cmd
}

type solved struct {
	name  string
	final *tableau.Tableau
	res   simplex.Result
	err   error
}

func runSolve(cmd *cobra.Command, files []string, opts *SolveOptions) error {
	cc := NewCommandContext(cmd)
	driverOpts := cc.DriverOptions()

	out := make([]solved, len(files))

	g, ctx := errgroup.WithContext(cmd.Context())
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i, path := range files {
		g.Go(func() error {
			t, doc, err := tabfile.Load(path)
			if err != nil {
				return err
			}
			res, err := simplex.Solve(ctx, t, driverOpts...)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			cc.Logger.Debug("solved", "file", path, "status", res.Status, "pivots", res.Iterations)
			if opts.Write {
				if err := tabfile.Save(path, t, doc.Name); err != nil {
					return err
				}
			}
			out[i] = solved{name: doc.Name, final: t, res: res, err: err}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, s := range out {
		if s.res.Status != simplex.Optimal {
			failed++
		}
	}

	if len(files) == 1 {
		if err := cc.Renderer.Result(files[0], out[0].final.Vars(), out[0].res, out[0].err); err != nil {
			return err
		}
		if opts.Final && cc.Renderer.EffectiveMode() != render.ModeJSON {
			cc.Renderer.Println()
			title := out[0].name
			if title == "" {
				title = "final tableau"
			}
			if err := cc.Renderer.Tableau(out[0].final, render.TableauOptions{Title: title}); err != nil {
				return err
			}
		}
	} else {
		results := make([]render.ResultJSON, len(files))
		for i, s := range out {
			results[i] = render.NewResultJSON(files[i], s.res, s.err)
		}
		if err := cc.Renderer.Results(unionVars(out), results); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(files), ErrNotOptimal)
	}

	return nil
}

// unionVars lists every variable in first-seen order.
func unionVars(out []solved) []string {
	seen := make(map[string]bool)
	var vars []string
	for _, s := range out {
		for _, v := range s.final.Vars() {
			if !seen[v] {
				seen[v] = true
				vars = append(vars, v)
			}
		}
	}

	return vars
}
