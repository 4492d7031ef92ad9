package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pivotlab/internal/render"
	"github.com/katalvlaran/pivotlab/internal/tabfile"
)

// NewPivotCommand creates the pivot command.
func NewPivotCommand() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "pivot <file> <row> <col>",
		Short: "Pivot a tableau file on one cell",
		Long: `Apply a single Gauss-Jordan pivot on (row, col) and print the result
with the pivot cell highlighted. Rows and columns are zero-based; row 0 is
usually the objective row.`,
		Example: `  pivotlab pivot plan.yaml 2 1
  pivotlab pivot plan.yaml 2 1 --write`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid row %q: %w", args[1], err)
			}
			col, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid column %q: %w", args[2], err)
			}

			return runPivot(cmd, args[0], row, col, write)
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Save the pivoted tableau back to the file")

	return cmd
}

func runPivot(cmd *cobra.Command, path string, row, col int, write bool) error {
	cc := NewCommandContext(cmd)

	t, doc, err := tabfile.Load(path)
	if err != nil {
		return err
	}
	if err := t.CanPivot(row, col); err != nil {
		return err
	}
	entering, leaving := t.Header()[col], t.Basis()[row]
	if err := t.Pivot(row, col); err != nil {
		return err
	}
	cc.Logger.Debug("pivot", "file", path, "row", row, "col", col)

	if write {
		if err := tabfile.Save(path, t, doc.Name); err != nil {
			return err
		}
	}

	return cc.Renderer.Tableau(t, render.TableauOptions{
		Title:     fmt.Sprintf("pivot (%d,%d): %s enters, %s leaves", row, col, entering, leaving),
		Highlight: &render.Cell{Row: row, Col: col},
	})
}
