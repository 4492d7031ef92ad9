package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pivotlab/internal/tabfile"
	"github.com/katalvlaran/pivotlab/internal/tui"
	"github.com/katalvlaran/pivotlab/session"
	"github.com/katalvlaran/pivotlab/tableau"
)

// NewEditCommand creates the edit command.
func NewEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Open the full-screen tableau editor",
		Long: `Open a full-screen editor on the tableau in file. A missing file starts
from a blank 4x3 tableau and is created on the first save (ctrl+s).

Edit mode: type into the focused cell; tab, enter and the up/down arrows
commit it and move. Text that is not a number is stored as 0.
Pivot mode (ctrl+p): arrows pick a cell, enter pivots on it, ctrl+t applies
the pivot rule once and ctrl+e solves. ctrl+z undoes any change.`,
		Example: `  pivotlab edit plan.yaml
  pivotlab edit --rule dantzig --history-limit 100 plan.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			return runEdit(cmd, path)
		},
	}
}

func runEdit(cmd *cobra.Command, path string) error {
	cc := NewCommandContext(cmd)

	var (
		t    *tableau.Tableau
		name string
	)
	if path != "" {
		loaded, doc, err := tabfile.Load(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			cc.Logger.Info("starting a new tableau", "file", path)
		case err != nil:
			return err
		default:
			t, name = loaded, doc.Name
		}
	}

	sess := session.New(t, cc.SessionOptions()...)

	return tui.Run(cmd.Context(), sess,
		tui.WithFile(path, name),
		tui.WithDriverOptions(cc.DriverOptions()...),
		tui.WithColor(cc.Renderer.Color()),
	)
}
