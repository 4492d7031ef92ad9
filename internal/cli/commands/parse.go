package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pivotlab/rational"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "parse <text>...",
		Short: "Parse rational literals the way the editor does",
		Long: `Parse each argument as a tableau cell: a signed integer or a fraction p/q.
Malformed text is shown as 0 together with the parse error, exactly as a
committed editor cell would be.

Flags go before the first literal; everything after it is read as input.
Put -- in front of a leading negative literal.`,
		Example: `  pivotlab parse 3/6 -4 ' 7 / 2 '
  pivotlab parse -- -3/4 2
  pivotlab parse --strict 1/0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			if err := cc.Renderer.Parsed(args); err != nil {
				return err
			}
			if !strict {
				return nil
			}

			var errs []error
			for _, arg := range args {
				if _, err := rational.Parse(arg); err != nil {
					errs = append(errs, err)
				}
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d of %d inputs rejected: %w", len(errs), len(args), errors.Join(errs...))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error if any input is malformed")
	cmd.Flags().SetInterspersed(false)

	return cmd
}
