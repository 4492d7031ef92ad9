// Package cli provides the command-line interface for pivotlab.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pivotlab/internal/cli/commands"
	"github.com/katalvlaran/pivotlab/internal/cli/config"
	"github.com/katalvlaran/pivotlab/internal/render"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "pivotlab",
		Short: "pivotlab - exact simplex tableau workbench",
		Long: `pivotlab edits, pivots and solves simplex tableaux in exact rational
arithmetic. Every entry is a fraction, so pivots never round and a pivot
sequence can always be replayed or undone exactly.

Tableaux live in small YAML files; see "pivotlab show --help" for the format.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, used, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := cfg.NewLogger(cmd.ErrOrStderr())
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = config.WithConfig(ctx, cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if cfg.Verbose && used != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", used)
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}} (commit %s, built %s)\n", GitCommit, BuildDate))

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./pivotlab.yaml)")
	flags.StringP("output", "o", "", "Output format (auto|text|markdown|csv|json)")
	flags.String("rule", "", "Pivot rule (bland|dantzig)")
	flags.String("sense", "", "Objective sense (max|min)")
	flags.Int("objective-row", config.DefaultObjectiveRow, "Row read as the objective")
	flags.Int("max-iterations", config.DefaultMaxIterations, "Pivot cap per solve")
	flags.Int("history-limit", config.DefaultHistoryLimit, "Undo depth of interactive sessions (0 = unbounded)")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")
	flags.BoolP("verbose", "v", false, "Verbose output")
	flags.String("color", "", "Color output (auto|always|never)")

	completeWith := func(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		}
	}
	modes := make([]string, len(render.Modes))
	for i, m := range render.Modes {
		modes[i] = string(m)
	}
	_ = rootCmd.RegisterFlagCompletionFunc("output", completeWith(modes...))
	_ = rootCmd.RegisterFlagCompletionFunc("rule", completeWith("bland", "dantzig"))
	_ = rootCmd.RegisterFlagCompletionFunc("sense", completeWith("max", "min"))
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", completeWith("debug", "info", "warn", "error"))
	_ = rootCmd.RegisterFlagCompletionFunc("color", completeWith("auto", "always", "never"))

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewPivotCommand())
	rootCmd.AddCommand(commands.NewSolveCommand())
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewREPLCommand())
	rootCmd.AddCommand(commands.NewEditCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command under ctx.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return err
	}

	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for pivotlab.

To load completions:

Bash:
  $ source <(pivotlab completion bash)

Zsh:
  $ pivotlab completion zsh > "${fpath[1]}/_pivotlab"

Fish:
  $ pivotlab completion fish | source

PowerShell:
  PS> pivotlab completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}

			return nil
		},
	}

	return cmd
}
