// Package commands implements the pivotlab subcommands.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pivotlab/internal/cli/config"
	"github.com/katalvlaran/pivotlab/internal/render"
	"github.com/katalvlaran/pivotlab/session"
	"github.com/katalvlaran/pivotlab/simplex"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *render.Renderer
}

// NewCommandContext collects the config and logger stored by the root
// command and builds a renderer on the command's streams.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	r := render.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.OutputMode())
	if on, forced := cfg.ColorOverride(); forced {
		r.SetColor(on)
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// SessionOptions returns the options for an interactive session.
func (c *CommandContext) SessionOptions() []session.Option {
	return []session.Option{
		session.WithHistoryLimit(c.Cfg.HistoryLimit),
		session.WithLogger(c.Logger),
	}
}

// DriverOptions returns the solver options with the command logger attached.
func (c *CommandContext) DriverOptions() []simplex.Option {
	return append(c.Cfg.DriverOptions(), simplex.WithLogger(c.Logger))
}
