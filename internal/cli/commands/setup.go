package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/spacemissions/internal/cli/config"
	"github.com/leapstack-labs/spacemissions/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	In       io.Reader
}

// NewCommandContext builds a CommandContext from the config and logger
// stored on the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
		In:       cmd.InOrStdin(),
	}
}
