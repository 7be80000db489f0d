package cli

import (
	"context"

	"paulocell_pdv/internal/app"
	"paulocell_pdv/internal/infrastructure/config"
	"paulocell_pdv/internal/infrastructure/logger"

	"github.com/spf13/cobra"
)

// BuildFunc opens the application with the storage backend from the env.
type BuildFunc func(ctx context.Context) (*app.Container, error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LogLevel string
	build    BuildFunc
}

// NewRootCommand creates the maintenance CLI. build defaults to app.Build
// with the environment configuration.
func NewRootCommand(build BuildFunc) *cobra.Command {
	opts := &RootOptions{build: build}
	if opts.build == nil {
		opts.build = func(ctx context.Context) (*app.Container, error) {
			return app.Build(ctx, config.Load())
		}
	}

	cmd := &cobra.Command{
		Use:           "pdvctl",
		Short:         "Paulo Cell PDV maintenance tool",
		Long:          "Backups, restores and trash maintenance against the configured storage backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetLevel(opts.LogLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")

	cmd.AddCommand(NewBackupCommand(opts))
	cmd.AddCommand(NewRestoreCommand(opts))
	cmd.AddCommand(NewTrashCommand(opts))
	cmd.AddCommand(NewHashPasswordCommand())

	return cmd
}

// withContainer runs fn against a freshly built container and closes it.
func (o *RootOptions) withContainer(ctx context.Context, fn func(c *app.Container) error) error {
	c, err := o.build(ctx)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}
