package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lucidworks/gridbuilder/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout API",
		Long: `Run the HTTP layout API.

The server exposes canvas CRUD, layout resolution, item placement, and
the cascade diagram under /api/v1. It shuts down gracefully on SIGINT
or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			eng, cfg, err := c.newEngine(ctx)
			if err != nil {
				return err
			}
			defer eng.Store().Close()

			if addr != "" {
				cfg.Server.Addr = addr
			}

			printInfo("serving layout API on %s", StyleHighlight.Render(cfg.Server.Addr))
			return server.New(eng, cfg.Server, c.Logger).Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides config)")
	return cmd
}
