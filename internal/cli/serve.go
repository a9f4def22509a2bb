package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/dockyard/internal/api"
)

// serveCommand creates the serve command running the layout HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the layout HTTP service",
		Long: `Serve exposes the configured layout store over a small JSON API so
multiple frontends can share perspectives:

  GET    /v1/layouts           list layout names
  GET    /v1/layouts/{name}    fetch a layout document
  PUT    /v1/layouts/{name}    validate and store a layout document
  DELETE /v1/layouts/{name}    delete a layout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, cfg, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if addr == "" {
				addr = cfg.Server.Addr
			}

			srv := api.New(st, c.Logger)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}
