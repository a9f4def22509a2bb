package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/dockyard/pkg/errors"
)

// layoutsCommand creates the layouts command group for store management.
func (c *CLI) layoutsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "Manage stored layouts",
	}

	cmd.AddCommand(c.layoutsListCommand())
	cmd.AddCommand(c.layoutsDeleteCommand())

	return cmd
}

func (c *CLI) layoutsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored layout names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, cfg, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			names, err := st.List(ctx)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				printInfo("no layouts stored (backend: %s)", cfg.Store.Backend)
				printNextStep("save one from your application, then inspect it", "dockyard inspect <name>")
				return nil
			}

			fmt.Println(StyleTitle.Render("Layouts"))
			for _, name := range names {
				printDetail("%s", name)
			}
			return nil
		},
	}
}

func (c *CLI) layoutsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]
			if err := apperrors.ValidateLayoutName(name); err != nil {
				return err
			}

			st, _, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(ctx, name); err != nil {
				return err
			}
			printSuccess("deleted layout %q", name)
			return nil
		},
	}
}
