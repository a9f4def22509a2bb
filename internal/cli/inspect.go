package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dockyard/pkg/dock"
	"github.com/matzehuels/dockyard/pkg/docking"
)

// inspectCommand creates the inspect command for printing layout structure.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [name]",
		Short: "Print the structure of a stored layout",
		Long: `Inspect prints the splitter tree of a stored layout, one container
per block, with tab lists and the active tab highlighted.

Without arguments, inspects the session layout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := docking.SessionLayoutName
			if len(args) == 1 {
				name = args[0]
			}

			st, _, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			doc, err := loadDocument(ctx, st, name)
			if err != nil {
				return err
			}
			containers, _, err := containersFromDocument(doc)
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render(name))
			printStats(len(doc.WidgetIDs()), len(containers), len(doc.Closed))
			fmt.Println()

			for _, container := range containers {
				printContainer(container)
			}

			if len(doc.Closed) > 0 {
				fmt.Println()
				printDetail("closed: %s", strings.Join(doc.Closed, ", "))
			}
			return nil
		},
	}

	return cmd
}

// printContainer prints one container's tree as an indented block.
func printContainer(c *dock.Container) {
	head := c.ID
	if c.Floating {
		g := c.Geometry
		head += fmt.Sprintf("  %gx%g at (%g, %g)", g.W, g.H, g.X, g.Y)
	}
	fmt.Println(StyleHighlight.Render(head))

	if c.Tree.Empty() {
		printDetail("(empty)")
		return
	}
	printNode(c.Tree, c.Tree.Root(), "  ")
}

func printNode(t *dock.Tree, id dock.NodeID, indent string) {
	switch t.Kind(id) {
	case dock.NodeSplitter:
		fmt.Println(indent + StyleDim.Render(t.Orientation(id).String()))
		ratios := t.Ratios(id)
		for i, child := range t.Children(id) {
			fmt.Println(indent + StyleDim.Render(fmt.Sprintf("├ %.2f", ratios[i])))
			printNode(t, child, indent+"│   ")
		}
	case dock.NodeArea:
		fmt.Println(indent + formatTabs(t, id))
	}
}

// formatTabs renders an area's tab list with the active tab bracketed.
func formatTabs(t *dock.Tree, id dock.NodeID) string {
	current := t.CurrentIndex(id)
	parts := make([]string, 0, len(t.Widgets(id)))
	for i, w := range t.Widgets(id) {
		if i == current {
			parts = append(parts, styleActiveTab.Render("["+w+"]"))
		} else {
			parts = append(parts, styleTab.Render(w))
		}
	}
	return strings.Join(parts, " ")
}
