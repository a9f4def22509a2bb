package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dockyard/pkg/docking"
	"github.com/matzehuels/dockyard/pkg/render"
)

// Export formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// exportCommand creates the export command for rendering layouts.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "export [name]",
		Short: "Render a stored layout as DOT or SVG",
		Long: `Export renders a stored layout's splitter trees as a Graphviz
diagram. Containers become clusters, splitters become orientation nodes,
and tabbed areas become record boxes with the active tab highlighted.

Without arguments, exports the session layout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := docking.SessionLayoutName
			if len(args) == 1 {
				name = args[0]
			}

			format = strings.ToLower(format)
			if format != formatDOT && format != formatSVG {
				return fmt.Errorf("unknown format %q (want dot or svg)", format)
			}
			if output == "" {
				output = name + "." + format
			}

			st, _, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			p := newProgress(c.Logger)

			doc, err := loadDocument(ctx, st, name)
			if err != nil {
				return err
			}
			containers, reg, err := containersFromDocument(doc)
			if err != nil {
				return err
			}

			dot := render.ToDOT(containers, reg, render.Options{Detailed: detailed})
			data := []byte(dot)
			if format == formatSVG {
				data, err = render.SVG(dot)
				if err != nil {
					return err
				}
			}

			if dir := filepath.Dir(output); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}

			p.done(fmt.Sprintf("Exported layout %q", name))
			printSuccess("wrote %s", format)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <name>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: dot or svg")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include ratios and geometry in labels")

	return cmd
}
