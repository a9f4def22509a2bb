package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dockyard/pkg/dock"
	"github.com/matzehuels/dockyard/pkg/docking"
)

// demoCommand creates the demo command, an interactive docking playground.
func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Interactive docking playground in the terminal",
		Long: `Demo starts a terminal playground with a few sample widgets. Move
a virtual pointer across the 800x600 layout space, pick up widgets, and
watch drop targets resolve as you move.

Keys:
  ←↓↑→ / hjkl   move the pointer
  tab           select the next widget
  d             pick up the selected widget
  enter         drop at the pointer
  esc           cancel the drag
  s             save the session layout to the store
  q             quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, st, err := c.newManager(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			model, err := newDemoModel(mgr)
			if err != nil {
				return err
			}

			p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}

// demoStep is the pointer movement per keypress in layout units.
const demoStep = 25

// demoModel is the bubbletea model for the docking playground.
type demoModel struct {
	mgr      *docking.Manager
	ids      []string
	selected int
	cursor   dock.Point
	status   string
}

// newDemoModel builds a manager preloaded with sample widgets.
func newDemoModel(mgr *docking.Manager) (demoModel, error) {
	m := demoModel{
		mgr:    mgr,
		ids:    []string{"editor", "outline", "console", "terminal", "log"},
		cursor: dock.Point{X: 400, Y: 300},
		status: "ready",
	}

	titles := map[string]string{
		"editor":   "Editor",
		"outline":  "Outline",
		"console":  "Console",
		"terminal": "Terminal",
		"log":      "Log",
	}
	for _, id := range m.ids {
		if err := mgr.RegisterWidget(dock.NewWidget(id, titles[id], nil)); err != nil {
			return m, err
		}
	}

	// Seed layout: editor with outline tab, console and terminal below.
	if _, err := mgr.AddWidget("editor", dock.Right); err != nil {
		return m, err
	}
	area, _, ok := mgr.Main().Tree.FindWidget("editor")
	if !ok {
		return m, fmt.Errorf("editor not docked")
	}
	if err := mgr.TabifyWidget("outline", area, 1); err != nil {
		return m, err
	}
	if _, err := mgr.AddWidget("console", dock.Bottom); err != nil {
		return m, err
	}
	consoleArea, _, _ := mgr.Main().Tree.FindWidget("console")
	if _, err := mgr.SplitWidget("terminal", consoleArea, dock.Right); err != nil {
		return m, err
	}
	return m, nil
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		m.moveCursor(-demoStep, 0)
	case "right", "l":
		m.moveCursor(demoStep, 0)
	case "up", "k":
		m.moveCursor(0, -demoStep)
	case "down", "j":
		m.moveCursor(0, demoStep)

	case "tab":
		m.selected = (m.selected + 1) % len(m.ids)
		m.status = "selected " + m.ids[m.selected]

	case "d":
		if err := m.mgr.StartDrag(m.ids[m.selected]); err != nil {
			m.status = err.Error()
			break
		}
		m.mgr.DragMove(m.cursor)
		m.status = "dragging " + m.ids[m.selected]

	case "enter":
		if !m.mgr.Dragging() {
			m.status = "nothing picked up"
			break
		}
		if err := m.mgr.Drop(context.Background(), m.cursor); err != nil {
			m.status = err.Error()
			break
		}
		m.status = "dropped"

	case "esc":
		if m.mgr.Dragging() {
			m.mgr.CancelDrag()
			m.status = "cancelled"
		}

	case "s":
		if err := m.mgr.SavePerspective(context.Background(), docking.SessionLayoutName); err != nil {
			m.status = err.Error()
			break
		}
		m.status = "saved session layout"
	}

	if m.mgr.Dragging() {
		m.mgr.DragMove(m.cursor)
	}
	return m, nil
}

func (m *demoModel) moveCursor(dx, dy float64) {
	m.cursor.X = clamp(m.cursor.X+dx, 0, 1200)
	m.cursor.Y = clamp(m.cursor.Y+dy, 0, 800)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m demoModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Dockyard Playground"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←↓↑→ move  tab select  d pick up  ⏎ drop  esc cancel  s save  q quit"))
	b.WriteString("\n\n")

	for _, container := range m.mgr.Containers() {
		b.WriteString(containerView(container))
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("pointer (%g, %g)", m.cursor.X, m.cursor.Y)))
	b.WriteString("  ")
	b.WriteString(styleTab.Render("widget: "))
	b.WriteString(styleActiveTab.Render(m.ids[m.selected]))
	b.WriteString("\n")

	if plan, ok := m.mgr.DropPlan(); ok {
		b.WriteString(StyleHighlight.Render(fmt.Sprintf("drop: %s %s", plan.Kind, plan.Zone)))
		b.WriteString("\n")
	}

	b.WriteString(StyleValue.Render(m.status))
	b.WriteString("\n")
	return b.String()
}

// containerView renders one container's tree as an indented text block.
func containerView(c *dock.Container) string {
	var b strings.Builder
	head := c.ID
	if c.Floating {
		g := c.Geometry
		head += fmt.Sprintf("  %gx%g at (%g, %g)", g.W, g.H, g.X, g.Y)
	}
	b.WriteString(StyleHighlight.Render(head))
	b.WriteString("\n")

	if c.Tree.Empty() {
		b.WriteString("  " + StyleDim.Render("(empty)") + "\n")
		return b.String()
	}

	var walk func(id dock.NodeID, indent string)
	walk = func(id dock.NodeID, indent string) {
		t := c.Tree
		switch t.Kind(id) {
		case dock.NodeSplitter:
			b.WriteString(indent + StyleDim.Render(t.Orientation(id).String()) + "\n")
			for _, child := range t.Children(id) {
				walk(child, indent+"  ")
			}
		case dock.NodeArea:
			b.WriteString(indent + formatTabs(t, id) + "\n")
		}
	}
	walk(c.Tree.Root(), "  ")
	return b.String()
}
