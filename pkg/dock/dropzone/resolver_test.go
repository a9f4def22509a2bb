package dropzone

import (
	"testing"

	"github.com/matzehuels/dockyard/pkg/dock"
)

// buildContainer docks the given widgets into one container, each in its own
// area split left-to-right, and lays it out over the given geometry.
func buildContainer(t *testing.T, reg *dock.Registry, geo dock.Rect, ids ...string) *dock.Container {
	t.Helper()
	tree := dock.NewTree()
	var prev dock.NodeID
	for i, id := range ids {
		if err := reg.Register(dock.NewWidget(id, id, nil)); err != nil {
			t.Fatalf("Register(%q): %v", id, err)
		}
		if i == 0 {
			area, err := tree.DockRoot(reg, id, dock.Left)
			if err != nil {
				t.Fatalf("DockRoot: %v", err)
			}
			prev = area
			continue
		}
		area, err := tree.SplitArea(reg, prev, id, dock.Right)
		if err != nil {
			t.Fatalf("SplitArea: %v", err)
		}
		prev = area
	}
	tree.Layout(geo)
	return &dock.Container{ID: "c", Tree: tree, Geometry: geo}
}

func TestClassifyZone(t *testing.T) {
	cfg := DefaultConfig()
	r := dock.Rect{X: 0, Y: 0, W: 100, H: 100}

	tests := []struct {
		name string
		p    dock.Point
		want Zone
	}{
		{"dead center", dock.Point{X: 50, Y: 50}, ZoneCenter},
		{"left edge", dock.Point{X: 10, Y: 50}, ZoneLeft},
		{"right edge", dock.Point{X: 90, Y: 50}, ZoneRight},
		{"top edge", dock.Point{X: 50, Y: 10}, ZoneTop},
		{"bottom edge", dock.Point{X: 50, Y: 90}, ZoneBottom},
		{"corner closer to left", dock.Point{X: 5, Y: 20}, ZoneLeft},
		{"corner closer to top", dock.Point{X: 20, Y: 5}, ZoneTop},
		{"just inside center band", dock.Point{X: 26, Y: 50}, ZoneCenter},
		{"outside", dock.Point{X: 150, Y: 50}, ZoneNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyZone(cfg, r, tt.p); got != tt.want {
				t.Errorf("ClassifyZone(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestResolveCenterMergesAsAppendedTab(t *testing.T) {
	reg := dock.NewRegistry()
	c := buildContainer(t, reg, dock.Rect{X: 0, Y: 0, W: 200, H: 100}, "a")
	_ = reg.Register(dock.NewWidget("b", "b", nil))
	area := c.Tree.Root()

	plan, ok := Resolve(DefaultConfig(), []*dock.Container{c}, Item{WidgetID: "b"}, dock.Point{X: 100, Y: 50})
	if !ok {
		t.Fatal("Resolve returned no plan")
	}
	if plan.Kind != TabInsert || plan.Zone != ZoneCenter {
		t.Errorf("plan = %+v, want center tab-insert", plan)
	}
	if plan.Target != area {
		t.Errorf("target = %d, want %d", plan.Target, area)
	}
	if plan.TabIndex != 1 {
		t.Errorf("tab index = %d, want append at 1", plan.TabIndex)
	}
}

func TestResolveEdgeSplits(t *testing.T) {
	reg := dock.NewRegistry()
	c := buildContainer(t, reg, dock.Rect{X: 0, Y: 0, W: 200, H: 100}, "a", "b")
	_ = reg.Register(dock.NewWidget("w", "w", nil))
	item := Item{WidgetID: "w"}

	// Pointer near the bottom of the left area (a occupies x 0..100).
	plan, ok := Resolve(DefaultConfig(), []*dock.Container{c}, item, dock.Point{X: 50, Y: 92})
	if !ok {
		t.Fatal("Resolve returned no plan")
	}
	if plan.Kind != SplitTarget || plan.Zone != ZoneBottom || plan.Direction != dock.Bottom {
		t.Errorf("plan = %+v, want bottom split", plan)
	}
	if got := c.Tree.Widgets(plan.Target); len(got) != 1 || got[0] != "a" {
		t.Errorf("target widgets = %v, want [a]", got)
	}
}

func TestResolveTabStripIndex(t *testing.T) {
	reg := dock.NewRegistry()
	c := buildContainer(t, reg, dock.Rect{X: 0, Y: 0, W: 300, H: 100}, "a")
	area := c.Tree.Root()
	_ = reg.Register(dock.NewWidget("x", "x", nil))
	_ = reg.Register(dock.NewWidget("y", "y", nil))
	_ = c.Tree.InsertWidget(reg, "x", area, 1)
	_ = c.Tree.InsertWidget(reg, "y", area, 2)
	_ = reg.Register(dock.NewWidget("new", "new", nil))

	// Three tabs → four insertion slots across the strip.
	tests := []struct {
		x    float64
		want int
	}{
		{10, 0},
		{100, 1},
		{290, 3},
	}
	for _, tt := range tests {
		plan, ok := Resolve(DefaultConfig(), []*dock.Container{c}, Item{WidgetID: "new"}, dock.Point{X: tt.x, Y: 5})
		if !ok {
			t.Fatalf("Resolve at x=%v returned no plan", tt.x)
		}
		if plan.Kind != TabInsert || plan.TabIndex != tt.want {
			t.Errorf("at x=%v: plan = %+v, want tab index %d", tt.x, plan, tt.want)
		}
	}
}

func TestResolveIgnoresOwnSingleWidgetArea(t *testing.T) {
	reg := dock.NewRegistry()
	c := buildContainer(t, reg, dock.Rect{X: 0, Y: 0, W: 200, H: 100}, "a", "b")
	areaA, _, _ := c.Tree.FindWidget("a")
	item := Item{WidgetID: "a", FromTree: c.Tree, FromArea: areaA}

	// Dropping a back onto the center of its own single-widget area is a
	// no-op, but dropping it on b's area is a real merge.
	if _, ok := Resolve(DefaultConfig(), []*dock.Container{c}, item, dock.Point{X: 50, Y: 50}); ok {
		t.Error("drop onto own area should produce no plan")
	}
	plan, ok := Resolve(DefaultConfig(), []*dock.Container{c}, item, dock.Point{X: 150, Y: 50})
	if !ok || plan.Kind != TabInsert {
		t.Errorf("drop onto sibling area: plan = %+v, ok = %v", plan, ok)
	}
}

func TestResolveOuterZones(t *testing.T) {
	reg := dock.NewRegistry()
	// The tree covers a sub-rect of the window, leaving a margin that is
	// inside the container but outside every area.
	geo := dock.Rect{X: 0, Y: 0, W: 400, H: 300}
	c := buildContainer(t, reg, dock.Rect{X: 50, Y: 50, W: 300, H: 200}, "a")
	c.Geometry = geo
	_ = reg.Register(dock.NewWidget("w", "w", nil))

	plan, ok := Resolve(DefaultConfig(), []*dock.Container{c}, Item{WidgetID: "w"}, dock.Point{X: 390, Y: 20})
	if !ok {
		t.Fatal("Resolve returned no plan")
	}
	if plan.Kind != RootDock || plan.Direction != dock.Right {
		t.Errorf("plan = %+v, want right root-dock", plan)
	}
	if plan.Target != dock.InvalidNode {
		t.Errorf("target = %d, want InvalidNode", plan.Target)
	}
}

func TestResolveEmptyContainerAcceptsDrop(t *testing.T) {
	reg := dock.NewRegistry()
	_ = reg.Register(dock.NewWidget("w", "w", nil))
	c := &dock.Container{ID: "empty", Tree: dock.NewTree(), Geometry: dock.Rect{X: 0, Y: 0, W: 100, H: 100}}

	plan, ok := Resolve(DefaultConfig(), []*dock.Container{c}, Item{WidgetID: "w"}, dock.Point{X: 50, Y: 50})
	if !ok || plan.Kind != RootDock {
		t.Errorf("plan = %+v, ok = %v; want root-dock", plan, ok)
	}
}

func TestResolveMissesEverything(t *testing.T) {
	reg := dock.NewRegistry()
	c := buildContainer(t, reg, dock.Rect{X: 0, Y: 0, W: 100, H: 100}, "a")
	_ = reg.Register(dock.NewWidget("w", "w", nil))

	if _, ok := Resolve(DefaultConfig(), []*dock.Container{c}, Item{WidgetID: "w"}, dock.Point{X: 500, Y: 500}); ok {
		t.Error("pointer outside every container should produce no plan")
	}
}

func TestResolveSkipsDraggedFloatingContainer(t *testing.T) {
	reg := dock.NewRegistry()
	under := buildContainer(t, reg, dock.Rect{X: 0, Y: 0, W: 200, H: 100}, "a")
	floating := buildContainer(t, reg, dock.Rect{X: 0, Y: 0, W: 200, H: 100}, "f")
	floating.Floating = true

	// The dragged container overlaps the one below; resolution must fall
	// through to the underlying container.
	plan, ok := Resolve(DefaultConfig(), []*dock.Container{floating, under},
		Item{Floating: floating}, dock.Point{X: 100, Y: 50})
	if !ok {
		t.Fatal("Resolve returned no plan")
	}
	if plan.Container != under {
		t.Errorf("container = %v, want the underlying one", plan.Container.ID)
	}
	if plan.Kind != TabInsert {
		t.Errorf("kind = %v, want tab-insert at center", plan.Kind)
	}
}

func TestResolveSkipsHiddenContainers(t *testing.T) {
	reg := dock.NewRegistry()
	c := buildContainer(t, reg, dock.Rect{X: 0, Y: 0, W: 100, H: 100}, "a")
	c.Visibility = dock.Hidden
	_ = reg.Register(dock.NewWidget("w", "w", nil))

	if _, ok := Resolve(DefaultConfig(), []*dock.Container{c}, Item{WidgetID: "w"}, dock.Point{X: 50, Y: 50}); ok {
		t.Error("hidden container must not receive drops")
	}
}
