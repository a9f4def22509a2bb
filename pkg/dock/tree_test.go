package dock

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// register adds widgets with the given IDs to a fresh registry.
func register(t *testing.T, ids ...string) *Registry {
	t.Helper()
	reg := NewRegistry()
	for _, id := range ids {
		if err := reg.Register(NewWidget(id, id, nil)); err != nil {
			t.Fatalf("Register(%q): %v", id, err)
		}
	}
	return reg
}

// sig renders a tree's structure as a compact string for equality checks:
// areas as "area(a,b|current)", splitters as "h[ratio child ...]"/"v[...]".
func sig(tr *Tree) string {
	if tr.Empty() {
		return "empty"
	}
	var render func(id NodeID) string
	render = func(id NodeID) string {
		switch tr.Kind(id) {
		case NodeArea:
			return fmt.Sprintf("area(%s|%d)", strings.Join(tr.Widgets(id), ","), tr.CurrentIndex(id))
		case NodeSplitter:
			axis := "h"
			if tr.Orientation(id) == Vertical {
				axis = "v"
			}
			parts := make([]string, 0, len(tr.Children(id)))
			ratios := tr.Ratios(id)
			for i, c := range tr.Children(id) {
				parts = append(parts, fmt.Sprintf("%.2f %s", ratios[i], render(c)))
			}
			return axis + "[" + strings.Join(parts, " ") + "]"
		}
		return "?"
	}
	return render(tr.Root())
}

// mustValidate fails the test if the tree violates any invariant.
func mustValidate(t *testing.T, tr *Tree) {
	t.Helper()
	if err := tr.Validate(); err != nil {
		t.Fatalf("Validate: %v\ntree: %s", err, sig(tr))
	}
}

func TestDockRootFirstWidget(t *testing.T) {
	reg := register(t, "editor")
	tr := NewTree()

	area, err := tr.DockRoot(reg, "editor", Left)
	if err != nil {
		t.Fatalf("DockRoot: %v", err)
	}
	if tr.Root() != area {
		t.Errorf("root = %d, want %d", tr.Root(), area)
	}
	if got := sig(tr); got != "area(editor|0)" {
		t.Errorf("sig = %s", got)
	}
	loc, ok := reg.Location("editor")
	if !ok || loc.Tree != tr || loc.Area != area {
		t.Errorf("registry location = %+v, %v", loc, ok)
	}
	mustValidate(t, tr)
}

func TestInsertWidgetTabOrder(t *testing.T) {
	reg := register(t, "a", "b", "mid")
	tr := NewTree()
	area, _ := tr.DockRoot(reg, "a", Left)
	if err := tr.InsertWidget(reg, "b", area, 99); err != nil {
		t.Fatalf("InsertWidget b: %v", err)
	}
	// Index clamped high appends; index 1 lands between a and b.
	if err := tr.InsertWidget(reg, "mid", area, 1); err != nil {
		t.Fatalf("InsertWidget mid: %v", err)
	}

	if got := sig(tr); got != "area(a,mid,b|1)" {
		t.Errorf("sig = %s, want area(a,mid,b|1)", got)
	}
	mustValidate(t, tr)
}

func TestInsertWidgetAppendsAndActivates(t *testing.T) {
	// Dropping at the center zone of an area [a, b] must yield [a, b, new]
	// with the new tab active.
	reg := register(t, "a", "b", "new")
	tr := NewTree()
	area, _ := tr.DockRoot(reg, "a", Left)
	_ = tr.InsertWidget(reg, "b", area, 1)

	if err := tr.InsertWidget(reg, "new", area, len(tr.Widgets(area))); err != nil {
		t.Fatalf("InsertWidget: %v", err)
	}
	if got := sig(tr); got != "area(a,b,new|2)" {
		t.Errorf("sig = %s, want area(a,b,new|2)", got)
	}
}

func TestInsertWidgetErrors(t *testing.T) {
	reg := register(t, "a", "b")
	tr := NewTree()
	area, _ := tr.DockRoot(reg, "a", Left)

	if err := tr.InsertWidget(reg, "ghost", area, 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("unregistered widget: err = %v, want ErrNotFound", err)
	}
	if err := tr.InsertWidget(reg, "b", NodeID(999), 0); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("stale target: err = %v, want ErrInvalidTarget", err)
	}
	if err := tr.InsertWidget(reg, "a", area, 0); !errors.Is(err, ErrInvariant) {
		t.Errorf("double dock: err = %v, want ErrInvariant", err)
	}
	// A splitter is not a valid insertion target.
	if _, err := tr.SplitArea(reg, area, "b", Right); err != nil {
		t.Fatalf("SplitArea: %v", err)
	}
	if err := tr.InsertWidget(reg, "b", tr.Root(), 0); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("splitter target: err = %v, want ErrInvalidTarget", err)
	}
}

func TestSplitAreaCreatesSplitter(t *testing.T) {
	reg := register(t, "left", "right")
	tr := NewTree()
	area, _ := tr.DockRoot(reg, "left", Left)

	newArea, err := tr.SplitArea(reg, area, "right", Right)
	if err != nil {
		t.Fatalf("SplitArea: %v", err)
	}
	if got := sig(tr); got != "h[0.50 area(left|0) 0.50 area(right|0)]" {
		t.Errorf("sig = %s", got)
	}
	if tr.Parent(newArea) != tr.Root() {
		t.Errorf("new area parent = %d, want root %d", tr.Parent(newArea), tr.Root())
	}
	mustValidate(t, tr)
}

func TestSplitAreaDirections(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{Left, "h[0.50 area(new|0) 0.50 area(base|0)]"},
		{Right, "h[0.50 area(base|0) 0.50 area(new|0)]"},
		{Top, "v[0.50 area(new|0) 0.50 area(base|0)]"},
		{Bottom, "v[0.50 area(base|0) 0.50 area(new|0)]"},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			reg := register(t, "base", "new")
			tr := NewTree()
			area, _ := tr.DockRoot(reg, "base", Left)
			if _, err := tr.SplitArea(reg, area, "new", tt.dir); err != nil {
				t.Fatalf("SplitArea: %v", err)
			}
			if got := sig(tr); got != tt.want {
				t.Errorf("sig = %s, want %s", got, tt.want)
			}
			mustValidate(t, tr)
		})
	}
}

func TestSplitAreaMatchingOrientationInsertsSibling(t *testing.T) {
	// Splitting right inside an already-horizontal splitter must not nest a
	// second horizontal splitter: the new area becomes an adjacent sibling
	// with half of the target's prior share.
	reg := register(t, "a", "b", "c")
	tr := NewTree()
	areaA, _ := tr.DockRoot(reg, "a", Left)
	_, _ = tr.SplitArea(reg, areaA, "b", Right)

	if _, err := tr.SplitArea(reg, areaA, "c", Right); err != nil {
		t.Fatalf("SplitArea: %v", err)
	}
	if got := sig(tr); got != "h[0.25 area(a|0) 0.25 area(c|0) 0.50 area(b|0)]" {
		t.Errorf("sig = %s", got)
	}
	mustValidate(t, tr)
}

func TestSplitThenRemoveRestoresTree(t *testing.T) {
	// splitArea(area, w, right) followed by removeWidget(w) must restore the
	// pre-split structure.
	reg := register(t, "a", "b", "w")
	tr := NewTree()
	areaA, _ := tr.DockRoot(reg, "a", Left)
	_, _ = tr.SplitArea(reg, areaA, "b", Bottom)
	before := sig(tr)

	if _, err := tr.SplitArea(reg, areaA, "w", Right); err != nil {
		t.Fatalf("SplitArea: %v", err)
	}
	if err := tr.RemoveWidget(reg, "w"); err != nil {
		t.Fatalf("RemoveWidget: %v", err)
	}
	if got := sig(tr); got != before {
		t.Errorf("tree not restored:\n before: %s\n  after: %s", before, got)
	}
	if _, ok := reg.Location("w"); ok {
		t.Error("removed widget still has a registry location")
	}
	mustValidate(t, tr)
}

func TestRemoveWidgetKeepsActiveTabSensible(t *testing.T) {
	reg := register(t, "a", "b", "c")
	tr := NewTree()
	area, _ := tr.DockRoot(reg, "a", Left)
	_ = tr.InsertWidget(reg, "b", area, 1)
	_ = tr.InsertWidget(reg, "c", area, 2) // active: c

	if err := tr.RemoveWidget(reg, "a"); err != nil {
		t.Fatalf("RemoveWidget a: %v", err)
	}
	if got := sig(tr); got != "area(b,c|1)" {
		t.Errorf("after removing before active: sig = %s, want area(b,c|1)", got)
	}
	if err := tr.RemoveWidget(reg, "c"); err != nil {
		t.Fatalf("RemoveWidget c: %v", err)
	}
	if got := sig(tr); got != "area(b|0)" {
		t.Errorf("after removing active tail: sig = %s, want area(b|0)", got)
	}
	mustValidate(t, tr)
}

func TestRemoveLastWidgetCollapsesArea(t *testing.T) {
	reg := register(t, "a", "b")
	tr := NewTree()
	areaA, _ := tr.DockRoot(reg, "a", Left)
	_, _ = tr.SplitArea(reg, areaA, "b", Right)

	if err := tr.RemoveWidget(reg, "b"); err != nil {
		t.Fatalf("RemoveWidget: %v", err)
	}
	// The 2-child splitter drops to 1 child and collapses away.
	if got := sig(tr); got != "area(a|0)" {
		t.Errorf("sig = %s, want area(a|0)", got)
	}
	if tr.Root() != areaA {
		t.Errorf("root = %d, want surviving area %d", tr.Root(), areaA)
	}
	mustValidate(t, tr)
}

func TestRemoveWidgetRecursiveCollapse(t *testing.T) {
	// h[a v[b c]] - removing b then c must collapse the vertical splitter
	// and then the horizontal one, leaving a single area.
	reg := register(t, "a", "b", "c")
	tr := NewTree()
	areaA, _ := tr.DockRoot(reg, "a", Left)
	areaB, _ := tr.SplitArea(reg, areaA, "b", Right)
	_, _ = tr.SplitArea(reg, areaB, "c", Bottom)
	mustValidate(t, tr)

	if err := tr.RemoveWidget(reg, "b"); err != nil {
		t.Fatalf("RemoveWidget b: %v", err)
	}
	if got := sig(tr); got != "h[0.50 area(a|0) 0.50 area(c|0)]" {
		t.Errorf("sig = %s", got)
	}
	if err := tr.RemoveWidget(reg, "c"); err != nil {
		t.Fatalf("RemoveWidget c: %v", err)
	}
	if got := sig(tr); got != "area(a|0)" {
		t.Errorf("sig = %s, want area(a|0)", got)
	}
	mustValidate(t, tr)
}

func TestRemoveWidgetEmptiesTree(t *testing.T) {
	reg := register(t, "only")
	tr := NewTree()
	_, _ = tr.DockRoot(reg, "only", Left)

	if err := tr.RemoveWidget(reg, "only"); err != nil {
		t.Fatalf("RemoveWidget: %v", err)
	}
	if !tr.Empty() {
		t.Errorf("tree not empty: %s", sig(tr))
	}
}

func TestRemoveWidgetNotDocked(t *testing.T) {
	reg := register(t, "a", "loose")
	tr := NewTree()
	_, _ = tr.DockRoot(reg, "a", Left)

	if err := tr.RemoveWidget(reg, "loose"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	// A widget docked in another tree is not found in this one.
	other := NewTree()
	if err := other.RemoveWidget(reg, "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign tree: err = %v, want ErrNotFound", err)
	}
}

func TestCollapseSplicesSameOrientationIntoGrandparent(t *testing.T) {
	// Build h[a v[b h2[c d]]]; removing b collapses the vertical splitter,
	// and h2 must be spliced into the root instead of nesting h-in-h.
	reg := register(t, "a", "b", "c", "d")
	tr := NewTree()
	areaA, _ := tr.DockRoot(reg, "a", Left)
	areaB, _ := tr.SplitArea(reg, areaA, "b", Right)
	areaC, _ := tr.SplitArea(reg, areaB, "c", Bottom)
	_, _ = tr.SplitArea(reg, areaC, "d", Right)
	mustValidate(t, tr)

	if err := tr.RemoveWidget(reg, "b"); err != nil {
		t.Fatalf("RemoveWidget: %v", err)
	}
	if got := sig(tr); got != "h[0.50 area(a|0) 0.25 area(c|0) 0.25 area(d|0)]" {
		t.Errorf("sig = %s", got)
	}
	mustValidate(t, tr)
}

func TestMoveAreaAcrossTrees(t *testing.T) {
	reg := register(t, "a", "b", "c")
	src := NewTree()
	areaA, _ := src.DockRoot(reg, "a", Left)
	areaB, _ := src.SplitArea(reg, areaA, "b", Right)
	_ = src.InsertWidget(reg, "c", areaB, 1)

	dst := NewTree()
	if err := src.MoveArea(reg, areaB, dst, InvalidNode, Left); err != nil {
		t.Fatalf("MoveArea: %v", err)
	}
	if got := sig(src); got != "area(a|0)" {
		t.Errorf("source sig = %s, want area(a|0)", got)
	}
	if got := sig(dst); got != "area(b,c|1)" {
		t.Errorf("dest sig = %s, want area(b,c|1)", got)
	}
	for _, id := range []string{"b", "c"} {
		loc, ok := reg.Location(id)
		if !ok || loc.Tree != dst {
			t.Errorf("widget %s location = %+v, %v; want dest tree", id, loc, ok)
		}
	}
	mustValidate(t, src)
	mustValidate(t, dst)
}

func TestMoveAreaAtomicOnError(t *testing.T) {
	reg := register(t, "a", "b")
	src := NewTree()
	areaA, _ := src.DockRoot(reg, "a", Left)
	areaB, _ := src.SplitArea(reg, areaA, "b", Right)
	before := sig(src)

	dst := NewTree()
	if err := src.MoveArea(reg, areaB, dst, NodeID(42), Left); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("err = %v, want ErrInvalidTarget", err)
	}
	if got := sig(src); got != before {
		t.Errorf("source mutated on failed move:\n before: %s\n  after: %s", before, got)
	}
	if err := src.MoveArea(reg, areaB, src, areaB, Left); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("self move: err = %v, want ErrInvalidTarget", err)
	}
}

func TestMergeTreePreservesNesting(t *testing.T) {
	reg := register(t, "main", "x", "y")
	dst := NewTree()
	mainArea, _ := dst.DockRoot(reg, "main", Left)

	src := NewTree()
	areaX, _ := src.DockRoot(reg, "x", Left)
	_, _ = src.SplitArea(reg, areaX, "y", Bottom)

	if err := dst.MergeTree(reg, src, mainArea, Right); err != nil {
		t.Fatalf("MergeTree: %v", err)
	}
	if !src.Empty() {
		t.Errorf("source not emptied: %s", sig(src))
	}
	if got := sig(dst); got != "h[0.50 area(main|0) 0.50 v[0.50 area(x|0) 0.50 area(y|0)]]" {
		t.Errorf("sig = %s", got)
	}
	for _, id := range []string{"x", "y"} {
		loc, ok := reg.Location(id)
		if !ok || loc.Tree != dst {
			t.Errorf("widget %s location not re-pointed: %+v, %v", id, loc, ok)
		}
	}
	mustValidate(t, dst)
}

func TestMergeTreeFlattensMatchingOrientation(t *testing.T) {
	// Merging a horizontal source beside a target inside a horizontal
	// splitter must splice the source children, not nest h-in-h.
	reg := register(t, "main", "x", "y")
	dst := NewTree()
	mainArea, _ := dst.DockRoot(reg, "main", Left)

	src := NewTree()
	areaX, _ := src.DockRoot(reg, "x", Left)
	_, _ = src.SplitArea(reg, areaX, "y", Right)

	if err := dst.MergeTree(reg, src, mainArea, Right); err != nil {
		t.Fatalf("MergeTree: %v", err)
	}
	if got := sig(dst); got != "h[0.50 area(main|0) 0.25 area(x|0) 0.25 area(y|0)]" {
		t.Errorf("sig = %s", got)
	}
	mustValidate(t, dst)
}

func TestMergeTreeIntoEmptyAdoptsStructure(t *testing.T) {
	reg := register(t, "x", "y")
	src := NewTree()
	areaX, _ := src.DockRoot(reg, "x", Left)
	_, _ = src.SplitArea(reg, areaX, "y", Bottom)
	want := sig(src)

	dst := NewTree()
	if err := dst.MergeTree(reg, src, InvalidNode, Left); err != nil {
		t.Fatalf("MergeTree: %v", err)
	}
	if got := sig(dst); got != want {
		t.Errorf("sig = %s, want %s", got, want)
	}
	mustValidate(t, dst)
}

func TestSetSizeRatios(t *testing.T) {
	reg := register(t, "a", "b")
	tr := NewTree()
	areaA, _ := tr.DockRoot(reg, "a", Left)
	_, _ = tr.SplitArea(reg, areaA, "b", Right)
	root := tr.Root()

	if err := tr.SetSizeRatios(root, []float64{3, 1}); err != nil {
		t.Fatalf("SetSizeRatios: %v", err)
	}
	got := tr.Ratios(root)
	if got[0] != 0.75 || got[1] != 0.25 {
		t.Errorf("ratios = %v, want [0.75 0.25]", got)
	}

	if err := tr.SetSizeRatios(root, []float64{1}); !errors.Is(err, ErrInvariant) {
		t.Errorf("length mismatch: err = %v, want ErrInvariant", err)
	}
	if err := tr.SetSizeRatios(root, []float64{-1, 2}); !errors.Is(err, ErrInvariant) {
		t.Errorf("negative ratio: err = %v, want ErrInvariant", err)
	}
	if err := tr.SetSizeRatios(root, []float64{0, 0}); !errors.Is(err, ErrInvariant) {
		t.Errorf("zero sum: err = %v, want ErrInvariant", err)
	}
	if err := tr.SetSizeRatios(areaA, []float64{1}); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("area target: err = %v, want ErrInvalidTarget", err)
	}
}

func TestNoEmptyAreasUnderChurn(t *testing.T) {
	// Property check: arbitrary insert/split/remove sequences never leave an
	// empty area or an undersized splitter observable.
	ids := []string{"w0", "w1", "w2", "w3", "w4", "w5", "w6", "w7"}
	reg := register(t, ids...)
	tr := NewTree()

	_, _ = tr.DockRoot(reg, ids[0], Left)
	dirs := []Direction{Right, Bottom, Left, Top}
	for i, id := range ids[1:] {
		areas := tr.Areas()
		target := areas[i%len(areas)]
		if i%3 == 0 {
			if err := tr.InsertWidget(reg, id, target, i); err != nil {
				t.Fatalf("InsertWidget %s: %v", id, err)
			}
		} else {
			if _, err := tr.SplitArea(reg, target, id, dirs[i%len(dirs)]); err != nil {
				t.Fatalf("SplitArea %s: %v", id, err)
			}
		}
		mustValidate(t, tr)
	}

	for _, id := range []string{"w3", "w0", "w6", "w1", "w7", "w2", "w5", "w4"} {
		if err := tr.RemoveWidget(reg, id); err != nil {
			t.Fatalf("RemoveWidget %s: %v", id, err)
		}
		mustValidate(t, tr)
	}
	if !tr.Empty() {
		t.Errorf("tree not empty after removing all widgets: %s", sig(tr))
	}
}
