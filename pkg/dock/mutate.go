package dock

import (
	"fmt"
	"slices"
)

// InsertWidget inserts a registered widget into an existing area at the
// given tab index. The index is clamped to the valid range and the inserted
// widget becomes the active tab. Returns ErrInvalidTarget if target is not a
// live area of this tree, ErrNotFound if the widget is not registered, and
// ErrInvariant if the widget is already docked somewhere (widgets must be
// removed before they are re-inserted).
func (t *Tree) InsertWidget(reg *Registry, widgetID string, target NodeID, index int) error {
	n, err := t.area(target)
	if err != nil {
		return err
	}
	if _, ok := reg.Widget(widgetID); !ok {
		return fmt.Errorf("widget %q: %w", widgetID, ErrNotFound)
	}
	if _, docked := reg.Location(widgetID); docked {
		return fmt.Errorf("widget %q already docked: %w", widgetID, ErrInvariant)
	}

	index = max(0, min(index, len(n.widgets)))
	n.widgets = slices.Insert(n.widgets, index, widgetID)
	n.current = index
	reg.setLocation(widgetID, t, n.id)
	return nil
}

// RemoveWidget removes a widget from its owning area in this tree. If the
// area becomes empty it is collapsed out of its parent, recursively
// collapsing ancestor splitters that drop below two children. Returns
// ErrNotFound if the widget is not currently docked in this tree.
func (t *Tree) RemoveWidget(reg *Registry, widgetID string) error {
	loc, ok := reg.Location(widgetID)
	if !ok || loc.Tree != t {
		return fmt.Errorf("widget %q: %w", widgetID, ErrNotFound)
	}
	n, err := t.area(loc.Area)
	if err != nil {
		return fmt.Errorf("registry points at dead area %d: %w", loc.Area, ErrInvariant)
	}
	i := slices.Index(n.widgets, widgetID)
	if i < 0 {
		return fmt.Errorf("registry desync for widget %q: %w", widgetID, ErrInvariant)
	}

	n.widgets = slices.Delete(n.widgets, i, i+1)
	switch {
	case i < n.current:
		n.current--
	case n.current >= len(n.widgets):
		n.current = len(n.widgets) - 1
	}
	reg.clearLocation(widgetID)

	if len(n.widgets) == 0 {
		t.removeNode(n.id)
	}
	return nil
}

// SplitArea splits target in the given direction, placing a new area
// holding widgetID on that side with half of the target's share. If the
// target's parent splitter already has the matching orientation the new
// area is inserted as an adjacent sibling instead of nesting a redundant
// splitter. Returns the new area's handle.
func (t *Tree) SplitArea(reg *Registry, target NodeID, widgetID string, dir Direction) (NodeID, error) {
	if _, err := t.area(target); err != nil {
		return InvalidNode, err
	}
	if _, ok := reg.Widget(widgetID); !ok {
		return InvalidNode, fmt.Errorf("widget %q: %w", widgetID, ErrNotFound)
	}
	if _, docked := reg.Location(widgetID); docked {
		return InvalidNode, fmt.Errorf("widget %q already docked: %w", widgetID, ErrInvariant)
	}

	area := t.newArea([]string{widgetID}, 0)
	t.insertBeside(target, area.id, dir)
	reg.setLocation(widgetID, t, area.id)
	return area.id, nil
}

// InsertAreaAt creates a new area holding the given widgets and places it
// relative to target. With an empty tree and target == InvalidNode the new
// area becomes the root; this is the docking path for the first widget of a
// container and for freshly detached floating containers. The widgets'
// registry locations are re-pointed at the new area.
func (t *Tree) InsertAreaAt(reg *Registry, widgets []string, current int, target NodeID, dir Direction) (NodeID, error) {
	if len(widgets) == 0 {
		return InvalidNode, fmt.Errorf("insert empty area: %w", ErrInvariant)
	}
	current = max(0, min(current, len(widgets)-1))

	if t.Empty() {
		if target != InvalidNode {
			return InvalidNode, fmt.Errorf("node %d in empty tree: %w", target, ErrInvalidTarget)
		}
		area := t.newArea(widgets, current)
		t.root = area.id
		for _, id := range widgets {
			reg.setLocation(id, t, area.id)
		}
		return area.id, nil
	}

	if _, err := t.area(target); err != nil {
		return InvalidNode, err
	}
	area := t.newArea(widgets, current)
	t.insertBeside(target, area.id, dir)
	for _, id := range widgets {
		reg.setLocation(id, t, area.id)
	}
	return area.id, nil
}

// DockRoot splits the whole tree's root in the given direction, placing a
// new area holding widgetID along that container edge. On an empty tree the
// new area simply becomes the root. This is the container-level "outer"
// drop used when the pointer is inside a container but outside every area.
func (t *Tree) DockRoot(reg *Registry, widgetID string, dir Direction) (NodeID, error) {
	if _, ok := reg.Widget(widgetID); !ok {
		return InvalidNode, fmt.Errorf("widget %q: %w", widgetID, ErrNotFound)
	}
	if _, docked := reg.Location(widgetID); docked {
		return InvalidNode, fmt.Errorf("widget %q already docked: %w", widgetID, ErrInvariant)
	}

	area := t.newArea([]string{widgetID}, 0)
	if t.Empty() {
		t.root = area.id
	} else {
		t.insertBeside(t.root, area.id, dir)
	}
	reg.setLocation(widgetID, t, area.id)
	return area.id, nil
}

// MoveArea moves an entire area from this tree into dest, splitting target
// in the given direction. The operation is atomic: every failure mode is
// checked before the first mutation, so on error the source tree is left
// unmodified. Used for cross-window drags.
func (t *Tree) MoveArea(reg *Registry, area NodeID, dest *Tree, target NodeID, dir Direction) error {
	src, err := t.area(area)
	if err != nil {
		return err
	}
	if dest == t && target == area {
		return fmt.Errorf("move area %d onto itself: %w", area, ErrInvalidTarget)
	}
	if dest.Empty() {
		if target != InvalidNode {
			return fmt.Errorf("node %d in empty tree: %w", target, ErrInvalidTarget)
		}
	} else if _, err := dest.area(target); err != nil {
		return err
	}

	widgets := slices.Clone(src.widgets)
	current := src.current
	t.removeNode(area)
	if _, err := dest.InsertAreaAt(reg, widgets, current, target, dir); err != nil {
		// Unreachable after the validation above.
		return fmt.Errorf("move area %d: %w", area, err)
	}
	return nil
}

// MergeTree merges the entire tree of src into this tree beside target,
// preserving src's internal nesting, then leaves src empty. This is the
// re-docking path for floating containers. With an empty destination the
// source tree is adopted wholesale.
func (t *Tree) MergeTree(reg *Registry, src *Tree, target NodeID, dir Direction) error {
	if src == t {
		return fmt.Errorf("merge tree into itself: %w", ErrInvariant)
	}
	if src.Empty() {
		return fmt.Errorf("merge empty tree: %w", ErrInvariant)
	}
	if t.Empty() {
		if target != InvalidNode {
			return fmt.Errorf("node %d in empty tree: %w", target, ErrInvalidTarget)
		}
		t.root = t.clone(reg, src, src.root, InvalidNode)
		src.clear()
		return nil
	}
	if _, err := t.area(target); err != nil {
		return err
	}

	rootCopy := t.clone(reg, src, src.root, InvalidNode)
	t.insertBeside(target, rootCopy, dir)
	src.clear()
	return nil
}

// MergeTreeRoot merges the entire tree of src along this tree's container
// edge, splitting the root in the given direction, then leaves src empty.
// This is the outer-drop re-docking path for floating containers; with an
// empty destination the source structure is adopted wholesale.
func (t *Tree) MergeTreeRoot(reg *Registry, src *Tree, dir Direction) error {
	if src == t {
		return fmt.Errorf("merge tree into itself: %w", ErrInvariant)
	}
	if src.Empty() {
		return fmt.Errorf("merge empty tree: %w", ErrInvariant)
	}
	rootCopy := t.clone(reg, src, src.root, InvalidNode)
	if t.Empty() {
		t.root = rootCopy
	} else {
		t.insertBeside(t.root, rootCopy, dir)
	}
	src.clear()
	return nil
}

// Reset empties the tree, returning every widget docked in it to hidden
// state. Restore paths use this to tear down the old layout before building
// the new one.
func (t *Tree) Reset(reg *Registry) {
	t.walk(t.root, func(n *node) {
		for _, id := range n.widgets {
			reg.clearLocation(id)
		}
	})
	t.clear()
}

// SetSizeRatios replaces a splitter's size ratios. The sequence must match
// the child count, contain no negative values, and have a positive sum; it
// is normalized to sum 1.0 before storing.
func (t *Tree) SetSizeRatios(id NodeID, ratios []float64) error {
	n, err := t.splitter(id)
	if err != nil {
		return err
	}
	if len(ratios) != len(n.children) {
		return fmt.Errorf("ratio count %d for %d children: %w", len(ratios), len(n.children), ErrInvariant)
	}
	sum := 0.0
	for _, r := range ratios {
		if r < 0 {
			return fmt.Errorf("negative ratio %v: %w", r, ErrInvariant)
		}
		sum += r
	}
	if sum <= 0 {
		return fmt.Errorf("ratios sum to zero: %w", ErrInvariant)
	}
	n.ratios = normalized(ratios)
	return nil
}

// SetCurrentIndex activates the tab at index in the given area. The index
// is clamped to the valid range.
func (t *Tree) SetCurrentIndex(area NodeID, index int) error {
	n, err := t.area(area)
	if err != nil {
		return err
	}
	n.current = max(0, min(index, len(n.widgets)-1))
	return nil
}

// newArea allocates an area node with the given tabs.
func (t *Tree) newArea(widgets []string, current int) *node {
	n := t.alloc(NodeArea)
	n.widgets = slices.Clone(widgets)
	n.current = current
	return n
}

// insertBeside places child relative to target per dir, creating or reusing
// splitters so that the orientation invariants hold. Both target and child
// must be live nodes of this tree; child must be detached (no parent).
func (t *Tree) insertBeside(target, child NodeID, dir Direction) {
	tn := t.nodes[target]
	cn := t.nodes[child]

	if tn.parent == InvalidNode {
		// Target is the root: wrap both in a fresh splitter.
		sp := t.alloc(NodeSplitter)
		sp.orientation = dir.Orientation()
		sp.rect = tn.rect
		sp.children = orderPair(target, child, dir)
		sp.ratios = []float64{0.5, 0.5}
		tn.parent, cn.parent = sp.id, sp.id
		t.root = sp.id
		t.flatten(sp.id)
		return
	}

	parent := t.nodes[tn.parent]
	slot := slices.Index(parent.children, target)

	if parent.orientation == dir.Orientation() {
		// Matching orientation: insert as adjacent sibling, giving the new
		// child half of the target's prior share.
		share := parent.ratios[slot]
		parent.ratios[slot] = share / 2
		at := slot
		if dir.Append() {
			at = slot + 1
		}
		parent.children = slices.Insert(parent.children, at, child)
		parent.ratios = slices.Insert(parent.ratios, at, share/2)
		cn.parent = parent.id
		t.flatten(parent.id)
		return
	}

	// Orientation differs: replace the target's slot with a new 2-child
	// splitter at a 50/50 split.
	sp := t.alloc(NodeSplitter)
	sp.orientation = dir.Orientation()
	sp.rect = tn.rect
	sp.children = orderPair(target, child, dir)
	sp.ratios = []float64{0.5, 0.5}
	sp.parent = parent.id
	parent.children[slot] = sp.id
	tn.parent, cn.parent = sp.id, sp.id
	t.flatten(sp.id)
}

// flatten splices any child splitter that shares the given splitter's
// orientation into the parent, scaling the spliced ratios by the child's
// share. This keeps the no-redundant-nesting invariant local and cheap.
func (t *Tree) flatten(id NodeID) {
	n, ok := t.nodes[id]
	if !ok || n.kind != NodeSplitter {
		return
	}
	shares := normalized(n.ratios)

	children := make([]NodeID, 0, len(n.children))
	ratios := make([]float64, 0, len(n.ratios))
	for i, c := range n.children {
		cn := t.nodes[c]
		if cn.kind != NodeSplitter || cn.orientation != n.orientation {
			children = append(children, c)
			ratios = append(ratios, shares[i])
			continue
		}
		inner := normalized(cn.ratios)
		for j, gc := range cn.children {
			t.nodes[gc].parent = n.id
			children = append(children, gc)
			ratios = append(ratios, shares[i]*inner[j])
		}
		delete(t.nodes, c)
	}
	n.children = children
	n.ratios = ratios
}

// removeNode deletes the subtree rooted at id and collapses ancestors that
// drop below two children.
func (t *Tree) removeNode(id NodeID) {
	n := t.nodes[id]
	parent := n.parent
	t.deleteSubtree(id)

	if parent == InvalidNode {
		t.root = InvalidNode
		return
	}

	p := t.nodes[parent]
	slot := slices.Index(p.children, id)
	p.children = slices.Delete(p.children, slot, slot+1)
	p.ratios = slices.Delete(p.ratios, slot, slot+1)

	if len(p.children) == 1 {
		t.collapse(parent)
	}
}

// collapse replaces a single-child splitter by its child in the parent
// slot. If the surviving child is a splitter sharing the grandparent's
// orientation it is spliced in, preserving the flattening invariant.
func (t *Tree) collapse(id NodeID) {
	p := t.nodes[id]
	child := p.children[0]
	cn := t.nodes[child]
	gp := p.parent

	if gp == InvalidNode {
		cn.parent = InvalidNode
		t.root = child
		delete(t.nodes, id)
		return
	}

	g := t.nodes[gp]
	slot := slices.Index(g.children, id)
	g.children[slot] = child
	cn.parent = gp
	delete(t.nodes, id)
	t.flatten(gp)
}

// deleteSubtree removes id and all descendants from the arena.
func (t *Tree) deleteSubtree(id NodeID) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	for _, c := range n.children {
		t.deleteSubtree(c)
	}
	delete(t.nodes, id)
}

// clone deep-copies the subtree rooted at srcID of src into this tree,
// re-pointing the copied widgets' registry locations at their new areas.
// Returns the handle of the copied root; its parent is set to parent.
func (t *Tree) clone(reg *Registry, src *Tree, srcID, parent NodeID) NodeID {
	sn := src.nodes[srcID]
	n := t.alloc(sn.kind)
	n.parent = parent
	n.rect = sn.rect
	switch sn.kind {
	case NodeArea:
		n.widgets = slices.Clone(sn.widgets)
		n.current = sn.current
		for _, id := range n.widgets {
			reg.setLocation(id, t, n.id)
		}
	case NodeSplitter:
		n.orientation = sn.orientation
		n.ratios = slices.Clone(sn.ratios)
		n.children = make([]NodeID, len(sn.children))
		for i, c := range sn.children {
			n.children[i] = t.clone(reg, src, c, n.id)
		}
	}
	return n.id
}

// clear empties the tree. Widget locations must already have been moved.
func (t *Tree) clear() {
	t.nodes = make(map[NodeID]*node)
	t.root = InvalidNode
}

// orderPair returns (a, b) or (b, a) so that b lands on the side named by
// dir: before a for left/top, after a for right/bottom.
func orderPair(a, b NodeID, dir Direction) []NodeID {
	if dir.Append() {
		return []NodeID{a, b}
	}
	return []NodeID{b, a}
}
