package dock

import (
	"fmt"
	"slices"
)

// Tree is the layout tree of one top-level container: a strict tree whose
// root is either a single area or a splitter. Nodes live in an arena and are
// addressed by stable [NodeID] handles with parent back-links, which keeps
// collapse-on-removal and geometry propagation free of ownership cycles.
//
// The zero value is not usable - use [NewTree]. A Tree is not safe for
// concurrent use; the host event loop serializes all access.
type Tree struct {
	nodes  map[NodeID]*node
	root   NodeID
	nextID NodeID
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{nodes: make(map[NodeID]*node)}
}

// Root returns the root node handle, or InvalidNode for an empty tree.
func (t *Tree) Root() NodeID { return t.root }

// Empty reports whether the tree has no nodes.
func (t *Tree) Empty() bool { return t.root == InvalidNode }

// Contains reports whether id names a live node of this tree.
func (t *Tree) Contains(id NodeID) bool {
	_, ok := t.nodes[id]
	return ok
}

// Kind returns the node's kind, or 0 if id is not part of this tree.
func (t *Tree) Kind(id NodeID) NodeKind {
	if n, ok := t.nodes[id]; ok {
		return n.kind
	}
	return 0
}

// Parent returns the parent handle of id, or InvalidNode for the root or an
// unknown node.
func (t *Tree) Parent(id NodeID) NodeID {
	if n, ok := t.nodes[id]; ok {
		return n.parent
	}
	return InvalidNode
}

// Children returns a copy of a splitter's ordered child handles.
// Returns nil for areas and unknown nodes.
func (t *Tree) Children(id NodeID) []NodeID {
	n, ok := t.nodes[id]
	if !ok || n.kind != NodeSplitter {
		return nil
	}
	return slices.Clone(n.children)
}

// Orientation returns a splitter's layout axis. Meaningless for areas.
func (t *Tree) Orientation(id NodeID) Orientation {
	if n, ok := t.nodes[id]; ok {
		return n.orientation
	}
	return Horizontal
}

// Ratios returns a splitter's size ratios normalized to sum 1.0.
// Returns nil for areas and unknown nodes.
func (t *Tree) Ratios(id NodeID) []float64 {
	n, ok := t.nodes[id]
	if !ok || n.kind != NodeSplitter {
		return nil
	}
	return normalized(n.ratios)
}

// Widgets returns a copy of an area's ordered widget IDs.
// Returns nil for splitters and unknown nodes.
func (t *Tree) Widgets(id NodeID) []string {
	n, ok := t.nodes[id]
	if !ok || n.kind != NodeArea {
		return nil
	}
	return slices.Clone(n.widgets)
}

// CurrentIndex returns an area's active tab index, or -1 if id is not an
// area of this tree.
func (t *Tree) CurrentIndex(id NodeID) int {
	n, ok := t.nodes[id]
	if !ok || n.kind != NodeArea {
		return -1
	}
	return n.current
}

// CurrentWidget returns the ID of an area's active widget, or "" if id is
// not a non-empty area of this tree.
func (t *Tree) CurrentWidget(id NodeID) string {
	n, ok := t.nodes[id]
	if !ok || n.kind != NodeArea || len(n.widgets) == 0 {
		return ""
	}
	return n.widgets[n.current]
}

// Rect returns the node's last-computed screen geometry.
func (t *Tree) Rect(id NodeID) Rect {
	if n, ok := t.nodes[id]; ok {
		return n.rect
	}
	return Rect{}
}

// SetRect stores the node's screen geometry. Hosts call this (directly or
// via [Tree.Layout]) whenever the on-screen layout changes so the drop
// resolver can hit-test against fresh rectangles.
func (t *Tree) SetRect(id NodeID, r Rect) {
	if n, ok := t.nodes[id]; ok {
		n.rect = r
	}
}

// Areas returns all area handles in depth-first order.
func (t *Tree) Areas() []NodeID {
	var out []NodeID
	t.walk(t.root, func(n *node) {
		if n.kind == NodeArea {
			out = append(out, n.id)
		}
	})
	return out
}

// WidgetCount returns the total number of widgets docked in this tree.
func (t *Tree) WidgetCount() int {
	count := 0
	t.walk(t.root, func(n *node) {
		if n.kind == NodeArea {
			count += len(n.widgets)
		}
	})
	return count
}

// FindWidget locates a widget by ID without consulting the registry.
// Returns the owning area and tab index, or (InvalidNode, -1, false).
func (t *Tree) FindWidget(widgetID string) (area NodeID, index int, ok bool) {
	area, index = InvalidNode, -1
	t.walk(t.root, func(n *node) {
		if n.kind != NodeArea || ok {
			return
		}
		if i := slices.Index(n.widgets, widgetID); i >= 0 {
			area, index, ok = n.id, i, true
		}
	})
	return area, index, ok
}

// walk visits id and all its descendants in depth-first order.
func (t *Tree) walk(id NodeID, fn func(*node)) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	fn(n)
	for _, c := range n.children {
		t.walk(c, fn)
	}
}

// alloc creates a node of the given kind and returns its handle.
func (t *Tree) alloc(kind NodeKind) *node {
	t.nextID++
	n := &node{id: t.nextID, kind: kind}
	t.nodes[n.id] = n
	return n
}

// area returns the node behind id if it is an area of this tree.
func (t *Tree) area(id NodeID) (*node, error) {
	n, ok := t.nodes[id]
	if !ok || n.kind != NodeArea {
		return nil, fmt.Errorf("node %d: %w", id, ErrInvalidTarget)
	}
	return n, nil
}

// splitter returns the node behind id if it is a splitter of this tree.
func (t *Tree) splitter(id NodeID) (*node, error) {
	n, ok := t.nodes[id]
	if !ok || n.kind != NodeSplitter {
		return nil, fmt.Errorf("node %d: %w", id, ErrInvalidTarget)
	}
	return n, nil
}

// normalized returns ratios scaled to sum 1.0. A zero-sum sequence falls
// back to an even split so degenerate input never divides by zero.
func normalized(ratios []float64) []float64 {
	out := make([]float64, len(ratios))
	sum := 0.0
	for _, r := range ratios {
		sum += r
	}
	if sum <= 0 {
		for i := range out {
			out[i] = 1.0 / float64(len(out))
		}
		return out
	}
	for i, r := range ratios {
		out[i] = r / sum
	}
	return out
}
