package dock

import "fmt"

// Validate checks every structural invariant of the tree and returns the
// first violation wrapped in ErrInvariant, or nil. An empty tree is valid.
//
// Checked invariants:
//   - parent back-links match child lists and the root has no parent
//   - no area is empty and every active tab index is in range
//   - every splitter has at least two children
//   - no splitter has a child splitter of the same orientation
//   - ratio sequences are parallel to child lists with no negative entries
//   - no widget appears in more than one area
func (t *Tree) Validate() error {
	if t.Empty() {
		return nil
	}
	if _, ok := t.nodes[t.root]; !ok {
		return fmt.Errorf("root %d missing from arena: %w", t.root, ErrInvariant)
	}
	if p := t.nodes[t.root].parent; p != InvalidNode {
		return fmt.Errorf("root %d has parent %d: %w", t.root, p, ErrInvariant)
	}

	seen := make(map[string]NodeID)
	var check func(id NodeID) error
	check = func(id NodeID) error {
		n, ok := t.nodes[id]
		if !ok {
			return fmt.Errorf("dangling child handle %d: %w", id, ErrInvariant)
		}
		switch n.kind {
		case NodeArea:
			if len(n.widgets) == 0 {
				return fmt.Errorf("area %d is empty: %w", id, ErrInvariant)
			}
			if n.current < 0 || n.current >= len(n.widgets) {
				return fmt.Errorf("area %d current index %d out of range: %w", id, n.current, ErrInvariant)
			}
			for _, w := range n.widgets {
				if other, dup := seen[w]; dup {
					return fmt.Errorf("widget %q in areas %d and %d: %w", w, other, id, ErrInvariant)
				}
				seen[w] = id
			}
		case NodeSplitter:
			if len(n.children) < 2 {
				return fmt.Errorf("splitter %d has %d children: %w", id, len(n.children), ErrInvariant)
			}
			if len(n.ratios) != len(n.children) {
				return fmt.Errorf("splitter %d has %d ratios for %d children: %w", id, len(n.ratios), len(n.children), ErrInvariant)
			}
			for _, r := range n.ratios {
				if r < 0 {
					return fmt.Errorf("splitter %d has negative ratio %v: %w", id, r, ErrInvariant)
				}
			}
			for _, c := range n.children {
				cn, ok := t.nodes[c]
				if !ok {
					return fmt.Errorf("dangling child handle %d: %w", c, ErrInvariant)
				}
				if cn.parent != id {
					return fmt.Errorf("node %d parent link %d != %d: %w", c, cn.parent, id, ErrInvariant)
				}
				if cn.kind == NodeSplitter && cn.orientation == n.orientation {
					return fmt.Errorf("splitter %d nests same-orientation splitter %d: %w", id, c, ErrInvariant)
				}
				if err := check(c); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("node %d has unknown kind %d: %w", id, n.kind, ErrInvariant)
		}
		return nil
	}
	return check(t.root)
}
