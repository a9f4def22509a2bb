package dock

// Layout assigns screen geometry to every node of the tree, splitting bounds
// top-down along each splitter's orientation according to its normalized
// ratios. Hosts call this after any structural change (or window resize) so
// hit-testing and rendering see consistent rectangles; tests use it to get
// deterministic geometry without a toolkit.
func (t *Tree) Layout(bounds Rect) {
	if t.Empty() {
		return
	}
	t.layoutNode(t.root, bounds)
}

func (t *Tree) layoutNode(id NodeID, bounds Rect) {
	n := t.nodes[id]
	n.rect = bounds
	if n.kind != NodeSplitter {
		return
	}

	ratios := normalized(n.ratios)
	offset := 0.0
	for i, c := range n.children {
		share := ratios[i]
		var r Rect
		if n.orientation == Horizontal {
			r = Rect{X: bounds.X + offset*bounds.W, Y: bounds.Y, W: share * bounds.W, H: bounds.H}
		} else {
			r = Rect{X: bounds.X, Y: bounds.Y + offset*bounds.H, W: bounds.W, H: share * bounds.H}
		}
		t.layoutNode(c, r)
		offset += share
	}
}

// AreaAt returns the innermost area whose last-computed geometry contains p,
// or InvalidNode if p misses every area. The walk descends splitters using
// the child rectangles, so stale geometry yields stale answers; hosts must
// refresh rects (see [Tree.Layout]) before hit-testing.
func (t *Tree) AreaAt(p Point) NodeID {
	id := t.root
	for id != InvalidNode {
		n := t.nodes[id]
		if n.kind == NodeArea {
			if n.rect.Contains(p) {
				return id
			}
			return InvalidNode
		}
		next := InvalidNode
		for _, c := range n.children {
			if t.nodes[c].rect.Contains(p) {
				next = c
				break
			}
		}
		id = next
	}
	return InvalidNode
}
