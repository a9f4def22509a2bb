package persist

// Prune returns a copy of the document with every widget ID rejected by
// known removed, repairing the structure as it goes: areas that lose all
// tabs disappear, splitters left with one child collapse into it, and
// floating containers that end up empty are dropped. Collapses that would
// nest same-orientation splitters are spliced flat. Active tab indices are
// shifted so the same tab stays selected where it survives.
//
// Restoring a pruned document is equivalent to restoring one that never
// mentioned the unknown widgets.
func Prune(d *Document, known func(string) bool) *Document {
	out := &Document{Version: d.Version}
	for _, id := range d.Closed {
		if known(id) {
			out.Closed = append(out.Closed, id)
		}
	}
	for i, c := range d.Containers {
		root := pruneNode(c.Root, known)
		if root == nil && i > 0 {
			continue // empty floating container
		}
		out.Containers = append(out.Containers, Container{
			Floating: c.Floating,
			Geometry: c.Geometry,
			Root:     root,
		})
	}
	return out
}

func pruneNode(n *Node, known func(string) bool) *Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindArea:
		out := &Node{Kind: KindArea}
		dropped := 0
		for i, id := range n.WidgetIDs {
			if !known(id) {
				if i < n.Current {
					dropped++
				}
				continue
			}
			out.WidgetIDs = append(out.WidgetIDs, id)
		}
		if len(out.WidgetIDs) == 0 {
			return nil
		}
		out.Current = max(0, min(n.Current-dropped, len(out.WidgetIDs)-1))
		return out
	case KindSplitter:
		out := &Node{Kind: KindSplitter, Orientation: n.Orientation}
		for i, c := range n.Children {
			kept := pruneNode(c, known)
			if kept == nil {
				continue
			}
			share := 1.0
			if i < len(n.Ratios) {
				share = n.Ratios[i]
			}
			// Collapsing elsewhere can surface a same-orientation splitter
			// here; splice its children in instead of nesting.
			if kept.Kind == KindSplitter && kept.Orientation == out.Orientation {
				total := 0.0
				for _, r := range kept.Ratios {
					total += r
				}
				for j, gc := range kept.Children {
					out.Children = append(out.Children, gc)
					inner := 1.0 / float64(len(kept.Children))
					if total > 0 && j < len(kept.Ratios) {
						inner = kept.Ratios[j] / total
					}
					out.Ratios = append(out.Ratios, share*inner)
				}
				continue
			}
			out.Children = append(out.Children, kept)
			out.Ratios = append(out.Ratios, share)
		}
		switch len(out.Children) {
		case 0:
			return nil
		case 1:
			return out.Children[0]
		}
		return out
	}
	return nil
}
