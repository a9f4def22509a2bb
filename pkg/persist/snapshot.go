package persist

import (
	"slices"

	"github.com/matzehuels/dockyard/pkg/dock"
)

// Snapshot captures the given containers into a document. The caller passes
// the main container first, then floating containers; closed lists the
// registered widgets that are not docked anywhere. Snapshotting is a pure
// read of the trees.
func Snapshot(containers []*dock.Container, closed []string) *Document {
	d := &Document{Version: FormatVersion, Closed: slices.Clone(closed)}
	for _, c := range containers {
		rec := Container{
			Floating: c.Floating,
			Geometry: Geometry{X: c.Geometry.X, Y: c.Geometry.Y, W: c.Geometry.W, H: c.Geometry.H},
		}
		if !c.Tree.Empty() {
			rec.Root = snapshotNode(c.Tree, c.Tree.Root())
		}
		d.Containers = append(d.Containers, rec)
	}
	return d
}

func snapshotNode(t *dock.Tree, id dock.NodeID) *Node {
	switch t.Kind(id) {
	case dock.NodeArea:
		return &Node{
			Kind:      KindArea,
			WidgetIDs: t.Widgets(id),
			Current:   t.CurrentIndex(id),
		}
	case dock.NodeSplitter:
		n := &Node{
			Kind:   KindSplitter,
			Ratios: t.Ratios(id),
		}
		if t.Orientation(id) == dock.Vertical {
			n.Orientation = OrientVertical
		} else {
			n.Orientation = OrientHorizontal
		}
		for _, child := range t.Children(id) {
			n.Children = append(n.Children, snapshotNode(t, child))
		}
		return n
	}
	return nil
}
