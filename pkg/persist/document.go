package persist

import (
	"errors"
	"fmt"

	"github.com/matzehuels/dockyard/pkg/dock"
)

// FormatVersion is the version written into new documents. Documents with a
// higher version are rejected; lower versions are upgraded on load.
const FormatVersion = 1

// ErrUnsupportedVersion indicates a document written by a newer format
// revision than this package understands.
var ErrUnsupportedVersion = errors.New("unsupported layout version")

// ErrCorruptLayout indicates a document that parsed but fails structural
// validation, or bytes that are not a layout document at all.
var ErrCorruptLayout = errors.New("corrupt layout document")

// Node kinds and orientations as stored on the wire.
const (
	KindArea     = "area"
	KindSplitter = "splitter"

	OrientHorizontal = "horizontal"
	OrientVertical   = "vertical"
)

// Document is a complete serialized layout.
type Document struct {
	Version    int         `json:"version" bson:"version"`
	Containers []Container `json:"containers" bson:"containers"`
	// Closed lists widgets that are registered but not docked anywhere, so
	// a restore can keep them closed instead of forgetting them.
	Closed []string `json:"closed,omitempty" bson:"closed,omitempty"`
}

// Container is one serialized window: the main container first, floating
// containers after it.
type Container struct {
	Floating bool     `json:"floating,omitempty" bson:"floating,omitempty"`
	Geometry Geometry `json:"geometry" bson:"geometry"`
	Root     *Node    `json:"root,omitempty" bson:"root,omitempty"`
}

// Geometry is a serialized screen rectangle.
type Geometry struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
	W float64 `json:"w" bson:"w"`
	H float64 `json:"h" bson:"h"`
}

// Rect converts to the live geometry type.
func (g Geometry) Rect() dock.Rect {
	return dock.Rect{X: g.X, Y: g.Y, W: g.W, H: g.H}
}

// Node is one serialized tree node. Exactly one of the area or splitter
// field sets is populated, selected by Kind.
type Node struct {
	Kind string `json:"kind" bson:"kind"`

	// area fields
	WidgetIDs []string `json:"widget_ids,omitempty" bson:"widget_ids,omitempty"`
	Current   int      `json:"current,omitempty" bson:"current,omitempty"`

	// splitter fields
	Orientation string    `json:"orientation,omitempty" bson:"orientation,omitempty"`
	Ratios      []float64 `json:"ratios,omitempty" bson:"ratios,omitempty"`
	Children    []*Node   `json:"children,omitempty" bson:"children,omitempty"`
}

// Spec converts the serialized node into a tree-construction spec. The node
// must already be validated; malformed kinds or orientations fail here with
// ErrCorruptLayout as a backstop.
func (n *Node) Spec() (dock.NodeSpec, error) {
	switch n.Kind {
	case KindArea:
		return dock.AreaSpec(n.Current, n.WidgetIDs...), nil
	case KindSplitter:
		o := dock.Horizontal
		switch n.Orientation {
		case OrientHorizontal:
		case OrientVertical:
			o = dock.Vertical
		default:
			return dock.NodeSpec{}, fmt.Errorf("orientation %q: %w", n.Orientation, ErrCorruptLayout)
		}
		children := make([]dock.NodeSpec, len(n.Children))
		for i, c := range n.Children {
			spec, err := c.Spec()
			if err != nil {
				return dock.NodeSpec{}, err
			}
			children[i] = spec
		}
		return dock.SplitterSpec(o, n.Ratios, children...), nil
	}
	return dock.NodeSpec{}, fmt.Errorf("node kind %q: %w", n.Kind, ErrCorruptLayout)
}

// Validate checks the document's structure without touching live state: a
// main container first, floating containers after it, well-formed trees, and
// no widget mentioned twice anywhere in the document.
func (d *Document) Validate() error {
	if len(d.Containers) == 0 {
		return fmt.Errorf("document has no containers: %w", ErrCorruptLayout)
	}
	for i, c := range d.Containers {
		if i == 0 && c.Floating {
			return fmt.Errorf("first container is floating: %w", ErrCorruptLayout)
		}
		if i > 0 && !c.Floating {
			return fmt.Errorf("container %d: secondary container is not floating: %w", i, ErrCorruptLayout)
		}
		if i > 0 && c.Root == nil {
			return fmt.Errorf("container %d: floating container is empty: %w", i, ErrCorruptLayout)
		}
	}
	seen := make(map[string]bool)
	for i, c := range d.Containers {
		if c.Root == nil {
			continue
		}
		if err := validateNode(c.Root, "", seen); err != nil {
			return fmt.Errorf("container %d: %w", i, err)
		}
	}
	for _, id := range d.Closed {
		if id == "" {
			return fmt.Errorf("closed list contains empty widget ID: %w", ErrCorruptLayout)
		}
		if seen[id] {
			return fmt.Errorf("widget %q is both docked and closed: %w", id, ErrCorruptLayout)
		}
		seen[id] = true
	}
	return nil
}

// validateNode checks one subtree. parentOrient carries the enclosing
// splitter's orientation to reject same-orientation nesting.
func validateNode(n *Node, parentOrient string, seen map[string]bool) error {
	switch n.Kind {
	case KindArea:
		if len(n.WidgetIDs) == 0 {
			return fmt.Errorf("empty area: %w", ErrCorruptLayout)
		}
		if n.Current < 0 || n.Current >= len(n.WidgetIDs) {
			return fmt.Errorf("current index %d out of range for %d tabs: %w", n.Current, len(n.WidgetIDs), ErrCorruptLayout)
		}
		for _, id := range n.WidgetIDs {
			if id == "" {
				return fmt.Errorf("empty widget ID: %w", ErrCorruptLayout)
			}
			if seen[id] {
				return fmt.Errorf("widget %q appears twice: %w", id, ErrCorruptLayout)
			}
			seen[id] = true
		}
	case KindSplitter:
		if n.Orientation != OrientHorizontal && n.Orientation != OrientVertical {
			return fmt.Errorf("orientation %q: %w", n.Orientation, ErrCorruptLayout)
		}
		if n.Orientation == parentOrient {
			return fmt.Errorf("nested %s splitters: %w", n.Orientation, ErrCorruptLayout)
		}
		if len(n.Children) < 2 {
			return fmt.Errorf("splitter with %d children: %w", len(n.Children), ErrCorruptLayout)
		}
		if len(n.Ratios) != len(n.Children) {
			return fmt.Errorf("%d ratios for %d children: %w", len(n.Ratios), len(n.Children), ErrCorruptLayout)
		}
		for _, r := range n.Ratios {
			if r < 0 {
				return fmt.Errorf("negative ratio %v: %w", r, ErrCorruptLayout)
			}
		}
		for _, c := range n.Children {
			if c == nil {
				return fmt.Errorf("nil splitter child: %w", ErrCorruptLayout)
			}
			if err := validateNode(c, n.Orientation, seen); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("node kind %q: %w", n.Kind, ErrCorruptLayout)
	}
	return nil
}

// WidgetIDs returns every docked widget ID mentioned by the document, in
// tree order across containers. Closed widgets are not included.
func (d *Document) WidgetIDs() []string {
	var ids []string
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		ids = append(ids, n.WidgetIDs...)
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, c := range d.Containers {
		walk(c.Root)
	}
	return ids
}
