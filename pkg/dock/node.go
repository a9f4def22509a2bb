package dock

// NodeID is a stable handle into a tree's node arena. Handles stay valid
// until the node is removed; they are never reused within one tree.
// The zero value is InvalidNode.
type NodeID int

// InvalidNode is the zero NodeID. It is used for "no node" (e.g. the parent
// of the root, or the root of an empty tree).
const InvalidNode NodeID = 0

// NodeKind distinguishes the two layout element variants.
type NodeKind int

const (
	// NodeArea is a tabbed container holding an ordered sequence of widgets.
	NodeArea NodeKind = iota + 1
	// NodeSplitter is an internal node laying out children side by side.
	NodeSplitter
)

// String returns the lower-case kind name.
func (k NodeKind) String() string {
	switch k {
	case NodeArea:
		return "area"
	case NodeSplitter:
		return "splitter"
	}
	return "unknown"
}

// Orientation is the layout axis of a splitter.
type Orientation int

const (
	// Horizontal lays children out left to right.
	Horizontal Orientation = iota
	// Vertical lays children out top to bottom.
	Vertical
)

// String returns the lower-case orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Direction names the side of a target an insertion lands on.
type Direction int

const (
	// Left places the new element to the left of the target.
	Left Direction = iota
	// Right places the new element to the right of the target.
	Right
	// Top places the new element above the target.
	Top
	// Bottom places the new element below the target.
	Bottom
)

// Orientation returns the splitter orientation an insertion in this
// direction requires: left/right need a horizontal splitter, top/bottom a
// vertical one.
func (d Direction) Orientation() Orientation {
	if d == Top || d == Bottom {
		return Vertical
	}
	return Horizontal
}

// Append reports whether the insertion lands after the target in child
// order (right or bottom) rather than before it (left or top).
func (d Direction) Append() bool { return d == Right || d == Bottom }

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

// node is the arena entry backing both layout element variants. Which fields
// are meaningful depends on kind; algorithms switch exhaustively on it.
type node struct {
	id     NodeID
	parent NodeID // InvalidNode for the root
	kind   NodeKind
	rect   Rect // last-computed screen geometry

	// area fields
	widgets []string // ordered widget IDs (tab order)
	current int      // active tab index, valid while widgets is non-empty

	// splitter fields
	orientation Orientation
	children    []NodeID
	ratios      []float64 // parallel to children, raw (normalized on read)
}
