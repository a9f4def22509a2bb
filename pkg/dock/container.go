package dock

// Visibility is the window-level visibility of a container.
type Visibility int

const (
	// Shown means the container's window is visible on screen.
	Shown Visibility = iota
	// Hidden means the window exists but is not currently shown.
	Hidden
	// Closed means the window has been closed by the user.
	Closed
)

// String returns the lower-case visibility name.
func (v Visibility) String() string {
	switch v {
	case Shown:
		return "shown"
	case Hidden:
		return "hidden"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// Container is one top-level window owning a layout tree: the main window
// or a floating window. Floating containers are created when an area is
// dragged out over empty space and destroyed when their tree becomes empty;
// the main container lives for the whole session.
type Container struct {
	ID         string // unique container identifier, "" only before adoption
	Tree       *Tree
	Geometry   Rect // screen geometry (position + size)
	Visibility Visibility
	Floating   bool
}

// AreaAt returns the innermost area under p, or InvalidNode when p is
// outside every area of this container.
func (c *Container) AreaAt(p Point) NodeID {
	return c.Tree.AreaAt(p)
}

// ContainsPoint reports whether p lies inside the container's window.
func (c *Container) ContainsPoint(p Point) bool {
	return c.Geometry.Contains(p)
}
