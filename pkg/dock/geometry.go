package dock

// Point is a position in screen space.
// Coordinates are in user units (pixels for GUI hosts, cells for TUI hosts).
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in screen space.
// Every layout node carries a last-computed Rect, refreshed by the host
// whenever the tree's layout changes; the drop resolver hit-tests against it.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether p lies inside the rectangle.
// Points on the left/top edges are inside, points on the right/bottom
// edges are outside, so adjacent rectangles never both claim a point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether the rectangle has no extent.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }
