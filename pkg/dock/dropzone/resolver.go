package dropzone

import (
	"github.com/matzehuels/dockyard/pkg/dock"
)

// Zone classifies where inside a rectangle the pointer sits.
type Zone int

const (
	// ZoneNone means the pointer misses the rectangle entirely.
	ZoneNone Zone = iota
	// ZoneCenter merges the dragged item as tabs of the target area.
	ZoneCenter
	// ZoneLeft through ZoneBottom split the target in that direction.
	ZoneLeft
	ZoneRight
	ZoneTop
	ZoneBottom
)

// String returns the lower-case zone name.
func (z Zone) String() string {
	switch z {
	case ZoneCenter:
		return "center"
	case ZoneLeft:
		return "left"
	case ZoneRight:
		return "right"
	case ZoneTop:
		return "top"
	case ZoneBottom:
		return "bottom"
	}
	return "none"
}

// Direction maps a directional zone to its split direction.
// Meaningless for ZoneCenter and ZoneNone.
func (z Zone) Direction() dock.Direction {
	switch z {
	case ZoneLeft:
		return dock.Left
	case ZoneRight:
		return dock.Right
	case ZoneTop:
		return dock.Top
	default:
		return dock.Bottom
	}
}

// Kind is the mutation a committed plan applies.
type Kind int

const (
	// TabInsert merges the dragged item into the target area's tab strip.
	TabInsert Kind = iota + 1
	// SplitTarget splits the target area in the plan's direction.
	SplitTarget
	// RootDock splits the whole container root in the plan's direction
	// (container-level outer drop).
	RootDock
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case TabInsert:
		return "tab-insert"
	case SplitTarget:
		return "split"
	case RootDock:
		return "root-dock"
	}
	return "unknown"
}

// Config holds the tunable drop-zone thresholds as fractions of the target
// rectangle's size.
type Config struct {
	// EdgeFraction is the share of each axis that counts as a directional
	// split zone. Defaults to the outer 25%.
	EdgeFraction float64
	// TabStripFraction is the height share at the top of an area treated as
	// the tab strip, where drops merge at a specific tab index.
	TabStripFraction float64
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{EdgeFraction: 0.25, TabStripFraction: 0.12}
}

// Item is the thing being dragged: either a single widget (WidgetID set,
// with its source location) or a whole floating container.
type Item struct {
	WidgetID string          // dragged widget, "" when dragging a container
	FromTree *dock.Tree      // widget's source tree, nil for fresh widgets
	FromArea dock.NodeID     // widget's source area
	Floating *dock.Container // dragged floating container, nil for widgets
}

// Plan describes the mutation a drop commit would apply. It is advisory:
// producing a plan never mutates state.
type Plan struct {
	Container *dock.Container // container receiving the drop
	Target    dock.NodeID     // target area; InvalidNode for RootDock
	Zone      Zone
	Kind      Kind
	Direction dock.Direction // for SplitTarget and RootDock
	TabIndex  int            // insertion index for TabInsert
}

// Resolve computes the drop plan for a pointer position. Containers are
// consulted in the given order, so callers pass floating containers first
// (top-most stacking) and the main container last. The dragged item's own
// floating container is skipped, as are hidden containers.
//
// The second return value is false when no drop target exists at p; on
// release the manager then detaches the dragged item into a new floating
// container at the pointer instead.
func Resolve(cfg Config, containers []*dock.Container, item Item, p dock.Point) (Plan, bool) {
	for _, c := range containers {
		if c == nil || c == item.Floating || c.Visibility != dock.Shown {
			continue
		}
		if !c.ContainsPoint(p) {
			continue
		}
		if area := c.AreaAt(p); area != dock.InvalidNode {
			return resolveArea(cfg, c, area, item, p)
		}
		return resolveOuter(cfg, c, p)
	}
	return Plan{}, false
}

// resolveArea classifies p within the area under the pointer.
func resolveArea(cfg Config, c *dock.Container, area dock.NodeID, item Item, p dock.Point) (Plan, bool) {
	r := c.Tree.Rect(area)
	tabs := len(c.Tree.Widgets(area))

	// The tab strip band merges at a specific index. Dragging a whole
	// container onto the strip behaves like a center merge.
	if item.Floating == nil && p.Y < r.Y+r.H*cfg.TabStripFraction {
		if item.FromTree == c.Tree && item.FromArea == area && tabs == 1 {
			return Plan{}, false // reordering the only tab is a no-op
		}
		return Plan{
			Container: c,
			Target:    area,
			Zone:      ZoneCenter,
			Kind:      TabInsert,
			TabIndex:  tabIndexAt(r, p, tabs),
		}, true
	}

	zone := ClassifyZone(cfg, r, p)
	if zone == ZoneCenter {
		if item.Floating == nil && item.FromTree == c.Tree && item.FromArea == area && tabs == 1 {
			return Plan{}, false // dropping a lone widget back onto its own area
		}
		return Plan{
			Container: c,
			Target:    area,
			Zone:      ZoneCenter,
			Kind:      TabInsert,
			TabIndex:  tabs,
		}, true
	}

	if item.Floating == nil && item.FromTree == c.Tree && item.FromArea == area && tabs == 1 {
		return Plan{}, false // splitting an area against its only widget
	}
	return Plan{
		Container: c,
		Target:    area,
		Zone:      zone,
		Kind:      SplitTarget,
		Direction: zone.Direction(),
	}, true
}

// resolveOuter classifies p against the container window when it misses
// every area: near an edge the whole root is split in that direction, and
// an empty container accepts the drop as its first area.
func resolveOuter(cfg Config, c *dock.Container, p dock.Point) (Plan, bool) {
	if c.Tree.Empty() {
		return Plan{
			Container: c,
			Target:    dock.InvalidNode,
			Zone:      ZoneCenter,
			Kind:      RootDock,
			Direction: dock.Left,
		}, true
	}
	zone := ClassifyZone(cfg, c.Geometry, p)
	if zone == ZoneCenter || zone == ZoneNone {
		return Plan{}, false
	}
	return Plan{
		Container: c,
		Target:    dock.InvalidNode,
		Zone:      zone,
		Kind:      RootDock,
		Direction: zone.Direction(),
	}, true
}

// ClassifyZone classifies p against r using the edge thresholds: the outer
// EdgeFraction of each axis is a directional zone, the remainder is center.
// In corners the closer edge wins; ties go to the horizontal zone.
func ClassifyZone(cfg Config, r dock.Rect, p dock.Point) Zone {
	if !r.Contains(p) {
		return ZoneNone
	}
	relX := (p.X - r.X) / r.W
	relY := (p.Y - r.Y) / r.H

	// Distance to the nearest vertical / horizontal edge, as a fraction.
	dx := min(relX, 1-relX)
	dy := min(relY, 1-relY)

	inX := dx < cfg.EdgeFraction
	inY := dy < cfg.EdgeFraction
	switch {
	case inX && (!inY || dx <= dy):
		if relX < 0.5 {
			return ZoneLeft
		}
		return ZoneRight
	case inY:
		if relY < 0.5 {
			return ZoneTop
		}
		return ZoneBottom
	}
	return ZoneCenter
}

// tabIndexAt maps a pointer position along the tab strip to an insertion
// index in [0, tabs]. Without per-tab geometry the strip is treated as
// tabs+1 evenly sized slots.
func tabIndexAt(r dock.Rect, p dock.Point, tabs int) int {
	if r.W <= 0 || tabs <= 0 {
		return 0
	}
	frac := (p.X - r.X) / r.W
	idx := int(frac * float64(tabs+1))
	return max(0, min(idx, tabs))
}
