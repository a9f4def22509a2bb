package dock

// Feature flags describe what the user may do with a dock widget.
type Feature int

const (
	// Closable allows the widget to be closed (hidden) by the user.
	Closable Feature = 1 << iota
	// Movable allows the widget to be dragged to a different area.
	Movable
	// Floatable allows the widget to be detached into a floating container.
	Floatable

	// AllFeatures is the default feature set for new widgets.
	AllFeatures = Closable | Movable | Floatable
	// NoFeatures pins a widget in place permanently.
	NoFeatures Feature = 0
)

// Has reports whether all bits of want are set.
func (f Feature) Has(want Feature) bool { return f&want == want }

// WidgetState describes where a widget currently lives.
type WidgetState int

const (
	// StateHidden means the widget is registered but not part of any tree.
	StateHidden WidgetState = iota
	// StateDocked means the widget is a tab in some area of a docked container.
	StateDocked
	// StateFloating means the widget lives in a floating container's tree.
	StateFloating
)

// String returns the lower-case state name.
func (s WidgetState) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateDocked:
		return "docked"
	case StateFloating:
		return "floating"
	}
	return "unknown"
}

// Widget is a leaf content holder in the docking system. The engine owns the
// widget's placement (which area, which tab) but never its content: Content
// is an opaque handle painted by the host toolkit.
//
// A widget is owned by exactly one area at a time, or by no area while
// hidden. Identifiers are unique across the whole running system.
type Widget struct {
	ID       string      // unique identifier, stable across save/restore
	Title    string      // display title shown in the tab
	Content  any         // opaque content handle, referenced not owned
	Features Feature     // capability flags
	State    WidgetState // current visibility state, maintained by the engine
}

// NewWidget creates a widget with all features enabled.
func NewWidget(id, title string, content any) *Widget {
	return &Widget{
		ID:       id,
		Title:    title,
		Content:  content,
		Features: AllFeatures,
	}
}
