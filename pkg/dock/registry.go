package dock

import (
	"fmt"
	"maps"
	"slices"
)

// Location records where a docked widget currently lives.
type Location struct {
	Tree *Tree  // owning tree (main window or a floating container)
	Area NodeID // owning area within that tree
}

// Registry is the process-wide widget table: identifier → widget plus the
// widget's current location for O(1) lookup. It has an explicit lifecycle
// (populated by Register, cleared by Unregister) and is passed by handle to
// every mutating tree operation, which updates the location atomically with
// the corresponding tree mutation.
//
// The zero value is not usable - use [NewRegistry].
type Registry struct {
	widgets   map[string]*Widget
	locations map[string]Location
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		widgets:   make(map[string]*Widget),
		locations: make(map[string]Location),
	}
}

// Register adds a widget to the registry in hidden state.
// Returns ErrInvalidWidgetID for an empty ID and ErrDuplicateWidget if the
// ID is already taken: widget identifiers are unique across the whole
// running system.
func (r *Registry) Register(w *Widget) error {
	if w == nil || w.ID == "" {
		return ErrInvalidWidgetID
	}
	if _, exists := r.widgets[w.ID]; exists {
		return fmt.Errorf("%q: %w", w.ID, ErrDuplicateWidget)
	}
	w.State = StateHidden
	r.widgets[w.ID] = w
	return nil
}

// Unregister removes a widget from the registry and returns it.
// The caller must remove the widget from its tree first; unregistering a
// still-docked widget is an engine bug and reported as ErrInvariant.
func (r *Registry) Unregister(id string) (*Widget, error) {
	w, ok := r.widgets[id]
	if !ok {
		return nil, fmt.Errorf("widget %q: %w", id, ErrNotFound)
	}
	if _, docked := r.locations[id]; docked {
		return nil, fmt.Errorf("unregister docked widget %q: %w", id, ErrInvariant)
	}
	delete(r.widgets, id)
	return w, nil
}

// Widget returns the registered widget for id.
func (r *Registry) Widget(id string) (*Widget, bool) {
	w, ok := r.widgets[id]
	return w, ok
}

// Location returns the current location of a docked widget.
// Hidden widgets have no location.
func (r *Registry) Location(id string) (Location, bool) {
	loc, ok := r.locations[id]
	return loc, ok
}

// IDs returns all registered widget IDs in sorted order.
func (r *Registry) IDs() []string {
	return slices.Sorted(maps.Keys(r.widgets))
}

// Len returns the number of registered widgets.
func (r *Registry) Len() int { return len(r.widgets) }

// setLocation records a widget's new location. Called by tree mutations in
// the same non-suspending call as the structural change.
func (r *Registry) setLocation(id string, t *Tree, area NodeID) {
	r.locations[id] = Location{Tree: t, Area: area}
	if w, ok := r.widgets[id]; ok && w.State == StateHidden {
		w.State = StateDocked
	}
}

// clearLocation removes a widget's location, returning it to hidden state.
func (r *Registry) clearLocation(id string) {
	delete(r.locations, id)
	if w, ok := r.widgets[id]; ok {
		w.State = StateHidden
	}
}
