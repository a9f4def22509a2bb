package docking

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/dockyard/pkg/dock"
	"github.com/matzehuels/dockyard/pkg/dock/dropzone"
	"github.com/matzehuels/dockyard/pkg/store"
)

// Default container dimensions.
const (
	// DefaultWidth is the default main container width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default main container height in pixels.
	DefaultHeight = 600.0

	// DefaultFloatWidth is the default width of a freshly detached
	// floating container.
	DefaultFloatWidth = 320.0

	// DefaultFloatHeight is the default height of a freshly detached
	// floating container.
	DefaultFloatHeight = 240.0
)

// MainContainerID is the fixed identifier of the main container. Floating
// containers get generated UUIDs.
const MainContainerID = "main"

// Manager is the session-level docking engine: one main container, a stack
// of floating containers, the widget registry, and the drag state machine.
//
// The Manager is single-threaded by design. The host event loop serializes
// all calls; there is no internal locking.
type Manager struct {
	Store  store.Store
	Logger *log.Logger

	registry *dock.Registry
	main     *dock.Container
	floating []*dock.Container // topmost first
	dropCfg  dropzone.Config
	drag     dragGesture
	onChange func()
}

// NewManager creates a manager with an empty main container.
// If st is nil, a NullStore is used (persistence disabled).
// If logger is nil, the default logger is used.
func NewManager(st store.Store, logger *log.Logger) *Manager {
	if st == nil {
		st = store.NewNullStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		Store:    st,
		Logger:   logger,
		registry: dock.NewRegistry(),
		main: &dock.Container{
			ID:       MainContainerID,
			Tree:     dock.NewTree(),
			Geometry: dock.Rect{W: DefaultWidth, H: DefaultHeight},
		},
		dropCfg: dropzone.DefaultConfig(),
	}
}

// Registry returns the widget registry.
func (m *Manager) Registry() *dock.Registry { return m.registry }

// Main returns the main container.
func (m *Manager) Main() *dock.Container { return m.main }

// Floating returns the floating containers, topmost first.
func (m *Manager) Floating() []*dock.Container {
	return slices.Clone(m.floating)
}

// Containers returns every container in drop-resolution order: floating
// containers topmost first, then the main container.
func (m *Manager) Containers() []*dock.Container {
	out := slices.Clone(m.floating)
	return append(out, m.main)
}

// SetDropConfig replaces the drop-zone thresholds used during drags.
func (m *Manager) SetDropConfig(cfg dropzone.Config) { m.dropCfg = cfg }

// SetOnChange registers a callback fired once after every layout mutation.
// Hosts use it to trigger a repaint.
func (m *Manager) SetOnChange(fn func()) { m.onChange = fn }

func (m *Manager) changed() {
	if m.onChange != nil {
		m.onChange()
	}
}

// RegisterWidget adds a widget to the registry in hidden state. The widget
// shows up on screen only once it is docked or opened.
func (m *Manager) RegisterWidget(w *dock.Widget) error {
	return m.registry.Register(w)
}

// UnregisterWidget removes a widget from the whole system, undocking it
// first if needed, and returns it.
func (m *Manager) UnregisterWidget(id string) (*dock.Widget, error) {
	if loc, ok := m.registry.Location(id); ok {
		if err := loc.Tree.RemoveWidget(m.registry, id); err != nil {
			return nil, err
		}
		m.pruneFloating()
	}
	w, err := m.registry.Unregister(id)
	if err != nil {
		return nil, err
	}
	m.relayout()
	m.changed()
	return w, nil
}

// AddWidget docks a registered widget along the main container's edge in
// the given direction. Returns the handle of the new area.
func (m *Manager) AddWidget(id string, dir dock.Direction) (dock.NodeID, error) {
	area, err := m.main.Tree.DockRoot(m.registry, id, dir)
	if err != nil {
		return dock.InvalidNode, err
	}
	m.relayout()
	m.refreshStates()
	m.changed()
	return area, nil
}

// SplitWidget docks a registered widget beside an existing area of the main
// container, splitting it in the given direction.
func (m *Manager) SplitWidget(id string, target dock.NodeID, dir dock.Direction) (dock.NodeID, error) {
	area, err := m.main.Tree.SplitArea(m.registry, target, id, dir)
	if err != nil {
		return dock.InvalidNode, err
	}
	m.relayout()
	m.refreshStates()
	m.changed()
	return area, nil
}

// TabifyWidget docks a registered widget as a tab of an existing main
// container area at the given index.
func (m *Manager) TabifyWidget(id string, target dock.NodeID, index int) error {
	if err := m.main.Tree.InsertWidget(m.registry, id, target, index); err != nil {
		return err
	}
	m.refreshStates()
	m.changed()
	return nil
}

// ActivateWidget raises a docked widget's tab to the front of its area.
func (m *Manager) ActivateWidget(id string) error {
	loc, ok := m.registry.Location(id)
	if !ok {
		return fmt.Errorf("widget %q: %w", id, dock.ErrNotFound)
	}
	_, index, ok := loc.Tree.FindWidget(id)
	if !ok {
		return fmt.Errorf("registry desync for widget %q: %w", id, dock.ErrInvariant)
	}
	if err := loc.Tree.SetCurrentIndex(loc.Area, index); err != nil {
		return err
	}
	m.changed()
	return nil
}

// CurrentArea reports the container and area a widget is docked in.
// Returns ErrNotFound for unregistered or hidden widgets.
func (m *Manager) CurrentArea(id string) (*dock.Container, dock.NodeID, error) {
	loc, ok := m.registry.Location(id)
	if !ok {
		return nil, dock.InvalidNode, fmt.Errorf("widget %q: %w", id, dock.ErrNotFound)
	}
	for _, c := range m.Containers() {
		if c.Tree == loc.Tree {
			return c, loc.Area, nil
		}
	}
	return nil, dock.InvalidNode, fmt.Errorf("registry desync for widget %q: %w", id, dock.ErrInvariant)
}

// CloseWidget removes a widget from its area, hiding it. The widget stays
// registered and can be reopened later. Closing requires the Closable
// feature; closing an already-hidden widget is a no-op.
func (m *Manager) CloseWidget(id string) error {
	w, ok := m.registry.Widget(id)
	if !ok {
		return fmt.Errorf("widget %q: %w", id, dock.ErrNotFound)
	}
	if !w.Features.Has(dock.Closable) {
		return fmt.Errorf("widget %q: %w", id, dock.ErrNotClosable)
	}
	loc, ok := m.registry.Location(id)
	if !ok {
		return nil
	}
	if err := loc.Tree.RemoveWidget(m.registry, id); err != nil {
		return err
	}
	m.pruneFloating()
	m.relayout()
	m.changed()
	return nil
}

// OpenWidget makes a widget visible: a hidden widget is docked along the
// main container's edge in the given direction, a docked one has its tab
// activated.
func (m *Manager) OpenWidget(id string, dir dock.Direction) error {
	if _, docked := m.registry.Location(id); docked {
		return m.ActivateWidget(id)
	}
	_, err := m.AddWidget(id, dir)
	return err
}

// ClosedWidgets returns the IDs of registered widgets that are not docked
// anywhere, in sorted order.
func (m *Manager) ClosedWidgets() []string {
	var out []string
	for _, id := range m.registry.IDs() {
		if _, docked := m.registry.Location(id); !docked {
			out = append(out, id)
		}
	}
	return out
}

// DetachWidget pulls a widget out of its area into a new floating container
// positioned at the given point. Requires the Floatable feature. A hidden
// widget floats directly without being docked first.
func (m *Manager) DetachWidget(id string, at dock.Point) (*dock.Container, error) {
	w, ok := m.registry.Widget(id)
	if !ok {
		return nil, fmt.Errorf("widget %q: %w", id, dock.ErrNotFound)
	}
	if !w.Features.Has(dock.Floatable) {
		return nil, fmt.Errorf("widget %q: %w", id, dock.ErrNotFloatable)
	}
	if loc, docked := m.registry.Location(id); docked {
		if err := loc.Tree.RemoveWidget(m.registry, id); err != nil {
			return nil, err
		}
	}
	c := m.newFloatingContainer(at)
	if _, err := c.Tree.DockRoot(m.registry, id, dock.Left); err != nil {
		return nil, err
	}
	m.pruneFloating()
	m.relayout()
	m.refreshStates()
	m.changed()
	m.Logger.Info("detached widget", "widget", id, "container", c.ID)
	return c, nil
}

// DetachArea pulls a whole area of a container, with all its tabs, into a
// new floating container at the given point. Node handles are scoped to
// their tree, so the source container is named explicitly; it must belong
// to this manager. Every widget in the area must be Floatable. Detaching
// the only area of a splitter collapses the splitter in the source tree,
// and a floating container emptied by the detach is destroyed.
func (m *Manager) DetachArea(src *dock.Container, area dock.NodeID, at dock.Point) (*dock.Container, error) {
	if src == nil || !m.owns(src) {
		return nil, fmt.Errorf("foreign container: %w", dock.ErrInvalidTarget)
	}
	widgets := src.Tree.Widgets(area)
	if widgets == nil {
		return nil, fmt.Errorf("node %d: %w", area, dock.ErrInvalidTarget)
	}
	for _, id := range widgets {
		w, ok := m.registry.Widget(id)
		if !ok || !w.Features.Has(dock.Floatable) {
			return nil, fmt.Errorf("widget %q: %w", id, dock.ErrNotFloatable)
		}
	}
	c := m.newFloatingContainer(at)
	if err := src.Tree.MoveArea(m.registry, area, c.Tree, dock.InvalidNode, dock.Left); err != nil {
		m.dropFloating(c)
		return nil, err
	}
	m.pruneFloating()
	m.relayout()
	m.refreshStates()
	m.changed()
	m.Logger.Info("detached area", "widgets", len(widgets), "container", c.ID)
	return c, nil
}

// owns reports whether c is one of this manager's containers.
func (m *Manager) owns(c *dock.Container) bool {
	for _, have := range m.Containers() {
		if have == c {
			return true
		}
	}
	return false
}

// ReattachContainer merges a floating container back into the main
// container along its edge in the given direction, then destroys it.
func (m *Manager) ReattachContainer(id string, dir dock.Direction) error {
	c := m.floatingByID(id)
	if c == nil {
		return fmt.Errorf("container %q: %w", id, dock.ErrNotFound)
	}
	if err := m.main.Tree.MergeTreeRoot(m.registry, c.Tree, dir); err != nil {
		return err
	}
	m.dropFloating(c)
	m.relayout()
	m.refreshStates()
	m.changed()
	return nil
}

// CloseContainer closes a floating container, hiding all its widgets.
func (m *Manager) CloseContainer(id string) error {
	c := m.floatingByID(id)
	if c == nil {
		return fmt.Errorf("container %q: %w", id, dock.ErrNotFound)
	}
	c.Tree.Reset(m.registry)
	m.dropFloating(c)
	m.changed()
	return nil
}

// RaiseContainer moves a floating container to the top of the stack, so it
// wins drop resolution over the containers it overlaps.
func (m *Manager) RaiseContainer(id string) error {
	for i, c := range m.floating {
		if c.ID == id {
			m.floating = slices.Delete(m.floating, i, i+1)
			m.floating = slices.Insert(m.floating, 0, c)
			return nil
		}
	}
	return fmt.Errorf("container %q: %w", id, dock.ErrNotFound)
}

// MoveContainer updates a container's screen geometry and recomputes its
// area rectangles. Hosts call this when the user moves or resizes windows.
func (m *Manager) MoveContainer(id string, geo dock.Rect) error {
	var c *dock.Container
	if id == m.main.ID {
		c = m.main
	} else if c = m.floatingByID(id); c == nil {
		return fmt.Errorf("container %q: %w", id, dock.ErrNotFound)
	}
	c.Geometry = geo
	c.Tree.Layout(geo)
	m.changed()
	return nil
}

// newFloatingContainer allocates a floating container at the given point
// and pushes it on top of the stack.
func (m *Manager) newFloatingContainer(at dock.Point) *dock.Container {
	c := &dock.Container{
		ID:       uuid.NewString(),
		Tree:     dock.NewTree(),
		Geometry: dock.Rect{X: at.X, Y: at.Y, W: DefaultFloatWidth, H: DefaultFloatHeight},
		Floating: true,
	}
	m.floating = slices.Insert(m.floating, 0, c)
	return c
}

func (m *Manager) floatingByID(id string) *dock.Container {
	for _, c := range m.floating {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (m *Manager) dropFloating(c *dock.Container) {
	if i := slices.Index(m.floating, c); i >= 0 {
		m.floating = slices.Delete(m.floating, i, i+1)
	}
}

// pruneFloating destroys floating containers whose trees became empty.
func (m *Manager) pruneFloating() {
	m.floating = slices.DeleteFunc(m.floating, func(c *dock.Container) bool {
		return c.Tree.Empty()
	})
}

// relayout recomputes area rectangles for every container.
func (m *Manager) relayout() {
	m.main.Tree.Layout(m.main.Geometry)
	for _, c := range m.floating {
		c.Tree.Layout(c.Geometry)
	}
}

// refreshStates syncs widget states with container kinds: widgets in
// floating trees are StateFloating, widgets in the main tree StateDocked.
func (m *Manager) refreshStates() {
	for _, id := range m.registry.IDs() {
		w, _ := m.registry.Widget(id)
		loc, docked := m.registry.Location(id)
		switch {
		case !docked:
			w.State = dock.StateHidden
		case loc.Tree == m.main.Tree:
			w.State = dock.StateDocked
		default:
			w.State = dock.StateFloating
		}
	}
}
