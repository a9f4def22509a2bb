package docking

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/matzehuels/dockyard/pkg/dock"
	"github.com/matzehuels/dockyard/pkg/dock/dropzone"
	"github.com/matzehuels/dockyard/pkg/observability"
)

// Drag gesture errors.
var (
	// ErrDragActive is returned when a gesture is started while another is
	// in progress.
	ErrDragActive = errors.New("drag already in progress")

	// ErrNoDrag is returned by move, drop, and cancel outside a gesture.
	ErrNoDrag = errors.New("no drag in progress")

	// ErrNotMovable is returned when a drag is started for a widget without
	// the Movable feature.
	ErrNotMovable = errors.New("widget is not movable")
)

// dragGesture tracks one in-flight drag. The zero value is the idle state.
type dragGesture struct {
	active bool
	item   dropzone.Item
	plan   dropzone.Plan
	planOK bool
}

// Dragging reports whether a drag gesture is in progress.
func (m *Manager) Dragging() bool { return m.drag.active }

// StartDrag begins dragging a widget by its tab. The widget needs the
// Movable feature; its current docking is untouched until Drop.
func (m *Manager) StartDrag(widgetID string) error {
	if m.drag.active {
		return ErrDragActive
	}
	w, ok := m.registry.Widget(widgetID)
	if !ok {
		return fmt.Errorf("widget %q: %w", widgetID, dock.ErrNotFound)
	}
	if !w.Features.Has(dock.Movable) {
		return fmt.Errorf("widget %q: %w", widgetID, ErrNotMovable)
	}

	item := dropzone.Item{WidgetID: widgetID}
	if loc, docked := m.registry.Location(widgetID); docked {
		item.FromTree = loc.Tree
		item.FromArea = loc.Area
	}
	m.drag = dragGesture{active: true, item: item}
	observability.Layout().OnDragStart(context.Background(), widgetID)
	m.Logger.Debug("drag started", "widget", widgetID)
	return nil
}

// StartContainerDrag begins dragging a whole floating container by its
// title bar. The container is raised to the top of the stack.
func (m *Manager) StartContainerDrag(containerID string) error {
	if m.drag.active {
		return ErrDragActive
	}
	c := m.floatingByID(containerID)
	if c == nil {
		return fmt.Errorf("container %q: %w", containerID, dock.ErrNotFound)
	}
	_ = m.RaiseContainer(containerID)
	m.drag = dragGesture{active: true, item: dropzone.Item{Floating: c}}
	observability.Layout().OnDragStart(context.Background(), containerID)
	m.Logger.Debug("container drag started", "container", containerID)
	return nil
}

// DragMove resolves the drop plan for the current pointer position. Hosts
// call this on every pointer move to paint the overlay; it never mutates
// the layout. Outside a gesture it reports no plan.
func (m *Manager) DragMove(p dock.Point) (dropzone.Plan, bool) {
	if !m.drag.active {
		return dropzone.Plan{}, false
	}
	m.drag.plan, m.drag.planOK = dropzone.Resolve(m.dropCfg, m.Containers(), m.drag.item, p)
	return m.drag.plan, m.drag.planOK
}

// DropPlan returns the plan resolved by the last DragMove.
func (m *Manager) DropPlan() (dropzone.Plan, bool) {
	return m.drag.plan, m.drag.planOK
}

// CancelDrag abandons the gesture without mutating anything.
func (m *Manager) CancelDrag() error {
	if !m.drag.active {
		return ErrNoDrag
	}
	id := m.drag.item.WidgetID
	if m.drag.item.Floating != nil {
		id = m.drag.item.Floating.ID
	}
	m.drag = dragGesture{}
	observability.Layout().OnDragCancel(context.Background(), id)
	m.Logger.Debug("drag cancelled", "item", id)
	return nil
}

// Drop ends the gesture at the given pointer position and commits the
// resolved plan. When the pointer misses every drop target, a dragged
// widget detaches into a new floating container at the pointer (if
// Floatable; otherwise the drop is a no-op) and a dragged container simply
// stays where the host moved it.
func (m *Manager) Drop(ctx context.Context, p dock.Point) error {
	if !m.drag.active {
		return ErrNoDrag
	}
	item := m.drag.item
	plan, ok := dropzone.Resolve(m.dropCfg, m.Containers(), item, p)
	m.drag = dragGesture{}

	start := time.Now()
	kind := "none"
	var err error
	switch {
	case ok:
		kind = plan.Kind.String()
		err = m.commit(plan, item)
	case item.WidgetID != "":
		if w, found := m.registry.Widget(item.WidgetID); found && w.Features.Has(dock.Floatable) {
			kind = "detach"
			_, err = m.DetachWidget(item.WidgetID, p)
		}
	}
	observability.Layout().OnDropCommit(ctx, kind, time.Since(start), err)
	if err != nil {
		return err
	}
	if kind != "none" {
		m.Logger.Info("drop committed", "kind", kind, "zone", plan.Zone)
	}
	return nil
}

// commit applies a resolved drop plan to the trees.
func (m *Manager) commit(plan dropzone.Plan, item dropzone.Item) error {
	var err error
	switch plan.Kind {
	case dropzone.TabInsert:
		err = m.commitTabInsert(plan, item)
	case dropzone.SplitTarget:
		err = m.commitSplit(plan, item)
	case dropzone.RootDock:
		err = m.commitRootDock(plan, item)
	default:
		err = fmt.Errorf("drop kind %d: %w", plan.Kind, dock.ErrInvariant)
	}
	if err != nil {
		return err
	}
	m.pruneFloating()
	m.relayout()
	m.refreshStates()
	m.changed()
	return nil
}

func (m *Manager) commitTabInsert(plan dropzone.Plan, item dropzone.Item) error {
	dest := plan.Container.Tree
	if item.Floating != nil {
		return m.mergeContainer(plan, item, dest)
	}

	index := plan.TabIndex
	if item.FromTree == dest && item.FromArea == plan.Target {
		// Reorder within the same tab strip: removing first shifts the
		// insertion slot when the tab came from the left of it.
		tabs := dest.Widgets(plan.Target)
		if i := slices.Index(tabs, item.WidgetID); i >= 0 && i < index {
			index--
		}
	}
	if err := m.undockDragged(item); err != nil {
		return err
	}
	return dest.InsertWidget(m.registry, item.WidgetID, plan.Target, index)
}

func (m *Manager) commitSplit(plan dropzone.Plan, item dropzone.Item) error {
	dest := plan.Container.Tree
	if item.Floating != nil {
		return dest.MergeTree(m.registry, item.Floating.Tree, plan.Target, plan.Direction)
	}
	if err := m.undockDragged(item); err != nil {
		return err
	}
	_, err := dest.SplitArea(m.registry, plan.Target, item.WidgetID, plan.Direction)
	return err
}

func (m *Manager) commitRootDock(plan dropzone.Plan, item dropzone.Item) error {
	dest := plan.Container.Tree
	if item.Floating != nil {
		return dest.MergeTreeRoot(m.registry, item.Floating.Tree, plan.Direction)
	}
	if err := m.undockDragged(item); err != nil {
		return err
	}
	_, err := dest.DockRoot(m.registry, item.WidgetID, plan.Direction)
	return err
}

// mergeContainer merges a dropped floating container into the target area:
// a single-area source contributes its tabs at the drop index, a nested
// source keeps its structure and splits the target instead.
func (m *Manager) mergeContainer(plan dropzone.Plan, item dropzone.Item, dest *dock.Tree) error {
	src := item.Floating.Tree
	root := src.Root()
	if src.Kind(root) != dock.NodeArea {
		return dest.MergeTree(m.registry, src, plan.Target, dock.Right)
	}
	index := plan.TabIndex
	for _, id := range src.Widgets(root) {
		if err := src.RemoveWidget(m.registry, id); err != nil {
			return err
		}
		if err := dest.InsertWidget(m.registry, id, plan.Target, index); err != nil {
			return err
		}
		index++
	}
	return nil
}

// undockDragged removes the dragged widget from its source area, if docked.
func (m *Manager) undockDragged(item dropzone.Item) error {
	if item.WidgetID == "" {
		return nil
	}
	loc, docked := m.registry.Location(item.WidgetID)
	if !docked {
		return nil
	}
	return loc.Tree.RemoveWidget(m.registry, item.WidgetID)
}
