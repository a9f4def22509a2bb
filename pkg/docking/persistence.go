package docking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/dockyard/pkg/dock"
	"github.com/matzehuels/dockyard/pkg/observability"
	"github.com/matzehuels/dockyard/pkg/persist"
)

// Save serializes the complete session layout: the main container, every
// floating container, and the set of closed widgets.
func (m *Manager) Save(ctx context.Context) ([]byte, error) {
	containers := append([]*dock.Container{m.main}, m.floating...)
	doc := persist.Snapshot(containers, m.ClosedWidgets())
	data, err := persist.Marshal(doc)
	observability.Layout().OnSave(ctx, len(data), err)
	if err != nil {
		return nil, err
	}
	m.Logger.Info("saved layout",
		"containers", len(doc.Containers),
		"widgets", len(doc.WidgetIDs()),
		"bytes", len(data))
	return data, nil
}

// CheckFormat reports whether data is a loadable layout document without
// touching the current layout.
func (m *Manager) CheckFormat(data []byte) error {
	return persist.CheckFormat(data)
}

// Restore replaces the current layout with a previously saved one. The
// restore is all-or-nothing: the document is validated and rehearsed
// against a scratch registry first, and the live layout is only torn down
// once the rebuild is known to succeed. Widget IDs in the document that are
// no longer registered are pruned, so restoring a stale layout behaves as
// if those widgets had never been saved. Restoring during a drag gesture
// is rejected.
func (m *Manager) Restore(ctx context.Context, data []byte) error {
	start := time.Now()
	err := m.restore(data)
	count := 0
	if err == nil {
		count = m.main.Tree.WidgetCount()
		for _, c := range m.floating {
			count += c.Tree.WidgetCount()
		}
	}
	observability.Layout().OnRestore(ctx, count, time.Since(start), err)
	if err != nil {
		return err
	}
	m.Logger.Info("restored layout",
		"widgets", count,
		"floating", len(m.floating),
		"duration", time.Since(start))
	return nil
}

func (m *Manager) restore(data []byte) error {
	if m.drag.active {
		return ErrDragActive
	}
	doc, err := persist.Unmarshal(data)
	if err != nil {
		return err
	}
	doc = persist.Prune(doc, func(id string) bool {
		_, ok := m.registry.Widget(id)
		return ok
	})

	// Convert and rehearse against a scratch registry so the live layout is
	// never torn down for a document that cannot be rebuilt.
	specs := make([]*dock.NodeSpec, len(doc.Containers))
	scratch := dock.NewRegistry()
	for _, id := range doc.WidgetIDs() {
		if err := scratch.Register(dock.NewWidget(id, id, nil)); err != nil {
			return fmt.Errorf("%w: %v", persist.ErrCorruptLayout, err)
		}
	}
	for i, c := range doc.Containers {
		if c.Root == nil {
			continue
		}
		spec, err := c.Root.Spec()
		if err != nil {
			return err
		}
		if err := dock.NewTree().BuildRoot(scratch, spec); err != nil {
			return fmt.Errorf("%w: %v", persist.ErrCorruptLayout, err)
		}
		specs[i] = &spec
	}

	// Swap: tear down the old layout and rebuild from the rehearsed specs.
	m.main.Tree.Reset(m.registry)
	for _, c := range m.floating {
		c.Tree.Reset(m.registry)
	}
	m.floating = nil

	for i, rec := range doc.Containers {
		var c *dock.Container
		if i == 0 {
			c = m.main
			if geo := rec.Geometry.Rect(); !geo.Empty() {
				c.Geometry = geo
			}
		} else {
			// Appending keeps the saved stacking order (topmost first).
			c = &dock.Container{
				ID:       uuid.NewString(),
				Tree:     dock.NewTree(),
				Geometry: rec.Geometry.Rect(),
				Floating: true,
			}
			m.floating = append(m.floating, c)
		}
		if specs[i] == nil {
			continue
		}
		if err := c.Tree.BuildRoot(m.registry, *specs[i]); err != nil {
			// Unreachable after the rehearsal above.
			return fmt.Errorf("rebuild container %d: %w", i, err)
		}
	}

	m.relayout()
	m.refreshStates()
	m.changed()
	return nil
}
