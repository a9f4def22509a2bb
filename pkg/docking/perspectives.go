package docking

import (
	"context"
	"fmt"
	"slices"

	"github.com/matzehuels/dockyard/pkg/dock"
)

// SessionLayoutName is the reserved perspective name used for the
// autosaved session layout.
const SessionLayoutName = "session"

// SavePerspective stores the current layout under a name.
func (m *Manager) SavePerspective(ctx context.Context, name string) error {
	data, err := m.Save(ctx)
	if err != nil {
		return err
	}
	if err := m.Store.Set(ctx, name, data); err != nil {
		return fmt.Errorf("store perspective %q: %w", name, err)
	}
	return nil
}

// OpenPerspective restores a named layout from the store. Returns
// dock.ErrNotFound if no perspective with that name exists.
func (m *Manager) OpenPerspective(ctx context.Context, name string) error {
	data, ok, err := m.Store.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("load perspective %q: %w", name, err)
	}
	if !ok {
		return fmt.Errorf("perspective %q: %w", name, dock.ErrNotFound)
	}
	return m.Restore(ctx, data)
}

// Perspectives returns the stored perspective names in sorted order.
func (m *Manager) Perspectives(ctx context.Context) ([]string, error) {
	names, err := m.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	slices.Sort(names)
	return names, nil
}

// DeletePerspective removes a named layout from the store.
func (m *Manager) DeletePerspective(ctx context.Context, name string) error {
	return m.Store.Delete(ctx, name)
}
