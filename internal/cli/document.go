package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/dockyard/pkg/dock"
	apperrors "github.com/matzehuels/dockyard/pkg/errors"
	"github.com/matzehuels/dockyard/pkg/persist"
	"github.com/matzehuels/dockyard/pkg/store"
)

// loadDocument fetches and parses a named layout from the store.
func loadDocument(ctx context.Context, st store.Store, name string) (*persist.Document, error) {
	if err := apperrors.ValidateLayoutName(name); err != nil {
		return nil, err
	}
	data, ok, err := st.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load layout %q: %w", name, err)
	}
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeLayoutNotFound, "layout %q not found", name)
	}
	return persist.Unmarshal(data)
}

// containersFromDocument materializes a layout document into containers,
// backed by a registry synthesized from the document's widget IDs. This is
// enough structure for inspection and rendering; widget content stays nil.
func containersFromDocument(doc *persist.Document) ([]*dock.Container, *dock.Registry, error) {
	reg := dock.NewRegistry()
	for _, id := range doc.WidgetIDs() {
		if err := reg.Register(dock.NewWidget(id, id, nil)); err != nil {
			return nil, nil, err
		}
	}

	containers := make([]*dock.Container, 0, len(doc.Containers))
	for i, pc := range doc.Containers {
		c := &dock.Container{
			ID:         "main",
			Tree:       dock.NewTree(),
			Geometry:   pc.Geometry.Rect(),
			Visibility: dock.Shown,
			Floating:   pc.Floating,
		}
		if pc.Floating {
			c.ID = fmt.Sprintf("float-%d", i)
		}
		if pc.Root != nil {
			spec, err := pc.Root.Spec()
			if err != nil {
				return nil, nil, err
			}
			if err := c.Tree.BuildRoot(reg, spec); err != nil {
				return nil, nil, err
			}
		}
		g := c.Geometry
		c.Tree.Layout(dock.Rect{W: g.W, H: g.H})
		containers = append(containers, c)
	}
	return containers, reg, nil
}
