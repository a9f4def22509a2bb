package dock

import (
	"fmt"
	"slices"
)

// NodeSpec describes a subtree for bulk construction. Restore paths convert
// a validated layout document into specs and build whole trees in one call
// instead of replaying individual mutations.
type NodeSpec struct {
	Kind NodeKind

	// area fields
	Widgets []string
	Current int

	// splitter fields
	Orientation Orientation
	Ratios      []float64
	Children    []NodeSpec
}

// AreaSpec builds a spec for a tabbed area.
func AreaSpec(current int, widgets ...string) NodeSpec {
	return NodeSpec{Kind: NodeArea, Widgets: widgets, Current: current}
}

// SplitterSpec builds a spec for a splitter with the given children.
func SplitterSpec(o Orientation, ratios []float64, children ...NodeSpec) NodeSpec {
	return NodeSpec{Kind: NodeSplitter, Orientation: o, Ratios: ratios, Children: children}
}

// BuildRoot constructs the whole tree from spec. The tree must be empty and
// the spec must satisfy every structural invariant; a violating spec aborts
// with ErrInvariant before any widget location is touched. All widgets named
// by the spec must be registered and undocked; their locations are pointed
// at the new areas.
func (t *Tree) BuildRoot(reg *Registry, spec NodeSpec) error {
	if !t.Empty() {
		return fmt.Errorf("build into non-empty tree: %w", ErrInvariant)
	}
	if err := checkSpec(reg, spec, nil); err != nil {
		return err
	}
	t.root = t.buildNode(reg, spec, InvalidNode)
	return nil
}

// checkSpec validates a spec without mutating anything. seen accumulates
// widget IDs across the whole spec to reject duplicates.
func checkSpec(reg *Registry, spec NodeSpec, seen map[string]bool) error {
	if seen == nil {
		seen = make(map[string]bool)
	}
	switch spec.Kind {
	case NodeArea:
		if len(spec.Widgets) == 0 {
			return fmt.Errorf("spec area is empty: %w", ErrInvariant)
		}
		if spec.Current < 0 || spec.Current >= len(spec.Widgets) {
			return fmt.Errorf("spec current index %d out of range: %w", spec.Current, ErrInvariant)
		}
		for _, id := range spec.Widgets {
			if seen[id] {
				return fmt.Errorf("widget %q appears twice in spec: %w", id, ErrInvariant)
			}
			seen[id] = true
			if _, ok := reg.Widget(id); !ok {
				return fmt.Errorf("widget %q: %w", id, ErrNotFound)
			}
			if _, docked := reg.Location(id); docked {
				return fmt.Errorf("widget %q already docked: %w", id, ErrInvariant)
			}
		}
	case NodeSplitter:
		if len(spec.Children) < 2 {
			return fmt.Errorf("spec splitter has %d children: %w", len(spec.Children), ErrInvariant)
		}
		if len(spec.Ratios) != len(spec.Children) {
			return fmt.Errorf("spec ratio count %d for %d children: %w", len(spec.Ratios), len(spec.Children), ErrInvariant)
		}
		for _, r := range spec.Ratios {
			if r < 0 {
				return fmt.Errorf("spec negative ratio %v: %w", r, ErrInvariant)
			}
		}
		for _, c := range spec.Children {
			if c.Kind == NodeSplitter && c.Orientation == spec.Orientation {
				return fmt.Errorf("spec nests same-orientation splitters: %w", ErrInvariant)
			}
			if err := checkSpec(reg, c, seen); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("spec kind %d: %w", spec.Kind, ErrInvariant)
	}
	return nil
}

// buildNode allocates the subtree for spec. The spec is already validated.
func (t *Tree) buildNode(reg *Registry, spec NodeSpec, parent NodeID) NodeID {
	n := t.alloc(spec.Kind)
	n.parent = parent
	switch spec.Kind {
	case NodeArea:
		n.widgets = slices.Clone(spec.Widgets)
		n.current = spec.Current
		for _, id := range n.widgets {
			reg.setLocation(id, t, n.id)
		}
	case NodeSplitter:
		n.orientation = spec.Orientation
		n.ratios = normalized(spec.Ratios)
		n.children = make([]NodeID, len(spec.Children))
		for i, c := range spec.Children {
			n.children[i] = t.buildNode(reg, c, n.id)
		}
	}
	return n.id
}
