// Package dock implements the core docking layout model: dock widgets,
// tabbed areas, splitter trees, and the mutation algorithms that keep them
// structurally valid while widgets are inserted, removed, split, and moved.
//
// # Architecture
//
// The package is built around three pieces:
//
//   - Widget: a leaf content holder with a unique identifier, a display
//     title, capability flags, and an opaque content handle owned by the
//     application.
//   - Tree: an arena of layout nodes addressed by stable [NodeID] handles.
//     Each node is either a tabbed area (ordered widget IDs plus the active
//     tab index) or a splitter (orientation, ordered children, size ratios).
//   - Registry: the process-wide widget table mapping identifiers to their
//     owning area and tree. It is passed explicitly to every mutating tree
//     operation so the core stays testable in isolation.
//
// # Invariants
//
// All mutating operations preserve the structural invariants checked by
// [Tree.Validate]:
//
//   - no area is ever empty (empty areas collapse out of their parent)
//   - every splitter has at least two children
//   - no splitter has a child splitter of the same orientation
//   - ratio sequences match child counts and contain no negative values
//   - every docked widget has exactly one registry location
//
// Operations either fully succeed or leave the tree unmodified. Recoverable
// conditions are reported as [ErrNotFound] or [ErrInvalidTarget]; a detected
// invariant violation ([ErrInvariant]) signals a bug in the engine itself.
//
// The package is single-threaded by design: the host event loop serializes
// all mutations, so there is no internal locking.
package dock
