// Package pkg provides the core libraries for Dockyard docking layouts.
//
// # Overview
//
// Dockyard manages dockable widget layouts: tabbed areas arranged in splitter
// trees, floating windows, drag-and-drop rearrangement, and versioned layout
// persistence. The pkg directory is organized into five main areas:
//
//  1. [dock] - Layout engine (trees, areas, splitters, widget registry)
//  2. [dock/dropzone] - Advisory drop-target resolution for drags
//  3. [docking] - Session manager tying containers, drags, and persistence together
//  4. [persist] - Versioned layout documents (JSON on the wire, BSON in Mongo)
//  5. [store] - Pluggable layout stores (file, Redis, MongoDB)
//
// # Architecture
//
// The typical data flow through Dockyard:
//
//	UI events (drag, drop, close, float)
//	         ↓
//	    [docking] package (manager, gesture state, commit)
//	         ↓
//	    [dock] package (tree mutation + invariants)
//	         ↓
//	    [persist] package (snapshot / restore)
//	         ↓
//	    [store] package (named layouts)
//
// # Quick Start
//
// Register widgets, dock them, and save the session:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/dockyard/pkg/dock"
//	    "github.com/matzehuels/dockyard/pkg/docking"
//	)
//
//	mgr := docking.NewManager(nil, nil)
//	_ = mgr.RegisterWidget(dock.NewWidget("editor", "Editor", nil))
//	_ = mgr.RegisterWidget(dock.NewWidget("console", "Console", nil))
//
//	_, _ = mgr.AddWidget("editor", dock.Right)
//	_, _ = mgr.AddWidget("console", dock.Bottom)
//
//	_ = mgr.SavePerspective(context.Background(), "coding")
//
// Drive a drag gesture:
//
//	_ = mgr.StartDrag("console")
//	plan, ok := mgr.DragMove(dock.Point{X: 400, Y: 80})
//	_ = mgr.Drop(context.Background(), dock.Point{X: 400, Y: 80})
//
// # Main Packages
//
// [dock] - The layout engine. Trees of splitters and tabbed areas with
// stable node handles, a widget registry, atomic structural mutations,
// and geometry layout. No I/O and no locking; a tree belongs to one
// goroutine.
//
// [dock/dropzone] - Pure drop-target resolution. Maps a pointer position
// to an advisory plan (tab insert, split, root dock) without mutating
// anything.
//
// [docking] - The session manager. Owns the main container and the
// floating stack, runs the two-phase drag protocol, commits drop plans,
// and restores layouts with validate-then-swap semantics.
//
// [persist] - Layout documents with a format version, structural
// validation, v0 upgrades, and pruning of unknown widgets.
//
// [store] - Named layout storage behind a small interface: file-based
// for the CLI, Redis and MongoDB for shared deployments, a null store
// for tests.
//
// [observability] - Hook interfaces for layout and store events with
// no-op defaults.
//
// [config] - TOML configuration for store backends, drop-zone geometry,
// and the HTTP service.
//
// [render] - Graphviz diagrams of layout trees for debugging and
// documentation.
//
// [errors] - Structured errors with machine-readable codes shared by the
// CLI and the HTTP API.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/dock/...       # Specific package
//	go test -run Example         # Examples only
//
// [dock]: https://pkg.go.dev/github.com/matzehuels/dockyard/pkg/dock
// [dock/dropzone]: https://pkg.go.dev/github.com/matzehuels/dockyard/pkg/dock/dropzone
// [docking]: https://pkg.go.dev/github.com/matzehuels/dockyard/pkg/docking
// [persist]: https://pkg.go.dev/github.com/matzehuels/dockyard/pkg/persist
// [store]: https://pkg.go.dev/github.com/matzehuels/dockyard/pkg/store
// [observability]: https://pkg.go.dev/github.com/matzehuels/dockyard/pkg/observability
// [config]: https://pkg.go.dev/github.com/matzehuels/dockyard/pkg/config
// [render]: https://pkg.go.dev/github.com/matzehuels/dockyard/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/dockyard/pkg/errors
package pkg
