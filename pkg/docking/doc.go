// Package docking provides the session-level docking manager.
//
// The manager ties the pieces of the engine together: the widget registry,
// the main container, floating containers, drag-and-drop gestures, and
// layout persistence. Hosts drive it from their event loop and read the
// resulting trees back for painting.
//
// # Architecture
//
// The manager owns one main container for the lifetime of the session and a
// stack of floating containers ordered topmost first. All mutations funnel
// through manager methods, which keep widget states, container lifecycles,
// and geometry in sync and fire a single change notification per operation.
//
// Drag-and-drop is a two-phase gesture: StartDrag begins tracking a widget
// or floating container, DragMove resolves an advisory drop plan for
// overlay feedback, and Drop commits the resolved plan (or detaches the
// widget into a new floating container when the pointer misses every drop
// target). Nothing mutates until Drop.
//
// Layouts save to a versioned document and restore with validate-then-swap
// semantics: a restore either succeeds completely or leaves the current
// layout untouched. Named layouts (perspectives) persist through a
// [store.Store].
package docking
