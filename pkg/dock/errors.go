package dock

import "errors"

var (
	// ErrNotFound is returned when an operation references a widget or area
	// that is not part of any live tree. Callers are expected to treat this
	// as recoverable and no-op.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTarget is returned when a target node reference belongs to a
	// foreign or stale tree, or names a node of the wrong kind (e.g. a
	// splitter where an area is required). Recoverable.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrInvariant is returned when a structural invariant would be violated.
	// This is a programming error in the engine, not bad user input: the
	// mutating call aborts without partial effect.
	ErrInvariant = errors.New("invariant violation")

	// ErrDuplicateWidget is returned by [Registry.Register] when a widget
	// with the same identifier is already registered. Widget identifiers are
	// unique across the whole running system.
	ErrDuplicateWidget = errors.New("duplicate widget ID")

	// ErrInvalidWidgetID is returned by [Registry.Register] when the widget
	// identifier is empty.
	ErrInvalidWidgetID = errors.New("widget ID must not be empty")

	// ErrNotFloatable is returned when a detach is requested for an area
	// containing a widget without the Floatable feature.
	ErrNotFloatable = errors.New("widget is not floatable")

	// ErrNotClosable is returned when a close is requested for a widget
	// without the Closable feature.
	ErrNotClosable = errors.New("widget is not closable")
)
