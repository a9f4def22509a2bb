// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout mutations, drag gestures, and store operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnDragStart(ctx, widgetID)
//	// ... drag gesture runs ...
//	observability.Layout().OnDropCommit(ctx, kind, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the docking manager.
type LayoutHooks interface {
	// Drag events
	OnDragStart(ctx context.Context, widgetID string)
	OnDropCommit(ctx context.Context, kind string, duration time.Duration, err error)
	OnDragCancel(ctx context.Context, widgetID string)

	// Persistence events
	OnSave(ctx context.Context, size int, err error)
	OnRestore(ctx context.Context, widgetCount int, duration time.Duration, err error)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from layout store operations.
type StoreHooks interface {
	// OnStoreHit records a successful load of a stored layout.
	OnStoreHit(ctx context.Context, backend string)

	// OnStoreMiss records a lookup of a layout that does not exist.
	OnStoreMiss(ctx context.Context, backend string)

	// OnStoreSet records a layout write.
	OnStoreSet(ctx context.Context, backend string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnDragStart(context.Context, string)                        {}
func (NoopLayoutHooks) OnDropCommit(context.Context, string, time.Duration, error) {}
func (NoopLayoutHooks) OnDragCancel(context.Context, string)                       {}
func (NoopLayoutHooks) OnSave(context.Context, int, error)                         {}
func (NoopLayoutHooks) OnRestore(context.Context, int, time.Duration, error)       {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnStoreHit(context.Context, string)      {}
func (NoopStoreHooks) OnStoreMiss(context.Context, string)     {}
func (NoopStoreHooks) OnStoreSet(context.Context, string, int) {}

// =============================================================================
// Global Registry
// =============================================================================

var (
	mu          sync.RWMutex
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	storeHooks  StoreHooks  = NoopStoreHooks{}
)

// SetLayoutHooks registers layout hooks. Call at startup before use.
// Setting nil is ignored.
func SetLayoutHooks(h LayoutHooks) {
	if h == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	layoutHooks = h
}

// SetStoreHooks registers store hooks. Call at startup before use.
// Setting nil is ignored.
func SetStoreHooks(h StoreHooks) {
	if h == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	storeHooks = h
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	mu.RLock()
	defer mu.RUnlock()
	return layoutHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	mu.RLock()
	defer mu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to no-op implementations. Primarily for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	storeHooks = NoopStoreHooks{}
}
