// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout computation and label placement.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by the caller, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetLabelHooks(&myLabelHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnLayoutStart(regionCount, setCount)
//	// ... solve ...
//	observability.Layout().OnLayoutComplete(regionCount, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the layout solver.
type LayoutHooks interface {
	// OnLayoutStart fires when ComputeLayout begins, after input filtering.
	OnLayoutStart(regionCount, setCount int)

	// OnPlacementComplete fires after initial placement, with the loss of
	// the unrefined layout.
	OnPlacementComplete(setCount int, loss float64, duration time.Duration)

	// OnRefineComplete fires after optimization, with the final loss.
	OnRefineComplete(setCount int, loss float64, duration time.Duration)

	// OnLayoutComplete fires when ComputeLayout returns.
	OnLayoutComplete(regionCount int, duration time.Duration, err error)
}

// =============================================================================
// Label Hooks
// =============================================================================

// LabelHooks receives events from label anchor placement.
type LabelHooks interface {
	// OnAnchorStart fires before a region's anchor point is computed.
	OnAnchorStart(regionKey string)

	// OnAnchorComplete fires after a region's anchor point is computed.
	// disjoint reports that the region had no drawable interior and was
	// assigned the out-of-bounds sentinel.
	OnAnchorComplete(regionKey string, disjoint bool, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(int, int)                          {}
func (NoopLayoutHooks) OnPlacementComplete(int, float64, time.Duration) {}
func (NoopLayoutHooks) OnRefineComplete(int, float64, time.Duration)    {}
func (NoopLayoutHooks) OnLayoutComplete(int, time.Duration, error)      {}

// NoopLabelHooks is a no-op implementation of LabelHooks.
type NoopLabelHooks struct{}

func (NoopLabelHooks) OnAnchorStart(string)                         {}
func (NoopLabelHooks) OnAnchorComplete(string, bool, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	labelHooks  LabelHooks  = NoopLabelHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout computation.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetLabelHooks registers custom label hooks.
// This should be called once at application startup before any label placement.
func SetLabelHooks(h LabelHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		labelHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Label returns the registered label hooks.
func Label() LabelHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return labelHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	labelHooks = NoopLabelHooks{}
}
