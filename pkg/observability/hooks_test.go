package observability

import (
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	// Layout hooks
	l := NoopLayoutHooks{}
	l.OnLayoutStart(7, 3)
	l.OnPlacementComplete(3, 0.5, time.Second)
	l.OnRefineComplete(3, 0.01, time.Second)
	l.OnLayoutComplete(7, time.Second, nil)

	// Label hooks
	b := NoopLabelHooks{}
	b.OnAnchorStart("A,B")
	b.OnAnchorComplete("A,B", false, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Layout() should return NoopLayoutHooks by default")
	}
	if _, ok := Label().(NoopLabelHooks); !ok {
		t.Error("Label() should return NoopLabelHooks by default")
	}

	// Set custom hooks
	customLayout := &testLayoutHooks{}
	SetLayoutHooks(customLayout)
	if Layout() != customLayout {
		t.Error("SetLayoutHooks should set custom hooks")
	}

	customLabel := &testLabelHooks{}
	SetLabelHooks(customLabel)
	if Label() != customLabel {
		t.Error("SetLabelHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Reset() should restore NoopLayoutHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testLayoutHooks{}
	SetLayoutHooks(custom)

	// Setting nil should be ignored
	SetLayoutHooks(nil)

	if Layout() != custom {
		t.Error("SetLayoutHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testLayoutHooks struct{ NoopLayoutHooks }
type testLabelHooks struct{ NoopLabelHooks }
