package animation

import (
	"testing"
	"time"

	"github.com/go-drift/observe/pkg/observetest"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	c, err := NewController(100 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func TestControllerStartsDismissed(t *testing.T) {
	c := newTestController(t)
	if c.Status() != Dismissed {
		t.Errorf("Status = %v, want %v", c.Status(), Dismissed)
	}
	if c.Value() != 0 {
		t.Errorf("Value = %v, want 0", c.Value())
	}
}

func TestForwardRunNotifiesAndCompletes(t *testing.T) {
	c := newTestController(t)

	j := observetest.NewJournal()
	c.Bind("value", j.Method("value", false))
	c.Bind("on_complete", j.Method("complete", false))

	c.PlayForward()
	if !c.IsAnimating() {
		t.Fatal("controller should be animating after PlayForward")
	}

	c.Tick(50 * time.Millisecond)
	if got := c.Value(); got != 0.5 {
		t.Errorf("Value at half run = %v, want 0.5", got)
	}

	c.Tick(50 * time.Millisecond)
	if c.Status() != Completed {
		t.Errorf("Status = %v, want %v", c.Status(), Completed)
	}

	names := j.Names()
	if len(names) != 3 || names[0] != "value" || names[1] != "value" || names[2] != "complete" {
		t.Errorf("journal = %v, want [value value complete]", names)
	}
}

func TestReverseRunDismisses(t *testing.T) {
	c := newTestController(t)
	c.PlayForward()
	c.Tick(100 * time.Millisecond)

	j := observetest.NewJournal()
	c.Bind("on_dismiss", j.Method("dismiss", false))

	c.PlayReverse()
	c.Tick(100 * time.Millisecond)

	if c.Status() != Dismissed {
		t.Errorf("Status = %v, want %v", c.Status(), Dismissed)
	}
	if c.Value() != 0 {
		t.Errorf("Value = %v, want 0", c.Value())
	}
	if j.Len() != 1 {
		t.Errorf("on_dismiss fired %d times, want 1", j.Len())
	}
}

func TestTickWhileStoppedIsNoop(t *testing.T) {
	c := newTestController(t)

	j := observetest.NewJournal()
	c.Bind("value", j.Method("value", false))

	c.Tick(10 * time.Millisecond)
	if j.Len() != 0 {
		t.Error("ticking a stopped controller must not change the value")
	}
}

func TestStopHoldsCurrentValue(t *testing.T) {
	c := newTestController(t)
	c.PlayForward()
	c.Tick(30 * time.Millisecond)
	c.Stop()

	if c.IsAnimating() {
		t.Error("controller should not be animating after Stop")
	}
	if got := c.Value(); got != 0.3 {
		t.Errorf("Value = %v, want 0.3", got)
	}
}

func TestStatusIsObservable(t *testing.T) {
	c := newTestController(t)

	j := observetest.NewJournal()
	c.Bind("status", j.Method("status", false))

	c.PlayForward()
	c.Tick(100 * time.Millisecond)

	// Forward then Completed.
	if j.Len() != 2 {
		t.Errorf("status notified %d times, want 2", j.Len())
	}
}
