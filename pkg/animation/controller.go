// Package animation provides a reference consumer of the observe
// substrate: a controller whose progress is an observable property and
// whose completion is a dispatched event.
//
// The controller is clock-agnostic. The embedding toolkit advances it from
// its frame loop with Tick; tests drive it directly.
package animation

import (
	"fmt"
	"time"

	"github.com/go-drift/observe/pkg/event"
	"github.com/go-drift/observe/pkg/property"
)

// Status represents the current state of an animation.
type Status int

const (
	// Dismissed means the animation is stopped at the lower bound (0.0).
	Dismissed Status = iota
	// Forward means the animation is playing toward the upper bound (1.0).
	Forward
	// Reverse means the animation is playing toward the lower bound (0.0).
	Reverse
	// Completed means the animation is stopped at the upper bound (1.0).
	Completed
)

func (s Status) String() string {
	switch s {
	case Dismissed:
		return "dismissed"
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller drives a value from 0 to 1 over a duration. Both "value" and
// "status" are observable properties; "on_complete" and "on_dismiss" fire
// when a run reaches its target bound.
//
// Always call Dispose when done so handlers bound through the controller
// die with it.
type Controller struct {
	event.Dispatcher

	// Duration is the length of a full 0-to-1 run.
	Duration time.Duration

	elapsed time.Duration
	start   float64
	target  float64
}

// NewController creates a controller with the given duration.
func NewController(duration time.Duration) (*Controller, error) {
	c := &Controller{Duration: duration}
	if err := c.Init(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Controller) DeclareProperties() map[string]property.Descriptor {
	return map[string]property.Descriptor{
		"value":  property.NewValue(0.0),
		"status": property.NewValue(Dismissed),
	}
}

func (c *Controller) DeclareEvents() []event.Event {
	return []event.Event{
		{Name: "on_complete", Default: c.onComplete},
		{Name: "on_dismiss", Default: c.onDismiss},
	}
}

func (c *Controller) onComplete(sender any, args ...any) bool { return false }
func (c *Controller) onDismiss(sender any, args ...any) bool  { return false }

// Value returns the current animation value.
func (c *Controller) Value() float64 {
	v, _ := c.Get("value")
	f, _ := v.(float64)
	return f
}

// Status returns the current animation status.
func (c *Controller) Status() Status {
	v, _ := c.Get("status")
	s, _ := v.(Status)
	return s
}

// IsAnimating reports whether a run is in progress.
func (c *Controller) IsAnimating() bool {
	s := c.Status()
	return s == Forward || s == Reverse
}

// PlayForward starts a run from the current value to 1.
func (c *Controller) PlayForward() {
	c.animateTo(1, Forward)
}

// PlayReverse starts a run from the current value to 0.
func (c *Controller) PlayReverse() {
	c.animateTo(0, Reverse)
}

func (c *Controller) animateTo(target float64, direction Status) {
	c.elapsed = 0
	c.start = c.Value()
	c.target = target
	_, _ = c.Set("status", direction)
}

// Tick advances a running animation by dt, updating "value" and, when a
// bound is reached, "status" plus the matching completion event.
func (c *Controller) Tick(dt time.Duration) {
	if !c.IsAnimating() {
		return
	}
	c.elapsed += dt

	progress := 1.0
	if c.Duration > 0 {
		progress = float64(c.elapsed) / float64(c.Duration)
		if progress > 1 {
			progress = 1
		}
	}
	_, _ = c.Set("value", c.start+(c.target-c.start)*progress)

	if progress >= 1 {
		if c.target >= 1 {
			_, _ = c.Set("status", Completed)
			_, _ = c.Dispatch("on_complete")
		} else {
			_, _ = c.Set("status", Dismissed)
			_, _ = c.Dispatch("on_dismiss")
		}
	}
}

// Stop halts the animation at its current value.
func (c *Controller) Stop() {
	if !c.IsAnimating() {
		return
	}
	if c.Value() >= 1 {
		_, _ = c.Set("status", Completed)
	} else {
		_, _ = c.Set("status", Dismissed)
	}
}
