package animation

import (
	"fmt"
	"time"
)

// Status is the state of a Controller.
type Status int

const (
	// StatusDismissed means stopped at or below the lower bound.
	StatusDismissed Status = iota
	// StatusForward means running toward a higher value.
	StatusForward
	// StatusReverse means running toward a lower value.
	StatusReverse
	// StatusCompleted means stopped above the lower bound.
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller moves Value toward a target over Duration.
//
// Value starts at 0 and is normally kept in [0, 1]; use a [Tween] to map it
// onto the animated quantity. Call Dispose when the owner goes away.
type Controller struct {
	// Value is the current progress.
	Value float64
	// Duration is the time a full run takes. Zero jumps to the target on
	// the next step.
	Duration time.Duration
	// Curve eases linear progress. Nil means linear.
	Curve func(float64) float64

	scheduler  *Scheduler
	ticker     *Ticker
	status     Status
	startValue float64
	target     float64
	listeners  map[int]func()
	nextID     int
}

// NewController returns a dismissed controller stepped by scheduler.
func NewController(scheduler *Scheduler, duration time.Duration) *Controller {
	return &Controller{
		Duration:  duration,
		Curve:     LinearCurve,
		scheduler: scheduler,
		listeners: make(map[int]func()),
	}
}

// Forward runs from the current value to 1.
func (c *Controller) Forward() {
	c.AnimateTo(1)
}

// AnimateTo runs from the current value to target.
func (c *Controller) AnimateTo(target float64) {
	c.stopTicker()
	c.startValue = c.Value
	c.target = target
	if target >= c.Value {
		c.status = StatusForward
	} else {
		c.status = StatusReverse
	}
	c.ticker = c.scheduler.NewTicker(c.tick)
	c.ticker.Start()
}

func (c *Controller) tick(elapsed time.Duration) {
	progress := 1.0
	if c.Duration > 0 {
		progress = min(float64(elapsed)/float64(c.Duration), 1)
	}
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notify()

	if progress >= 1 {
		c.Stop()
	}
}

// Stop halts the animation at the current value.
func (c *Controller) Stop() {
	c.stopTicker()
	if c.Value <= 0 {
		c.status = StatusDismissed
	} else {
		c.status = StatusCompleted
	}
}

// Reset stops the animation and sets the value back to 0.
func (c *Controller) Reset() {
	c.stopTicker()
	c.Value = 0
	c.status = StatusDismissed
	c.notify()
}

func (c *Controller) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current status.
func (c *Controller) Status() Status {
	return c.status
}

// IsAnimating reports whether a run is in progress.
func (c *Controller) IsAnimating() bool {
	return c.status == StatusForward || c.status == StatusReverse
}

// AddListener registers fn to be called after every value change and
// returns a function that removes it.
func (c *Controller) AddListener(fn func()) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

func (c *Controller) notify() {
	for _, fn := range c.listeners {
		fn()
	}
}

// Dispose stops the controller and drops its listeners.
func (c *Controller) Dispose() {
	c.stopTicker()
	c.status = StatusDismissed
	c.listeners = make(map[int]func())
}
