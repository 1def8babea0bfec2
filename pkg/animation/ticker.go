// Package animation eases values over time for render objects.
//
// A [Scheduler] owns the active tickers and is stepped once per frame by the
// host. A [Controller] runs from 0 to 1 over its Duration through an easing
// curve, and a [Tween] maps that progress onto the animated quantity:
//
//	sched := animation.NewScheduler(nil)
//	ctrl := animation.NewController(sched, 300*time.Millisecond)
//	ctrl.Curve = animation.EaseInOut
//	sweep := animation.TweenFloat64(0, 144)
//	ctrl.AddListener(graph.MarkNeedsPaint)
//	ctrl.Forward()
//
//	// every frame
//	sched.Step()
//	painted := sweep.Transform(ctrl)
package animation

import (
	"sync"
	"time"
)

// Scheduler drives tickers from a clock.
//
// Step is called once per frame from the UI goroutine. Start and Stop may be
// called from ticker callbacks.
type Scheduler struct {
	clock Clock

	mu      sync.Mutex
	tickers map[*Ticker]struct{}
}

// NewScheduler returns a scheduler reading clock, or the system clock when
// clock is nil.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{
		clock:   clock,
		tickers: make(map[*Ticker]struct{}),
	}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// NewTicker creates a stopped ticker bound to s.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{scheduler: s, callback: callback}
}

// Step calls every active ticker with its elapsed time.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.tickers) == 0 {
		s.mu.Unlock()
		return
	}
	active := make([]*Ticker, 0, len(s.tickers))
	for t := range s.tickers {
		active = append(active, t)
	}
	s.mu.Unlock()

	now := s.Now()
	for _, t := range active {
		if t.IsActive() && t.callback != nil {
			t.callback(now.Sub(t.start))
		}
	}
}

// Active reports whether any ticker is running.
func (s *Scheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickers) > 0
}

// Ticker calls a callback on each scheduler step while active.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	start     time.Time
	active    bool
}

// Start activates the ticker; elapsed time is measured from this call.
func (t *Ticker) Start() {
	if t.active {
		return
	}
	t.active = true
	t.start = t.scheduler.Now()
	t.scheduler.mu.Lock()
	t.scheduler.tickers[t] = struct{}{}
	t.scheduler.mu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.active {
		return
	}
	t.active = false
	t.scheduler.mu.Lock()
	delete(t.scheduler.tickers, t)
	t.scheduler.mu.Unlock()
}

// IsActive reports whether the ticker is running.
func (t *Ticker) IsActive() bool {
	return t.active
}
