// Package clock abstracts timers so view-owned schedules can be driven by a
// fake clock in tests.
package clock

import "time"

// Timer is a one-shot timer. C fires at most once.
type Timer interface {
	C() <-chan time.Time
	// Stop prevents the timer from firing. Returns false if it already fired
	// or was already stopped.
	Stop() bool
}

// Clock creates timers and reports the current time.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Timer
}

// Real returns a Clock backed by the time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTimer(d time.Duration) Timer {
	return &realTimer{t: time.NewTimer(d)}
}

type realTimer struct {
	t *time.Timer
}

func (r *realTimer) C() <-chan time.Time { return r.t.C }
func (r *realTimer) Stop() bool          { return r.t.Stop() }
