// Package schedule drives the periodic work of the gadgets.
//
// A Scheduler hands out cancellable handles for repeating and one-shot
// callbacks. Callbacks always receive the instant they run at, so gadgets
// never read the wall clock themselves.
package schedule

import "time"

// Func is a scheduled callback.
type Func func(now time.Time)

// Handle cancels a scheduled callback. Cancel is idempotent and takes
// effect immediately: a cancelled callback never runs again.
type Handle interface {
	Cancel()
}

// Scheduler is the clock and timer source shared by the gadgets.
type Scheduler interface {
	Now() time.Time
	Every(period time.Duration, fn Func) Handle
	After(delay time.Duration, fn Func) Handle
}

// Stop cancels h if it is set and returns nil, so callers can write
// h = schedule.Stop(h).
func Stop(h Handle) Handle {
	if h != nil {
		h.Cancel()
	}
	return nil
}
