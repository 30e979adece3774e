// Package clock shows the local wall-clock time.
package clock

import (
	"time"

	"gadget_tui/internal/display"
	"gadget_tui/internal/schedule"
)

// DefaultLayout is the 24-hour hh:mm:ss form.
const DefaultLayout = "15:04:05"

type Clock struct {
	sink   display.Sink
	layout string
}

// New renders the current time and refreshes it every second for as long
// as the scheduler runs.
func New(sink display.Sink, sched schedule.Scheduler, layout string) *Clock {
	if layout == "" {
		layout = DefaultLayout
	}

	c := &Clock{
		sink:   sink,
		layout: layout,
	}

	c.Tick(sched.Now())
	sched.Every(time.Second, c.Tick)

	return c
}

func (c *Clock) Tick(now time.Time) {
	c.sink.SetText(display.RegionClock, now.Local().Format(c.layout))
}
