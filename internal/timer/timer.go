package timer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gadget_tui/internal/display"
	"gadget_tui/internal/schedule"
	"gadget_tui/internal/timelog"
)

const (
	LabelStart = "Start"
	LabelStop  = "Stop"

	// ExpiredText is shown in the alert region once the countdown runs out.
	ExpiredText = "Temps écoulé !"
)

// Timer is a minutes/seconds countdown decremented once per second.
type Timer struct {
	sink  display.Sink
	sched schedule.Scheduler
	rec   timelog.Recorder

	minutes int
	seconds int
	running bool
	handle  schedule.Handle
}

func New(sink display.Sink, sched schedule.Scheduler, rec timelog.Recorder) *Timer {
	t := &Timer{
		sink:  sink,
		sched: sched,
		rec:   timelog.OrDiscard(rec),
	}

	sink.SetText(display.RegionTimerToggle, LabelStart)
	sink.SetText(display.RegionTimerAlert, ExpiredText)
	sink.SetVisible(display.RegionTimerAlert, false)
	t.render()

	return t
}

// SetMinutes loads value as the new duration. Anything that does not
// start with a digit counts as zero.
func (t *Timer) SetMinutes(value string) {
	t.minutes = parseMinutes(value)
	t.seconds = 0
	t.render()
}

func (t *Timer) Increment() {
	t.minutes++
	t.render()
}

func (t *Timer) Decrement() {
	if t.minutes > 0 {
		t.minutes--
		t.render()
	}
}

// ToggleRunStop starts a stopped timer or stops a running one. A timer at
// 00:00 refuses to start.
func (t *Timer) ToggleRunStop() {
	if t.running {
		t.stop()
		return
	}

	if t.minutes == 0 && t.seconds == 0 {
		return
	}

	t.running = true
	t.sink.SetText(display.RegionTimerToggle, LabelStop)
	t.sink.SetVisible(display.RegionTimerAlert, false)

	t.handle = schedule.Stop(t.handle)
	t.handle = t.sched.Every(time.Second, t.Tick)

	t.rec.Record(timelog.Entry{
		Gadget: timelog.GadgetTimer,
		Kind:   timelog.KindStarted,
		Detail: t.String(),
		At:     t.sched.Now(),
	})
}

// Tick counts one second down.
func (t *Timer) Tick(now time.Time) {
	if !t.running {
		return
	}

	switch {
	case t.seconds > 0:
		t.seconds--
	case t.minutes > 0:
		t.minutes--
		t.seconds = 59
	default:
		t.expire(now)
		return
	}

	t.render()

	if t.minutes == 0 && t.seconds == 0 {
		t.expire(now)
	}
}

func (t *Timer) expire(now time.Time) {
	t.stop()
	t.sink.SetVisible(display.RegionTimerAlert, true)

	t.rec.Record(timelog.Entry{
		Gadget: timelog.GadgetTimer,
		Kind:   timelog.KindExpired,
		At:     now,
	})
}

func (t *Timer) stop() {
	t.running = false
	t.sink.SetText(display.RegionTimerToggle, LabelStart)
	t.handle = schedule.Stop(t.handle)
}

func (t *Timer) Minutes() int {
	return t.minutes
}

func (t *Timer) Seconds() int {
	return t.seconds
}

func (t *Timer) Running() bool {
	return t.running
}

// String renders the remaining time as MM:SS.
func (t *Timer) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes, t.seconds)
}

func (t *Timer) render() {
	t.sink.SetText(display.RegionTimer, t.String())
}

func parseMinutes(value string) int {
	value = strings.TrimSpace(value)

	end := 0
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	minutes, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0
	}
	return minutes
}
