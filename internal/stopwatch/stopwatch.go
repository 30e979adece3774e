// Package stopwatch measures elapsed time in centiseconds and records laps.
package stopwatch

import (
	"fmt"
	"strings"
	"time"

	"gadget_tui/internal/display"
	"gadget_tui/internal/schedule"
	"gadget_tui/internal/timelog"
)

const (
	LabelStart = "Start"
	LabelStop  = "Stop"

	// Interval is the refresh period while running.
	Interval = 10 * time.Millisecond
)

// Stopwatch recomputes elapsed time from its anchor on every tick, so late
// or skipped ticks never lose time.
type Stopwatch struct {
	sink  display.Sink
	sched schedule.Scheduler
	rec   timelog.Recorder

	centis  int64
	running bool
	anchor  time.Time
	laps    []string
	handle  schedule.Handle
}

func New(sink display.Sink, sched schedule.Scheduler, rec timelog.Recorder) *Stopwatch {
	s := &Stopwatch{
		sink:  sink,
		sched: sched,
		rec:   timelog.OrDiscard(rec),
	}

	sink.SetText(display.RegionStopwatchToggle, LabelStart)
	s.render()
	s.renderLaps()

	return s
}

func (s *Stopwatch) Toggle() {
	if s.running {
		s.Stop()
	} else {
		s.Start()
	}
}

// Start resumes counting from the elapsed time already accumulated.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}

	s.running = true
	s.sink.SetText(display.RegionStopwatchToggle, LabelStop)
	s.anchor = s.sched.Now().Add(-time.Duration(s.centis) * Interval)

	s.handle = schedule.Stop(s.handle)
	s.handle = s.sched.Every(Interval, s.Tick)
}

// Stop freezes the elapsed time at its last computed value.
func (s *Stopwatch) Stop() {
	s.running = false
	s.sink.SetText(display.RegionStopwatchToggle, LabelStart)
	s.handle = schedule.Stop(s.handle)
}

func (s *Stopwatch) Tick(now time.Time) {
	if !s.running {
		return
	}

	if cs := int64(now.Sub(s.anchor) / Interval); cs > s.centis {
		s.centis = cs
	}
	s.render()
}

// Lap snapshots the current time. It does nothing while stopped.
func (s *Stopwatch) Lap() {
	if !s.running {
		return
	}

	lap := FormatTime(s.centis)
	s.laps = append(s.laps, lap)
	s.renderLaps()

	s.rec.Record(timelog.Entry{
		Gadget: timelog.GadgetStopwatch,
		Kind:   timelog.KindLap,
		Detail: fmt.Sprintf("Tour %d: %s", len(s.laps), lap),
		At:     s.sched.Now(),
	})
}

// Reset stops the stopwatch and clears elapsed time and laps.
func (s *Stopwatch) Reset() {
	final := FormatTime(s.centis)
	laps := len(s.laps)

	s.Stop()
	s.centis = 0
	s.laps = nil
	s.render()
	s.renderLaps()

	s.rec.Record(timelog.Entry{
		Gadget: timelog.GadgetStopwatch,
		Kind:   timelog.KindReset,
		Detail: fmt.Sprintf("%s, %d tours", final, laps),
		At:     s.sched.Now(),
	})
}

// Elapsed returns the elapsed time in centiseconds.
func (s *Stopwatch) Elapsed() int64 {
	return s.centis
}

func (s *Stopwatch) Running() bool {
	return s.running
}

func (s *Stopwatch) Laps() []string {
	return append([]string(nil), s.laps...)
}

// FormatTime renders cs centiseconds as MM:SS.CC.
func FormatTime(cs int64) string {
	minutes := cs / 6000
	seconds := (cs % 6000) / 100
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, cs%100)
}

func (s *Stopwatch) render() {
	s.sink.SetText(display.RegionStopwatch, FormatTime(s.centis))
}

func (s *Stopwatch) renderLaps() {
	lines := make([]string, len(s.laps))
	for i, lap := range s.laps {
		lines[i] = fmt.Sprintf("Tour %d: %s", i+1, lap)
	}
	s.sink.SetText(display.RegionLaps, strings.Join(lines, "\n"))
}
