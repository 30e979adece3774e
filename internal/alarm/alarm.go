// Package alarm keeps a list of time-of-day alarms and raises a transient
// notification when one falls due.
//
// Alarms are one-shot: an entry is never moved to the following day after
// it fires, and from then on it reports Passed.
package alarm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gadget_tui/internal/display"
	"gadget_tui/internal/schedule"
	"gadget_tui/internal/timelog"
)

const (
	// Passed is shown for alarms whose instant is behind us.
	Passed = "passée"

	// DefaultAlertDuration is how long the notification stays up.
	DefaultAlertDuration = 5 * time.Second

	checkInterval = time.Second
)

var errInvalidTimeOfDay = errors.New("invalid time of day")

// Entry is one scheduled alarm.
type Entry struct {
	Hour    int
	Minute  int
	Label   string
	Message string
	At      time.Time

	fired bool
}

// Fired reports whether the notification for e has been shown.
func (e *Entry) Fired() bool {
	return e.fired
}

// List owns the alarms in insertion order.
type List struct {
	sink     display.Sink
	sched    schedule.Scheduler
	rec      timelog.Recorder
	alertFor time.Duration

	entries []*Entry
	hide    schedule.Handle
}

// New starts the per-second check. It is never stopped.
func New(sink display.Sink, sched schedule.Scheduler, rec timelog.Recorder, alertFor time.Duration) *List {
	if alertFor <= 0 {
		alertFor = DefaultAlertDuration
	}

	l := &List{
		sink:     sink,
		sched:    sched,
		rec:      timelog.OrDiscard(rec),
		alertFor: alertFor,
	}

	sink.SetVisible(display.RegionAlarmAlert, false)
	l.render(sched.Now())
	sched.Every(checkInterval, l.Tick)

	return l
}

// Add creates an alarm from the time and message inputs and clears them.
// It reports false and changes nothing when either input is empty or the
// time cannot be read.
func (l *List) Add() bool {
	label := strings.TrimSpace(l.sink.InputValue(display.FieldAlarmTime))
	message := l.sink.InputValue(display.FieldAlarmMessage)
	if label == "" || message == "" {
		return false
	}

	hour, minute, err := ParseTimeOfDay(label)
	if err != nil {
		return false
	}

	now := l.sched.Now()
	e := &Entry{
		Hour:    hour,
		Minute:  minute,
		Label:   label,
		Message: message,
		At:      NextOccurrence(now, hour, minute),
	}
	l.entries = append(l.entries, e)

	l.sink.SetInputValue(display.FieldAlarmTime, "")
	l.sink.SetInputValue(display.FieldAlarmMessage, "")
	l.render(now)

	l.rec.Record(timelog.Entry{
		Gadget: timelog.GadgetAlarm,
		Kind:   timelog.KindAdded,
		Detail: fmt.Sprintf("%s - %s (%s)", label, message, e.At.Format("2006-01-02 15:04")),
		At:     now,
	})

	return true
}

// Tick fires every alarm due at now and refreshes the countdowns.
func (l *List) Tick(now time.Time) {
	for _, e := range l.entries {
		if e.due(now) {
			l.fire(e, now)
		}
	}
	l.render(now)
}

// TimeUntil describes the time left before at, seen from the scheduler's now.
func (l *List) TimeUntil(at time.Time) string {
	return TimeUntil(at, l.sched.Now())
}

// Entries returns a snapshot of the alarms in insertion order.
func (l *List) Entries() []Entry {
	entries := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		entries[i] = *e
	}
	return entries
}

func (e *Entry) due(now time.Time) bool {
	if e.fired {
		return false
	}

	diff := e.At.Sub(now)
	if diff < 0 {
		diff = -diff
	}

	return diff < time.Second && now.Hour() == e.At.Hour() && now.Minute() == e.At.Minute()
}

func (l *List) fire(e *Entry, now time.Time) {
	e.fired = true

	l.sink.SetText(display.RegionAlarmAlert, e.Message)
	l.sink.SetVisible(display.RegionAlarmAlert, true)

	l.hide = schedule.Stop(l.hide)
	l.hide = l.sched.After(l.alertFor, func(time.Time) {
		l.sink.SetVisible(display.RegionAlarmAlert, false)
		l.hide = nil
	})

	l.rec.Record(timelog.Entry{
		Gadget: timelog.GadgetAlarm,
		Kind:   timelog.KindFired,
		Detail: fmt.Sprintf("%s - %s", e.Label, e.Message),
		At:     now,
	})
}

func (l *List) render(now time.Time) {
	lines := make([]string, len(l.entries))
	for i, e := range l.entries {
		lines[i] = fmt.Sprintf("%s - %s  %s", e.Label, e.Message, TimeUntil(e.At, now))
	}
	l.sink.SetText(display.RegionAlarms, strings.Join(lines, "\n"))
}

// ParseTimeOfDay reads "H:MM" or "HH:MM".
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || h == "" || len(m) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", errInvalidTimeOfDay, s)
	}

	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", errInvalidTimeOfDay, s)
	}

	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", errInvalidTimeOfDay, s)
	}

	return hour, minute, nil
}

// NextOccurrence returns hour:minute:00 today, or tomorrow when that
// instant is already before now.
func NextOccurrence(now time.Time, hour, minute int) time.Time {
	at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if at.Before(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}

// TimeUntil renders the whole hours and minutes from now to at, or Passed.
func TimeUntil(at, now time.Time) string {
	diff := at.Sub(now)
	if diff < 0 {
		return Passed
	}

	hours := int(diff / time.Hour)
	minutes := int((diff % time.Hour) / time.Minute)
	return fmt.Sprintf("dans %dh%dm", hours, minutes)
}
