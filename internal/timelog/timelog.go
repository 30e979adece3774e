package timelog

import "time"

// Gadget names the widget an entry originates from.
type Gadget string

const (
	GadgetTimer     Gadget = "timer"
	GadgetStopwatch Gadget = "stopwatch"
	GadgetAlarm     Gadget = "alarm"
)

// Kind is what happened.
type Kind string

const (
	KindStarted Kind = "started"
	KindExpired Kind = "expired"
	KindLap     Kind = "lap"
	KindReset   Kind = "reset"
	KindAdded   Kind = "added"
	KindFired   Kind = "fired"
)

// Entry represents a notable gadget event.
type Entry struct {
	ID     int64
	Gadget Gadget
	Kind   Kind
	Detail string
	At     time.Time
}

// Recorder receives gadget events. Implementations must not block.
type Recorder interface {
	Record(e Entry)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(e Entry)

func (f RecorderFunc) Record(e Entry) { f(e) }

// Discard drops every entry.
var Discard Recorder = RecorderFunc(func(Entry) {})

// OrDiscard returns r, or Discard when r is nil.
func OrDiscard(r Recorder) Recorder {
	if r == nil {
		return Discard
	}
	return r
}

// Memory keeps entries in a slice.
type Memory struct {
	Entries []Entry
}

func (m *Memory) Record(e Entry) {
	m.Entries = append(m.Entries, e)
}

// Kinds lists the kinds recorded so far, oldest first.
func (m *Memory) Kinds() []Kind {
	kinds := make([]Kind, len(m.Entries))
	for i, e := range m.Entries {
		kinds[i] = e.Kind
	}
	return kinds
}
