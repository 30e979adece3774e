package schedule

import (
	"sort"
	"time"
)

// Manual is a Scheduler running on virtual time. Nothing happens until
// Advance is called, which makes gadget behaviour deterministic in tests.
type Manual struct {
	now   time.Time
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	seq       int
	next      time.Time
	period    time.Duration
	fn        Func
	cancelled bool
}

func (t *manualTask) Cancel() {
	t.cancelled = true
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	return m.now
}

func (m *Manual) Every(period time.Duration, fn Func) Handle {
	if period <= 0 {
		panic("schedule: non-positive period")
	}
	return m.add(period, period, fn)
}

func (m *Manual) After(delay time.Duration, fn Func) Handle {
	return m.add(delay, 0, fn)
}

func (m *Manual) add(delay, period time.Duration, fn Func) *manualTask {
	m.seq++
	t := &manualTask{
		seq:    m.seq,
		next:   m.now.Add(delay),
		period: period,
		fn:     fn,
	}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves virtual time forward by d, running every callback that
// falls due on the way in chronological order.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		t := m.due(target)
		if t == nil {
			break
		}
		m.now = t.next
		if t.period > 0 {
			t.next = t.next.Add(t.period)
		} else {
			t.cancelled = true
		}
		t.fn(m.now)
	}
	m.now = target
}

// Pending returns how many callbacks are still scheduled.
func (m *Manual) Pending() int {
	m.prune()
	return len(m.tasks)
}

func (m *Manual) due(target time.Time) *manualTask {
	m.prune()
	sort.SliceStable(m.tasks, func(i, j int) bool {
		a, b := m.tasks[i], m.tasks[j]
		if !a.next.Equal(b.next) {
			return a.next.Before(b.next)
		}
		return a.seq < b.seq
	})
	if len(m.tasks) == 0 || m.tasks[0].next.After(target) {
		return nil
	}
	return m.tasks[0]
}

func (m *Manual) prune() {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	m.tasks = live
}
