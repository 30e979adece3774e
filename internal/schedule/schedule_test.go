package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local)

// TestManual_EveryAndCancel checks periodic firing instants and that cancellation stops the callback.
func TestManual_EveryAndCancel(t *testing.T) {
	t.Parallel()

	m := NewManual(epoch)

	var fired []time.Time
	h := m.Every(time.Second, func(now time.Time) {
		fired = append(fired, now)
	})

	m.Advance(3500 * time.Millisecond)
	require.Equal(t, []time.Time{
		epoch.Add(time.Second),
		epoch.Add(2 * time.Second),
		epoch.Add(3 * time.Second),
	}, fired)
	require.Equal(t, epoch.Add(3500*time.Millisecond), m.Now())

	h.Cancel()
	h.Cancel()
	m.Advance(5 * time.Second)
	require.Len(t, fired, 3)
	require.Zero(t, m.Pending())
}

// TestManual_AfterFiresOnce verifies one-shot callbacks and ordering between tasks due at the same instant.
func TestManual_AfterFiresOnce(t *testing.T) {
	t.Parallel()

	m := NewManual(epoch)

	var order []string
	m.Every(time.Second, func(time.Time) { order = append(order, "tick") })
	m.After(2*time.Second, func(time.Time) { order = append(order, "once") })

	m.Advance(3 * time.Second)
	require.Equal(t, []string{"tick", "tick", "once", "tick"}, order)
	require.Equal(t, 1, m.Pending())
}

// TestManual_ScheduleFromCallback ensures tasks added while advancing still run when due.
func TestManual_ScheduleFromCallback(t *testing.T) {
	t.Parallel()

	m := NewManual(epoch)

	var hiddenAt time.Time
	m.After(time.Second, func(now time.Time) {
		m.After(5*time.Second, func(now time.Time) { hiddenAt = now })
	})

	m.Advance(10 * time.Second)
	require.Equal(t, epoch.Add(6*time.Second), hiddenAt)
}

// TestStop verifies the helper cancels the handle and tolerates nil.
func TestStop(t *testing.T) {
	t.Parallel()

	m := NewManual(epoch)
	h := m.Every(time.Second, func(time.Time) {})

	require.Nil(t, Stop(h))
	require.Nil(t, Stop(nil))
	require.Zero(t, m.Pending())
}

// TestLoop_DeliversOnChannel checks callbacks arrive on C and are dropped once cancelled.
func TestLoop_DeliversOnChannel(t *testing.T) {
	t.Parallel()

	l := NewLoop()
	defer l.Close()

	count := 0
	h := l.Every(5*time.Millisecond, func(time.Time) { count++ })

	receive := func() func() {
		select {
		case call := <-l.C():
			return call
		case <-time.After(time.Second):
			t.Fatal("no callback delivered")
			return nil
		}
	}

	receive()()
	require.Equal(t, 1, count)

	queued := receive()
	h.Cancel()
	queued()
	require.Equal(t, 1, count)
}

// TestLoop_After runs a one-shot callback through the channel.
func TestLoop_After(t *testing.T) {
	t.Parallel()

	l := NewLoop()
	defer l.Close()

	done := false
	l.After(time.Millisecond, func(time.Time) { done = true })

	select {
	case call := <-l.C():
		call()
	case <-time.After(time.Second):
		t.Fatal("no callback delivered")
	}
	require.True(t, done)
}

// TestLoop_ClosedNeverFires verifies handles created after Close are inert.
func TestLoop_ClosedNeverFires(t *testing.T) {
	t.Parallel()

	l := NewLoop()
	l.Close()

	h := l.Every(time.Millisecond, func(time.Time) {})
	h.Cancel()

	select {
	case <-l.C():
		t.Fatal("closed loop delivered a callback")
	case <-time.After(20 * time.Millisecond):
	}
}
