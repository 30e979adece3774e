package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gadget_tui/internal/display"
	"gadget_tui/internal/schedule"
)

// TestClock renders immediately and follows the scheduler every second.
func TestClock(t *testing.T) {
	t.Parallel()

	board := display.NewBoard()
	sched := schedule.NewManual(time.Date(2024, time.June, 3, 23, 59, 58, 400, time.Local))

	New(board, sched, "")
	require.Equal(t, "23:59:58", board.Text(display.RegionClock))

	sched.Advance(time.Second)
	require.Equal(t, "23:59:59", board.Text(display.RegionClock))

	sched.Advance(time.Second)
	require.Equal(t, "00:00:00", board.Text(display.RegionClock))
	require.Equal(t, 1, sched.Pending())
}

// TestClock_Layout honours a custom layout.
func TestClock_Layout(t *testing.T) {
	t.Parallel()

	board := display.NewBoard()
	sched := schedule.NewManual(time.Date(2024, time.June, 3, 7, 5, 0, 0, time.Local))

	New(board, sched, "15h04")
	require.Equal(t, "07h05", board.Text(display.RegionClock))
}
