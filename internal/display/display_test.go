package display

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBoard verifies text, visibility and input bookkeeping of the in-memory sink.
func TestBoard(t *testing.T) {
	t.Parallel()

	b := NewBoard()

	require.Empty(t, b.Text(RegionTimer))
	require.True(t, b.Visible(RegionTimerAlert))

	b.SetText(RegionTimer, "05:00")
	b.SetVisible(RegionTimerAlert, false)
	b.SetInputValue(FieldAlarmTime, "07:30")

	require.Equal(t, "05:00", b.Text(RegionTimer))
	require.False(t, b.Visible(RegionTimerAlert))
	require.Equal(t, "07:30", b.InputValue(FieldAlarmTime))

	b.SetVisible(RegionTimerAlert, true)
	require.True(t, b.Visible(RegionTimerAlert))
}
