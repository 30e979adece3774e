// Package display defines the surface the gadgets render into.
//
// Gadgets never touch the terminal. They write text into named regions,
// toggle the visibility of alert regions and read the current value of
// input fields through a Sink.
package display

// Region names a text area of the page.
type Region string

// Field names an editable input of the page.
type Field string

const (
	RegionTimer           Region = "timer"
	RegionTimerToggle     Region = "timer-toggle"
	RegionTimerAlert      Region = "timer-alert"
	RegionStopwatch       Region = "stopwatch"
	RegionStopwatchToggle Region = "stopwatch-toggle"
	RegionLaps            Region = "laps"
	RegionClock           Region = "clock"
	RegionAlarms          Region = "alarms"
	RegionAlarmAlert      Region = "alarm-alert"
)

const (
	FieldTimerMinutes Field = "timer-minutes"
	FieldAlarmTime    Field = "alarm-time"
	FieldAlarmMessage Field = "alarm-message"
)

// Sink is implemented by whatever presents the gadgets.
type Sink interface {
	SetText(r Region, text string)
	SetVisible(r Region, visible bool)
	InputValue(f Field) string
	SetInputValue(f Field, value string)
}

// Board is an in-memory Sink. Regions are visible until hidden.
type Board struct {
	texts  map[Region]string
	hidden map[Region]bool
	inputs map[Field]string
}

func NewBoard() *Board {
	return &Board{
		texts:  make(map[Region]string),
		hidden: make(map[Region]bool),
		inputs: make(map[Field]string),
	}
}

func (b *Board) SetText(r Region, text string) {
	b.texts[r] = text
}

func (b *Board) SetVisible(r Region, visible bool) {
	b.hidden[r] = !visible
}

func (b *Board) InputValue(f Field) string {
	return b.inputs[f]
}

func (b *Board) SetInputValue(f Field, value string) {
	b.inputs[f] = value
}

// Text returns the last text written to r.
func (b *Board) Text(r Region) string {
	return b.texts[r]
}

// Visible reports whether r is currently shown.
func (b *Board) Visible(r Region) bool {
	return !b.hidden[r]
}
