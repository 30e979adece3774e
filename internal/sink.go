package internal

import (
	"gadget_tui/internal/display"
)

// sink routes gadget output to the board and input reads to the text
// inputs of the model.
type sink struct {
	m *Model
}

func (s sink) SetText(r display.Region, text string) {
	s.m.board.SetText(r, text)
}

func (s sink) SetVisible(r display.Region, visible bool) {
	s.m.board.SetVisible(r, visible)
}

func (s sink) InputValue(f display.Field) string {
	if i, ok := inputIndex(f); ok {
		return s.m.Inputs[i].Value()
	}
	return ""
}

func (s sink) SetInputValue(f display.Field, value string) {
	if i, ok := inputIndex(f); ok {
		s.m.Inputs[i].SetValue(value)
	}
}

func inputIndex(f display.Field) (int, bool) {
	for i, field := range inputFields {
		if field == f {
			return i, true
		}
	}
	return 0, false
}
