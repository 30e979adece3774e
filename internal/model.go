package internal

import (
	"context"
	"fmt"

	"gadget_tui/internal/alarm"
	"gadget_tui/internal/clock"
	"gadget_tui/internal/config"
	"gadget_tui/internal/display"
	"gadget_tui/internal/journal"
	"gadget_tui/internal/logger"
	"gadget_tui/internal/schedule"
	"gadget_tui/internal/stopwatch"
	"gadget_tui/internal/timelog"
	"gadget_tui/internal/timer"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgCallback carries a scheduled gadget callback onto the UI goroutine.
type MsgCallback func()

const (
	inputMinutes = iota
	inputAlarmTime
	inputAlarmMessage

	noFocus = -1
)

var inputFields = [...]display.Field{
	inputMinutes:      display.FieldTimerMinutes,
	inputAlarmTime:    display.FieldAlarmTime,
	inputAlarmMessage: display.FieldAlarmMessage,
}

// Callbacks is the part of schedule.Loop the model drains.
type Callbacks interface {
	C() <-chan func()
}

type Model struct {
	Timer     *timer.Timer
	Stopwatch *stopwatch.Stopwatch
	Clock     *clock.Clock
	Alarms    *alarm.List

	Inputs     [len(inputFields)]textinput.Model
	InputFocus int

	// Journal view state
	ShowHistory   bool
	HistoryScroll int
	History       []timelog.Entry

	Err error

	ctx       context.Context
	board     *display.Board
	callbacks Callbacks
	closer    func()
	repo      *journal.Repository
}

// NewModel opens the journal and starts the gadgets on a wall-clock loop.
func NewModel(ctx context.Context, cfg *config.Config) (*Model, error) {
	repo, err := journal.Open(cfg.JournalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	loop := schedule.NewLoop()
	m := newModel(ctx, cfg, loop, loop, repo)
	m.closer = loop.Close

	return m, nil
}

func newModel(ctx context.Context, cfg *config.Config, sched schedule.Scheduler, callbacks Callbacks, repo *journal.Repository) *Model {
	m := &Model{
		InputFocus: noFocus,
		ctx:        ctx,
		board:      display.NewBoard(),
		callbacks:  callbacks,
		repo:       repo,
	}

	m.Inputs[inputMinutes] = newInput("minutes", 4)
	m.Inputs[inputAlarmTime] = newInput("HH:MM", 5)
	m.Inputs[inputAlarmMessage] = newInput("message", 64)

	out := sink{m: m}
	m.Timer = timer.New(out, sched, m)
	m.Stopwatch = stopwatch.New(out, sched, m)
	m.Clock = clock.New(out, sched, cfg.ClockLayout)
	m.Alarms = alarm.New(out, sched, m, cfg.AlertDuration)

	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = limit + 1
	ti.Prompt = ""
	return ti
}

// Record writes a gadget event to the journal. Failures are logged and
// otherwise ignored so the gadgets keep running.
func (m *Model) Record(e timelog.Entry) {
	logger.InfoKV(m.ctx, "gadget event", "gadget", e.Gadget, "kind", e.Kind, "detail", e.Detail)

	if m.repo == nil {
		return
	}
	if err := m.repo.Record(m.ctx, &e); err != nil {
		logger.ErrorKV(m.ctx, "failed to record event", "error", err)
		m.Err = err
	}
}

// Board exposes what the gadgets last rendered.
func (m *Model) Board() *display.Board {
	return m.board
}

func (m *Model) Init() tea.Cmd {
	return m.waitForCallback()
}

func (m *Model) waitForCallback() tea.Cmd {
	if m.callbacks == nil {
		return nil
	}
	ch := m.callbacks.C()
	return func() tea.Msg {
		call, ok := <-ch
		if !ok {
			return nil
		}
		return MsgCallback(call)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgCallback:
		msg()
		return m, m.waitForCallback()
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	if m.ShowHistory {
		return m.historyView()
	}
	return m.mainView()
}

func (m *Model) Close() error {
	if m.closer != nil {
		m.closer()
	}
	if m.repo == nil {
		return nil
	}
	return m.repo.Close()
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowHistory {
		return m.handleHistoryInput(msg)
	}

	if m.InputFocus != noFocus {
		return m.handleFormInput(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "s":
		m.Timer.ToggleRunStop()
	case "+", "=":
		m.Timer.Increment()
	case "-":
		m.Timer.Decrement()
	case "m":
		return m, m.focus(inputMinutes)
	case " ", "space":
		m.Stopwatch.Toggle()
	case "l":
		m.Stopwatch.Lap()
	case "r":
		m.Stopwatch.Reset()
	case "a":
		return m, m.focus(inputAlarmTime)
	case "tab":
		return m, m.focus(inputMinutes)
	case "h":
		m.openHistory()
	}
	return m, nil
}

func (m *Model) handleFormInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.blur()
		return m, nil
	case "tab":
		return m, m.focus((m.InputFocus + 1) % len(m.Inputs))
	case "shift+tab":
		return m, m.focus((m.InputFocus + len(m.Inputs) - 1) % len(m.Inputs))
	case "enter":
		switch m.InputFocus {
		case inputMinutes:
			m.Timer.SetMinutes(m.Inputs[inputMinutes].Value())
			m.Inputs[inputMinutes].SetValue("")
			m.blur()
		case inputAlarmTime:
			return m, m.focus(inputAlarmMessage)
		case inputAlarmMessage:
			if m.Alarms.Add() {
				m.blur()
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Inputs[m.InputFocus], cmd = m.Inputs[m.InputFocus].Update(msg)
	return m, cmd
}

func (m *Model) handleHistoryInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc", "h":
		m.ShowHistory = false
		m.History = nil
	case "up", "k":
		if m.HistoryScroll > 0 {
			m.HistoryScroll--
		}
	case "down", "j":
		maxScroll := len(m.History) - 1
		if maxScroll < 0 {
			maxScroll = 0
		}
		if m.HistoryScroll < maxScroll {
			m.HistoryScroll++
		}
	}
	return m, nil
}

func (m *Model) openHistory() {
	m.History = nil
	if m.repo != nil {
		entries, err := m.repo.Recent(m.ctx, journal.DefaultLimit)
		if err != nil {
			logger.ErrorKV(m.ctx, "failed to load journal", "error", err)
			m.Err = err
		}
		m.History = entries
	}
	m.ShowHistory = true
	m.HistoryScroll = 0
}

func (m *Model) focus(i int) tea.Cmd {
	m.blur()
	m.InputFocus = i
	return m.Inputs[i].Focus()
}

func (m *Model) blur() {
	for i := range m.Inputs {
		m.Inputs[i].Blur()
	}
	m.InputFocus = noFocus
}
