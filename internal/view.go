package internal

import (
	"fmt"
	"strings"

	"gadget_tui/internal/display"
	"gadget_tui/internal/timelog"

	"github.com/charmbracelet/lipgloss"
)

const boxWidth = 38

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	displayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69")).
			Bold(true)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)

	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("160")).
			Bold(true).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	logTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	logTimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func (m *Model) mainView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Width(2*boxWidth + 6).Render("Gadgets"))
	sb.WriteString("\n\n")

	top := lipgloss.JoinHorizontal(lipgloss.Top, m.timerView(), "  ", m.stopwatchView())
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, m.clockView(), "  ", m.alarmsView())
	sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, top, bottom))
	sb.WriteString("\n")

	if m.Err != nil {
		sb.WriteString(errorStyle.Render(m.Err.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render(m.helpText()))

	return sb.String()
}

func (m *Model) helpText() string {
	if m.InputFocus != noFocus {
		return "Enter: Valider | Tab: Champ suivant | Esc: Annuler"
	}
	return "Minuteur: s/+/-/m | Chrono: Espace/l/r | Alarme: a | Journal: h | Quitter: q"
}

func (m *Model) timerView() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("Minuteur"))
	sb.WriteString("\n\n")

	value := m.board.Text(display.RegionTimer)
	if m.Timer.Running() {
		sb.WriteString(runningStyle.Render(value))
	} else {
		sb.WriteString(displayStyle.Render(value))
	}
	sb.WriteString("  " + helpStyle.Render("["+m.board.Text(display.RegionTimerToggle)+"]"))
	sb.WriteString("\n\n")

	sb.WriteString(m.inputLine("Minutes", inputMinutes))

	if m.board.Visible(display.RegionTimerAlert) {
		sb.WriteString("\n\n")
		sb.WriteString(alertStyle.Render(m.board.Text(display.RegionTimerAlert)))
	}

	return boxStyle.Width(boxWidth).Height(9).Render(sb.String())
}

func (m *Model) stopwatchView() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("Chronomètre"))
	sb.WriteString("\n\n")

	value := m.board.Text(display.RegionStopwatch)
	if m.Stopwatch.Running() {
		sb.WriteString(runningStyle.Render(value))
	} else {
		sb.WriteString(displayStyle.Render(value))
	}
	sb.WriteString("  " + helpStyle.Render("["+m.board.Text(display.RegionStopwatchToggle)+"]"))
	sb.WriteString("\n\n")

	// Most recent laps only; the box has a fixed height.
	laps := m.board.Text(display.RegionLaps)
	if laps != "" {
		lines := strings.Split(laps, "\n")
		if len(lines) > 5 {
			lines = lines[len(lines)-5:]
		}
		sb.WriteString(inactiveStyle.Render(strings.Join(lines, "\n")))
	}

	return boxStyle.Width(boxWidth).Height(9).Render(sb.String())
}

func (m *Model) clockView() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("Horloge"))
	sb.WriteString("\n\n")
	sb.WriteString(displayStyle.Render(m.board.Text(display.RegionClock)))

	return boxStyle.Width(boxWidth).Height(9).Render(sb.String())
}

func (m *Model) alarmsView() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("Alarmes"))
	sb.WriteString("\n\n")

	if alarms := m.board.Text(display.RegionAlarms); alarms != "" {
		sb.WriteString(alarms)
	} else {
		sb.WriteString(inactiveStyle.Render("Aucune alarme"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.inputLine("Heure", inputAlarmTime))
	sb.WriteString("\n")
	sb.WriteString(m.inputLine("Message", inputAlarmMessage))

	if m.board.Visible(display.RegionAlarmAlert) {
		sb.WriteString("\n\n")
		sb.WriteString(alertStyle.Render(m.board.Text(display.RegionAlarmAlert)))
	}

	return boxStyle.Width(boxWidth).Height(9).Render(sb.String())
}

func (m *Model) inputLine(label string, i int) string {
	marker := "  "
	labelStyle := inactiveStyle
	if m.InputFocus == i {
		marker = "→ "
		labelStyle = inputStyle
	}
	return labelStyle.Render(fmt.Sprintf("%s%s: ", marker, label)) + m.Inputs[i].View()
}

func (m *Model) historyView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Width(2*boxWidth + 6).Render("Journal"))
	sb.WriteString("\n\n")

	if len(m.History) == 0 {
		sb.WriteString(inactiveStyle.Render("Aucun événement."))
	}

	const visible = 15
	end := m.HistoryScroll + visible
	if end > len(m.History) {
		end = len(m.History)
	}
	for _, e := range m.History[m.HistoryScroll:end] {
		sb.WriteString(FormatEntry(e, logTimeStyle.Render, logTagStyle.Render))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("Défiler: Haut/Bas | Retour: h/Esc"))

	return sb.String()
}

// FormatEntry renders a journal entry on one line. The style functions
// decorate the timestamp and the gadget/kind tag.
func FormatEntry(e timelog.Entry, timeFn, tagFn func(...string) string) string {
	line := fmt.Sprintf("  %s  %s", timeFn(e.At.Local().Format("Jan 02 15:04:05")), tagFn(fmt.Sprintf("[%s %s]", e.Gadget, e.Kind)))
	if e.Detail != "" {
		line += " " + e.Detail
	}
	return line
}
