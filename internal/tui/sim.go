// Package tui provides an interactive terminal simulator for the keyer:
// keyboard keys stand in for the three buttons, a fast tick drives the
// core, and the snapshot is rendered as a status panel.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/display"
	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/keyer"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(9)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Padding(0, 1)

	buttonDownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1a1a2e")).
			Background(lipgloss.Color("#a8e6cf")).
			Padding(0, 1)

	playStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff6b6b"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)
)

// keyHold is how long one keypress keeps a simulated button asserted.
// Terminal input has no release events; OS key repeat refreshes the
// hold, so keeping a key down behaves like holding the button.
const keyHold = 150 * time.Millisecond

// Pin is a keyboard-driven sampler whose assertion expires unless
// refreshed by key repeat.
type Pin struct {
	until time.Time
	clock func() time.Time
}

func (p *Pin) Asserted() bool { return p.clock().Before(p.until) }

func (p *Pin) press(now time.Time) { p.until = now.Add(keyHold) }

type tickMsg time.Time

// Model is the bubbletea model wrapping a keyer.
type Model struct {
	k         *keyer.Keyer
	dot       *Pin
	dash      *Pin
	commit    *Pin
	tick      time.Duration
	tailChars int
	snap      keyer.Snapshot
}

// NewModel builds the simulator around an existing keyer core. The
// three pins must be the samplers the keyer was constructed with.
func NewModel(k *keyer.Keyer, dot, dash, commit *Pin, tick time.Duration, tailChars int) Model {
	return Model{
		k:         k,
		dot:       dot,
		dash:      dash,
		commit:    commit,
		tick:      tick,
		tailChars: tailChars,
		snap:      k.Snapshot(),
	}
}

// NewPins returns the three keyboard-driven samplers for the keyer.
func NewPins(clock func() time.Time) (dot, dash, commit *Pin) {
	return &Pin{clock: clock}, &Pin{clock: clock}, &Pin{clock: clock}
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		now := time.Now()
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "j", ".":
			m.dot.press(now)
		case "k", "-":
			m.dash.press(now)
		case " ", "enter":
			m.commit.press(now)
		}
		return m, nil

	case tickMsg:
		m.k.Tick(time.Time(msg))
		m.snap = m.k.Snapshot()
		return m, m.tickCmd()
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("Morse keyer  u=%dms", m.snap.Unit.Milliseconds())))
	sb.WriteString("\n\n")

	sb.WriteString(button("DOT", m.snap.DotPressed))
	sb.WriteString(button("DASH", m.snap.DashPressed))
	sb.WriteString(button("OK", m.snap.CommitPressed))
	if m.snap.PlaybackActive {
		sb.WriteString("  ")
		sb.WriteString(playStyle.Render("PLAYING"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(labelStyle.Render("Letter"))
	sb.WriteString(valueStyle.Render(m.snap.Symbols))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("Text"))
	sb.WriteString(valueStyle.Render(display.Tail(m.snap.Text, m.tailChars, m.snap.Truncated)))
	sb.WriteString("\n")

	sb.WriteString(helpStyle.Render(
		"j/. dot   k/- dash   space commit (hold to clear, triple-tap to play)   q quit"))
	sb.WriteString("\n")
	return sb.String()
}

func button(label string, down bool) string {
	if down {
		return buttonDownStyle.Render(label)
	}
	return buttonStyle.Render(label)
}
