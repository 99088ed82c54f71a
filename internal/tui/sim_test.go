package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/keyer"
)

type nullTone struct{}

func (nullTone) SetActive(bool) {}

func newTestModel(t *testing.T) Model {
	t.Helper()
	now := time.Now()
	dot, dash, commit := NewPins(time.Now)
	k, err := keyer.New(keyer.DefaultConfig(),
		keyer.Inputs{Dot: dot, Dash: dash, Commit: commit}, nullTone{}, now)
	if err != nil {
		t.Fatalf("keyer.New() error = %v", err)
	}
	return NewModel(k, dot, dash, commit, 5*time.Millisecond, 40)
}

func TestPin_ExpiresWithoutRepeat(t *testing.T) {
	now := time.Unix(1000, 0)
	clock := func() time.Time { return now }
	p := &Pin{clock: clock}

	if p.Asserted() {
		t.Error("Asserted() = true before any press")
	}
	p.press(now)
	if !p.Asserted() {
		t.Error("Asserted() = false right after press")
	}
	now = now.Add(keyHold / 2)
	if !p.Asserted() {
		t.Error("Asserted() = false inside the hold window")
	}
	now = now.Add(keyHold)
	if p.Asserted() {
		t.Error("Asserted() = true after the hold expired")
	}
}

func TestModel_KeyPressAssertsPin(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = next.(Model)
	if !m.dot.Asserted() {
		t.Error("dot pin not asserted after 'j' keypress")
	}
	if m.dash.Asserted() {
		t.Error("dash pin asserted without a keypress")
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("Update('q') returned nil cmd, want tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("Update('q') cmd() = %T, want tea.QuitMsg", cmd())
	}
}

func TestModel_ViewShowsState(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	view := m.View()
	for _, want := range []string{"DOT", "DASH", "OK", "Letter", "Text"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
