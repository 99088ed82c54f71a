// internal/keyer/gesture.go
package keyer

import (
	"time"

	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/input"
)

// tripleTapCount is the tap count that toggles playback.
const tripleTapCount = 3

// Action is the resolution of the commit button's gesture state machine.
type Action int8

const (
	// ActionNone means no gesture resolved this tick.
	ActionNone Action = iota
	// ActionCommit finalizes the in-progress letter.
	ActionCommit
	// ActionClear resets text, symbols and playback.
	ActionClear
	// ActionTogglePlayback turns playback on or off.
	ActionTogglePlayback
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionCommit:
		return "commit"
	case ActionClear:
		return "clear"
	case ActionTogglePlayback:
		return "toggle-playback"
	default:
		return "invalid"
	}
}

// gesture counts the commit button's short presses within a rolling
// window to distinguish single/double/triple tap from a long hold.
// Committing is deferred until no further tap can arrive, bounded by the
// window so the device never feels unresponsive.
type gesture struct {
	clearHold time.Duration
	tapWindow time.Duration

	taps         int
	windowStart  time.Time
	clearLatched bool
}

// update advances the state machine with the commit button's event for
// this tick and returns at most one resolved action.
func (g *gesture) update(btn *input.Button, ev input.Event, now time.Time) Action {
	// A pending 1-2 tap count resolves to a commit once the window
	// lapses with no further tap. Checked every tick, not only on the
	// next press, so a trailing commit never stalls waiting for input.
	resolved := ActionNone
	if g.taps > 0 && now.Sub(g.windowStart) >= g.tapWindow {
		g.taps = 0
		resolved = ActionCommit
	}

	if btn.Pressed() {
		// Long hold fires the clear exactly once per physical hold.
		if !g.clearLatched && btn.HeldFor(now) >= g.clearHold {
			g.clearLatched = true
			g.taps = 0
			return ActionClear
		}
		return resolved
	}

	if ev != input.Released {
		return resolved
	}

	held := btn.HeldFor(now)
	wasLatched := g.clearLatched
	g.clearLatched = false
	if wasLatched || held >= g.clearHold {
		// Release after a long hold is not a tap.
		return resolved
	}

	if g.taps == 0 {
		g.taps = 1
		g.windowStart = now
		return resolved
	}
	g.taps++
	if g.taps >= tripleTapCount {
		g.taps = 0
		return ActionTogglePlayback
	}
	return resolved
}
