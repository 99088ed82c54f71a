// internal/input/button.go
// Package input converts raw noisy digital levels into stable
// press/release events with hold-duration tracking.
package input

import (
	"errors"
	"time"
)

// ErrInvalidDebounce indicates the debounce interval must be positive.
var ErrInvalidDebounce = errors.New("debounce interval must be positive")

// DefaultDebounce is the interval a changed raw level must persist
// before the change is accepted as a real transition.
const DefaultDebounce = 25 * time.Millisecond

// Event is the result of one debounce update.
type Event int8

const (
	// None means the debounced state did not change.
	None Event = iota
	// Pressed means an accepted transition to the pressed state.
	Pressed
	// Released means an accepted transition to the released state.
	Released
)

func (e Event) String() string {
	switch e {
	case None:
		return "none"
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return "invalid"
	}
}

// Button holds the debounced state of one physical button. It is mutated
// only by Update and read freely by the rest of the core.
type Button struct {
	debounce time.Duration

	pressed     bool // current debounced level
	prevPressed bool // debounced level before the last accepted transition
	lastEdge    time.Time
	pressStart  time.Time
}

// NewButton creates a debounced button seeded from the raw level at
// startup, so a button held at power-on produces no false edge.
func NewButton(debounce time.Duration, rawPressed bool, now time.Time) (*Button, error) {
	if debounce <= 0 {
		return nil, ErrInvalidDebounce
	}
	return &Button{
		debounce:    debounce,
		pressed:     rawPressed,
		prevPressed: rawPressed,
		lastEdge:    now,
		pressStart:  now,
	}, nil
}

// Update feeds one raw sample taken at now and returns the resulting
// event. A raw level that differs from the debounced level is accepted
// only once the level has disagreed for at least the debounce interval;
// while the levels agree the reference time keeps advancing, so any
// sustained new level is eventually accepted.
func (b *Button) Update(rawPressed bool, now time.Time) Event {
	if rawPressed == b.pressed {
		b.lastEdge = now
		return None
	}
	if now.Sub(b.lastEdge) < b.debounce {
		return None
	}
	b.prevPressed = b.pressed
	b.pressed = rawPressed
	b.lastEdge = now
	if b.pressed {
		b.pressStart = now
		return Pressed
	}
	return Released
}

// Pressed reports the current debounced level.
func (b *Button) Pressed() bool { return b.pressed }

// HeldFor returns how long the current press has lasted. Meaningful only
// while Pressed is true, or immediately after a Released event.
func (b *Button) HeldFor(now time.Time) time.Duration {
	return now.Sub(b.pressStart)
}

// PressStart returns when the current press began.
func (b *Button) PressStart() time.Time { return b.pressStart }
