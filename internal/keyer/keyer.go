// internal/keyer/keyer.go
// Package keyer implements the tick-driven core of the three-button
// Morse keyer: debounced inputs feed symbol accumulation, idle-gap
// segmentation, commit-button gestures and tone playback, all advanced
// synchronously by a single Tick.
package keyer

import (
	"errors"
	"time"

	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/input"
	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/morse"
	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/playback"
)

// Defaults for the derived timing configuration. Every threshold scales
// from Unit except the debounce and the gesture windows, which are tied
// to human motor timing rather than keying speed.
const (
	DefaultUnit       = 120 * time.Millisecond
	DefaultClearHold  = 2000 * time.Millisecond
	DefaultTapWindow  = 600 * time.Millisecond
	DefaultMaxTextLen = 120
)

var (
	// ErrInvalidUnit indicates the base unit must be positive
	ErrInvalidUnit = errors.New("unit duration must be positive")
	// ErrInvalidClearHold indicates the clear hold threshold must be positive
	ErrInvalidClearHold = errors.New("clear hold duration must be positive")
	// ErrInvalidTapWindow indicates the multi-tap window must be positive
	ErrInvalidTapWindow = errors.New("multi-tap window must be positive")
	// ErrInvalidMaxTextLen indicates the text limit must be positive
	ErrInvalidMaxTextLen = errors.New("max text length must be positive")
	// ErrInputRequired indicates all three input samplers are required
	ErrInputRequired = errors.New("dot, dash and commit samplers are required")
	// ErrActuatorRequired indicates a tone actuator is required
	ErrActuatorRequired = errors.New("tone actuator is required")
)

// Sampler exposes a boolean "currently asserted" sample on demand for
// one logical input.
type Sampler interface {
	Asserted() bool
}

// Actuator is the fire-and-forget tone output device.
type Actuator interface {
	SetActive(bool)
}

// Inputs are the three logical buttons.
type Inputs struct {
	Dot    Sampler
	Dash   Sampler
	Commit Sampler
}

// Config holds the keyer's timing and capacity settings. All gap and
// tone thresholds derive from Unit, so changing it rescales everything
// consistently.
type Config struct {
	// Unit is the base time quantum: dot = 1 unit, dash = 3, element
	// gap = 1, letter gap = 3, word gap = 7.
	Unit time.Duration
	// Debounce is how long a changed raw level must persist before it
	// is accepted.
	Debounce time.Duration
	// ClearHold is how long the commit button must be held to clear.
	ClearHold time.Duration
	// TapWindow groups consecutive short commit presses into one gesture.
	TapWindow time.Duration
	// MaxTextLen bounds the committed text; overflow trims the oldest
	// characters.
	MaxTextLen int
	// Sidetone sounds the actuator while dot or dash is held.
	Sidetone bool
}

// DefaultConfig returns the firmware defaults.
func DefaultConfig() Config {
	return Config{
		Unit:       DefaultUnit,
		Debounce:   input.DefaultDebounce,
		ClearHold:  DefaultClearHold,
		TapWindow:  DefaultTapWindow,
		MaxTextLen: DefaultMaxTextLen,
		Sidetone:   true,
	}
}

func (c Config) validate() error {
	var errs []error
	if c.Unit <= 0 {
		errs = append(errs, ErrInvalidUnit)
	}
	if c.Debounce <= 0 {
		errs = append(errs, input.ErrInvalidDebounce)
	}
	if c.ClearHold <= 0 {
		errs = append(errs, ErrInvalidClearHold)
	}
	if c.TapWindow <= 0 {
		errs = append(errs, ErrInvalidTapWindow)
	}
	if c.MaxTextLen <= 0 {
		errs = append(errs, ErrInvalidMaxTextLen)
	}
	return errors.Join(errs...)
}

func (c Config) letterGap() time.Duration {
	return time.Duration(morse.LetterGapUnits) * c.Unit
}

func (c Config) wordGap() time.Duration {
	return time.Duration(morse.WordGapUnits) * c.Unit
}

// Snapshot is the read-only view of keyer state handed to a display
// sink after each tick.
type Snapshot struct {
	Unit           time.Duration
	DotPressed     bool
	DashPressed    bool
	CommitPressed  bool
	Symbols        string
	Text           string
	Truncated      bool
	PlaybackActive bool
}

// Keyer holds all core state. It is confined to a single caller: one
// Tick at a time, no locking. All timing decisions compare the time
// sampled at tick entry against stored timestamps; counter wraparound
// is out of scope for any session of interest.
type Keyer struct {
	cfg Config
	in  Inputs
	act Actuator

	dot    *input.Button
	dash   *input.Button
	commit *input.Button

	symbols string
	text    *TextBuffer
	gesture gesture
	seq     *playback.Sequencer

	prevKeying   bool
	silenceStart time.Time
}

// New builds a keyer, seeding every button from its live level so a
// held button at startup produces no false edge.
func New(cfg Config, in Inputs, act Actuator, now time.Time) (*Keyer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if in.Dot == nil || in.Dash == nil || in.Commit == nil {
		return nil, ErrInputRequired
	}
	if act == nil {
		return nil, ErrActuatorRequired
	}

	dot, err := input.NewButton(cfg.Debounce, in.Dot.Asserted(), now)
	if err != nil {
		return nil, err
	}
	dash, err := input.NewButton(cfg.Debounce, in.Dash.Asserted(), now)
	if err != nil {
		return nil, err
	}
	commit, err := input.NewButton(cfg.Debounce, in.Commit.Asserted(), now)
	if err != nil {
		return nil, err
	}

	return &Keyer{
		cfg:    cfg,
		in:     in,
		act:    act,
		dot:    dot,
		dash:   dash,
		commit: commit,
		text:   newTextBuffer(cfg.MaxTextLen),
		gesture: gesture{
			clearHold: cfg.ClearHold,
			tapWindow: cfg.TapWindow,
		},
		seq:          playback.NewSequencer(),
		prevKeying:   false,
		silenceStart: now,
	}, nil
}

// Tick advances the whole core by one step. now must be sampled once at
// tick entry and be monotonic across calls.
func (k *Keyer) Tick(now time.Time) {
	evDot := k.dot.Update(k.in.Dot.Asserted(), now)
	evDash := k.dash.Update(k.in.Dash.Asserted(), now)
	evCommit := k.commit.Update(k.in.Commit.Asserted(), now)

	// Any accepted press cancels playback; the press itself is still
	// processed normally below.
	if k.seq.Active() &&
		(evDot == input.Pressed || evDash == input.Pressed || evCommit == input.Pressed) {
		k.seq.Cancel()
	}

	// Idle-gap segmentation on the silence-to-keying transition.
	keying := k.dot.Pressed() || k.dash.Pressed()
	if !k.prevKeying && keying {
		gap := now.Sub(k.silenceStart)
		if gap >= k.cfg.wordGap() {
			k.commitLetter()
			k.text.AppendSpaceIfNeeded()
		} else if gap >= k.cfg.letterGap() {
			k.commitLetter()
		}
	}

	// A completed dot or dash press queues its symbol on release.
	if evDot == input.Released {
		k.symbols += string(morse.Dot)
	}
	if evDash == input.Released {
		k.symbols += string(morse.Dash)
	}

	switch k.gesture.update(k.commit, evCommit, now) {
	case ActionCommit:
		k.commitLetter()
	case ActionClear:
		k.clearAll()
	case ActionTogglePlayback:
		k.togglePlayback(now)
	}

	if k.prevKeying && !keying {
		k.silenceStart = now
	}
	k.prevKeying = keying

	// Playback owns the actuator while active; otherwise the sidetone
	// follows the dot/dash keys (never the commit button).
	tone := false
	if k.seq.Active() {
		tone = k.seq.Tick(now)
	} else if k.cfg.Sidetone {
		tone = keying
	}
	k.act.SetActive(tone)
}

// commitLetter decodes the pending symbols into one character. An
// unmatched sequence still commits, as the unknown sentinel.
func (k *Keyer) commitLetter() {
	if k.symbols == "" {
		return
	}
	k.text.Append(morse.Decode(k.symbols))
	k.symbols = ""
}

func (k *Keyer) clearAll() {
	k.symbols = ""
	k.text.Clear()
	k.seq.Cancel()
}

// togglePlayback starts looping playback of the in-progress letter if
// one is being keyed, else of the whole committed text. An empty
// compilation leaves playback off.
func (k *Keyer) togglePlayback(now time.Time) {
	if k.seq.Active() {
		k.seq.Cancel()
		return
	}
	var stages []playback.Stage
	if k.symbols != "" {
		stages = playback.CompileSymbols(k.symbols, k.cfg.Unit)
	} else {
		stages = playback.CompileText(k.text.String(), k.cfg.Unit)
	}
	k.seq.Start(stages, now)
}

// Snapshot returns the current observable state for rendering.
func (k *Keyer) Snapshot() Snapshot {
	return Snapshot{
		Unit:           k.cfg.Unit,
		DotPressed:     k.dot.Pressed(),
		DashPressed:    k.dash.Pressed(),
		CommitPressed:  k.commit.Pressed(),
		Symbols:        k.symbols,
		Text:           k.text.String(),
		Truncated:      k.text.Truncated(),
		PlaybackActive: k.seq.Active(),
	}
}

// Text returns the committed text.
func (k *Keyer) Text() string { return k.text.String() }

// Symbols returns the in-progress symbol sequence.
func (k *Keyer) Symbols() string { return k.symbols }

// PlaybackActive reports whether playback is running.
func (k *Keyer) PlaybackActive() bool { return k.seq.Active() }
