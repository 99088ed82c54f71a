// internal/playback/sequencer.go
// Package playback compiles a symbol or text buffer into timed tone/gap
// stages and drives them in an auto-repeating loop until cancelled.
package playback

import (
	"strings"
	"time"

	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/morse"
)

// LoopGapUnits is the silence between the end of the message and its
// repetition. Same length as a word gap, so the replay reads like a new
// word starting.
const LoopGapUnits = 7

// StageKind tags one timed segment of a compiled sequence.
type StageKind int8

const (
	// ToneShort is a dot tone (1 unit).
	ToneShort StageKind = iota
	// ToneLong is a dash tone (3 units).
	ToneLong
	// GapElement is the silence between elements within a letter (1 unit).
	GapElement
	// GapLetter is the silence between letters (3 units).
	GapLetter
	// GapWord is the silence where a space occurs (7 units).
	GapWord
	// LoopGap is the end-of-message silence before the sequence repeats.
	LoopGap
)

// Tone reports whether this stage drives the actuator on.
func (k StageKind) Tone() bool { return k == ToneShort || k == ToneLong }

func (k StageKind) String() string {
	switch k {
	case ToneShort:
		return "tone-short"
	case ToneLong:
		return "tone-long"
	case GapElement:
		return "gap-element"
	case GapLetter:
		return "gap-letter"
	case GapWord:
		return "gap-word"
	case LoopGap:
		return "loop-gap"
	default:
		return "invalid"
	}
}

// Stage is one timed segment with an explicit duration.
type Stage struct {
	Kind     StageKind
	Duration time.Duration
}

func stage(kind StageKind, units int, unit time.Duration) Stage {
	return Stage{Kind: kind, Duration: time.Duration(units) * unit}
}

// CompileSymbols compiles a single in-progress letter (a string of '.'
// and '-') into tone stages separated by inter-element gaps. An empty or
// all-invalid symbol string compiles to nil.
func CompileSymbols(symbols string, unit time.Duration) []Stage {
	var stages []Stage
	for _, s := range symbols {
		var tone Stage
		switch s {
		case morse.Dot:
			tone = stage(ToneShort, morse.DotUnits, unit)
		case morse.Dash:
			tone = stage(ToneLong, morse.DashUnits, unit)
		default:
			continue
		}
		if len(stages) > 0 {
			stages = append(stages, stage(GapElement, morse.ElementGapUnits, unit))
		}
		stages = append(stages, tone)
	}
	return finishLoop(stages, unit)
}

// CompileText compiles committed text into stages: tones separated by
// element gaps within a letter, letter gaps between letters, and a word
// gap where a space occurs. Consecutive spaces collapse to a single word
// gap, a pending letter gap is replaced (not doubled) by a word gap, and
// characters with no Morse encoding are skipped. Trailing spaces never
// contribute stages.
func CompileText(text string, unit time.Duration) []Stage {
	text = strings.TrimRight(text, " ")

	var stages []Stage
	for _, c := range text {
		if c == ' ' {
			if n := len(stages); n > 0 {
				switch stages[n-1].Kind {
				case GapLetter:
					// The letter gap is replaced by the word gap, not doubled.
					stages[n-1] = stage(GapWord, morse.WordGapUnits, unit)
				case GapWord:
					// Consecutive spaces collapse to one word gap.
				default:
					stages = append(stages, stage(GapWord, morse.WordGapUnits, unit))
				}
			}
			continue
		}
		pattern := morse.Encode(c)
		if pattern == "" {
			continue
		}
		for i, s := range pattern {
			if i > 0 {
				stages = append(stages, stage(GapElement, morse.ElementGapUnits, unit))
			}
			if s == morse.Dash {
				stages = append(stages, stage(ToneLong, morse.DashUnits, unit))
			} else {
				stages = append(stages, stage(ToneShort, morse.DotUnits, unit))
			}
		}
		stages = append(stages, stage(GapLetter, morse.LetterGapUnits, unit))
	}
	if n := len(stages); n > 0 && stages[n-1].Kind == GapLetter {
		stages = stages[:n-1]
	}
	return finishLoop(stages, unit)
}

// finishLoop appends the loop gap, or drops a sequence that ends in
// silence only (nothing audible was compiled).
func finishLoop(stages []Stage, unit time.Duration) []Stage {
	audible := false
	for _, s := range stages {
		if s.Kind.Tone() {
			audible = true
			break
		}
	}
	if !audible {
		return nil
	}
	return append(stages, stage(LoopGap, LoopGapUnits, unit))
}

// Sequencer drives a compiled stage sequence. Inactive until Start
// succeeds; advances on every Tick; loops indefinitely via the trailing
// loop-gap stage until Cancel.
type Sequencer struct {
	stages     []Stage
	index      int
	stageStart time.Time
	active     bool
}

// NewSequencer returns an inactive sequencer.
func NewSequencer() *Sequencer { return &Sequencer{} }

// Start activates the sequencer with a compiled sequence. An empty
// sequence does not start playback and Start reports false.
func (p *Sequencer) Start(stages []Stage, now time.Time) bool {
	if len(stages) == 0 {
		return false
	}
	p.stages = stages
	p.index = 0
	p.stageStart = now
	p.active = true
	return true
}

// Cancel deactivates playback immediately.
func (p *Sequencer) Cancel() {
	p.active = false
	p.stages = nil
}

// Active reports whether a sequence is being driven.
func (p *Sequencer) Active() bool { return p.active }

// InLoopGap reports whether the sequencer is in the end-of-message gap.
func (p *Sequencer) InLoopGap() bool {
	return p.active && p.stages[p.index].Kind == LoopGap
}

// Tick advances past any expired stages and reports whether the tone
// actuator should be on. Wraps from the final (loop-gap) stage back to
// the first, producing an indefinite repeat.
func (p *Sequencer) Tick(now time.Time) bool {
	if !p.active {
		return false
	}
	for now.Sub(p.stageStart) >= p.stages[p.index].Duration {
		p.stageStart = p.stageStart.Add(p.stages[p.index].Duration)
		p.index++
		if p.index == len(p.stages) {
			p.index = 0
		}
	}
	return p.stages[p.index].Kind.Tone()
}
