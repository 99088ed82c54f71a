// internal/hw/gpio.go
// Package hw binds the keyer's logical inputs and the buzzer to
// physical GPIO pins through periph.io.
package hw

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Pins names the physical wiring. Buttons are tactile switches to
// ground (pull-up, active low); the buzzer may be wired either way.
type Pins struct {
	Dot             string
	Dash            string
	Commit          string
	Buzzer          string
	BuzzerActiveLow bool
}

// Button is a polled, active-low input pin. Debouncing is not done
// here; the core's input monitor owns that.
type Button struct {
	pin gpio.PinIn
}

// Asserted reports whether the button is currently pressed.
func (b *Button) Asserted() bool {
	return b.pin.Read() == gpio.Low
}

// Buzzer is the on/off tone output pin.
type Buzzer struct {
	pin       gpio.PinOut
	activeLow bool
}

// SetActive drives the buzzer. Fire-and-forget: a write error on a
// memory-mapped pin cannot be meaningfully recovered mid-tick.
func (b *Buzzer) SetActive(on bool) {
	_ = b.pin.Out(levelFor(on, b.activeLow))
}

func levelFor(on, activeLow bool) gpio.Level {
	return gpio.Level(on != activeLow)
}

// Board is the opened hardware frontend.
type Board struct {
	Dot    *Button
	Dash   *Button
	Commit *Button
	Buzzer *Buzzer
}

// Open initializes the periph host, configures the three button pins
// with pull-ups and the buzzer pin as a silent output.
func Open(p Pins) (*Board, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init gpio host: %w", err)
	}

	buttons := make([]*Button, 0, 3)
	for _, name := range []string{p.Dot, p.Dash, p.Commit} {
		pin := gpioreg.ByName(name)
		if pin == nil {
			return nil, fmt.Errorf("unknown gpio pin %q", name)
		}
		if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("configure pin %q: %w", name, err)
		}
		buttons = append(buttons, &Button{pin: pin})
	}

	buzzerPin := gpioreg.ByName(p.Buzzer)
	if buzzerPin == nil {
		return nil, fmt.Errorf("unknown gpio pin %q", p.Buzzer)
	}
	buzzer := &Buzzer{pin: buzzerPin, activeLow: p.BuzzerActiveLow}
	// Silent at startup.
	if err := buzzerPin.Out(levelFor(false, p.BuzzerActiveLow)); err != nil {
		return nil, fmt.Errorf("configure pin %q: %w", p.Buzzer, err)
	}

	return &Board{
		Dot:    buttons[0],
		Dash:   buttons[1],
		Commit: buttons[2],
		Buzzer: buzzer,
	}, nil
}
