// internal/audio/tone.go
// Package audio implements the sidetone output device: a playback
// stream that synthesizes a sine tone while the actuator is active.
package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/gen2brain/malgo"
)

var (
	ErrNotInitialized = errors.New("audio tone not initialized")
	ErrAlreadyRunning = errors.New("audio tone already running")
	ErrNotRunning     = errors.New("audio tone not running")
)

// Config holds tone output configuration
type Config struct {
	SampleRate uint32  // e.g., 48000
	Frequency  float64 // sidetone frequency in Hz
	Volume     float64 // linear gain 0.0-1.0
	BufferSize uint32  // frames per callback
}

// DefaultConfig returns sensible defaults for a CW sidetone
func DefaultConfig() Config {
	return Config{
		SampleRate: 48000,
		Frequency:  600,
		Volume:     0.4,
		BufferSize: 256,
	}
}

// Tone is an on/off sine generator on the default playback device.
// SetActive is safe to call from any goroutine; synthesis happens on
// the audio thread.
type Tone struct {
	config  Config
	ctx     *malgo.AllocatedContext
	device  *malgo.Device
	running bool
	mu      sync.Mutex

	active atomic.Bool
	phase  float64 // advanced only on the audio thread
}

// New creates a new tone output instance
func New(cfg Config) *Tone {
	return &Tone{config: cfg}
}

// Init initializes the audio backend
func (t *Tone) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return fmt.Errorf("init audio context: %w", err)
	}
	t.ctx = ctx
	return nil
}

// Start opens the default playback device and begins synthesis. The
// stream runs continuously; silence is written while inactive so
// activation latency stays at one period.
func (t *Tone) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return ErrAlreadyRunning
	}
	if t.ctx == nil {
		return ErrNotInitialized
	}

	deviceConfig := malgo.DeviceConfig{
		DeviceType:         malgo.Playback,
		SampleRate:         t.config.SampleRate,
		PeriodSizeInFrames: t.config.BufferSize,
		Playback: malgo.SubConfig{
			Format:   malgo.FormatF32,
			Channels: 1,
		},
	}

	step := 2 * math.Pi * t.config.Frequency / float64(t.config.SampleRate)

	onSendFrames := func(outputSamples, inputSamples []byte, frameCount uint32) {
		samples := bytesToFloat32(outputSamples)
		if t.active.Load() {
			for i := range samples {
				samples[i] = float32(t.config.Volume * math.Sin(t.phase))
				t.phase += step
			}
			if t.phase > 2*math.Pi {
				t.phase -= 2 * math.Pi * math.Floor(t.phase/(2*math.Pi))
			}
		} else {
			for i := range samples {
				samples[i] = 0
			}
			t.phase = 0
		}
	}

	device, err := malgo.InitDevice(t.ctx.Context, deviceConfig, malgo.DeviceCallbacks{
		Data: onSendFrames,
	})
	if err != nil {
		return fmt.Errorf("init device: %w", err)
	}
	if err := device.Start(); err != nil {
		device.Uninit()
		return fmt.Errorf("start device: %w", err)
	}

	t.device = device
	t.running = true
	return nil
}

// SetActive turns the tone on or off. Fire-and-forget.
func (t *Tone) SetActive(on bool) {
	t.active.Store(on)
}

// Active reports whether the tone is currently sounding.
func (t *Tone) Active() bool {
	return t.active.Load()
}

// Stop halts playback
func (t *Tone) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return ErrNotRunning
	}
	if t.device != nil {
		_ = t.device.Stop()
		t.device.Uninit()
		t.device = nil
	}
	t.running = false
	return nil
}

// Close releases all audio resources
func (t *Tone) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running && t.device != nil {
		_ = t.device.Stop()
		t.device.Uninit()
		t.device = nil
		t.running = false
	}
	if t.ctx != nil {
		_ = t.ctx.Uninit()
		t.ctx.Free()
		t.ctx = nil
	}
	return nil
}

// bytesToFloat32 reinterprets the raw device buffer as float32 samples
func bytesToFloat32(data []byte) []float32 {
	if len(data) < 4 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), len(data)/4)
}
