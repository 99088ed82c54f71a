package audio

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SampleRate != 48000 {
		t.Errorf("DefaultConfig().SampleRate = %d, want 48000", cfg.SampleRate)
	}
	if cfg.Frequency != 600 {
		t.Errorf("DefaultConfig().Frequency = %v, want 600", cfg.Frequency)
	}
	if cfg.Volume <= 0 || cfg.Volume > 1 {
		t.Errorf("DefaultConfig().Volume = %v, want in (0, 1]", cfg.Volume)
	}
	if cfg.BufferSize == 0 {
		t.Error("DefaultConfig().BufferSize = 0, want non-zero")
	}
}

func TestNew(t *testing.T) {
	tone := New(DefaultConfig())
	if tone == nil {
		t.Fatal("New() returned nil")
	}
	if tone.Active() {
		t.Error("Active() = true on a fresh tone, want false")
	}
}

func TestTone_SetActive(t *testing.T) {
	tone := New(DefaultConfig())
	tone.SetActive(true)
	if !tone.Active() {
		t.Error("Active() = false after SetActive(true)")
	}
	tone.SetActive(false)
	if tone.Active() {
		t.Error("Active() = true after SetActive(false)")
	}
}

func TestTone_StartWithoutInit(t *testing.T) {
	tone := New(DefaultConfig())
	if err := tone.Start(); err != ErrNotInitialized {
		t.Errorf("Start() error = %v, want %v", err, ErrNotInitialized)
	}
}

func TestTone_StopWithoutStart(t *testing.T) {
	tone := New(DefaultConfig())
	if err := tone.Stop(); err != ErrNotRunning {
		t.Errorf("Stop() error = %v, want %v", err, ErrNotRunning)
	}
}
