// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/keyer"
)

const (
	AppName       = "morsekey"
	ConfigType    = "yaml"
	DefaultConfig = `# Morse keyer configuration

# Timing
unit_ms: 120            # Base unit: dot = 1 unit, dash = 3, letter gap = 3, word gap = 7
debounce_ms: 25         # Raw level must persist this long before an edge is accepted
clear_hold_ms: 2000     # Commit button hold that clears everything
tap_window_ms: 600      # Window grouping commit taps into one gesture
tick_interval_ms: 5     # Idle delay between ticks

# Text
max_text_len: 120       # Hard cap for decoded text (prevents unbounded growth)
tail_chars: 40          # How many trailing characters the display shows

# Tone
sidetone: true          # Buzz while dot/dash is held
tone_frequency: 600     # Sidetone frequency in Hz (sim mode audio)
sample_rate: 48000      # Audio sample rate in Hz (sim mode audio)

# Hardware (run mode), periph.io pin names
dot_pin: "GPIO13"
dash_pin: "GPIO14"
commit_pin: "GPIO27"
buzzer_pin: "GPIO18"
buzzer_active_low: true # Buzzer sounds when the pin is driven low

# Output
debug: false            # Enable debug output
`
)

// Settings holds all application configuration
type Settings struct {
	// Timing
	UnitMs      int `mapstructure:"unit_ms"`
	DebounceMs  int `mapstructure:"debounce_ms"`
	ClearHoldMs int `mapstructure:"clear_hold_ms"`
	TapWindowMs int `mapstructure:"tap_window_ms"`
	TickMs      int `mapstructure:"tick_interval_ms"`

	// Text
	MaxTextLen int `mapstructure:"max_text_len"`
	TailChars  int `mapstructure:"tail_chars"`

	// Tone
	Sidetone      bool    `mapstructure:"sidetone"`
	ToneFrequency float64 `mapstructure:"tone_frequency"`
	SampleRate    float64 `mapstructure:"sample_rate"`

	// Hardware
	DotPin          string `mapstructure:"dot_pin"`
	DashPin         string `mapstructure:"dash_pin"`
	CommitPin       string `mapstructure:"commit_pin"`
	BuzzerPin       string `mapstructure:"buzzer_pin"`
	BuzzerActiveLow bool   `mapstructure:"buzzer_active_low"`

	// Output
	Debug bool `mapstructure:"debug"`
}

// Init initializes Viper with defaults and config file.
// Config file search order: current directory, then ~/.config/morsekey/
func Init() error {
	viper.SetDefault("unit_ms", 120)
	viper.SetDefault("debounce_ms", 25)
	viper.SetDefault("clear_hold_ms", 2000)
	viper.SetDefault("tap_window_ms", 600)
	viper.SetDefault("tick_interval_ms", 5)
	viper.SetDefault("max_text_len", 120)
	viper.SetDefault("tail_chars", 40)
	viper.SetDefault("sidetone", true)
	viper.SetDefault("tone_frequency", 600)
	viper.SetDefault("sample_rate", 48000)
	viper.SetDefault("dot_pin", "GPIO13")
	viper.SetDefault("dash_pin", "GPIO14")
	viper.SetDefault("commit_pin", "GPIO27")
	viper.SetDefault("buzzer_pin", "GPIO18")
	viper.SetDefault("buzzer_active_low", true)
	viper.SetDefault("debug", false)

	viper.SetConfigType(ConfigType)

	// Priority order: current directory first, then XDG config
	viper.AddConfigPath(".")

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	viper.AddConfigPath(filepath.Join(configDir, AppName))

	// Try .config.yaml first (hidden file), then config.yaml
	viper.SetConfigName(".config")
	if err = viper.ReadInConfig(); err != nil {
		viper.SetConfigName("config")
		err = viper.ReadInConfig()
	}

	// If no config exists anywhere, create the default in the XDG dir
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			xdgConfigPath := filepath.Join(configDir, AppName)
			if err = ensureConfigExists(xdgConfigPath); err != nil {
				return err
			}
			if err = viper.ReadInConfig(); err != nil {
				return fmt.Errorf("read config: %w", err)
			}
		} else {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

func ensureConfigExists(configPath string) error {
	configFile := filepath.Join(configPath, "config.yaml")

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err = os.MkdirAll(configPath, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
		if err = os.WriteFile(configFile, []byte(DefaultConfig), 0644); err != nil {
			return fmt.Errorf("write default config: %w", err)
		}
	}
	return nil
}

// Get returns the current settings
func Get() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &s, nil
}

// Validate checks that all settings are within acceptable ranges
func (s *Settings) Validate() error {
	var errs []error

	if s.UnitMs < 20 || s.UnitMs > 1000 {
		errs = append(errs, fmt.Errorf("unit_ms must be between 20 and 1000, got %d", s.UnitMs))
	}
	if s.DebounceMs < 1 || s.DebounceMs > 200 {
		errs = append(errs, fmt.Errorf("debounce_ms must be between 1 and 200, got %d", s.DebounceMs))
	}
	if s.ClearHoldMs < 500 || s.ClearHoldMs > 10000 {
		errs = append(errs, fmt.Errorf("clear_hold_ms must be between 500 and 10000, got %d", s.ClearHoldMs))
	}
	if s.TapWindowMs < 100 || s.TapWindowMs > 2000 {
		errs = append(errs, fmt.Errorf("tap_window_ms must be between 100 and 2000, got %d", s.TapWindowMs))
	}
	if s.TickMs < 1 || s.TickMs > 50 {
		errs = append(errs, fmt.Errorf("tick_interval_ms must be between 1 and 50, got %d", s.TickMs))
	}
	if s.MaxTextLen < 1 || s.MaxTextLen > 4096 {
		errs = append(errs, fmt.Errorf("max_text_len must be between 1 and 4096, got %d", s.MaxTextLen))
	}
	if s.TailChars < 1 || s.TailChars > s.MaxTextLen {
		errs = append(errs, fmt.Errorf("tail_chars must be between 1 and max_text_len (%d), got %d", s.MaxTextLen, s.TailChars))
	}
	if s.ToneFrequency < 100 || s.ToneFrequency > 3000 {
		errs = append(errs, fmt.Errorf("tone_frequency must be between 100 and 3000 Hz, got %v", s.ToneFrequency))
	}
	if s.SampleRate < 8000 || s.SampleRate > 192000 {
		errs = append(errs, fmt.Errorf("sample_rate must be between 8000 and 192000 Hz, got %v", s.SampleRate))
	}
	// Nyquist check: the sidetone must be representable at the sample rate
	if s.ToneFrequency >= s.SampleRate/2 {
		errs = append(errs, fmt.Errorf("tone_frequency (%v Hz) must be less than Nyquist frequency (%v Hz)", s.ToneFrequency, s.SampleRate/2))
	}
	for _, pin := range []struct{ key, val string }{
		{"dot_pin", s.DotPin},
		{"dash_pin", s.DashPin},
		{"commit_pin", s.CommitPin},
		{"buzzer_pin", s.BuzzerPin},
	} {
		if pin.val == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", pin.key))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Keyer translates the settings into the core's timing configuration.
func (s *Settings) Keyer() keyer.Config {
	return keyer.Config{
		Unit:       time.Duration(s.UnitMs) * time.Millisecond,
		Debounce:   time.Duration(s.DebounceMs) * time.Millisecond,
		ClearHold:  time.Duration(s.ClearHoldMs) * time.Millisecond,
		TapWindow:  time.Duration(s.TapWindowMs) * time.Millisecond,
		MaxTextLen: s.MaxTextLen,
		Sidetone:   s.Sidetone,
	}
}

// TickInterval returns the idle delay between ticks.
func (s *Settings) TickInterval() time.Duration {
	return time.Duration(s.TickMs) * time.Millisecond
}
