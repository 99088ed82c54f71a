// cmd/sim.go
package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/audio"
	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/config"
	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/keyer"
	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/tui"
)

var simNoAudio bool

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Simulate the keyer in the terminal",
	Long: `Runs the keyer without hardware: j/. keys the dot button, k/- the
dash button and space the commit button (key repeat holds a button
down). The sidetone plays through the default audio device.`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().BoolVar(&simNoAudio, "no-audio", false, "disable the audio sidetone")
	rootCmd.AddCommand(simCmd)
}

func runSim(cmd *cobra.Command, args []string) error {
	settings, err := config.Get()
	if err != nil {
		return err
	}

	var act keyer.Actuator = silentActuator{}
	if !simNoAudio {
		tone := audio.New(audio.Config{
			SampleRate: uint32(settings.SampleRate),
			Frequency:  settings.ToneFrequency,
			Volume:     0.4,
			BufferSize: 256,
		})
		if err := tone.Init(); err != nil {
			return fmt.Errorf("init audio: %w", err)
		}
		defer tone.Close()
		if err := tone.Start(); err != nil {
			return fmt.Errorf("start audio: %w", err)
		}
		defer tone.Stop()
		act = tone
	}

	dot, dash, commit := tui.NewPins(time.Now)
	k, err := keyer.New(settings.Keyer(), keyer.Inputs{
		Dot:    dot,
		Dash:   dash,
		Commit: commit,
	}, act, time.Now())
	if err != nil {
		return fmt.Errorf("init keyer: %w", err)
	}

	model := tui.NewModel(k, dot, dash, commit, settings.TickInterval(), settings.TailChars)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run simulator: %w", err)
	}
	return nil
}

// silentActuator swallows tone output when audio is disabled.
type silentActuator struct{}

func (silentActuator) SetActive(bool) {}
