// cmd/run.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/config"
	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/display"
	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/hw"
	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/keyer"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the keyer on GPIO buttons and buzzer",
	Long: `Polls the three buttons over GPIO, drives the buzzer, and prints the
keyer state to the terminal. Pin assignments come from the config file.`,
	RunE: runKeyer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runKeyer(cmd *cobra.Command, args []string) error {
	settings, err := config.Get()
	if err != nil {
		return err
	}

	board, err := hw.Open(hw.Pins{
		Dot:             settings.DotPin,
		Dash:            settings.DashPin,
		Commit:          settings.CommitPin,
		Buzzer:          settings.BuzzerPin,
		BuzzerActiveLow: settings.BuzzerActiveLow,
	})
	if err != nil {
		return fmt.Errorf("open gpio: %w", err)
	}
	defer board.Buzzer.SetActive(false)

	k, err := keyer.New(settings.Keyer(), keyer.Inputs{
		Dot:    board.Dot,
		Dash:   board.Dash,
		Commit: board.Commit,
	}, board.Buzzer, time.Now())
	if err != nil {
		return fmt.Errorf("init keyer: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console := display.NewConsole(os.Stdout, settings.TailChars)
	ticker := time.NewTicker(settings.TickInterval())
	defer ticker.Stop()

	fmt.Printf("morsekey: dot=%s dash=%s ok=%s buzzer=%s unit=%dms\n",
		settings.DotPin, settings.DashPin, settings.CommitPin,
		settings.BuzzerPin, settings.UnitMs)

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case now := <-ticker.C:
			k.Tick(now)
			console.Render(k.Snapshot())
		}
	}
}
