// cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "morsekey",
	Short: "Three-button Morse keyer with tone playback",
	Long: `A two-button-plus-one Morse input device: dot and dash buttons key
symbols, the commit button finalizes letters, clears on a long hold, and
triple-taps to replay the buffer as tones.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags (override config file)
	rootCmd.PersistentFlags().IntP("unit", "u", 120, "base unit duration in ms (dot length)")
	rootCmd.PersistentFlags().IntP("tick", "t", 5, "tick interval in ms")
	rootCmd.PersistentFlags().IntP("text-limit", "l", 120, "max decoded text length")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "enable debug output")

	// Bind flags to viper
	viper.BindPFlag("unit_ms", rootCmd.PersistentFlags().Lookup("unit"))
	viper.BindPFlag("tick_interval_ms", rootCmd.PersistentFlags().Lookup("tick"))
	viper.BindPFlag("max_text_len", rootCmd.PersistentFlags().Lookup("text-limit"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
}
