// pong is the classic two-player paddle game on a 320x200, 16-color screen.
//
// Usage:
//
//	pong                     - Play with the default backend
//	pong backends            - List available display backends
//	pong simulate            - Run the game headless and print the final state
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-file <path>     - Write logs to a file instead of stderr
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/pong13/internal/platform/console"
	_ "github.com/vovakirdan/pong13/internal/platform/tui"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Two-player Pong in a 320x200 screen",
	Long: `Pong for two players sharing one keyboard.

Controls:
  W / S        - Left paddle up / down
  Up / Down    - Right paddle up / down
  Esc          - Quit and show the final score

Difficulty options:
  easy   - Slower serve, ball speed capped
  normal - Classic constants
  hard   - Faster serve and paddles

Examples:
  pong
  pong --backend tcell
  pong --difficulty hard
  pong --config ./my-pong.yaml --log-file pong.log --log-level debug
  pong simulate --frames 600 --keys w,w,up`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagBackend, "backend", "", "Display backend (see 'pong backends')")

	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(simulateCmd)
}
