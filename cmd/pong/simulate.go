package main

import (
	"errors"
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pong13/internal/core"
	"github.com/vovakirdan/pong13/internal/games/pong"
)

var (
	flagFrames     int
	flagKeys       string
	flagCPUProfile string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless and print the final state",
	Long: `Runs the game loop without a display or frame delay. One key from
--keys is delivered per frame; "none" skips a frame. The run stops after
--frames frames or when an "esc" key is delivered.

Examples:
  pong simulate --frames 1000
  pong simulate --frames 200 --keys w,w,none,up,esc
  pong simulate --frames 100000 --cpuprofile ./prof`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 600, "Maximum number of frames to run")
	simulateCmd.Flags().StringVar(&flagKeys, "keys", "", "Comma-separated keys, one per frame (w, s, up, down, esc, none)")
	simulateCmd.Flags().StringVar(&flagCPUProfile, "cpuprofile", "", "Write a CPU profile into this directory")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagFrames < 0 {
		return errors.New("--frames must not be negative")
	}
	keys, err := core.ParseKeys(flagKeys)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	if flagCPUProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(flagCPUProfile), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	loop := pong.NewLoop(core.NewScriptedInput(keys...), core.NewFramebuffer(), cfg.Physics, logger)
	for i := 0; i < flagFrames; i++ {
		if loop.Frame() == pong.Quit {
			loop.Finish()
			break
		}
	}

	out, err := yaml.Marshal(loop.Snapshot())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
