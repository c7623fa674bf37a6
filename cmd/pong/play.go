package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong13/internal/config"
	"github.com/vovakirdan/pong13/internal/games/pong"
	"github.com/vovakirdan/pong13/internal/platform/tui"
	"github.com/vovakirdan/pong13/internal/registry"
)

var flagBackend string

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagBackend != "" {
		cfg.Display.Backend = flagBackend
	}

	backend, err := registry.Create(cfg.Display.Backend)
	if err != nil {
		return fmt.Errorf("%w (run 'pong backends' to list them)", err)
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("starting", "backend", backend.Name(), "ball_speed", cfg.Physics.BallSpeed,
		"paddle_speed", cfg.Physics.PaddleSpeed, "frame_delay", cfg.Timing.FrameDelay)

	score, err := backend.Run(ctx, registry.Options{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSummary(pong.Summary(score)))
	return nil
}

// loadConfig resolves the config file and difficulty flags, then applies
// the logging overrides.
func loadConfig() (config.PongConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.PongConfig{}, err
	}
	cfg, err := config.Load(flagConfig, preset)
	if err != nil {
		return config.PongConfig{}, err
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger builds the process logger. The returned func closes the log file
// if one was opened.
func newLogger(lc config.LogConfig) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if lc.Level != "" {
		l, err := log.ParseLevel(lc.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level %q: %w", lc.Level, err)
		}
		level = l
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           level,
	})
	return logger, closeFn, nil
}
