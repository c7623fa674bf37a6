package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pong13/internal/core"
	"github.com/vovakirdan/pong13/internal/games/pong"
	"github.com/vovakirdan/pong13/internal/platform"
	"github.com/vovakirdan/pong13/internal/registry"
)

// Name is the registry name of this backend.
const Name = "tui"

// Backend runs the game as a Bubble Tea program.
type Backend struct{}

// Name returns the registry name.
func (Backend) Name() string {
	return Name
}

// Description returns a one-line summary.
func (Backend) Description() string {
	return "Bubble Tea terminal UI with half-block graphics (default)"
}

// Run plays one game in the alternate screen.
func (Backend) Run(ctx context.Context, opts registry.Options) (pong.Score, error) {
	opts = opts.WithDefaults()

	w, h, err := platform.CheckTerminal(os.Stdout)
	if err != nil {
		return pong.Score{}, err
	}
	if !platform.Fits(w, h) {
		opts.Logger.Warn("terminal is smaller than the playfield", "width", w, "height", h)
	}

	fb := core.NewFramebuffer()
	queue := core.NewKeyQueue()
	loop := pong.NewLoop(queue, fb, opts.Config.Physics, opts.Logger)

	p := tea.NewProgram(
		NewModel(loop, fb, queue, opts.Config.Timing.FrameDelay),
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	opts.Logger.Debug("starting program", "backend", Name, "width", w, "height", h)
	if _, err := p.Run(); err != nil {
		// Cancellation ends the game like the quit key does
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return loop.State().Score, nil
		}
		return loop.State().Score, fmt.Errorf("tui: %w", err)
	}
	return loop.State().Score, nil
}

func init() {
	registry.Register(Name, func() registry.Backend {
		return Backend{}
	})
}
