// Package console runs the game directly on a tcell screen with a plain
// sleep-paced loop: draw, poll one key, update, sleep, check for quit.
package console

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pong13/internal/core"
	"github.com/vovakirdan/pong13/internal/games/pong"
	"github.com/vovakirdan/pong13/internal/platform"
	"github.com/vovakirdan/pong13/internal/registry"
)

// Name is the registry name of this backend.
const Name = "tcell"

const helpLine = "w/s left  ↑/↓ right  esc quit"

// Backend runs the game on a tcell screen.
type Backend struct{}

// Name returns the registry name.
func (Backend) Name() string {
	return Name
}

// Description returns a one-line summary.
func (Backend) Description() string {
	return "tcell screen driven by a fixed-delay loop"
}

// Run plays one game and restores the terminal before returning.
func (Backend) Run(ctx context.Context, opts registry.Options) (pong.Score, error) {
	opts = opts.WithDefaults()

	if _, _, err := platform.CheckTerminal(os.Stdout); err != nil {
		return pong.Score{}, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return pong.Score{}, fmt.Errorf("tcell: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return pong.Score{}, fmt.Errorf("tcell: cannot init screen: %w", err)
	}
	defer screen.Fini()

	fb := core.NewFramebuffer()
	queue := core.NewKeyQueue()
	loop := pong.NewLoop(queue, fb, opts.Config.Physics, opts.Logger)

	var resized atomic.Bool
	go pumpEvents(screen, queue, &resized)

	present := func() {
		if resized.Swap(false) {
			screen.Sync()
		}
		Draw(screen, fb)
		screen.Show()
	}

	opts.Logger.Debug("starting loop", "backend", Name, "delay", opts.Config.Timing.FrameDelay)
	score := loop.Run(ctx, present, core.FixedDelay(opts.Config.Timing.FrameDelay))
	return score, nil
}

// pumpEvents feeds key events into the queue until the screen is finalized.
func pumpEvents(screen tcell.Screen, queue *core.KeyQueue, resized *atomic.Bool) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			queue.Push(TranslateKey(ev))
		case *tcell.EventResize:
			resized.Store(true)
		}
	}
}

// TranslateKey converts a tcell key event to a game key.
// Ctrl+C counts as Esc so the game ends through the normal quit path.
func TranslateKey(ev *tcell.EventKey) core.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.UpKey
	case tcell.KeyDown:
		return core.DownKey
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.EscapeKey
	case tcell.KeyRune:
		return core.RuneKey(ev.Rune())
	}
	return core.NoKey
}

// Draw copies the composed framebuffer onto the screen, with a help line
// underneath when there is room.
func Draw(screen tcell.Screen, fb *core.Framebuffer) {
	grid := core.Compose(fb)
	for y := range grid {
		for x, c := range grid[y] {
			screen.SetContent(x, y, c.Rune, nil, Style(c))
		}
	}

	_, h := screen.Size()
	if h > core.TermRows {
		style := tcell.StyleDefault.Foreground(tcell.PaletteColor(core.ColorDarkGray.ANSI()))
		x := 0
		for _, r := range helpLine {
			screen.SetContent(x, core.TermRows, r, nil, style)
			x++
		}
	}
}

// Style maps a cell's palette colors to a tcell style on a black field.
func Style(c core.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(c.Fg.ANSI())).
		Background(tcell.PaletteColor(c.Bg.ANSI()))
}

func init() {
	registry.Register(Name, func() registry.Backend {
		return Backend{}
	})
}
