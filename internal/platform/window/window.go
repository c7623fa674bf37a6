//go:build window

// Package window runs the game in a native 320x200 window with ebiten.
// Build with -tags window; it needs cgo and the platform graphics headers.
package window

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/pong13/internal/core"
	"github.com/vovakirdan/pong13/internal/games/pong"
	"github.com/vovakirdan/pong13/internal/registry"
)

// Name is the registry name of this backend.
const Name = "window"

// Window geometry. Text cells are drawn at twice the pixel scale so the
// debug font fits an 8x8 cell.
const (
	textScale    = 2
	windowScale  = 3
	summaryTicks = 120 // how long the summary stays up
)

// Backend runs the game in an ebiten window.
type Backend struct{}

// Name returns the registry name.
func (Backend) Name() string {
	return Name
}

// Description returns a one-line summary.
func (Backend) Description() string {
	return "native 320x200 window (ebiten)"
}

// Run opens the window and plays until the quit key or the window closes.
func (Backend) Run(ctx context.Context, opts registry.Options) (pong.Score, error) {
	opts = opts.WithDefaults()

	fb := core.NewFramebuffer()
	queue := core.NewKeyQueue()
	g := &game{
		ctx:    ctx,
		loop:   pong.NewLoop(queue, fb, opts.Config.Physics, opts.Logger),
		fb:     fb,
		queue:  queue,
		raster: ebiten.NewImage(core.ScreenWidth, core.ScreenHeight),
		rgba:   make([]byte, core.ScreenWidth*core.ScreenHeight*4),
		logger: opts.Logger,
	}

	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowSize(core.ScreenWidth*windowScale, core.ScreenHeight*windowScale)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(core.TickRate(opts.Config.Timing.FrameDelay))

	if err := ebiten.RunGame(g); err != nil {
		return g.loop.State().Score, fmt.Errorf("window: %w", err)
	}
	return g.loop.State().Score, nil
}

// game adapts the loop to ebiten's Update/Draw/Layout cycle.
type game struct {
	ctx    context.Context
	loop   *pong.Loop
	fb     *core.Framebuffer
	queue  *core.KeyQueue
	raster *ebiten.Image
	rgba   []byte
	keys   []ebiten.Key
	hold   int
	logger *log.Logger
}

// Update queues this tick's new key presses and runs one frame.
func (g *game) Update() error {
	if g.loop.State().Run == pong.Quit {
		g.hold++
		if g.hold >= summaryTicks || ebiten.IsWindowBeingClosed() {
			return ebiten.Termination
		}
		return nil
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.queue.Push(translateKey(k))
	}
	if ebiten.IsWindowBeingClosed() || g.ctx.Err() != nil {
		g.logger.Debug("window closing")
		g.queue.Push(core.EscapeKey)
	}

	if g.loop.Frame() == pong.Quit {
		g.loop.Finish()
	}
	return nil
}

// Draw blits the palette raster scaled up and overlays the text plane.
func (g *game) Draw(screen *ebiten.Image) {
	for i, c := range g.fb.Pixels() {
		rgb := c.RGB()
		g.rgba[i*4] = rgb.R
		g.rgba[i*4+1] = rgb.G
		g.rgba[i*4+2] = rgb.B
		g.rgba[i*4+3] = 0xff
	}
	g.raster.WritePixels(g.rgba)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	screen.DrawImage(g.raster, op)

	cell := core.CellSize * textScale
	for _, run := range g.fb.TextRuns() {
		ebitenutil.DebugPrintAt(screen, run.Text, (run.Col-1)*cell, (run.Row-1)*cell)
	}
}

// Layout fixes the logical screen at twice the mode 13 resolution.
func (g *game) Layout(_, _ int) (int, int) {
	return core.ScreenWidth * textScale, core.ScreenHeight * textScale
}

func translateKey(k ebiten.Key) core.Key {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	switch k {
	case ebiten.KeyW:
		if shift {
			return core.RuneKey('W')
		}
		return core.RuneKey('w')
	case ebiten.KeyS:
		if shift {
			return core.RuneKey('S')
		}
		return core.RuneKey('s')
	case ebiten.KeyArrowUp:
		return core.UpKey
	case ebiten.KeyArrowDown:
		return core.DownKey
	case ebiten.KeyEscape:
		return core.EscapeKey
	}
	return core.NoKey
}

func init() {
	registry.Register(Name, func() registry.Backend {
		return Backend{}
	})
}
