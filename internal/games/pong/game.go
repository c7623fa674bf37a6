// Package pong implements the two-paddle game loop.
// Both paddles are human controlled: W/S for the left one, the arrow keys for
// the right one, Esc to quit.
package pong

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong13/internal/config"
	"github.com/vovakirdan/pong13/internal/core"
)

// Playfield geometry, in pixels.
const (
	ScreenWidth  = core.ScreenWidth
	ScreenHeight = core.ScreenHeight
	PaddleHeight = 40
	PaddleWidth  = 10
	BallSize     = 4 // Radius
)

// Score text positions (1-based row, column).
const (
	ScoreRow      = 1
	LeftScoreCol  = 10
	RightScoreCol = 30
)

// Foreground is the palette index used for everything drawn.
const Foreground = core.ColorWhite

// RunState is the loop's lifecycle.
type RunState int

const (
	Running RunState = iota
	Quit
)

// String returns a human-readable name for the state.
func (r RunState) String() string {
	if r == Quit {
		return "quit"
	}
	return "running"
}

// Ball is the moving disc.
type Ball struct {
	X, Y   float64
	DX, DY float64
}

// Score holds both players' points.
type Score struct {
	Left  int
	Right int
}

// State is everything that changes while the game runs.
type State struct {
	LeftY  float64 // Top edge of the left paddle
	RightY float64 // Top edge of the right paddle
	Ball   Ball
	Score  Score
	Run    RunState
}

// NewState returns the starting position: paddles centered, ball in the
// middle moving down-right at the serve speed.
func NewState(ballSpeed float64) State {
	paddleY := float64(ScreenHeight-PaddleHeight) / 2
	return State{
		LeftY:  paddleY,
		RightY: paddleY,
		Ball: Ball{
			X:  ScreenWidth / 2,
			Y:  ScreenHeight / 2,
			DX: ballSpeed,
			DY: ballSpeed,
		},
	}
}

// Loop owns the game state and runs one frame at a time.
type Loop struct {
	state  State
	phys   config.PongPhysics
	in     core.InputSource
	out    core.Renderer
	logger *log.Logger
	frames uint64
}

// NewLoop creates a loop in the starting state. A nil logger discards output.
func NewLoop(in core.InputSource, out core.Renderer, phys config.PongPhysics, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		state:  NewState(phys.BallSpeed),
		phys:   phys,
		in:     in,
		out:    out,
		logger: logger,
	}
}

// State returns a copy of the current state.
func (l *Loop) State() State {
	return l.state
}

// Frames returns how many frames have run.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Frame runs a single iteration: draw, poll one key, move paddles, advance
// the ball, then apply the quit key. Pacing is left to the caller.
// Once the loop has quit, Frame does nothing.
func (l *Loop) Frame() RunState {
	if l.state.Run == Quit {
		return Quit
	}
	l.frames++

	l.state.Render(l.out)

	key, _ := l.in.PollKey()
	l.state.applyKey(key, l.phys.PaddleSpeed)

	ev := l.state.update(l.phys)
	l.logEvents(ev)

	if key.Code == core.KeyEscape {
		l.state.Run = Quit
		l.logger.Debug("quit requested", "frame", l.frames)
	}
	return l.state.Run
}

// Run drives frames until the quit key is seen or ctx is cancelled.
// After each frame present (if non-nil) shows the display and pacer waits.
// The final summary is drawn and presented before Run returns.
func (l *Loop) Run(ctx context.Context, present func(), pacer core.Pacer) Score {
	for {
		run := l.Frame()
		if present != nil {
			present()
		}
		pacer.Pace()
		if run == Quit {
			break
		}
		if ctx.Err() != nil {
			l.logger.Debug("loop cancelled", "frame", l.frames, "err", ctx.Err())
			l.state.Run = Quit
			break
		}
	}

	l.Finish()
	if present != nil {
		present()
	}
	return l.state.Score
}

// Finish clears the display and writes the game over summary.
func (l *Loop) Finish() {
	l.out.Clear()
	for i, line := range Summary(l.state.Score) {
		l.out.DrawText(i+1, 1, line)
	}
	l.logger.Debug("game over", "left", l.state.Score.Left, "right", l.state.Score.Right, "frames", l.frames)
}

func (l *Loop) logEvents(ev events) {
	if ev.hit != SideNone {
		l.logger.Debug("paddle hit", "side", ev.hit, "dx", l.state.Ball.DX, "frame", l.frames)
	}
	if ev.scorer != SideNone {
		l.logger.Debug("point scored",
			"side", ev.scorer,
			"left", l.state.Score.Left,
			"right", l.state.Score.Right,
			"frame", l.frames,
		)
	}
}
