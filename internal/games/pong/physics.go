package pong

import (
	"math"

	"github.com/vovakirdan/pong13/internal/config"
	"github.com/vovakirdan/pong13/internal/core"
)

// Side identifies a paddle or a player.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// events records what happened during one physics update.
type events struct {
	wall   bool
	hit    Side // Paddle the ball bounced off
	scorer Side // Player who won a point
}

// maxPaddleY is the lowest allowed paddle top edge.
const maxPaddleY = ScreenHeight - PaddleHeight

// applyKey moves a paddle for the polled key. W/S drive the left paddle and
// the arrows drive the right one; paddles stay fully on screen.
func (s *State) applyKey(k core.Key, speed float64) {
	if k.IsRune('w') {
		s.LeftY = core.ClampF(s.LeftY-speed, 0, maxPaddleY)
	}
	if k.IsRune('s') {
		s.LeftY = core.ClampF(s.LeftY+speed, 0, maxPaddleY)
	}
	if k.Code == core.KeyUp {
		s.RightY = core.ClampF(s.RightY-speed, 0, maxPaddleY)
	}
	if k.Code == core.KeyDown {
		s.RightY = core.ClampF(s.RightY+speed, 0, maxPaddleY)
	}
}

// update advances the ball one frame: move, bounce off walls and paddles,
// then score if it left the field.
func (s *State) update(phys config.PongPhysics) events {
	var ev events
	s.integrate()
	ev.wall = s.bounceWalls()
	ev.hit = s.bouncePaddles(phys)
	ev.scorer = s.checkScore(phys.BallSpeed)
	return ev
}

func (s *State) integrate() {
	s.Ball.X += s.Ball.DX
	s.Ball.Y += s.Ball.DY
}

// bounceWalls flips the vertical velocity at the top or bottom edge.
// The ball is not pushed back inside.
func (s *State) bounceWalls() bool {
	if s.Ball.Y <= 0 || s.Ball.Y >= ScreenHeight {
		s.Ball.DY = -s.Ball.DY
		return true
	}
	return false
}

// bouncePaddles reverses and speeds up the ball when its center is inside a
// paddle's column and vertical span. Both paddles are checked in turn.
func (s *State) bouncePaddles(phys config.PongPhysics) Side {
	hit := SideNone
	if s.Ball.X <= PaddleWidth && s.within(s.LeftY) {
		s.Ball.DX = s.speedUp(-s.Ball.DX, phys)
		hit = SideLeft
	}
	if s.Ball.X >= ScreenWidth-PaddleWidth && s.within(s.RightY) {
		s.Ball.DX = s.speedUp(-s.Ball.DX, phys)
		hit = SideRight
	}
	return hit
}

func (s *State) within(paddleY float64) bool {
	return s.Ball.Y >= paddleY && s.Ball.Y <= paddleY+PaddleHeight
}

// speedUp applies the hit multiplier and, if configured, the speed cap.
func (s *State) speedUp(dx float64, phys config.PongPhysics) float64 {
	dx *= phys.SpeedUp
	if phys.MaxBallSpeed > 0 && math.Abs(dx) > phys.MaxBallSpeed {
		dx = math.Copysign(phys.MaxBallSpeed, dx)
	}
	return dx
}

// checkScore awards a point when the ball reaches either edge and serves
// from the center toward the player who lost it. DY carries over.
func (s *State) checkScore(serveSpeed float64) Side {
	scorer := SideNone
	if s.Ball.X <= 0 {
		s.Score.Right++
		s.serve(serveSpeed)
		scorer = SideRight
	}
	if s.Ball.X >= ScreenWidth {
		s.Score.Left++
		s.serve(-serveSpeed)
		scorer = SideLeft
	}
	return scorer
}

func (s *State) serve(dx float64) {
	s.Ball.X = ScreenWidth / 2
	s.Ball.Y = ScreenHeight / 2
	s.Ball.DX = dx
}
