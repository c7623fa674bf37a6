package pong

// Snapshot is a serializable view of the loop, used for headless runs.
type Snapshot struct {
	Frame  uint64  `yaml:"frame"`
	State  string  `yaml:"state"`
	LeftY  float64 `yaml:"left_paddle_y"`
	RightY float64 `yaml:"right_paddle_y"`
	BallX  float64 `yaml:"ball_x"`
	BallY  float64 `yaml:"ball_y"`
	BallDX float64 `yaml:"ball_dx"`
	BallDY float64 `yaml:"ball_dy"`
	Left   int     `yaml:"left_score"`
	Right  int     `yaml:"right_score"`
}

// Snapshot returns the current loop state.
func (l *Loop) Snapshot() Snapshot {
	s := l.state
	return Snapshot{
		Frame:  l.frames,
		State:  s.Run.String(),
		LeftY:  s.LeftY,
		RightY: s.RightY,
		BallX:  s.Ball.X,
		BallY:  s.Ball.Y,
		BallDX: s.Ball.DX,
		BallDY: s.Ball.DY,
		Left:   s.Score.Left,
		Right:  s.Score.Right,
	}
}
