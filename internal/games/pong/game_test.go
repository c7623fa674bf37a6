package pong

import (
	"context"
	"testing"

	"github.com/vovakirdan/pong13/internal/core"
)

// countingPacer records how often the loop paced.
type countingPacer struct {
	calls int
}

func (p *countingPacer) Pace() { p.calls++ }

func newTestLoop(keys ...core.Key) (*Loop, *core.Framebuffer) {
	fb := core.NewFramebuffer()
	l := NewLoop(core.NewScriptedInput(keys...), fb, defaultPhysics(), nil)
	return l, fb
}

// reference mirrors the per-frame ball rules with plain variables.
type reference struct {
	x, y, dx, dy float64
	lp, rp       float64
	left, right  int
}

func (r *reference) step() {
	r.x += r.dx
	r.y += r.dy
	if r.y <= 0 || r.y >= 200 {
		r.dy = -r.dy
	}
	if r.x <= 10 && r.y >= r.lp && r.y <= r.lp+40 {
		r.dx = -r.dx
		r.dx *= 1.1
	}
	if r.x >= 310 && r.y >= r.rp && r.y <= r.rp+40 {
		r.dx = -r.dx
		r.dx *= 1.1
	}
	if r.x <= 0 {
		r.right++
		r.x, r.y, r.dx = 160, 100, 3
	}
	if r.x >= 320 {
		r.left++
		r.x, r.y, r.dx = 160, 100, -3
	}
}

func TestEndToEndMatchesReference(t *testing.T) {
	frames := []int{1, 10, 34, 54, 200, 1000, 5000}

	for _, n := range frames {
		l, _ := newTestLoop()
		ref := reference{x: 160, y: 100, dx: 3, dy: 3, lp: 80, rp: 80}

		for i := 0; i < n; i++ {
			l.Frame()
			ref.step()
		}

		s := l.State()
		got := Ball{X: s.Ball.X, Y: s.Ball.Y, DX: s.Ball.DX, DY: s.Ball.DY}
		want := Ball{X: ref.x, Y: ref.y, DX: ref.dx, DY: ref.dy}
		if got != want {
			t.Errorf("after %d frames ball = %+v, expected %+v", n, got, want)
		}
		if s.Score != (Score{Left: ref.left, Right: ref.right}) {
			t.Errorf("after %d frames score = %+v, expected %d-%d", n, s.Score, ref.left, ref.right)
		}
	}
}

func TestFirstPointWithoutInput(t *testing.T) {
	l, _ := newTestLoop()

	// The ball bounces off the bottom wall at frame 34, passes under the
	// right paddle and leaves the field at frame 54.
	for i := 0; i < 53; i++ {
		l.Frame()
	}
	if s := l.State(); s.Score != (Score{}) {
		t.Fatalf("score after 53 frames = %+v, expected 0-0", s.Score)
	}

	l.Frame()
	s := l.State()
	if s.Score != (Score{Left: 1}) {
		t.Fatalf("score after 54 frames = %+v, expected 1-0", s.Score)
	}
	if s.Ball != (Ball{X: 160, Y: 100, DX: -3, DY: -3}) {
		t.Errorf("ball after serve = %+v, expected {160 100 -3 -3}", s.Ball)
	}
}

func TestFrameAppliesOneKeyPerFrame(t *testing.T) {
	l, _ := newTestLoop(core.RuneKey('w'), core.UpKey, core.RuneKey('s'))

	l.Frame()
	if s := l.State(); s.LeftY != 75 || s.RightY != 80 {
		t.Errorf("after frame 1 paddles = %v, %v; expected 75, 80", s.LeftY, s.RightY)
	}

	l.Frame()
	if s := l.State(); s.LeftY != 75 || s.RightY != 75 {
		t.Errorf("after frame 2 paddles = %v, %v; expected 75, 75", s.LeftY, s.RightY)
	}

	l.Frame()
	if s := l.State(); s.LeftY != 80 || s.RightY != 75 {
		t.Errorf("after frame 3 paddles = %v, %v; expected 80, 75", s.LeftY, s.RightY)
	}
}

func TestFrameRendersBeforeUpdate(t *testing.T) {
	l, fb := newTestLoop()

	l.Frame()

	// The frame shows the ball where it was when drawing began
	if fb.At(160, 100) != Foreground {
		t.Error("ball center should be drawn at the pre-update position")
	}
	if fb.At(0, 80) != Foreground || fb.At(10, 120) != Foreground {
		t.Error("left paddle should span (0,80)-(10,120)")
	}
	if fb.At(310, 80) != Foreground || fb.At(319, 120) != Foreground {
		t.Error("right paddle should span (310,80)-(319,120)")
	}
	if fb.At(11, 100) != core.ColorBlack {
		t.Error("nothing should be drawn right of the left paddle")
	}
	if fb.TextAt(1, 10) != '0' || fb.TextAt(1, 30) != '0' {
		t.Errorf("score row = %q, expected 0 at columns 10 and 30", fb.TextRow(1))
	}
}

func TestRenderShowsScores(t *testing.T) {
	fb := core.NewFramebuffer()
	s := NewState(3)
	s.Score = Score{Left: 12, Right: 3}

	s.Render(fb)

	if fb.TextAt(1, 10) != '1' || fb.TextAt(1, 11) != '2' {
		t.Errorf("left score not at column 10: %q", fb.TextRow(1))
	}
	if fb.TextAt(1, 30) != '3' {
		t.Errorf("right score not at column 30: %q", fb.TextRow(1))
	}

	// Paddles and ball: two 11x41 boxes (one clipped to 10 wide) and a 49 pixel disc
	expected := 11*41 + 10*41 + 49
	if fb.CountLit() != expected {
		t.Errorf("CountLit() = %d, expected %d", fb.CountLit(), expected)
	}
}

func TestQuitStopsUpdates(t *testing.T) {
	l, _ := newTestLoop(core.RuneKey('s'), core.EscapeKey, core.RuneKey('s'))

	if run := l.Frame(); run != Running {
		t.Fatalf("frame 1 state = %v, expected running", run)
	}
	if run := l.Frame(); run != Quit {
		t.Fatalf("frame 2 state = %v, expected quit", run)
	}

	// The quitting frame still completes its physics update
	after := l.State()
	if after.Ball.X != 166 {
		t.Errorf("ball X = %v, expected 166 after two frames", after.Ball.X)
	}

	for i := 0; i < 5; i++ {
		if run := l.Frame(); run != Quit {
			t.Fatalf("frame after quit returned %v", run)
		}
	}
	if l.State() != after {
		t.Errorf("state changed after quit: %+v -> %+v", after, l.State())
	}
	if l.Frames() != 2 {
		t.Errorf("Frames() = %d, expected 2", l.Frames())
	}
}

func TestRunUntilQuit(t *testing.T) {
	keys := make([]core.Key, 60)
	keys[59] = core.EscapeKey
	l, fb := newTestLoop(keys...)

	pacer := &countingPacer{}
	presents := 0
	score := l.Run(context.Background(), func() { presents++ }, pacer)

	if l.Frames() != 60 {
		t.Errorf("Frames() = %d, expected 60", l.Frames())
	}
	if pacer.calls != 60 {
		t.Errorf("paced %d times, expected 60", pacer.calls)
	}
	if presents != 61 {
		t.Errorf("presented %d times, expected 61 (every frame plus the summary)", presents)
	}
	if score != (Score{Left: 1}) {
		t.Errorf("final score = %+v, expected 1-0", score)
	}
	if score != l.State().Score {
		t.Error("returned score should equal the last committed score")
	}

	lines := Summary(score)
	for i, line := range lines {
		if got := fb.TextRow(i + 1); got != line {
			t.Errorf("summary row %d = %q, expected %q", i+1, got, line)
		}
	}
	if fb.CountLit() != 0 {
		t.Error("summary screen should have no graphics")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	l, _ := newTestLoop()
	ctx, cancel := context.WithCancel(context.Background())

	frames := 0
	present := func() {
		frames++
		if frames == 3 {
			cancel()
		}
	}
	l.Run(ctx, present, core.NoDelay{})

	if l.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", l.Frames())
	}
	if l.State().Run != Quit {
		t.Error("cancelled loop should end in the quit state")
	}
}

func TestSummary(t *testing.T) {
	lines := Summary(Score{Left: 7, Right: 2})
	expected := []string{"Game Over!", "Final Score:", "Left Player: 7", "Right Player: 2"}

	if len(lines) != len(expected) {
		t.Fatalf("got %d lines, expected %d", len(lines), len(expected))
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], expected[i])
		}
	}
}

func TestSnapshot(t *testing.T) {
	l, _ := newTestLoop(core.DownKey)
	l.Frame()

	snap := l.Snapshot()
	if snap.Frame != 1 || snap.State != "running" {
		t.Errorf("snapshot header = %d/%s", snap.Frame, snap.State)
	}
	if snap.RightY != 85 || snap.BallX != 163 || snap.BallY != 103 {
		t.Errorf("snapshot = %+v", snap)
	}
}
