package pong

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/pong13/internal/core"
)

// Render draws the scores, both paddles and the ball onto a cleared display.
func (s *State) Render(dst core.Renderer) {
	dst.Clear()

	dst.DrawText(ScoreRow, LeftScoreCol, strconv.Itoa(s.Score.Left))
	dst.DrawText(ScoreRow, RightScoreCol, strconv.Itoa(s.Score.Right))

	leftY := core.Round(s.LeftY)
	dst.FillRect(0, leftY, PaddleWidth, leftY+PaddleHeight, Foreground)

	rightY := core.Round(s.RightY)
	dst.FillRect(ScreenWidth-PaddleWidth, rightY, ScreenWidth, rightY+PaddleHeight, Foreground)

	dst.FillCircle(core.Round(s.Ball.X), core.Round(s.Ball.Y), BallSize, Foreground)
}

// Summary returns the lines shown when the game ends.
func Summary(score Score) []string {
	return []string{
		"Game Over!",
		"Final Score:",
		fmt.Sprintf("Left Player: %d", score.Left),
		fmt.Sprintf("Right Player: %d", score.Right),
	}
}
