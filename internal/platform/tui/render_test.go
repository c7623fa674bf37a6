package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pong13/internal/core"
	"github.com/vovakirdan/pong13/internal/games/pong"
)

func TestRenderFramebufferSize(t *testing.T) {
	fb := core.NewFramebuffer()
	s := pong.NewState(3)
	s.Render(fb)

	out := RenderFramebuffer(fb)
	lines := strings.Split(out, "\n")

	if len(lines) != core.TermRows {
		t.Fatalf("got %d lines, expected %d", len(lines), core.TermRows)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != core.TermCols {
			t.Errorf("line %d width = %d, expected %d", i, w, core.TermCols)
		}
	}
}

func TestPlainFramebufferStartingFrame(t *testing.T) {
	fb := core.NewFramebuffer()
	s := pong.NewState(3)
	s.Render(fb)

	lines := strings.Split(PlainFramebuffer(fb), "\n")

	// Scores at text columns 10 and 30 land on terminal columns 18 and 58
	score := []rune(lines[0])
	if len(score) < 59 || score[18] != '0' || score[58] != '0' {
		t.Errorf("score row = %q", lines[0])
	}

	// Left paddle occupies the first three columns of rows 10-14
	for row := 10; row <= 14; row++ {
		if !strings.HasPrefix(lines[row], "███") {
			t.Errorf("row %d = %q, expected left paddle", row, lines[row])
		}
		if !strings.HasSuffix(lines[row], "███") {
			t.Errorf("row %d = %q, expected right paddle", row, lines[row])
		}
	}

	// The ball sits in the middle
	ball := []rune(lines[12])
	if ball[40] != core.GlyphFull {
		t.Errorf("row 12 col 40 = %q, expected ball", ball[40])
	}
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(pong.Summary(pong.Score{Left: 2, Right: 5}))

	for _, want := range []string{"Game Over!", "Final Score:", "Left Player: 2", "Right Player: 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if n := len(strings.Split(out, "\n")); n != 4 {
		t.Errorf("summary has %d lines, expected 4", n)
	}
}
