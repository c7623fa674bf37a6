package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pong13/internal/core"
)

// styleKey identifies a foreground/background palette pair.
type styleKey struct {
	fg, bg core.Color
}

// styleCache maps palette pairs to lipgloss styles. The background index 0
// is left to the terminal.
type styleCache map[styleKey]lipgloss.Style

func (c styleCache) get(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg, bg}
	if s, ok := c[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(fg.ANSI())))
	if bg != core.ColorBlack {
		s = s.Background(lipgloss.Color(strconv.Itoa(bg.ANSI())))
	}
	c[k] = s
	return s
}

var styles = styleCache{}

// RenderFramebuffer converts the framebuffer to a styled 80x25 string.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderFramebuffer(fb *core.Framebuffer) string {
	grid := core.Compose(fb)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(core.TermCols*core.TermRows*4 + core.TermRows)

	for y := range grid {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		row := grid[y]
		x := 0
		for x < len(row) {
			fg, bg := row[x].Fg, row[x].Bg

			var run strings.Builder
			for x < len(row) && row[x].Fg == fg && row[x].Bg == bg {
				run.WriteRune(row[x].Rune)
				x++
			}

			if fg == core.ColorBlack && bg == core.ColorBlack {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(fg, bg).Render(run.String()))
		}
	}
	return sb.String()
}

// PlainFramebuffer renders the framebuffer without color, for logs and tests.
func PlainFramebuffer(fb *core.Framebuffer) string {
	grid := core.Compose(fb)

	lines := make([]string, len(grid))
	for y := range grid {
		var sb strings.Builder
		for _, c := range grid[y] {
			sb.WriteRune(c.Rune)
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	lineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// RenderSummary styles the game over lines for printing after the program
// leaves the alternate screen.
func RenderSummary(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if i == 0 {
			out[i] = titleStyle.Render(l)
			continue
		}
		out[i] = lineStyle.Render(l)
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
