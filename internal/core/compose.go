package core

// Terminal geometry for the half-block view: one cell covers 4x8 pixels,
// split into an upper and a lower 4x4 half.
const (
	TermCols = ScreenWidth / 4
	TermRows = ScreenHeight / 8
)

// Half-block glyphs.
const (
	GlyphFull  = '█'
	GlyphUpper = '▀'
	GlyphLower = '▄'
)

// Cell is one terminal character with its palette colors.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Blank is an empty background cell.
var Blank = Cell{Rune: ' '}

// Compose downsamples a framebuffer to an 80x25 grid of half-block cells
// and overlays the text plane. A text column maps to twice its terminal
// column; a run of text is written contiguously from there.
func Compose(fb *Framebuffer) [TermRows][TermCols]Cell {
	var grid [TermRows][TermCols]Cell

	for row := 0; row < TermRows; row++ {
		for col := 0; col < TermCols; col++ {
			top := blockColor(fb, col*4, row*8)
			bottom := blockColor(fb, col*4, row*8+4)
			grid[row][col] = halfBlock(top, bottom)
		}
	}

	for _, run := range fb.TextRuns() {
		col := (run.Col - 1) * 2
		for _, r := range run.Text {
			if col >= TermCols {
				break
			}
			grid[run.Row-1][col] = Cell{Rune: r, Fg: ColorWhite}
			col++
		}
	}
	return grid
}

// blockColor returns the color of a 4x4 block: the highest palette index
// present, so a single lit pixel still shows.
func blockColor(fb *Framebuffer, x0, y0 int) Color {
	c := ColorBlack
	for y := y0; y < y0+4; y++ {
		for x := x0; x < x0+4; x++ {
			if p := fb.At(x, y); p > c {
				c = p
			}
		}
	}
	return c
}

func halfBlock(top, bottom Color) Cell {
	switch {
	case top == ColorBlack && bottom == ColorBlack:
		return Blank
	case top == bottom:
		return Cell{Rune: GlyphFull, Fg: top}
	case bottom == ColorBlack:
		return Cell{Rune: GlyphUpper, Fg: top}
	case top == ColorBlack:
		return Cell{Rune: GlyphLower, Fg: bottom}
	default:
		return Cell{Rune: GlyphUpper, Fg: top, Bg: bottom}
	}
}
