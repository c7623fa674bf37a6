package core

import (
	"strings"
)

// Mode 13 geometry: a 320x200 raster with a 40x25 text grid of 8x8 cells.
const (
	ScreenWidth  = 320
	ScreenHeight = 200
	TextCols     = 40
	TextRows     = 25
	CellSize     = 8
)

// Renderer is the set of drawing primitives the game needs.
type Renderer interface {
	// Clear resets the display to the background color.
	Clear()

	// FillRect fills the box spanned by two corners, both inclusive.
	FillRect(x0, y0, x1, y1 int, c Color)

	// FillCircle fills a disc of radius r centered at (cx, cy).
	FillCircle(cx, cy, r int, c Color)

	// DrawText writes s at a 1-based text row and column.
	DrawText(row, col int, s string)
}

// Framebuffer is an in-memory mode 13 display.
// Pixels and text live on separate planes; backends composite them.
type Framebuffer struct {
	pixels []Color
	text   [TextRows][TextCols]rune
}

var _ Renderer = (*Framebuffer)(nil)

// NewFramebuffer creates a cleared framebuffer.
func NewFramebuffer() *Framebuffer {
	fb := &Framebuffer{
		pixels: make([]Color, ScreenWidth*ScreenHeight),
	}
	fb.Clear()
	return fb
}

// Width returns the raster width in pixels.
func (fb *Framebuffer) Width() int {
	return ScreenWidth
}

// Height returns the raster height in pixels.
func (fb *Framebuffer) Height() int {
	return ScreenHeight
}

// Clear sets every pixel to palette index 0 and blanks the text plane.
// Blank text cells hold 0, so written spaces can be told apart from them.
func (fb *Framebuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = ColorBlack
	}
	fb.text = [TextRows][TextCols]rune{}
}

// Set plots a single pixel. Out-of-bounds coordinates are silently ignored.
func (fb *Framebuffer) Set(x, y int, c Color) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return
	}
	fb.pixels[y*ScreenWidth+x] = c
}

// At returns the pixel at (x, y), or the background for out-of-bounds reads.
func (fb *Framebuffer) At(x, y int) Color {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return ColorBlack
	}
	return fb.pixels[y*ScreenWidth+x]
}

// Pixels exposes the row-major pixel plane. Callers must not modify it.
func (fb *Framebuffer) Pixels() []Color {
	return fb.pixels
}

// FillRect fills the box between two corners, clipped to the screen.
func (fb *Framebuffer) FillRect(x0, y0, x1, y1 int, c Color) {
	r, ok := NewRect(x0, y0, x1, y1).Clip(ScreenWidth, ScreenHeight)
	if !ok {
		return
	}
	for y := r.Y0; y <= r.Y1; y++ {
		row := fb.pixels[y*ScreenWidth : (y+1)*ScreenWidth]
		for x := r.X0; x <= r.X1; x++ {
			row[x] = c
		}
	}
}

// FillCircle fills every pixel within distance r of (cx, cy).
func (fb *Framebuffer) FillCircle(cx, cy, r int, c Color) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				fb.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

// DrawText writes s starting at a 1-based (row, col), like LOCATE then PRINT.
// Text past the right edge is clipped.
func (fb *Framebuffer) DrawText(row, col int, s string) {
	y := row - 1
	if y < 0 || y >= TextRows {
		return
	}
	x := col - 1
	for _, r := range s {
		if x >= TextCols {
			return
		}
		if x >= 0 {
			fb.text[y][x] = r
		}
		x++
	}
}

// TextAt returns the rune at a 1-based text position. Blank cells read as
// spaces.
func (fb *Framebuffer) TextAt(row, col int) rune {
	if row < 1 || row > TextRows || col < 1 || col > TextCols {
		return ' '
	}
	if r := fb.text[row-1][col-1]; r != 0 {
		return r
	}
	return ' '
}

// TextRow returns a 1-based text row with trailing blanks trimmed.
func (fb *Framebuffer) TextRow(row int) string {
	if row < 1 || row > TextRows {
		return ""
	}
	var sb strings.Builder
	for col := 1; col <= TextCols; col++ {
		sb.WriteRune(fb.TextAt(row, col))
	}
	return strings.TrimRight(sb.String(), " ")
}

// TextRun is a stretch of written text cells on one row.
type TextRun struct {
	Row, Col int // 1-based position of the first rune
	Text     string
}

// TextRuns returns every contiguous run of written text, top to bottom.
func (fb *Framebuffer) TextRuns() []TextRun {
	var runs []TextRun
	for y := range fb.text {
		start := -1
		for x := 0; x <= TextCols; x++ {
			written := x < TextCols && fb.text[y][x] != 0
			if written && start < 0 {
				start = x
			}
			if !written && start >= 0 {
				runs = append(runs, TextRun{
					Row:  y + 1,
					Col:  start + 1,
					Text: string(fb.text[y][start:x]),
				})
				start = -1
			}
		}
	}
	return runs
}

// CountLit returns how many pixels differ from the background.
func (fb *Framebuffer) CountLit() int {
	n := 0
	for _, c := range fb.pixels {
		if c != ColorBlack {
			n++
		}
	}
	return n
}
