// Package core provides the display, input and timing primitives the game
// loop is written against. It has no terminal or window dependencies so the
// loop can be driven and inspected in tests.
package core

import "math"

// Rect is an axis-aligned pixel box. Both corners are inclusive, matching
// a LINE (x0,y0)-(x1,y1),,BF box fill.
type Rect struct {
	X0, Y0 int // Top-left corner
	X1, Y1 int // Bottom-right corner (inclusive)
}

// NewRect creates a rectangle from two corners given in any order.
func NewRect(x0, y0, x1, y1 int) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the number of columns covered.
func (r Rect) Width() int {
	return r.X1 - r.X0 + 1
}

// Height returns the number of rows covered.
func (r Rect) Height() int {
	return r.Y1 - r.Y0 + 1
}

// Contains returns true if the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Clip restricts the rectangle to a w×h surface.
// The second result is false if nothing remains visible.
func (r Rect) Clip(w, h int) (Rect, bool) {
	r.X0 = Max(r.X0, 0)
	r.Y0 = Max(r.Y0, 0)
	r.X1 = Min(r.X1, w-1)
	r.Y1 = Min(r.Y1, h-1)
	if r.X0 > r.X1 || r.Y0 > r.Y1 {
		return Rect{}, false
	}
	return r, true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Round converts a float coordinate to the nearest pixel.
func Round(v float64) int {
	return int(math.Round(v))
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
