package core

// Color is an index into the VGA palette.
// Mode 13 has 256 entries; only the first 16 default colors are defined here.
type Color uint8

// Default VGA palette indices.
const (
	ColorBlack Color = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorBrown
	ColorLightGray
	ColorDarkGray
	ColorLightBlue
	ColorLightGreen
	ColorLightCyan
	ColorLightRed
	ColorLightMagenta
	ColorYellow
	ColorWhite
)

// RGB is a palette entry.
type RGB struct {
	R, G, B uint8
}

// Palette holds the default VGA colors for indices 0-15.
var Palette = [16]RGB{
	{0x00, 0x00, 0x00},
	{0x00, 0x00, 0xAA},
	{0x00, 0xAA, 0x00},
	{0x00, 0xAA, 0xAA},
	{0xAA, 0x00, 0x00},
	{0xAA, 0x00, 0xAA},
	{0xAA, 0x55, 0x00},
	{0xAA, 0xAA, 0xAA},
	{0x55, 0x55, 0x55},
	{0x55, 0x55, 0xFF},
	{0x55, 0xFF, 0x55},
	{0x55, 0xFF, 0xFF},
	{0xFF, 0x55, 0x55},
	{0xFF, 0x55, 0xFF},
	{0xFF, 0xFF, 0x55},
	{0xFF, 0xFF, 0xFF},
}

// RGB returns the palette entry for c.
// Indices above 15 map to gray levels, which is close enough for display.
func (c Color) RGB() RGB {
	if int(c) < len(Palette) {
		return Palette[c]
	}
	v := uint8(c)
	return RGB{v, v, v}
}

// ANSI returns the closest 16-color ANSI terminal code for c.
// VGA and ANSI order red and blue differently.
func (c Color) ANSI() int {
	ansi := [16]int{0, 4, 2, 6, 1, 5, 3, 7, 8, 12, 10, 14, 9, 13, 11, 15}
	if int(c) < len(ansi) {
		return ansi[c]
	}
	return 7
}
