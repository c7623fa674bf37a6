// Package platform holds what the display backends share.
package platform

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/pong13/internal/core"
)

// ErrNotTerminal is returned when a terminal backend is started without a
// terminal attached.
var ErrNotTerminal = errors.New("not a terminal")

// Minimum terminal size: the 80x25 playfield plus one help line.
const (
	MinCols = core.TermCols
	MinRows = core.TermRows + 1
)

// CheckTerminal verifies that f is a terminal and returns its size.
func CheckTerminal(f *os.File) (width, height int, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("%s: %w", f.Name(), ErrNotTerminal)
	}
	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("cannot get terminal size: %w", err)
	}
	return width, height, nil
}

// Fits reports whether a terminal of the given size can show the playfield.
func Fits(width, height int) bool {
	return width >= MinCols && height >= MinRows
}

// TooSmallMessage explains why the playfield is hidden.
func TooSmallMessage(width, height int) string {
	return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", MinCols, MinRows, width, height)
}
