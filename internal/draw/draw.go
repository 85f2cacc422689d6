// Package draw renders to ANSI terminals: a scaled half-block canvas and a
// buffered writer that flushes in network-friendly chunks.
package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Point represents a 2D coordinate in logical space.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// StaticSize returns a TermSizeFunc that always reports w x h.
func StaticSize(w, h int) TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

// Fit computes the largest canvas that shows a logicalW x logicalH playfield
// with square pixels inside a termW x termH terminal, and the 0-based offsets
// that centre it. Each terminal row holds two pixels.
func Fit(termW, termH int, logicalW, logicalH float64) (cols, rows, offCol, offRow int) {
	if termW <= 0 || termH <= 0 || logicalW <= 0 || logicalH <= 0 {
		return 0, 0, 0, 0
	}
	cols = termW
	rows = int(float64(cols) * logicalH / logicalW / 2)
	if rows > termH {
		rows = termH
		cols = int(float64(rows*2) * logicalW / logicalH)
	}
	cols = max(cols, 1)
	rows = max(rows, 1)
	return cols, rows, (termW - cols) / 2, (termH - rows) / 2
}
