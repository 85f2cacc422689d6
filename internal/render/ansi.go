package render

import (
	"fmt"
	"io"

	"github.com/tomz197/laneshooter/internal/draw"
	"github.com/tomz197/laneshooter/internal/game"
)

// ANSI renders snapshots as escape sequences to a raw terminal or SSH
// session. The playfield is scaled to fit the terminal and centred.
type ANSI struct {
	out    *draw.ChunkWriter
	size   draw.TermSizeFunc
	canvas *draw.Canvas

	termW, termH   int
	offCol, offRow int
}

// NewANSI creates a renderer writing to w. size is polled every frame to
// follow terminal resizes.
func NewANSI(w io.Writer, size draw.TermSizeFunc) *ANSI {
	return &ANSI{
		out:  draw.NewChunkWriter(w, 0, 0),
		size: size,
	}
}

// Draw renders one frame.
func (r *ANSI) Draw(s game.Snapshot) error {
	termW, termH, err := r.size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	if r.canvas == nil || termW != r.termW || termH != r.termH {
		r.layout(termW, termH, s)
	}

	Paint(r.canvas, s)
	r.canvas.Render(r.out)
	r.writeOverlay(Overlay(s))

	if err := r.out.Flush(); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// layout refits the canvas after a resize and redraws the static border.
func (r *ANSI) layout(termW, termH int, s game.Snapshot) {
	r.termW, r.termH = termW, termH
	cols, rows, offCol, offRow := draw.Fit(termW, termH, s.Width, s.Height)
	r.offCol, r.offRow = offCol, offRow

	if r.canvas == nil {
		r.canvas = draw.NewScaledCanvas(cols, rows, s.Width, s.Height)
	} else {
		r.canvas.Resize(cols, rows)
	}

	draw.ClearScreen(r.out)
	r.out.SetOffset(offCol, offRow)
	r.canvas.RenderBorder(r.out, offCol, offRow)
}

func (r *ANSI) writeOverlay(lines []string) {
	if len(lines) == 0 {
		return
	}
	cols := r.canvas.TerminalWidth()
	top := overlayTop(r.canvas.TerminalHeight(), len(lines))
	r.out.ResetStyle()
	for i, line := range lines {
		if line == "" || top+i > r.canvas.TerminalHeight() {
			continue
		}
		line = clip(line, cols)
		r.out.WriteAt(centerCol(cols, len([]rune(line))), top+i, line)
	}
}

// Close restores the cursor and default colours.
func (r *ANSI) Close() error {
	r.out.ResetStyle()
	draw.ClearScreen(r.out)
	draw.ShowCursor(r.out)
	return r.out.Flush()
}

// Start hides the cursor and clears the screen.
func (r *ANSI) Start() error {
	draw.HideCursor(r.out)
	draw.ClearScreen(r.out)
	return r.out.Flush()
}

// overlayTop returns the 1-based canvas row of the first of n centred
// lines. It never goes above the first row; lines past the bottom are clipped
// by the caller.
func overlayTop(rows, n int) int {
	return max(rows/2-n/2, 1)
}

// centerCol returns the 1-based column that centres n cells in cols.
func centerCol(cols, n int) int {
	return max((cols-n)/2+1, 1)
}

// clip truncates s to at most n runes.
func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:max(n, 0)])
}
