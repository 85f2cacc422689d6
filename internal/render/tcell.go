package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/laneshooter/internal/draw"
	"github.com/tomz197/laneshooter/internal/game"
	"github.com/tomz197/laneshooter/internal/sprite"
)

// Tcell renders snapshots onto a tcell screen using the same half-block
// canvas as the ANSI renderer.
type Tcell struct {
	screen tcell.Screen
	canvas *draw.Canvas
	styles map[sprite.ID]tcell.Color
}

// NewTcell creates a renderer for an initialised screen.
func NewTcell(screen tcell.Screen) *Tcell {
	return &Tcell{
		screen: screen,
		styles: make(map[sprite.ID]tcell.Color),
	}
}

func (r *Tcell) color(id sprite.ID) tcell.Color {
	if c, ok := r.styles[id]; ok {
		return c
	}
	rgb := sprite.Lookup(id).RGB
	c := tcell.NewRGBColor(int32(rgb>>16&0xff), int32(rgb>>8&0xff), int32(rgb&0xff))
	r.styles[id] = c
	return c
}

// Draw renders one frame and shows it.
func (r *Tcell) Draw(s game.Snapshot) error {
	termW, termH := r.screen.Size()
	cols, rows, offCol, offRow := draw.Fit(termW, termH, s.Width, s.Height)
	if r.canvas == nil {
		r.canvas = draw.NewScaledCanvas(cols, rows, s.Width, s.Height)
	} else {
		r.canvas.Resize(cols, rows)
	}

	Paint(r.canvas, s)

	r.screen.Clear()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			ch, style := r.cell(r.canvas.At(col, row*2), r.canvas.At(col, row*2+1))
			r.screen.SetContent(offCol+col, offRow+row, ch, nil, style)
		}
	}

	lines := Overlay(s)
	top := overlayTop(rows, len(lines))
	for i, line := range lines {
		if top+i > rows {
			break
		}
		line = clip(line, cols)
		x := offCol + centerCol(cols, len([]rune(line))) - 1
		for j, ch := range []rune(line) {
			r.screen.SetContent(x+j, offRow+top+i-1, ch, nil, tcell.StyleDefault)
		}
	}

	r.screen.Show()
	return nil
}

// cell maps a pair of stacked pixels to a glyph and style.
func (r *Tcell) cell(top, bottom sprite.ID) (rune, tcell.Style) {
	style := tcell.StyleDefault
	switch {
	case top == sprite.None && bottom == sprite.None:
		return draw.BlockEmpty, style
	case top == bottom:
		return draw.BlockFull, style.Foreground(r.color(top))
	case bottom == sprite.None:
		return draw.BlockUpperHalf, style.Foreground(r.color(top))
	case top == sprite.None:
		return draw.BlockLowerHalf, style.Foreground(r.color(bottom))
	default:
		return draw.BlockUpperHalf, style.Foreground(r.color(top)).Background(r.color(bottom))
	}
}
