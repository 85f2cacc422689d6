package draw

import (
	"math"
	"sort"
	"strings"

	"github.com/tomz197/laneshooter/internal/sprite"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Each pixel holds a sprite ID whose catalog colour is used when
// rendering; sprite.None is transparent. Drawing calls take logical
// coordinates and scale them to terminal pixels.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int         // termHeight * 2
	pixels         []sprite.ID // [y * termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Reusable buffers
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to
// terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 0)
	termHeight = max(termHeight, 0)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]sprite.ID, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// At returns the pixel at terminal pixel coordinates, or sprite.None when out
// of range.
func (c *Canvas) At(x, y int) sprite.ID {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return sprite.None
	}
	return c.pixels[y*c.termWidth+x]
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, id sprite.ID) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = id
	}
}

// SetFloat sets a pixel using float logical coordinates.
func (c *Canvas) SetFloat(x, y float64, id sprite.ID) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)), id)
}

// FillRect fills the logical rectangle [x, x+w) x [y, y+h). A rectangle that
// covers any part of a pixel row or column gets at least one pixel so thin
// objects such as bullets stay visible.
func (c *Canvas) FillRect(x, y, w, h float64, id sprite.ID) {
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := max(int(math.Ceil((x+w)*c.scaleX)), x0+1)
	y1 := max(int(math.Ceil((y+h)*c.scaleY)), y0+1)

	x0, x1 = max(x0, 0), min(x1, c.termWidth)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight)
	for py := y0; py < y1; py++ {
		row := c.pixels[py*c.termWidth : (py+1)*c.termWidth]
		for px := x0; px < x1; px++ {
			row[px] = id
		}
	}
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point, id sprite.ID) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, id)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon, filling the interior when filled is set.
func (c *Canvas) DrawPolygon(points []Point, id sprite.ID, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points, id)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], id)
	}
}

// fillPolygon fills a polygon with a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point, id sprite.ID) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, id)
			}
		}
	}
}

// Render writes every cell of the canvas to cw. Cells whose two pixels
// differ use an upper half block with the lower pixel as background; empty
// cells are written as spaces so the previous frame is overwritten without
// clearing the screen.
func (c *Canvas) Render(cw *ChunkWriter) {
	for row := 0; row < c.termHeight; row++ {
		top := c.pixels[row*2*c.termWidth : (row*2+1)*c.termWidth]
		bottom := c.pixels[(row*2+1)*c.termWidth : (row*2+2)*c.termWidth]

		cw.MoveCursor(1, row+1)
		for col := 0; col < c.termWidth; col++ {
			t, b := top[col], bottom[col]
			switch {
			case t == sprite.None && b == sprite.None:
				cw.ResetStyle()
				cw.WriteRune(BlockEmpty)
			case t == b:
				cw.ResetBG()
				cw.SetFG(sprite.Lookup(t).RGB)
				cw.WriteRune(BlockFull)
			case b == sprite.None:
				cw.ResetBG()
				cw.SetFG(sprite.Lookup(t).RGB)
				cw.WriteRune(BlockUpperHalf)
			case t == sprite.None:
				cw.ResetBG()
				cw.SetFG(sprite.Lookup(b).RGB)
				cw.WriteRune(BlockLowerHalf)
			default:
				cw.SetFG(sprite.Lookup(t).RGB)
				cw.SetBG(sprite.Lookup(b).RGB)
				cw.WriteRune(BlockUpperHalf)
			}
		}
	}
	cw.ResetStyle()
}

// RenderBorder draws a box around the canvas when the offsets leave room for
// it. offCol and offRow are the 0-based offsets the canvas is drawn at.
func (c *Canvas) RenderBorder(cw *ChunkWriter, offCol, offRow int) {
	hasH := offCol >= 1
	hasV := offRow >= 1

	// Positions relative to the canvas origin; cw applies the offset.
	left, right := 0, c.termWidth+1
	top, bottom := 0, c.termHeight+1
	line := strings.Repeat("─", c.termWidth)

	cw.ResetStyle()
	if hasV {
		if hasH {
			cw.WriteAt(left, top, "┌"+line+"┐")
			cw.WriteAt(left, bottom, "└"+line+"┘")
		} else {
			cw.WriteAt(1, top, line)
			cw.WriteAt(1, bottom, line)
		}
	}
	if hasH {
		for row := 1; row <= c.termHeight; row++ {
			cw.WriteAt(left, row, "│")
			cw.WriteAt(right, row, "│")
		}
	}
}

// TerminalWidth returns the canvas width in columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// BorrowPoints returns a reusable slice of n points, valid until the next call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
