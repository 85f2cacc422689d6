package draw

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// maxChunkSize is the maximum bytes written at once. It stays under a
// typical MTU so frames stream smoothly over SSH.
const maxChunkSize = 1400

// noColor marks an unset colour in the writer's style cache.
const noColor = -1

// ChunkWriter accumulates a frame of terminal output and writes it in chunks.
// Cursor positions are 1-based canvas coordinates; the writer's offset is
// added automatically. Colour escapes are only emitted when the colour
// changes.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte
	offCol int
	offRow int
	fg, bg int64
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
		fg:     noColor,
		bg:     noColor,
	}
}

// SetOffset updates the cursor offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

func (cw *ChunkWriter) writeInt(v int64) {
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], v, 10))
}

// MoveCursor appends an ANSI cursor position sequence.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.writeInt(int64(row + cw.offRow))
	cw.buf.WriteByte(';')
	cw.writeInt(int64(col + cw.offCol))
	cw.buf.WriteByte('H')
}

func (cw *ChunkWriter) writeRGB(prefix string, rgb uint32) {
	cw.buf.WriteString(prefix)
	cw.writeInt(int64(rgb >> 16 & 0xff))
	cw.buf.WriteByte(';')
	cw.writeInt(int64(rgb >> 8 & 0xff))
	cw.buf.WriteByte(';')
	cw.writeInt(int64(rgb & 0xff))
	cw.buf.WriteByte('m')
}

// SetFG selects a true-colour foreground.
func (cw *ChunkWriter) SetFG(rgb uint32) {
	if cw.fg == int64(rgb) {
		return
	}
	cw.fg = int64(rgb)
	cw.writeRGB("\033[38;2;", rgb)
}

// SetBG selects a true-colour background.
func (cw *ChunkWriter) SetBG(rgb uint32) {
	if cw.bg == int64(rgb) {
		return
	}
	cw.bg = int64(rgb)
	cw.writeRGB("\033[48;2;", rgb)
}

// ResetStyle returns to the terminal's default colours.
func (cw *ChunkWriter) ResetStyle() {
	if cw.fg == noColor && cw.bg == noColor {
		return
	}
	cw.fg, cw.bg = noColor, noColor
	cw.buf.WriteString("\033[0m")
}

// ResetBG returns to the default background, keeping the foreground.
func (cw *ChunkWriter) ResetBG() {
	if cw.bg == noColor {
		return
	}
	cw.bg = noColor
	cw.buf.WriteString("\033[49m")
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteAt writes a string at a specific canvas position.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// WriteRune appends a rune to the buffer.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.buf.WriteRune(r)
}

// Len returns the number of buffered bytes.
func (cw *ChunkWriter) Len() int {
	return cw.buf.Len()
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks of
// at most maxChunkSize, then resets it.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		if err := cw.bufw.Flush(); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}
