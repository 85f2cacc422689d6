package input

import (
	"context"
	"io"
)

// Stream delivers decoded keys from a raw terminal reader.
type Stream struct {
	ch chan Key
}

// StartStream spawns a goroutine that reads from r and sends decoded keys.
// The channel is closed when r returns an error (including io.EOF) or ctx is
// done. A Read blocked in r is only abandoned once it returns.
func StartStream(ctx context.Context, r io.Reader) *Stream {
	s := &Stream{ch: make(chan Key, 128)}
	go func() {
		defer close(s.ch)
		var dec Decoder
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for _, k := range dec.Feed(buf[:n]) {
				select {
				case s.ch <- k:
				case <-ctx.Done():
					return
				}
			}
			if err != nil || ctx.Err() != nil {
				return
			}
		}
	}()
	return s
}

// Keys returns the channel of decoded keys.
func (s *Stream) Keys() <-chan Key {
	return s.ch
}

const esc = 0x1b

// maxEscape bounds a buffered escape sequence; longer ones are discarded.
const maxEscape = 32

// Decoder maps raw terminal bytes to logical keys. An escape sequence split
// across reads is held until its final byte arrives. Only the plain left and
// right arrows are mapped; modified arrows and other sequences are dropped.
type Decoder struct {
	pending []byte
}

// Feed decodes buf, continuing any escape sequence left over from the
// previous call.
func (d *Decoder) Feed(buf []byte) []Key {
	d.pending = append(d.pending, buf...)
	data := d.pending

	var keys []Key
	i := 0
	for i < len(data) {
		if data[i] != esc {
			if k := byteKey(data[i]); k != KeyNone {
				keys = append(keys, k)
			}
			i++
			continue
		}
		k, n := escapeKey(data[i:])
		if n == 0 {
			break // Incomplete, wait for more input
		}
		if k != KeyNone {
			keys = append(keys, k)
		}
		i += n
	}

	d.pending = append(d.pending[:0], data[i:]...)
	if len(d.pending) > maxEscape {
		d.pending = d.pending[:0]
	}
	return keys
}

// escapeKey decodes the escape sequence at the start of seq and returns the
// number of bytes it spans, or 0 when seq ends before the sequence does.
//
//	ESC [ params final   CSI; only "ESC [ D" and "ESC [ C" map to keys
//	ESC O x              arrows in application cursor mode
//	ESC other            lone escape, dropped; other is decoded normally
func escapeKey(seq []byte) (Key, int) {
	if len(seq) < 2 {
		return KeyNone, 0
	}
	switch seq[1] {
	case '[':
		for j := 2; j < len(seq); j++ {
			c := seq[j]
			switch {
			case c >= 0x40 && c <= 0x7e:
				if j == 2 {
					return arrowKey(c), j + 1
				}
				return KeyNone, j + 1
			case c >= 0x20 && c <= 0x3f:
				// Parameter or intermediate byte
			default:
				// Malformed; drop what was read and decode c on its own
				return KeyNone, j
			}
		}
		return KeyNone, 0
	case 'O':
		if len(seq) < 3 {
			return KeyNone, 0
		}
		return arrowKey(seq[2]), 3
	default:
		return KeyNone, 1
	}
}

func arrowKey(final byte) Key {
	switch final {
	case 'D':
		return KeyLeft
	case 'C':
		return KeyRight
	}
	return KeyNone
}

func byteKey(b byte) Key {
	switch b {
	case 'a', 'A', 'j', 'J':
		return KeyLeft
	case 'd', 'D', 'l', 'L':
		return KeyRight
	case ' ':
		return KeyStart
	case '\n', '\r':
		return KeyFire
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		return KeyQuit
	}
	return KeyNone
}
