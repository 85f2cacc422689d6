package input

import "github.com/gdamore/tcell/v2"

// FromTcell maps a tcell key event to a logical key.
func FromTcell(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEnter:
		return KeyFire
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return KeyQuit
	case tcell.KeyRune:
		if ev.Rune() > 0x7f {
			return KeyNone
		}
		return byteKey(byte(ev.Rune()))
	}
	return KeyNone
}
