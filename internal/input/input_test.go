package input

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoderFeed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Key
	}{
		{"arrows", "\x1b[D\x1b[C", []Key{KeyLeft, KeyRight}},
		{"letters", "aDjl", []Key{KeyLeft, KeyRight, KeyLeft, KeyRight}},
		{"start and fire", " \r\n", []Key{KeyStart, KeyFire, KeyFire}},
		{"quit", "q\x03", []Key{KeyQuit, KeyQuit}},
		{"vertical arrows ignored", "\x1b[A\x1b[B", nil},
		{"shift left ignored", "\x1b[1;2D", nil},
		{"ctrl right ignored", "\x1b[1;5C", nil},
		{"modified arrow then key", "\x1b[1;5Dd", []Key{KeyRight}},
		{"application cursor arrows", "\x1bOD\x1bOC", []Key{KeyLeft, KeyRight}},
		{"application cursor up ignored", "\x1bOA", nil},
		{"alt prefix dropped", "\x1bq", []Key{KeyQuit}},
		{"malformed csi", "\x1b[1\x03", []Key{KeyQuit}},
		{"unknown bytes ignored", "zx9", nil},
		{"lone escape ignored", "\x1b", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Decoder
			assert.Equal(t, tt.want, d.Feed([]byte(tt.in)))
		})
	}
}

func TestDecoderSplitSequence(t *testing.T) {
	var d Decoder
	assert.Empty(t, d.Feed([]byte("\x1b")))
	assert.Empty(t, d.Feed([]byte("[")))
	assert.Equal(t, []Key{KeyLeft}, d.Feed([]byte("D")))

	assert.Empty(t, d.Feed([]byte("\x1b[1;")))
	assert.Empty(t, d.Feed([]byte("2D")), "split modified arrow stays ignored")
}

func TestDecoderDropsOverlongSequence(t *testing.T) {
	var d Decoder
	assert.Empty(t, d.Feed([]byte("\x1b["+strings.Repeat("1", 40))))
	assert.Equal(t, []Key{KeyLeft}, d.Feed([]byte("a")))
}

func TestStreamClosesOnEOF(t *testing.T) {
	s := StartStream(context.Background(), bytes.NewReader([]byte(" \x1b[Dq")))

	var got []Key
	for k := range s.Keys() {
		got = append(got, k)
	}
	assert.Equal(t, []Key{KeyStart, KeyLeft, KeyQuit}, got)
}

func TestStreamOneBytePerRead(t *testing.T) {
	r := iotest.OneByteReader(strings.NewReader("\x1b[Dd\x1b[1;2D \x1bOC"))
	s := StartStream(context.Background(), r)

	var got []Key
	for k := range s.Keys() {
		got = append(got, k)
	}
	assert.Equal(t, []Key{KeyLeft, KeyRight, KeyStart, KeyRight}, got)
}

func TestStateApply(t *testing.T) {
	s := NewState()
	assert.False(t, s.Pressed(KeyLeft))

	s.Apply(Event{Key: KeyLeft, Down: true})
	assert.True(t, s.Pressed(KeyLeft))
	assert.False(t, s.Pressed(KeyRight))

	s.Apply(Event{Key: KeyLeft})
	assert.False(t, s.Pressed(KeyLeft))

	s.Apply(Event{Key: Key(99), Down: true})
	assert.False(t, s.Pressed(Key(99)))
}

func TestTrackerHold(t *testing.T) {
	t0 := time.Unix(0, 0)
	tr := NewTracker(80*time.Millisecond, 80*time.Millisecond)

	ev, ok := tr.Press(KeyLeft, t0)
	require.True(t, ok)
	assert.Equal(t, Event{Key: KeyLeft, Down: true}, ev)

	// Auto-repeat inside the window keeps the key held
	ev, _ = tr.Press(KeyLeft, t0.Add(50*time.Millisecond))
	assert.True(t, ev.Repeat)
	assert.Empty(t, tr.Expire(t0.Add(100*time.Millisecond)))

	released := tr.Expire(t0.Add(130 * time.Millisecond))
	assert.Equal(t, []Event{{Key: KeyLeft}}, released)
	assert.Empty(t, tr.Expire(t0.Add(time.Second)), "a key is released only once")

	_, ok = tr.Press(KeyNone, t0)
	assert.False(t, ok)
}

func TestTrackerFirstPressBridgesRepeatDelay(t *testing.T) {
	t0 := time.Unix(0, 0)
	tr := NewTracker(500*time.Millisecond, 80*time.Millisecond)

	tr.Press(KeyRight, t0)
	assert.Empty(t, tr.Expire(t0.Add(400*time.Millisecond)), "held through the repeat delay")

	// First repeat arrives; from here the short window applies
	ev, _ := tr.Press(KeyRight, t0.Add(450*time.Millisecond))
	assert.True(t, ev.Repeat)
	assert.Empty(t, tr.Expire(t0.Add(520*time.Millisecond)))
	assert.Equal(t, []Event{{Key: KeyRight}}, tr.Expire(t0.Add(530*time.Millisecond)))

	// A fresh press after release gets the long window again
	tr.Press(KeyRight, t0.Add(time.Second))
	assert.Empty(t, tr.Expire(t0.Add(1100*time.Millisecond)))
	assert.Len(t, tr.Expire(t0.Add(1500*time.Millisecond)), 1)
}

func TestTrackerFirstNeverShorterThanHold(t *testing.T) {
	t0 := time.Unix(0, 0)
	tr := NewTracker(10*time.Millisecond, 80*time.Millisecond)
	tr.Press(KeyFire, t0)
	assert.Empty(t, tr.Expire(t0.Add(50*time.Millisecond)))
	assert.Len(t, tr.Expire(t0.Add(80*time.Millisecond)), 1)
}

func TestFromTcell(t *testing.T) {
	assert.Equal(t, KeyLeft, FromTcell(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.Equal(t, KeyFire, FromTcell(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Equal(t, KeyStart, FromTcell(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.Equal(t, KeyQuit, FromTcell(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.Equal(t, KeyNone, FromTcell(tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone)))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "fire", KeyFire.String())
	assert.Equal(t, "none", Key(42).String())
}
