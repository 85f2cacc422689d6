// Package input turns raw terminal bytes and key events into logical key
// presses and releases.
package input

import (
	"time"

	"github.com/kamstrup/intmap"
)

// Key is a logical key identifier.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyStart
	KeyFire
	KeyQuit
	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:  "none",
	KeyLeft:  "move-left",
	KeyRight: "move-right",
	KeyStart: "start",
	KeyFire:  "fire",
	KeyQuit:  "quit",
}

func (k Key) String() string {
	if k >= keyCount {
		return keyNames[KeyNone]
	}
	return keyNames[k]
}

// Valid reports whether k names a known logical key.
func (k Key) Valid() bool {
	return k > KeyNone && k < keyCount
}

// Event is a key-down or key-up transition. Repeat marks a key-down that
// arrived while the key was already held (terminal auto-repeat).
type Event struct {
	Key    Key
	Down   bool
	Repeat bool
}

// State is the set of currently pressed keys. It persists across frames and
// changes only through Apply.
type State struct {
	pressed *intmap.Map[Key, bool]
}

// NewState creates an empty key state.
func NewState() *State {
	return &State{pressed: intmap.New[Key, bool](int(keyCount))}
}

// Apply records a press or release. Unknown keys are ignored.
func (s *State) Apply(ev Event) {
	if !ev.Key.Valid() {
		return
	}
	s.pressed.Put(ev.Key, ev.Down)
}

// Pressed reports whether k is currently held.
func (s *State) Pressed(k Key) bool {
	down, ok := s.pressed.Get(k)
	return ok && down
}

// Tracker synthesises key-up events for input sources that only report
// presses. Terminals pause before auto-repeat starts, so a first press is held
// for a longer window than the repeats that follow it.
type Tracker struct {
	first    time.Duration
	hold     time.Duration
	deadline *intmap.Map[Key, time.Time]
}

// NewTracker creates a tracker. first is the hold window after an initial
// press, hold the window after each auto-repeat.
func NewTracker(first, hold time.Duration) *Tracker {
	return &Tracker{
		first:    max(first, hold),
		hold:     hold,
		deadline: intmap.New[Key, time.Time](int(keyCount)),
	}
}

// Press records a press of k and returns the resulting key-down event.
func (t *Tracker) Press(k Key, now time.Time) (Event, bool) {
	if !k.Valid() {
		return Event{}, false
	}
	window := t.first
	_, held := t.deadline.Get(k)
	if held {
		window = t.hold
	}
	t.deadline.Put(k, now.Add(window))
	return Event{Key: k, Down: true, Repeat: held}, true
}

// Expire returns key-up events for every key whose hold window has passed.
func (t *Tracker) Expire(now time.Time) []Event {
	var released []Event
	for k := KeyNone + 1; k < keyCount; k++ {
		deadline, ok := t.deadline.Get(k)
		if ok && !now.Before(deadline) {
			t.deadline.Del(k)
			released = append(released, Event{Key: k})
		}
	}
	return released
}
