// Package object defines the entities of the playfield: the player, bullets,
// enemies and hit effects.
package object

import "github.com/tomz197/laneshooter/internal/physics"

// Boxed is implemented by every entity that takes part in collision tests.
type Boxed interface {
	Bounds() physics.Rect
}

var (
	_ Boxed = Player{}
	_ Boxed = Bullet{}
	_ Boxed = Enemy{}
)
