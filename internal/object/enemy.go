package object

import (
	"github.com/tomz197/laneshooter/internal/physics"
	"github.com/tomz197/laneshooter/internal/sprite"
)

// Enemy descends at a constant speed chosen when it spawns.
type Enemy struct {
	X, Y    float64 // Top-left corner
	W, H    float64
	Speed   float64   // Units per tick, downward
	Variant sprite.ID // Shared catalog entry, never copied pixel data
}

// NewEnemy creates a square enemy of the given size.
func NewEnemy(x, y, size, speed float64, variant sprite.ID) Enemy {
	return Enemy{
		X:       x,
		Y:       y,
		W:       size,
		H:       size,
		Speed:   speed,
		Variant: variant,
	}
}

// Step advances the enemy by one tick.
func (e *Enemy) Step() {
	e.Y += e.Speed
}

// Bounds returns the enemy's bounding box.
func (e Enemy) Bounds() physics.Rect {
	return physics.Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// Below reports whether the enemy's top edge has passed the bottom bound.
func (e Enemy) Below(height float64) bool {
	return e.Y > height
}
