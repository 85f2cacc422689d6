package object

import (
	"github.com/tomz197/laneshooter/internal/physics"
	"github.com/tomz197/laneshooter/internal/sprite"
)

// Player is the ship moving along the bottom lane.
type Player struct {
	X, Y   float64 // Top-left corner
	W, H   float64 // Fixed size
	Speed  float64 // Units per tick while a move key is held
	Alive  bool    // Cleared when an enemy reaches the player
	Sprite sprite.ID
}

// NewPlayer creates a live player with its top-left corner at (x, y).
func NewPlayer(x, y, w, h, speed float64) Player {
	return Player{
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		Speed:  speed,
		Alive:  true,
		Sprite: sprite.Player,
	}
}

// Bounds returns the player's bounding box.
func (p Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Move shifts the player horizontally by dir*Speed (dir is -1, 0 or 1) and
// keeps the box inside [minX, maxX+W].
func (p *Player) Move(dir, minX, maxX float64) {
	p.X = physics.Clamp(p.X+dir*p.Speed, minX, maxX)
}

// Muzzle returns the top-centre point of the player's box.
func (p Player) Muzzle() (x, y float64) {
	return p.X + p.W/2, p.Y
}
