package object

import "github.com/tomz197/laneshooter/internal/physics"

// Bullet is a projectile travelling straight up.
type Bullet struct {
	X, Y  float64 // Top-left corner
	W, H  float64
	Speed float64 // Units per tick, upward
}

// NewBullet creates a bullet whose top edge is at top and which is centred
// horizontally on cx.
func NewBullet(cx, top, w, h, speed float64) Bullet {
	return Bullet{
		X:     cx - w/2,
		Y:     top,
		W:     w,
		H:     h,
		Speed: speed,
	}
}

// Step advances the bullet by one tick.
func (b *Bullet) Step() {
	b.Y -= b.Speed
}

// Bounds returns the bullet's bounding box.
func (b Bullet) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// OffTop reports whether the bullet has fully left the top of the playfield.
func (b Bullet) OffTop() bool {
	return b.Y+b.H < 0
}
