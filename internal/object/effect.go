package object

import (
	"time"

	"github.com/tomz197/laneshooter/internal/sprite"
)

// Effect is a short-lived marker left where an enemy was hit. It has no
// velocity; only its age matters.
type Effect struct {
	X, Y      float64 // Centre
	CreatedAt time.Time
	Sprite    sprite.ID
}

// NewEffect creates a splat effect centred on (x, y).
func NewEffect(x, y float64, now time.Time) Effect {
	return Effect{X: x, Y: y, CreatedAt: now, Sprite: sprite.Splat}
}

// Expired reports whether more than ttl has elapsed since creation.
func (e Effect) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.CreatedAt) > ttl
}

// Age returns the elapsed time since creation, never negative.
func (e Effect) Age(now time.Time) time.Duration {
	if d := now.Sub(e.CreatedAt); d > 0 {
		return d
	}
	return 0
}
