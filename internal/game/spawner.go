package game

import (
	"math/rand/v2"

	"github.com/tomz197/laneshooter/internal/object"
	"github.com/tomz197/laneshooter/internal/sprite"
)

// Spawner produces enemies at the top edge with a random column, speed and
// look.
type Spawner struct {
	rng      *rand.Rand
	width    float64
	size     float64
	base     float64
	jitter   float64
	variants []sprite.ID
}

// NewSpawner creates a spawner for a playfield of the given width.
func NewSpawner(rng *rand.Rand, width, size, baseSpeed, jitter float64, variants []sprite.ID) *Spawner {
	return &Spawner{
		rng:      rng,
		width:    width,
		size:     size,
		base:     baseSpeed,
		jitter:   jitter,
		variants: variants,
	}
}

// Next returns a new enemy with x in [0, width-size], y = 0 and speed in
// [base, base+jitter].
func (s *Spawner) Next() object.Enemy {
	x := s.rng.Float64() * (s.width - s.size)
	speed := s.base + s.rng.Float64()*s.jitter
	variant := sprite.None
	if len(s.variants) > 0 {
		variant = s.variants[s.rng.IntN(len(s.variants))]
	}
	return object.NewEnemy(x, 0, s.size, speed, variant)
}
