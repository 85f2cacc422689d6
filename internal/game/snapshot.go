package game

import (
	"time"

	"github.com/tomz197/laneshooter/internal/object"
)

// Snapshot is a read-only copy of everything the presentation layer draws.
type Snapshot struct {
	State   State
	Player  object.Player
	Bullets []object.Bullet
	Enemies []object.Enemy
	Effects []object.Effect

	ScrollA, ScrollB float64 // Ground tile offsets

	Width, Height float64
	Wall          float64
	EffectTTL     time.Duration
	Now           time.Time // Time of the last tick
	Tick          uint64
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	w := g.world.Clone()
	return Snapshot{
		State:     g.state,
		Player:    g.player,
		Bullets:   w.Bullets,
		Enemies:   w.Enemies,
		Effects:   w.Effects,
		ScrollA:   g.scroll.A,
		ScrollB:   g.scroll.B,
		Width:     g.cfg.Width,
		Height:    g.cfg.Height,
		Wall:      g.cfg.WallThickness,
		EffectTTL: g.cfg.EffectTTL,
		Now:       g.now,
		Tick:      g.ticks,
	}
}
