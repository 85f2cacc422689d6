package game

import (
	"github.com/tomz197/laneshooter/internal/input"
	"github.com/tomz197/laneshooter/internal/object"
)

// steer moves the player according to the held movement keys.
func (g *Game) steer() {
	var dir float64
	if g.keys.Pressed(input.KeyLeft) {
		dir--
	}
	if g.keys.Pressed(input.KeyRight) {
		dir++
	}
	if dir == 0 {
		return
	}
	minX := g.cfg.WallThickness
	maxX := g.cfg.Width - g.player.W - g.cfg.WallThickness
	g.player.Move(dir, minX, maxX)
}

// integrate advances bullets and enemies by one tick and drops the ones that
// left the playfield.
func (g *Game) integrate() {
	for i := range g.world.Bullets {
		g.world.Bullets[i].Step()
	}
	for i := range g.world.Enemies {
		g.world.Enemies[i].Step()
	}

	g.world.RemoveBulletsWhere(func(_ int, b object.Bullet) bool {
		return b.OffTop()
	})
	height := g.cfg.Height
	g.world.RemoveEnemiesWhere(func(_ int, e object.Enemy) bool {
		return e.Below(height)
	})
}
