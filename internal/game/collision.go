package game

import (
	"time"

	"github.com/tomz197/laneshooter/internal/object"
)

// collide runs both overlap tests for the tick.
func (g *Game) collide(now time.Time) {
	if g.enemyReachedPlayer() {
		g.endGame()
	}
	g.resolveHits(now)
}

// enemyReachedPlayer reports whether any enemy that has come down to the
// player's lane overlaps the player.
func (g *Game) enemyReachedPlayer() bool {
	pb := g.player.Bounds()
	for _, e := range g.world.Enemies {
		if e.Y+e.H <= g.player.Y {
			continue
		}
		if e.Bounds().Overlaps(pb) {
			return true
		}
	}
	return false
}

// resolveHits pairs every bullet with the first unclaimed enemy it overlaps.
// The scan only marks; removal happens after it completes.
func (g *Game) resolveHits(now time.Time) {
	bullets, enemies := g.world.Bullets, g.world.Enemies
	if len(bullets) == 0 || len(enemies) == 0 {
		return
	}

	g.bulletHits = resetMarks(g.bulletHits, len(bullets))
	g.enemyHits = resetMarks(g.enemyHits, len(enemies))
	hits := 0

	for bi, b := range bullets {
		bb := b.Bounds()
		for ei, e := range enemies {
			if g.enemyHits[ei] {
				continue
			}
			eb := e.Bounds()
			if !bb.Overlaps(eb) {
				continue
			}
			g.bulletHits[bi] = true
			g.enemyHits[ei] = true
			cx, cy := eb.Center()
			g.world.AddEffect(object.NewEffect(cx, cy, now))
			hits++
			break
		}
	}

	if hits == 0 {
		return
	}
	g.world.RemoveBulletsWhere(func(i int, _ object.Bullet) bool { return g.bulletHits[i] })
	g.world.RemoveEnemiesWhere(func(i int, _ object.Enemy) bool { return g.enemyHits[i] })
}

// resetMarks returns a zeroed slice of length n, reusing buf when possible.
func resetMarks(buf []bool, n int) []bool {
	if cap(buf) < n {
		return make([]bool, n)
	}
	buf = buf[:n]
	clear(buf)
	return buf
}
