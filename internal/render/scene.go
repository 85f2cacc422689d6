// Package render draws game snapshots to terminals.
package render

import (
	"math"

	"github.com/tomz197/laneshooter/internal/draw"
	"github.com/tomz197/laneshooter/internal/game"
	"github.com/tomz197/laneshooter/internal/object"
	"github.com/tomz197/laneshooter/internal/sprite"
)

// Ground tuft layout within one tile.
const (
	tuftSpacing = 40.0
	tuftWidth   = 12.0
	tuftHeight  = 6.0
	tuftStride  = 137 // Horizontal step between consecutive tufts
)

// splatRadius is the size of a fresh hit effect; it shrinks with age.
const splatRadius = 20.0

// Paint draws every layer of the snapshot onto c, back to front: ground,
// walls, enemies, bullets, player, effects.
func Paint(c *draw.Canvas, s game.Snapshot) {
	c.Clear()
	paintGround(c, s, s.ScrollA)
	paintGround(c, s, s.ScrollB)

	c.FillRect(0, 0, s.Wall, s.Height, sprite.Wall)
	c.FillRect(s.Width-s.Wall, 0, s.Wall, s.Height, sprite.Wall)

	for _, e := range s.Enemies {
		paintEnemy(c, e)
	}
	for _, b := range s.Bullets {
		c.FillRect(b.X, b.Y, b.W, b.H, sprite.Bullet)
	}
	paintPlayer(c, s.Player)
	for _, fx := range s.Effects {
		paintEffect(c, fx, s)
	}
}

// paintGround draws one ground tile whose top edge is at offset.
func paintGround(c *draw.Canvas, s game.Snapshot, offset float64) {
	span := int(s.Width - 2*s.Wall - tuftWidth)
	if span <= 0 {
		return
	}
	n := int(s.Height / tuftSpacing)
	for k := 0; k < n; k++ {
		x := s.Wall + float64(k*tuftStride%span)
		y := offset + float64(k)*tuftSpacing
		c.FillRect(x, y, tuftWidth, tuftHeight, sprite.Ground)
	}
}

func paintEnemy(c *draw.Canvas, e object.Enemy) {
	switch e.Variant {
	case sprite.EnemyOrc:
		// Octagon
		inset := e.W / 4
		pts := c.BorrowPoints(8)
		pts[0] = draw.Point{X: e.X + inset, Y: e.Y}
		pts[1] = draw.Point{X: e.X + e.W - inset, Y: e.Y}
		pts[2] = draw.Point{X: e.X + e.W, Y: e.Y + inset}
		pts[3] = draw.Point{X: e.X + e.W, Y: e.Y + e.H - inset}
		pts[4] = draw.Point{X: e.X + e.W - inset, Y: e.Y + e.H}
		pts[5] = draw.Point{X: e.X + inset, Y: e.Y + e.H}
		pts[6] = draw.Point{X: e.X, Y: e.Y + e.H - inset}
		pts[7] = draw.Point{X: e.X, Y: e.Y + inset}
		c.DrawPolygon(pts, e.Variant, true)
	case sprite.EnemyTroll:
		// Downward wedge
		pts := c.BorrowPoints(3)
		pts[0] = draw.Point{X: e.X, Y: e.Y}
		pts[1] = draw.Point{X: e.X + e.W, Y: e.Y}
		pts[2] = draw.Point{X: e.X + e.W/2, Y: e.Y + e.H}
		c.DrawPolygon(pts, e.Variant, true)
	default:
		c.FillRect(e.X, e.Y, e.W, e.H, e.Variant)
	}
}

func paintPlayer(c *draw.Canvas, p object.Player) {
	id := p.Sprite
	if !p.Alive {
		id = sprite.Splat
	}
	pts := c.BorrowPoints(3)
	pts[0] = draw.Point{X: p.X + p.W/2, Y: p.Y}
	pts[1] = draw.Point{X: p.X + p.W, Y: p.Y + p.H}
	pts[2] = draw.Point{X: p.X, Y: p.Y + p.H}
	c.DrawPolygon(pts, id, true)
}

// paintEffect draws a diamond that shrinks to nothing over the effect's TTL.
func paintEffect(c *draw.Canvas, fx object.Effect, s game.Snapshot) {
	r := splatRadius
	if s.EffectTTL > 0 {
		left := 1 - float64(fx.Age(s.Now))/float64(s.EffectTTL)
		r *= math.Max(left, 0.2)
	}
	pts := c.BorrowPoints(4)
	pts[0] = draw.Point{X: fx.X, Y: fx.Y - r}
	pts[1] = draw.Point{X: fx.X + r, Y: fx.Y}
	pts[2] = draw.Point{X: fx.X, Y: fx.Y + r}
	pts[3] = draw.Point{X: fx.X - r, Y: fx.Y}
	c.DrawPolygon(pts, fx.Sprite, true)
}

// Overlay returns the centred text lines shown over the playfield for the
// snapshot's state.
func Overlay(s game.Snapshot) []string {
	switch s.State {
	case game.StateNotStarted:
		return []string{
			"L A N E   S H O O T E R",
			"",
			"Press SPACE to Start",
			"",
			"A/D or arrows move, ENTER fires, Q quits",
		}
	case game.StateGameOver:
		return []string{
			"G A M E   O V E R",
			"",
			"Press Q to quit",
		}
	default:
		return nil
	}
}
