package game

import (
	"time"

	"github.com/tomz197/laneshooter/internal/object"
)

// sweepEffects drops effects older than the configured time-to-live.
func (g *Game) sweepEffects(now time.Time) {
	ttl := g.cfg.EffectTTL
	g.world.RemoveEffectsWhere(func(_ int, e object.Effect) bool {
		return e.Expired(now, ttl)
	})
}
