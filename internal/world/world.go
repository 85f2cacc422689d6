// Package world holds the live entity collections of a session.
package world

import (
	"slices"

	"github.com/tomz197/laneshooter/internal/object"
)

// World is the entity store: bullets, enemies and effects in insertion order.
// It is owned by the session goroutine and must not be shared without a lock.
type World struct {
	Bullets []object.Bullet
	Enemies []object.Enemy
	Effects []object.Effect
}

// New creates an empty world.
func New() *World {
	return &World{}
}

// AddBullet appends a bullet.
func (w *World) AddBullet(b object.Bullet) {
	w.Bullets = append(w.Bullets, b)
}

// AddEnemy appends an enemy.
func (w *World) AddEnemy(e object.Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// AddEffect appends an effect.
func (w *World) AddEffect(e object.Effect) {
	w.Effects = append(w.Effects, e)
}

// RemoveBulletsWhere removes every bullet for which remove returns true and
// reports how many were removed.
func (w *World) RemoveBulletsWhere(remove func(i int, b object.Bullet) bool) int {
	var n int
	w.Bullets, n = removeWhere(w.Bullets, remove)
	return n
}

// RemoveEnemiesWhere removes every enemy for which remove returns true.
func (w *World) RemoveEnemiesWhere(remove func(i int, e object.Enemy) bool) int {
	var n int
	w.Enemies, n = removeWhere(w.Enemies, remove)
	return n
}

// RemoveEffectsWhere removes every effect for which remove returns true.
func (w *World) RemoveEffectsWhere(remove func(i int, e object.Effect) bool) int {
	var n int
	w.Effects, n = removeWhere(w.Effects, remove)
	return n
}

// Clone returns a deep copy safe to hand to another goroutine.
func (w *World) Clone() *World {
	return &World{
		Bullets: slices.Clone(w.Bullets),
		Enemies: slices.Clone(w.Enemies),
		Effects: slices.Clone(w.Effects),
	}
}

// removeWhere compacts s in a single pass, reusing its backing array. The
// predicate receives the element's index before compaction so callers can
// refer to indices collected during an earlier read-only scan.
func removeWhere[T any](s []T, remove func(i int, v T) bool) ([]T, int) {
	kept := s[:0]
	for i, v := range s {
		if !remove(i, v) {
			kept = append(kept, v)
		}
	}
	removed := len(s) - len(kept)
	clear(s[len(kept):]) // drop stale copies past the new length
	return kept, removed
}
