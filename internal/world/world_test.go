package world

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/laneshooter/internal/object"
	"github.com/tomz197/laneshooter/internal/sprite"
)

func TestAddKeepsInsertionOrder(t *testing.T) {
	w := New()
	w.AddEnemy(object.NewEnemy(0, 0, 50, 2, sprite.EnemyGoblin))
	w.AddEnemy(object.NewEnemy(100, 0, 50, 3, sprite.EnemyOrc))
	w.AddBullet(object.NewBullet(10, 10, 5, 10, 7))
	w.AddEffect(object.NewEffect(1, 2, time.Unix(0, 0)))

	require.Len(t, w.Enemies, 2)
	assert.Equal(t, 100.0, w.Enemies[1].X)
	assert.Len(t, w.Bullets, 1)
	assert.Len(t, w.Effects, 1)
}

func TestRemoveWhereSinglePass(t *testing.T) {
	w := New()
	for i := 0; i < 6; i++ {
		w.AddEnemy(object.NewEnemy(float64(i), 0, 50, 2, sprite.EnemyGoblin))
	}

	var visited []int
	removed := w.RemoveEnemiesWhere(func(i int, e object.Enemy) bool {
		visited = append(visited, i)
		return i%2 == 0
	})

	assert.Equal(t, 3, removed)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, visited, "each entity is visited exactly once")
	require.Len(t, w.Enemies, 3)
	for _, e := range w.Enemies {
		assert.Equal(t, 1, int(e.X)%2)
	}
}

func TestRemoveWhereAdjacentMatches(t *testing.T) {
	// Removing neighbours by index must not skip any entry.
	w := New()
	for i := 0; i < 4; i++ {
		w.AddBullet(object.NewBullet(float64(i), 0, 5, 10, 7))
	}
	marked := map[int]bool{1: true, 2: true}
	n := w.RemoveBulletsWhere(func(i int, _ object.Bullet) bool { return marked[i] })

	assert.Equal(t, 2, n)
	require.Len(t, w.Bullets, 2)
	assert.InDelta(t, -2.5, w.Bullets[0].X, 1e-9)
	assert.InDelta(t, 0.5, w.Bullets[1].X, 1e-9)
}

func TestRemoveEffectsWhereNoneMatch(t *testing.T) {
	w := New()
	w.AddEffect(object.NewEffect(0, 0, time.Unix(0, 0)))
	n := w.RemoveEffectsWhere(func(int, object.Effect) bool { return false })
	assert.Zero(t, n)
	assert.Len(t, w.Effects, 1)
}

func TestCloneIsIndependent(t *testing.T) {
	w := New()
	w.AddEnemy(object.NewEnemy(0, 0, 50, 2, sprite.EnemyGoblin))
	c := w.Clone()

	w.Enemies[0].Step()
	w.AddBullet(object.NewBullet(0, 0, 5, 10, 7))

	assert.Equal(t, 0.0, c.Enemies[0].Y)
	assert.Empty(t, c.Bullets)
}
