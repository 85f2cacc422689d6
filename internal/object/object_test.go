package object

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tomz197/laneshooter/internal/sprite"
)

func TestPlayerMoveClamps(t *testing.T) {
	p := NewPlayer(10, 540, 50, 50, 5)
	p.Move(-1, 10, 420)
	assert.Equal(t, 10.0, p.X)

	p.X = 418
	p.Move(1, 10, 420)
	assert.Equal(t, 420.0, p.X)

	p.X = 200
	p.Move(1, 10, 420)
	assert.Equal(t, 205.0, p.X)
}

func TestPlayerMuzzle(t *testing.T) {
	p := NewPlayer(100, 540, 50, 50, 5)
	x, y := p.Muzzle()
	assert.Equal(t, 125.0, x)
	assert.Equal(t, 540.0, y)
	assert.True(t, p.Alive)
	assert.Equal(t, sprite.Player, p.Sprite)
}

func TestBulletStepAndBounds(t *testing.T) {
	b := NewBullet(125, 540, 5, 10, 7)
	assert.Equal(t, 122.5, b.X)

	b.Step()
	assert.Equal(t, 533.0, b.Y)
	assert.False(t, b.OffTop())

	b.Y = -10
	assert.False(t, b.OffTop(), "bottom edge exactly at 0 is still inside")
	b.Y = -10.5
	assert.True(t, b.OffTop())
}

func TestEnemyStepAndBelow(t *testing.T) {
	e := NewEnemy(100, 0, 50, 2, sprite.EnemyOrc)
	e.Step()
	assert.Equal(t, 2.0, e.Y)
	assert.Equal(t, 50.0, e.Bounds().W)

	e.Y = 640
	assert.False(t, e.Below(640))
	e.Y = 641
	assert.True(t, e.Below(640))
}

func TestEffectExpired(t *testing.T) {
	t0 := time.Unix(1000, 0)
	e := NewEffect(125, 103, t0)

	assert.False(t, e.Expired(t0.Add(999*time.Millisecond), time.Second))
	assert.False(t, e.Expired(t0.Add(time.Second), time.Second))
	assert.True(t, e.Expired(t0.Add(1001*time.Millisecond), time.Second))
	assert.Equal(t, time.Duration(0), e.Age(t0.Add(-time.Second)))
}
