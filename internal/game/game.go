// Package game is the lane shooter simulation: spawning, motion, collision,
// effect expiry and the session state machine. It performs no I/O and is
// driven entirely by its caller.
package game

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/laneshooter/internal/config"
	"github.com/tomz197/laneshooter/internal/input"
	"github.com/tomz197/laneshooter/internal/object"
	"github.com/tomz197/laneshooter/internal/sprite"
	"github.com/tomz197/laneshooter/internal/world"
)

// Options configures collaborators of a Game. Zero values are usable: a nil
// Scheduler disables the automatic spawn timer, a nil Rand is seeded randomly
// and a nil Logger discards output.
type Options struct {
	Scheduler Scheduler
	Rand      *rand.Rand
	Logger    *zap.Logger
}

// Game is a single play session. It is not safe for concurrent use; the
// owning goroutine must serialise Tick, TrySpawn and HandleKey.
type Game struct {
	cfg     config.Tuning
	state   State
	player  object.Player
	world   *world.World
	keys    *input.State
	spawner *Spawner
	scroll  Scroll
	sched   Scheduler
	log     *zap.Logger

	cancelSpawn func()
	now         time.Time
	ticks       uint64

	// Scratch marks reused by resolveHits
	bulletHits []bool
	enemyHits  []bool
}

// New creates a game in the NotStarted state with the player centred in its lane.
func New(cfg config.Tuning, opts Options) *Game {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	player := object.NewPlayer(
		cfg.Width/2-cfg.PlayerWidth/2,
		cfg.Height-cfg.PlayerLift,
		cfg.PlayerWidth,
		cfg.PlayerHeight,
		cfg.PlayerSpeed,
	)

	return &Game{
		cfg:     cfg,
		state:   StateNotStarted,
		player:  player,
		world:   world.New(),
		keys:    input.NewState(),
		spawner: NewSpawner(rng, cfg.Width, cfg.EnemySize, cfg.EnemyBaseSpeed, cfg.EnemySpeedJitter, sprite.EnemyVariants),
		scroll:  NewScroll(cfg.Height),
		sched:   opts.Scheduler,
		log:     logger,
	}
}

// State returns the current session phase.
func (g *Game) State() State {
	return g.state
}

// Player returns a copy of the player.
func (g *Game) Player() object.Player {
	return g.player
}

// Start moves NotStarted to Running and arms the spawn timer. It reports
// whether the transition happened; later calls are no-ops.
func (g *Game) Start() bool {
	if g.state != StateNotStarted {
		return false
	}
	g.state = StateRunning
	if g.sched != nil {
		g.cancelSpawn = g.sched.Every(g.cfg.SpawnInterval, func() { g.TrySpawn() })
	}
	g.log.Info("game started", zap.Duration("spawn_interval", g.cfg.SpawnInterval))
	return true
}

// Stop cancels the spawn timer. Call it when the session ends; it is safe to
// call more than once.
func (g *Game) Stop() {
	if g.cancelSpawn != nil {
		g.cancelSpawn()
		g.cancelSpawn = nil
	}
}

// endGame enters the terminal GameOver state. Entities are left in place.
func (g *Game) endGame() {
	if g.state == StateGameOver {
		return
	}
	g.state = StateGameOver
	g.player.Alive = false
	g.Stop()
	g.log.Info("game over",
		zap.Uint64("tick", g.ticks),
		zap.Int("enemies", len(g.world.Enemies)),
		zap.Int("bullets", len(g.world.Bullets)),
	)
}

// TrySpawn adds one enemy at the top edge. It is a no-op outside Running or
// when the enemy cap is reached.
func (g *Game) TrySpawn() bool {
	if g.state != StateRunning {
		return false
	}
	if g.cfg.MaxEnemies > 0 && len(g.world.Enemies) >= g.cfg.MaxEnemies {
		g.log.Debug("spawn skipped, enemy cap reached", zap.Int("enemies", len(g.world.Enemies)))
		return false
	}
	e := g.spawner.Next()
	g.world.AddEnemy(e)
	g.log.Debug("enemy spawned",
		zap.Float64("x", e.X),
		zap.Float64("speed", e.Speed),
		zap.Stringer("variant", e.Variant),
	)
	return true
}

// Fire launches a bullet from the top-centre of the player. Only while Running.
func (g *Game) Fire() bool {
	if g.state != StateRunning {
		return false
	}
	x, y := g.player.Muzzle()
	g.world.AddBullet(object.NewBullet(x, y, g.cfg.BulletWidth, g.cfg.BulletHeight, g.cfg.BulletSpeed))
	return true
}

// HandleKey applies a key transition. Start and fire act on key-down (auto
// repeats included); unknown keys change nothing.
func (g *Game) HandleKey(ev input.Event) {
	if !ev.Key.Valid() {
		return
	}
	g.keys.Apply(ev)
	if !ev.Down {
		return
	}
	switch ev.Key {
	case input.KeyStart:
		g.Start()
	case input.KeyFire:
		g.Fire()
	}
}

// Tick runs one simulation step at time now. Only Running ticks; motion uses
// constant per-tick velocities regardless of elapsed time.
func (g *Game) Tick(now time.Time) {
	if g.state != StateRunning {
		return
	}
	g.now = now
	g.ticks++

	g.steer()
	g.integrate()
	g.collide(now)
	g.sweepEffects(now)
	g.scroll.Advance(g.cfg.ScrollSpeed, g.cfg.Height)
}
