package loop

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/laneshooter/internal/config"
	"github.com/tomz197/laneshooter/internal/game"
	"github.com/tomz197/laneshooter/internal/input"
)

type fakeRenderer struct {
	mu     sync.Mutex
	frames int
	last   game.Snapshot
	err    error
}

func (r *fakeRenderer) Draw(s game.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames++
	r.last = s
	return r.err
}

func (r *fakeRenderer) snapshot() (game.Snapshot, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last, r.frames
}

func fastTuning() config.Tuning {
	cfg := config.Default()
	cfg.FrameRate = 200
	cfg.SpawnInterval = 10 * time.Millisecond
	cfg.KeyHold = 20 * time.Millisecond
	cfg.KeyRepeatWait = 20 * time.Millisecond
	return cfg
}

type session struct {
	keys     chan input.Key
	renderer *fakeRenderer
	cancel   context.CancelFunc
	done     chan error
}

func startSession(t *testing.T, cfg config.Tuning) *session {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	s := &session{
		keys:     make(chan input.Key, 8),
		renderer: &fakeRenderer{},
		cancel:   cancel,
		done:     make(chan error, 1),
	}
	go func() {
		s.done <- Run(ctx, Options{
			Tuning:   cfg,
			Renderer: s.renderer,
			Keys:     s.keys,
			Rand:     rand.New(rand.NewPCG(3, 4)),
		})
	}()
	t.Cleanup(cancel)
	return s
}

func (s *session) wait(t *testing.T) error {
	t.Helper()
	select {
	case err := <-s.done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop")
		return nil
	}
}

func TestRunRequiresRenderer(t *testing.T) {
	assert.ErrorIs(t, Run(context.Background(), Options{Tuning: fastTuning()}), ErrNoRenderer)
}

func TestRunQuit(t *testing.T) {
	s := startSession(t, fastTuning())
	s.keys <- input.KeyQuit
	assert.NoError(t, s.wait(t))

	_, frames := s.renderer.snapshot()
	assert.GreaterOrEqual(t, frames, 1, "initial frame is drawn")
}

func TestRunInputClosed(t *testing.T) {
	s := startSession(t, fastTuning())
	close(s.keys)
	assert.NoError(t, s.wait(t))
}

func TestRunContextCancel(t *testing.T) {
	s := startSession(t, fastTuning())
	s.cancel()
	assert.NoError(t, s.wait(t))
}

func TestRunRendererError(t *testing.T) {
	boom := errors.New("broken pipe")
	r := &fakeRenderer{err: boom}
	err := Run(context.Background(), Options{Tuning: fastTuning(), Renderer: r})
	assert.ErrorIs(t, err, boom)
}

func TestRunNotStartedDoesNotTick(t *testing.T) {
	s := startSession(t, fastTuning())

	require.Eventually(t, func() bool {
		_, frames := s.renderer.snapshot()
		return frames > 5
	}, time.Second, 5*time.Millisecond)

	snap, _ := s.renderer.snapshot()
	assert.Equal(t, game.StateNotStarted, snap.State)
	assert.Zero(t, snap.Tick)
	assert.Empty(t, snap.Enemies)

	s.keys <- input.KeyQuit
	assert.NoError(t, s.wait(t))
}

func TestRunStartSpawnsAndFires(t *testing.T) {
	s := startSession(t, fastTuning())
	s.keys <- input.KeyStart

	require.Eventually(t, func() bool {
		snap, _ := s.renderer.snapshot()
		return snap.State == game.StateRunning && len(snap.Enemies) > 0
	}, time.Second, 5*time.Millisecond)

	s.keys <- input.KeyFire
	require.Eventually(t, func() bool {
		snap, _ := s.renderer.snapshot()
		return len(snap.Bullets) > 0 || len(snap.Effects) > 0
	}, time.Second, 5*time.Millisecond)

	s.cancel()
	assert.NoError(t, s.wait(t))
}

func TestRunHeldKeyReleasesAfterHold(t *testing.T) {
	s := startSession(t, fastTuning())
	s.keys <- input.KeyStart
	s.keys <- input.KeyLeft

	require.Eventually(t, func() bool {
		snap, _ := s.renderer.snapshot()
		return snap.Player.X < 215
	}, time.Second, 5*time.Millisecond)

	// Released once the hold window passes without a repeat: the position
	// settles and stays put.
	var settled float64
	prev := -1.0
	require.Eventually(t, func() bool {
		snap, _ := s.renderer.snapshot()
		x := snap.Player.X
		stable := x == prev
		prev = x
		settled = x
		return stable
	}, 2*time.Second, 50*time.Millisecond)
	assert.Greater(t, settled, 10.0, "stopped before reaching the wall")

	assert.Never(t, func() bool {
		snap, _ := s.renderer.snapshot()
		return snap.Player.X != settled
	}, 150*time.Millisecond, 10*time.Millisecond)

	s.cancel()
	assert.NoError(t, s.wait(t))
}

func TestTickerScheduler(t *testing.T) {
	s := &tickerScheduler{}
	assert.Nil(t, s.C())

	calls := 0
	cancel := s.Every(time.Millisecond, func() { calls++ })
	require.NotNil(t, s.C())

	<-s.C()
	s.fire()
	assert.Equal(t, 1, calls)

	cancel()
	assert.Nil(t, s.C())
	s.fire()
	assert.Equal(t, 1, calls)

	stale := s.Every(time.Millisecond, func() {})
	s.Every(time.Millisecond, func() {})
	stale()
	assert.NotNil(t, s.C(), "a replaced trigger's cancel leaves the new one armed")
	s.stop()
}
