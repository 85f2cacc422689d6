// Package loop drives a game session: it owns the game on a single goroutine
// and multiplexes frame ticks, spawn ticks and key presses.
package loop

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/laneshooter/internal/config"
	"github.com/tomz197/laneshooter/internal/game"
	"github.com/tomz197/laneshooter/internal/input"
)

// Renderer draws one frame from a snapshot.
type Renderer interface {
	Draw(s game.Snapshot) error
}

// Options configures a session.
type Options struct {
	Tuning   config.Tuning
	Renderer Renderer
	Keys     <-chan input.Key // Closed when the input source ends
	Logger   *zap.Logger
	Rand     *rand.Rand
}

// ErrNoRenderer is returned by Run when Options.Renderer is nil.
var ErrNoRenderer = errors.New("loop: no renderer")

// Run plays one session until the player quits, the key source closes or
// ctx is cancelled. Those all end the session cleanly; only renderer
// failures are returned as errors.
func Run(ctx context.Context, opts Options) error {
	if opts.Renderer == nil {
		return ErrNoRenderer
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	cfg := opts.Tuning

	sched := &tickerScheduler{}
	defer sched.stop()

	g := game.New(cfg, game.Options{
		Scheduler: sched,
		Rand:      opts.Rand,
		Logger:    log,
	})
	defer g.Stop()

	tracker := input.NewTracker(cfg.KeyRepeatWait, cfg.KeyHold)
	frame := time.NewTicker(cfg.FrameTime())
	defer frame.Stop()

	if err := opts.Renderer.Draw(g.Snapshot()); err != nil {
		return fmt.Errorf("draw: %w", err)
	}

	log.Debug("session loop started", zap.Duration("frame", cfg.FrameTime()))
	defer func() {
		s := g.Snapshot()
		log.Info("session loop stopped",
			zap.Stringer("state", s.State),
			zap.Uint64("ticks", s.Tick),
		)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case k, ok := <-opts.Keys:
			if !ok {
				log.Debug("input closed")
				return nil
			}
			if k == input.KeyQuit {
				log.Debug("quit requested")
				return nil
			}
			if ev, ok := tracker.Press(k, time.Now()); ok {
				g.HandleKey(ev)
			}

		case <-sched.C():
			sched.fire()

		case now := <-frame.C:
			for _, ev := range tracker.Expire(now) {
				g.HandleKey(ev)
			}
			g.Tick(now)
			if err := opts.Renderer.Draw(g.Snapshot()); err != nil {
				return fmt.Errorf("draw: %w", err)
			}
		}
	}
}
