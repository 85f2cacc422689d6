package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tomz197/laneshooter/internal/config"
	"github.com/tomz197/laneshooter/internal/input"
	"github.com/tomz197/laneshooter/internal/logging"
	"github.com/tomz197/laneshooter/internal/loop"
	"github.com/tomz197/laneshooter/internal/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	tuning, err := config.LoadTuning(config.GetEnv("LANE_TUNING", ""))
	if err != nil {
		return err
	}

	log := logging.Nop()
	if path := config.GetEnv("LANE_LOG_FILE", ""); path != "" {
		log, err = logging.New(config.GetEnv("LANE_LOG_LEVEL", "info"), path)
		if err != nil {
			return err
		}
	}
	defer log.Sync()
	log = log.With(zap.String("session", uuid.NewString()))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	keys := make(chan input.Key, 128)
	go pollKeys(ctx, screen, keys)

	log.Info("tcell session started")
	return loop.Run(ctx, loop.Options{
		Tuning:   tuning,
		Renderer: render.NewTcell(screen),
		Keys:     keys,
		Logger:   log,
	})
}

// pollKeys forwards key presses until the screen is finalised or ctx ends.
func pollKeys(ctx context.Context, screen tcell.Screen, keys chan<- input.Key) {
	defer close(keys)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			k := input.FromTcell(ev)
			if k == input.KeyNone {
				continue
			}
			select {
			case keys <- k:
			case <-ctx.Done():
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
