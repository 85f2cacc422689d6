package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tomz197/laneshooter/internal/config"
	"github.com/tomz197/laneshooter/internal/draw"
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

	// The terminal is the game screen, so logs only go to a file.
	log := logging.Nop()
	if path := config.GetEnv("LANE_LOG_FILE", ""); path != "" {
		log, err = logging.New(config.GetEnv("LANE_LOG_LEVEL", "info"), path)
		if err != nil {
			return err
		}
	}
	defer log.Sync()
	log = log.With(zap.String("session", uuid.NewString()))

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := render.NewANSI(os.Stdout, draw.DefaultTermSizeFunc)
	if err := renderer.Start(); err != nil {
		return err
	}
	defer renderer.Close()

	stream := input.StartStream(ctx, os.Stdin)
	log.Info("local session started")
	return loop.Run(ctx, loop.Options{
		Tuning:   tuning,
		Renderer: renderer,
		Keys:     stream.Keys(),
		Logger:   log,
	})
}
