package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/laneshooter/internal/config"
	"github.com/tomz197/laneshooter/internal/draw"
	"github.com/tomz197/laneshooter/internal/input"
	applog "github.com/tomz197/laneshooter/internal/logging"
	"github.com/tomz197/laneshooter/internal/loop"
	"github.com/tomz197/laneshooter/internal/render"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"

	drainTimeout    = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}
	log, err := applog.New(config.GetEnv("LANE_LOG_LEVEL", "info"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)

	tuning, err := config.LoadTuning(config.GetEnv("LANE_TUNING", ""))
	if err != nil {
		return err
	}
	log.Info("ssh config",
		zap.String("host", host),
		zap.String("port", port),
		zap.String("host_key", hostKeyPath),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Sessions outlive ctx briefly so they can end cleanly on shutdown.
	sessCtx, endSessions := context.WithCancel(context.Background())
	defer endSessions()
	h := &handler{ctx: sessCtx, tuning: tuning, log: log}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			h.middleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting ssh server", zap.String("addr", s.Addr))
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", zap.Int64("sessions", h.active.Load()))

		endSessions()
		h.drain(drainTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// handler runs one independent game per SSH session.
type handler struct {
	ctx    context.Context
	tuning config.Tuning
	log    *zap.Logger

	wg     sync.WaitGroup
	active atomic.Int64
}

func (h *handler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		h.wg.Add(1)
		defer h.wg.Done()
		h.active.Add(1)
		defer h.active.Add(-1)

		log := h.log.With(
			zap.String("session", uuid.NewString()),
			zap.String("user", sess.User()),
		)
		log.Info("session started",
			zap.String("term", pty.Term),
			zap.Int("width", pty.Window.Width),
			zap.Int("height", pty.Window.Height),
		)

		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stopAfter := context.AfterFunc(h.ctx, cancel)
		defer stopAfter()

		size := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				size.update(win.Width, win.Height)
			}
		}()

		renderer := render.NewANSI(sess, size.getSize)
		if err := renderer.Start(); err != nil {
			log.Warn("session setup failed", zap.Error(err))
			return
		}

		stream := input.StartStream(ctx, sess)
		err := loop.Run(ctx, loop.Options{
			Tuning:   h.tuning,
			Renderer: renderer,
			Keys:     stream.Keys(),
			Logger:   log,
		})
		_ = renderer.Close()
		if err != nil {
			log.Warn("session error", zap.Error(err))
		}

		log.Info("session ended")
		next(sess)
	}
}

// drain waits for running sessions to finish, up to timeout.
func (h *handler) drain(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		h.log.Warn("sessions still running after drain timeout", zap.Int64("sessions", h.active.Load()))
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
