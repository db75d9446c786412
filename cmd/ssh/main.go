package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/powerroids/internal/config"
	"github.com/tomz197/powerroids/internal/draw"
	glog "github.com/tomz197/powerroids/internal/logging"
	"github.com/tomz197/powerroids/internal/loop/client"
	"github.com/tomz197/powerroids/internal/loop/server"
	"github.com/tomz197/powerroids/internal/telemetry"
)

const (
	sessionDrainTimeout = 15 * time.Second
	serverStopTimeout   = 5 * time.Second
)

func main() {
	settings, err := config.Load(os.Getenv(config.PathEnv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := glog.New(os.Stderr, settings.Log.Level, settings.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}

	metrics, err := telemetry.NewRecorder(telemetry.Meter())
	if err != nil {
		logger.Warn("metrics disabled", "err", err)
	}

	registry := server.NewRegistry(settings.SSH.MaxSessions, logger)
	logger.Info("ssh config",
		"addr", settings.SSH.Addr(),
		"hostKey", settings.SSH.HostKey,
		"maxSessions", settings.SSH.MaxSessions,
	)

	h := &handler{
		registry: registry,
		logger:   logger,
		metrics:  metrics,
		seed:     settings.Seed,
	}

	opts := []ssh.Option{
		wish.WithAddress(settings.SSH.Addr()),
		wish.WithMiddleware(
			h.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if settings.SSH.HostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSH.HostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", settings.SSH.Addr())
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down", "sessions", registry.Count())

	// Players see a countdown; wait for them to leave before closing the listener.
	registry.Shutdown(sessionDrainTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), serverStopTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		logger.Fatal("shutdown error", "err", err)
	}
	logger.Info("server stopped")
}

type handler struct {
	registry *server.Registry
	logger   *log.Logger
	metrics  *telemetry.Recorder
	seed     int64
}

// middleware runs one game client per SSH session.
func (h *handler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		gameSess, err := h.registry.Register(sess.User())
		if err != nil {
			fmt.Fprintf(sess, "Sorry, %v. Try again later.\n", err)
			h.logger.Warn("session rejected", "user", sess.User(), "err", err)
			return
		}
		defer h.registry.Unregister(gameSess.ID)

		h.logger.Info("game session started",
			"user", sess.User(),
			"term", pty.Term,
			"width", pty.Window.Width,
			"height", pty.Window.Height,
		)

		sizes := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizes.update(win.Width, win.Height)
			}
		}()

		c := client.New(bufio.NewReader(sess), sess, client.Options{
			TermSizeFunc: sizes.getSize,
			Username:     sess.User(),
			Session:      gameSess,
			Renderer:     lipgloss.NewRenderer(sess),
			Logger:       h.logger,
			Metrics:      h.metrics,
			Seed:         h.seed,
		})
		if err := c.Run(sess.Context()); err != nil {
			h.logger.Error("game error", "user", sess.User(), "err", err)
		}

		h.logger.Info("game session ended", "user", sess.User())
		next(sess)
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
