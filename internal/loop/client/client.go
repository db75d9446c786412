// Package client runs one terminal session: it reads keys, drives a private
// simulation and draws it with half-block graphics and a styled HUD.
package client

import (
	"bufio"
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/powerroids/internal/draw"
	"github.com/tomz197/powerroids/internal/input"
	"github.com/tomz197/powerroids/internal/loop"
	"github.com/tomz197/powerroids/internal/loop/config"
	"github.com/tomz197/powerroids/internal/loop/server"
	"github.com/tomz197/powerroids/internal/object"
	"github.com/tomz197/powerroids/internal/sched"
	"github.com/tomz197/powerroids/internal/telemetry"
)

// reservedRows is the HUD line plus room for the canvas top border.
const reservedRows = 2

// Options configures a client.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Session      *server.Session     // Optional; delivers server lifecycle events
	Renderer     *lipgloss.Renderer  // Defaults to a renderer on the output writer
	Logger       *log.Logger         // Defaults to a discarding logger
	Metrics      *telemetry.Recorder // Optional
	Seed         int64               // 0 seeds from the clock
}

// Client handles rendering and input for a single terminal.
type Client struct {
	state        *State
	canvas       *draw.Canvas
	styles       styles
	writer       io.Writer
	stream       *input.Stream
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	termWidth    int
	termHeight   int
	session      *server.Session
	logger       *log.Logger

	events *sched.EventLoop
	game   *loop.Loop
	frames frameSlot
}

// New creates a client reading keys from r and drawing to w.
func New(r *bufio.Reader, w io.Writer, opts Options) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.NewRenderer(w)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Username != "" {
		logger = logger.With("user", opts.Username)
	}
	if opts.Session != nil {
		logger = logger.With("session", opts.Session.ID)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Client{
		state:        NewState(),
		canvas:       draw.NewScaledCanvas(1, 1, config.FieldWidth, config.FieldHeight),
		styles:       newStyles(renderer),
		writer:       w,
		stream:       input.StartStream(r),
		lastInput:    time.Now(),
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		session:      opts.Session,
		logger:       logger,
		events:       sched.NewEventLoop(),
	}
	c.game = loop.New(loop.Options{
		Scheduler: c.events,
		Spawner:   object.NewSeededSpawner(seed),
		Renderer:  c,
		HUD:       c,
		Logger:    logger,
		Metrics:   opts.Metrics,
		Field:     object.NewField(config.FieldWidth, config.FieldHeight),
	})
	return c
}

// Render receives a snapshot from the simulation driver.
func (c *Client) Render(s loop.Snapshot) {
	c.frames.setSnapshot(s)
}

// UpdateHUD receives HUD changes from the simulation driver.
func (c *Client) UpdateHUD(h loop.HUDState) {
	c.frames.setHUD(h)
}

// Run starts the client loop. Blocks until the player quits, the session is
// idle for too long, the server shuts down or ctx is canceled.
func (c *Client) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	driverDone := make(chan error, 1)
	go func() {
		driverDone <- c.events.Run(ctx)
	}()
	defer func() {
		cancel()
		if err := <-driverDone; err != nil && !errors.Is(err, context.Canceled) {
			c.logger.Error("simulation driver stopped", "err", err)
		}
	}()

	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	ticker := time.NewTicker(config.ClientTargetFrameTime)
	defer ticker.Stop()

	for c.state.Running {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		now := time.Now()
		c.processInput(now)
		c.processServerEvents(now)
		c.updateScreen()

		if err := c.drawFrame(now); err != nil {
			return err
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads keys and forwards the control intent to the simulation.
func (c *Client) processInput(now time.Time) {
	frame := c.stream.Read(now)

	idle := now.Sub(c.lastInput).Seconds()
	switch {
	case len(frame.Pressed) > 0:
		c.lastInput = now
		c.state.isInactive = false
	case idle > config.InactivityDisconnectUser:
		c.logger.Info("disconnecting idle session")
		c.state.Running = false
		return
	case idle > config.InactivityWarnUser:
		c.state.isInactive = true
	}

	if frame.Quit {
		c.state.Running = false
		return
	}

	switch c.state.Screen {
	case ScreenTitle:
		if frame.Intent.Firing || frame.Restart {
			c.state.Screen = ScreenPlaying
			c.game.Start()
		}
	case ScreenPlaying:
		if frame.Restart {
			if _, hud, ok := c.frames.load(); ok && hud.Phase == loop.PhaseGameOver {
				c.game.Reset()
			}
		}
		intent := frame.Intent
		c.game.Control(func(in *input.Intent) {
			in.Apply(intent)
		})
	}
}

// processServerEvents handles lifecycle events from the registry.
func (c *Client) processServerEvents(now time.Time) {
	if c.session != nil {
		select {
		case ev := <-c.session.Events:
			if ev.Type == server.EventServerShutdown && c.state.Screen != ScreenShutdown {
				c.state.Screen = ScreenShutdown
				c.state.shutdownDeadline = now.Add(time.Duration(config.ShutdownDisplaySeconds * float64(time.Second)))
			}
		default:
		}
	}
	if c.state.Screen == ScreenShutdown && !now.Before(c.state.shutdownDeadline) {
		c.state.Running = false
	}
}

// updateScreen fits the canvas to the terminal. On size changes the terminal
// is cleared so no stale pixels or borders remain.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	field := object.NewField(config.FieldWidth, config.FieldHeight)
	if snap, _, ok := c.frames.load(); ok {
		field = snap.Field
	}
	vp := draw.FitViewport(termWidth, termHeight, reservedRows, config.MaxTermWidth, config.MaxTermHeight, field.Width, field.Height)

	if termWidth != c.termWidth || termHeight != c.termHeight ||
		vp.Width != c.canvas.TerminalWidth() || vp.Height != c.canvas.TerminalHeight() {
		c.state.needsClear = true
	}
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.canvas.Resize(vp.Width, vp.Height)
	c.canvas.SetOffset(vp.OffsetCol, vp.OffsetRow)
}
