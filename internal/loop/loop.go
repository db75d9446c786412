// Package loop drives the simulation: it applies control intent, advances
// entities, resolves collisions and publishes snapshots at a fixed cadence.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/powerroids/internal/input"
	"github.com/tomz197/powerroids/internal/loop/config"
	"github.com/tomz197/powerroids/internal/object"
	"github.com/tomz197/powerroids/internal/physics"
	"github.com/tomz197/powerroids/internal/sched"
	"github.com/tomz197/powerroids/internal/telemetry"
)

// Options configures a Loop. Scheduler is required.
type Options struct {
	Scheduler sched.Scheduler
	Spawner   *object.Spawner     // Defaults to a time-seeded spawner
	Renderer  Renderer            // Optional
	HUD       HUD                 // Optional
	Logger    *log.Logger         // Defaults to a discarding logger
	Metrics   *telemetry.Recorder // Optional
	Field     object.Field        // Defaults to config.FieldWidth x config.FieldHeight
}

// Loop owns the game state and runs every mutation on its scheduler's driver.
type Loop struct {
	sched    sched.Scheduler
	spawner  *object.Spawner
	renderer Renderer
	hud      HUD
	logger   *log.Logger
	metrics  *telemetry.Recorder
	ctx      context.Context

	state *State
	grid  *physics.SpatialGrid

	lastHUD HUDState
	hudSent bool

	pendingTick   *sched.Task
	pendingResume *sched.Task
}

// New creates a loop. Nothing runs until Start is called.
func New(opts Options) *Loop {
	field := opts.Field
	if field.Width <= 0 || field.Height <= 0 {
		field = object.NewField(config.FieldWidth, config.FieldHeight)
	}
	spawner := opts.Spawner
	if spawner == nil {
		spawner = object.NewSeededSpawner(time.Now().UnixNano())
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		sched:    opts.Scheduler,
		spawner:  spawner,
		renderer: opts.Renderer,
		hud:      opts.HUD,
		logger:   logger,
		metrics:  opts.Metrics,
		ctx:      context.Background(),
		state:    NewState(field),
		grid:     physics.NewSpatialGrid(field.Width, field.Height, config.CollisionCellSize),
	}
}

// Start begins a new game.
func (l *Loop) Start() {
	l.sched.Post(l.reset)
}

// Reset discards the current game, cancels pending work and starts over.
func (l *Loop) Reset() {
	l.sched.Post(l.reset)
}

// Control mutates the control intent on the driver. Safe to call from any goroutine.
func (l *Loop) Control(fn func(*input.Intent)) {
	l.sched.Post(func() {
		fn(&l.state.Intent)
	})
}

// Resize changes the field bounds. The starfield and collision grid are rebuilt.
// Safe to call from any goroutine.
func (l *Loop) Resize(width, height float64) {
	l.sched.Post(func() {
		l.resize(width, height)
	})
}

// State returns the live state. Only call it from the driver.
func (l *Loop) State() *State {
	return l.state
}

func (l *Loop) resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s := l.state
	if s.Field.Width == width && s.Field.Height == height {
		return
	}
	s.Field = object.NewField(width, height)
	s.Stars = l.spawner.Stars(s.Field, config.NumStars)
	l.grid.Resize(width, height)
	l.logger.Debug("field resized", "width", width, "height", height)
	l.publish()
}

// tick advances the simulation by one step and schedules the next one while
// the game is in play.
func (l *Loop) tick() {
	l.pendingTick = nil
	s := l.state
	if s.Phase != PhasePlaying || s.Craft == nil {
		return
	}
	s.Tick++

	l.applyIntent()

	ctx := s.UpdateContext()
	s.Craft.Update(ctx)
	s.Projectiles = object.UpdateAll(s.Projectiles, ctx)
	s.Asteroids = object.UpdateAll(s.Asteroids, ctx)
	s.PowerUps = object.UpdateAll(s.PowerUps, ctx)

	l.checkCollisions()
	l.metrics.Tick(l.ctx)

	l.publish()

	if s.Phase == PhasePlaying {
		l.pendingTick = l.sched.After(config.TickInterval, l.tick)
	}
}

// applyIntent feeds the control intent into the craft and consumes one-shots.
func (l *Loop) applyIntent() {
	s := l.state
	in := &s.Intent
	c := s.Craft

	if in.TurnLeft {
		c.Rotate(-1)
	}
	if in.TurnRight {
		c.Rotate(1)
	}
	if in.Thrusting {
		c.ApplyThrust(s.ThrustMultiplier)
	}
	if in.Firing {
		s.Projectiles = append(s.Projectiles, c.TryFire()...)
	}
	if in.DecreaseThrust {
		l.adjustThrust(-1)
		in.DecreaseThrust = false
	}
	if in.IncreaseThrust {
		l.adjustThrust(1)
		in.IncreaseThrust = false
	}
}

// publish hands the renderer a snapshot and the HUD its state if it changed.
func (l *Loop) publish() {
	s := l.state
	if l.renderer != nil {
		l.renderer.Render(s.snapshot())
	}
	if l.hud == nil {
		return
	}
	h := s.hud()
	if l.hudSent && h == l.lastHUD {
		return
	}
	l.lastHUD = h
	l.hudSent = true
	l.hud.UpdateHUD(h)
}
