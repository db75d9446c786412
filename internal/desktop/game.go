// Package desktop runs the simulation in an ebiten window.
package desktop

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/powerroids/internal/input"
	"github.com/tomz197/powerroids/internal/loop"
	"github.com/tomz197/powerroids/internal/loop/config"
	"github.com/tomz197/powerroids/internal/object"
	"github.com/tomz197/powerroids/internal/sched"
	"github.com/tomz197/powerroids/internal/telemetry"
)

// Options configures a desktop game.
type Options struct {
	Width    int
	Height   int
	Seed     int64
	Logger   *log.Logger
	Metrics  *telemetry.Recorder
	Keyboard Keyboard // Defaults to the ebiten keyboard
}

// Game implements ebiten.Game. ebiten calls Update at the simulation tick
// rate and each call advances a virtual clock by one tick, so the loop runs
// on the ebiten goroutine without locking.
type Game struct {
	clock *sched.Manual
	loop  *loop.Loop
	keys  Keyboard

	snapshot loop.Snapshot
	hud      loop.HUDState
	ready    bool
	started  bool

	width, height int // Last layout size
}

// New creates a game with a field matching the initial window size.
func New(opts Options) *Game {
	keys := opts.Keyboard
	if keys == nil {
		keys = ebitenKeyboard{}
	}
	g := &Game{
		clock:  sched.NewManual(),
		keys:   keys,
		width:  opts.Width,
		height: opts.Height,
	}
	var spawner *object.Spawner
	if opts.Seed != 0 {
		spawner = object.NewSeededSpawner(opts.Seed)
	}
	g.loop = loop.New(loop.Options{
		Scheduler: g.clock,
		Spawner:   spawner,
		Renderer:  loop.RendererFunc(g.render),
		HUD:       loop.HUDFunc(g.updateHUD),
		Logger:    opts.Logger,
		Metrics:   opts.Metrics,
		Field:     object.NewField(float64(opts.Width), float64(opts.Height)),
	})
	return g
}

func (g *Game) render(s loop.Snapshot) {
	g.snapshot = s
	g.ready = true
}

func (g *Game) updateHUD(h loop.HUDState) {
	g.hud = h
}

// Update handles input and advances the simulation by one tick.
func (g *Game) Update() error {
	c := ReadControls(g.keys)
	if c.Quit {
		return ebiten.Termination
	}

	if !g.started {
		if c.Start {
			g.started = true
			g.loop.Start()
		}
	} else {
		if c.Restart && g.hud.Phase == loop.PhaseGameOver {
			g.loop.Reset()
		}
		intent := c.Intent
		g.loop.Control(func(in *input.Intent) {
			in.Apply(intent)
		})
	}

	g.clock.Advance(config.TickInterval)
	return nil
}

// Layout uses the window size as the field size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.loop.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return g.width, g.height
}
