package loop

import (
	"github.com/tomz197/powerroids/internal/object"
)

// Snapshot is a read-only copy of the state handed to a Renderer once per tick.
// Renderers may keep it; the simulation never mutates it afterwards.
type Snapshot struct {
	Field       object.Field
	Craft       object.Craft
	Projectiles []object.Projectile
	Asteroids   []object.Asteroid
	PowerUps    []object.PowerUp
	Stars       []object.Star
	HUD         HUDState
	Tick        uint64
}

// HUDState is the text overlay content. It is comparable so the loop can send
// it only when something changed.
type HUDState struct {
	Score            int
	Lives            int
	Level            int
	ThrustMultiplier float64
	PowerUp          string
	Phase            Phase
	Message          string
}

// Renderer draws a snapshot.
type Renderer interface {
	Render(Snapshot)
}

// HUD displays the text overlay.
type HUD interface {
	UpdateHUD(HUDState)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Snapshot)

// Render calls f(s).
func (f RendererFunc) Render(s Snapshot) { f(s) }

// HUDFunc adapts a function to HUD.
type HUDFunc func(HUDState)

// UpdateHUD calls f(h).
func (f HUDFunc) UpdateHUD(h HUDState) { f(h) }

func (s *State) hud() HUDState {
	h := HUDState{
		Score:            s.Score,
		Lives:            s.Lives,
		Level:            s.Level,
		ThrustMultiplier: s.ThrustMultiplier,
		PowerUp:          object.PowerUpNone.Effect().Label,
		Phase:            s.Phase,
		Message:          s.Message,
	}
	if s.Craft != nil {
		h.PowerUp = s.Craft.PowerUpLabel()
	}
	return h
}

func (s *State) snapshot() Snapshot {
	snap := Snapshot{
		Field:       s.Field,
		Projectiles: make([]object.Projectile, 0, len(s.Projectiles)),
		Asteroids:   make([]object.Asteroid, 0, len(s.Asteroids)),
		PowerUps:    make([]object.PowerUp, 0, len(s.PowerUps)),
		Stars:       s.Stars,
		HUD:         s.hud(),
		Tick:        s.Tick,
	}
	if s.Craft != nil {
		snap.Craft = *s.Craft
	}
	for _, p := range s.Projectiles {
		if !p.IsDestroyed() {
			snap.Projectiles = append(snap.Projectiles, *p)
		}
	}
	for _, a := range s.Asteroids {
		if !a.IsDestroyed() {
			snap.Asteroids = append(snap.Asteroids, *a)
		}
	}
	for _, p := range s.PowerUps {
		snap.PowerUps = append(snap.PowerUps, *p)
	}
	return snap
}
