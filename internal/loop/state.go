package loop

import (
	"github.com/tomz197/powerroids/internal/input"
	"github.com/tomz197/powerroids/internal/object"
)

// Phase is the game's top-level mode.
type Phase int

const (
	PhasePlaying         Phase = iota // Simulation running
	PhaseLevelTransition              // Wave cleared, next wave pending
	PhaseGameOver                     // No lives left, waiting for a restart
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelTransition:
		return "level_transition"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State holds everything the simulation owns. Only the loop's driver touches it.
type State struct {
	Field object.Field

	Craft       *object.Craft
	Projectiles []*object.Projectile
	Asteroids   []*object.Asteroid
	PowerUps    []*object.PowerUp
	Stars       []object.Star

	Score            int
	Lives            int
	Level            int
	WaveSize         int // Large asteroids in the next wave
	ThrustMultiplier float64
	Phase            Phase
	Message          string

	Intent input.Intent
	Tick   uint64
}

// NewState creates the state for a fresh game on field. Entities are spawned by the loop.
func NewState(field object.Field) *State {
	s := &State{Field: field}
	s.resetCounters()
	return s
}

// GameOver reports whether the game has ended.
func (s *State) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// LiveAsteroids counts asteroids not marked for destruction.
func (s *State) LiveAsteroids() int {
	n := 0
	for _, a := range s.Asteroids {
		if !a.IsDestroyed() {
			n++
		}
	}
	return n
}

// UpdateContext returns the context passed to entity updates this tick.
func (s *State) UpdateContext() object.UpdateContext {
	return object.UpdateContext{Field: s.Field, Tick: s.Tick}
}
