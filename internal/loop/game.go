package loop

import (
	"fmt"
	"math"

	"github.com/tomz197/powerroids/internal/loop/config"
	"github.com/tomz197/powerroids/internal/object"
)

const (
	levelClearMessage = "LEVEL CLEAR! Next wave..."
	gameOverFormat    = "GAME OVER! Score: %d"
)

func (s *State) resetCounters() {
	s.Score = 0
	s.Lives = config.InitialLives
	s.Level = 1
	s.WaveSize = config.InitialWaveSize
	s.ThrustMultiplier = config.DefaultThrustMultiplier
	s.Phase = PhasePlaying
	s.Message = ""
}

// reset starts a new game on the current field and runs its first tick.
func (l *Loop) reset() {
	l.halt()
	l.pendingResume.Cancel()
	l.pendingResume = nil

	field := l.state.Field
	s := NewState(field)
	s.Craft = object.NewCraft(field.Center())
	s.Stars = l.spawner.Stars(field, config.NumStars)
	s.Asteroids = l.spawner.Wave(s.WaveSize, nil, object.AsteroidLarge, field, s.Craft)
	l.state = s
	l.hudSent = false

	l.logger.Info("new game", "width", field.Width, "height", field.Height, "asteroids", len(s.Asteroids))
	l.tick()
}

// halt cancels the scheduled tick.
func (l *Loop) halt() {
	l.pendingTick.Cancel()
	l.pendingTick = nil
}

// loseLife takes a life and either resets the craft or ends the game.
func (l *Loop) loseLife() {
	s := l.state
	s.Lives--
	l.metrics.LifeLost(l.ctx)

	if s.Lives > 0 {
		s.Craft.ResetAfterDeath(s.Field)
		l.logger.Debug("life lost", "lives", s.Lives, "score", s.Score)
		return
	}

	s.Lives = 0
	s.Phase = PhaseGameOver
	s.Craft.DeactivatePowerUp()
	s.Message = fmt.Sprintf(gameOverFormat, s.Score)
	l.halt()
	l.metrics.GameOver(l.ctx)
	l.logger.Info("game over", "score", s.Score, "level", s.Level)
}

// levelUp pauses play and schedules the next, larger wave.
func (l *Loop) levelUp() {
	s := l.state
	l.halt()
	l.metrics.LevelCleared(l.ctx, s.Level)

	s.WaveSize++
	s.Level++
	s.Phase = PhaseLevelTransition
	s.Message = levelClearMessage
	s.Craft.ResetAfterDeath(s.Field)

	l.logger.Info("level cleared", "level", s.Level, "wave", s.WaveSize, "score", s.Score)
	l.pendingResume = l.sched.After(config.LevelTransitionDelay, l.resumeWave)
}

// resumeWave spawns the pending wave and restarts the tick cycle.
func (l *Loop) resumeWave() {
	l.pendingResume = nil
	s := l.state
	if s.Phase != PhaseLevelTransition {
		return
	}
	wave := l.spawner.Wave(s.WaveSize, nil, object.AsteroidLarge, s.Field, s.Craft)
	s.Asteroids = append(s.Asteroids, wave...)
	s.Message = ""
	s.Phase = PhasePlaying
	l.tick()
}

// adjustThrust moves the thrust multiplier one step in direction, clamped.
func (l *Loop) adjustThrust(direction int) {
	s := l.state
	m := s.ThrustMultiplier + float64(direction)*config.ThrustAdjustStep
	m = math.Round(m*10) / 10
	s.ThrustMultiplier = math.Max(config.MinThrustMultiplier, math.Min(config.MaxThrustMultiplier, m))
}
