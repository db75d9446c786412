// Package telemetry records gameplay counters through OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/tomz197/powerroids/internal/telemetry"

// Meter returns the meter from the global provider.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Recorder counts gameplay events. A nil Recorder discards everything.
type Recorder struct {
	ticks      metric.Int64Counter
	destroyed  metric.Int64Counter
	livesLost  metric.Int64Counter
	collected  metric.Int64Counter
	levels     metric.Int64Counter
	gamesEnded metric.Int64Counter
}

// NewRecorder creates the counters on m.
func NewRecorder(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}
	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&r.ticks, "game.ticks", "Simulation ticks executed"},
		{&r.destroyed, "game.asteroids.destroyed", "Asteroids destroyed, by size"},
		{&r.livesLost, "game.lives.lost", "Lives lost"},
		{&r.collected, "game.powerups.collected", "Power-ups collected, by kind"},
		{&r.levels, "game.levels.cleared", "Waves cleared"},
		{&r.gamesEnded, "game.over", "Games that ended with no lives left"},
	}
	for _, c := range counters {
		counter, err := m.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, fmt.Errorf("creating %s counter: %w", c.name, err)
		}
		*c.dst = counter
	}
	return r, nil
}

// Tick counts one simulation tick.
func (r *Recorder) Tick(ctx context.Context) {
	if r == nil {
		return
	}
	r.ticks.Add(ctx, 1)
}

// AsteroidDestroyed counts a destroyed asteroid of the given size class.
func (r *Recorder) AsteroidDestroyed(ctx context.Context, size string) {
	if r == nil {
		return
	}
	r.destroyed.Add(ctx, 1, metric.WithAttributes(attribute.String("size", size)))
}

// LifeLost counts a lost life.
func (r *Recorder) LifeLost(ctx context.Context) {
	if r == nil {
		return
	}
	r.livesLost.Add(ctx, 1)
}

// PowerUpCollected counts a collected power-up of the given kind.
func (r *Recorder) PowerUpCollected(ctx context.Context, kind string) {
	if r == nil {
		return
	}
	r.collected.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// LevelCleared counts a cleared wave.
func (r *Recorder) LevelCleared(ctx context.Context, level int) {
	if r == nil {
		return
	}
	r.levels.Add(ctx, 1, metric.WithAttributes(attribute.Int("level", level)))
}

// GameOver counts a finished game.
func (r *Recorder) GameOver(ctx context.Context) {
	if r == nil {
		return
	}
	r.gamesEnded.Add(ctx, 1)
}
