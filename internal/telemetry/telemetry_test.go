package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type countingMeter struct {
	noop.Meter
	counters map[string]*countingCounter
	fail     string
}

func (m *countingMeter) Int64Counter(name string, _ ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	if name == m.fail {
		return nil, errors.New("boom")
	}
	c := &countingCounter{}
	m.counters[name] = c
	return c, nil
}

type countingCounter struct {
	noop.Int64Counter
	total int64
	attrs []attribute.Set
}

func (c *countingCounter) Add(_ context.Context, incr int64, opts ...metric.AddOption) {
	c.total += incr
	c.attrs = append(c.attrs, metric.NewAddConfig(opts).Attributes())
}

func TestRecorderCounts(t *testing.T) {
	m := &countingMeter{counters: map[string]*countingCounter{}}
	r, err := NewRecorder(m)
	require.NoError(t, err)

	ctx := context.Background()
	r.Tick(ctx)
	r.Tick(ctx)
	r.AsteroidDestroyed(ctx, "large")
	r.LifeLost(ctx)
	r.PowerUpCollected(ctx, "shield")
	r.LevelCleared(ctx, 2)
	r.GameOver(ctx)

	assert.EqualValues(t, 2, m.counters["game.ticks"].total)
	assert.EqualValues(t, 1, m.counters["game.lives.lost"].total)
	assert.EqualValues(t, 1, m.counters["game.over"].total)

	size, ok := m.counters["game.asteroids.destroyed"].attrs[0].Value("size")
	require.True(t, ok)
	assert.Equal(t, "large", size.AsString())

	kind, ok := m.counters["game.powerups.collected"].attrs[0].Value("kind")
	require.True(t, ok)
	assert.Equal(t, "shield", kind.AsString())
}

func TestRecorderCounterError(t *testing.T) {
	m := &countingMeter{counters: map[string]*countingCounter{}, fail: "game.lives.lost"}
	_, err := NewRecorder(m)
	assert.ErrorContains(t, err, "game.lives.lost")
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Tick(context.Background())
		r.AsteroidDestroyed(context.Background(), "small")
		r.GameOver(context.Background())
	})
}

func TestNoopMeter(t *testing.T) {
	r, err := NewRecorder(noop.Meter{})
	require.NoError(t, err)
	r.Tick(context.Background())

	_, err = NewRecorder(Meter())
	assert.NoError(t, err)
}
