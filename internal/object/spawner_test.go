package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/powerroids/internal/loop/config"
	"github.com/tomz197/powerroids/internal/physics"
)

func TestWaveKeepsDistanceFromCraft(t *testing.T) {
	s := NewSeededSpawner(42)
	craft := NewCraft(testField.Center())
	minDist := SafeDistance(craft)
	assert.Equal(t, 3*20.0+config.CraftRadius, minDist)

	wave := s.Wave(50, nil, AsteroidLarge, testField, craft)
	require.Len(t, wave, 50)
	for _, a := range wave {
		assert.Greater(t, physics.Distance(a.X, a.Y, craft.X, craft.Y), minDist)
		assert.Equal(t, AsteroidLarge, a.Size)
		assert.LessOrEqual(t, a.VX, config.AsteroidSpeed)
		assert.GreaterOrEqual(t, a.VX, -config.AsteroidSpeed)
		assert.LessOrEqual(t, a.VY, config.AsteroidSpeed)
		assert.GreaterOrEqual(t, a.VY, -config.AsteroidSpeed)
	}
}

func TestWaveTinyFieldTerminates(t *testing.T) {
	s := NewSeededSpawner(1)
	field := NewField(10, 10)
	craft := NewCraft(field.Center())
	wave := s.Wave(3, nil, AsteroidLarge, field, craft)
	assert.Len(t, wave, 3)
}

func TestWaveFragments(t *testing.T) {
	s := NewSeededSpawner(3)
	src := &Asteroid{X: 123, Y: 45, Size: AsteroidLarge}
	frags := s.Wave(2, src, AsteroidMedium, testField, nil)
	require.Len(t, frags, 2)
	for _, f := range frags {
		assert.Equal(t, 123.0, f.X)
		assert.Equal(t, 45.0, f.Y)
		assert.Equal(t, AsteroidMedium, f.Size)
		speed := physics.Distance(0, 0, f.VX, f.VY)
		assert.GreaterOrEqual(t, speed, config.AsteroidSpeed*config.FragmentMinSpeed-1e-9)
		assert.LessOrEqual(t, speed, config.AsteroidSpeed*config.FragmentMaxSpeed+1e-9)
	}
}

func TestWaveEmpty(t *testing.T) {
	assert.Empty(t, NewSeededSpawner(1).Wave(0, nil, AsteroidLarge, testField, nil))
}

func TestTryPowerUpRate(t *testing.T) {
	s := NewSeededSpawner(99)
	const trials = 20000
	hits := 0
	kinds := map[PowerUpKind]int{}
	for range trials {
		if p := s.TryPowerUp(5, 6); p != nil {
			hits++
			kinds[p.Kind]++
			require.Equal(t, 5.0, p.X)
			require.Equal(t, 6.0, p.Y)
		}
	}
	assert.InDelta(t, config.PowerUpChance, float64(hits)/trials, 0.02)
	assert.Len(t, kinds, len(PowerUpKinds))
	assert.NotContains(t, kinds, PowerUpNone)
}

func TestStars(t *testing.T) {
	stars := NewSeededSpawner(5).Stars(testField, config.NumStars)
	require.Len(t, stars, config.NumStars)
	for _, st := range stars {
		assert.GreaterOrEqual(t, st.X, 0.0)
		assert.Less(t, st.X, testField.Width)
		assert.GreaterOrEqual(t, st.Radius, config.StarMinRadius)
		assert.LessOrEqual(t, st.Radius, config.StarMaxRadius)
		assert.GreaterOrEqual(t, st.Alpha, config.StarMinAlpha)
		assert.LessOrEqual(t, st.Alpha, config.StarMaxAlpha)
	}
}

func TestSeededSpawnerDeterministic(t *testing.T) {
	a := NewSeededSpawner(11).Wave(4, nil, AsteroidLarge, testField, nil)
	b := NewSeededSpawner(11).Wave(4, nil, AsteroidLarge, testField, nil)
	assert.Equal(t, a, b)
}
