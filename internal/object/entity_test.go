package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/powerroids/internal/loop/config"
)

func TestProjectileExpiry(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		angle    float64
		lifetime int
		want     bool
	}{
		{"inside", 100, 100, 0, 10, false},
		{"lifetime runs out", 100, 100, 0, 1, true},
		{"leaves right edge", 638, 100, 0, 10, true},
		{"leaves top edge", 100, 2, -math.Pi / 2, 10, true},
		{"lands on edge", 635, 100, 0, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(tt.x, tt.y, tt.angle)
			p.Lifetime = tt.lifetime
			assert.Equal(t, tt.want, p.Update(testCtx()))
		})
	}
}

func TestProjectileLifetime(t *testing.T) {
	p := NewProjectile(320, 240, 0)
	p.VX, p.VY = 0, 0
	for range config.ProjectileLifetime - 1 {
		require.False(t, p.Update(testCtx()))
	}
	assert.True(t, p.Update(testCtx()))
}

func TestAsteroidSizes(t *testing.T) {
	assert.Equal(t, 20.0, AsteroidLarge.Radius())
	assert.Equal(t, 10.0, AsteroidMedium.Radius())
	assert.Equal(t, 5.0, AsteroidSmall.Radius())
	assert.Equal(t, 20, AsteroidLarge.Points())
	assert.Equal(t, 50, AsteroidMedium.Points())
	assert.Equal(t, 100, AsteroidSmall.Points())

	next, ok := AsteroidLarge.Smaller()
	assert.True(t, ok)
	assert.Equal(t, AsteroidMedium, next)
	_, ok = AsteroidSmall.Smaller()
	assert.False(t, ok)
}

func TestAsteroidSilhouette(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 100 {
		a := NewAsteroid(rng, 0, 0, 0, 0, AsteroidLarge)
		require.GreaterOrEqual(t, len(a.Vertices), config.AsteroidMinVertices)
		require.LessOrEqual(t, len(a.Vertices), config.AsteroidMaxVertices)
		require.LessOrEqual(t, math.Abs(a.RotationSpeed), config.AsteroidMaxSpin)
		for _, v := range a.Vertices {
			d := math.Hypot(v.X, v.Y)
			require.GreaterOrEqual(t, d, a.Radius*config.AsteroidMinJitter-1e-9)
			require.LessOrEqual(t, d, a.Radius*config.AsteroidMaxJitter+1e-9)
		}
	}
}

func TestAsteroidUpdateKeepsSilhouette(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := NewAsteroid(rng, 630, 100, 5, 0, AsteroidMedium)
	verts := append([]Vertex(nil), a.Vertices...)
	angle := a.Angle

	assert.False(t, a.Update(testCtx()))
	assert.Equal(t, verts, a.Vertices)
	assert.InDelta(t, angle+a.RotationSpeed, a.Angle, 1e-9)
	assert.InDelta(t, 635, a.X, 1e-9)

	a.Update(testCtx())
	a.Update(testCtx())
	a.Update(testCtx())
	assert.GreaterOrEqual(t, a.X, -a.Radius)
	assert.Less(t, a.X, testField.Width+a.Radius)
	assert.Less(t, a.X, 0.0, "wrapped to the left edge")
}

func TestAsteroidOutline(t *testing.T) {
	a := &Asteroid{X: 10, Y: 20, Angle: math.Pi / 2, Vertices: []Vertex{{X: 5, Y: 0}}}
	out := a.Outline()
	require.Len(t, out, 1)
	assert.InDelta(t, 10, out[0].X, 1e-9)
	assert.InDelta(t, 25, out[0].Y, 1e-9)
}

func TestPowerUpLifecycle(t *testing.T) {
	p := NewPowerUp(1, 2, PowerUpRapidFire)
	for range config.PowerUpLifetime - 1 {
		require.False(t, p.Update(testCtx()))
	}
	assert.True(t, p.Update(testCtx()))
	assert.InDelta(t, float64(config.PowerUpLifetime)*config.PowerUpPulseStep, p.PulsePhase, 1e-6)
}

func TestPowerUpEffects(t *testing.T) {
	assert.Equal(t, "Shield Active!", PowerUpShield.Effect().Label)
	assert.Equal(t, "Rapid Fire!", PowerUpRapidFire.Effect().Label)
	assert.Equal(t, "Spread Shot!", PowerUpSpreadShot.Effect().Label)
	assert.Equal(t, "None", PowerUpNone.Effect().Label)
	assert.Equal(t, "None", PowerUpKind(42).Effect().Label)
	assert.True(t, PowerUpShield.Effect().Shield)
	assert.True(t, PowerUpSpreadShot.Effect().Spread)
	assert.Equal(t, config.RapidFireDelay, PowerUpRapidFire.Effect().FireDelay)
}

func TestUpdateAllCompactsInOrder(t *testing.T) {
	ps := []*Projectile{
		NewProjectile(100, 100, 0),
		NewProjectile(100, 100, 0),
		NewProjectile(100, 100, 0),
	}
	ps[1].Lifetime = 1
	first, last := ps[0], ps[2]

	ps = UpdateAll(ps, testCtx())
	require.Len(t, ps, 2)
	assert.Same(t, first, ps[0])
	assert.Same(t, last, ps[1])
}

func TestCompact(t *testing.T) {
	as := []*Asteroid{{Size: AsteroidLarge}, {Size: AsteroidMedium}, {Size: AsteroidSmall}}
	as[0].MarkDestroyed()
	as = Compact(as)
	require.Len(t, as, 2)
	assert.Equal(t, AsteroidMedium, as[0].Size)
	assert.Equal(t, AsteroidSmall, as[1].Size)
}

func TestShouldRenderBlink(t *testing.T) {
	assert.True(t, ShouldRenderBlink(0, 4))
	assert.True(t, ShouldRenderBlink(-1, 4))
	assert.False(t, ShouldRenderBlink(3, 4))
	assert.True(t, ShouldRenderBlink(4, 4))
	assert.False(t, ShouldRenderBlink(8, 4))
}
