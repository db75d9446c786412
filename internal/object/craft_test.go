package object

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/powerroids/internal/loop/config"
)

var testField = NewField(640, 480)

func testCtx() UpdateContext {
	return UpdateContext{Field: testField}
}

func TestNewCraft(t *testing.T) {
	c := NewCraft(320, 240)
	assert.Equal(t, -math.Pi/2, c.Angle)
	assert.Equal(t, config.CraftRadius, c.Radius)
	assert.Equal(t, config.BaseFireDelay, c.FireDelay)
	assert.Equal(t, PowerUpNone, c.PowerUp)
	assert.NotNil(t, c.TryFire(), "fresh craft fires immediately")
}

func TestCraftRotate(t *testing.T) {
	c := NewCraft(0, 0)
	start := c.Angle
	c.Rotate(1)
	assert.InDelta(t, start+config.CraftTurnSpeed, c.Angle, 1e-9)
	c.Rotate(-1)
	c.Rotate(-1)
	assert.InDelta(t, start-config.CraftTurnSpeed, c.Angle, 1e-9)
}

func TestCraftThrustAndFriction(t *testing.T) {
	c := NewCraft(320, 240)
	c.Angle = 0
	c.ApplyThrust(2.0)
	assert.True(t, c.Thrusting)
	assert.InDelta(t, 0.2, c.VX, 1e-9)
	assert.InDelta(t, 0, c.VY, 1e-9)

	c.Update(testCtx())
	assert.False(t, c.Thrusting)
	assert.InDelta(t, 0.2*config.Friction, c.VX, 1e-9)
	assert.InDelta(t, 320+0.2*config.Friction, c.X, 1e-9)
	assert.Equal(t, config.FlameGrowth, c.Flame)

	c.Update(testCtx())
	assert.Equal(t, config.FlameGrowth-config.FlameDecay, c.Flame)
}

func TestCraftFlameCapped(t *testing.T) {
	c := NewCraft(320, 240)
	for range 50 {
		c.ApplyThrust(1)
		c.Update(testCtx())
	}
	assert.Equal(t, config.MaxFlameLength, c.Flame)
}

func TestCraftWrapInvariant(t *testing.T) {
	c := NewCraft(320, 240)
	c.Angle = 0.3
	for range 2000 {
		c.ApplyThrust(config.MaxThrustMultiplier)
		c.Update(testCtx())
		require.GreaterOrEqual(t, c.X, -c.Radius)
		require.Less(t, c.X, testField.Width+c.Radius)
		require.GreaterOrEqual(t, c.Y, -c.Radius)
		require.Less(t, c.Y, testField.Height+c.Radius)
	}
}

func TestCraftFireCooldown(t *testing.T) {
	c := NewCraft(320, 240)
	shots := c.TryFire()
	require.Len(t, shots, 1)
	assert.Nil(t, c.TryFire(), "cooldown active")

	for range config.BaseFireDelay - 1 {
		c.Update(testCtx())
	}
	assert.Nil(t, c.TryFire())
	c.Update(testCtx())
	assert.Len(t, c.TryFire(), 1)
}

func TestCraftFireFromNose(t *testing.T) {
	c := NewCraft(100, 100)
	shots := c.TryFire()
	require.Len(t, shots, 1)
	p := shots[0]
	assert.InDelta(t, 100, p.X, 1e-9)
	assert.InDelta(t, 100-c.Radius, p.Y, 1e-9)
	assert.InDelta(t, 0, p.VX, 1e-9)
	assert.InDelta(t, -config.ProjectileSpeed, p.VY, 1e-9)
}

func TestCraftSpreadShot(t *testing.T) {
	c := NewCraft(100, 100)
	c.Angle = 0
	c.ActivatePowerUp(PowerUpSpreadShot)
	shots := c.TryFire()
	require.Len(t, shots, 3)

	angles := make([]float64, 0, 3)
	for _, p := range shots {
		angles = append(angles, math.Atan2(p.VY, p.VX))
	}
	assert.InDeltaSlice(t, []float64{0, -config.SpreadAngle, config.SpreadAngle}, angles, 1e-9)
}

func TestCraftRapidFire(t *testing.T) {
	c := NewCraft(100, 100)
	c.ActivatePowerUp(PowerUpRapidFire)
	assert.Equal(t, config.RapidFireDelay, c.FireDelay)
	require.NotNil(t, c.TryFire())
	for range config.RapidFireDelay {
		c.Update(testCtx())
	}
	assert.NotNil(t, c.TryFire())
}

func TestCraftPowerUpExpires(t *testing.T) {
	c := NewCraft(320, 240)
	c.ActivatePowerUp(PowerUpShield)
	assert.True(t, c.Shield)
	assert.Equal(t, "Shield Active!", c.PowerUpLabel())

	for range config.PowerUpEffectDuration - 1 {
		c.Update(testCtx())
	}
	assert.True(t, c.Shield)
	c.Update(testCtx())
	assert.False(t, c.Shield)
	assert.Equal(t, PowerUpNone, c.PowerUp)
	assert.Equal(t, "None", c.PowerUpLabel())
}

func TestCraftActivateReplaces(t *testing.T) {
	c := NewCraft(320, 240)
	c.ActivatePowerUp(PowerUpShield)
	c.ActivatePowerUp(PowerUpRapidFire)
	assert.False(t, c.Shield)
	assert.Equal(t, PowerUpRapidFire, c.PowerUp)
	assert.Equal(t, config.PowerUpEffectDuration, c.PowerUpTicks)

	c.DeactivatePowerUp()
	c.DeactivatePowerUp()
	assert.Equal(t, config.BaseFireDelay, c.FireDelay)
	assert.Equal(t, PowerUpNone, c.PowerUp)
}

func TestCraftResetAfterDeath(t *testing.T) {
	c := NewCraft(10, 10)
	c.VX, c.VY = 3, -2
	c.Angle = 1
	c.ActivatePowerUp(PowerUpSpreadShot)

	c.ResetAfterDeath(testField)
	assert.Equal(t, 320.0, c.X)
	assert.Equal(t, 240.0, c.Y)
	assert.Zero(t, c.VX)
	assert.Zero(t, c.VY)
	assert.Equal(t, -math.Pi/2, c.Angle)
	assert.Equal(t, config.InvincibilityTicks, c.InvincibilityTicks)
	assert.Equal(t, PowerUpNone, c.PowerUp)
}
