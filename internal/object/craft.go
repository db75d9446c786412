package object

import (
	"math"

	"github.com/tomz197/powerroids/internal/loop/config"
	"github.com/tomz197/powerroids/internal/physics"
)

// Craft is the player-controlled ship. It is created once per game and reset
// in place when a life is lost.
type Craft struct {
	X, Y   float64 // Position (center of ship)
	VX, VY float64 // Velocity per tick
	Angle  float64 // Heading in radians (0 = pointing right, -π/2 = up)
	Radius float64

	InvincibilityTicks int // Ticks of collision immunity remaining

	// Power-up state
	PowerUp      PowerUpKind
	PowerUpTicks int
	Shield       bool
	Spread       bool

	// Shooting
	FireDelay     int // Ticks required between shots
	SinceLastShot int // Ticks since the last shot, capped at FireDelay

	// Presentation
	Thrusting bool    // Set by ApplyThrust, cleared by Update
	Flame     float64 // Booster flame length
}

// NewCraft creates a craft at the given position pointing up, ready to fire.
func NewCraft(x, y float64) *Craft {
	return &Craft{
		X:             x,
		Y:             y,
		Angle:         -math.Pi / 2,
		Radius:        config.CraftRadius,
		FireDelay:     config.BaseFireDelay,
		SinceLastShot: config.BaseFireDelay,
	}
}

// Rotate turns the craft by one step. direction is -1 (left) or +1 (right).
func (c *Craft) Rotate(direction int) {
	c.Angle += config.CraftTurnSpeed * float64(direction)
}

// ApplyThrust accelerates the craft along its heading.
func (c *Craft) ApplyThrust(multiplier float64) {
	ax, ay := physics.Polar(c.Angle, config.BaseCraftThrust*multiplier)
	c.VX += ax
	c.VY += ay
	c.Thrusting = true
}

// Update applies friction, moves and wraps the craft, and counts down its timers.
// The craft never expires.
func (c *Craft) Update(ctx UpdateContext) bool {
	c.VX *= config.Friction
	c.VY *= config.Friction
	c.X += c.VX
	c.Y += c.VY
	ctx.Field.WrapPosition(&c.X, &c.Y, c.Radius)

	if c.Thrusting {
		c.Flame = math.Min(c.Flame+config.FlameGrowth, config.MaxFlameLength)
	} else {
		c.Flame = math.Max(c.Flame-config.FlameDecay, 0)
	}
	c.Thrusting = false

	if c.InvincibilityTicks > 0 {
		c.InvincibilityTicks--
	}

	if c.PowerUpTicks > 0 {
		c.PowerUpTicks--
		if c.PowerUpTicks == 0 {
			c.DeactivatePowerUp()
		}
	}

	if c.SinceLastShot < c.FireDelay {
		c.SinceLastShot++
	}
	return false
}

// TryFire fires if the cooldown has elapsed. Returns the spawned projectiles,
// or nil when the craft is still cooling down.
func (c *Craft) TryFire() []*Projectile {
	if c.SinceLastShot < c.FireDelay {
		return nil
	}
	c.SinceLastShot = 0

	nx, ny := physics.Polar(c.Angle, c.Radius)
	noseX, noseY := c.X+nx, c.Y+ny

	if c.Spread {
		return []*Projectile{
			NewProjectile(noseX, noseY, c.Angle),
			NewProjectile(noseX, noseY, c.Angle-config.SpreadAngle),
			NewProjectile(noseX, noseY, c.Angle+config.SpreadAngle),
		}
	}
	return []*Projectile{NewProjectile(noseX, noseY, c.Angle)}
}

// ResetAfterDeath recenters the craft with temporary invincibility and no power-up.
func (c *Craft) ResetAfterDeath(field Field) {
	c.X, c.Y = field.Center()
	c.VX, c.VY = 0, 0
	c.Angle = -math.Pi / 2
	c.InvincibilityTicks = config.InvincibilityTicks
	c.DeactivatePowerUp()
}

// ActivatePowerUp replaces any active power-up with kind and starts its countdown.
func (c *Craft) ActivatePowerUp(kind PowerUpKind) {
	c.DeactivatePowerUp()
	if kind == PowerUpNone {
		return
	}
	effect := kind.Effect()
	c.PowerUp = kind
	c.PowerUpTicks = config.PowerUpEffectDuration
	c.Shield = effect.Shield
	c.Spread = effect.Spread
	c.FireDelay = effect.FireDelay
}

// DeactivatePowerUp clears the active power-up. Safe to call when none is active.
func (c *Craft) DeactivatePowerUp() {
	c.PowerUp = PowerUpNone
	c.PowerUpTicks = 0
	c.Shield = false
	c.Spread = false
	c.FireDelay = config.BaseFireDelay
}

// PowerUpLabel returns the HUD text for the active power-up.
func (c *Craft) PowerUpLabel() string {
	return c.PowerUp.Effect().Label
}

// Visible reports whether the craft should be drawn this frame (blinks while invincible).
func (c *Craft) Visible() bool {
	return ShouldRenderBlink(c.InvincibilityTicks, config.BlinkPeriodTicks)
}
